// Package remove provides the runner logic for deleting records.
package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/app"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

// Remove deletes a record by id.
type Remove struct {
	ID          string
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}
	svc := app.New(n.Persistence)
	if err := svc.Remove(ctx, n.ID); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", n.ID)
	return nil
}
