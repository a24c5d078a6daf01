// Package edit provides the runner logic for updating records in place.
package edit

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/app"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/printers"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

// Edit applies a partial update to the record with the given id. Only set
// fields change; id, type, and creation time are immutable.
type Edit struct {
	ID          string
	Changes     app.Edit
	ShowID      bool
	Persistence store.Persistence
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not edit, no persistence")
	}
	svc := app.New(n.Persistence)

	r, err := svc.Update(ctx, n.ID, n.Changes)
	if err != nil {
		var verr *app.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Messages {
				fmt.Println(" -", msg)
			}
			return errors.New("edit rejected")
		}
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title("Updated")
	pp.Column(r)
	return nil
}
