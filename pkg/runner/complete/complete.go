// Package complete provides the runner logic for finishing tasks.
package complete

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/app"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/classify"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/printers"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

// Complete marks a task as done.
type Complete struct {
	ID          string
	Persistence store.Persistence
}

// Do marks the task done and reprints the Completed column it moved to.
func (n *Complete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}
	svc := app.New(n.Persistence)

	if _, err := svc.Complete(ctx, n.ID); err != nil {
		return err
	}

	board, err := svc.Board(ctx, time.Now())
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	fmt.Println("")
	pp.TitleWithCount(classify.Completed.String(), board.Count(classify.Completed))
	pp.Column(board.Columns[classify.Completed]...)
	return nil
}
