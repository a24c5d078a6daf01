// Package add provides the runner logic for creating records.
package add

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/app"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/printers"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

// Add creates a new task or event from user input.
type Add struct {
	Type        record.Type
	Title       string
	DueDate     string
	Status      string
	Priority    string
	Date        string
	Time        string
	Duration    string
	Tag         string
	Description string
	ShowID      bool
	Persistence store.Persistence
}

// Do validates and stores the record, then prints it. Validation failures
// list every failing field and nothing is written.
func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	svc := app.New(n.Persistence)

	var r *record.Record
	var err error
	switch n.Type {
	case record.TypeTask:
		r, err = svc.AddTask(ctx, app.TaskInput{
			Title:       n.Title,
			DueDate:     n.DueDate,
			Status:      n.Status,
			Priority:    n.Priority,
			Duration:    n.Duration,
			Tag:         n.Tag,
			Description: n.Description,
		})
	case record.TypeEvent:
		r, err = svc.AddEvent(ctx, app.EventInput{
			Title:       n.Title,
			Date:        n.Date,
			Time:        n.Time,
			Duration:    n.Duration,
			Tag:         n.Tag,
			Description: n.Description,
		})
	default:
		return fmt.Errorf("unknown record type %q", n.Type)
	}
	if err != nil {
		var verr *app.ValidationError
		if errors.As(err, &verr) {
			for _, msg := range verr.Messages {
				fmt.Println(" -", msg)
			}
			return errors.New("record rejected")
		}
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title("Added")
	pp.Column(r)
	return nil
}
