// Package dashboard provides the runner logic for the statistics view.
package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/app"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/printers"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

// Dashboard recomputes and prints derived statistics for the record set.
type Dashboard struct {
	Persistence store.Persistence
}

func (n *Dashboard) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not build dashboard, no persistence")
	}
	svc := app.New(n.Persistence)

	d, err := svc.Dashboard(ctx, time.Now())
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Dashboard(d)
	return nil
}
