// Package settings provides the runner logic for the cap, unit, and theme
// preferences.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/aggregate"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/printers"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/timeutil"
)

// SetCap stores the weekly duration cap. The raw value accepts minutes or
// a window like "8h"; zero clears the cap.
type SetCap struct {
	Raw         string
	Persistence store.Persistence
}

func (n *SetCap) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set cap, no persistence")
	}
	minutes, err := timeutil.ParseMinutes(n.Raw)
	if err != nil {
		return err
	}
	if err := n.Persistence.SetCapMinutes(minutes); err != nil {
		return err
	}

	if minutes == 0 {
		fmt.Println("weekly cap cleared")
		return nil
	}
	fmt.Printf("weekly cap set to %s\n", timeutil.FormatMinutes(minutes))

	// Show where usage stands against the new cap right away.
	used := aggregate.TotalDuration(n.Persistence.List(ctx))
	pp := printers.PrettyPrint{}
	pp.CapStatus(aggregate.CapStatus(minutes, used))
	return nil
}

// SetUnit stores the duration display unit (minutes or hours).
type SetUnit struct {
	Unit        string
	Persistence store.Persistence
}

func (n *SetUnit) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set unit, no persistence")
	}
	if err := n.Persistence.SetUnit(n.Unit); err != nil {
		return err
	}
	fmt.Printf("duration unit set to %s\n", n.Unit)
	return nil
}

// SetTheme stores the theme preference (light or dark).
type SetTheme struct {
	Theme       string
	Persistence store.Persistence
}

func (n *SetTheme) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not set theme, no persistence")
	}
	if err := n.Persistence.SetTheme(n.Theme); err != nil {
		return err
	}
	fmt.Printf("theme set to %s\n", n.Theme)
	return nil
}

// Show prints the current settings and cap status.
type Show struct {
	Persistence store.Persistence
}

func (n *Show) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not show settings, no persistence")
	}

	capMin := n.Persistence.CapMinutes()
	fmt.Printf("weekly cap: %s\n", capText(capMin))
	fmt.Printf("duration unit: %s\n", n.Persistence.Unit())
	fmt.Printf("theme: %s\n", n.Persistence.Theme())

	used := aggregate.TotalDuration(n.Persistence.List(ctx))
	pp := printers.PrettyPrint{}
	pp.CapStatus(aggregate.CapStatus(capMin, used))
	return nil
}

func capText(minutes int) string {
	if minutes <= 0 {
		return "not set"
	}
	return timeutil.FormatMinutes(minutes)
}
