package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/runner/settings"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

func addCap(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "cap [value]",
		Short: "show or set the weekly duration cap",
		Long: "Set the weekly duration budget. Accepts minutes (\"480\") or a\n" +
			"window (\"8h\", \"1h30m\"). Zero clears the cap. With no argument,\n" +
			"shows current settings and where usage stands.",
		Example: `
planner cap 480
planner cap 8h
planner cap 0
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				s := settings.Show{Persistence: p}
				return oo.HandleError(s.Do(context.Background()))
			}
			s := settings.SetCap{
				Raw:         args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addUnit(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "unit <minutes|hours>",
		Short:     "set the duration display unit",
		ValidArgs: []string{"minutes", "hours"},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires minutes or hours")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := settings.SetUnit{
				Unit:        args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addTheme(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "theme <light|dark>",
		Short:     "set the theme preference",
		ValidArgs: []string{"light", "dark"},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires light or dark")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := settings.SetTheme{
				Theme:       args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
