package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/runner/dashboard"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

func addDashboard(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"stats"},
		Short:   "show totals, top tag, trend, and cap status",
		Example: `
planner dashboard
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := dashboard.Dashboard{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
