package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/tui/board"
)

func addBoard(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "live three-column view",
		Long: "Watch the board update in place: records re-classify every\n" +
			"minute and whenever the store changes, and / filters by pattern.",
		Example: `
planner board
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			m, err := board.New(ctx, p)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
