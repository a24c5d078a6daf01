package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/commands/options"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/runner/find"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

func addSearch(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	pattern := ""

	cmd := &cobra.Command{
		Use:   "search [pattern]",
		Short: "filter the board by title or tag",
		Long: "Filter records whose title or tag matches the pattern\n" +
			"(case-insensitive regular expression). Matches are highlighted.\n" +
			"An empty pattern shows everything.",
		Example: `
planner search stud
planner search "^Gym"
`,
		Args: func(_ *cobra.Command, args []string) error {
			pattern = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := find.Find{
				Pattern:     pattern,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
