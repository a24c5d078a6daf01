package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/app"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/commands/options"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/runner/edit"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var (
		title       string
		tag         string
		description string
		due         string
		status      string
		priority    string
		date        string
		at          string
		duration    string
	)

	cmd := &cobra.Command{
		Use:   "edit <record id>",
		Short: "update fields on a record",
		Long: "Update a record in place. Only the flags you pass change;\n" +
			"the id, type, and creation time never do.",
		Example: `
planner edit <id> --title "Math homework II" --priority medium
planner edit <id> --time 19:00
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one record id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}

			changes := app.Edit{}
			if cmd.Flags().Changed("title") {
				changes.Title = &title
			}
			if cmd.Flags().Changed("tag") {
				changes.Tag = &tag
			}
			if cmd.Flags().Changed("description") {
				changes.Description = &description
			}
			if cmd.Flags().Changed("due") {
				changes.DueDate = &due
			}
			if cmd.Flags().Changed("status") {
				changes.Status = &status
			}
			if cmd.Flags().Changed("priority") {
				changes.Priority = &priority
			}
			if cmd.Flags().Changed("date") {
				changes.Date = &date
			}
			if cmd.Flags().Changed("time") {
				changes.Time = &at
			}
			if cmd.Flags().Changed("duration") {
				changes.Duration = &duration
			}

			s := edit.Edit{
				ID:          io.ID,
				Changes:     changes,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "New tag.")
	cmd.Flags().StringVar(&description, "description", "", "New description.")
	cmd.Flags().StringVarP(&due, "due", "d", "", "New due date (tasks).")
	cmd.Flags().StringVar(&status, "status", "", "New status (tasks).")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "New priority (tasks).")
	cmd.Flags().StringVar(&date, "date", "", "New date (events).")
	cmd.Flags().StringVar(&at, "time", "", "New time (events).")
	cmd.Flags().StringVar(&duration, "duration", "", "New duration in minutes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
