package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/commands/options"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/runner/add"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "add a task or event",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddTask(cmd)
	addAddEvent(cmd)

	topLevel.AddCommand(cmd)
}

func addAddTask(topLevel *cobra.Command) {
	ro := &options.RecordOptions{}
	to := &options.TaskOptions{}
	io := &options.IDOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "task <title>",
		Short: "add a task with a due date",
		Example: `
planner add task "Math homework" --due 2026-09-05 --priority high
planner add task "Read chapter 4" --due 2026-09-03 --duration 45 --tag Reading
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Type:        record.TypeTask,
				Title:       title,
				DueDate:     to.DueDate,
				Status:      to.Status,
				Priority:    to.Priority,
				Duration:    ro.Duration,
				Tag:         ro.Tag,
				Description: ro.Description,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddRecordArgs(cmd, ro)
	options.AddTaskArgs(cmd, to)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addAddEvent(topLevel *cobra.Command) {
	ro := &options.RecordOptions{}
	eo := &options.EventOptions{}
	io := &options.IDOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "event <title>",
		Short: "add an event at a date and time",
		Example: `
planner add event "Study group" --date 2026-09-04 --time 18:30 --tag Study
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Type:        record.TypeEvent,
				Title:       title,
				Date:        eo.Date,
				Time:        eo.Time,
				Duration:    ro.Duration,
				Tag:         ro.Tag,
				Description: ro.Description,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddRecordArgs(cmd, ro)
	options.AddEventArgs(cmd, eo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
