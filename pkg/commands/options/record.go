package options

import (
	"github.com/spf13/cobra"
)

// RecordOptions captures the shared record fields a user can set when
// creating or editing.
type RecordOptions struct {
	Tag         string
	Description string
	Duration    string
}

func AddRecordArgs(cmd *cobra.Command, o *RecordOptions) {
	cmd.Flags().StringVarP(&o.Tag, "tag", "t", "",
		"Tag for the record (letters, spaces, single hyphens).")
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Free-text description.")
	cmd.Flags().StringVar(&o.Duration, "duration", "",
		"Duration in minutes.")
}

// TaskOptions captures task-only fields.
type TaskOptions struct {
	DueDate  string
	Status   string
	Priority string
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.DueDate, "due", "d", "",
		"Due date, YYYY-MM-DD.")
	cmd.Flags().StringVar(&o.Status, "status", "",
		"Status: todo, in-progress, or done.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"Priority: low, medium, or high.")
}

// EventOptions captures event-only fields.
type EventOptions struct {
	Date string
	Time string
}

func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Event date, YYYY-MM-DD.")
	cmd.Flags().StringVar(&o.Time, "time", "",
		"Event time, 24-hour HH:MM.")
}
