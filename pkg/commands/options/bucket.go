// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/classify"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/record"
)

// BucketOptions captures board column selection for commands.
type BucketOptions struct {
	Bucket classify.Bucket
	All    bool
	Tasks  bool
	Events bool
}

// AddBucketArgs wires bucket-related flags on the provided command.
func AddBucketArgs(cmd *cobra.Command, o *BucketOptions) {
	cmd.Flags().BoolVar(&o.All, "all", true,
		"Show all three columns.")
	cmd.Flags().BoolVar(&o.Tasks, "tasks", false,
		"Only tasks.")
	cmd.Flags().BoolVar(&o.Events, "events", false,
		"Only events.")
}

// Type resolves the record-type filter the flags imply; empty means both.
func (o *BucketOptions) Type() record.Type {
	switch {
	case o.Tasks && !o.Events:
		return record.TypeTask
	case o.Events && !o.Tasks:
		return record.TypeEvent
	}
	return ""
}
