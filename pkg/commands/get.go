package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/classify"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/commands/options"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/runner/get"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	bo := &options.BucketOptions{}
	io := &options.IDOptions{}
	jsonOut := false

	cmd := &cobra.Command{
		Use:     "get [bucket]",
		Aliases: []string{"list", "ls"},
		Short:   "list records by board column",
		Long: "List records classified into Today, Upcoming, and Completed.\n" +
			"Classification is recomputed against the clock on every call.",
		Example: `
planner get
planner get today
planner get upcoming --tasks
planner get completed --json
`,
		ValidArgs: []string{"today", "upcoming", "completed"},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				bo.All = true
				return nil
			}
			bucket, ok := classify.BucketForAlias(args[0])
			if !ok {
				return fmt.Errorf("unknown bucket %q", args[0])
			}
			bo.Bucket = bucket
			bo.All = false
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := get.Get{
				ShowID:      io.ShowID,
				Bucket:      bo.Bucket,
				AllBuckets:  bo.All,
				Type:        bo.Type(),
				JSON:        jsonOut,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddBucketArgs(cmd, bo)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON.")

	topLevel.AddCommand(cmd)
}
