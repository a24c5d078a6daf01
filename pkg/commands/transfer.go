package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/runner/export"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/runner/imports"
	"github.com/Eelaf-Adam/Campus-Life-Planner-Eelaf-Adam/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "export the full planner state as JSON",
		Long: "Write the records collection and every setting to one JSON\n" +
			"document keyed by logical setting name. With no file, prints to\n" +
			"stdout.",
		Example: `
planner export
planner export planner-backup.json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := export.Export{
				Persistence: p,
			}
			if len(args) == 1 {
				s.Path = args[0]
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "replace planner state from an exported document",
		Long: "Import a previously exported document. The document is\n" +
			"validated in full before anything is written; an invalid one is\n" +
			"rejected and existing state stays untouched.",
		Example: `
planner import planner-backup.json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a file to import")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := imports.Import{
				Path:        args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
