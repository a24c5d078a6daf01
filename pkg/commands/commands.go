package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "planner",
		Short: base.Wrap80("Campus life planning on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addEdit(topLevel)
	addRemove(topLevel)
	addSearch(topLevel)
	addDashboard(topLevel)
	addCap(topLevel)
	addUnit(topLevel)
	addTheme(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addBoard(topLevel)
	addVersion(topLevel)
}
