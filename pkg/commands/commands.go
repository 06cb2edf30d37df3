package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "daybook",
		Short: base.Wrap80("A plain-text diary, one year file at a time."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addNew(topLevel)
	addGet(topLevel)
	addRetime(topLevel)
	addLink(topLevel)
	addFind(topLevel)
	addReindex(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// load opens the configured journal and its id registry.
func load() (*journal.Journal, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	reg, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return journal.New(cfg, reg), cfg, nil
}
