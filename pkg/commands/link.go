package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	runner "tableflip.dev/daybook/pkg/runner/link"
)

func addLink(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "link",
		Short: "Encode and follow entry references.",
		Example: `
daybook link show 20141231-200800-k3v9a
daybook link show 20141231-200800-k3v9a "17.12"
daybook link follow daybook:20141231-200800-k3v9a::17\.12
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addLinkShow(cmd)
	addLinkFollow(cmd)

	topLevel.AddCommand(cmd)
}

func addLinkShow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "show <id> [search text]",
		Short: "Print the reference token for an entry.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, err := load()
			if err != nil {
				return err
			}
			s := runner.Show{
				ID:      args[0],
				Journal: j,
			}
			if len(args) == 2 {
				s.Search = args[1]
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addLinkFollow(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "follow <token>",
		Short: "Resolve a reference token to file:line.",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a token")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, err := load()
			if err != nil {
				return err
			}
			s := runner.Follow{
				Token:   args[0],
				Journal: j,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
