package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/prompt"
	"tableflip.dev/daybook/pkg/runner/find"
)

func addFind(topLevel *cobra.Command) {
	var date string

	cmd := &cobra.Command{
		Use:   "find [pattern]",
		Short: "Search the journal by text or date.",
		Example: `
daybook find fireworks
daybook find --date 2014-12-31
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, cfg, err := load()
			if err != nil {
				return err
			}

			s := find.Find{
				Pattern: strings.Join(args, " "),
				Config:  cfg,
			}
			if date != "" {
				i, err := prompt.ParseInstant(date)
				if err != nil {
					return output.HandleError(err)
				}
				d := i.Time
				s.Date = &d
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVar(&date, "date", "",
		`Jump to a day heading, example: --date="2014-12-31".`)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
