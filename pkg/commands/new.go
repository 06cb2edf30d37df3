package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/prompt"
	runner "tableflip.dev/daybook/pkg/runner/new"
	"tableflip.dev/daybook/pkg/stamp"
)

func addNew(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a diary entry.",
		Example: `
daybook new
daybook new --from 2014-12-30 --to 2014-12-31
daybook new --to 2014-12-31 --at "2014-12-31 20:08"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, cfg, err := load()
			if err != nil {
				return err
			}

			var described stamp.TimeRange
			if i.Interactive {
				described, err = promptDescribed(cfg.LateThreshold())
			} else {
				described, err = do.Described(cfg.LateThreshold())
			}
			if err != nil {
				return output.HandleError(err)
			}
			createdAt, err := do.Time()
			if err != nil {
				return output.HandleError(err)
			}

			s := runner.New{
				Described: described,
				CreatedAt: createdAt,
				ShowID:    io.ShowID,
				Journal:   j,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddShowIDArgs(cmd, io)
	options.InteractiveArgs(cmd, i)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func promptDescribed(threshold time.Duration) (stamp.TimeRange, error) {
	def := time.Now().Add(-threshold)
	from, err := prompt.Instant("Described from", def)
	if err != nil {
		return stamp.TimeRange{}, err
	}
	to, err := prompt.Instant("Described to", from.Time)
	if err != nil {
		return stamp.TimeRange{}, err
	}
	if from.SameDay(to) {
		return stamp.Point(from), nil
	}
	return stamp.Span(from, to), nil
}
