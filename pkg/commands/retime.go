package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/prompt"
	"tableflip.dev/daybook/pkg/runner/retime"
	"tableflip.dev/daybook/pkg/stamp"
)

func addRetime(topLevel *cobra.Command) {
	do := &options.DateOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}
	var mode string

	cmd := &cobra.Command{
		Use:   "retime [described|created|converted]",
		Short: "Correct an entry's time properties.",
		Long: `Correct an entry's time properties after the fact.

described takes a mode: start and end replace one endpoint of the
range, single replaces the whole value with a fresh point date. The
day heading follows the described start-day for end and single.

created and converted always extend their range so it ends now.
`,
		Example: `
daybook retime described --id 20141231-200800-k3v9a --mode end --at 2015-01-01
daybook retime created --id 20141231-200800-k3v9a
`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"described", "created", "converted"},
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, err := load()
			if err != nil {
				return err
			}
			if io.ID == "" {
				return output.HandleError(errors.New("an entry --id is required"))
			}

			s := retime.Retime{
				ID:      io.ID,
				Now:     time.Now(),
				Journal: j,
			}
			switch args[0] {
			case "described":
				s.Property = journal.PropDescribed
				if s.Mode, s.At, err = resolveDescribed(mode, do, i.Interactive); err != nil {
					return output.HandleError(err)
				}
			case "created":
				s.Property = journal.PropCreated
			case "converted":
				s.Property = journal.PropConverted
			default:
				return output.HandleError(fmt.Errorf("unknown property %q", args[0]))
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	options.AddIDArgs(cmd, io)
	options.AddAtArg(cmd, do)
	options.InteractiveArgs(cmd, i)
	options.AddOutputArg(cmd, output)
	cmd.Flags().StringVar(&mode, "mode", "single",
		"How to rewrite described: start, end, or single.")

	topLevel.AddCommand(cmd)
}

func resolveDescribed(mode string, do *options.DateOptions, interactive bool) (journal.Mode, stamp.Instant, error) {
	if interactive {
		choice, err := prompt.Select("Rewrite described", []string{"start", "end", "single"})
		if err != nil {
			return 0, stamp.Instant{}, err
		}
		mode = choice
	}
	m, err := journal.ParseMode(mode)
	if err != nil {
		return 0, stamp.Instant{}, err
	}

	if do.At == "" && interactive {
		at, err := prompt.Instant("New described time", time.Now())
		return m, at, err
	}
	if do.At == "" {
		return 0, stamp.Instant{}, errors.New("an --at time is required for described")
	}
	at, err := prompt.ParseInstant(do.At)
	return m, at, err
}
