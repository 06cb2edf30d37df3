// Package options defines shared flag helpers for CLI commands.
package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/dates"
	"tableflip.dev/daybook/pkg/prompt"
	"tableflip.dev/daybook/pkg/stamp"
)

// DateOptions captures the described period and creation time flags.
type DateOptions struct {
	From string
	To   string
	At   string
}

// AddDateArgs wires the date flags on the provided command.
func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.From, "from", "",
		`First day the entry describes, example: --from="2014-12-30".`)
	cmd.Flags().StringVar(&o.To, "to", "",
		`Last day the entry describes, example: --to="2014-12-31".`)
	AddAtArg(cmd, o)
}

// AddAtArg wires only the creation/correction time flag.
func AddAtArg(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.At, "at", "",
		`A time, example: --at="2014-12-31 20:08". Defaults to now.`)
}

// Described resolves the described period from the flags. With neither
// endpoint given, the entry describes the current logical day: before
// the late-night threshold the previous calendar day.
func (o *DateOptions) Described(threshold time.Duration) (stamp.TimeRange, error) {
	switch {
	case o.From == "" && o.To == "":
		return stamp.Point(stamp.On(dates.Logical(time.Now(), threshold))), nil
	case o.To == "":
		i, err := prompt.ParseInstant(o.From)
		if err != nil {
			return stamp.TimeRange{}, err
		}
		return stamp.Point(i), nil
	case o.From == "":
		i, err := prompt.ParseInstant(o.To)
		if err != nil {
			return stamp.TimeRange{}, err
		}
		return stamp.Point(i), nil
	}

	from, err := prompt.ParseInstant(o.From)
	if err != nil {
		return stamp.TimeRange{}, err
	}
	to, err := prompt.ParseInstant(o.To)
	if err != nil {
		return stamp.TimeRange{}, err
	}
	if from.SameDay(to) {
		return stamp.Point(from), nil
	}
	return stamp.Span(from, to), nil
}

// Time resolves the --at flag, defaulting to now.
func (o *DateOptions) Time() (stamp.Instant, error) {
	if o.At == "" {
		return stamp.At(time.Now()), nil
	}
	return prompt.ParseInstant(o.At)
}
