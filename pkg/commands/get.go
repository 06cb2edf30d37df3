package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/commands/options"
	"tableflip.dev/daybook/pkg/prompt"
	"tableflip.dev/daybook/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var date string
	var calendar bool

	cmd := &cobra.Command{
		Use:   "get [year]",
		Short: "List the entries of a year file.",
		Example: `
daybook get
daybook get 2014
daybook get --date 2014-12-31
daybook get 2014 --calendar
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, err := load()
			if err != nil {
				return err
			}

			s := get.Get{
				Calendar: calendar,
				ShowID:   io.ShowID,
				Journal:  j,
			}
			if len(args) == 1 {
				if s.Year, err = get.ParseYear(args[0]); err != nil {
					return output.HandleError(err)
				}
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
		`List only one day, example: --date="2014-12-31".`)
	cmd.Flags().BoolVar(&calendar, "calendar", false,
		"Render the year as monthly calendars instead of rows.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
