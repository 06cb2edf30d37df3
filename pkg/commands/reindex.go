package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/daybook/pkg/runner/reindex"
	"tableflip.dev/daybook/pkg/store"
)

func addReindex(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the id index from the year files.",
		Example: `
daybook reindex
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			reg, err := store.Load(cfg)
			if err != nil {
				return err
			}
			s := reindex.Reindex{
				Config:   cfg,
				Registry: reg,
			}
			return output.HandleError(s.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
