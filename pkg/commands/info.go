package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pages/pkg/runner/info"
	"tableflip.dev/pages/pkg/store"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where entries and references are stored, and today's entry.",
		Example: `
pages info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			s := info.Info{
				Config:   cfg,
				Progress: store.LoadProgress(cfg.ReferenceDir),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
