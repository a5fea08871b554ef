package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pages/pkg/commands/options"
	"tableflip.dev/pages/pkg/runner/prompts"
	"tableflip.dev/pages/pkg/store"
)

func addPrompts(topLevel *cobra.Command) {
	wo := &options.WindowOptions{}

	cmd := &cobra.Command{
		Use:   "prompts",
		Short: "Look ahead at the stoic prompts coming up, without using them.",
		Example: `
pages prompts
pages prompts --window 3d --text
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			days, err := wo.Days()
			if err != nil {
				return output.HandleError(err)
			}
			cfg, err := store.LoadConfig()
			if err != nil {
				return output.HandleError(err)
			}
			p := prompts.Prompts{
				Source:      store.Files{Config: cfg},
				Progress:    store.LoadProgress(cfg.ReferenceDir),
				CatchupRate: cfg.CatchupRate,
				Days:        days,
				Text:        wo.Text,
			}
			err = p.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddWindowArgs(cmd, wo)

	topLevel.AddCommand(cmd)
}
