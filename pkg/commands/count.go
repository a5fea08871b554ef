package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/pages/pkg/clock"
	"tableflip.dev/pages/pkg/entry"
	"tableflip.dev/pages/pkg/runner/count"
	"tableflip.dev/pages/pkg/store"
)

func addCount(topLevel *cobra.Command) {
	watch := false

	cmd := &cobra.Command{
		Use:   "count [file...]",
		Short: "Count the words of entries, stdin, or today's entry.",
		Example: `
pages count
pages count --watch
pages count ~/Documents/Morning\ Pages/*.txt
pbpaste | pages count
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c := count.Count{
				Paths: args,
				JSON:  output.JSON,
				Watch: watch,
			}
			if len(args) == 0 {
				if fd := os.Stdin.Fd(); !watch && !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
					c.In = cmd.InOrStdin()
				} else {
					cfg, err := store.LoadConfig()
					if err != nil {
						return output.HandleError(err)
					}
					stamp := entry.NewStamp(clock.System.Now(), cfg.DayParts)
					c.Paths = []string{cfg.EntryPath(stamp.Title())}
				}
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			err := c.Do(ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Recount the entry every time it is saved, until interrupted.")

	topLevel.AddCommand(cmd)
}
