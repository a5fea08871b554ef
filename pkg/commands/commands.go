package commands

import (
	"context"
	"io/ioutil"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/pages/pkg/clock"
	"tableflip.dev/pages/pkg/commands/options"
	"tableflip.dev/pages/pkg/runner/journal"
	"tableflip.dev/pages/pkg/snake"
	"tableflip.dev/pages/pkg/store"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {
	jo := &options.JournalOptions{}

	cmd := &cobra.Command{
		Use:   "pages",
		Short: base.Wrap80("Morning and evening pages: creates or updates today's entry and opens it in your editor."),
		Example: `
pages
pages --tarot --stoic-prompt
pages -a
pages -i
pages --test -a
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := jo.ApplyAll(cmd.Flags()); err != nil {
				return err
			}
			if jo.Interactive {
				return snake.PromptFlags(cmd.Flags(), options.SectionFlags,
					ioutil.NopCloser(cmd.InOrStdin()), snake.NopCloser(cmd.OutOrStdout()))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			err := runJournal(context.Background(), jo)
			return output.HandleError(err)
		},
	}

	options.AddJournalArgs(cmd, jo)
	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addCount(topLevel)
	addPrompts(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func runJournal(ctx context.Context, o *options.JournalOptions) error {
	cfg, err := store.LoadConfig()
	if err != nil {
		return err
	}
	if o.Test {
		if err := cfg.UseHome(); err != nil {
			return err
		}
	}
	j := journal.Journal{
		Config:    cfg,
		Clock:     clock.System,
		Reference: store.Files{Config: cfg},
		Progress:  store.LoadProgress(cfg.ReferenceDir),
		Editor:    &journal.Command{Args: cfg.Editor},
		Questions: o.Questions,
		Tarot:     o.Tarot,
		Stoic:     o.Stoic,
		NoMove:    o.NoMove,
		Test:      o.Test,
		Print:     o.Print,
	}
	return j.Do(ctx)
}
