package options

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// SectionFlags are the optional sections of an entry, in the order they are
// asked for interactively.
var SectionFlags = []string{"tarot", "questions", "stoic-prompt"}

// JournalOptions selects the sections a run adds and how it runs.
type JournalOptions struct {
	All       bool
	Questions bool
	Tarot     bool
	Stoic     bool
	Test      bool
	NoMove    bool
	Print     bool
	// Interactive asks for each of SectionFlags left unset on the command line.
	Interactive bool
}

func AddJournalArgs(cmd *cobra.Command, o *JournalOptions) {
	cmd.Flags().BoolVarP(&o.All, "all", "a", false,
		"Add every optional section: questions, tarot and stoic prompts.")
	cmd.Flags().BoolVarP(&o.Questions, "questions", "q", false,
		"Add the daily questions.")
	cmd.Flags().BoolVarP(&o.Tarot, "tarot", "t", false,
		"Pull a tarot card.")
	cmd.Flags().BoolVarP(&o.Stoic, "stoic-prompt", "s", false,
		"Add the daily stoic prompts.")
	cmd.Flags().BoolVarP(&o.Test, "test", "T", false,
		"Write the entry to the home directory, print it and do not save prompt progress.")
	cmd.Flags().BoolVarP(&o.NoMove, "do-not-move-stoics", "M", false,
		"Keep the stoic prompts above a newly added evening section.")
	cmd.Flags().BoolVarP(&o.Print, "print", "P", false,
		"Print the entry without writing anything.")
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false,
		"Prompt yes/no for each optional section before writing.")
}

// ApplyAll turns on every section flag when --all is set.
func (o *JournalOptions) ApplyAll(fs *pflag.FlagSet) error {
	if !o.All {
		return nil
	}
	for _, name := range SectionFlags {
		if err := fs.Set(name, "true"); err != nil {
			return err
		}
	}
	return nil
}
