package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/pages/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	showPattern := false

	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the sections an entry can have",
		Example: `
pages key
pages key --patterns
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{ShowPattern: showPattern}
			err := k.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&showPattern, "patterns", false, "Show the pattern each section is found by.")

	topLevel.AddCommand(cmd)
}
