package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/pages/pkg/timeutil"
)

// WindowOptions
type WindowOptions struct {
	Window string
	Text   bool
}

func AddWindowArgs(cmd *cobra.Command, o *WindowOptions) {
	cmd.Flags().StringVarP(&o.Window, "window", "w", timeutil.DefaultWindow,
		`How far to look ahead, example: --window=3d or --window=1w2d.`)
	cmd.Flags().BoolVar(&o.Text, "text", false,
		"Print the full text of each prompt.")
}

// Days is the window in days.
func (o *WindowOptions) Days() (int, error) {
	days, _, err := timeutil.ParseWindow(o.Window)
	return days, err
}
