package journal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"tableflip.dev/pages/pkg/printers"
)

// Editor opens an entry for writing.
type Editor interface {
	Open(ctx context.Context, path string) error
}

// Command opens entries by running Args with the entry path appended.
type Command struct {
	Args []string
	Out  io.Writer
}

func (c *Command) Open(ctx context.Context, path string) error {
	if len(c.Args) == 0 {
		return errors.New("journal: empty editor command")
	}
	args := append(append([]string(nil), c.Args...), path)
	pp := printers.PrettyPrint{Out: c.Out}
	pp.Command(args)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exit *exec.ExitError
		if errors.As(err, &exit) {
			// The entry is saved already; a failing editor is not fatal.
			fmt.Fprintf(os.Stderr, "journal: %s exited with %d\n", args[0], exit.ExitCode())
			return nil
		}
		return fmt.Errorf("journal: run %s: %w", args[0], err)
	}
	return nil
}
