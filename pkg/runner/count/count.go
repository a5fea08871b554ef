// Package count reports the word count of entries.
package count

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"tableflip.dev/pages/pkg/entry"
	"tableflip.dev/pages/pkg/printers"
	"tableflip.dev/pages/pkg/store"
	"tableflip.dev/pages/pkg/wordcount"
)

const stdinName = "-"

// Result is the count of one input.
type Result struct {
	Name  string `json:"name"`
	Words int    `json:"words"`
}

// Count counts the words of each path, or of In when there are no paths.
type Count struct {
	Paths []string
	In    io.Reader
	JSON  bool
	// Watch recounts the single path every time it is saved, until the
	// context is done.
	Watch bool
	Out   io.Writer
}

func (c *Count) Do(ctx context.Context) error {
	out := c.Out
	if out == nil {
		out = color.Output
	}
	if c.Watch {
		return c.follow(ctx, out)
	}

	var results []Result
	switch {
	case len(c.Paths) > 0:
		for _, p := range c.Paths {
			b, err := os.ReadFile(p)
			if err != nil {
				return fmt.Errorf("count: %w", err)
			}
			results = append(results, Result{Name: filepath.Base(p), Words: wordcount.Count(string(b))})
		}
	case c.In != nil:
		b, err := io.ReadAll(c.In)
		if err != nil {
			return fmt.Errorf("count: read input: %w", err)
		}
		results = append(results, Result{Name: stdinName, Words: wordcount.Count(string(b))})
	default:
		return errors.New("count: nothing to count")
	}

	if c.JSON {
		b, err := json.Marshal(results)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := printers.PrettyPrint{Out: out}
	total := 0
	for _, r := range results {
		pp.TitleWithCount(r.Name, r.Words)
		total += r.Words
	}
	if len(results) > 1 {
		pp.TitleWithCount("total", total)
	}
	return nil
}

func (c *Count) follow(ctx context.Context, out io.Writer) error {
	if len(c.Paths) != 1 {
		return errors.New("count: watch needs exactly one file")
	}
	path := c.Paths[0]
	changes, err := store.Watch(ctx, path)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: out}
	report := func() error {
		content, _, err := store.EntryFile{Path: path}.Read()
		if err != nil {
			return err
		}
		words := wordcount.Count(content)
		pp.TitleWithCount(filepath.Base(path), words)
		if goal, ok := entry.Goal(content); ok {
			if words < goal {
				pp.Notice("%d to go", goal-words)
			} else {
				pp.Notice("goal of %d reached", goal)
			}
		}
		return nil
	}

	if err := report(); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			if err := report(); err != nil {
				return err
			}
		}
	}
}
