// Package prompts looks ahead at the stoic prompts coming up.
package prompts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/pages/pkg/clock"
	"tableflip.dev/pages/pkg/printers"
	"tableflip.dev/pages/pkg/progress"
)

const (
	layoutDay    = "Mon Jan 2"
	defaultWidth = 72
)

// Source supplies the prompt table.
type Source interface {
	Prompts() ([]progress.Record, error)
}

// Prompts prints the prompts the next Days runs would dispense, one run per
// day. Nothing is saved.
type Prompts struct {
	Source      Source
	Progress    progress.Store
	Clock       clock.Clock
	CatchupRate int
	Days        int
	// Text prints the prompt text under each day.
	Text  bool
	Width int
	Out   io.Writer
}

func (p *Prompts) Do(_ context.Context) error {
	if p.Source == nil || p.Progress == nil {
		return errors.New("prompts: no prompt source")
	}
	if p.Clock == nil {
		p.Clock = clock.System
	}
	if p.Width <= 0 {
		p.Width = defaultWidth
	}
	out := p.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out}

	records, err := p.Source.Prompts()
	if err != nil {
		return err
	}
	d := progress.Dispenser{
		Store:       p.Progress,
		Table:       progress.NewTable(records),
		CatchupRate: p.CatchupRate,
	}
	plan := d.Schedule(p.Clock.Now(), p.Days)

	pp.Title(fmt.Sprintf("Stoic prompts from %s", p.Progress.Load()))
	if !p.Text {
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, day := range plan {
			for i, r := range day.Prompts {
				date := ""
				if i == 0 {
					date = day.Date.Format(layoutDay)
				}
				tbl.AddRow(date, fmt.Sprintf("day %d", r.Day), r.Label(), firstLine(r.Text, p.Width))
			}
		}
		_, _ = fmt.Fprintln(out, tbl)
		return nil
	}

	faint := color.New(color.Faint)
	for _, day := range plan {
		pp.NewLine()
		pp.Title(day.Date.Format(layoutDay))
		for _, r := range day.Prompts {
			_, _ = faint.Fprintf(out, "day %d, %s\n", r.Day, r.Label())
			_, _ = fmt.Fprintln(out, indent.String(wordwrap.String(r.Text, p.Width), 2))
		}
	}
	return nil
}

// firstLine is the first wrapped line of text, with an ellipsis when more
// follows.
func firstLine(text string, width int) string {
	lines := strings.SplitN(wordwrap.String(text, width), "\n", 2)
	if len(lines) > 1 {
		return lines[0] + "…"
	}
	return lines[0]
}
