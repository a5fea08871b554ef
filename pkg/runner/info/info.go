// Package info reports where the journal lives and the state of today's
// entry.
package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/pages/pkg/clock"
	"tableflip.dev/pages/pkg/entry"
	"tableflip.dev/pages/pkg/printers"
	"tableflip.dev/pages/pkg/progress"
	"tableflip.dev/pages/pkg/section"
	"tableflip.dev/pages/pkg/store"
	"tableflip.dev/pages/pkg/wordcount"
)

type Info struct {
	Config   *store.Config
	Progress progress.Store
	Clock    clock.Clock
	Out      io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Clock == nil {
		n.Clock = clock.System
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	pp := printers.PrettyPrint{Out: out}

	if override := os.Getenv("PAGES_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "PAGES_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "PAGES_CONFIG_PATH env var not set")
	}

	config := n.Config.File
	if config == "" {
		config = "none, using defaults"
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Config file:", config)
	tbl.AddRow("Entries:", n.Config.BasePath())
	tbl.AddRow("References:", n.Config.ReferenceDir)
	tbl.AddRow("Goal:", fmt.Sprintf("%d words", n.Config.Goal))
	tbl.AddRow("Editor:", fmt.Sprintf("%q", n.Config.Editor))
	if n.Progress != nil {
		tbl.AddRow("Stoic progress:", n.Progress.Load().String())
	}
	_, _ = fmt.Fprintln(out, tbl)
	pp.NewLine()

	stamp := entry.NewStamp(n.Clock.Now(), n.Config.DayParts)
	marks, err := n.marks(stamp.Date)
	if err != nil {
		return err
	}
	pp.Month(stamp.Date, marks)

	file := store.EntryFile{Path: n.Config.EntryPath(stamp.Title())}
	content, exists, err := file.Read()
	if err != nil {
		return err
	}
	if !exists {
		pp.Title(stamp.Title())
		pp.Content("")
		return nil
	}

	pp.TitleWithCount(stamp.Title(), wordcount.Count(content))
	sections := uitable.New()
	sections.Separator = "  "
	for _, h := range entry.Outline(content, section.Markers()) {
		sections.AddRow(fmt.Sprintf("%4d", h.Line), h.Kind, fmt.Sprintf("%d", h.Words), h.Text)
	}
	_, _ = fmt.Fprintln(out, sections)
	return nil
}

// marks reports, for each day of the month up to through, whether it has
// an entry and whether the entry reached its goal.
func (n *Info) marks(through time.Time) ([]printers.DayMark, error) {
	y, m, d := through.Date()
	marks := make([]printers.DayMark, d)
	for day := 1; day <= d; day++ {
		date := time.Date(y, m, day, 0, 0, 0, 0, through.Location())
		content, exists, err := store.EntryFile{Path: n.Config.EntryPath(entry.Title(date))}.Read()
		if err != nil {
			return nil, err
		}
		if !exists {
			continue
		}
		marks[day-1] = printers.Written
		if goal, ok := entry.Goal(content); ok && wordcount.Count(content) >= goal {
			marks[day-1] = printers.GoalReached
		}
	}
	return marks, nil
}
