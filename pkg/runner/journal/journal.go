// Package journal runs one invocation of pages: it creates or updates the
// day's entry and opens it in the editor.
package journal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"

	"tableflip.dev/pages/pkg/clock"
	"tableflip.dev/pages/pkg/entry"
	"tableflip.dev/pages/pkg/printers"
	"tableflip.dev/pages/pkg/progress"
	"tableflip.dev/pages/pkg/section"
	"tableflip.dev/pages/pkg/store"
)

// Reference supplies the tables sections are drawn from.
type Reference interface {
	Prompts() ([]progress.Record, error)
	Deck() ([]entry.Card, error)
	Questions() ([]string, error)
}

type Journal struct {
	Config    *store.Config
	Clock     clock.Clock
	Reference Reference
	Progress  progress.Store
	Editor    Editor

	Questions bool
	Tarot     bool
	Stoic     bool
	// NoMove keeps the stoic prompts above a newly added evening section.
	NoMove bool
	// Test prints the entry and the progress it would save, and does not
	// open the editor.
	Test bool
	// Print only prints the entry; nothing is written.
	Print bool

	// Pick chooses a card index in [0, n). Defaults to rand.Intn.
	Pick func(n int) int
	Out  io.Writer
}

func (n *Journal) Do(ctx context.Context) error {
	if n.Config == nil {
		return errors.New("journal: no config")
	}
	if n.Clock == nil {
		n.Clock = clock.System
	}
	if n.Pick == nil {
		n.Pick = rand.Intn
	}
	pp := printers.PrettyPrint{Out: n.Out}

	now := n.Clock.Now()
	stamp := entry.NewStamp(now, n.Config.DayParts)
	file := store.EntryFile{Path: n.Config.EntryPath(stamp.Title())}

	content, exists, err := file.Read()
	if err != nil {
		return err
	}

	var out string
	changed := true
	if exists {
		out, changed, err = n.update(content, stamp, &pp)
	} else {
		out, err = n.create(stamp)
	}
	if err != nil {
		return err
	}

	if n.Print {
		pp.Content(out)
		return nil
	}
	if n.Test {
		pp.Content(out)
	}
	if changed {
		if err := file.Write(out); err != nil {
			return err
		}
		if !exists {
			pp.Notice("created %s", file.Path)
		}
	}
	if n.Test {
		return nil
	}
	if n.Editor == nil {
		return errors.New("journal: no editor")
	}
	return n.Editor.Open(ctx, file.Path)
}

// create builds a fresh entry.
func (n *Journal) create(stamp entry.Stamp) (string, error) {
	content := entry.Morning(stamp)
	if n.Tarot {
		card, err := n.pullCard()
		if err != nil {
			return "", err
		}
		content += entry.Tarot(card) + "\n"
	}
	if n.Questions {
		templates, err := n.Reference.Questions()
		if err != nil {
			return "", err
		}
		content += entry.Questions(templates, "")
	}
	if n.Stoic {
		prompts, err := n.dispense()
		if err != nil {
			return "", err
		}
		content += progress.Render(prompts)
	}
	return entry.FillGoal(content, n.Config.Goal), nil
}

// update adds the sections due now to an existing entry. Each section is
// skipped when the entry already has one.
func (n *Journal) update(content string, stamp entry.Stamp, pp *printers.PrettyPrint) (string, bool, error) {
	ed := section.NewEditor(content)

	if stamp.Part == entry.PartEvening || stamp.Part == entry.PartLateNight {
		evening := entry.Evening(stamp, ed.String(), n.Config.Goal)
		if ed.UpsertBoundary(evening, "\n", section.Evening, section.Stoic, !n.NoMove) {
			pp.Notice("added %s section", section.Evening)
		}
	}
	if n.Tarot && !ed.Has(section.Tarot) {
		card, err := n.pullCard()
		if err != nil {
			return "", false, err
		}
		ed.Upsert(entry.Tarot(card), "\n", section.Tarot)
	}
	if n.Questions {
		templates, err := n.Reference.Questions()
		if err != nil {
			return "", false, err
		}
		if q := entry.Questions(templates, ed.String()); q != "" {
			ed.Upsert(q, "\n", nil)
		}
	}
	if n.Stoic && !ed.Has(section.Stoic) {
		prompts, err := n.dispense()
		if err != nil {
			return "", false, err
		}
		ed.Upsert(progress.Render(prompts), "\n", section.Stoic)
	}
	return ed.String(), ed.Changed(), nil
}

func (n *Journal) pullCard() (entry.Card, error) {
	deck, err := n.Reference.Deck()
	if err != nil {
		return nil, err
	}
	if len(deck) == 0 {
		return nil, errors.New("journal: tarot deck is empty")
	}
	return deck[n.Pick(len(deck))], nil
}

func (n *Journal) dispense() ([]progress.Record, error) {
	records, err := n.Reference.Prompts()
	if err != nil {
		return nil, err
	}
	var ps progress.Store = n.Progress
	if n.Test || n.Print {
		ps = &reportingStore{Store: n.Progress, Out: n.Out}
	}
	d := progress.Dispenser{
		Store:       ps,
		Table:       progress.NewTable(records),
		CatchupRate: n.Config.CatchupRate,
	}
	prompts, err := d.Dispense(n.Clock.Now())
	if err != nil {
		return nil, fmt.Errorf("journal: %w", err)
	}
	return prompts, nil
}

// reportingStore prints the state it is asked to save instead of saving it.
type reportingStore struct {
	progress.Store
	Out io.Writer
}

func (r *reportingStore) Save(s progress.State) error {
	doc, err := store.EncodeProgress(s)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: r.Out}
	pp.Notice("progress not saved: %s", doc)
	return nil
}
