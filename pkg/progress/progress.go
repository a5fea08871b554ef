// Package progress schedules the rotating daily stoic prompts.
//
// Prompts are numbered by a sequential day index that is independent of the
// calendar. Each run dispenses one prompt, or several when the index has
// fallen behind the day of the year, and the advanced index is persisted at
// most once per calendar date.
package progress

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutISO    = "2006-01-02"
	layoutPrompt = "1/02"
)

// Record is one row of the prompt table. A zero Date means the row has no
// date.
type Record struct {
	Day  int
	Date time.Time
	Text string
}

// Missing returns the placeholder used when the table has no row for day.
func Missing(day int) Record {
	return Record{Day: day, Text: fmt.Sprintf("No entry for day %d.", day)}
}

// Table looks prompts up by day index.
type Table map[int]Record

// NewTable indexes records by day. The first record for a day wins.
func NewTable(records []Record) Table {
	t := make(Table, len(records))
	for _, r := range records {
		if _, ok := t[r.Day]; !ok {
			t[r.Day] = r
		}
	}
	return t
}

// Lookup returns the record for day, or the Missing placeholder.
func (t Table) Lookup(day int) Record {
	if r, ok := t[day]; ok {
		return r
	}
	return Missing(day)
}

// State is the persisted position in the prompt table.
type State struct {
	Day       int
	UpdatedOn time.Time
}

// Bootstrap is the state used when nothing usable is persisted.
func Bootstrap() State {
	return State{Day: 1, UpdatedOn: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)}
}

// ShouldPersist reports whether now falls on a different calendar date
// than the last save.
func (s State) ShouldPersist(now time.Time) bool {
	return now.Format(layoutISO) != s.UpdatedOn.Format(layoutISO)
}

// Stamp returns s marked as saved on now's date.
func (s State) Stamp(now time.Time) State {
	y, m, d := now.Date()
	s.UpdatedOn = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return s
}

func (s State) String() string {
	return fmt.Sprintf("day %d (updated on %s)", s.Day, s.UpdatedOn.Format(layoutISO))
}

// Advance dispenses the prompts due for dayOfYear. While the state is
// behind the calendar, catchupRate prompts are dispensed; otherwise one.
// The returned state has Day moved past the dispensed prompts and the
// same UpdatedOn.
func Advance(state State, dayOfYear, catchupRate int, table Table) ([]Record, State) {
	n := 1
	if state.Day < dayOfYear && catchupRate > 1 {
		n = catchupRate
	}
	prompts := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		prompts = append(prompts, table.Lookup(state.Day+i))
	}
	state.Day += n
	return prompts, state
}

// Render formats prompts as the daily stoic block of an entry.
func Render(prompts []Record) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, p := range prompts {
		fmt.Fprintf(&b, "- Daily Stoic Prompt, %s:\n%s\n", p.Label(), p.Text)
		b.WriteString("\t- Morning:\n\t\t- \n\t- Evening:\n\t\t- \n")
	}
	return b.String()
}

// Label is the date of the prompt, or "day N" when it has none.
func (r Record) Label() string {
	if r.Date.IsZero() {
		return fmt.Sprintf("day %d", r.Day)
	}
	return r.Date.Format(layoutPrompt)
}
