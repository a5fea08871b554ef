package progress

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func testTable() Table {
	return NewTable([]Record{
		{Day: 1, Date: day(0, time.January, 1), Text: "first"},
		{Day: 2, Date: day(0, time.January, 2), Text: "second"},
		{Day: 3, Date: day(0, time.January, 3), Text: "third"},
		{Day: 3, Date: day(0, time.January, 3), Text: "duplicate"},
	})
}

func TestAdvanceOnSchedule(t *testing.T) {
	prompts, next := Advance(State{Day: 2}, 2, 2, testTable())
	if len(prompts) != 1 {
		t.Fatalf("expected 1 prompt, got %d", len(prompts))
	}
	if prompts[0].Text != "second" {
		t.Fatalf("unexpected prompt %+v", prompts[0])
	}
	if next.Day != 3 {
		t.Fatalf("expected day 3, got %d", next.Day)
	}
}

func TestAdvanceAhead(t *testing.T) {
	prompts, next := Advance(State{Day: 40}, 10, 2, testTable())
	if len(prompts) != 1 || next.Day != 41 {
		t.Fatalf("ahead of schedule should dispense one, got %d (day %d)", len(prompts), next.Day)
	}
}

func TestAdvanceCatchup(t *testing.T) {
	start := State{Day: 1, UpdatedOn: day(2024, time.January, 1)}
	prompts, next := Advance(start, 100, 2, testTable())
	want := []string{"first", "second"}
	got := make([]string, 0, len(prompts))
	for _, p := range prompts {
		got = append(got, p.Text)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
	if next.Day != 3 {
		t.Fatalf("expected day 3, got %d", next.Day)
	}
	if !next.UpdatedOn.Equal(start.UpdatedOn) {
		t.Fatalf("Advance must not touch UpdatedOn")
	}
}

func TestAdvanceCatchupRateFloor(t *testing.T) {
	prompts, next := Advance(State{Day: 1}, 100, 0, testTable())
	if len(prompts) != 1 || next.Day != 2 {
		t.Fatalf("rate below one should dispense one, got %d", len(prompts))
	}
}

func TestAdvanceMissing(t *testing.T) {
	prompts, _ := Advance(State{Day: 3}, 300, 3, testTable())
	want := []Record{
		{Day: 3, Date: day(0, time.January, 3), Text: "third"},
		{Day: 4, Text: "No entry for day 4."},
		{Day: 5, Text: "No entry for day 5."},
	}
	if diff := cmp.Diff(want, prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestShouldPersist(t *testing.T) {
	s := State{Day: 5, UpdatedOn: day(2025, time.March, 3)}
	if s.ShouldPersist(time.Date(2025, time.March, 3, 23, 59, 0, 0, time.Local)) {
		t.Fatalf("same date should not persist")
	}
	if !s.ShouldPersist(time.Date(2025, time.March, 4, 0, 1, 0, 0, time.Local)) {
		t.Fatalf("next date should persist")
	}
	if !s.ShouldPersist(time.Date(2026, time.March, 3, 12, 0, 0, 0, time.Local)) {
		t.Fatalf("same day of another year should persist")
	}
}

func TestStamp(t *testing.T) {
	now := time.Date(2025, time.May, 6, 21, 30, 0, 0, time.Local)
	s := State{Day: 9}.Stamp(now)
	if s.Day != 9 || !s.UpdatedOn.Equal(day(2025, time.May, 6)) {
		t.Fatalf("unexpected stamped state %v", s)
	}
	if s.ShouldPersist(now) {
		t.Fatalf("a freshly stamped state should not persist again today")
	}
}

func TestRender(t *testing.T) {
	got := Render([]Record{
		{Day: 1, Date: day(0, time.January, 1), Text: "What is in your control?"},
		Missing(400),
	})
	want := "\n" +
		"- Daily Stoic Prompt, 1/01:\nWhat is in your control?\n" +
		"\t- Morning:\n\t\t- \n\t- Evening:\n\t\t- \n" +
		"- Daily Stoic Prompt, day 400:\nNo entry for day 400.\n" +
		"\t- Morning:\n\t\t- \n\t- Evening:\n\t\t- \n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Render mismatch (-want +got):\n%s", diff)
	}
}

type memoryStore struct {
	state *State
	saves []State
	err   error
}

func (m *memoryStore) Load() State {
	if m.state == nil {
		return Bootstrap()
	}
	return *m.state
}

func (m *memoryStore) Save(s State) error {
	if m.err != nil {
		return m.err
	}
	m.saves = append(m.saves, s)
	m.state = &s
	return nil
}

func TestDispenserPersistsOncePerDate(t *testing.T) {
	store := &memoryStore{}
	d := &Dispenser{Store: store, Table: testTable(), CatchupRate: 2}

	morning := time.Date(2025, time.January, 2, 7, 0, 0, 0, time.Local)
	prompts, err := d.Dispense(morning)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Bootstrap day 1 is behind day-of-year 2, so two prompts catch up.
	if len(prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(prompts))
	}
	if len(store.saves) != 1 || store.saves[0].Day != 3 {
		t.Fatalf("unexpected saves %v", store.saves)
	}

	evening := morning.Add(12 * time.Hour)
	prompts, err = d.Dispense(evening)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prompts) != 1 || prompts[0].Text != "third" {
		t.Fatalf("unexpected prompts %v", prompts)
	}
	if len(store.saves) != 1 {
		t.Fatalf("second run on the same date must not save, got %v", store.saves)
	}

	next := morning.AddDate(0, 0, 1)
	if _, err := d.Dispense(next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.saves) != 2 || store.saves[1].Day != 4 {
		t.Fatalf("unexpected saves %v", store.saves)
	}
}

func TestDispenserSaveError(t *testing.T) {
	store := &memoryStore{err: errors.New("disk full")}
	d := &Dispenser{Store: store, Table: testTable(), CatchupRate: 2}
	if _, err := d.Dispense(time.Date(2025, time.June, 1, 8, 0, 0, 0, time.Local)); err == nil {
		t.Fatalf("expected save error")
	}
}

func TestDispenserPeek(t *testing.T) {
	s := State{Day: 2, UpdatedOn: day(2025, time.January, 1)}
	store := &memoryStore{state: &s}
	d := &Dispenser{Store: store, Table: testTable(), CatchupRate: 2}
	prompts, state := d.Peek(time.Date(2025, time.February, 1, 8, 0, 0, 0, time.Local))
	if len(prompts) != 2 || state.Day != 2 {
		t.Fatalf("unexpected peek %v %v", prompts, state)
	}
	if len(store.saves) != 0 {
		t.Fatalf("peek must not save")
	}
}

func TestDispenserSchedule(t *testing.T) {
	s := State{Day: 2, UpdatedOn: day(2025, time.January, 1)}
	store := &memoryStore{state: &s}
	d := &Dispenser{Store: store, Table: testTable(), CatchupRate: 2}

	plan := d.Schedule(time.Date(2025, time.January, 3, 8, 0, 0, 0, time.Local), 3)
	var got [][]int
	for _, p := range plan {
		var days []int
		for _, r := range p.Prompts {
			days = append(days, r.Day)
		}
		got = append(got, days)
	}
	want := [][]int{{2, 3}, {4}, {5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected schedule (-want +got):\n%s", diff)
	}
	if plan[2].Date.Day() != 5 {
		t.Fatalf("unexpected date %v", plan[2].Date)
	}
	if len(store.saves) != 0 {
		t.Fatalf("schedule must not save")
	}
}

func TestRecordLabel(t *testing.T) {
	if got := (Record{Day: 3, Date: day(0, time.March, 4)}).Label(); got != "3/04" {
		t.Errorf("Label() = %q", got)
	}
	if got := Missing(9).Label(); got != "day 9" {
		t.Errorf("Label() = %q", got)
	}
}
