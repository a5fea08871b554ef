package progress

import (
	"fmt"
	"time"
)

// Store persists the scheduler state. Load never fails: an absent or
// unreadable state loads as Bootstrap().
type Store interface {
	Load() State
	Save(State) error
}

// Dispenser hands out the prompts for one run and persists the advance.
type Dispenser struct {
	Store       Store
	Table       Table
	CatchupRate int
}

// Dispense returns the prompts due at now. The advanced state is only saved
// when now is on a different date than the last save, so repeated runs on
// one day keep dispensing from the same position.
func (d *Dispenser) Dispense(now time.Time) ([]Record, error) {
	state := d.Store.Load()
	prompts, next := Advance(state, now.YearDay(), d.CatchupRate, d.Table)
	if state.ShouldPersist(now) {
		if err := d.Store.Save(next.Stamp(now)); err != nil {
			return nil, fmt.Errorf("progress: save %s: %w", next, err)
		}
	}
	return prompts, nil
}

// Peek returns the prompts the next Dispense at now would return without
// touching the store.
func (d *Dispenser) Peek(now time.Time) ([]Record, State) {
	state := d.Store.Load()
	prompts, _ := Advance(state, now.YearDay(), d.CatchupRate, d.Table)
	return prompts, state
}

// Planned is what a run on Date would dispense.
type Planned struct {
	Date    time.Time
	Prompts []Record
}

// Schedule plans one run per day for days days starting at from, as if each
// run were followed by a save.
func (d *Dispenser) Schedule(from time.Time, days int) []Planned {
	state := d.Store.Load()
	plan := make([]Planned, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i)
		prompts, next := Advance(state, date.YearDay(), d.CatchupRate, d.Table)
		plan = append(plan, Planned{Date: date, Prompts: prompts})
		if state.ShouldPersist(date) {
			state = next.Stamp(date)
		}
	}
	return plan
}
