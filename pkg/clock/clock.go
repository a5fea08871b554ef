// Package clock lets a run be told what time it is, so morning, evening
// and late night behaviour can be driven from tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// Func adapts a plain function to a Clock.
type Func func() time.Time

func (f Func) Now() time.Time { return f() }

// System reads the wall clock.
var System Clock = Func(time.Now)

// Stopped reports the same instant until it is moved.
type Stopped struct {
	at time.Time
}

// At returns a Stopped clock reading t.
func At(t time.Time) *Stopped {
	return &Stopped{at: t}
}

func (s *Stopped) Now() time.Time { return s.at }

// Set jumps to t, backwards or forwards.
func (s *Stopped) Set(t time.Time) { s.at = t }

// Advance moves forward by d.
func (s *Stopped) Advance(d time.Duration) { s.at = s.at.Add(d) }
