package clock

import (
	"testing"
	"time"
)

func TestSystem(t *testing.T) {
	before := time.Now()
	got := System.Now()
	if got.Before(before) || got.After(time.Now()) {
		t.Errorf("System.Now() = %v, not current", got)
	}
}

func TestFunc(t *testing.T) {
	want := time.Date(2025, time.March, 1, 0, 5, 0, 0, time.UTC)
	var c Clock = Func(func() time.Time { return want })
	if got := c.Now(); !got.Equal(want) {
		t.Fatalf("Now() = %v, want %v", got, want)
	}
}

func TestStopped(t *testing.T) {
	morning := time.Date(2025, time.January, 6, 7, 30, 0, 0, time.UTC)
	s := At(morning)
	if got := s.Now(); !got.Equal(morning) || !s.Now().Equal(got) {
		t.Fatalf("Now() = %v, want %v on every call", got, morning)
	}

	s.Advance(14 * time.Hour)
	if want := morning.Add(14 * time.Hour); !s.Now().Equal(want) {
		t.Fatalf("after Advance, Now() = %v, want %v", s.Now(), want)
	}

	lateNight := time.Date(2025, time.January, 7, 1, 30, 0, 0, time.UTC)
	s.Set(lateNight)
	if !s.Now().Equal(lateNight) {
		t.Fatalf("after Set, Now() = %v, want %v", s.Now(), lateNight)
	}
}
