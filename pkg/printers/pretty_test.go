package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func TestPrettyPrint(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	pp.Title("20250106 Monday the 6th of January")
	pp.TitleWithCount("today", 1)
	pp.Notice("moved %d lines", 3)
	pp.Content("Goal WC: 763")
	pp.Content("")
	pp.Command([]string{"open", "-a", "iA Writer", "/tmp/x y.txt"})

	want := "20250106 Monday the 6th of January\n" +
		"today - 1 word\n" +
		"moved 3 lines\n" +
		"Goal WC: 763\n" +
		" empty\n\n" +
		"open -a iA Writer \"/tmp/x y.txt\"\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestMonth(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}

	pp.Month(time.Date(2025, time.February, 11, 9, 0, 0, 0, time.Local), []DayMark{Written, NoEntry, GoalReached})

	want := "      February      \n" +
		strings.Repeat(" ", 18) + " 1 \n" +
		" 2  3  4  5  6  7  8 \n" +
		" 9 10 11 12 13 14 15 \n" +
		"16 17 18 19 20 21 22 \n" +
		"23 24 25 26 27 28 \n\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", got, want)
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(time.Date(2024, time.February, 3, 0, 0, 0, 0, time.Local)); got != 29 {
		t.Fatalf("DaysIn(Feb 2024) = %d", got)
	}
	if got := StartDay(time.Date(2025, time.January, 20, 0, 0, 0, 0, time.Local)); got != time.Wednesday {
		t.Fatalf("StartDay(Jan 2025) = %v", got)
	}
}
