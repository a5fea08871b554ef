package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
)

// DayMark is how a day is drawn on the calendar.
type DayMark int

const (
	NoEntry DayMark = iota
	Written
	GoalReached
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the calendar of then's month. marks[i] is the mark of day
// i+1; days past the end of marks have no entry.
func (pp *PrettyPrint) Month(then time.Time, marks []DayMark) {
	out := pp.out()
	d := StartDay(then)

	tf := color.New(color.Italic)
	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	styles := map[DayMark]*color.Color{
		NoEntry:     color.New(color.Faint),
		Written:     color.New(color.FgWhite),
		GoalReached: color.New(color.Bold, color.FgHiGreen),
	}

	days := DaysIn(then)
	for i := 0; i < days; i++ {
		mark := NoEntry
		if i < len(marks) {
			mark = marks[i]
		}
		_, _ = styles[mark].Fprintf(out, "%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
