package entry

import (
	"fmt"
	"time"
)

// Part is the part of the day an invocation falls in.
type Part int

const (
	PartLateNight Part = iota
	PartMorning
	PartAfternoon
	PartEvening
)

func (p Part) String() string {
	switch p {
	case PartLateNight:
		return "late night"
	case PartMorning:
		return "morning"
	case PartAfternoon:
		return "afternoon"
	case PartEvening:
		return "evening"
	}
	return fmt.Sprintf("Part(%d)", int(p))
}

// DayParts holds the hours at which the parts of the day begin.
type DayParts struct {
	MorningStart   int
	AfternoonStart int
	EveningStart   int
}

// DefaultDayParts starts the morning at 4, the afternoon at noon and the
// evening after 17:59.
func DefaultDayParts() DayParts {
	return DayParts{MorningStart: 4, AfternoonStart: 12, EveningStart: 17}
}

// Of classifies hour. PartEvening starts once the hour is past EveningStart.
func (d DayParts) Of(hour int) Part {
	switch {
	case hour < d.MorningStart:
		return PartLateNight
	case hour < d.AfternoonStart:
		return PartMorning
	case hour <= d.EveningStart:
		return PartAfternoon
	default:
		return PartEvening
	}
}

// Stamp is when a run happens, as seen by the journal: which day's entry it
// belongs to and the clock reading written into section headers.
type Stamp struct {
	Date time.Time
	HHMM string
	Part Part
}

// NewStamp reads now. Late night runs belong to the previous day's entry
// and are stamped past 2400, so 01:30 reads 2530.
func NewStamp(now time.Time, parts DayParts) Stamp {
	s := Stamp{Date: now, HHMM: now.Format("1504"), Part: parts.Of(now.Hour())}
	if s.Part == PartLateNight {
		s.Date = now.AddDate(0, 0, -1)
		s.HHMM = fmt.Sprintf("%d", 2400+now.Hour()*100+now.Minute())
	}
	return s
}

// Title is the entry title for the stamp's date.
func (s Stamp) Title() string {
	return Title(s.Date)
}

// Title renders "YYYYMMDD Weekday the Nth of Month".
func Title(date time.Time) string {
	return fmt.Sprintf("%s %s the %s of %s",
		date.Format("20060102"), date.Weekday(), Ordinal(date.Day()), date.Month())
}

// Ordinal renders 1 as "1st", 12 as "12th", 22 as "22nd".
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
