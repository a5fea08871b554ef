// Package section finds, inserts and moves marker-delimited sections of a
// journal entry.
package section

import (
	"regexp"
	"strings"
)

// Marker identifies the first line of a section kind.
type Marker struct {
	Name    string
	Pattern string

	line *regexp.Regexp
}

// NewMarker compiles a line-start-anchored pattern. A missing leading "^"
// is added.
func NewMarker(name, pattern string) (*Marker, error) {
	if !strings.HasPrefix(pattern, "^") {
		pattern = "^" + pattern
	}
	line, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Marker{Name: name, Pattern: pattern, line: line}, nil
}

// MustMarker is NewMarker that panics on a bad pattern.
func MustMarker(name, pattern string) *Marker {
	m, err := NewMarker(name, pattern)
	if err != nil {
		panic(err)
	}
	return m
}

// MatchLine reports whether a single line starts this section.
func (m *Marker) MatchLine(line string) bool {
	if m == nil {
		return false
	}
	return m.line.MatchString(strings.TrimRight(line, "\r\n"))
}

// Within reports whether any line of buffer starts this section. Lines are
// matched as MatchLine matches them.
func (m *Marker) Within(buffer string) bool {
	if m == nil {
		return false
	}
	for _, l := range Lines(buffer) {
		if m.MatchLine(l) {
			return true
		}
	}
	return false
}

func (m *Marker) String() string {
	return m.Name
}

var (
	Morning = MustMarker("morning", `^#MorningPages.*`)
	Evening = MustMarker("evening", `^#EveningPages.*`)
	Stoic   = MustMarker("stoic", `^- Daily Stoic Prompt,.*`)
	Tarot   = MustMarker("tarot", `^Tarot:.+$`)
)

// Markers returns the built-in section kinds in entry order.
func Markers() []*Marker {
	return []*Marker{Morning, Tarot, Stoic, Evening}
}
