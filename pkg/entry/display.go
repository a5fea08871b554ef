package entry

import (
	"strings"

	"tableflip.dev/pages/pkg/section"
	"tableflip.dev/pages/pkg/wordcount"
)

// Heading is a section marker found in an entry.
type Heading struct {
	Line   int
	Kind   string
	Text   string
	Words  int
	Marker *section.Marker
}

// Outline lists the marker lines of content in order, with 1-based line
// numbers and the words written from each marker up to the next one.
func Outline(content string, markers []*section.Marker) []Heading {
	var headings []Heading
	for i, line := range section.Lines(content) {
		for _, m := range markers {
			if m.MatchLine(line) {
				headings = append(headings, Heading{
					Line:   i + 1,
					Kind:   m.Name,
					Text:   strings.TrimRight(line, "\r\n"),
					Marker: m,
				})
				break
			}
		}
		if n := len(headings); n > 0 {
			headings[n-1].Words += wordcount.Count(line)
		}
	}
	return headings
}
