// Package entry composes the text of a daily journal entry.
package entry

import (
	"regexp"
	"strconv"
	"strings"

	"tableflip.dev/pages/pkg/wordcount"
)

// Placeholder stands in for the morning goal until the content is final.
const Placeholder = "MORNINGWORDCOUNT"

// goalLineWords is how many words the "Goal WC: N" line adds.
const goalLineWords = 3

var goalLine = regexp.MustCompile(`(?m)^Goal WC: ([0-9]+)`)

// Morning returns the skeleton of a fresh entry. The goal is left as
// Placeholder; see FillGoal.
func Morning(s Stamp) string {
	var b strings.Builder
	b.WriteString(s.Title())
	b.WriteString("\n")
	b.WriteString("#MorningPages, started at " + s.HHMM + "\n")
	b.WriteString("\n\n\nGoal WC: " + Placeholder + "\n")
	return b.String()
}

// FillGoal replaces Placeholder with the word count of content plus goal.
func FillGoal(content string, goal int) string {
	target := wordcount.Count(content) + goal
	return strings.ReplaceAll(content, Placeholder, strconv.Itoa(target))
}

// Evening returns the evening boundary section for an entry currently
// holding existing. Its goal is the words already written plus goal.
func Evening(s Stamp, existing string, goal int) string {
	section := "\n#EveningPages, started at " + s.HHMM + "\n\n\n\n"
	target := wordcount.Count(section) + wordcount.Count(existing) + goal + goalLineWords
	return section + "Goal WC: " + strconv.Itoa(target)
}

// Goal returns the target of the last goal line in content.
func Goal(content string) (int, bool) {
	all := goalLine.FindAllStringSubmatch(content, -1)
	if len(all) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(all[len(all)-1][1])
	if err != nil {
		return 0, false
	}
	return n, true
}
