package entry

import (
	"strings"

	"tableflip.dev/pages/pkg/section"
)

// Questions returns the question templates not yet answered in existing.
// Templates are "label:" lines with their terminators. An entry line
// answers a template when the text before its first colon matches the
// label; each entry line answers at most one template. The remaining
// templates come back with a space after the colon, ready for an answer.
func Questions(templates []string, existing string) string {
	remaining := append([]string(nil), templates...)
	for _, line := range section.Lines(existing) {
		if i := strings.Index(line, ":"); i >= 0 {
			line = line[:i] + ":\n"
		}
		for j, q := range remaining {
			if q == line {
				remaining = append(remaining[:j], remaining[j+1:]...)
				break
			}
		}
	}
	return strings.ReplaceAll(strings.Join(remaining, ""), ":\n", ": \n")
}
