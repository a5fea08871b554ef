package section

import "strings"

type cutState int

const (
	notCutting cutState = iota
	cutting
)

// CutAndMove partitions lines into the ones that stay and the block that
// starts at the first line matching start and runs up to, but not
// including, the next line matching end. The end check runs on every line
// whatever the state, so an end line is never cut.
func CutAndMove(lines []string, start, end *Marker) (remainder, cut []string) {
	remainder = make([]string, 0, len(lines))
	cut = make([]string, 0)
	state := notCutting
	for _, line := range lines {
		if state == notCutting && start.MatchLine(line) {
			state = cutting
		}
		if end.MatchLine(line) {
			state = notCutting
		}
		switch state {
		case cutting:
			cut = append(cut, line)
		default:
			remainder = append(remainder, line)
		}
	}
	return remainder, cut
}

// Lines splits buffer after each newline, keeping the terminators so the
// lines join back into the same text.
func Lines(buffer string) []string {
	lines := strings.SplitAfter(buffer, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Relocate moves the block cut by CutAndMove to the end of buffer,
// separated by a blank line. A buffer with nothing to cut is returned as is.
func Relocate(buffer string, start, end *Marker) string {
	remainder, cut := CutAndMove(Lines(buffer), start, end)
	if len(cut) == 0 {
		return buffer
	}
	return strings.Join(remainder, "") + "\n\n" + strings.Join(cut, "")
}
