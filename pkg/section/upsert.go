package section

import "strings"

// Upsert appends text to buffer unless exclusion already starts a line in
// it. When buffer does not already end in a blank line, padding goes in
// first. A nil exclusion always appends.
func Upsert(buffer, text, padding string, exclusion *Marker) string {
	out, _ := upsert(buffer, text, padding, exclusion)
	return out
}

func upsert(buffer, text, padding string, exclusion *Marker) (string, bool) {
	if exclusion.Within(buffer) {
		return buffer, false
	}
	var b strings.Builder
	b.Grow(len(buffer) + len(padding) + len(text))
	b.WriteString(buffer)
	if !strings.HasSuffix(buffer, "\n\n") {
		b.WriteString(padding)
	}
	b.WriteString(text)
	return b.String(), true
}

// Editor applies upserts to one buffer and remembers whether anything
// changed.
type Editor struct {
	buffer  string
	changed bool
}

// NewEditor starts editing buffer.
func NewEditor(buffer string) *Editor {
	return &Editor{buffer: buffer}
}

// Upsert is the package level Upsert applied to the edited buffer. It
// reports whether the section was added.
func (e *Editor) Upsert(text, padding string, exclusion *Marker) bool {
	out, added := upsert(e.buffer, text, padding, exclusion)
	if added {
		e.buffer = out
		e.changed = true
	}
	return added
}

// UpsertBoundary adds a boundary section such as the evening pages. When it
// was added and relocate is set, any block section sitting above it is
// moved below it so the boundary stays first.
func (e *Editor) UpsertBoundary(text, padding string, boundary, block *Marker, relocate bool) bool {
	if !e.Upsert(text, padding, boundary) {
		return false
	}
	if relocate {
		e.Relocate(block, boundary)
	}
	return true
}

// Relocate moves the block starting at start below everything else, up to
// the next end line.
func (e *Editor) Relocate(start, end *Marker) {
	out := Relocate(e.buffer, start, end)
	if out != e.buffer {
		e.buffer = out
		e.changed = true
	}
}

// Has reports whether the edited buffer holds a section of kind m.
func (e *Editor) Has(m *Marker) bool {
	return m.Within(e.buffer)
}

func (e *Editor) String() string {
	return e.buffer
}

// Changed reports whether any upsert or relocation modified the buffer.
func (e *Editor) Changed() bool {
	return e.changed
}
