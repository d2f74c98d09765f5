package textbuf

import "strings"

// Buffer is an ordered sequence of lines. Lines never contain newline
// characters, and a Buffer always holds at least one (possibly empty)
// line.
//
// Buffer is an immutable value type: every mutation returns a new
// Buffer and never modifies the receiver's backing storage, so a
// Buffer value held by a caller is a stable snapshot.
type Buffer struct {
	lines []string
}

// New returns a buffer containing a single empty line.
func New() Buffer {
	return Buffer{lines: []string{""}}
}

// FromString returns a buffer holding text split on newlines.
// CRLF and lone CR endings are normalized to LF before splitting.
// An empty string yields a single empty line.
func FromString(text string) Buffer {
	return Buffer{lines: strings.Split(normalizeNewlines(text), "\n")}
}

// FromLines returns a buffer over a copy of lines.
// An empty or nil slice yields a single empty line.
func FromLines(lines []string) Buffer {
	if len(lines) == 0 {
		return New()
	}
	cp := make([]string, len(lines))
	copy(cp, lines)
	return Buffer{lines: cp}
}

// LineCount returns the number of lines. Always at least 1.
func (b Buffer) LineCount() int {
	if len(b.lines) == 0 {
		return 1
	}
	return len(b.lines)
}

// Line returns the text of the 1-based line n, or "" if n is out of
// range. Out-of-range probes are routine in cursor arithmetic and are
// never an error.
func (b Buffer) Line(n int) string {
	if n < 1 || n > len(b.lines) {
		return ""
	}
	return b.lines[n-1]
}

// LineLen returns the grapheme-cluster count of line n, or 0 if n is
// out of range.
func (b Buffer) LineLen(n int) int {
	return GraphemeCount(b.Line(n))
}

// Text returns the full buffer content, lines joined by "\n".
func (b Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}
	return strings.Join(b.lines, "\n")
}

// Lines returns a copy of the line slice.
func (b Buffer) Lines() []string {
	if len(b.lines) == 0 {
		return []string{""}
	}
	cp := make([]string, len(b.lines))
	copy(cp, b.lines)
	return cp
}

// IsEmpty returns true if the buffer holds a single empty line.
func (b Buffer) IsEmpty() bool {
	return b.LineCount() == 1 && b.Line(1) == ""
}

// End returns the position one past the final grapheme of the final
// line, the document-end insertion point.
func (b Buffer) End() Position {
	n := b.LineCount()
	return Position{Line: n, Col: b.LineLen(n) + 1}
}

// Equal reports whether two buffers hold identical content.
func (b Buffer) Equal(other Buffer) bool {
	if b.LineCount() != other.LineCount() {
		return false
	}
	for i := 1; i <= b.LineCount(); i++ {
		if b.Line(i) != other.Line(i) {
			return false
		}
	}
	return true
}

// ReplaceLine returns a buffer with line n replaced by text.
// Out-of-range n returns the buffer unchanged.
func (b Buffer) ReplaceLine(n int, text string) Buffer {
	if n < 1 || n > len(b.lines) {
		return b
	}
	cp := make([]string, len(b.lines))
	copy(cp, b.lines)
	cp[n-1] = text
	return Buffer{lines: cp}
}

// SpliceLines returns a buffer with the 1-based line range [n, n+count)
// replaced by replacement. count may be 0 to insert before line n.
// n may be LineCount()+1 (with count 0) to append. The never-empty
// invariant is preserved; out-of-range arguments are clamped.
func (b Buffer) SpliceLines(n, count int, replacement ...string) Buffer {
	lines := b.lines
	if len(lines) == 0 {
		lines = []string{""}
	}
	if n < 1 {
		n = 1
	}
	if n > len(lines)+1 {
		n = len(lines) + 1
	}
	if count < 0 {
		count = 0
	}
	if n+count-1 > len(lines) {
		count = len(lines) - n + 1
	}

	out := make([]string, 0, len(lines)-count+len(replacement))
	out = append(out, lines[:n-1]...)
	out = append(out, replacement...)
	out = append(out, lines[n-1+count:]...)
	if len(out) == 0 {
		out = []string{""}
	}
	return Buffer{lines: out}
}

// RemoveLine returns a buffer with line n removed. Removing the only
// line leaves a single empty line. Out-of-range n is a no-op.
func (b Buffer) RemoveLine(n int) Buffer {
	if n < 1 || n > len(b.lines) {
		return b
	}
	return b.SpliceLines(n, 1)
}
