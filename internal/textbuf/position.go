package textbuf

import "fmt"

// Position represents a cursor location in a Buffer.
// Line and Col are 1-based; Col counts grapheme clusters.
// Col may be one past the final cluster of its line, the end-of-line
// insertion point. Position is an immutable value type.
type Position struct {
	Line int
	Col  int
}

// Start returns the document start position (1,1).
func Start() Position {
	return Position{Line: 1, Col: 1}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p is before other in document order.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p is after other in document order.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Clamp returns the position adjusted to be valid within buf:
// Line in [1, buf.LineCount()] and Col in [1, graphemes(line)+1].
func (p Position) Clamp(buf Buffer) Position {
	if p.Line < 1 {
		p.Line = 1
	}
	if n := buf.LineCount(); p.Line > n {
		p.Line = n
	}
	if p.Col < 1 {
		p.Col = 1
	}
	if max := GraphemeCount(buf.Line(p.Line)) + 1; p.Col > max {
		p.Col = max
	}
	return p
}

// Valid reports whether p satisfies the cursor invariant for buf.
func (p Position) Valid(buf Buffer) bool {
	return p == p.Clamp(buf)
}
