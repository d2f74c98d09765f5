package textbuf

// Selection represents a range of selected text.
// Anchor is where the selection started; Head is the current cursor
// position. Anchor and Head are stored as given and ordered only on
// demand. When Anchor == Head the selection has no extent.
// Selection is an immutable value type.
type Selection struct {
	Anchor Position
	Head   Position
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head Position) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// CursorSelection creates a selection with no extent at pos.
func CursorSelection(pos Position) Selection {
	return Selection{Anchor: pos, Head: pos}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Head
}

// Normalized returns the selection bounds in document order.
func (s Selection) Normalized() (start, end Position) {
	if s.Anchor.After(s.Head) {
		return s.Head, s.Anchor
	}
	return s.Anchor, s.Head
}

// IsForward returns true if the selection extends forward
// (head at or after anchor).
func (s Selection) IsForward() bool {
	return !s.Head.Before(s.Anchor)
}

// Contains reports whether pos falls inside the selection,
// start inclusive, end exclusive.
func (s Selection) Contains(pos Position) bool {
	start, end := s.Normalized()
	return !pos.Before(start) && pos.Before(end)
}

// Clamp returns the selection with both endpoints clamped to buf.
func (s Selection) Clamp(buf Buffer) Selection {
	return Selection{Anchor: s.Anchor.Clamp(buf), Head: s.Head.Clamp(buf)}
}

// Text returns the selected text from buf, including any newlines the
// selection spans.
func (s Selection) Text(buf Buffer) string {
	start, end := s.Normalized()
	start = start.Clamp(buf)
	end = end.Clamp(buf)
	if start == end {
		return ""
	}

	if start.Line == end.Line {
		return SliceGraphemes(buf.Line(start.Line), start.Col, end.Col)
	}

	out := ""
	_, first := SplitGraphemes(buf.Line(start.Line), start.Col)
	out += first
	for n := start.Line + 1; n < end.Line; n++ {
		out += "\n" + buf.Line(n)
	}
	last, _ := SplitGraphemes(buf.Line(end.Line), end.Col)
	out += "\n" + last
	return out
}
