package wrap

import (
	"github.com/editkit/editkit/internal/textbuf"
)

// Mode selects the wrapping strategy.
type Mode int

const (
	// ModeNone maps each logical line to one display row; horizontal
	// overflow is handled by scrolling.
	ModeNone Mode = iota

	// ModeWord breaks at space boundaries, falling back to grapheme
	// breaking for single words wider than the available width.
	ModeWord

	// ModeChar breaks between grapheme clusters.
	ModeChar
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeWord:
		return "word"
	case ModeChar:
		return "char"
	default:
		return "none"
	}
}

// ParseMode returns the Mode named by s, defaulting to ModeNone for
// unrecognized input.
func ParseMode(s string) Mode {
	switch s {
	case "word":
		return ModeWord
	case "char":
		return ModeChar
	default:
		return ModeNone
	}
}

// Row is one display row: a grapheme-column span of a logical line.
// Rows tile their line: the StartCol of each row equals the EndCol of
// the previous one, and the final row's EndCol is one past the line's
// last grapheme. TextEnd marks the rendered extent; it excludes spaces
// consumed by a word-wrap break, which still map columns but are not
// drawn.
type Row struct {
	Line     int // 1-based logical line
	StartCol int // first mapped grapheme column, inclusive
	EndCol   int // last mapped grapheme column, exclusive
	TextEnd  int // rendered extent, exclusive; TextEnd <= EndCol
}

// Span returns the number of grapheme columns the row maps.
func (r Row) Span() int {
	return r.EndCol - r.StartCol
}

// DisplayPos is a 1-based display coordinate: Row indexes into the
// layout's row sequence, Col is the grapheme column within that row.
// Col may be one past the row's final cluster.
type DisplayPos struct {
	Row int
	Col int
}

// Wrapper computes layouts for a buffer under the current mode, width,
// and measurer.
type Wrapper struct {
	mode     Mode
	maxWidth int
	measure  Measurer
}

// New creates a wrapper. A nil measurer falls back to DefaultMetrics.
func New(mode Mode, maxWidth int, m Measurer) *Wrapper {
	if m == nil {
		m = DefaultMetrics()
	}
	return &Wrapper{mode: mode, maxWidth: maxWidth, measure: m}
}

// Mode returns the current wrap mode.
func (w *Wrapper) Mode() Mode {
	return w.mode
}

// SetMode changes the wrap mode.
func (w *Wrapper) SetMode(mode Mode) {
	w.mode = mode
}

// MaxWidth returns the available width in pixels.
func (w *Wrapper) MaxWidth() int {
	return w.maxWidth
}

// SetMaxWidth changes the available width.
func (w *Wrapper) SetMaxWidth(px int) {
	w.maxWidth = px
}

// SetMeasurer changes the width measurer. A nil measurer falls back to
// DefaultMetrics.
func (w *Wrapper) SetMeasurer(m Measurer) {
	if m == nil {
		m = DefaultMetrics()
	}
	w.measure = m
}

// Layout computes the display rows for buf. The result is a snapshot;
// it does not track later wrapper or buffer changes.
func (w *Wrapper) Layout(buf textbuf.Buffer) *Layout {
	mode := w.mode
	if w.maxWidth <= 0 {
		// Invalid width degrades to no wrapping rather than failing.
		mode = ModeNone
	}

	l := &Layout{
		buf:       buf,
		lineStart: make([]int, buf.LineCount()),
	}
	for n := 1; n <= buf.LineCount(); n++ {
		l.lineStart[n-1] = len(l.rows)
		l.rows = append(l.rows, w.layoutLine(buf.Line(n), n, mode)...)
	}
	return l
}

// layoutLine wraps a single logical line into one or more rows.
func (w *Wrapper) layoutLine(line string, lineNo int, mode Mode) []Row {
	clusters := textbuf.Graphemes(line)
	n := len(clusters)

	if mode == ModeNone || n == 0 {
		return []Row{{Line: lineNo, StartCol: 1, EndCol: n + 1, TextEnd: n + 1}}
	}

	// Per-cluster widths with prefix sums so span widths are O(1).
	prefix := make([]int, n+1)
	for i, cl := range clusters {
		prefix[i+1] = prefix[i] + w.measure.MeasureText(cl)
	}
	spanWidth := func(startCol, endCol int) int {
		return prefix[endCol-1] - prefix[startCol-1]
	}

	var rows []Row
	start := 1 // first column of the open row

	flush := func(endCol int) {
		textEnd := endCol
		if mode == ModeWord {
			textEnd = trimEnd(clusters, start, endCol)
		}
		rows = append(rows, Row{
			Line:     lineNo,
			StartCol: start,
			EndCol:   endCol,
			TextEnd:  textEnd,
		})
		start = endCol
	}

	for i := 0; i < n; {
		col := i + 1
		if col == start { // a row always takes at least one cluster
			i++
			continue
		}
		if clusters[i] == " " && mode == ModeWord {
			// Spaces ride along and are trimmed at the break.
			i++
			continue
		}
		if spanWidth(start, col+1) <= w.maxWidth {
			i++
			continue
		}

		breakCol := col
		if mode == ModeWord {
			// Prefer the last space in the open row; break after it.
			for s := col - 1; s > start; s-- {
				if clusters[s-1] == " " {
					breakCol = s + 1
					break
				}
			}
		}
		flush(breakCol)
		// Do not advance: the cluster is re-checked against the new
		// row, which may itself overflow when a long word moved down.
	}
	flush(n + 1)

	return rows
}

// trimEnd returns the exclusive rendered end of [startCol, endCol):
// trailing spaces consumed by a wrap break are not drawn. The final
// row of a line keeps its trailing spaces (endCol == len+1 there is
// handled by the caller passing the full span).
func trimEnd(clusters []string, startCol, endCol int) int {
	if endCol > len(clusters) {
		// Final row of the line: trailing spaces are real content.
		return endCol
	}
	for endCol > startCol && clusters[endCol-2] == " " {
		endCol--
	}
	return endCol
}

// Layout is the derived display-row sequence for one buffer snapshot,
// with bidirectional coordinate mapping.
type Layout struct {
	buf       textbuf.Buffer
	rows      []Row
	lineStart []int // index of the first row of each logical line
}

// RowCount returns the total number of display rows.
func (l *Layout) RowCount() int {
	return len(l.rows)
}

// Row returns the 1-based display row n.
func (l *Layout) Row(n int) (Row, bool) {
	if n < 1 || n > len(l.rows) {
		return Row{}, false
	}
	return l.rows[n-1], true
}

// Rows returns the inclusive 1-based display-row range [first, last],
// clamped to the layout.
func (l *Layout) Rows(first, last int) []Row {
	if first < 1 {
		first = 1
	}
	if last > len(l.rows) {
		last = len(l.rows)
	}
	if first > last {
		return nil
	}
	return l.rows[first-1 : last]
}

// RowText returns the rendered text of display row n, excluding any
// spaces consumed by a wrap break.
func (l *Layout) RowText(n int) string {
	r, ok := l.Row(n)
	if !ok {
		return ""
	}
	return textbuf.SliceGraphemes(l.buf.Line(r.Line), r.StartCol, r.TextEnd)
}

// RowsForLine returns the display rows of the 1-based logical line.
func (l *Layout) RowsForLine(line int) []Row {
	if line < 1 || line > len(l.lineStart) {
		return nil
	}
	first := l.lineStart[line-1]
	last := len(l.rows)
	if line < len(l.lineStart) {
		last = l.lineStart[line]
	}
	return l.rows[first:last]
}

// ToDisplay maps a logical position to its display position. Positions
// outside the buffer are clamped first.
func (l *Layout) ToDisplay(p textbuf.Position) DisplayPos {
	p = p.Clamp(l.buf)

	first := l.lineStart[p.Line-1]
	rows := l.RowsForLine(p.Line)
	for i, r := range rows {
		last := i == len(rows)-1
		if p.Col < r.EndCol || last {
			col := p.Col - r.StartCol + 1
			if col < 1 {
				col = 1
			}
			return DisplayPos{Row: first + i + 1, Col: col}
		}
	}
	// Unreachable: every line has at least one row.
	return DisplayPos{Row: 1, Col: 1}
}

// ToLogical maps a display position back to a logical position.
// Out-of-range coordinates are clamped to the nearest valid position.
func (l *Layout) ToLogical(dp DisplayPos) textbuf.Position {
	if len(l.rows) == 0 {
		return textbuf.Start()
	}
	if dp.Row < 1 {
		dp.Row = 1
	}
	if dp.Row > len(l.rows) {
		dp.Row = len(l.rows)
	}

	r := l.rows[dp.Row-1]
	col := r.StartCol + dp.Col - 1

	max := r.EndCol - 1
	if l.isLastRowOfLine(dp.Row) {
		max = r.EndCol // one past end of line
	}
	if col > max {
		col = max
	}
	if col < r.StartCol {
		col = r.StartCol
	}
	return textbuf.Position{Line: r.Line, Col: col}
}

// isLastRowOfLine reports whether 1-based display row n is the final
// row of its logical line.
func (l *Layout) isLastRowOfLine(n int) bool {
	if n == len(l.rows) {
		return true
	}
	return l.rows[n-1].Line != l.rows[n].Line
}
