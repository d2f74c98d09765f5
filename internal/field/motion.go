package field

import (
	"github.com/editkit/editkit/internal/event"
	"github.com/editkit/editkit/internal/textbuf"
	"github.com/editkit/editkit/internal/wrap"
)

// Direction names a cursor motion.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Focus moves the field into the focused state. It is idempotent and
// publishes a focus event only on an actual transition.
func (f *Field) Focus() {
	if f.state == StateFocused {
		return
	}
	f.state = StateFocused
	f.blinkOn = true
	f.publish(event.FocusGained, nil)
}

// Blur moves the field into the unfocused state, dropping any active
// selection.
func (f *Field) Blur() {
	if f.state == StateUnfocused {
		return
	}
	f.state = StateUnfocused
	f.sel = nil
	f.publish(event.FocusLost, nil)
}

// moveTo places the cursor, clamped, and refreshes derived state.
func (f *Field) moveTo(p textbuf.Position) {
	p = p.Clamp(f.buf)
	if p == f.cur {
		return
	}
	f.cur = p
	f.blinkOn = true
	f.ensureCursorVisible()
	f.publishCursorMoved()
}

// extendOrDrop prepares the selection for a motion: with extend the
// anchor is pinned at the pre-motion cursor, without it any selection
// is dropped.
func (f *Field) extendOrDrop(extend bool) {
	if extend {
		if f.sel == nil {
			sel := textbuf.CursorSelection(f.cur)
			f.sel = &sel
		}
		return
	}
	f.sel = nil
}

// MoveCursor moves the cursor one step in the given direction. With
// extend the selection grows from its anchor; without it an active
// selection collapses to its edge on horizontal motion instead of
// moving the cursor. Vertical motion is wrap-aware and keeps a goal
// column across consecutive steps.
func (f *Field) MoveCursor(dir Direction, extend bool) {
	if !f.Focused() {
		return
	}

	// Plain left/right over a selection collapses to the edge.
	if !extend && f.sel != nil && !f.sel.IsEmpty() && (dir == Left || dir == Right) {
		start, end := f.sel.Normalized()
		f.sel = nil
		if dir == Left {
			f.moveTo(start)
		} else {
			f.moveTo(end)
		}
		f.goalX = -1
		return
	}

	f.extendOrDrop(extend)

	switch dir {
	case Left:
		f.goalX = -1
		f.moveTo(f.stepLeft())
	case Right:
		f.goalX = -1
		f.moveTo(f.stepRight())
	case Up:
		f.moveVertical(-1)
	case Down:
		f.moveVertical(1)
	}
	f.updateSelectionHead(extend)
}

func (f *Field) updateSelectionHead(extend bool) {
	if !extend || f.sel == nil {
		return
	}
	f.sel.Head = f.cur
	if f.sel.IsEmpty() {
		f.sel = nil
	}
}

func (f *Field) stepLeft() textbuf.Position {
	if f.cur.Col > 1 {
		return textbuf.Position{Line: f.cur.Line, Col: f.cur.Col - 1}
	}
	if f.cur.Line > 1 {
		prev := f.cur.Line - 1
		return textbuf.Position{Line: prev, Col: f.buf.LineLen(prev) + 1}
	}
	return f.cur
}

func (f *Field) stepRight() textbuf.Position {
	if f.cur.Col <= f.buf.LineLen(f.cur.Line) {
		return textbuf.Position{Line: f.cur.Line, Col: f.cur.Col + 1}
	}
	if f.cur.Line < f.buf.LineCount() {
		return textbuf.Position{Line: f.cur.Line + 1, Col: 1}
	}
	return f.cur
}

// moveVertical steps one display row, preserving the pixel goal column
// so a cursor moving through short rows returns to its horizontal
// position.
func (f *Field) moveVertical(delta int) {
	if f.goalX < 0 {
		x, _ := f.CursorPixel()
		f.goalX = x
	}
	dp := f.layout.ToDisplay(f.cur)
	target := dp.Row + delta
	if target < 1 || target > f.layout.RowCount() {
		return
	}
	col := f.colForX(target, f.goalX)
	f.moveTo(f.layout.ToLogical(wrap.DisplayPos{Row: target, Col: col}))
}

// colForX finds the display column in a row whose left edge is nearest
// the given pixel offset.
func (f *Field) colForX(row, x int) int {
	r, ok := f.layout.Row(row)
	if !ok {
		return 1
	}
	text := textbuf.SliceGraphemes(f.buf.Line(r.Line), r.StartCol, r.EndCol)
	clusters := textbuf.Graphemes(text)

	width := 0
	for i, cl := range clusters {
		cw := f.metrics.MeasureText(cl)
		if width+cw/2 >= x {
			return i + 1
		}
		width += cw
	}
	return len(clusters) + 1
}

// Home moves to the start of the cursor's display row, or the line
// start when wrapping is off.
func (f *Field) Home(extend bool) {
	if !f.Focused() {
		return
	}
	f.extendOrDrop(extend)
	f.goalX = -1
	dp := f.layout.ToDisplay(f.cur)
	f.moveTo(f.layout.ToLogical(wrap.DisplayPos{Row: dp.Row, Col: 1}))
	f.updateSelectionHead(extend)
}

// End moves past the last grapheme of the cursor's display row.
func (f *Field) End(extend bool) {
	if !f.Focused() {
		return
	}
	f.extendOrDrop(extend)
	f.goalX = -1
	dp := f.layout.ToDisplay(f.cur)
	r, ok := f.layout.Row(dp.Row)
	if !ok {
		return
	}
	f.moveTo(f.layout.ToLogical(wrap.DisplayPos{Row: dp.Row, Col: r.Span() + 1}))
	f.updateSelectionHead(extend)
}

// DocStart moves to the first position of the buffer.
func (f *Field) DocStart(extend bool) {
	if !f.Focused() {
		return
	}
	f.extendOrDrop(extend)
	f.goalX = -1
	f.moveTo(textbuf.Start())
	f.updateSelectionHead(extend)
}

// DocEnd moves past the last grapheme of the buffer.
func (f *Field) DocEnd(extend bool) {
	if !f.Focused() {
		return
	}
	f.extendOrDrop(extend)
	f.goalX = -1
	f.moveTo(f.buf.End())
	f.updateSelectionHead(extend)
}

// Click focuses the field and places the cursor at the buffer position
// nearest the given content-space pixel coordinates. Scroll offsets
// are applied by the field, so hosts pass viewport-relative
// coordinates inside the text area.
func (f *Field) Click(x, y int, extend bool) {
	f.Focus()
	f.extendOrDrop(extend)
	f.goalX = -1

	sc := f.scroll.Scroll()
	cx, cy := x+sc.X, y+sc.Y

	row := cy/f.metrics.LineHeight() + 1
	if row < 1 {
		row = 1
	}
	if row > f.layout.RowCount() {
		row = f.layout.RowCount()
	}
	col := f.colForX(row, cx)
	f.moveTo(f.layout.ToLogical(wrap.DisplayPos{Row: row, Col: col}))
	f.updateSelectionHead(extend)
}

// ClickOutside blurs the field.
func (f *Field) ClickOutside() {
	f.Blur()
}
