package field

import (
	"strings"

	"github.com/editkit/editkit/internal/edit"
	"github.com/editkit/editkit/internal/event"
	"github.com/editkit/editkit/internal/textbuf"
)

// apply runs one command through the reducer and refreshes derived
// state. Wrapping, auto-scroll, and event publication all happen here
// so every mutation path behaves the same.
func (f *Field) apply(cmd edit.Command) {
	prevBuf := f.buf
	prevCur := f.cur

	f.buf, f.cur = edit.Apply(f.buf, f.cur, cmd)

	textChanged := !f.buf.Equal(prevBuf)
	if textChanged {
		f.relayout()
	}
	cursorMoved := f.cur != prevCur
	if textChanged || cursorMoved {
		f.goalX = -1
		f.blinkOn = true
		f.ensureCursorVisible()
	}
	if textChanged {
		f.publish(event.TextChanged, event.TextChangedPayload{Text: f.buf.Text()})
	}
	if cursorMoved {
		f.publishCursorMoved()
	}
}

// deleteSelection removes the active selection, if any, and reports
// whether it did.
func (f *Field) deleteSelection() bool {
	if f.sel == nil || f.sel.IsEmpty() {
		f.sel = nil
		return false
	}
	start, end := f.sel.Normalized()
	f.sel = nil
	f.apply(edit.DeleteRange{Start: start, End: end})
	return true
}

// InsertText inserts text at the cursor, replacing any active
// selection. In single-line mode newlines are flattened to spaces.
func (f *Field) InsertText(text string) {
	if !f.Focused() || text == "" {
		return
	}
	if f.singleLine {
		text = flattenNewlines(text)
		if text == "" {
			return
		}
	}
	f.deleteSelection()
	f.apply(edit.InsertText{Text: text})
}

func flattenNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// InsertNewline splits the current line at the cursor. In single-line
// mode the buffer is untouched and an enter event is published
// instead.
func (f *Field) InsertNewline() {
	if !f.Focused() {
		return
	}
	if f.singleLine {
		f.publish(event.EnterPressed, event.EnterPressedPayload{Text: f.buf.Text()})
		return
	}
	f.deleteSelection()
	f.apply(edit.InsertNewline{})
}

// Backspace deletes the grapheme before the cursor, or the active
// selection if one exists. At the start of a line it joins with the
// previous line; at the buffer start it is a no-op.
func (f *Field) Backspace() {
	if !f.Focused() {
		return
	}
	if f.deleteSelection() {
		return
	}
	f.apply(edit.DeleteBefore{})
}

// Delete removes the grapheme at the cursor, or the active selection
// if one exists. At the end of a line it joins the next line; at the
// buffer end it is a no-op.
func (f *Field) Delete() {
	if !f.Focused() {
		return
	}
	if f.deleteSelection() {
		return
	}
	f.apply(edit.DeleteAt{})
}

// DeleteLine removes the cursor's line entirely.
func (f *Field) DeleteLine() {
	if !f.Focused() {
		return
	}
	f.sel = nil
	f.apply(edit.DeleteLine{Line: f.cur.Line})
}

// SetText replaces the entire content and resets the cursor to the
// buffer start. It works regardless of focus: it is the host-side
// snapshot exchange, not a keyboard operation.
func (f *Field) SetText(text string) {
	f.sel = nil
	if f.singleLine {
		text = flattenNewlines(text)
	}
	f.apply(edit.SetText{Text: text})
}

// SelectAll selects the whole buffer and moves the cursor to its end.
func (f *Field) SelectAll() {
	if !f.Focused() {
		return
	}
	sel := textbuf.NewSelection(textbuf.Start(), f.buf.End())
	f.sel = &sel
	f.moveTo(f.buf.End())
}

// SelectedText returns the text of the active selection.
func (f *Field) SelectedText() string {
	if f.sel == nil {
		return ""
	}
	return f.sel.Text(f.buf)
}

// Copy writes the selection to the clipboard. With no selection, or
// with an unavailable clipboard, it is a no-op.
func (f *Field) Copy() {
	if !f.Focused() || f.sel == nil || f.sel.IsEmpty() {
		return
	}
	_ = f.clip.Write(f.sel.Text(f.buf))
}

// Cut copies the selection to the clipboard and deletes it. The
// deletion happens even when the clipboard write fails, matching the
// buffer's role as the source of truth.
func (f *Field) Cut() {
	if !f.Focused() || f.sel == nil || f.sel.IsEmpty() {
		return
	}
	_ = f.clip.Write(f.sel.Text(f.buf))
	f.deleteSelection()
}

// Paste inserts clipboard content at the cursor, replacing any active
// selection. An unavailable clipboard is a no-op.
func (f *Field) Paste() {
	if !f.Focused() {
		return
	}
	text, err := f.clip.Read()
	if err != nil || text == "" {
		return
	}
	f.InsertText(text)
}
