package edit

import "github.com/editkit/editkit/internal/textbuf"

// Command is an edit operation applied by Apply. The set of commands is
// closed: only types in this package implement it.
type Command interface {
	isCommand()
}

// InsertText inserts text at the cursor. Text may contain newlines, in
// which case the current line is split and the interior lines are
// inserted whole. The cursor ends immediately after the inserted text.
type InsertText struct {
	Text string
}

// InsertNewline splits the current line at the cursor.
// The cursor moves to the start of the new line.
type InsertNewline struct{}

// DeleteBefore removes the grapheme immediately before the cursor
// (Backspace). At column 1 it joins the current line onto the previous
// line. At document start it is a no-op.
type DeleteBefore struct{}

// DeleteAt removes the grapheme at the cursor (the Delete key). At end
// of line it joins the next line into the current one. At document end
// it is a no-op.
type DeleteAt struct{}

// DeleteRange removes the text between two positions, including any
// newlines spanned. The cursor ends at the start of the removed range.
// An empty range is a no-op.
type DeleteRange struct {
	Start textbuf.Position
	End   textbuf.Position
}

// DeleteLine removes the 1-based line Line entirely. Removing the only
// line leaves a single empty line. Out-of-range lines are a no-op.
type DeleteLine struct {
	Line int
}

// SetText replaces the entire buffer content and resets the cursor to
// the document start.
type SetText struct {
	Text string
}

func (InsertText) isCommand()    {}
func (InsertNewline) isCommand() {}
func (DeleteBefore) isCommand()  {}
func (DeleteAt) isCommand()      {}
func (DeleteRange) isCommand()   {}
func (DeleteLine) isCommand()    {}
func (SetText) isCommand()       {}
