package edit

import (
	"strings"

	"github.com/editkit/editkit/internal/textbuf"
)

// Apply applies cmd to the (buf, pos) pair and returns the resulting
// pair. The input position is clamped to buf before the command runs,
// and the returned position is always valid for the returned buffer.
func Apply(buf textbuf.Buffer, pos textbuf.Position, cmd Command) (textbuf.Buffer, textbuf.Position) {
	pos = pos.Clamp(buf)

	switch c := cmd.(type) {
	case InsertText:
		return insertText(buf, pos, c.Text)
	case InsertNewline:
		return insertNewline(buf, pos)
	case DeleteBefore:
		return deleteBefore(buf, pos)
	case DeleteAt:
		return deleteAt(buf, pos)
	case DeleteRange:
		return deleteRange(buf, c.Start, c.End)
	case DeleteLine:
		return deleteLine(buf, pos, c.Line)
	case SetText:
		return textbuf.FromString(c.Text), textbuf.Start()
	default:
		// Command is a closed set; nothing else can reach here.
		return buf, pos
	}
}

func insertText(buf textbuf.Buffer, pos textbuf.Position, text string) (textbuf.Buffer, textbuf.Position) {
	if text == "" {
		return buf, pos
	}

	line := buf.Line(pos.Line)
	before, after := textbuf.SplitGraphemes(line, pos.Col)

	segs := strings.Split(normalize(text), "\n")
	if len(segs) == 1 {
		out := buf.ReplaceLine(pos.Line, before+text+after)
		pos.Col = textbuf.GraphemeCount(before+text) + 1
		return out, pos.Clamp(out)
	}

	replacement := make([]string, 0, len(segs))
	replacement = append(replacement, before+segs[0])
	replacement = append(replacement, segs[1:len(segs)-1]...)
	lastSeg := segs[len(segs)-1]
	replacement = append(replacement, lastSeg+after)

	out := buf.SpliceLines(pos.Line, 1, replacement...)
	pos = textbuf.Position{
		Line: pos.Line + len(segs) - 1,
		Col:  textbuf.GraphemeCount(lastSeg) + 1,
	}
	return out, pos.Clamp(out)
}

func insertNewline(buf textbuf.Buffer, pos textbuf.Position) (textbuf.Buffer, textbuf.Position) {
	before, after := textbuf.SplitGraphemes(buf.Line(pos.Line), pos.Col)
	out := buf.SpliceLines(pos.Line, 1, before, after)
	return out, textbuf.Position{Line: pos.Line + 1, Col: 1}
}

func deleteBefore(buf textbuf.Buffer, pos textbuf.Position) (textbuf.Buffer, textbuf.Position) {
	if pos.Col > 1 {
		before, after := textbuf.SplitGraphemes(buf.Line(pos.Line), pos.Col)
		rest, _ := textbuf.LastGrapheme(before)
		out := buf.ReplaceLine(pos.Line, rest+after)
		pos.Col = textbuf.GraphemeCount(rest) + 1
		return out, pos
	}

	if pos.Line > 1 {
		prev := buf.Line(pos.Line - 1)
		joined := prev + buf.Line(pos.Line)
		out := buf.SpliceLines(pos.Line-1, 2, joined)
		return out, textbuf.Position{
			Line: pos.Line - 1,
			Col:  textbuf.GraphemeCount(prev) + 1,
		}
	}

	// Document start.
	return buf, pos
}

func deleteAt(buf textbuf.Buffer, pos textbuf.Position) (textbuf.Buffer, textbuf.Position) {
	line := buf.Line(pos.Line)

	if pos.Col <= textbuf.GraphemeCount(line) {
		before, after := textbuf.SplitGraphemes(line, pos.Col)
		_, rest := textbuf.FirstGrapheme(after)
		return buf.ReplaceLine(pos.Line, before+rest), pos
	}

	if pos.Line < buf.LineCount() {
		joined := line + buf.Line(pos.Line+1)
		return buf.SpliceLines(pos.Line, 2, joined), pos
	}

	// Document end.
	return buf, pos
}

func deleteRange(buf textbuf.Buffer, a, b textbuf.Position) (textbuf.Buffer, textbuf.Position) {
	start, end := textbuf.NewSelection(a, b).Normalized()
	start = start.Clamp(buf)
	end = end.Clamp(buf)
	if start == end {
		return buf, start
	}

	if start.Line == end.Line {
		line := buf.Line(start.Line)
		before, _ := textbuf.SplitGraphemes(line, start.Col)
		_, after := textbuf.SplitGraphemes(line, end.Col)
		return buf.ReplaceLine(start.Line, before+after), start
	}

	before, _ := textbuf.SplitGraphemes(buf.Line(start.Line), start.Col)
	_, after := textbuf.SplitGraphemes(buf.Line(end.Line), end.Col)
	out := buf.SpliceLines(start.Line, end.Line-start.Line+1, before+after)
	return out, start.Clamp(out)
}

func deleteLine(buf textbuf.Buffer, pos textbuf.Position, n int) (textbuf.Buffer, textbuf.Position) {
	if n < 1 || n > buf.LineCount() {
		return buf, pos
	}
	out := buf.RemoveLine(n)
	return out, pos.Clamp(out)
}

func normalize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}
