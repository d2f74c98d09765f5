package wrap

import (
	"testing"

	"github.com/editkit/editkit/internal/textbuf"
)

// cells returns a wrapper measuring one pixel per cell, so maxWidth is
// a character count.
func cells(mode Mode, maxWidth int) *Wrapper {
	return New(mode, maxWidth, CellMetrics())
}

func rowTexts(l *Layout) []string {
	out := make([]string, 0, l.RowCount())
	for i := 1; i <= l.RowCount(); i++ {
		out = append(out, l.RowText(i))
	}
	return out
}

func assertRows(t *testing.T, l *Layout, want []string) {
	t.Helper()
	got := rowTexts(l)
	if len(got) != len(want) {
		t.Fatalf("expected %d rows %q, got %d rows %q", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: expected %q, got %q", i+1, want[i], got[i])
		}
	}
}

func TestModeNoneIdentity(t *testing.T) {
	buf := textbuf.FromString("first line\nsecond\n\nlast")
	l := cells(ModeNone, 4).Layout(buf)

	assertRows(t, l, []string{"first line", "second", "", "last"})

	for line := 1; line <= buf.LineCount(); line++ {
		dp := l.ToDisplay(textbuf.Position{Line: line, Col: 1})
		if dp.Row != line || dp.Col != 1 {
			t.Errorf("line %d: expected identity mapping, got %v", line, dp)
		}
	}
}

func TestWordWrapGreedy(t *testing.T) {
	// Width fits 10 cells.
	buf := textbuf.FromString("a bb ccc dddd")
	l := cells(ModeWord, 10).Layout(buf)

	assertRows(t, l, []string{"a bb ccc", "dddd"})

	// The break space maps to the first row but is not rendered.
	r, _ := l.Row(1)
	if r.StartCol != 1 || r.EndCol != 10 || r.TextEnd != 9 {
		t.Errorf("row 1 span: got %+v", r)
	}
	r, _ = l.Row(2)
	if r.StartCol != 10 || r.EndCol != 14 {
		t.Errorf("row 2 span: got %+v", r)
	}
}

func TestWordWrapOverlongWordFallsBackToChar(t *testing.T) {
	buf := textbuf.FromString("a verylongword end")
	l := cells(ModeWord, 6).Layout(buf)

	assertRows(t, l, []string{"a", "verylo", "ngword", "end"})

	for i := 1; i <= l.RowCount(); i++ {
		if got := textbuf.GraphemeWidth(l.RowText(i)); got > 6 {
			t.Errorf("row %d overflows: width %d", i, got)
		}
		r, _ := l.Row(i)
		if r.Span() == 0 {
			t.Errorf("row %d is empty", i)
		}
	}
}

func TestCharWrap(t *testing.T) {
	buf := textbuf.FromString("abcdefgh")
	l := cells(ModeChar, 3).Layout(buf)

	assertRows(t, l, []string{"abc", "def", "gh"})
}

func TestCharWrapWideClusters(t *testing.T) {
	// CJK clusters are two cells wide.
	buf := textbuf.FromString("日本語abc")
	l := cells(ModeChar, 4).Layout(buf)

	assertRows(t, l, []string{"日本", "語ab", "c"})
}

func TestDegenerateWidthTakesOneClusterPerRow(t *testing.T) {
	buf := textbuf.FromString("日日")
	l := cells(ModeChar, 1).Layout(buf)

	// One cluster wider than the viewport still gets a row.
	assertRows(t, l, []string{"日", "日"})
}

func TestNonPositiveWidthBehavesAsNone(t *testing.T) {
	buf := textbuf.FromString("a bb ccc dddd")

	for _, width := range []int{0, -5} {
		l := cells(ModeWord, width).Layout(buf)
		if l.RowCount() != 1 {
			t.Errorf("width %d: expected 1 row, got %d", width, l.RowCount())
		}
	}
}

func TestEmptyLineGetsOneRow(t *testing.T) {
	buf := textbuf.FromString("aaaa\n\nbbbb")
	l := cells(ModeChar, 2).Layout(buf)

	assertRows(t, l, []string{"aa", "aa", "", "bb", "bb"})

	dp := l.ToDisplay(textbuf.Position{Line: 2, Col: 1})
	if dp != (DisplayPos{Row: 3, Col: 1}) {
		t.Errorf("empty line position: got %v", dp)
	}
}

func TestRowsForLine(t *testing.T) {
	buf := textbuf.FromString("abcdef\ngh")
	l := cells(ModeChar, 3).Layout(buf)

	if got := len(l.RowsForLine(1)); got != 2 {
		t.Errorf("line 1: expected 2 rows, got %d", got)
	}
	if got := len(l.RowsForLine(2)); got != 1 {
		t.Errorf("line 2: expected 1 row, got %d", got)
	}
	if l.RowsForLine(0) != nil || l.RowsForLine(9) != nil {
		t.Error("out-of-range lines should yield no rows")
	}
}

func TestRowsRangeClamped(t *testing.T) {
	buf := textbuf.FromString("abcdefgh")
	l := cells(ModeChar, 2).Layout(buf) // 4 rows

	if got := len(l.Rows(2, 3)); got != 2 {
		t.Errorf("expected 2 rows, got %d", got)
	}
	if got := len(l.Rows(-3, 99)); got != 4 {
		t.Errorf("expected all 4 rows, got %d", got)
	}
	if l.Rows(3, 2) != nil {
		t.Error("inverted range should be empty")
	}
}

func TestRoundTripAllModes(t *testing.T) {
	buffers := []string{
		"a bb ccc dddd",
		"hello world this is a longer line to wrap",
		"verylongsinglewordwithoutanyspaces",
		"short\n\nlines\nhere",
		"héllo wörld ééé 日本語テキスト",
		"",
		"   leading and trailing   ",
	}
	modes := []Mode{ModeNone, ModeWord, ModeChar}
	widths := []int{1, 3, 5, 10, 80}

	for _, text := range buffers {
		buf := textbuf.FromString(text)
		for _, mode := range modes {
			for _, width := range widths {
				l := New(mode, width, CellMetrics()).Layout(buf)
				for line := 1; line <= buf.LineCount(); line++ {
					for col := 1; col <= buf.LineLen(line)+1; col++ {
						p := textbuf.Position{Line: line, Col: col}
						dp := l.ToDisplay(p)
						back := l.ToLogical(dp)
						if back != p {
							t.Fatalf("mode=%s width=%d text=%q: %s -> %v -> %s",
								mode, width, text, p, dp, back)
						}
					}
				}
			}
		}
	}
}

func TestRowsTileEachLine(t *testing.T) {
	buf := textbuf.FromString("a bb ccc dddd ee fff\nabcdefghij")
	for _, mode := range []Mode{ModeWord, ModeChar} {
		l := cells(mode, 4).Layout(buf)
		for line := 1; line <= buf.LineCount(); line++ {
			rows := l.RowsForLine(line)
			wantStart := 1
			for i, r := range rows {
				if r.StartCol != wantStart {
					t.Errorf("mode=%s line %d row %d: starts at %d, expected %d",
						mode, line, i+1, r.StartCol, wantStart)
				}
				wantStart = r.EndCol
			}
			if wantStart != buf.LineLen(line)+1 {
				t.Errorf("mode=%s line %d: rows end at %d, expected %d",
					mode, line, wantStart, buf.LineLen(line)+1)
			}
		}
	}
}

func TestToLogicalClampsOutOfRange(t *testing.T) {
	buf := textbuf.FromString("abc")
	l := cells(ModeNone, 0).Layout(buf)

	if got := l.ToLogical(DisplayPos{Row: 99, Col: 99}); got != (textbuf.Position{Line: 1, Col: 4}) {
		t.Errorf("expected clamp to (1:4), got %s", got)
	}
	if got := l.ToLogical(DisplayPos{Row: -1, Col: -1}); got != (textbuf.Position{Line: 1, Col: 1}) {
		t.Errorf("expected clamp to (1:1), got %s", got)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"none", ModeNone},
		{"word", ModeWord},
		{"char", ModeChar},
		{"bogus", ModeNone},
		{"", ModeNone},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.in); got != tt.want {
			t.Errorf("ParseMode(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestFixedMetricsDeterministic(t *testing.T) {
	m := DefaultMetrics()
	a := m.MeasureText("hello 日本")
	b := m.MeasureText("hello 日本")
	if a != b {
		t.Errorf("measurement not deterministic: %d vs %d", a, b)
	}
	if m.MeasureText("日") != 2*m.CellWidth {
		t.Errorf("wide cluster should measure two cells")
	}
}
