package edit

import (
	"testing"

	"github.com/editkit/editkit/internal/textbuf"
)

func applySeq(t *testing.T, buf textbuf.Buffer, pos textbuf.Position, cmds ...Command) (textbuf.Buffer, textbuf.Position) {
	t.Helper()
	for _, cmd := range cmds {
		buf, pos = Apply(buf, pos, cmd)
		if !pos.Valid(buf) {
			t.Fatalf("cursor %s escaped clamp invariant after %T", pos, cmd)
		}
	}
	return buf, pos
}

func TestInsertText(t *testing.T) {
	tests := []struct {
		name    string
		buf     string
		pos     textbuf.Position
		text    string
		wantBuf string
		wantPos textbuf.Position
	}{
		{"at start", "world", textbuf.Position{Line: 1, Col: 1}, "hello ", "hello world", textbuf.Position{Line: 1, Col: 7}},
		{"mid line", "held", textbuf.Position{Line: 1, Col: 3}, "llo wor", "hello world", textbuf.Position{Line: 1, Col: 10}},
		{"at end", "hello", textbuf.Position{Line: 1, Col: 6}, "!", "hello!", textbuf.Position{Line: 1, Col: 7}},
		{"empty text no-op", "abc", textbuf.Position{Line: 1, Col: 2}, "", "abc", textbuf.Position{Line: 1, Col: 2}},
		{"multiline", "ab", textbuf.Position{Line: 1, Col: 2}, "1\n2\n3", "a1\n2\n3b", textbuf.Position{Line: 3, Col: 2}},
		{"cr normalized", "ab", textbuf.Position{Line: 1, Col: 2}, "x\r\ny", "ax\nyb", textbuf.Position{Line: 2, Col: 2}},
		{"grapheme cluster", "ab", textbuf.Position{Line: 1, Col: 2}, "é", "aéb", textbuf.Position{Line: 1, Col: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, pos := Apply(textbuf.FromString(tt.buf), tt.pos, InsertText{Text: tt.text})
			if buf.Text() != tt.wantBuf {
				t.Errorf("buffer: expected %q, got %q", tt.wantBuf, buf.Text())
			}
			if pos != tt.wantPos {
				t.Errorf("cursor: expected %s, got %s", tt.wantPos, pos)
			}
		})
	}
}

func TestInsertNewline(t *testing.T) {
	tests := []struct {
		name    string
		buf     string
		pos     textbuf.Position
		wantBuf string
	}{
		{"mid line", "hello", textbuf.Position{Line: 1, Col: 3}, "he\nllo"},
		{"line start", "hello", textbuf.Position{Line: 1, Col: 1}, "\nhello"},
		{"line end", "hello", textbuf.Position{Line: 1, Col: 6}, "hello\n"},
		{"empty buffer", "", textbuf.Position{Line: 1, Col: 1}, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, pos := Apply(textbuf.FromString(tt.buf), tt.pos, InsertNewline{})
			if buf.Text() != tt.wantBuf {
				t.Errorf("buffer: expected %q, got %q", tt.wantBuf, buf.Text())
			}
			want := textbuf.Position{Line: tt.pos.Line + 1, Col: 1}
			if pos != want {
				t.Errorf("cursor: expected %s, got %s", want, pos)
			}
		})
	}
}

func TestDeleteBefore(t *testing.T) {
	t.Run("removes grapheme and decrements", func(t *testing.T) {
		buf, pos := Apply(textbuf.FromString("abc"), textbuf.Position{Line: 1, Col: 3}, DeleteBefore{})
		if buf.Text() != "ac" || pos != (textbuf.Position{Line: 1, Col: 2}) {
			t.Errorf("got %q at %s", buf.Text(), pos)
		}
	})

	t.Run("removes whole cluster", func(t *testing.T) {
		buf, pos := Apply(textbuf.FromString("aéb"), textbuf.Position{Line: 1, Col: 3}, DeleteBefore{})
		if buf.Text() != "ab" || pos != (textbuf.Position{Line: 1, Col: 2}) {
			t.Errorf("got %q at %s", buf.Text(), pos)
		}
	})

	t.Run("joins previous line", func(t *testing.T) {
		buf, pos := Apply(textbuf.FromString("ab\ncd"), textbuf.Position{Line: 2, Col: 1}, DeleteBefore{})
		if buf.Text() != "abcd" {
			t.Errorf("expected abcd, got %q", buf.Text())
		}
		if pos != (textbuf.Position{Line: 1, Col: 3}) {
			t.Errorf("cursor should land at join point, got %s", pos)
		}
	})

	t.Run("no-op at document start", func(t *testing.T) {
		orig := textbuf.FromString("ab\ncd")
		buf, pos := Apply(orig, textbuf.Position{Line: 1, Col: 1}, DeleteBefore{})
		if !buf.Equal(orig) || pos != (textbuf.Position{Line: 1, Col: 1}) {
			t.Errorf("expected unchanged pair, got %q at %s", buf.Text(), pos)
		}
	})

	t.Run("idempotent at document start", func(t *testing.T) {
		buf, pos := applySeq(t, textbuf.FromString("x"), textbuf.Position{Line: 1, Col: 1},
			DeleteBefore{}, DeleteBefore{}, DeleteBefore{})
		if buf.Text() != "x" || pos != (textbuf.Position{Line: 1, Col: 1}) {
			t.Errorf("got %q at %s", buf.Text(), pos)
		}
	})
}

func TestDeleteAt(t *testing.T) {
	t.Run("removes grapheme at cursor", func(t *testing.T) {
		buf, pos := Apply(textbuf.FromString("abc"), textbuf.Position{Line: 1, Col: 2}, DeleteAt{})
		if buf.Text() != "ac" || pos != (textbuf.Position{Line: 1, Col: 2}) {
			t.Errorf("got %q at %s", buf.Text(), pos)
		}
	})

	t.Run("joins next line at end of line", func(t *testing.T) {
		buf, pos := Apply(textbuf.FromString("ab\ncd"), textbuf.Position{Line: 1, Col: 3}, DeleteAt{})
		if buf.Text() != "abcd" || pos != (textbuf.Position{Line: 1, Col: 3}) {
			t.Errorf("got %q at %s", buf.Text(), pos)
		}
	})

	t.Run("no-op at document end", func(t *testing.T) {
		orig := textbuf.FromString("ab\ncd")
		buf, pos := Apply(orig, textbuf.Position{Line: 2, Col: 3}, DeleteAt{})
		if !buf.Equal(orig) || pos != (textbuf.Position{Line: 2, Col: 3}) {
			t.Errorf("expected unchanged pair, got %q at %s", buf.Text(), pos)
		}
	})
}

func TestInsertDeleteInverse(t *testing.T) {
	// InsertText followed by DeleteBefore at the resulting cursor
	// reconstructs the original pair.
	starts := []struct {
		buf string
		pos textbuf.Position
	}{
		{"hello", textbuf.Position{Line: 1, Col: 1}},
		{"hello", textbuf.Position{Line: 1, Col: 3}},
		{"hello", textbuf.Position{Line: 1, Col: 6}},
		{"a\nb", textbuf.Position{Line: 2, Col: 1}},
	}

	for _, s := range starts {
		orig := textbuf.FromString(s.buf)
		buf, pos := Apply(orig, s.pos, InsertText{Text: "Z"})
		buf, pos = Apply(buf, pos, DeleteBefore{})
		if !buf.Equal(orig) || pos != s.pos {
			t.Errorf("insert/delete from %s: got %q at %s", s.pos, buf.Text(), pos)
		}
	}
}

func TestNewlineDeleteInverse(t *testing.T) {
	orig := textbuf.FromString("hello")
	start := textbuf.Position{Line: 1, Col: 3}

	buf, pos := Apply(orig, start, InsertNewline{})
	buf, pos = Apply(buf, pos, DeleteBefore{})
	if !buf.Equal(orig) || pos != start {
		t.Errorf("newline/delete: got %q at %s", buf.Text(), pos)
	}
}

func TestBackspaceTwiceInsertTwice(t *testing.T) {
	// Backspace eats the last two graphemes, typing appends in place.
	buf, pos := applySeq(t, textbuf.FromString("Test"), textbuf.Position{Line: 1, Col: 5},
		DeleteBefore{}, DeleteBefore{}, InsertText{Text: "X"}, InsertText{Text: "X"})
	if buf.Text() != "TeXX" {
		t.Errorf("expected TeXX, got %q", buf.Text())
	}
	if pos != (textbuf.Position{Line: 1, Col: 5}) {
		t.Errorf("expected (1:5), got %s", pos)
	}
}

func TestBackspaceTwiceInsertTwiceMidLine(t *testing.T) {
	buf, pos := applySeq(t, textbuf.FromString("TeABst"), textbuf.Position{Line: 1, Col: 5},
		DeleteBefore{}, DeleteBefore{}, InsertText{Text: "X"}, InsertText{Text: "X"})
	if buf.Text() != "TeXXst" {
		t.Errorf("expected TeXXst, got %q", buf.Text())
	}
	if pos != (textbuf.Position{Line: 1, Col: 5}) {
		t.Errorf("expected (1:5), got %s", pos)
	}
}

func TestSplitThenType(t *testing.T) {
	buf, pos := applySeq(t, textbuf.FromString("hello"), textbuf.Position{Line: 1, Col: 6},
		InsertNewline{}, InsertText{Text: "x"}, InsertText{Text: "y"}, InsertText{Text: "z"})
	if buf.Text() != "hello\nxyz" {
		t.Errorf("expected hello\\nxyz, got %q", buf.Text())
	}
	if pos != (textbuf.Position{Line: 2, Col: 4}) {
		t.Errorf("expected (2:4), got %s", pos)
	}
}

func TestDeleteRange(t *testing.T) {
	tests := []struct {
		name    string
		buf     string
		a, b    textbuf.Position
		wantBuf string
		wantPos textbuf.Position
	}{
		{"within line", "hello", textbuf.Position{Line: 1, Col: 2}, textbuf.Position{Line: 1, Col: 4}, "hlo", textbuf.Position{Line: 1, Col: 2}},
		{"backward given", "hello", textbuf.Position{Line: 1, Col: 4}, textbuf.Position{Line: 1, Col: 2}, "hlo", textbuf.Position{Line: 1, Col: 2}},
		{"across lines", "ab\ncd\nef", textbuf.Position{Line: 1, Col: 2}, textbuf.Position{Line: 3, Col: 2}, "af", textbuf.Position{Line: 1, Col: 2}},
		{"empty range no-op", "ab", textbuf.Position{Line: 1, Col: 2}, textbuf.Position{Line: 1, Col: 2}, "ab", textbuf.Position{Line: 1, Col: 2}},
		{"whole buffer", "ab\ncd", textbuf.Position{Line: 1, Col: 1}, textbuf.Position{Line: 2, Col: 3}, "", textbuf.Position{Line: 1, Col: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, pos := Apply(textbuf.FromString(tt.buf), tt.a, DeleteRange{Start: tt.a, End: tt.b})
			if buf.Text() != tt.wantBuf {
				t.Errorf("buffer: expected %q, got %q", tt.wantBuf, buf.Text())
			}
			if pos != tt.wantPos {
				t.Errorf("cursor: expected %s, got %s", tt.wantPos, pos)
			}
		})
	}
}

func TestDeleteLine(t *testing.T) {
	t.Run("removes line and reclamps cursor", func(t *testing.T) {
		buf, pos := Apply(textbuf.FromString("aaa\nbb\nc"), textbuf.Position{Line: 3, Col: 2}, DeleteLine{Line: 3})
		if buf.Text() != "aaa\nbb" {
			t.Errorf("expected aaa\\nbb, got %q", buf.Text())
		}
		if pos != (textbuf.Position{Line: 2, Col: 2}) {
			t.Errorf("expected (2:2), got %s", pos)
		}
	})

	t.Run("out of range no-op", func(t *testing.T) {
		orig := textbuf.FromString("a\nb")
		buf, pos := Apply(orig, textbuf.Position{Line: 1, Col: 1}, DeleteLine{Line: 5})
		if !buf.Equal(orig) || pos != (textbuf.Position{Line: 1, Col: 1}) {
			t.Errorf("expected unchanged, got %q at %s", buf.Text(), pos)
		}
	})

	t.Run("only line leaves empty buffer", func(t *testing.T) {
		buf, pos := Apply(textbuf.FromString("solo"), textbuf.Position{Line: 1, Col: 3}, DeleteLine{Line: 1})
		if !buf.IsEmpty() || pos != (textbuf.Position{Line: 1, Col: 1}) {
			t.Errorf("got %q at %s", buf.Text(), pos)
		}
	})
}

func TestSetText(t *testing.T) {
	buf, pos := Apply(textbuf.FromString("old"), textbuf.Position{Line: 1, Col: 4}, SetText{Text: "new\ncontent"})
	if buf.Text() != "new\ncontent" {
		t.Errorf("expected new\\ncontent, got %q", buf.Text())
	}
	if pos != textbuf.Start() {
		t.Errorf("cursor should reset to start, got %s", pos)
	}
}

func TestApplyClampsStaleCursor(t *testing.T) {
	// A cursor from an older buffer revision is clamped before use.
	buf, pos := Apply(textbuf.FromString("ab"), textbuf.Position{Line: 9, Col: 9}, InsertText{Text: "!"})
	if buf.Text() != "ab!" || pos != (textbuf.Position{Line: 1, Col: 4}) {
		t.Errorf("got %q at %s", buf.Text(), pos)
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	orig := textbuf.FromString("abc\ndef")
	Apply(orig, textbuf.Position{Line: 1, Col: 2}, InsertText{Text: "ZZZ"})
	Apply(orig, textbuf.Position{Line: 2, Col: 1}, DeleteBefore{})
	if orig.Text() != "abc\ndef" {
		t.Errorf("input buffer mutated: %q", orig.Text())
	}
}
