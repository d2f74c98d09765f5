package textbuf

import (
	"strings"

	"github.com/rivo/uniseg"
)

// GraphemeCount returns the number of grapheme clusters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// GraphemeWidth returns the monospace display width of s in cells.
func GraphemeWidth(s string) int {
	return uniseg.StringWidth(s)
}

// SplitGraphemes splits s at the boundary before the 1-based grapheme
// column col. Column 1 yields ("", s); any column past the final
// cluster yields (s, "").
func SplitGraphemes(s string, col int) (before, after string) {
	if col <= 1 {
		return "", s
	}

	n := 1
	state := -1
	rest := s
	for len(rest) > 0 {
		if n >= col {
			break
		}
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		n++
	}
	return s[:len(s)-len(rest)], rest
}

// SliceGraphemes returns the substring of s covering 1-based grapheme
// columns [startCol, endCol). Out-of-range bounds are clamped.
func SliceGraphemes(s string, startCol, endCol int) string {
	if endCol <= startCol {
		return ""
	}
	_, tail := SplitGraphemes(s, startCol)
	head, _ := SplitGraphemes(tail, endCol-startCol+1)
	return head
}

// LastGrapheme returns s with its final grapheme cluster removed,
// along with the removed cluster. Empty input returns ("", "").
func LastGrapheme(s string) (rest, last string) {
	if s == "" {
		return "", ""
	}
	n := GraphemeCount(s)
	rest, last = SplitGraphemes(s, n)
	return rest, last
}

// FirstGrapheme returns the first grapheme cluster of s and the
// remainder. Empty input returns ("", "").
func FirstGrapheme(s string) (first, rest string) {
	if s == "" {
		return "", ""
	}
	first, rest, _, _ = uniseg.FirstGraphemeClusterInString(s, -1)
	return first, rest
}

// Graphemes splits s into its grapheme clusters.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	state := -1
	var cluster string
	for len(s) > 0 {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

// normalizeNewlines converts CRLF and lone CR line endings to LF.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}
