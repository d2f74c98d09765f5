// Package textbuf provides the canonical line storage and cursor model
// for the editing core.
//
// The textbuf package provides:
//
//   - Buffer: an immutable, copy-on-write sequence of lines
//   - Position: a 1-based line/column cursor with clamping
//   - Selection: an anchor/head pair normalized on demand
//   - Grapheme-cluster helpers for column arithmetic
//
// Buffer is a value type. Every mutation returns a new Buffer that
// shares no mutable state with its predecessor, so any Buffer value is
// a stable snapshot of the document at the moment it was produced.
//
// Coordinates:
//
// Lines and columns are 1-based. A column counts grapheme clusters, not
// bytes or runes, so multi-code-point sequences (combining marks,
// emoji) occupy a single column. Column len+1 is the valid one-past-end
// insertion point of a line.
//
// Basic usage:
//
//	buf := textbuf.FromString("hello\nworld")
//	buf.LineCount()  // 2
//	buf.Line(2)      // "world"
//	buf.Line(99)     // "" (out of range is never an error)
package textbuf
