// Package wrap derives display rows from logical buffer lines under a
// width constraint and provides the bidirectional mapping between
// logical and display coordinates.
//
// A Layout is recomputed whenever buffer content, wrap mode, or
// available width changes; it is a pure function of those inputs. Rows
// are grapheme-column spans that tile their logical line, so every
// valid cursor position maps to exactly one display position and back:
//
//	ToLogical(ToDisplay(p)) == p
//
// holds for every position p valid in the laid-out buffer, in all wrap
// modes and at all widths.
//
// Width measurement is delegated to a Measurer so hosts can plug in
// real font metrics. FixedMetrics is the deterministic fallback used in
// tests and when no host metrics are available.
package wrap
