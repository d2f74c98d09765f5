package wrap

import "github.com/rivo/uniseg"

// Measurer reports the rendered width of a string in pixels.
// Implementations must be deterministic for a given input.
type Measurer interface {
	MeasureText(s string) int
}

// FontMetrics extends Measurer with the vertical metrics a host needs
// to position lines and the text baseline.
type FontMetrics interface {
	Measurer

	// LineHeight returns the height of one display row in pixels.
	LineHeight() int

	// Ascent returns the distance from the top of a row to the text
	// baseline in pixels.
	Ascent() int
}

// FixedMetrics is a deterministic fixed-width FontMetrics. Width is the
// monospace cell count of the string times CellWidth, which matches
// terminal rendering exactly and approximates proportional fonts well
// enough to act as a fallback when host metrics are unavailable.
type FixedMetrics struct {
	CellWidth  int
	CellHeight int
	CellAscent int
}

// DefaultMetrics returns fixed metrics sized like a common 16px
// monospace font.
func DefaultMetrics() FixedMetrics {
	return FixedMetrics{CellWidth: 8, CellHeight: 16, CellAscent: 12}
}

// CellMetrics returns metrics where one cell is one pixel, so pixel
// arithmetic degenerates to cell arithmetic. Terminal hosts use this.
func CellMetrics() FixedMetrics {
	return FixedMetrics{CellWidth: 1, CellHeight: 1, CellAscent: 1}
}

// MeasureText returns the display width of s.
func (m FixedMetrics) MeasureText(s string) int {
	w := m.CellWidth
	if w < 1 {
		w = 1
	}
	return uniseg.StringWidth(s) * w
}

// LineHeight returns the row height.
func (m FixedMetrics) LineHeight() int {
	if m.CellHeight < 1 {
		return 1
	}
	return m.CellHeight
}

// Ascent returns the baseline offset.
func (m FixedMetrics) Ascent() int {
	if m.CellAscent < 1 {
		return 1
	}
	return m.CellAscent
}
