package viewport

// VisibleRange returns the inclusive 1-based display-row interval that
// overlaps the pixel window [scrollY, scrollY+viewportHeight), expanded
// by margin rows on each side and clamped to [1, totalRows].
//
// Degenerate inputs are defined, not errors: a non-positive row height
// is treated as 1, and a zero-height viewport yields a single-row
// range.
func VisibleRange(scrollY, viewportHeight, rowHeight, totalRows, margin int) (first, last int) {
	if rowHeight < 1 {
		rowHeight = 1
	}
	if scrollY < 0 {
		scrollY = 0
	}
	if viewportHeight < 0 {
		viewportHeight = 0
	}
	if margin < 0 {
		margin = 0
	}
	if totalRows < 1 {
		totalRows = 1
	}

	first = scrollY/rowHeight + 1 - margin
	last = ceilDiv(scrollY+viewportHeight, rowHeight) + margin

	if first < 1 {
		first = 1
	}
	if last > totalRows {
		last = totalRows
	}
	if last < first {
		last = first
	}
	if first > totalRows {
		first, last = totalRows, totalRows
	}
	return first, last
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
