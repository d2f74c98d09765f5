// Package viewport computes which display rows need rendering and
// maintains pixel scroll offsets, including auto-scroll that keeps the
// cursor inside the visible window.
//
// VisibleRange is the culler: given a vertical scroll offset, viewport
// height, and row height it returns the minimal inclusive display-row
// interval overlapping the window, expanded by a margin to avoid
// pop-in during fast scrolling. Hosts materialize only that interval,
// which bounds per-keystroke render cost regardless of document size.
//
// Controller owns a ScrollState and clamps every adjustment to
// [0, maxScroll] in each axis. A Controller belongs to a single editing
// surface and is not safe for concurrent use; the editing core is
// single-threaded by design.
package viewport
