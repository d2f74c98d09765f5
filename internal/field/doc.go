// Package field implements an editing surface: one buffer/cursor pair
// composed with the edit reducer, the word wrapper, and the scroll
// controller, plus the focus state machine and host notifications.
//
// A Field is owned by exactly one host surface and is not safe for
// concurrent use. Its lifecycle is create, mutate, discard; state is
// exchanged between instances only through Text and SetText snapshots.
//
// After every mutating or cursor-moving operation the field rewraps as
// needed, auto-scrolls to keep the cursor visible, and publishes the
// corresponding events. The host then renders only the display rows in
// VisibleRange, which bounds per-keystroke cost regardless of document
// size.
//
// The focus state machine has exactly two states. Keyboard editing and
// cursor motion are accepted only while focused; Click focuses the
// field and ClickOutside blurs it.
package field
