// Package edit defines the edit command set and the pure reducer that
// applies a command to a (Buffer, Position) pair.
//
// Commands form a closed tagged union: every command type embeds the
// unexported isCommand marker, and Apply switches exhaustively over
// them. Apply is pure and total. It never mutates its inputs, never
// returns an error, and absorbs every boundary condition (delete at
// document start, delete past document end, out-of-range line numbers)
// as a no-op returning the pair unchanged. The returned position always
// satisfies the cursor clamp invariant for the returned buffer.
package edit
