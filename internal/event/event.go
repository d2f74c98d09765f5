// Package event provides the notification channel between the editing
// core and its host. Events are plain data records published
// synchronously, in subscription order, on the goroutine that performed
// the edit; transport beyond that is a host concern.
package event

import (
	"time"

	"github.com/google/uuid"
)

// Type identifies an event kind.
type Type string

// Events emitted by an editing surface.
const (
	TextChanged  Type = "field.text.changed"
	CursorMoved  Type = "field.cursor.moved"
	FocusGained  Type = "field.focus.gained"
	FocusLost    Type = "field.focus.lost"
	EnterPressed Type = "field.enter.pressed"
)

// Event is an immutable notification record.
type Event struct {
	// Type is the event kind.
	Type Type

	// Payload contains the event-specific data; one of the *Payload
	// types in this package, or nil for focus events.
	Payload any

	// Metadata contains standard event information.
	Metadata Metadata
}

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID uniquely identifies this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the surface that published the event.
	Source string
}

// New creates an event with fresh metadata.
func New(t Type, payload any, source string) Event {
	return Event{
		Type:    t,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}

// TextChangedPayload carries the full text after a buffer mutation.
type TextChangedPayload struct {
	Text string
}

// CursorMovedPayload carries the cursor's display coordinates after a
// cursor-moving operation.
type CursorMovedPayload struct {
	Row int // 1-based display row
	Col int // 1-based display column
	X   int // pixel offset within the text area
	Y   int // pixel offset of the row top
}

// EnterPressedPayload carries the field text when Enter is pressed in
// single-line mode.
type EnterPressedPayload struct {
	Text string
}
