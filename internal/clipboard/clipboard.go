// Package clipboard is the boundary to the system clipboard. Failures
// are expected and non-fatal: callers treat a failed read or write as a
// no-op, so a host without clipboard access degrades gracefully.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no system clipboard is accessible.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard reads and writes string content.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// System is the OS clipboard.
type System struct{}

// NewSystem returns the OS clipboard.
func NewSystem() *System {
	return &System{}
}

// Read returns the clipboard content.
func (*System) Read() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	return clipboard.ReadAll()
}

// Write replaces the clipboard content.
func (*System) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// Memory is an in-process clipboard used in tests and as a fallback
// when the system clipboard is unavailable.
type Memory struct {
	text string
	set  bool
}

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Read returns the stored text, or ErrUnavailable if nothing has been
// written yet.
func (m *Memory) Read() (string, error) {
	if !m.set {
		return "", ErrUnavailable
	}
	return m.text, nil
}

// Write stores text.
func (m *Memory) Write(text string) error {
	m.text = text
	m.set = true
	return nil
}
