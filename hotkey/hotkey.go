// Package hotkey installs a global keyboard hook and reports every key
// press and release as an Event, regardless of which window has focus.
package hotkey

import (
	"errors"

	"keyhook/keys"
)

type Kind uint8

const (
	Other Kind = iota
	Press
	Release
)

func (k Kind) String() string {
	switch k {
	case Press:
		return "press"
	case Release:
		return "release"
	}
	return "other"
}

type Event struct {
	Kind Kind
	Key  keys.Key
}

// ErrHookClosed is reported when the OS hook stops delivering events
// without Unregister having been called.
var ErrHookClosed = errors.New("keyboard hook closed")

// Hook is a global keyboard listener. Events are delivered in arrival
// order on a single channel; the channel is closed once the backend stops.
type Hook interface {
	Register() error
	Unregister()
	Events() <-chan Event
}
