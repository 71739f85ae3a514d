// Package engine ties the keyboard hook to the keybind registry: it tracks
// the pressed keys, matches them on every press and reports triggers.
package engine

import "keyhook/keys"

// Tracker holds the keys currently down. It is owned by the dispatch
// goroutine and is not safe for concurrent use.
type Tracker struct {
	pressed keys.Set
}

func NewTracker() *Tracker {
	return &Tracker{pressed: keys.NewSet()}
}

// Press marks k down. Pressing a key that is already down is a no-op.
func (t *Tracker) Press(k keys.Key)   { t.pressed.Add(k) }
func (t *Tracker) Release(k keys.Key) { t.pressed.Remove(k) }

// Pressed returns the live set. Callers must not modify it.
func (t *Tracker) Pressed() keys.Set { return t.pressed }

func (t *Tracker) Reset() { clear(t.pressed) }
