// Package shortcut registers the application's own global shortcut, which
// works even while keybinds are disabled.
package shortcut

import (
	"errors"

	"keyhook/hotkey"
	"keyhook/keys"
)

var ErrUnsupportedCombo = errors.New("shortcut must be modifiers plus exactly one key")

// Shortcut fires Keydown once each time its combination becomes fully
// pressed.
type Shortcut interface {
	Register() error
	Unregister()
	Keydown() <-chan struct{}
}

// chord turns a stream of key events into edge-triggered activations of
// one combination.
type chord struct {
	combo   keys.Set
	pressed keys.Set
}

func newChord(combo keys.Set) *chord {
	return &chord{combo: combo.Clone(), pressed: keys.NewSet()}
}

// feed reports whether ev completed the combination.
func (c *chord) feed(ev hotkey.Event) bool {
	switch ev.Kind {
	case hotkey.Press:
		was := c.pressed.Contains(c.combo)
		c.pressed.Add(ev.Key)
		return !was && c.pressed.Contains(c.combo)
	case hotkey.Release:
		c.pressed.Remove(ev.Key)
	}
	return false
}

// splitCombo separates the modifiers from the single main key.
func splitCombo(combo keys.Set) (mods []keys.Key, key keys.Key, err error) {
	for _, k := range combo.Keys() {
		if k.IsModifier() {
			mods = append(mods, k)
			continue
		}
		if key != keys.Unknown {
			return nil, keys.Unknown, ErrUnsupportedCombo
		}
		key = k
	}
	if key == keys.Unknown {
		return nil, keys.Unknown, ErrUnsupportedCombo
	}
	return mods, key, nil
}
