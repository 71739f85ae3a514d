// Package keybind holds the registry of key combinations mapped to actions.
package keybind

import (
	"errors"

	"keyhook/keys"
)

var (
	ErrEmptyID  = errors.New("keybind id is empty")
	ErrNoKeys   = errors.New("keybind has no keys")
	ErrNotFound = errors.New("keybind not found")
)

// NotFoundError is returned by Remove for an id that is not registered.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "keybind not found: " + e.ID
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Keybind associates a non-empty key set with an action name.
// Construct only via New so the key set is never empty.
type Keybind struct {
	id     string
	keys   keys.Set
	action string
}

func New(id string, ks keys.Set, action string) (Keybind, error) {
	if id == "" {
		return Keybind{}, ErrEmptyID
	}
	if ks.Len() == 0 {
		return Keybind{}, ErrNoKeys
	}
	return Keybind{id: id, keys: ks.Clone(), action: action}, nil
}

// Parse builds a keybind from key names such as ["Ctrl", "S"].
func Parse(id string, names []string, action string) (Keybind, error) {
	ks, err := keys.ResolveAll(names)
	if err != nil {
		return Keybind{}, err
	}
	return New(id, ks, action)
}

func (k Keybind) validate() error {
	if k.id == "" {
		return ErrEmptyID
	}
	if k.keys.Len() == 0 {
		return ErrNoKeys
	}
	return nil
}

func (k Keybind) ID() string     { return k.id }
func (k Keybind) Action() string { return k.action }

// Keys returns a copy of the key set.
func (k Keybind) Keys() keys.Set { return k.keys.Clone() }

func (k Keybind) String() string {
	return k.id + " (" + k.keys.String() + " -> " + k.action + ")"
}
