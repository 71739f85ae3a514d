// Package keys defines the key vocabulary shared by the hook backends and
// the keybind registry.
package keys

import (
	"errors"
	"strings"
)

// Key identifies a physical key independently of its name.
type Key uint16

const (
	Unknown Key = iota

	Escape
	F1
	F2
	F3
	F4
	F5
	F6
	F7
	F8
	F9
	F10
	F11
	F12

	Digit0
	Digit1
	Digit2
	Digit3
	Digit4
	Digit5
	Digit6
	Digit7
	Digit8
	Digit9

	A
	B
	C
	D
	E
	F
	G
	H
	I
	J
	K
	L
	M
	N
	O
	P
	Q
	R
	S
	T
	U
	V
	W
	X
	Y
	Z

	Backspace
	Enter
	Tab
	Space
	CapsLock
	Insert
	Delete
	Home
	End
	PageUp
	PageDown
	UpArrow
	DownArrow
	LeftArrow
	RightArrow

	Minus
	Equal
	LeftBracket
	RightBracket
	Semicolon
	Quote
	BackQuote
	Backslash
	Comma
	Period
	Slash

	ShiftLeft
	ShiftRight
	ControlLeft
	ControlRight
	AltLeft
	AltRight
	MetaLeft
	MetaRight

	numKeys
)

var ErrUnknownKey = errors.New("unknown key")

// UnknownKeyError reports a key name with no entry in the vocabulary.
type UnknownKeyError struct {
	Name string
}

func (e *UnknownKeyError) Error() string {
	return "unknown key: " + e.Name
}

func (e *UnknownKeyError) Is(target error) bool {
	return target == ErrUnknownKey
}

// canonical names, indexed by Key
var names = [numKeys]string{
	Unknown: "Unknown",
	Escape:  "Escape",
	F1:      "F1", F2: "F2", F3: "F3", F4: "F4", F5: "F5", F6: "F6",
	F7: "F7", F8: "F8", F9: "F9", F10: "F10", F11: "F11", F12: "F12",
	Digit0: "0", Digit1: "1", Digit2: "2", Digit3: "3", Digit4: "4",
	Digit5: "5", Digit6: "6", Digit7: "7", Digit8: "8", Digit9: "9",
	A: "A", B: "B", C: "C", D: "D", E: "E", F: "F", G: "G", H: "H", I: "I",
	J: "J", K: "K", L: "L", M: "M", N: "N", O: "O", P: "P", Q: "Q", R: "R",
	S: "S", T: "T", U: "U", V: "V", W: "W", X: "X", Y: "Y", Z: "Z",
	Backspace:    "Backspace",
	Enter:        "Enter",
	Tab:          "Tab",
	Space:        "Space",
	CapsLock:     "CapsLock",
	Insert:       "Insert",
	Delete:       "Delete",
	Home:         "Home",
	End:          "End",
	PageUp:       "PageUp",
	PageDown:     "PageDown",
	UpArrow:      "UpArrow",
	DownArrow:    "DownArrow",
	LeftArrow:    "LeftArrow",
	RightArrow:   "RightArrow",
	Minus:        "-",
	Equal:        "=",
	LeftBracket:  "[",
	RightBracket: "]",
	Semicolon:    ";",
	Quote:        "'",
	BackQuote:    "`",
	Backslash:    "\\",
	Comma:        ",",
	Period:       ".",
	Slash:        "/",
	ShiftLeft:    "ShiftLeft",
	ShiftRight:   "ShiftRight",
	ControlLeft:  "ControlLeft",
	ControlRight: "ControlRight",
	AltLeft:      "AltLeft",
	AltRight:     "AltRight",
	MetaLeft:     "MetaLeft",
	MetaRight:    "MetaRight",
}

// Bare modifier names resolve to the left-hand key.
var aliases = map[string]Key{
	"Shift":      ShiftLeft,
	"Ctrl":       ControlLeft,
	"Control":    ControlLeft,
	"Alt":        AltLeft,
	"Meta":       MetaLeft,
	"Super":      MetaLeft,
	"SuperLeft":  MetaLeft,
	"SuperRight": MetaRight,
	"Esc":        Escape,
	"Return":     Enter,
	"Up":         UpArrow,
	"Down":       DownArrow,
	"Left":       LeftArrow,
	"Right":      RightArrow,
}

var byName = buildTable()

func buildTable() map[string]Key {
	m := make(map[string]Key, int(numKeys)+len(aliases)+26)
	for k := Escape; k < numKeys; k++ {
		m[names[k]] = k
	}
	for name, k := range aliases {
		m[name] = k
	}
	for k := A; k <= Z; k++ {
		m[strings.ToLower(names[k])] = k
	}
	return m
}

// Resolve maps a canonical key name to its Key.
func Resolve(name string) (Key, error) {
	if k, ok := byName[name]; ok {
		return k, nil
	}
	return Unknown, &UnknownKeyError{Name: name}
}

func (k Key) String() string {
	if k < numKeys && names[k] != "" {
		return names[k]
	}
	return "Unknown"
}

// Valid reports whether k is a real key.
func (k Key) Valid() bool {
	return k > Unknown && k < numKeys
}

// IsModifier reports whether k is one of the Shift, Control, Alt or Meta keys.
func (k Key) IsModifier() bool {
	return k >= ShiftLeft && k <= MetaRight
}

// Names lists every canonical key name in vocabulary order.
func Names() []string {
	out := make([]string, 0, numKeys-1)
	for k := Escape; k < numKeys; k++ {
		out = append(out, names[k])
	}
	return out
}
