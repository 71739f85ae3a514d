package keys

import (
	"errors"
	"testing"
)

func TestResolveCanonical(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"A", A},
		{"a", A},
		{"Z", Z},
		{"0", Digit0},
		{"9", Digit9},
		{"F1", F1},
		{"F12", F12},
		{"Escape", Escape},
		{"Esc", Escape},
		{"Enter", Enter},
		{"Return", Enter},
		{"Space", Space},
		{"-", Minus},
		{"\\", Backslash},
		{"`", BackQuote},
		{"PageDown", PageDown},
		{"LeftArrow", LeftArrow},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.name)
		if err != nil {
			t.Errorf("Resolve(%q): %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestResolveModifierAliases(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"Shift", ShiftLeft},
		{"ShiftLeft", ShiftLeft},
		{"ShiftRight", ShiftRight},
		{"Ctrl", ControlLeft},
		{"Control", ControlLeft},
		{"ControlRight", ControlRight},
		{"Alt", AltLeft},
		{"AltRight", AltRight},
		{"Super", MetaLeft},
		{"SuperRight", MetaRight},
	}
	for _, tt := range tests {
		got, err := Resolve(tt.name)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("Resolve(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}

	if ShiftLeft == ShiftRight {
		t.Error("left and right shift must be distinct keys")
	}
}

func TestResolveDeterministic(t *testing.T) {
	for _, name := range Names() {
		a, err := Resolve(name)
		if err != nil {
			t.Fatalf("Resolve(%q): %v", name, err)
		}
		b, _ := Resolve(name)
		if a != b {
			t.Errorf("Resolve(%q) not deterministic: %v vs %v", name, a, b)
		}
		if a.String() != name {
			t.Errorf("Key(%d).String() = %q, want %q", a, a.String(), name)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	for _, name := range []string{"", "Hyper", "F13", "shift", "Ctrl+S", "ç"} {
		k, err := Resolve(name)
		if err == nil {
			t.Errorf("Resolve(%q) = %v, want error", name, k)
			continue
		}
		if !errors.Is(err, ErrUnknownKey) {
			t.Errorf("Resolve(%q) error %v is not ErrUnknownKey", name, err)
		}
		var uk *UnknownKeyError
		if !errors.As(err, &uk) || uk.Name != name {
			t.Errorf("Resolve(%q) error = %#v, want UnknownKeyError with name", name, err)
		}
		if k != Unknown {
			t.Errorf("Resolve(%q) key = %v, want Unknown", name, k)
		}
	}
}

func TestParseComboMixesAliases(t *testing.T) {
	s, err := ParseCombo("Shift + ShiftRight+1")
	if err != nil {
		t.Fatal(err)
	}
	want := NewSet(ShiftLeft, ShiftRight, Digit1)
	if !s.Equal(want) {
		t.Errorf("got %v, want %v", s, want)
	}
}

func TestParseComboUnknown(t *testing.T) {
	_, err := ParseCombo("Ctrl+Nope")
	var uk *UnknownKeyError
	if !errors.As(err, &uk) || uk.Name != "Nope" {
		t.Fatalf("got %v, want UnknownKeyError for Nope", err)
	}
}

func TestSetContains(t *testing.T) {
	pressed := NewSet(ControlLeft, ShiftLeft, S)
	if !pressed.Contains(NewSet(ControlLeft, S)) {
		t.Error("expected subset to be contained")
	}
	if pressed.Contains(NewSet(ControlLeft, A)) {
		t.Error("unexpected containment")
	}
	if !pressed.Contains(NewSet()) {
		t.Error("empty set is a subset of everything")
	}
}

func TestSetString(t *testing.T) {
	s := NewSet(S, ControlLeft)
	if got := s.String(); got != "ControlLeft+S" {
		t.Errorf("got %q", got)
	}
}
