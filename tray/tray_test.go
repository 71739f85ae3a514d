package tray

import "testing"

func TestBindingLabel(t *testing.T) {
	b := Binding{ID: "EMF5", Combo: "ShiftLeft+1", Description: "EMF 5"}
	if got := b.label(); got != "EMF 5    ShiftLeft+1" {
		t.Errorf("got %q", got)
	}
	b.Description = ""
	if got := b.label(); got != "EMF5    ShiftLeft+1" {
		t.Errorf("got %q", got)
	}
}

func TestTooltipFollowsEnabled(t *testing.T) {
	SetEnabled(false)
	if got := tooltip(); got != "keyhook – keybinds off" {
		t.Errorf("got %q", got)
	}
	SetEnabled(true)
	if got := tooltip(); got != "keyhook – keybinds on" {
		t.Errorf("got %q", got)
	}
}
