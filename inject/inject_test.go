package inject

import (
	"testing"

	"keyhook/keys"
)

func TestPlanChord(t *testing.T) {
	combo, err := keys.ParseCombo("Ctrl+Shift+K")
	if err != nil {
		t.Fatal(err)
	}
	p, err := PlanChord(combo)
	if err != nil {
		t.Fatal(err)
	}
	if !p.ctrl || !p.shift || p.alt || p.super || len(p.vks) != 1 {
		t.Errorf("got %+v", p)
	}
}

func TestPlanChordRejects(t *testing.T) {
	for _, combo := range []string{"Shift", "Ctrl+Home", "Alt+["} {
		set, err := keys.ParseCombo(combo)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := PlanChord(set); err == nil {
			t.Errorf("PlanChord(%s) should fail", combo)
		}
	}
}
