package keybind

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"keyhook/keys"
)

func mustParse(t *testing.T, id string, names []string, action string) Keybind {
	t.Helper()
	kb, err := Parse(id, names, action)
	if err != nil {
		t.Fatal(err)
	}
	return kb
}

func ids(kbs []Keybind) []string {
	out := make([]string, len(kbs))
	for i, kb := range kbs {
		out[i] = kb.ID()
	}
	return out
}

func TestNewRejectsEmpty(t *testing.T) {
	if _, err := New("", keys.NewSet(keys.A), "x"); !errors.Is(err, ErrEmptyID) {
		t.Errorf("empty id: got %v", err)
	}
	if _, err := New("a", keys.NewSet(), "x"); !errors.Is(err, ErrNoKeys) {
		t.Errorf("empty keys: got %v", err)
	}
	if _, err := Parse("a", []string{"Ctrl", "Bogus"}, "x"); !errors.Is(err, keys.ErrUnknownKey) {
		t.Errorf("unknown key: got %v", err)
	}
}

func TestKeybindKeysIsCopy(t *testing.T) {
	ks := keys.NewSet(keys.A)
	kb, err := New("a", ks, "x")
	if err != nil {
		t.Fatal(err)
	}
	ks.Add(keys.B)
	got := kb.Keys()
	got.Add(keys.C)
	if !kb.Keys().Equal(keys.NewSet(keys.A)) {
		t.Errorf("keybind keys mutated: %v", kb.Keys())
	}
}

func TestAddRemoveRoundTrip(t *testing.T) {
	r := NewRegistry()
	r.Add(mustParse(t, "keep", []string{"B"}, "b"))
	before := ids(r.List())

	r.Add(mustParse(t, "tmp", []string{"Ctrl", "S"}, "save"))
	if err := r.Remove("tmp"); err != nil {
		t.Fatal(err)
	}

	if got := ids(r.List()); !slices.Equal(got, before) {
		t.Errorf("after round trip got %v, want %v", got, before)
	}
	if _, ok := r.Match(keys.NewSet(keys.ControlLeft, keys.S)); ok {
		t.Error("removed keybind still matches")
	}
}

func TestAddReplaces(t *testing.T) {
	r := NewRegistry()
	r.Add(mustParse(t, "id", []string{"A"}, "a1"))
	r.Add(mustParse(t, "other", []string{"C"}, "c"))
	r.Add(mustParse(t, "id", []string{"B"}, "a2"))

	if r.Len() != 2 {
		t.Fatalf("Len = %d, want 2", r.Len())
	}
	kb, ok := r.Get("id")
	if !ok {
		t.Fatal("id missing")
	}
	if kb.Action() != "a2" || !kb.Keys().Equal(keys.NewSet(keys.B)) {
		t.Errorf("got %v, want B -> a2", kb)
	}
	if got := ids(r.List()); !slices.Equal(got, []string{"id", "other"}) {
		t.Errorf("replace should keep slot, got %v", got)
	}
	if _, ok := r.Match(keys.NewSet(keys.A)); ok {
		t.Error("old key set still matches")
	}
}

func TestAddRejectsZeroKeybind(t *testing.T) {
	r := NewRegistry()
	if err := r.Add(Keybind{}); !errors.Is(err, ErrEmptyID) {
		t.Errorf("zero keybind: got %v, want ErrEmptyID", err)
	}
	if err := r.Add(Keybind{id: "empty", action: "x"}); !errors.Is(err, ErrNoKeys) {
		t.Errorf("no keys: got %v, want ErrNoKeys", err)
	}
	if r.Len() != 0 {
		t.Fatalf("Len = %d, want 0", r.Len())
	}
	for _, pressed := range []keys.Set{keys.NewSet(keys.A), keys.NewSet()} {
		if action, ok := r.Match(pressed); ok {
			t.Errorf("Match(%v) = %q, want no match", pressed, action)
		}
	}
}

func TestAddBatchStopsAtInvalid(t *testing.T) {
	r := NewRegistry()
	err := r.AddBatch([]Keybind{
		mustParse(t, "a", []string{"A"}, "a"),
		{id: "hollow", action: "h"},
		mustParse(t, "b", []string{"B"}, "b"),
	})
	if !errors.Is(err, ErrNoKeys) {
		t.Fatalf("got %v, want ErrNoKeys", err)
	}
	if got := ids(r.List()); !slices.Equal(got, []string{"a"}) {
		t.Errorf("got %v, want [a]", got)
	}
}

func TestRemoveNotFound(t *testing.T) {
	r := NewRegistry()
	err := r.Remove("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != "missing" {
		t.Errorf("got %#v", err)
	}
}

func TestClear(t *testing.T) {
	r := NewRegistry()
	if err := r.AddBatch([]Keybind{
		mustParse(t, "a", []string{"A"}, "a"),
		mustParse(t, "b", []string{"B"}, "b"),
	}); err != nil {
		t.Fatal(err)
	}
	r.Clear()
	if r.Len() != 0 {
		t.Errorf("Len = %d after Clear", r.Len())
	}
	if !r.Enabled() {
		t.Error("Clear must not touch the enabled flag")
	}
}

func TestMatchDisabled(t *testing.T) {
	r := NewRegistry()
	r.Add(mustParse(t, "a", []string{"A"}, "x"))
	pressed := keys.NewSet(keys.A)

	r.Disable()
	if act, ok := r.Match(pressed); ok {
		t.Errorf("disabled registry matched %q", act)
	}
	r.Enable()
	r.Disable()
	if _, ok := r.Match(pressed); ok {
		t.Error("disable after enable must win")
	}
	r.Enable()
	if act, ok := r.Match(pressed); !ok || act != "x" {
		t.Errorf("got %q %v, want x", act, ok)
	}
}

func TestMatchSubset(t *testing.T) {
	r := NewRegistry()
	r.Add(mustParse(t, "save", []string{"Ctrl", "S"}, "save-file"))

	tests := []struct {
		pressed keys.Set
		want    bool
	}{
		{keys.NewSet(keys.ControlLeft), false},
		{keys.NewSet(keys.S), false},
		{keys.NewSet(keys.ControlLeft, keys.S), true},
		{keys.NewSet(keys.ControlLeft, keys.ShiftLeft, keys.S), true},
		{keys.NewSet(keys.ControlRight, keys.S), false},
	}
	for _, tt := range tests {
		act, ok := r.Match(tt.pressed)
		if ok != tt.want {
			t.Errorf("Match(%v) = %v, want %v", tt.pressed, ok, tt.want)
		}
		if ok && act != "save-file" {
			t.Errorf("Match(%v) action = %q", tt.pressed, act)
		}
	}
}

func TestMatchMostSpecificWins(t *testing.T) {
	r := NewRegistry()
	r.Add(mustParse(t, "s", []string{"S"}, "plain"))
	r.Add(mustParse(t, "ctrl-s", []string{"Ctrl", "S"}, "save"))

	act, ok := r.Match(keys.NewSet(keys.ControlLeft, keys.S))
	if !ok || act != "save" {
		t.Errorf("got %q, want save", act)
	}
}

func TestMatchTieGoesToFirstRegistered(t *testing.T) {
	r := NewRegistry()
	r.Add(mustParse(t, "first", []string{"A"}, "one"))
	r.Add(mustParse(t, "second", []string{"B"}, "two"))
	pressed := keys.NewSet(keys.A, keys.B)

	for range 20 {
		if act, _ := r.Match(pressed); act != "one" {
			t.Fatalf("got %q, want one", act)
		}
	}

	if err := r.Remove("first"); err != nil {
		t.Fatal(err)
	}
	r.Add(mustParse(t, "first", []string{"A"}, "one"))
	if act, _ := r.Match(pressed); act != "two" {
		t.Errorf("re-added keybind should lose the tie, got %q", act)
	}
}

func TestConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	pressed := keys.NewSet(keys.ControlLeft, keys.A)

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				id := fmt.Sprintf("kb-%d-%d", w, i%5)
				kb, _ := Parse(id, []string{"Ctrl", "A"}, id)
				r.Add(kb)
				r.Match(pressed)
				if i%3 == 0 {
					r.Remove(id)
				}
				if i%50 == 0 {
					r.Disable()
					r.Enable()
				}
			}
		}()
	}
	wg.Wait()

	for _, kb := range r.List() {
		if !pressed.Contains(kb.Keys()) {
			t.Errorf("corrupted keybind %v", kb)
		}
	}
}
