package keybind

import (
	"slices"
	"sync"

	"keyhook/keys"
)

type entry struct {
	kb  Keybind
	seq uint64
}

// Registry maps keybind ids to keybinds and gates matching behind an
// enabled flag. All methods are safe for concurrent use; mu is never held
// across a call out of the package.
type Registry struct {
	mu      sync.Mutex
	entries map[string]entry
	enabled bool
	nextSeq uint64
}

func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]entry),
		enabled: true,
	}
}

// Add inserts kb, replacing any keybind with the same id. A replaced keybind
// keeps its registration order. A Keybind not built by New (empty id or no
// keys) is rejected, since an empty key set would match every press.
func (r *Registry) Add(kb Keybind) error {
	if err := kb.validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addLocked(kb)
	return nil
}

func (r *Registry) addLocked(kb Keybind) {
	if old, ok := r.entries[kb.id]; ok {
		r.entries[kb.id] = entry{kb: kb, seq: old.seq}
		return
	}
	r.entries[kb.id] = entry{kb: kb, seq: r.nextSeq}
	r.nextSeq++
}

// AddBatch adds each keybind in order and stops at the first invalid one;
// the keybinds before it stay registered. It is not transactional: the
// keybinds are published one at a time and a concurrent Match may observe
// a partially applied batch.
func (r *Registry) AddBatch(kbs []Keybind) error {
	for _, kb := range kbs {
		if err := r.Add(kb); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return &NotFoundError{ID: id}
	}
	delete(r.entries, id)
	return nil
}

func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.entries)
}

func (r *Registry) Enable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = true
}

func (r *Registry) Disable() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.enabled = false
}

func (r *Registry) Enabled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.enabled
}

// Match returns the action of the keybind satisfied by pressed. When more
// than one keybind is satisfied the one with the most keys wins, then the
// one registered first. Match never reports a hit while disabled.
func (r *Registry) Match(pressed keys.Set) (string, bool) {
	kb, ok := r.Lookup(pressed)
	if !ok {
		return "", false
	}
	return kb.action, true
}

// Lookup is Match returning the whole keybind.
func (r *Registry) Lookup(pressed keys.Set) (Keybind, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.enabled {
		return Keybind{}, false
	}

	var best entry
	found := false
	for _, e := range r.entries {
		if !pressed.Contains(e.kb.keys) {
			continue
		}
		if !found || better(e, best) {
			best = e
			found = true
		}
	}
	return best.kb, found
}

func better(a, b entry) bool {
	if la, lb := a.kb.keys.Len(), b.kb.keys.Len(); la != lb {
		return la > lb
	}
	return a.seq < b.seq
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) Get(id string) (Keybind, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	return e.kb, ok
}

// List returns the keybinds in registration order.
func (r *Registry) List() []Keybind {
	r.mu.Lock()
	es := make([]entry, 0, len(r.entries))
	for _, e := range r.entries {
		es = append(es, e)
	}
	r.mu.Unlock()

	slices.SortFunc(es, func(a, b entry) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})
	out := make([]Keybind, len(es))
	for i, e := range es {
		out[i] = e.kb
	}
	return out
}
