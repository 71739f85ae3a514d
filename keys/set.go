package keys

import (
	"slices"
	"strings"
)

// Set is an unordered collection of keys. The zero value is not usable; use
// NewSet.
type Set map[Key]struct{}

func NewSet(ks ...Key) Set {
	s := make(Set, len(ks))
	for _, k := range ks {
		s[k] = struct{}{}
	}
	return s
}

func (s Set) Add(k Key)    { s[k] = struct{}{} }
func (s Set) Remove(k Key) { delete(s, k) }
func (s Set) Len() int     { return len(s) }

func (s Set) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Contains reports whether every key of sub is in s.
func (s Set) Contains(sub Set) bool {
	if len(sub) > len(s) {
		return false
	}
	for k := range sub {
		if _, ok := s[k]; !ok {
			return false
		}
	}
	return true
}

func (s Set) Clone() Set {
	out := make(Set, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

func (s Set) Equal(o Set) bool {
	return len(s) == len(o) && s.Contains(o)
}

// Keys returns the members in vocabulary order.
func (s Set) Keys() []Key {
	out := make([]Key, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// String renders the set as a combo, modifiers first: "ControlLeft+S".
func (s Set) String() string {
	ks := s.Keys()
	parts := make([]string, 0, len(ks))
	for _, k := range ks {
		if k.IsModifier() {
			parts = append(parts, k.String())
		}
	}
	for _, k := range ks {
		if !k.IsModifier() {
			parts = append(parts, k.String())
		}
	}
	return strings.Join(parts, "+")
}

// ResolveAll resolves every name into one set. The first unknown name wins.
func ResolveAll(names []string) (Set, error) {
	s := make(Set, len(names))
	for _, name := range names {
		k, err := Resolve(name)
		if err != nil {
			return nil, err
		}
		s.Add(k)
	}
	return s, nil
}

// SplitCombo splits "Shift+1" into its key names. Empty segments are dropped.
func SplitCombo(combo string) []string {
	parts := strings.Split(combo, "+")
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseCombo resolves a "+"-joined combo such as "Ctrl+Shift+S".
func ParseCombo(combo string) (Set, error) {
	return ResolveAll(SplitCombo(combo))
}
