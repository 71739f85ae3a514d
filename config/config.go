// Package config loads the keybind profile from a TOML file and watches it
// for changes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/BurntSushi/toml"

	"keyhook/engine"
	"keyhook/keys"
)

// Entry is one keybind in the profile. The action reported on trigger is
// the entry id unless Action is set.
type Entry struct {
	Key         string `toml:"key"`
	Description string `toml:"description"`
	Enabled     bool   `toml:"enabled"`
	Action      string `toml:"action,omitempty"`
}

type Profile struct {
	// Enabled is the global gate applied after loading.
	Enabled  bool             `toml:"enabled"`
	Keybinds map[string]Entry `toml:"keybinds"`

	// order of ids as they appear in the file
	order []string
}

type defaultEntry struct {
	id string
	Entry
}

var defaults = []defaultEntry{
	{"EMF5", Entry{Key: "Shift+1", Description: "EMF 5", Enabled: true}},
	{"SpiritBox", Entry{Key: "Shift+2", Description: "Spirit Box", Enabled: true}},
	{"Fingerprints", Entry{Key: "Shift+3", Description: "Fingerprints", Enabled: true}},
	{"GhostOrb", Entry{Key: "Shift+4", Description: "Ghost Orb", Enabled: true}},
	{"GhostWriting", Entry{Key: "Shift+5", Description: "Ghost Writing", Enabled: true}},
	{"Freezing", Entry{Key: "Shift+6", Description: "Freezing Temperatures", Enabled: true}},
	{"DOTSProjector", Entry{Key: "Shift+7", Description: "D.O.T.S Projector", Enabled: true}},
	{"resetEvidence", Entry{Key: "Shift+8", Description: "Reset Evidence", Enabled: true}},
	{"ghostSpeed", Entry{Key: "Shift+S", Description: "Ghost Speed", Enabled: true}},
	{"huntTrack", Entry{Key: "Space", Description: "Hunt Track", Enabled: true}},
	{"smudgeTimer", Entry{Key: "Shift+9", Description: "Smudge Timer", Enabled: true}},
	{"colldownTimer", Entry{Key: "Shift+0", Description: "Cooldown Timer", Enabled: true}},
	{"huntTimer", Entry{Key: "Shift+-", Description: "Hunt Timer", Enabled: true}},
}

// Default returns the built-in profile.
func Default() *Profile {
	p := &Profile{Enabled: true, Keybinds: make(map[string]Entry, len(defaults))}
	for _, d := range defaults {
		p.Keybinds[d.id] = d.Entry
		p.order = append(p.order, d.id)
	}
	return p
}

func ResolvePath(flagPath string) (string, error) {
	if flagPath != "" {
		return filepath.Abs(flagPath)
	}
	if env := os.Getenv("KEYHOOK_CONFIG"); env != "" {
		return filepath.Abs(env)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "keyhook", "keybinds.toml"), nil
}

// Load reads the profile at path. Entries without an explicit enabled key
// are enabled.
func Load(path string) (*Profile, error) {
	p := &Profile{Enabled: true}
	md, err := toml.DecodeFile(path, p)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, fmt.Errorf("decode %s: unknown key %q", path, undec[0].String())
	}

	seen := make(map[string]bool, len(p.Keybinds))
	for _, k := range md.Keys() {
		if len(k) != 2 || k[0] != "keybinds" || seen[k[1]] {
			continue
		}
		id := k[1]
		seen[id] = true
		p.order = append(p.order, id)
		if !md.IsDefined("keybinds", id, "enabled") {
			e := p.Keybinds[id]
			e.Enabled = true
			p.Keybinds[id] = e
		}
	}
	return p, nil
}

// LoadOrCreate loads path, writing the default profile there first if the
// file does not exist.
func LoadOrCreate(path string) (*Profile, error) {
	p, err := Load(path)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	p = Default()
	if err := Save(path, p); err != nil {
		return nil, err
	}
	return p, nil
}

// IDs returns the keybind ids in file order.
func (p *Profile) IDs() []string {
	return append([]string(nil), p.order...)
}

// Bindings returns the enabled entries, in file order, ready for
// engine.Service.ApplyProfile.
func (p *Profile) Bindings() []engine.Binding {
	var out []engine.Binding
	for _, id := range p.order {
		e := p.Keybinds[id]
		if !e.Enabled {
			continue
		}
		action := e.Action
		if action == "" {
			action = id
		}
		out = append(out, engine.Binding{ID: id, Keys: keys.SplitCombo(e.Key), Action: action})
	}
	return out
}

// Validate resolves every key of every entry, enabled or not.
func (p *Profile) Validate() error {
	var errs []error
	for _, id := range p.order {
		if _, err := keys.ParseCombo(p.Keybinds[id].Key); err != nil {
			errs = append(errs, fmt.Errorf("keybind %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

var bareKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Save writes p to path in file order.
func Save(path string, p *Profile) error {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "enabled = %t\n", p.Enabled)
	for _, id := range p.order {
		name := id
		if !bareKey.MatchString(id) {
			name = strconv.Quote(id)
		}
		fmt.Fprintf(&buf, "\n[keybinds.%s]\n", name)
		if err := toml.NewEncoder(&buf).Encode(p.Keybinds[id]); err != nil {
			return fmt.Errorf("encode keybind %s: %w", id, err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
