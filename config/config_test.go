package config

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"

	"keyhook/engine"
	"keyhook/keybind"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadKeepsFileOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.toml")
	writeFile(t, path, `
[keybinds.zeta]
key = "Ctrl+Z"
description = "last letter"

[keybinds.alpha]
key = "Shift+A"
enabled = false

[keybinds.mid]
key = "F5"
action = "refresh"
`)
	p, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Enabled {
		t.Error("profile should default to enabled")
	}
	if got := p.IDs(); !slices.Equal(got, []string{"zeta", "alpha", "mid"}) {
		t.Errorf("order = %v", got)
	}

	bs := p.Bindings()
	want := []engine.Binding{
		{ID: "zeta", Keys: []string{"Ctrl", "Z"}, Action: "zeta"},
		{ID: "mid", Keys: []string{"F5"}, Action: "refresh"},
	}
	if len(bs) != len(want) {
		t.Fatalf("got %+v", bs)
	}
	for i := range want {
		if bs[i].ID != want[i].ID || bs[i].Action != want[i].Action || !slices.Equal(bs[i].Keys, want[i].Keys) {
			t.Errorf("binding %d = %+v, want %+v", i, bs[i], want[i])
		}
	}
}

func TestLoadRejectsUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.toml")
	writeFile(t, path, "[keybinds.a]\nkey = \"A\"\nhotkey = \"B\"\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "hotkey") {
		t.Errorf("got %v", err)
	}
}

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "keybinds.toml")
	p, err := LoadOrCreate(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(p.IDs()) != 13 {
		t.Fatalf("got %d default keybinds", len(p.IDs()))
	}

	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(again.IDs(), p.IDs()) {
		t.Errorf("round trip order %v != %v", again.IDs(), p.IDs())
	}
	if again.Keybinds["huntTimer"].Key != "Shift+-" {
		t.Errorf("huntTimer = %+v", again.Keybinds["huntTimer"])
	}
}

func TestDefaultProfileApplies(t *testing.T) {
	p := Default()
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
	svc := engine.NewService(keybind.NewRegistry(), nil)
	if err := svc.ApplyProfile(p.Bindings(), p.Enabled); err != nil {
		t.Fatal(err)
	}
	if n := svc.Registry().Len(); n != 13 {
		t.Errorf("registered %d keybinds", n)
	}
}

func TestValidate(t *testing.T) {
	p := Default()
	e := p.Keybinds["GhostOrb"]
	e.Key = "Shift+Hyper"
	e.Enabled = false
	p.Keybinds["GhostOrb"] = e
	err := p.Validate()
	if err == nil || !strings.Contains(err.Error(), "GhostOrb") {
		t.Errorf("got %v", err)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv("KEYHOOK_CONFIG", "")
	got, err := ResolvePath("/tmp/kb.toml")
	if err != nil || got != "/tmp/kb.toml" {
		t.Errorf("flag: got %q %v", got, err)
	}

	t.Setenv("KEYHOOK_CONFIG", "/tmp/env.toml")
	got, err = ResolvePath("")
	if err != nil || got != "/tmp/env.toml" {
		t.Errorf("env: got %q %v", got, err)
	}

	t.Setenv("KEYHOOK_CONFIG", "")
	got, err = ResolvePath("")
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	if filepath.Base(got) != "keybinds.toml" {
		t.Errorf("default: got %q", got)
	}
}

func TestShouldReload(t *testing.T) {
	path := "/cfg/keybinds.toml"
	base := "keybinds.toml"
	tests := []struct {
		ev   fsnotify.Event
		want bool
	}{
		{fsnotify.Event{Name: path, Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "/cfg/./keybinds.toml", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "/other/keybinds.toml", Op: fsnotify.Rename}, true},
		{fsnotify.Event{Name: path, Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "/cfg/other.toml", Op: fsnotify.Write}, false},
	}
	for _, tt := range tests {
		if got := shouldReload(path, base, tt.ev); got != tt.want {
			t.Errorf("shouldReload(%v) = %v, want %v", tt.ev, got, tt.want)
		}
	}
}

func TestWatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keybinds.toml")
	writeFile(t, path, "[keybinds.a]\nkey = \"A\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloaded := make(chan struct{}, 1)
	started := make(chan error, 1)
	go func() {
		started <- Watch(ctx, path, func() {
			select {
			case reloaded <- struct{}{}:
			default:
			}
		})
	}()

	// the watcher has no ready signal; keep touching the file until it
	// reports a change
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(4 * reloadDebounce)
	defer tick.Stop()
	for {
		select {
		case <-reloaded:
			return
		case err := <-started:
			t.Fatalf("watch exited: %v", err)
		case <-tick.C:
			writeFile(t, path, "[keybinds.a]\nkey = \"B\"\n")
		case <-deadline:
			t.Fatal("no reload")
		}
	}
}
