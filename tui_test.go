package main

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func sized(m tuiModel) tuiModel {
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(tuiModel)
}

func send(t *testing.T, m tuiModel, msg tea.Msg) tuiModel {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(tuiModel)
}

func TestTUIRecentTriggersCapped(t *testing.T) {
	m := sized(tuiModel{enabled: true})
	for i := 0; i < maxRecent+3; i++ {
		m = send(t, m, TriggeredMsg{Action: "a", At: time.Now()})
	}
	if len(m.recent) != maxRecent {
		t.Errorf("recent = %d, want %d", len(m.recent), maxRecent)
	}
	if m.total != maxRecent+3 {
		t.Errorf("total = %d", m.total)
	}
}

func TestTUINewestFirst(t *testing.T) {
	m := sized(tuiModel{})
	m = send(t, m, TriggeredMsg{Action: "first", At: time.Now()})
	m = send(t, m, TriggeredMsg{Action: "second", At: time.Now()})
	if m.recent[0].Action != "second" {
		t.Errorf("recent[0] = %q", m.recent[0].Action)
	}
}

func TestTUIViewShowsState(t *testing.T) {
	m := sized(tuiModel{backend: "evdev", toggleCombo: "Ctrl+Shift+F10"})
	m = send(t, m, ProfileMsg{
		Path:     "/tmp/kb.toml",
		Keybinds: []keybindRow{{ID: "EMF5", Combo: "Shift+1", Description: "EMF 5"}},
		Enabled:  false,
	})
	v := m.View()
	for _, want := range []string{"KEYBINDS OFF", "Shift+1", "EMF 5", "/tmp/kb.toml", "evdev"} {
		if !strings.Contains(v, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = send(t, m, EnabledMsg{On: true})
	if !strings.Contains(m.View(), "KEYBINDS ON") {
		t.Error("view should show ON after EnabledMsg")
	}
}

func TestTUIErrorClearedByProfile(t *testing.T) {
	m := sized(tuiModel{})
	m = send(t, m, ErrorMsg{Text: "keyboard hook closed"})
	if !strings.Contains(m.View(), "keyboard hook closed") {
		t.Error("error not shown")
	}
	m = send(t, m, ProfileMsg{Enabled: true})
	if m.lastErr != "" {
		t.Errorf("lastErr = %q after profile apply", m.lastErr)
	}
}

func TestTUIToggleKeyRunsCallback(t *testing.T) {
	var got []bool
	m := sized(tuiModel{enabled: true, onToggle: func(on bool) { got = append(got, on) }})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("e")})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	cmd()
	if len(got) != 1 || got[0] != false {
		t.Errorf("toggle calls = %v, want [false]", got)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("wrapText = %q, want %q", lines, want)
	}
	if got := wrapText("", 5); len(got) != 1 || got[0] != "" {
		t.Errorf("wrapText empty = %q", got)
	}
}

func TestArgValue(t *testing.T) {
	old := os.Args
	defer func() { os.Args = old }()

	os.Args = []string{"keyhook", "-logpath", "/tmp/a", "-test"}
	if got := argValue("logpath"); got != "/tmp/a" {
		t.Errorf("argValue = %q", got)
	}
	os.Args = []string{"keyhook", "--logpath=/tmp/b"}
	if got := argValue("logpath"); got != "/tmp/b" {
		t.Errorf("argValue = %q", got)
	}
	os.Args = []string{"keyhook"}
	if got := argValue("logpath"); got != "" {
		t.Errorf("argValue = %q", got)
	}
}
