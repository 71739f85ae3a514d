package login

import (
	"strings"
	"testing"
)

func TestPlist(t *testing.T) {
	it := Item{
		Exe:  "/Applications/keyhook & co",
		Args: []string{"-no-beep"},
		Env:  map[string]string{"KEYHOOK_LOG_PATH": "/tmp/<logs>", "KEYHOOK_CONFIG": "/tmp/kb.toml"},
	}
	p := it.plist()

	for _, want := range []string{
		"<string>" + label + "</string>",
		"<string>/Applications/keyhook &amp; co</string>",
		"<string>-no-beep</string>",
		"<string>/tmp/&lt;logs&gt;</string>",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("plist missing %q:\n%s", want, p)
		}
	}
	if strings.Index(p, "KEYHOOK_CONFIG") > strings.Index(p, "KEYHOOK_LOG_PATH") {
		t.Error("env keys not sorted")
	}
}

func TestDesktopEntry(t *testing.T) {
	it := Item{Exe: "/opt/key hook/keyhook", Args: []string{"-disabled"}}
	d := it.desktopEntry()
	want := `Exec="/opt/key hook/keyhook" -disabled`
	if !strings.Contains(d, want) {
		t.Errorf("desktop entry missing %q:\n%s", want, d)
	}

	it.Env = map[string]string{"KEYHOOK_CONFIG": "/x/kb.toml"}
	d = it.desktopEntry()
	if !strings.Contains(d, "Exec=env KEYHOOK_CONFIG=/x/kb.toml ") {
		t.Errorf("env prefix missing:\n%s", d)
	}
}

func TestQuoteExec(t *testing.T) {
	tests := []struct{ in, want string }{
		{"plain", "plain"},
		{"has space", `"has space"`},
		{`a"b`, `"a\"b"`},
		{"$HOME", `"\$HOME"`},
	}
	for _, tt := range tests {
		if got := quoteExec(tt.in); got != tt.want {
			t.Errorf("quoteExec(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
