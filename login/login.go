// Package login registers keyhook to start with the user session.
package login

import (
	"errors"
	"fmt"
	"html"
	"os"
	"sort"
	"strings"
)

const label = "com.keyhook.app"

var ErrUnsupported = errors.New("start on login is not supported on this platform")

// envKeys are forwarded from the current environment into the login item so
// the relaunched process finds the same profile and log directory.
var envKeys = []string{"KEYHOOK_CONFIG", "KEYHOOK_LOG_PATH"}

// Item describes the command the session should launch.
type Item struct {
	Exe  string
	Args []string
	Env  map[string]string
}

// Current builds the item for the running executable with extra args.
func Current(args ...string) (Item, error) {
	exe, err := os.Executable()
	if err != nil {
		return Item{}, fmt.Errorf("resolve executable: %w", err)
	}
	it := Item{Exe: exe, Args: args, Env: map[string]string{}}
	for _, k := range envKeys {
		if v := os.Getenv(k); v != "" {
			it.Env[k] = v
		}
	}
	return it, nil
}

func (it Item) sortedEnv() []string {
	keys := make([]string, 0, len(it.Env))
	for k := range it.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// plist renders a launchd agent.
func (it Item) plist() string {
	var args strings.Builder
	for _, a := range append([]string{it.Exe}, it.Args...) {
		fmt.Fprintf(&args, "\t\t<string>%s</string>\n", html.EscapeString(a))
	}
	var env strings.Builder
	for _, k := range it.sortedEnv() {
		fmt.Fprintf(&env, "\t\t<key>%s</key>\n\t\t<string>%s</string>\n", k, html.EscapeString(it.Env[k]))
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
%s	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>LimitLoadToSessionType</key>
	<string>Aqua</string>
	<key>EnvironmentVariables</key>
	<dict>
%s	</dict>
</dict>
</plist>
`, label, args.String(), env.String())
}

// desktopEntry renders an XDG autostart entry.
func (it Item) desktopEntry() string {
	var cmd strings.Builder
	for _, k := range it.sortedEnv() {
		if cmd.Len() == 0 {
			cmd.WriteString("env ")
		}
		fmt.Fprintf(&cmd, "%s=%s ", k, quoteExec(it.Env[k]))
	}
	cmd.WriteString(quoteExec(it.Exe))
	for _, a := range it.Args {
		cmd.WriteString(" " + quoteExec(a))
	}

	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=keyhook
Comment=Global keybinds
Exec=%s
X-GNOME-Autostart-enabled=true
NoDisplay=true
`, cmd.String())
}

// quoteExec quotes an argument per the desktop entry Exec rules.
func quoteExec(s string) string {
	if !strings.ContainsAny(s, " \t\"'\\$`") {
		return s
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)
	return `"` + r.Replace(s) + `"`
}
