// Package doctor runs the system checks behind `keyhook -doctor`.
package doctor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"keyhook/clipboard"
	"keyhook/effect"
	"keyhook/engine"
	"keyhook/hotkey"
	"keyhook/inject"
	"keyhook/keybind"
	"keyhook/keys"
	"keyhook/notify"
)

// selfTestCombo is unlikely to be bound by the desktop or by a profile.
var selfTestCombo = keys.NewSet(keys.ControlLeft, keys.ShiftLeft, keys.F12)

const selfTestAction = "doctor-self-test"

type check struct {
	name string
	run  func() (string, error)
}

// Run executes the diagnostic checks and returns an exit code (0=all pass, 1=any fail).
func Run() int {
	saveTerminal()
	defer resetTerminal()
	setupInterruptHandler()

	fmt.Println("keyhook doctor - system diagnostics")
	fmt.Println("===================================")

	checks := []check{
		{"Keyboard hook access", hotkey.Diagnose},
		{"Keybind self-test", func() (string, error) {
			return selfTest(context.Background(), hotkey.New(), synthesize, 5*time.Second)
		}},
		{"Window effect", effectReport},
		{"Clipboard", checkClipboard},
	}
	return runChecks(os.Stdout, checks)
}

// runChecks stops at the first failure: later checks depend on earlier ones.
func runChecks(w io.Writer, checks []check) int {
	allPass := true
	for i, c := range checks {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "[%d/%d] %s\n", i+1, len(checks), c.name)
		detail, err := c.run()
		if err != nil {
			fmt.Fprintf(w, "  FAIL: %v\n", err)
			allPass = false
			break
		}
		fmt.Fprintf(w, "  PASS: %s\n", detail)
	}

	fmt.Fprintln(w)
	if allPass {
		fmt.Fprintln(w, "All checks passed!")
		return 0
	}
	fmt.Fprintln(w, "Some checks failed. See details above.")
	return 1
}

func synthesize(combo keys.Set) error {
	if err := inject.Chord(combo); err != nil {
		fmt.Printf("  Could not synthesize %s (%v)\n", combo, err)
		fmt.Printf("  Press %s yourself...\n", combo)
	}
	return nil
}

// readyHook signals once the wrapped hook is installed so the chord is
// not sent before anyone listens.
type readyHook struct {
	hotkey.Hook
	ready chan struct{}
}

func (h readyHook) Register() error {
	if err := h.Hook.Register(); err != nil {
		return err
	}
	close(h.ready)
	return nil
}

// selfTest runs a real Dispatcher with a single keybind, presses its
// combo through press, and waits for the trigger.
func selfTest(ctx context.Context, h hotkey.Hook, press func(keys.Set) error, timeout time.Duration) (string, error) {
	reg := keybind.NewRegistry()
	kb, err := keybind.New("self-test", selfTestCombo, selfTestAction)
	if err != nil {
		return "", err
	}
	if err := reg.Add(kb); err != nil {
		return "", err
	}

	rec := notify.NewRecorder()
	rh := readyHook{Hook: h, ready: make(chan struct{})}
	d := engine.NewDispatcher(rh, reg, rec)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	select {
	case <-rh.ready:
	case err := <-done:
		if err == nil {
			err = errors.New("dispatcher stopped")
		}
		return "", err
	case <-time.After(timeout):
		return "", errors.New("timeout installing keyboard hook")
	}

	if err := press(selfTestCombo); err != nil {
		return "", err
	}
	if !rec.WaitFor(1, timeout) {
		return "", fmt.Errorf("no trigger observed for %s", selfTestCombo)
	}
	if errs := rec.Named(notify.EventBackendError); len(errs) > 0 {
		return "", errors.New(errs[0])
	}
	got := rec.Named(notify.EventKeybindTriggered)
	if len(got) == 0 || got[0] != selfTestAction {
		return "", fmt.Errorf("unexpected trigger %v", got)
	}
	return fmt.Sprintf("%s triggered %q via %s", selfTestCombo, selfTestAction, hotkey.Backend()), nil
}

func effectReport() (string, error) {
	p := effect.Detect()
	req, ok := effect.Pick(p)
	desc := fmt.Sprintf("%s %s", p.Name, p.Version)
	if p.Build != "" {
		desc += " build " + p.Build
	}
	if !ok {
		return desc + ": no window effect available, plain background", nil
	}
	return fmt.Sprintf("%s: %s supported", desc, req.Effect), nil
}

func checkClipboard() (string, error) {
	if clipboard.Unsupported() {
		return "", errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard)")
	}
	prev, _ := clipboard.Read()
	defer clipboard.Copy(prev)

	sentinel := "keyhook-doctor-" + time.Now().Format("150405")
	if err := clipboard.Copy(sentinel); err != nil {
		return "", fmt.Errorf("copy: %w", err)
	}
	got, err := clipboard.Read()
	if err != nil {
		return "", fmt.Errorf("read: %w", err)
	}
	if got != sentinel {
		return "", fmt.Errorf("read back %q, want %q", got, sentinel)
	}
	return "copy and read back verified, previous contents restored", nil
}
