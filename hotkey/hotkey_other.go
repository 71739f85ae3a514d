//go:build !linux

package hotkey

import (
	"fmt"
	"sync"
	"time"

	hook "github.com/robotn/gohook"

	"keyhook/keys"
)

const startTimeout = 2 * time.Second

// libuiohook virtual codes outside the set-1 block
var uiohookExtended = map[uint16]keys.Key{
	0x0E1D: keys.ControlRight,
	0x0E38: keys.AltRight,
	0x0E5B: keys.MetaLeft,
	0x0E5C: keys.MetaRight,
	0x0E47: keys.Home,
	0x0E4F: keys.End,
	0x0E49: keys.PageUp,
	0x0E51: keys.PageDown,
	0x0E52: keys.Insert,
	0x0E53: keys.Delete,
	0xE048: keys.UpArrow,
	0xE04B: keys.LeftArrow,
	0xE04D: keys.RightArrow,
	0xE050: keys.DownArrow,
}

type uiohookHook struct {
	events chan Event
	stop   chan struct{}
	once   sync.Once
}

func New() Hook {
	return &uiohookHook{
		events: make(chan Event, 64),
		stop:   make(chan struct{}),
	}
}

func Backend() string { return "uiohook" }

// Register starts the hook and waits for libuiohook to confirm it is
// installed. On macOS this fails until the terminal is granted
// Accessibility access.
func (h *uiohookHook) Register() error {
	src := hook.Start()

	timer := time.NewTimer(startTimeout)
	defer timer.Stop()

	for {
		select {
		case ev, ok := <-src:
			if !ok {
				return fmt.Errorf("keyboard hook failed to start")
			}
			if ev.Kind == hook.HookEnabled {
				go h.forward(src)
				return nil
			}
			// Some platforms deliver input before the enabled event.
			if e, ok := translate(ev); ok {
				h.events <- e
			}
		case <-timer.C:
			hook.End()
			return fmt.Errorf("keyboard hook did not start within %s (grant Accessibility/Input Monitoring permission?)", startTimeout)
		}
	}
}

func (h *uiohookHook) forward(src chan hook.Event) {
	defer close(h.events)
	for {
		select {
		case <-h.stop:
			return
		case ev, ok := <-src:
			if !ok {
				return
			}
			if ev.Kind == hook.HookDisabled {
				return
			}
			e, ok := translate(ev)
			if !ok {
				continue
			}
			select {
			case h.events <- e:
			case <-h.stop:
				return
			}
		}
	}
}

// translate maps a libuiohook event. KeyHold is the physical press
// (repeated while held); KeyDown is the typed-character event and is
// ignored so each press is seen once.
func translate(ev hook.Event) (Event, bool) {
	var kind Kind
	switch ev.Kind {
	case hook.KeyHold:
		kind = Press
	case hook.KeyUp:
		kind = Release
	default:
		return Event{}, false
	}
	k, ok := lookup(uiohookExtended, ev.Keycode)
	if !ok {
		return Event{}, false
	}
	return Event{Kind: kind, Key: k}, true
}

func (h *uiohookHook) Unregister() {
	h.once.Do(func() {
		close(h.stop)
		hook.End()
	})
}

func (h *uiohookHook) Events() <-chan Event {
	return h.events
}

func Diagnose() (string, error) {
	h := New()
	if err := h.Register(); err != nil {
		return "", err
	}
	h.Unregister()
	return "global keyboard hook available (libuiohook)", nil
}
