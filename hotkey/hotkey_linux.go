//go:build linux

package hotkey

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"keyhook/keys"
)

const (
	evKey       = 1
	keyRelease  = 0
	keyPress    = 1
	keyAutoRept = 2
)

const inputEventSize = 24

// evdev codes outside the set-1 block
var evdevExtended = map[uint16]keys.Key{
	97:  keys.ControlRight,
	100: keys.AltRight,
	102: keys.Home,
	103: keys.UpArrow,
	104: keys.PageUp,
	105: keys.LeftArrow,
	106: keys.RightArrow,
	107: keys.End,
	108: keys.DownArrow,
	109: keys.PageDown,
	110: keys.Insert,
	111: keys.Delete,
	125: keys.MetaLeft,
	126: keys.MetaRight,
}

type evdevHook struct {
	events chan Event
	files  []*os.File
	stop   chan struct{}
	once   sync.Once
	wg     sync.WaitGroup
}

func New() Hook {
	return &evdevHook{
		events: make(chan Event, 64),
	}
}

// Backend names the hook implementation for logs.
func Backend() string { return "evdev" }

func (h *evdevHook) Register() error {
	keyboards, err := findKeyboards()
	if err != nil {
		return fmt.Errorf("finding keyboards: %w", err)
	}
	if len(keyboards) == 0 {
		return fmt.Errorf("no keyboard devices found (is user in 'input' group?)")
	}

	h.stop = make(chan struct{})

	for _, path := range keyboards {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		h.files = append(h.files, f)
	}

	if len(h.files) == 0 {
		return fmt.Errorf("could not open any keyboard device (run: sudo usermod -aG input $USER, then re-login)")
	}

	for _, f := range h.files {
		h.wg.Add(1)
		go h.readEvents(f)
	}
	go func() {
		h.wg.Wait()
		close(h.events)
	}()

	return nil
}

func (h *evdevHook) readEvents(f *os.File) {
	defer h.wg.Done()
	buf := make([]byte, inputEventSize*16)

	for {
		select {
		case <-h.stop:
			return
		default:
		}

		n, err := f.Read(buf)
		if err != nil {
			return
		}

		for i := 0; i+inputEventSize <= n; i += inputEventSize {
			ev, ok := decodeInputEvent(buf[i : i+inputEventSize])
			if !ok {
				continue
			}
			select {
			case h.events <- ev:
			case <-h.stop:
				return
			}
		}
	}
}

// decodeInputEvent turns one struct input_event into an Event. Autorepeat
// is reported as a press; non-key events and unmapped codes are dropped.
func decodeInputEvent(b []byte) (Event, bool) {
	evType := binary.LittleEndian.Uint16(b[16:])
	evCode := binary.LittleEndian.Uint16(b[18:])
	evValue := int32(binary.LittleEndian.Uint32(b[20:]))

	if evType != evKey {
		return Event{}, false
	}
	k, ok := lookup(evdevExtended, evCode)
	if !ok {
		return Event{}, false
	}

	switch evValue {
	case keyPress, keyAutoRept:
		return Event{Kind: Press, Key: k}, true
	case keyRelease:
		return Event{Kind: Release, Key: k}, true
	}
	return Event{Kind: Other, Key: k}, true
}

func (h *evdevHook) Unregister() {
	h.once.Do(func() {
		if h.stop != nil {
			close(h.stop)
		}
		for _, f := range h.files {
			f.Close()
		}
	})
}

func (h *evdevHook) Events() <-chan Event {
	return h.events
}

func findKeyboards() ([]string, error) {
	entries, err := os.ReadDir("/dev/input")
	if err != nil {
		return nil, err
	}

	var keyboards []string
	for _, e := range entries {
		if !strings.HasPrefix(e.Name(), "event") {
			continue
		}
		path := filepath.Join("/dev/input", e.Name())
		if isKeyboard(e.Name()) {
			keyboards = append(keyboards, path)
		}
	}
	return keyboards, nil
}

func isKeyboard(eventName string) bool {
	capsPath := filepath.Join("/sys/class/input", eventName, "device", "capabilities", "key")
	data, err := os.ReadFile(capsPath)
	if err != nil {
		return false
	}
	caps := strings.TrimSpace(string(data))
	return len(caps) > 10
}

func Diagnose() (string, error) {
	keyboards, err := findKeyboards()
	if err != nil {
		return "", fmt.Errorf("cannot scan input devices: %w", err)
	}
	if len(keyboards) == 0 {
		return "", fmt.Errorf("no keyboard devices found (is user in 'input' group?)")
	}

	var opened string
	for _, path := range keyboards {
		f, err := os.Open(path)
		if err == nil {
			f.Close()
			opened = path
			break
		}
	}
	if opened == "" {
		return "", fmt.Errorf("found %d keyboard(s) but cannot open any (run: sudo usermod -aG input $USER)", len(keyboards))
	}

	return fmt.Sprintf("%d keyboard(s) found, opened %s", len(keyboards), opened), nil
}
