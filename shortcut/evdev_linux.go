//go:build linux

package shortcut

import (
	"sync"

	"keyhook/hotkey"
	"keyhook/keys"
)

// evdevShortcut opens its own evdev listener; every reader of a device
// receives all of its events, so it coexists with the keybind hook.
type evdevShortcut struct {
	hook    hotkey.Hook
	chord   *chord
	keydown chan struct{}
	stop    chan struct{}
	once    sync.Once
}

func New(combo keys.Set) (Shortcut, error) {
	return newWithHook(combo, hotkey.New())
}

func newWithHook(combo keys.Set, h hotkey.Hook) (Shortcut, error) {
	if _, _, err := splitCombo(combo); err != nil {
		return nil, err
	}
	return &evdevShortcut{
		hook:    h,
		chord:   newChord(combo),
		keydown: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}, nil
}

func (s *evdevShortcut) Register() error {
	if err := s.hook.Register(); err != nil {
		return err
	}
	go s.loop()
	return nil
}

func (s *evdevShortcut) loop() {
	events := s.hook.Events()
	for {
		select {
		case <-s.stop:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if s.chord.feed(ev) {
				select {
				case s.keydown <- struct{}{}:
				default:
				}
			}
		}
	}
}

func (s *evdevShortcut) Unregister() {
	s.once.Do(func() {
		close(s.stop)
		s.hook.Unregister()
	})
}

func (s *evdevShortcut) Keydown() <-chan struct{} {
	return s.keydown
}
