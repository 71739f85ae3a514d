//go:build darwin || windows

package shortcut

import (
	"fmt"
	"sync"

	"golang.design/x/hotkey"

	"keyhook/keys"
)

type xShortcut struct {
	hk      *hotkey.Hotkey
	keydown chan struct{}
	stop    chan struct{}
	once    sync.Once
}

// New registers combo with the OS through golang.design/x/hotkey.
func New(combo keys.Set) (Shortcut, error) {
	mods, key, err := splitCombo(combo)
	if err != nil {
		return nil, err
	}
	xkey, ok := keyMap[key]
	if !ok {
		return nil, fmt.Errorf("key %s cannot be used in a system shortcut", key)
	}
	var xmods []hotkey.Modifier
	for _, m := range mods {
		xmods = append(xmods, modifierMap[m])
	}
	return &xShortcut{
		hk:      hotkey.New(xmods, xkey),
		keydown: make(chan struct{}, 1),
		stop:    make(chan struct{}),
	}, nil
}

func (s *xShortcut) Register() error {
	if err := s.hk.Register(); err != nil {
		return err
	}
	go func() {
		for {
			select {
			case <-s.stop:
				return
			case <-s.hk.Keydown():
				select {
				case s.keydown <- struct{}{}:
				default:
				}
			}
		}
	}()
	return nil
}

func (s *xShortcut) Unregister() {
	s.once.Do(func() {
		close(s.stop)
		s.hk.Unregister()
	})
}

func (s *xShortcut) Keydown() <-chan struct{} {
	return s.keydown
}
