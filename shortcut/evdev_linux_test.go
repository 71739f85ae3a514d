//go:build linux

package shortcut

import (
	"testing"
	"time"

	"keyhook/hotkey"
	"keyhook/keys"
)

func TestEvdevShortcutFires(t *testing.T) {
	fake := hotkey.NewFake()
	sc, err := newWithHook(keys.NewSet(keys.ControlLeft, keys.ShiftLeft, keys.K), fake)
	if err != nil {
		t.Fatal(err)
	}
	if err := sc.Register(); err != nil {
		t.Fatal(err)
	}
	defer sc.Unregister()

	fake.Press(keys.ControlLeft)
	fake.Press(keys.ShiftLeft)
	fake.Press(keys.K)

	select {
	case <-sc.Keydown():
	case <-time.After(time.Second):
		t.Fatal("shortcut did not fire")
	}
}
