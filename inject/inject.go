// Package inject synthesizes key chords through the OS input layer. The
// doctor uses it to drive the hook end to end.
package inject

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/micmonay/keybd_event"

	"keyhook/keys"
)

var (
	kb     keybd_event.KeyBonding
	kbOnce sync.Once
	kbErr  error
)

// Init creates the virtual keyboard. On Linux the uinput device needs a
// moment before the compositor and evdev readers pick it up.
func Init() error {
	kbOnce.Do(func() {
		kb, kbErr = keybd_event.NewKeyBonding()
		if kbErr == nil && runtime.GOOS == "linux" {
			time.Sleep(2 * time.Second)
		}
	})
	return kbErr
}

// Plan is a combo translated for keybd_event.
type Plan struct {
	vks   []int
	ctrl  bool
	shift bool
	alt   bool
	super bool
}

// PlanChord checks that every key of combo can be synthesized.
func PlanChord(combo keys.Set) (Plan, error) {
	var p Plan
	for _, k := range combo.Keys() {
		switch k {
		case keys.ControlLeft, keys.ControlRight:
			p.ctrl = true
		case keys.ShiftLeft, keys.ShiftRight:
			p.shift = true
		case keys.AltLeft, keys.AltRight:
			p.alt = true
		case keys.MetaLeft, keys.MetaRight:
			p.super = true
		default:
			vk, ok := vkMap[k]
			if !ok {
				return Plan{}, fmt.Errorf("cannot synthesize key %s", k)
			}
			p.vks = append(p.vks, vk)
		}
	}
	if len(p.vks) == 0 {
		return Plan{}, fmt.Errorf("combo %s has no main key", combo)
	}
	return p, nil
}

// Chord presses every key of combo together and releases them.
func Chord(combo keys.Set) error {
	p, err := PlanChord(combo)
	if err != nil {
		return err
	}
	if err := Init(); err != nil {
		return err
	}
	kb.Clear()
	kb.SetKeys(p.vks...)
	kb.HasCTRL(p.ctrl)
	kb.HasSHIFT(p.shift)
	kb.HasALT(p.alt)
	kb.HasSuper(p.super)
	return kb.Launching()
}
