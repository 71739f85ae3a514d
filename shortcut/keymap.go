//go:build darwin || windows

package shortcut

import (
	"golang.design/x/hotkey"

	"keyhook/keys"
)

var keyMap = map[keys.Key]hotkey.Key{
	keys.A:          hotkey.KeyA,
	keys.B:          hotkey.KeyB,
	keys.C:          hotkey.KeyC,
	keys.D:          hotkey.KeyD,
	keys.E:          hotkey.KeyE,
	keys.F:          hotkey.KeyF,
	keys.G:          hotkey.KeyG,
	keys.H:          hotkey.KeyH,
	keys.I:          hotkey.KeyI,
	keys.J:          hotkey.KeyJ,
	keys.K:          hotkey.KeyK,
	keys.L:          hotkey.KeyL,
	keys.M:          hotkey.KeyM,
	keys.N:          hotkey.KeyN,
	keys.O:          hotkey.KeyO,
	keys.P:          hotkey.KeyP,
	keys.Q:          hotkey.KeyQ,
	keys.R:          hotkey.KeyR,
	keys.S:          hotkey.KeyS,
	keys.T:          hotkey.KeyT,
	keys.U:          hotkey.KeyU,
	keys.V:          hotkey.KeyV,
	keys.W:          hotkey.KeyW,
	keys.X:          hotkey.KeyX,
	keys.Y:          hotkey.KeyY,
	keys.Z:          hotkey.KeyZ,
	keys.Digit0:     hotkey.Key0,
	keys.Digit1:     hotkey.Key1,
	keys.Digit2:     hotkey.Key2,
	keys.Digit3:     hotkey.Key3,
	keys.Digit4:     hotkey.Key4,
	keys.Digit5:     hotkey.Key5,
	keys.Digit6:     hotkey.Key6,
	keys.Digit7:     hotkey.Key7,
	keys.Digit8:     hotkey.Key8,
	keys.Digit9:     hotkey.Key9,
	keys.F1:         hotkey.KeyF1,
	keys.F2:         hotkey.KeyF2,
	keys.F3:         hotkey.KeyF3,
	keys.F4:         hotkey.KeyF4,
	keys.F5:         hotkey.KeyF5,
	keys.F6:         hotkey.KeyF6,
	keys.F7:         hotkey.KeyF7,
	keys.F8:         hotkey.KeyF8,
	keys.F9:         hotkey.KeyF9,
	keys.F10:        hotkey.KeyF10,
	keys.F11:        hotkey.KeyF11,
	keys.F12:        hotkey.KeyF12,
	keys.Space:      hotkey.KeySpace,
	keys.Enter:      hotkey.KeyReturn,
	keys.Escape:     hotkey.KeyEscape,
	keys.Delete:     hotkey.KeyDelete,
	keys.Tab:        hotkey.KeyTab,
	keys.LeftArrow:  hotkey.KeyLeft,
	keys.RightArrow: hotkey.KeyRight,
	keys.UpArrow:    hotkey.KeyUp,
	keys.DownArrow:  hotkey.KeyDown,
}
