//go:build windows

package shortcut

import (
	"golang.design/x/hotkey"

	"keyhook/keys"
)

var modifierMap = map[keys.Key]hotkey.Modifier{
	keys.ControlLeft:  hotkey.ModCtrl,
	keys.ControlRight: hotkey.ModCtrl,
	keys.ShiftLeft:    hotkey.ModShift,
	keys.ShiftRight:   hotkey.ModShift,
	keys.AltLeft:      hotkey.ModAlt,
	keys.AltRight:     hotkey.ModAlt,
	keys.MetaLeft:     hotkey.ModWin,
	keys.MetaRight:    hotkey.ModWin,
}
