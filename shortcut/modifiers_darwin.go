//go:build darwin

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
	keys.AltLeft:      hotkey.ModOption,
	keys.AltRight:     hotkey.ModOption,
	keys.MetaLeft:     hotkey.ModCmd,
	keys.MetaRight:    hotkey.ModCmd,
}
