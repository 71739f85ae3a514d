package hotkey

import "keyhook/keys"

// PC set-1 scancodes. Linux evdev and libuiohook share these values for the
// main block; each backend adds its own codes for the extended keys.
var setOne = map[uint16]keys.Key{
	1:  keys.Escape,
	2:  keys.Digit1,
	3:  keys.Digit2,
	4:  keys.Digit3,
	5:  keys.Digit4,
	6:  keys.Digit5,
	7:  keys.Digit6,
	8:  keys.Digit7,
	9:  keys.Digit8,
	10: keys.Digit9,
	11: keys.Digit0,
	12: keys.Minus,
	13: keys.Equal,
	14: keys.Backspace,
	15: keys.Tab,
	16: keys.Q,
	17: keys.W,
	18: keys.E,
	19: keys.R,
	20: keys.T,
	21: keys.Y,
	22: keys.U,
	23: keys.I,
	24: keys.O,
	25: keys.P,
	26: keys.LeftBracket,
	27: keys.RightBracket,
	28: keys.Enter,
	29: keys.ControlLeft,
	30: keys.A,
	31: keys.S,
	32: keys.D,
	33: keys.F,
	34: keys.G,
	35: keys.H,
	36: keys.J,
	37: keys.K,
	38: keys.L,
	39: keys.Semicolon,
	40: keys.Quote,
	41: keys.BackQuote,
	42: keys.ShiftLeft,
	43: keys.Backslash,
	44: keys.Z,
	45: keys.X,
	46: keys.C,
	47: keys.V,
	48: keys.B,
	49: keys.N,
	50: keys.M,
	51: keys.Comma,
	52: keys.Period,
	53: keys.Slash,
	54: keys.ShiftRight,
	56: keys.AltLeft,
	57: keys.Space,
	58: keys.CapsLock,
	59: keys.F1,
	60: keys.F2,
	61: keys.F3,
	62: keys.F4,
	63: keys.F5,
	64: keys.F6,
	65: keys.F7,
	66: keys.F8,
	67: keys.F9,
	68: keys.F10,
	87: keys.F11,
	88: keys.F12,
}

func lookup(extended map[uint16]keys.Key, code uint16) (keys.Key, bool) {
	if k, ok := setOne[code]; ok {
		return k, true
	}
	k, ok := extended[code]
	return k, ok
}
