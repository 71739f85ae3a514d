package inject

import (
	"github.com/micmonay/keybd_event"

	"keyhook/keys"
)

// VK codes for the keys the injector can synthesize. Modifiers are set
// through the KeyBonding flags instead.
var vkMap = map[keys.Key]int{
	keys.A:      keybd_event.VK_A,
	keys.B:      keybd_event.VK_B,
	keys.C:      keybd_event.VK_C,
	keys.D:      keybd_event.VK_D,
	keys.E:      keybd_event.VK_E,
	keys.F:      keybd_event.VK_F,
	keys.G:      keybd_event.VK_G,
	keys.H:      keybd_event.VK_H,
	keys.I:      keybd_event.VK_I,
	keys.J:      keybd_event.VK_J,
	keys.K:      keybd_event.VK_K,
	keys.L:      keybd_event.VK_L,
	keys.M:      keybd_event.VK_M,
	keys.N:      keybd_event.VK_N,
	keys.O:      keybd_event.VK_O,
	keys.P:      keybd_event.VK_P,
	keys.Q:      keybd_event.VK_Q,
	keys.R:      keybd_event.VK_R,
	keys.S:      keybd_event.VK_S,
	keys.T:      keybd_event.VK_T,
	keys.U:      keybd_event.VK_U,
	keys.V:      keybd_event.VK_V,
	keys.W:      keybd_event.VK_W,
	keys.X:      keybd_event.VK_X,
	keys.Y:      keybd_event.VK_Y,
	keys.Z:      keybd_event.VK_Z,
	keys.Digit0: keybd_event.VK_0,
	keys.Digit1: keybd_event.VK_1,
	keys.Digit2: keybd_event.VK_2,
	keys.Digit3: keybd_event.VK_3,
	keys.Digit4: keybd_event.VK_4,
	keys.Digit5: keybd_event.VK_5,
	keys.Digit6: keybd_event.VK_6,
	keys.Digit7: keybd_event.VK_7,
	keys.Digit8: keybd_event.VK_8,
	keys.Digit9: keybd_event.VK_9,
	keys.F1:     keybd_event.VK_F1,
	keys.F2:     keybd_event.VK_F2,
	keys.F3:     keybd_event.VK_F3,
	keys.F4:     keybd_event.VK_F4,
	keys.F5:     keybd_event.VK_F5,
	keys.F6:     keybd_event.VK_F6,
	keys.F7:     keybd_event.VK_F7,
	keys.F8:     keybd_event.VK_F8,
	keys.F9:     keybd_event.VK_F9,
	keys.F10:    keybd_event.VK_F10,
	keys.F11:    keybd_event.VK_F11,
	keys.F12:    keybd_event.VK_F12,
	keys.Space:  keybd_event.VK_SPACE,
}
