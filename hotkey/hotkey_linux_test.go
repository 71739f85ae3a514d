//go:build linux

package hotkey

import (
	"encoding/binary"
	"testing"

	"keyhook/keys"
)

func inputEvent(typ, code uint16, value int32) []byte {
	b := make([]byte, inputEventSize)
	binary.LittleEndian.PutUint16(b[16:], typ)
	binary.LittleEndian.PutUint16(b[18:], code)
	binary.LittleEndian.PutUint32(b[20:], uint32(value))
	return b
}

func TestDecodeInputEvent(t *testing.T) {
	tests := []struct {
		name   string
		raw    []byte
		want   Event
		wantOK bool
	}{
		{"press A", inputEvent(evKey, 30, keyPress), Event{Press, keys.A}, true},
		{"release A", inputEvent(evKey, 30, keyRelease), Event{Release, keys.A}, true},
		{"autorepeat", inputEvent(evKey, 42, keyAutoRept), Event{Press, keys.ShiftLeft}, true},
		{"right ctrl", inputEvent(evKey, 97, keyPress), Event{Press, keys.ControlRight}, true},
		{"arrow", inputEvent(evKey, 103, keyPress), Event{Press, keys.UpArrow}, true},
		{"F12", inputEvent(evKey, 88, keyPress), Event{Press, keys.F12}, true},
		{"sync event", inputEvent(0, 0, 0), Event{}, false},
		{"unmapped code", inputEvent(evKey, 240, keyPress), Event{}, false},
	}
	for _, tt := range tests {
		got, ok := decodeInputEvent(tt.raw)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("%s: got %+v %v, want %+v %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}
