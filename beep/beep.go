// Package beep plays short audible cues for keybind triggers, gate changes
// and backend errors.
package beep

import (
	"math"
	"sync/atomic"
)

var disabled atomic.Bool

func Disable() { disabled.Store(true) }

func Disabled() bool { return disabled.Load() }

const (
	sampleRate = 44100

	// Trigger: high pitch, very short
	triggerFreq   = 1500
	triggerVolume = 0.4
	triggerDecay  = 80

	// Enable: rising pair of ticks
	enableLowFreq  = 900
	enableHighFreq = 1200
	toggleVolume   = 0.5
	toggleDecay    = 50

	// Error: low pitch double-beep
	errorFreq   = 350
	errorVolume = 0.6
	errorDecay  = 30
)

// tick generates a mono sine burst with exponential decay.
func tick(freq, duration, volume, decay float64) []int16 {
	n := int(float64(sampleRate) * duration)
	samples := make([]int16, n)
	for i := range n {
		t := float64(i) / float64(sampleRate)
		envelope := math.Exp(-t * decay)
		samples[i] = int16(math.Sin(2*math.Pi*freq*t) * 32767 * volume * envelope)
	}
	return samples
}

func silence(duration float64) []int16 {
	return make([]int16, int(float64(sampleRate)*duration))
}

func concat(parts ...[]int16) []int16 {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]int16, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

type tones struct {
	trigger, enable, disable, err []int16
}

// makeTones builds every cue. tail pads the end of each cue, which the
// PulseAudio backend needs to fill its buffer.
func makeTones(tail float64) tones {
	hi := tick(enableHighFreq, 0.04, toggleVolume, toggleDecay)
	lo := tick(enableLowFreq, 0.04, toggleVolume, toggleDecay)
	gap := silence(0.03)
	errBeep := tick(errorFreq, 0.08, errorVolume, errorDecay)
	return tones{
		trigger: concat(tick(triggerFreq, 0.03, triggerVolume, triggerDecay), silence(tail)),
		enable:  concat(lo, gap, hi, silence(tail)),
		disable: concat(hi, gap, lo, silence(tail)),
		err:     concat(errBeep, silence(0.05), errBeep, silence(tail)),
	}
}

// PlayToggle plays the rising cue when on is true and the falling cue
// otherwise.
func PlayToggle(on bool) {
	if on {
		playEnable()
	} else {
		playDisable()
	}
}
