//go:build !linux && !darwin

package beep

// No audio playback here - beeps disabled.

func Init()        {}
func PlayTrigger() {}
func PlayError()   {}
func playEnable()  {}
func playDisable() {}
