//go:build linux

package beep

import (
	"sync"

	"github.com/jfreymuth/pulse"
	"github.com/jfreymuth/pulse/proto"
)

var (
	sounds    tones
	soundOnce sync.Once
)

func initSound() {
	sounds = makeTones(0.2)
}

func playSamples(samples []int16) {
	if disabled.Load() || len(samples) == 0 {
		return
	}
	c, err := pulse.NewClient()
	if err != nil {
		return
	}
	defer c.Close()

	pos := 0
	reader := pulse.Int16Reader(func(buf []int16) (int, error) {
		if pos >= len(samples) {
			return 0, pulse.EndOfData
		}
		n := copy(buf, samples[pos:])
		pos += n
		return n, nil
	})
	stream, err := c.NewPlayback(reader,
		pulse.PlaybackMono,
		pulse.PlaybackSampleRate(sampleRate),
		pulse.PlaybackLatency(0.1),
		pulse.PlaybackRawOption(func(p *proto.CreatePlaybackStream) {
			p.ChannelVolumes = proto.ChannelVolumes{uint32(proto.VolumeNorm)}
		}),
	)
	if err != nil {
		return
	}
	stream.Start()
	stream.Drain()
	stream.Stop()
	stream.Close()
}

func Init() {
	soundOnce.Do(initSound)
}

func PlayTrigger() {
	soundOnce.Do(initSound)
	go playSamples(sounds.trigger)
}

func playEnable() {
	soundOnce.Do(initSound)
	go playSamples(sounds.enable)
}

func playDisable() {
	soundOnce.Do(initSound)
	go playSamples(sounds.disable)
}

func PlayError() {
	soundOnce.Do(initSound)
	go playSamples(sounds.err)
}
