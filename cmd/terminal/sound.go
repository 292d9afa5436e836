package main

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// blips plays short sine tones for kills and hits.
type blips struct {
	mixer *beep.Mixer
}

func newBlips() (*blips, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	b := &blips{mixer: &beep.Mixer{}}
	speaker.Play(b.mixer)
	return b, nil
}

// openSound returns nil when muted or when the audio device cannot be
// opened; the game runs silently either way.
func openSound(logger *log.Logger, mute bool, open func() (*blips, error)) *blips {
	if mute {
		return nil
	}
	b, err := open()
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		return nil
	}
	return b
}

func (b *blips) kill() { b.tone(880, 40*time.Millisecond) }
func (b *blips) hit()  { b.tone(220, 80*time.Millisecond) }

func (b *blips) tone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Lock()
	b.mixer.Add(beep.Take(sampleRate.N(d), sine))
	speaker.Unlock()
}
