package synth

import (
	"encoding/binary"
	"testing"

	"github.com/automoto/dronefall/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderLength(t *testing.T) {
	pcm := Render(44100, config.ToneConfig{Freq: 440, EndFreq: 440, DurationMs: 100})
	assert.Len(t, pcm, 4410*bytesPerFrame)
}

func TestRenderEmpty(t *testing.T) {
	assert.Nil(t, Render(44100, config.ToneConfig{Freq: 440}))
}

func TestRenderChannelsMatchAndDecay(t *testing.T) {
	pcm := Render(8000, config.ToneConfig{Freq: 500, EndFreq: 500, DurationMs: 200})
	require.NotEmpty(t, pcm)

	peak := func(from, to int) int {
		var m int
		for i := from; i < to; i++ {
			l := int(int16(binary.LittleEndian.Uint16(pcm[i*bytesPerFrame:])))
			r := int(int16(binary.LittleEndian.Uint16(pcm[i*bytesPerFrame+2:])))
			assert.Equal(t, l, r)
			if l < 0 {
				l = -l
			}
			m = max(m, l)
		}
		return m
	}
	frames := len(pcm) / bytesPerFrame
	assert.Greater(t, peak(0, frames/4), peak(3*frames/4, frames))
}

func TestStockSoundsRender(t *testing.T) {
	for id, tone := range config.Sound {
		assert.NotEmpty(t, Render(config.Audio.SampleRate, tone), "sound %d", id)
	}
}
