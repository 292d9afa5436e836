// Package synth renders short tones as 16-bit little-endian stereo PCM, the
// format ebiten's audio players read.
package synth

import (
	"encoding/binary"
	"math"

	"github.com/automoto/dronefall/config"
)

const bytesPerFrame = 4 // two channels of int16

// Render returns the PCM bytes for tone at sampleRate. The frequency sweeps
// linearly from Freq to EndFreq while the amplitude decays to zero.
func Render(sampleRate int, tone config.ToneConfig) []byte {
	frames := sampleRate * tone.DurationMs / 1000
	if frames <= 0 {
		return nil
	}
	buf := make([]byte, frames*bytesPerFrame)

	var phase float64
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames)
		freq := tone.Freq + (tone.EndFreq-tone.Freq)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		amp := (1 - t) * math.Sin(phase)
		s := uint16(int16(amp * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], s)
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], s)
	}
	return buf
}
