package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundKill
	SoundHit
	SoundBurst
	SoundDowned
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneConfig describes a synthesized effect: a sine sweep from Freq to
// EndFreq with a linear decay.
type ToneConfig struct {
	Freq       float64
	EndFreq    float64
	DurationMs int
	Volume     float64 // multiplier on the SFX volume
}

var Audio AudioConfig

// Sound maps sound IDs to their tones.
var Sound map[SoundID]ToneConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = map[SoundID]ToneConfig{
		SoundKill:       {Freq: 880, EndFreq: 440, DurationMs: 60, Volume: 0.5},
		SoundHit:        {Freq: 180, EndFreq: 90, DurationMs: 120, Volume: 1.0},
		SoundBurst:      {Freq: 1200, EndFreq: 1400, DurationMs: 50, Volume: 0.3},
		SoundDowned:     {Freq: 440, EndFreq: 55, DurationMs: 900, Volume: 1.0},
		SoundMenuSelect: {Freq: 660, EndFreq: 660, DurationMs: 40, Volume: 0.6},
	}
}
