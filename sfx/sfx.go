// Package sfx plays the desktop sound effects through ebiten's audio
// context.
package sfx

import (
	"sync"

	cfg "github.com/automoto/dronefall/config"
	"github.com/automoto/dronefall/sfx/synth"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalCache        map[cfg.SoundID][]byte
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalMuted        bool
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalCache = make(map[cfg.SoundID][]byte, len(cfg.Sound))
	})
}

// Preload renders every tone at startup to avoid a hitch on first play.
func Preload() {
	initGlobalAudio()
	for id, tone := range cfg.Sound {
		if _, ok := globalCache[id]; !ok {
			globalCache[id] = synth.Render(cfg.Audio.SampleRate, tone)
		}
	}
}

// Play starts a sound effect. Unknown IDs are ignored.
func Play(id cfg.SoundID) {
	if globalMuted || globalSFXVolume <= 0 {
		return
	}
	initGlobalAudio()

	tone, ok := cfg.Sound[id]
	if !ok {
		return
	}
	pcm, ok := globalCache[id]
	if !ok {
		pcm = synth.Render(cfg.Audio.SampleRate, tone)
		globalCache[id] = pcm
	}

	player := globalAudioContext.NewPlayerFromBytes(pcm)
	player.SetVolume(globalSFXVolume * tone.Volume)
	player.Play()
}

// SetMuted silences or restores every effect.
func SetMuted(muted bool) {
	globalMuted = muted
}
