package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const vignetteSrc = `//kage:unit pixels

package main

var Strength float
var Size vec2

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	p := dstPos.xy/Size - 0.5
	d := clamp(length(p)*1.6, 0, 1)
	a := d * d * Strength
	return vec4(0.85*a, 0.05*a, 0.05*a, a)
}
`

var (
	// VignetteShader reddens the screen edges when the player takes damage
	VignetteShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error
	VignetteShader, err = ebiten.NewShader([]byte(vignetteSrc))
	if err != nil {
		return err
	}
	return nil
}

// DrawHitFlash overlays the damage vignette at strength in [0, 1]. It is a
// no-op until LoadShaders succeeds.
func DrawHitFlash(screen *ebiten.Image, strength float64) {
	if VignetteShader == nil || strength <= 0 {
		return
	}
	b := screen.Bounds()
	op := &ebiten.DrawRectShaderOptions{}
	op.Uniforms = map[string]any{
		"Strength": float32(min(strength, 1)),
		"Size":     []float32{float32(b.Dx()), float32(b.Dy())},
	}
	screen.DrawRectShader(b.Dx(), b.Dy(), VignetteShader, op)
}
