package render

import (
	"image/color"
	"math/rand/v2"
)

// Palette is the render configuration for binary grids. It is passed to
// every draw call; nothing about colors is global.
type Palette struct {
	On  color.Color
	Off color.Color
}

// DefaultPalette draws white cells on black.
func DefaultPalette() Palette {
	return Palette{On: color.White, Off: color.Black}
}

// RandomColor returns an opaque color drawn from r.
func RandomColor(r *rand.Rand) color.RGBA {
	return color.RGBA{R: uint8(r.IntN(256)), G: uint8(r.IntN(256)), B: uint8(r.IntN(256)), A: 255}
}

// WithOn returns a copy of p with a new live-cell color.
func (p Palette) WithOn(c color.Color) Palette {
	p.On = c
	return p
}

// WithOff returns a copy of p with a new background color.
func (p Palette) WithOff(c color.Color) Palette {
	p.Off = c
	return p
}
