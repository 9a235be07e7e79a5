//go:build ebiten

package ui

import (
	"image/color"

	"lifelike/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws grid lines between cells on top of the simulation.
type Overlay struct {
	size  core.Size
	scale int
	show  bool
	lines *ebiten.Image
	color color.Color
}

// NewOverlay constructs an overlay for a grid of the given size and scale.
func NewOverlay(size core.Size, scale int) *Overlay {
	return &Overlay{size: size, scale: scale, show: true, color: color.RGBA{R: 40, G: 40, B: 40, A: 255}}
}

// Toggle shows or hides the grid lines.
func (o *Overlay) Toggle() { o.show = !o.show }

// Visible reports whether grid lines are drawn.
func (o *Overlay) Visible() bool { return o.show }

// Draw renders the grid lines onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || o.scale < 3 || o.size.W <= 0 || o.size.H <= 0 {
		return
	}
	if o.lines == nil {
		o.lines = o.build()
	}
	screen.DrawImage(o.lines, nil)
}

func (o *Overlay) build() *ebiten.Image {
	w, h := o.size.W*o.scale, o.size.H*o.scale
	img := ebiten.NewImage(w, h)
	for x := 0; x <= w; x += o.scale {
		for y := 0; y < h; y++ {
			img.Set(x, y, o.color)
		}
	}
	for y := 0; y <= h; y += o.scale {
		for x := 0; x < w; x++ {
			img.Set(x, y, o.color)
		}
	}
	return img
}
