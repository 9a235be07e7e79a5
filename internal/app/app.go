//go:build ebiten

package app

import (
	"log"
	"math/rand/v2"

	"lifelike/internal/life"
	"lifelike/internal/render"
	"lifelike/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	palette render.Palette
	rng     *rand.Rand
	scale   int
}

// New constructs a Game driving the provided session.
func New(s *Session, scale int) *Game {
	size := s.Sim().Size()
	return &Game{
		session: s,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(size, scale),
		hud:     ui.NewHUD(s, ui.PanelWidth),
		palette: render.DefaultPalette(),
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		scale:   scale,
	}
}

var sampleKeys = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}

// Update handles input and advances the simulation.
func (g *Game) Update() error {
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.Resume()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.RequestStep()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		s.SpeedUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		s.SpeedDown()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := s.Save(); err != nil {
			log.Print(err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if err := s.LoadSaved(); err != nil && !life.IsWarning(err) {
			log.Print(err)
		}
	}
	for i, key := range sampleKeys {
		if inpututil.IsKeyJustPressed(key) {
			if err := s.LoadSample(i + 1); err != nil && !life.IsWarning(err) {
				log.Print(err)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.ResetRules()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.overlay.Toggle()
	}
	g.updatePalette()

	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		s.PaintAt(mx, my, true)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		s.PaintAt(mx, my, false)
	}

	g.hud.Update(g.gridWidth())

	if err := s.Tick(); err != nil {
		s.Recover(err)
	}
	return nil
}

func (g *Game) updatePalette() {
	if inpututil.IsKeyJustPressed(ebiten.KeyK) {
		g.palette = g.palette.WithOn(render.RandomColor(g.rng))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.palette = g.palette.WithOff(render.RandomColor(g.rng))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.palette = render.DefaultPalette()
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Sim().Cells(), g.palette, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.gridWidth(), g.session.Sim().Size().H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.gridWidth() + g.hud.Width(), g.session.Sim().Size().H * g.scale
}

func (g *Game) gridWidth() int { return g.session.Sim().Size().W * g.scale }
