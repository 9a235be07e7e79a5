package app

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"lifelike/internal/core"
	"lifelike/internal/life"
	"lifelike/internal/pattern"
)

const (
	// DefaultSpeed is the initial ticks-per-second rate.
	DefaultSpeed = 10
	// MinSpeed is the slowest allowed tick rate.
	MinSpeed = 5
	// MaxSpeed is the fastest allowed tick rate.
	MaxSpeed = 120
	// SpeedStep is the change applied by SpeedUp and SpeedDown.
	SpeedStep = 5
)

// Automaton is the engine surface a Session drives.
type Automaton interface {
	core.Sim
	Board() *core.Board
	SetCell(row, col int, alive bool) error
	Randomize()
	Clear()
	LoadPattern(nameOrPath string) error
	Rules() life.RuleSet
	ReplaceRules(r life.RuleSet)
	ResetRules()
}

// Session maps user commands onto an Automaton and keeps the UI-side state
// (pause flag, speed, save path). It is driven from a single goroutine.
type Session struct {
	sim      Automaton
	scale    int
	paused   bool
	tickOnce bool
	timer    *core.FixedStep
	savePath string
	logger   *log.Logger

	lastWarning error
}

// NewSession wraps sim. scale is the pixel size of one cell.
func NewSession(sim Automaton, scale, tps int, savePath string) *Session {
	if scale <= 0 {
		scale = 1
	}
	if tps <= 0 {
		tps = DefaultSpeed
	}
	if savePath == "" {
		savePath = DefaultSavePath
	}
	return &Session{
		sim:      sim,
		scale:    scale,
		timer:    core.NewFixedStep(tps),
		savePath: savePath,
		logger:   log.Default(),
	}
}

// SetLogger replaces the logger used for warnings.
func (s *Session) SetLogger(l *log.Logger) { s.logger = l }

// Sim returns the driven automaton.
func (s *Session) Sim() Automaton { return s.sim }

// Paused reports whether automatic stepping is suspended.
func (s *Session) Paused() bool { return s.paused }

// Speed returns the tick rate.
func (s *Session) Speed() int { return s.timer.TPS() }

// LastWarning returns the most recent recovered pattern-load error.
func (s *Session) LastWarning() error { return s.lastWarning }

// CellAt translates screen pixel coordinates into a cell, reporting false for
// points outside the grid.
func (s *Session) CellAt(px, py int) (row, col int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	row, col = py/s.scale, px/s.scale
	size := s.sim.Size()
	if row >= size.H || col >= size.W {
		return 0, 0, false
	}
	return row, col, true
}

// PaintAt places (alive) or removes a cell under the pixel coordinates.
// Points off the grid are ignored.
func (s *Session) PaintAt(px, py int, alive bool) {
	row, col, ok := s.CellAt(px, py)
	if !ok {
		return
	}
	if err := s.sim.SetCell(row, col, alive); err != nil {
		s.logger.Printf("paint (%d,%d): %v", row, col, err)
	}
}

// PlaceCell sets a cell alive.
func (s *Session) PlaceCell(row, col int) error { return s.sim.SetCell(row, col, true) }

// RemoveCell sets a cell dead.
func (s *Session) RemoveCell(row, col int) error { return s.sim.SetCell(row, col, false) }

// TogglePause flips the pause flag.
func (s *Session) TogglePause() { s.paused = !s.paused }

// Resume clears the pause flag.
func (s *Session) Resume() { s.paused = false }

// RequestStep advances exactly one generation on the next Tick, even when paused.
func (s *Session) RequestStep() { s.tickOnce = true }

// SpeedUp raises the tick rate by SpeedStep.
func (s *Session) SpeedUp() { s.SetSpeed(s.Speed() + SpeedStep) }

// SpeedDown lowers the tick rate by SpeedStep, never below MinSpeed.
func (s *Session) SpeedDown() { s.SetSpeed(s.Speed() - SpeedStep) }

// SetSpeed clamps tps to [MinSpeed, MaxSpeed] and applies it.
func (s *Session) SetSpeed(tps int) { s.timer.SetTPS(speedControl.Clamp(tps)) }

// Tick is called once per frame and steps the simulation when the pace
// timer allows it. A step failure pauses the session and is returned.
func (s *Session) Tick() error {
	due := s.timer.ShouldStep()
	if s.tickOnce || (!s.paused && due) {
		s.tickOnce = false
		return s.StepOnce()
	}
	return nil
}

// StepOnce advances one generation immediately.
func (s *Session) StepOnce() error {
	if err := s.sim.Step(); err != nil {
		s.paused = true
		return err
	}
	return nil
}

// Randomize reseeds the board randomly, keeping the rules.
func (s *Session) Randomize() { s.sim.Randomize() }

// Clear reseeds the board blank, keeping the rules.
func (s *Session) Clear() { s.sim.Clear() }

// LoadPattern reseeds from a bundled pattern or saved file. A failed load
// leaves a random board; the failure is logged, remembered and returned.
func (s *Session) LoadPattern(nameOrPath string) error {
	err := s.sim.LoadPattern(nameOrPath)
	if err != nil {
		s.lastWarning = err
		if life.IsWarning(err) {
			s.logger.Printf("warning: %v", err)
		}
		return err
	}
	s.lastWarning = nil
	return nil
}

// LoadSaved reloads the board from the session save path.
func (s *Session) LoadSaved() error { return s.LoadPattern(s.savePath) }

// LoadSample loads the i-th bundled pattern (1-based, sorted by name).
func (s *Session) LoadSample(i int) error {
	names := pattern.Samples()
	if i < 1 || i > len(names) {
		return fmt.Errorf("sample %d: have %d samples", i, len(names))
	}
	return s.LoadPattern(names[i-1])
}

// ChangeRules validates and swaps the rule set, keeping the board.
func (s *Session) ChangeRules(survival, birth []int) error {
	r, err := life.NewRuleSet(survival, birth)
	if err != nil {
		return err
	}
	s.sim.ReplaceRules(r)
	return nil
}

// ResetRules restores Conway's rules.
func (s *Session) ResetRules() { s.sim.ResetRules() }

// Save writes the board to the session save path.
func (s *Session) Save() error { return s.SaveTo(s.savePath) }

// SaveTo writes the board to path.
func (s *Session) SaveTo(path string) error {
	if err := pattern.SaveFile(path, s.sim.Board()); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Recover reacts to a failed step by reseeding randomly and resuming.
func (s *Session) Recover(err error) {
	if !errors.Is(err, core.ErrInvalidBoardState) {
		return
	}
	s.logger.Printf("resetting board: %v", err)
	s.sim.Randomize()
	s.paused = false
}

var speedControl = core.ParameterControl{
	Key: "tps", Label: "Speed", Step: SpeedStep,
	Min: MinSpeed, Max: MaxSpeed, HasMin: true, HasMax: true,
}

// ParameterControls exposes the speed control on the HUD.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{speedControl}
}

// SetIntParameter applies HUD adjustments.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != speedControl.Key {
		return false
	}
	s.SetSpeed(value)
	return true
}

// Parameters merges the automaton's values with the session state.
func (s *Session) Parameters() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	if provider, ok := s.sim.(core.ParameterProvider); ok {
		snap = provider.Parameters()
	}
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Session",
		Params: []core.Parameter{
			{Key: "tps", Label: "Speed", Type: core.ParamTypeInt, Value: strconv.Itoa(s.Speed())},
			{Key: "paused", Label: "Paused", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.paused)},
		},
	})
	return snap
}
