package life

import (
	"errors"
	"fmt"
	"strconv"

	"lifelike/internal/core"
	"lifelike/internal/pattern"
)

// Mode selects how a new Engine seeds its board.
type Mode string

const (
	ModeBlank   Mode = "blank"
	ModeRandom  Mode = "random"
	ModePattern Mode = "pattern"
)

// Engine evolves a bounded life-like automaton. It exclusively owns its
// board and rule set and is not safe for concurrent use.
type Engine struct {
	board   *core.Board
	scratch *core.Board
	counts  []uint8

	rules   RuleSet
	counter NeighborCounter
	rng     *core.RNG

	generation int
}

// New builds an Engine from cfg. When a pattern cannot be loaded the engine
// falls back to a random board and New returns it together with an error
// satisfying IsWarning; every other error leaves the engine nil.
func New(cfg Config) (*Engine, error) {
	rules := DefaultRules()
	if cfg.Survival != nil || cfg.Birth != nil {
		survival, birth := cfg.Survival, cfg.Birth
		if survival == nil {
			survival = rules.Survival()
		}
		if birth == nil {
			birth = rules.Birth()
		}
		var err error
		if rules, err = NewRuleSet(survival, birth); err != nil {
			return nil, err
		}
	}
	counter, err := NewCounter(cfg.Counter)
	if err != nil {
		return nil, err
	}
	board, err := core.NewBoard(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	e := &Engine{rules: rules, counter: counter, rng: core.NewRNG(cfg.Seed)}
	e.replaceBoard(board)

	switch cfg.Mode {
	case ModeBlank:
	case ModeRandom, "":
		e.Randomize()
	case ModePattern:
		return e, e.LoadPattern(cfg.Pattern)
	default:
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	return e, nil
}

// NewWithBoard builds an Engine around a copy of b.
func NewWithBoard(b *core.Board, rules RuleSet, kind Counter) (*Engine, error) {
	if !b.Validate() {
		return nil, core.ErrInvalidBoardState
	}
	counter, err := NewCounter(kind)
	if err != nil {
		return nil, err
	}
	e := &Engine{rules: rules, counter: counter, rng: core.NewRNG(0)}
	e.replaceBoard(b.Clone())
	return e, nil
}

// IsWarning reports whether err came from a recovered pattern load.
func IsWarning(err error) bool { return errors.Is(err, core.ErrPatternLoad) }

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.board.W, H: e.board.H} }

// Cells exposes the current grid values.
func (e *Engine) Cells() []uint8 { return e.board.Cells() }

// Board returns the current generation.
func (e *Engine) Board() *core.Board { return e.board }

// Rules returns the active rule set.
func (e *Engine) Rules() RuleSet { return e.rules }

// Generation returns the number of steps taken since the board was seeded.
func (e *Engine) Generation() int { return e.generation }

// Reset randomizes the board using the provided seed.
func (e *Engine) Reset(seed int64) {
	e.rng = core.NewRNG(seed)
	e.Randomize()
}

// Randomize sets every cell to 0 or 1 with equal probability.
func (e *Engine) Randomize() {
	board, _ := core.NewBoard(e.board.W, e.board.H)
	core.FillBinary(e.rng.Source(), board.Cells())
	e.replaceBoard(board)
}

// Clear replaces the board with an all-dead one of the same size.
func (e *Engine) Clear() {
	board, _ := core.NewBoard(e.board.W, e.board.H)
	e.replaceBoard(board)
}

// LoadPattern reseeds the board from a bundled pattern name or a saved file.
// On failure the board is randomized and the load error is returned.
func (e *Engine) LoadPattern(nameOrPath string) error {
	board, err := pattern.Load(nameOrPath, e.board.H, e.board.W)
	if err != nil {
		e.Randomize()
		return fmt.Errorf("seeding randomly: %w", err)
	}
	e.replaceBoard(board)
	return nil
}

// ReplaceRules swaps the rule set without touching the board.
func (e *Engine) ReplaceRules(r RuleSet) { e.rules = r }

// ResetRules restores Conway's rules on this engine.
func (e *Engine) ResetRules() { e.rules = DefaultRules() }

// SetCell writes a cell directly, bypassing the generation rule.
func (e *Engine) SetCell(row, col int, alive bool) error {
	var v uint8
	if alive {
		v = 1
	}
	return e.board.Set(row, col, v)
}

// Step advances the simulation by one generation. The next generation is
// computed entirely from the current one before the boards are swapped.
func (e *Engine) Step() error {
	if !e.board.Validate() {
		return fmt.Errorf("step generation %d: %w", e.generation, core.ErrInvalidBoardState)
	}
	cur := e.board.Cells()
	nxt := e.scratch.Cells()
	e.counter.Count(e.board, e.counts)
	for i, n := range e.counts {
		nxt[i] = e.rules.Next(cur[i] == 1, int(n))
	}
	e.board, e.scratch = e.scratch, e.board
	e.generation++
	return nil
}

// NextCellValue returns the value (row, col) will hold in the next generation.
// Cells beyond the border count as dead; (row, col) must be on the board.
func (e *Engine) NextCellValue(row, col int) uint8 {
	n := countNeighbors(e.board, row, col)
	return e.rules.Next(e.board.Cells()[e.board.Index(row, col)] == 1, n)
}

// Parameters exposes display values for the HUD.
func (e *Engine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Simulation",
		Params: []core.Parameter{
			{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: e.rules.String()},
			{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(e.generation)},
			{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(e.board.Population())},
		},
	}}}
}

func (e *Engine) replaceBoard(b *core.Board) {
	e.board = b
	if e.scratch == nil || e.scratch.W != b.W || e.scratch.H != b.H {
		e.scratch, _ = core.NewBoard(b.W, b.H)
		e.counts = make([]uint8, b.W*b.H)
	}
	e.generation = 0
}
