package app

import (
	"flag"
	"fmt"
	"strconv"

	"lifelike/internal/life"
)

// DefaultSavePath is where the save and load commands read and write.
const DefaultSavePath = "saved_game.txt"

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width   int
	Height  int
	Mode    string
	Pattern string
	Rule    string
	Counter string
	Save    string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Scale:   10,
		TPS:     DefaultSpeed,
		Width:   100,
		Height:  51,
		Mode:    "random",
		Rule:    "B3/S23",
		Counter: "direct",
		Save:    DefaultSavePath,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards (0 picks one)")
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.StringVar(&c.Mode, "mode", c.Mode, "initial board: blank, random or pattern")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "bundled pattern name or saved board path (implies -mode pattern)")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule in B/S notation")
	fs.StringVar(&c.Counter, "counter", c.Counter, "neighbor counter: direct or fft")
	fs.StringVar(&c.Save, "save", c.Save, "save/load file for the S and L keys")
}

// SimMap converts the config into the key/value form sim factories accept.
func (c *Config) SimMap() map[string]string {
	m := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"rule":    c.Rule,
		"counter": c.Counter,
	}
	if c.Pattern != "" {
		m["pattern"] = c.Pattern
		if c.Mode != "random" {
			m["mode"] = c.Mode
		}
	} else {
		m["mode"] = c.Mode
	}
	return m
}

// Validate rejects values the sim factory would otherwise replace with defaults.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("board size %dx%d must be positive", c.Width, c.Height)
	}
	if _, err := life.ParseRule(c.Rule); err != nil {
		return err
	}
	if _, err := life.NewCounter(life.Counter(c.Counter)); err != nil {
		return err
	}
	switch life.Mode(c.Mode) {
	case life.ModeBlank, life.ModeRandom, life.ModePattern:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if life.Mode(c.Mode) == life.ModePattern && c.Pattern == "" {
		return fmt.Errorf("-mode pattern needs -pattern")
	}
	return nil
}
