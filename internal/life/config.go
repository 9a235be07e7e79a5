package life

import (
	"fmt"
	"strconv"

	"lifelike/internal/core"
)

// Config controls how an Engine is built. Nil Survival or Birth select the
// corresponding Conway default; an empty non-nil slice means "never".
type Config struct {
	Width  int
	Height int

	Mode    Mode
	Pattern string

	Survival []int
	Birth    []int

	Seed    int64
	Counter Counter
}

// DefaultConfig returns a random 100x51 board under Conway's rules.
func DefaultConfig() Config {
	return Config{Width: 100, Height: 51, Mode: ModeRandom, Counter: CounterDirect}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c, _ := FromMapErr(cfg)
	return c
}

// FromMapErr is FromMap that also reports the first malformed or out-of-range
// rule value. Bad values still keep their defaults in the returned Config.
func FromMapErr(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	var ruleErr error
	keep := func(err error) {
		if ruleErr == nil {
			ruleErr = err
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["mode"]; ok && v != "" {
		c.Mode = Mode(v)
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
		if _, hasMode := cfg["mode"]; !hasMode {
			c.Mode = ModePattern
		}
	}
	if v, ok := cfg["counter"]; ok && v != "" {
		c.Counter = Counter(v)
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		if r, err := ParseRule(v); err == nil {
			c.Survival, c.Birth = nonNil(r.Survival()), nonNil(r.Birth())
		} else {
			keep(err)
		}
	}
	if v, ok := cfg["survival"]; ok {
		if counts, err := ParseCounts(v); err == nil {
			c.Survival = nonNil(counts)
		} else {
			keep(fmt.Errorf("survival: %w", err))
		}
	}
	if v, ok := cfg["birth"]; ok {
		if counts, err := ParseCounts(v); err == nil {
			c.Birth = nonNil(counts)
		} else {
			keep(fmt.Errorf("birth: %w", err))
		}
	}
	return c, ruleErr
}

func nonNil(counts []int) []int {
	if counts == nil {
		return []int{}
	}
	return counts
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMapErr(cfg)
		if err != nil {
			return nil, err
		}
		e, err := New(c)
		if e == nil {
			return nil, err
		}
		return e, err
	})
}
