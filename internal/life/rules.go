package life

import (
	"fmt"
	"strconv"
	"strings"

	"lifelike/internal/core"
)

// MaxNeighbors is the size of the Moore neighborhood.
const MaxNeighbors = 8

// RuleSet holds the neighbor counts at which a live cell survives and a dead
// cell is born. It is a value type; replace it rather than mutating it.
type RuleSet struct {
	survival uint16
	birth    uint16
}

// DefaultRules returns Conway's rules, B3/S23.
func DefaultRules() RuleSet {
	r, _ := NewRuleSet([]int{2, 3}, []int{3})
	return r
}

// NewRuleSet validates the counts and builds a RuleSet.
func NewRuleSet(survival, birth []int) (RuleSet, error) {
	s, err := countMask(survival)
	if err != nil {
		return RuleSet{}, fmt.Errorf("survival: %w", err)
	}
	b, err := countMask(birth)
	if err != nil {
		return RuleSet{}, fmt.Errorf("birth: %w", err)
	}
	return RuleSet{survival: s, birth: b}, nil
}

func countMask(counts []int) (uint16, error) {
	var m uint16
	for _, n := range counts {
		if n < 0 || n > MaxNeighbors {
			return 0, fmt.Errorf("%d: %w", n, core.ErrInvalidRuleValue)
		}
		m |= 1 << n
	}
	return m, nil
}

func maskCounts(m uint16) []int {
	var out []int
	for n := 0; n <= MaxNeighbors; n++ {
		if m&(1<<n) != 0 {
			out = append(out, n)
		}
	}
	return out
}

// Survives reports whether a live cell with n live neighbors stays alive.
func (r RuleSet) Survives(n int) bool { return n >= 0 && n <= MaxNeighbors && r.survival&(1<<n) != 0 }

// Born reports whether a dead cell with n live neighbors becomes alive.
func (r RuleSet) Born(n int) bool { return n >= 0 && n <= MaxNeighbors && r.birth&(1<<n) != 0 }

// Survival returns the sorted survival counts.
func (r RuleSet) Survival() []int { return maskCounts(r.survival) }

// Birth returns the sorted birth counts.
func (r RuleSet) Birth() []int { return maskCounts(r.birth) }

// Next applies the rule to a cell.
func (r RuleSet) Next(alive bool, neighbors int) uint8 {
	if alive {
		if r.Survives(neighbors) {
			return 1
		}
		return 0
	}
	if r.Born(neighbors) {
		return 1
	}
	return 0
}

// String formats the rule in B/S notation, e.g. "B3/S23".
func (r RuleSet) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for _, n := range r.Birth() {
		sb.WriteString(strconv.Itoa(n))
	}
	sb.WriteString("/S")
	for _, n := range r.Survival() {
		sb.WriteString(strconv.Itoa(n))
	}
	return sb.String()
}

// ParseRule accepts "B3/S23", "S23/B3" or the bare "23/3" survival/birth form.
func ParseRule(s string) (RuleSet, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return RuleSet{}, fmt.Errorf("rule %q: want two parts separated by '/'", s)
	}
	var survival, birth []int
	var haveS, haveB bool
	for i, part := range parts {
		target := &survival
		switch {
		case strings.HasPrefix(part, "B"):
			if haveB {
				return RuleSet{}, fmt.Errorf("rule %q: duplicate B part", s)
			}
			target, haveB = &birth, true
			part = part[1:]
		case strings.HasPrefix(part, "S"):
			if haveS {
				return RuleSet{}, fmt.Errorf("rule %q: duplicate S part", s)
			}
			haveS = true
			part = part[1:]
		case i == 1:
			target = &birth
		}
		counts, err := parseDigits(part)
		if err != nil {
			return RuleSet{}, fmt.Errorf("rule %q: %w", s, err)
		}
		*target = append(*target, counts...)
	}
	if haveS != haveB {
		return RuleSet{}, fmt.Errorf("rule %q: mixed prefixed and bare parts", s)
	}
	return NewRuleSet(survival, birth)
}

// ParseCounts reads a list of neighbor counts such as "2,3", "2 3" or "23".
func ParseCounts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	var out []int
	for _, f := range fields {
		counts, err := parseDigits(f)
		if err != nil {
			return nil, err
		}
		out = append(out, counts...)
	}
	return out, nil
}

func parseDigits(s string) ([]int, error) {
	out := make([]int, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%q: not a neighbor count", r)
		}
		n := int(r - '0')
		if n > MaxNeighbors {
			return nil, fmt.Errorf("%d: %w", n, core.ErrInvalidRuleValue)
		}
		out = append(out, n)
	}
	return out, nil
}
