package life

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"lifelike/internal/core"
)

func TestDefaultRules(t *testing.T) {
	r := DefaultRules()
	if !slices.Equal(r.Survival(), []int{2, 3}) || !slices.Equal(r.Birth(), []int{3}) {
		t.Fatalf("default rules = S%v B%v", r.Survival(), r.Birth())
	}
	if r.String() != "B3/S23" {
		t.Fatalf("String() = %q", r.String())
	}
}

func TestNextDecision(t *testing.T) {
	r := DefaultRules()
	for n := 0; n <= MaxNeighbors; n++ {
		wantLive := uint8(0)
		if n == 2 || n == 3 {
			wantLive = 1
		}
		if got := r.Next(true, n); got != wantLive {
			t.Fatalf("live cell with %d neighbors -> %d, want %d", n, got, wantLive)
		}
		wantDead := uint8(0)
		if n == 3 {
			wantDead = 1
		}
		if got := r.Next(false, n); got != wantDead {
			t.Fatalf("dead cell with %d neighbors -> %d, want %d", n, got, wantDead)
		}
	}
	if r.Survives(9) || r.Born(-1) {
		t.Fatal("counts outside [0,8] never match")
	}
}

func TestParseRule(t *testing.T) {
	cases := []struct {
		in       string
		survival []int
		birth    []int
	}{
		{"B3/S23", []int{2, 3}, []int{3}},
		{"S23/B3", []int{2, 3}, []int{3}},
		{"23/3", []int{2, 3}, []int{3}},
		{"b36/s23", []int{2, 3}, []int{3, 6}},
		{"B2/S", nil, []int{2}},
		{" B3678/S34678 ", []int{3, 4, 6, 7, 8}, []int{3, 6, 7, 8}},
	}
	for _, tc := range cases {
		r, err := ParseRule(tc.in)
		if err != nil {
			t.Fatalf("ParseRule(%q): %v", tc.in, err)
		}
		if !slices.Equal(r.Survival(), tc.survival) || !slices.Equal(r.Birth(), tc.birth) {
			t.Fatalf("ParseRule(%q) = S%v B%v", tc.in, r.Survival(), r.Birth())
		}
		again, err := ParseRule(r.String())
		if err != nil || again != r {
			t.Fatalf("String() of %q does not parse back: %q %v", tc.in, r.String(), err)
		}
	}
}

func TestParseRuleErrors(t *testing.T) {
	for _, in := range []string{"", "B3", "B3/S2x", "B3/23", "B3/S1/S2"} {
		if _, err := ParseRule(in); err == nil {
			t.Fatalf("ParseRule(%q) should fail", in)
		}
	}
	if _, err := ParseRule("B9/S23"); !errors.Is(err, core.ErrInvalidRuleValue) {
		t.Fatalf("B9 err = %v, want ErrInvalidRuleValue", err)
	}
}

func TestParseCounts(t *testing.T) {
	got, err := ParseCounts("2, 3 5")
	if err != nil || !slices.Equal(got, []int{2, 3, 5}) {
		t.Fatalf("ParseCounts = %v, %v", got, err)
	}
	got, err = ParseCounts("236")
	if err != nil || !slices.Equal(got, []int{2, 3, 6}) {
		t.Fatalf("ParseCounts digits = %v, %v", got, err)
	}
	if _, err := ParseCounts("9"); !errors.Is(err, core.ErrInvalidRuleValue) {
		t.Fatalf("ParseCounts(9) err = %v", err)
	}
}

func TestParseRuleDuplicateParts(t *testing.T) {
	for _, in := range []string{"S23/S3", "B3/B6"} {
		_, err := ParseRule(in)
		if err == nil || !strings.Contains(err.Error(), "duplicate") {
			t.Fatalf("ParseRule(%q) err = %v, want a duplicate part error", in, err)
		}
	}
}
