package life

import (
	"slices"
	"testing"

	"lifelike/internal/core"
)

func TestFFTCounterMatchesDirect(t *testing.T) {
	for _, dims := range [][2]int{{37, 23}, {8, 8}, {1, 5}, {64, 3}} {
		e, err := New(Config{Width: dims[0], Height: dims[1], Seed: 17})
		if err != nil {
			t.Fatal(err)
		}
		want := make([]uint8, dims[0]*dims[1])
		got := make([]uint8, len(want))
		directCounter{}.Count(e.Board(), want)
		(&fftCounter{}).Count(e.Board(), got)
		if !slices.Equal(got, want) {
			t.Fatalf("%dx%d: fft counts differ from direct counts", dims[0], dims[1])
		}
	}
}

func TestFFTEngineTracksDirectEngine(t *testing.T) {
	seed, _ := New(Config{Width: 30, Height: 20, Seed: 8})
	direct, _ := NewWithBoard(seed.Board(), DefaultRules(), CounterDirect)
	fft, err := NewWithBoard(seed.Board(), DefaultRules(), CounterFFT)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 25; i++ {
		if err := direct.Step(); err != nil {
			t.Fatal(err)
		}
		if err := fft.Step(); err != nil {
			t.Fatal(err)
		}
		if !direct.Board().Equal(fft.Board()) {
			t.Fatalf("counters diverged at generation %d", i+1)
		}
	}
}

func TestFFTCounterResizes(t *testing.T) {
	c := &fftCounter{}
	small, _ := core.NewBoard(4, 4)
	_ = small.Set(1, 1, 1)
	counts := make([]uint8, 16)
	c.Count(small, counts)
	if counts[0] != 1 || counts[15] != 0 {
		t.Fatalf("small counts = %v", counts)
	}

	large, _ := core.NewBoard(9, 7)
	_ = large.Set(0, 8, 1)
	counts = make([]uint8, 63)
	c.Count(large, counts)
	if counts[large.Index(1, 7)] != 1 || counts[large.Index(0, 0)] != 0 {
		t.Fatal("counter did not rebuild for the new board size")
	}
}

func TestNewCounter(t *testing.T) {
	if _, err := NewCounter("abacus"); err == nil {
		t.Fatal("unknown counter should fail")
	}
	if c, err := NewCounter(""); err != nil || c == nil {
		t.Fatalf("default counter = %v, %v", c, err)
	}
}
