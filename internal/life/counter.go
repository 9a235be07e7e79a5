package life

import (
	"fmt"

	"lifelike/internal/core"
)

// Counter names a neighbor counting strategy.
type Counter string

const (
	// CounterDirect visits the Moore neighborhood of every cell.
	CounterDirect Counter = "direct"
	// CounterFFT convolves the whole board with the neighborhood kernel.
	CounterFFT Counter = "fft"
)

// NeighborCounter writes the live-neighbor count of every cell of b into
// counts, which has one entry per cell in row-major order. Cells outside the
// board are dead; there is no wraparound.
type NeighborCounter interface {
	Count(b *core.Board, counts []uint8)
}

// NewCounter returns the named strategy. The empty name selects CounterDirect.
func NewCounter(kind Counter) (NeighborCounter, error) {
	switch kind {
	case CounterDirect, "":
		return directCounter{}, nil
	case CounterFFT:
		return &fftCounter{}, nil
	default:
		return nil, fmt.Errorf("unknown neighbor counter %q", kind)
	}
}

type directCounter struct{}

func (directCounter) Count(b *core.Board, counts []uint8) {
	for row := 0; row < b.H; row++ {
		for col := 0; col < b.W; col++ {
			counts[b.Index(row, col)] = uint8(countNeighbors(b, row, col))
		}
	}
}

func countNeighbors(b *core.Board, row, col int) int {
	cells := b.Cells()
	n := 0
	for dr := -1; dr <= 1; dr++ {
		r := row + dr
		if r < 0 || r >= b.H {
			continue
		}
		for dc := -1; dc <= 1; dc++ {
			c := col + dc
			if (dr == 0 && dc == 0) || c < 0 || c >= b.W {
				continue
			}
			n += int(cells[r*b.W+c])
		}
	}
	return n
}
