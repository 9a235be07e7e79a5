package pattern

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"

	"lifelike/internal/core"
)

//go:embed samples/*.txt
var sampleFS embed.FS

// Placement positions a stored pattern on a canvas. Top and Left are the
// canvas coordinates of the pattern's first cell; a negative value crops
// that many leading rows or columns. Height and Width are the pattern's
// native dimensions.
type Placement struct {
	Top, Left     int
	Height, Width int
}

// Sample is a bundled seed pattern.
type Sample struct {
	Name      string
	Placement Placement
	file      string
}

var samples = map[string]Sample{
	"glider":            {Name: "glider", Placement: Placement{Top: 20, Left: 15, Height: 31, Width: 100}, file: "samples/glider.txt"},
	"gosper-glider-gun": {Name: "gosper-glider-gun", Placement: Placement{Top: 0, Left: 0, Height: 44, Width: 100}, file: "samples/gosper-glider-gun.txt"},
	"pulsar":            {Name: "pulsar", Placement: Placement{Top: 3, Left: -16, Height: 43, Width: 100}, file: "samples/pulsar.txt"},
}

// Samples lists the bundled pattern names in sorted order.
func Samples() []string {
	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a bundled pattern by name. The legacy
// "sample_patterns/<name>.txt" spelling is accepted too.
func Lookup(name string) (Sample, bool) {
	if dir, file := path.Split(name); dir == "" || dir == "sample_patterns/" {
		name = strings.TrimSuffix(file, ".txt")
	}
	s, ok := samples[name]
	return s, ok
}

// Board parses the sample at its native size.
func (s Sample) Board() (*core.Board, error) {
	data, err := sampleFS.ReadFile(s.file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrPatternLoad, err)
	}
	b, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("sample %s: %w", s.Name, err)
	}
	if b.H != s.Placement.Height || b.W != s.Placement.Width {
		return nil, fmt.Errorf("sample %s is %dx%d, want %dx%d: %w: %w", s.Name, b.H, b.W,
			s.Placement.Height, s.Placement.Width, core.ErrPatternLoad, core.ErrDimensionMismatch)
	}
	return b, nil
}

// Place copies p onto a new dead h×w canvas at pl.Top/pl.Left. Cells that
// land outside the canvas are dropped.
func Place(p *core.Board, pl Placement, h, w int) (*core.Board, error) {
	canvas, err := core.NewBoard(w, h)
	if err != nil {
		return nil, err
	}
	src, dst := p.Cells(), canvas.Cells()
	for row := 0; row < p.H; row++ {
		r := row + pl.Top
		if r < 0 || r >= h {
			continue
		}
		for col := 0; col < p.W; col++ {
			c := col + pl.Left
			if c < 0 || c >= w {
				continue
			}
			dst[canvas.Index(r, c)] = src[p.Index(row, col)]
		}
	}
	return canvas, nil
}

// Load builds an h×w board from a bundled pattern name or a saved file. Saved
// files are used as-is and must match h×w exactly.
func Load(nameOrPath string, h, w int) (*core.Board, error) {
	if s, ok := Lookup(nameOrPath); ok {
		p, err := s.Board()
		if err != nil {
			return nil, err
		}
		return Place(p, s.Placement, h, w)
	}
	b, err := LoadFile(nameOrPath)
	if err != nil {
		return nil, err
	}
	if b.H != h || b.W != w {
		return nil, fmt.Errorf("%s is %dx%d, board is %dx%d: %w: %w", nameOrPath, b.H, b.W, h, w,
			core.ErrPatternLoad, core.ErrDimensionMismatch)
	}
	return b, nil
}
