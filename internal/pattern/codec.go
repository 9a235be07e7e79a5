package pattern

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"lifelike/internal/core"
)

const (
	// Alive marks a live cell in the text format.
	Alive = 'X'
	// Dead marks a dead cell in the text format.
	Dead = '.'
)

// Parse reads a rectangular grid of Alive/Dead symbols, one row per line.
// Trailing blank lines are ignored; any other symbol, a ragged row or an
// empty grid is malformed. Errors wrap core.ErrPatternLoad.
func Parse(r io.Reader) (*core.Board, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var rows [][]uint8
	blank := 0
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" {
			blank++
			continue
		}
		if blank > 0 {
			return nil, fmt.Errorf("line %d: blank line inside grid: %w", line-1, core.ErrPatternLoad)
		}
		row := make([]uint8, len(text))
		for i := 0; i < len(text); i++ {
			switch text[i] {
			case Alive:
				row[i] = 1
			case Dead:
			default:
				return nil, fmt.Errorf("line %d col %d: unexpected symbol %q: %w", line, i+1, text[i], core.ErrPatternLoad)
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: %d symbols, want %d: %w", line, len(row), len(rows[0]), core.ErrPatternLoad)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrPatternLoad, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty grid: %w", core.ErrPatternLoad)
	}
	b, err := core.BoardFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrPatternLoad, err)
	}
	return b, nil
}

// Encode writes b as H lines of W symbols.
func Encode(w io.Writer, b *core.Board) error {
	if !b.Validate() {
		return core.ErrInvalidBoardState
	}
	bw := bufio.NewWriter(w)
	cells := b.Cells()
	line := make([]byte, b.W+1)
	line[b.W] = '\n'
	for row := 0; row < b.H; row++ {
		for col := 0; col < b.W; col++ {
			line[col] = Dead
			if cells[b.Index(row, col)] == 1 {
				line[col] = Alive
			}
		}
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// LoadFile parses the grid stored at path.
func LoadFile(path string) (*core.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrPatternLoad, err)
	}
	defer f.Close()
	b, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// SaveFile writes b to path, replacing any existing file.
func SaveFile(path string, b *core.Board) error {
	if !b.Validate() {
		return fmt.Errorf("save %s: %w", path, core.ErrInvalidBoardState)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, b); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}
