package core

import "fmt"

// Board stores a 2D grid of binary cells in row-major order. W is the number
// of columns and H the number of rows.
type Board struct {
	W, H int
	data []uint8
}

// NewBoard allocates an all-dead board with the given dimensions.
func NewBoard(w, h int) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("board %dx%d: %w", w, h, ErrInvalidBoardState)
	}
	return &Board{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// BoardFromRows copies a rectangular 0/1 matrix into a new Board.
func BoardFromRows(rows [][]uint8) (*Board, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty rows: %w", ErrInvalidBoardState)
	}
	w, h := len(rows[0]), len(rows)
	b := &Board{W: w, H: h, data: make([]uint8, 0, w*h)}
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), w, ErrInvalidBoardState)
		}
		b.data = append(b.data, row...)
	}
	if !b.Validate() {
		return nil, fmt.Errorf("non-binary cell: %w", ErrInvalidBoardState)
	}
	return b, nil
}

// Validate reports whether the board is exactly W×H and every cell is 0 or 1.
func (b *Board) Validate() bool {
	if b == nil || b.W <= 0 || b.H <= 0 || len(b.data) != b.W*b.H {
		return false
	}
	for _, v := range b.data {
		if v > 1 {
			return false
		}
	}
	return true
}

// Cells exposes the backing slice so callers can read values directly.
func (b *Board) Cells() []uint8 { return b.data }

// Index returns the linear slice index for (row, col).
func (b *Board) Index(row, col int) int { return row*b.W + col }

// InBounds reports whether (row, col) addresses a cell on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.H && col >= 0 && col < b.W
}

// Get returns the value at (row, col).
func (b *Board) Get(row, col int) (uint8, error) {
	if !b.InBounds(row, col) {
		return 0, fmt.Errorf("get (%d,%d) on %dx%d board: %w", row, col, b.H, b.W, ErrOutOfRange)
	}
	return b.data[b.Index(row, col)], nil
}

// Set writes v at (row, col). The board is left untouched on error.
func (b *Board) Set(row, col int, v uint8) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("set (%d,%d) on %dx%d board: %w", row, col, b.H, b.W, ErrOutOfRange)
	}
	if v > 1 {
		return fmt.Errorf("set (%d,%d) to %d: %w", row, col, v, ErrInvalidCellValue)
	}
	b.data[b.Index(row, col)] = v
	return nil
}

// Rows returns a copy of the board as a slice of rows.
func (b *Board) Rows() [][]uint8 {
	rows := make([][]uint8, b.H)
	for r := range rows {
		rows[r] = append([]uint8(nil), b.data[r*b.W:(r+1)*b.W]...)
	}
	return rows
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	return &Board{W: b.W, H: b.H, data: append([]uint8(nil), b.data...)}
}

// Equal reports whether both boards have the same shape and contents.
func (b *Board) Equal(o *Board) bool {
	if b == nil || o == nil {
		return b == o
	}
	if b.W != o.W || b.H != o.H || len(b.data) != len(o.data) {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Population counts live cells.
func (b *Board) Population() int {
	n := 0
	for _, v := range b.data {
		if v == 1 {
			n++
		}
	}
	return n
}

// Clear fills the board with dead cells.
func (b *Board) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
}
