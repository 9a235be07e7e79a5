package core

import (
	"errors"
	"testing"
)

func TestNewBoardRejectsNonPositiveSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 4}} {
		if _, err := NewBoard(dims[0], dims[1]); !errors.Is(err, ErrInvalidBoardState) {
			t.Fatalf("NewBoard(%d,%d) err = %v, want ErrInvalidBoardState", dims[0], dims[1], err)
		}
	}
}

func TestValidate(t *testing.T) {
	b, err := BoardFromRows([][]uint8{{0, 1, 0}, {1, 1, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if !b.Validate() {
		t.Fatal("binary 2x3 board should validate")
	}

	nonBinary := b.Clone()
	nonBinary.Cells()[4] = 2
	if nonBinary.Validate() {
		t.Fatal("board with a 2 should not validate")
	}

	wrongShape := b.Clone()
	wrongShape.W = 4
	if wrongShape.Validate() {
		t.Fatal("board whose cells do not fill W*H should not validate")
	}

	var missing *Board
	if missing.Validate() {
		t.Fatal("nil board should not validate")
	}
}

func TestBoardFromRowsRejectsRaggedAndNonBinary(t *testing.T) {
	if _, err := BoardFromRows([][]uint8{{0, 1}, {1}}); !errors.Is(err, ErrInvalidBoardState) {
		t.Fatalf("ragged rows err = %v", err)
	}
	if _, err := BoardFromRows([][]uint8{{0, 3}}); !errors.Is(err, ErrInvalidBoardState) {
		t.Fatalf("non-binary rows err = %v", err)
	}
	if _, err := BoardFromRows(nil); !errors.Is(err, ErrInvalidBoardState) {
		t.Fatalf("empty rows err = %v", err)
	}
}

func TestGetSet(t *testing.T) {
	b, _ := NewBoard(4, 3)
	if err := b.Set(2, 3, 1); err != nil {
		t.Fatal(err)
	}
	v, err := b.Get(2, 3)
	if err != nil || v != 1 {
		t.Fatalf("Get(2,3) = %d, %v; want 1", v, err)
	}
	if b.Cells()[b.Index(2, 3)] != 1 {
		t.Fatal("Set must write row-major")
	}
	if b.Population() != 1 {
		t.Fatalf("population = %d, want 1", b.Population())
	}
}

func TestSetErrorsLeaveBoardUnchanged(t *testing.T) {
	b, _ := NewBoard(3, 3)
	_ = b.Set(1, 1, 1)
	before := b.Clone()

	cases := []struct {
		row, col int
		v        uint8
		want     error
	}{
		{-1, 0, 1, ErrOutOfRange},
		{0, 3, 1, ErrOutOfRange},
		{3, 0, 0, ErrOutOfRange},
		{0, 0, 2, ErrInvalidCellValue},
	}
	for _, tc := range cases {
		if err := b.Set(tc.row, tc.col, tc.v); !errors.Is(err, tc.want) {
			t.Fatalf("Set(%d,%d,%d) err = %v, want %v", tc.row, tc.col, tc.v, err, tc.want)
		}
		if !b.Equal(before) {
			t.Fatalf("Set(%d,%d,%d) modified the board", tc.row, tc.col, tc.v)
		}
	}
	if _, err := b.Get(0, -1); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("Get(0,-1) err = %v", err)
	}
}

func TestRowsAndCloneAreCopies(t *testing.T) {
	b, _ := BoardFromRows([][]uint8{{1, 0}, {0, 1}})
	rows := b.Rows()
	rows[0][0] = 0
	c := b.Clone()
	c.Clear()
	if v, _ := b.Get(0, 0); v != 1 {
		t.Fatal("Rows or Clone aliased the board")
	}
	if c.Population() != 0 {
		t.Fatal("Clear left live cells")
	}
	if b.Equal(c) {
		t.Fatal("cleared clone should differ")
	}
}
