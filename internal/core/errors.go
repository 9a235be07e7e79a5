package core

import "errors"

var (
	// ErrInvalidBoardState is returned when a board fails validation.
	ErrInvalidBoardState = errors.New("invalid board state")
	// ErrOutOfRange is returned for cell coordinates outside the grid.
	ErrOutOfRange = errors.New("cell out of range")
	// ErrInvalidCellValue is returned when writing anything other than 0 or 1.
	ErrInvalidCellValue = errors.New("cell value must be 0 or 1")
	// ErrPatternLoad marks unreadable or malformed pattern input.
	ErrPatternLoad = errors.New("pattern load failed")
	// ErrInvalidRuleValue is returned for neighbor counts outside [0,8].
	ErrInvalidRuleValue = errors.New("rule value out of range")
	// ErrDimensionMismatch is returned when a stored grid does not match the board size.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
