package grid

import "errors"

var (
	// ErrConfig indicates invalid dimensions or start/finish placement at creation time.
	ErrConfig = errors.New("grid: invalid configuration")
	// ErrInvalidOperation indicates a wall edit aimed at the start or finish cell.
	ErrInvalidOperation = errors.New("grid: start and finish cells cannot become walls")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)
