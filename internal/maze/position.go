package maze

import (
	"errors"
	"fmt"
)

// ErrInvalidDelta is returned when a move delta is not one of the four unit steps.
var ErrInvalidDelta = errors.New("maze: delta must be a single orthogonal step")

// Position addresses a grid cell by column (x) and row (y).
type Position struct {
	Col, Row int
}

// Add returns the position one step away in the given direction.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{Col: p.Col + dx, Row: p.Row + dy}
}

// String formats the position as (col,row).
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// Direction is one of the four orthogonal movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// DirectionFromDelta maps a (dx, dy) step to its direction.
func DirectionFromDelta(dx, dy int) (Direction, error) {
	switch {
	case dx == 0 && dy == -1:
		return Up, nil
	case dx == 0 && dy == 1:
		return Down, nil
	case dx == -1 && dy == 0:
		return Left, nil
	case dx == 1 && dy == 0:
		return Right, nil
	}
	return 0, fmt.Errorf("%w: got (%d,%d)", ErrInvalidDelta, dx, dy)
}

// Valid reports whether d is one of the four declared directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// Delta returns the column and row offsets for the direction.
// It panics on an undeclared direction value.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	panic(fmt.Sprintf("maze: invalid direction %d", int(d)))
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
