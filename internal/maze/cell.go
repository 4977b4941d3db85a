// Package maze provides staircase maze generation and grid queries.
package maze

// Cell represents a single grid cell.
type Cell rune

const (
	// Wall is an impassable cell.
	Wall Cell = '#'
	// Open is a walkable cell.
	Open Cell = '.'
)

// IsOpen returns true if the cell can be walked on.
func (c Cell) IsOpen() bool {
	return c == Open
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	return rune(c)
}

// String returns a human-readable cell name.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Open:
		return "open"
	default:
		return "unknown"
	}
}
