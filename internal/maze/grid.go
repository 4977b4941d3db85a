package maze

import "strings"

// Grid is a fixed-size matrix of cells indexed [row][col].
type Grid struct {
	width  int
	height int
	cells  [][]Cell
}

// newGrid creates a grid filled with walls.
func newGrid(width, height int) *Grid {
	cells := make([][]Cell, height)
	for y := range cells {
		cells[y] = make([]Cell, width)
		for x := range cells[y] {
			cells[y][x] = Wall
		}
	}
	return &Grid{width: width, height: height, cells: cells}
}

// ParseGrid builds a grid from rows of '#' and '.' characters.
// Any character other than '.' is read as a wall. Rows shorter than the
// first are padded with walls.
func ParseGrid(rows ...string) *Grid {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	g := newGrid(width, len(rows))
	for y, row := range rows {
		for x, ch := range []byte(row) {
			if x < width && Cell(ch) == Open {
				g.cells[y][x] = Open
			}
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds returns true if p addresses a cell inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Col >= 0 && p.Col < g.width && p.Row >= 0 && p.Row < g.height
}

// At returns the cell at p. Positions outside the grid read as Wall.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Row][p.Col]
}

// IsOpen returns true if p is inside the grid and walkable.
func (g *Grid) IsOpen(p Position) bool {
	return g.At(p).IsOpen()
}

// OpenCells returns every open position in row-major order.
func (g *Grid) OpenCells() []Position {
	var open []Position
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y][x].IsOpen() {
				open = append(open, Position{Col: x, Row: y})
			}
		}
	}
	return open
}

func (g *Grid) open(p Position) {
	g.cells[p.Row][p.Col] = Open
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			b.WriteRune(g.cells[y][x].Rune())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
