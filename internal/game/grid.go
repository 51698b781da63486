package game

import "fmt"

// DefaultSize is the board side length.
const DefaultSize = 6

// Grid is a square occupancy matrix, cells[x][y].
type Grid struct {
	size  int
	cells [][]ShipID
}

// NewGrid returns an all-empty size×size grid.
func NewGrid(size int) (*Grid, error) {
	if size < 1 {
		return nil, fmt.Errorf("grid size %d: %w", size, ErrInvalidArgument)
	}
	cells := make([][]ShipID, size)
	for x := range cells {
		cells[x] = make([]ShipID, size)
	}
	return &Grid{size: size, cells: cells}, nil
}

func (g *Grid) Size() int { return g.size }

func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// IsEmpty reports whether c is in bounds and holds no ship.
func (g *Grid) IsEmpty(c Coord) bool {
	return g.InBounds(c) && g.cells[c.X][c.Y] == NoShip
}

// At returns the ship at c, or NoShip for empty or out-of-bounds cells.
func (g *Grid) At(c Coord) ShipID {
	if !g.InBounds(c) {
		return NoShip
	}
	return g.cells[c.X][c.Y]
}

// Occupy marks every position with id. Emptiness is the caller's check;
// bounds are asserted up front so a failed call leaves the grid untouched.
func (g *Grid) Occupy(positions []Coord, id ShipID) error {
	for _, p := range positions {
		if !g.InBounds(p) {
			return fmt.Errorf("occupy (%d,%d) on %dx%d grid: %w", p.X, p.Y, g.size, g.size, ErrInvalidArgument)
		}
	}
	for _, p := range positions {
		g.cells[p.X][p.Y] = id
	}
	return nil
}

// OccupiedCount returns the number of cells holding a ship.
func (g *Grid) OccupiedCount() int {
	n := 0
	for x := range g.cells {
		for _, v := range g.cells[x] {
			if v != NoShip {
				n++
			}
		}
	}
	return n
}
