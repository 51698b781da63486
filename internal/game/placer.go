// internal/game/placer.go
//
// Randomized ship placement.
// Each attempt picks an orientation, then an anchor such that the whole run
// stays on the board, and accepts the run only if every cell is empty.
// Ships are placed one after another in fleet order with no backtracking, so a
// later ship only sees the cells left over by earlier ones.

package game

import (
	"fmt"
	"math/rand"
)

// DefaultMaxAttempts caps the number of random draws per ship.
const DefaultMaxAttempts = 10000

// Placer places ships on a grid using its own random source.
// A Placer is not safe for concurrent use.
type Placer struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewPlacer returns a Placer drawing from rng. maxAttempts <= 0 selects DefaultMaxAttempts.
func NewPlacer(rng *rand.Rand, maxAttempts int) *Placer {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Placer{rng: rng, maxAttempts: maxAttempts}
}

// Place puts one ship of the given length on g and returns it.
func (p *Placer) Place(g *Grid, id ShipID, length int) (Ship, error) {
	size := g.Size()
	if length < 1 || length > size {
		return Ship{}, fmt.Errorf("ship %q length %d on %dx%d grid: %w", id, length, size, size, ErrInvalidArgument)
	}
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		orient := Vertical
		if p.rng.Intn(2) == 0 {
			orient = Horizontal
		}
		var anchor Coord
		if orient == Horizontal {
			anchor = Coord{X: p.rng.Intn(size - length + 1), Y: p.rng.Intn(size)}
		} else {
			anchor = Coord{X: p.rng.Intn(size), Y: p.rng.Intn(size - length + 1)}
		}
		run := runFrom(anchor, orient, length)
		if !allEmpty(g, run) {
			continue
		}
		if err := g.Occupy(run, id); err != nil {
			return Ship{}, err
		}
		return Ship{ID: id, Length: length, Orientation: orient, Positions: run}, nil
	}
	return Ship{}, fmt.Errorf("place ship %q after %d attempts: %w", id, p.maxAttempts, ErrRetryExhausted)
}

// PlaceAll places every fleet entry in order and returns the ships in the same order.
func (p *Placer) PlaceAll(g *Grid, fleet Fleet) ([]Ship, error) {
	ships := make([]Ship, 0, len(fleet))
	for _, e := range fleet {
		s, err := p.Place(g, e.ID, e.Length)
		if err != nil {
			return nil, err
		}
		ships = append(ships, s)
	}
	return ships, nil
}

// runFrom lists length cells starting at anchor along orient.
func runFrom(anchor Coord, orient Orientation, length int) []Coord {
	run := make([]Coord, length)
	for i := range run {
		if orient == Horizontal {
			run[i] = Coord{X: anchor.X + i, Y: anchor.Y}
		} else {
			run[i] = Coord{X: anchor.X, Y: anchor.Y + i}
		}
	}
	return run
}

func allEmpty(g *Grid, cells []Coord) bool {
	for _, c := range cells {
		if !g.IsEmpty(c) {
			return false
		}
	}
	return true
}
