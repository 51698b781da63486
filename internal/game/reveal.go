package game

import (
	"fmt"
	"math/rand"
)

// Default bounds for the number of empty cells disclosed per board.
const (
	DefaultMinEmptyReveals = 3
	DefaultMaxEmptyReveals = 5
)

// Revealer selects the cells disclosed before play.
// A Revealer is not safe for concurrent use.
type Revealer struct {
	rng         *rand.Rand
	minK, maxK  int
	maxAttempts int
}

// NewRevealer returns a Revealer disclosing between minK and maxK empty cells.
func NewRevealer(rng *rand.Rand, minK, maxK, maxAttempts int) (*Revealer, error) {
	if minK < 0 || maxK < minK {
		return nil, fmt.Errorf("reveal bounds [%d,%d]: %w", minK, maxK, ErrInvalidArgument)
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Revealer{rng: rng, minK: minK, maxK: maxK, maxAttempts: maxAttempts}, nil
}

// RevealEmptyCells picks K distinct empty cells, K uniform in [minK,maxK].
// Moves come back in the order the cells were accepted.
func (r *Revealer) RevealEmptyCells(g *Grid) ([]Move, error) {
	k := r.minK + r.rng.Intn(r.maxK-r.minK+1)
	size := g.Size()
	if free := size*size - g.OccupiedCount(); free < k {
		return nil, fmt.Errorf("reveal %d empty cells, only %d free: %w", k, free, ErrRetryExhausted)
	}

	seen := make(map[Coord]struct{}, k)
	moves := make([]Move, 0, k)
	for attempt := 0; len(moves) < k; attempt++ {
		if attempt >= r.maxAttempts {
			return nil, fmt.Errorf("reveal empty cells after %d attempts: %w", r.maxAttempts, ErrRetryExhausted)
		}
		c := Coord{X: r.rng.Intn(size), Y: r.rng.Intn(size)}
		if !g.IsEmpty(c) {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		moves = append(moves, Move{At: c})
	}
	return moves, nil
}

// RevealOneCellPerShip discloses one random cell of every ship, in registry order.
func (r *Revealer) RevealOneCellPerShip(ships []Ship) []Move {
	moves := make([]Move, 0, len(ships))
	for _, s := range ships {
		if len(s.Positions) == 0 {
			continue
		}
		c := s.Positions[r.rng.Intn(len(s.Positions))]
		moves = append(moves, Move{At: c, Hit: true, Ship: s.ID})
	}
	return moves
}
