package game

import (
	"errors"
	"math/rand"
	"testing"
)

func TestRevealEmptyCells(t *testing.T) {
	counts := map[int]bool{}
	for seed := int64(1); seed <= 300; seed++ {
		rng := rand.New(rand.NewSource(seed))
		g, _ := NewGrid(DefaultSize)
		if _, err := NewPlacer(rng, 0).PlaceAll(g, DefaultFleet()); err != nil {
			t.Fatalf("seed %d: PlaceAll: %v", seed, err)
		}
		r, err := NewRevealer(rng, DefaultMinEmptyReveals, DefaultMaxEmptyReveals, 0)
		if err != nil {
			t.Fatalf("NewRevealer: %v", err)
		}
		moves, err := r.RevealEmptyCells(g)
		if err != nil {
			t.Fatalf("seed %d: RevealEmptyCells: %v", seed, err)
		}
		if len(moves) < 3 || len(moves) > 5 {
			t.Fatalf("seed %d: K = %d, want 3..5", seed, len(moves))
		}
		counts[len(moves)] = true
		seen := map[Coord]bool{}
		for _, m := range moves {
			if m.Hit || m.Ship != NoShip {
				t.Fatalf("seed %d: empty reveal %+v carries a hit", seed, m)
			}
			if !g.IsEmpty(m.At) {
				t.Fatalf("seed %d: revealed %v is occupied by %s", seed, m.At, g.At(m.At))
			}
			if seen[m.At] {
				t.Fatalf("seed %d: %v revealed twice", seed, m.At)
			}
			seen[m.At] = true
		}
	}
	for k := 3; k <= 5; k++ {
		if !counts[k] {
			t.Errorf("K = %d never drawn in 300 boards", k)
		}
	}
}

func TestRevealEmptyCellsNotEnoughRoom(t *testing.T) {
	g, _ := NewGrid(2)
	_ = g.Occupy([]Coord{{0, 0}, {0, 1}, {1, 0}}, "blue")
	r, _ := NewRevealer(rand.New(rand.NewSource(1)), 3, 3, 0)
	if _, err := r.RevealEmptyCells(g); !errors.Is(err, ErrRetryExhausted) {
		t.Fatalf("err = %v, want ErrRetryExhausted", err)
	}
}

func TestNewRevealerRejectsBadBounds(t *testing.T) {
	if _, err := NewRevealer(rand.New(rand.NewSource(1)), 5, 3, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestRevealOneCellPerShip(t *testing.T) {
	ships := []Ship{
		{ID: "blue", Length: 3, Orientation: Horizontal, Positions: []Coord{{0, 0}, {1, 0}, {2, 0}}},
		{ID: "red", Length: 2, Orientation: Vertical, Positions: []Coord{{4, 2}, {4, 3}}},
	}
	r, _ := NewRevealer(rand.New(rand.NewSource(3)), 3, 5, 0)
	moves := r.RevealOneCellPerShip(ships)
	if len(moves) != len(ships) {
		t.Fatalf("got %d moves, want %d", len(moves), len(ships))
	}
	for i, m := range moves {
		s := ships[i]
		if !m.Hit || m.Ship != s.ID {
			t.Fatalf("move %d = %+v, want hit on %s", i, m, s.ID)
		}
		found := false
		for _, c := range s.Positions {
			if c == m.At {
				found = true
			}
		}
		if !found {
			t.Fatalf("move %d at %v is not a cell of %s", i, m.At, s.ID)
		}
	}
}
