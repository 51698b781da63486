// internal/game/engine.go
//
// Board generator.
// Responsibilities:
//   - Validate the board configuration once, at construction.
//   - Build a fresh grid, place the fleet, and disclose cells for each new board.
//
// Notes:
//   - Empty-cell reveals are appended before the per-ship reveals.
//   - A Generator owns a math/rand source and is not safe for concurrent use;
//     callers serialize Generate (see internal/service).
package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Config controls board generation. Zero fields take package defaults.
type Config struct {
	Size            int
	Fleet           Fleet
	MaxAttempts     int
	MinEmptyReveals int
	MaxEmptyReveals int
	Seed            int64 // 0 seeds from the clock
}

func (c Config) withDefaults() Config {
	if c.Size == 0 {
		c.Size = DefaultSize
	}
	if c.Fleet == nil {
		c.Fleet = DefaultFleet()
	}
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = DefaultMaxAttempts
	}
	if c.MinEmptyReveals == 0 && c.MaxEmptyReveals == 0 {
		c.MinEmptyReveals, c.MaxEmptyReveals = DefaultMinEmptyReveals, DefaultMaxEmptyReveals
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// Generator produces new boards.
type Generator struct {
	size     int
	fleet    Fleet
	placer   *Placer
	revealer *Revealer
}

// NewGenerator validates cfg and returns a ready Generator.
func NewGenerator(cfg Config) (*Generator, error) {
	cfg = cfg.withDefaults()
	if cfg.Size < 1 {
		return nil, fmt.Errorf("board size %d: %w", cfg.Size, ErrInvalidArgument)
	}
	if err := cfg.Fleet.Validate(cfg.Size); err != nil {
		return nil, err
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	rev, err := NewRevealer(rng, cfg.MinEmptyReveals, cfg.MaxEmptyReveals, cfg.MaxAttempts)
	if err != nil {
		return nil, err
	}
	return &Generator{
		size:     cfg.Size,
		fleet:    append(Fleet(nil), cfg.Fleet...),
		placer:   NewPlacer(rng, cfg.MaxAttempts),
		revealer: rev,
	}, nil
}

// Fleet returns a copy of the ship table in placement order.
func (g *Generator) Fleet() Fleet { return append(Fleet(nil), g.fleet...) }

// Generate builds one complete board.
func (g *Generator) Generate() (*State, error) {
	grid, err := NewGrid(g.size)
	if err != nil {
		return nil, err
	}
	ships, err := g.placer.PlaceAll(grid, g.fleet)
	if err != nil {
		return nil, err
	}
	empty, err := g.revealer.RevealEmptyCells(grid)
	if err != nil {
		return nil, err
	}
	moves := append(empty, g.revealer.RevealOneCellPerShip(ships)...)
	return NewState(grid, ships, moves), nil
}
