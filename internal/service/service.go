// internal/service/service.go
//
// Game service: owns the single current board.
//   - Reset builds a new board and swaps it in.
//   - Current returns the board without touching it.
//   - StateSpaceEstimate returns the fixed figure the UI displays.

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/battleship-backend/internal/game"
	"github.com/robalobadob/battleship-backend/internal/store"
)

// ErrNotInitialized is returned by Current when no board has been generated yet.
var ErrNotInitialized = errors.New("game service not initialized")

// Fixed possible-states figure. Not derived from any board.
const (
	TotalStates     = 127384
	CalculationTime = "0.23s"
)

// Estimate is the possible-states payload.
type Estimate struct {
	TotalStates     int    `json:"total_states"`
	CalculationTime string `json:"calculation_time"`
}

// Service wires the generator to the state store.
type Service struct {
	gen   *game.Generator
	store store.Store
	mu    sync.Mutex // serializes Reset; the generator's random source is not goroutine-safe
}

// New returns a Service without generating a board.
func New(gen *game.Generator, st store.Store) *Service {
	return &Service{gen: gen, store: st}
}

// NewInitialized returns a Service that already holds its first board.
func NewInitialized(ctx context.Context, gen *game.Generator, st store.Store) (*Service, error) {
	s := New(gen, st)
	if _, err := s.Reset(ctx); err != nil {
		return nil, fmt.Errorf("initial board: %w", err)
	}
	return s, nil
}

// Reset generates a fresh board and makes it current.
// On failure the previous board stays current.
func (s *Service) Reset(ctx context.Context) (*game.State, error) {
	s.mu.Lock()
	st, err := s.gen.Generate()
	s.mu.Unlock()
	if err != nil {
		log.Error().Err(err).Msg("generate board")
		return nil, err
	}
	if err := s.store.Replace(ctx, st); err != nil {
		return nil, err
	}
	log.Debug().
		Str("game", st.ID).
		Int("ships", len(st.Ships)).
		Int("moves", len(st.Moves)).
		Msg("new board")
	return st, nil
}

// Current returns the current board.
func (s *Service) Current(ctx context.Context) (*game.State, error) {
	st, err := s.store.Current(ctx)
	if errors.Is(err, store.ErrEmpty) {
		return nil, ErrNotInitialized
	}
	return st, err
}

// StateSpaceEstimate returns the static possible-states figure.
func (s *Service) StateSpaceEstimate() Estimate {
	return Estimate{TotalStates: TotalStates, CalculationTime: CalculationTime}
}
