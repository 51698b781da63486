// internal/store/memory.go
//
// In-memory holder for the current board.
// There is exactly one current game per process; a reset replaces it whole.
//
// Characteristics:
//   - Holds a single *game.State reference.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, swaps exclusive).
//   - States are immutable, so readers never see a half-built board.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/battleship-backend/internal/game"
)

// ErrEmpty is returned by Current before the first Replace.
var ErrEmpty = errors.New("no current game")

// Store holds the current game state.
type Store interface {
	// Replace swaps in a fully built state.
	Replace(ctx context.Context, st *game.State) error

	// Current returns the state last passed to Replace, or ErrEmpty.
	Current(ctx context.Context) (*game.State, error)
}

// memory is a mutex-guarded single-slot Store.
type memory struct {
	mu  sync.RWMutex // guards cur
	cur *game.State
}

// NewMemoryStore constructs an empty in-memory Store.
func NewMemoryStore() Store {
	return &memory{}
}

func (m *memory) Replace(ctx context.Context, st *game.State) error {
	if st == nil {
		return errors.New("store: nil state")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cur = st
	return nil
}

func (m *memory) Current(ctx context.Context) (*game.State, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.cur == nil {
		return nil, ErrEmpty
	}
	return m.cur, nil
}
