package store

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/robalobadob/battleship-backend/internal/game"
)

func newState(t *testing.T, seed int64) *game.State {
	t.Helper()
	gen, err := game.NewGenerator(game.Config{Seed: seed})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	st, err := gen.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return st
}

func TestMemoryStoreEmpty(t *testing.T) {
	m := NewMemoryStore()
	if _, err := m.Current(context.Background()); !errors.Is(err, ErrEmpty) {
		t.Fatalf("err = %v, want ErrEmpty", err)
	}
	if err := m.Replace(context.Background(), nil); err == nil {
		t.Fatalf("Replace(nil) accepted")
	}
}

func TestMemoryStoreReplace(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	a, b := newState(t, 1), newState(t, 2)

	if err := m.Replace(ctx, a); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	for i := 0; i < 3; i++ {
		got, err := m.Current(ctx)
		if err != nil || got != a {
			t.Fatalf("Current #%d = %v, %v; want first state", i, got, err)
		}
	}
	_ = m.Replace(ctx, b)
	if got, _ := m.Current(ctx); got != b {
		t.Fatalf("Current after second Replace = %s, want %s", got.ID, b.ID)
	}
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	states := []*game.State{newState(t, 1), newState(t, 2), newState(t, 3)}
	_ = m.Replace(ctx, states[0])

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = m.Replace(ctx, states[i%len(states)])
		}(i)
		go func() {
			defer wg.Done()
			st, err := m.Current(ctx)
			if err != nil || st.Grid == nil {
				t.Errorf("Current = %v, %v", st, err)
			}
		}()
	}
	wg.Wait()
}
