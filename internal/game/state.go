// internal/game/state.go
//
// State is one generated board: grid, ship registry and disclosed moves.
// A State is never modified after construction; a reset builds a new one.
//
// Wire shape (MarshalJSON):
//
//	{
//	  "board": [[0, "blue", ...], ...],                 // board[x][y], 0 = empty
//	  "ships": {"blue": {"size": 3, "positions": [[x,y], ...]}, ...},
//	  "moves": [{"x": 1, "y": 2, "hit": false, "ship_color": null}, ...]
//	}

package game

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type State struct {
	ID        string
	CreatedAt time.Time
	Grid      *Grid
	Ships     []Ship // registry, fleet order
	Moves     []Move // empty-cell reveals first, then one per ship
}

// NewState assembles a State with a fresh ID.
func NewState(g *Grid, ships []Ship, moves []Move) *State {
	return &State{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Grid:      g,
		Ships:     ships,
		Moves:     moves,
	}
}

// Ship looks up a ship by id.
func (s *State) Ship(id ShipID) (Ship, bool) {
	for _, sh := range s.Ships {
		if sh.ID == id {
			return sh, true
		}
	}
	return Ship{}, false
}

type shipJSON struct {
	Size      int      `json:"size"`
	Positions [][2]int `json:"positions"`
}

type moveJSON struct {
	X         int     `json:"x"`
	Y         int     `json:"y"`
	Hit       bool    `json:"hit"`
	ShipColor *string `json:"ship_color"`
}

type stateJSON struct {
	Board [][]any             `json:"board"`
	Ships map[string]shipJSON `json:"ships"`
	Moves []moveJSON          `json:"moves"`
}

// MarshalJSON renders the {board, ships, moves} document served to clients.
func (s *State) MarshalJSON() ([]byte, error) {
	out := stateJSON{
		Ships: make(map[string]shipJSON, len(s.Ships)),
		Moves: make([]moveJSON, 0, len(s.Moves)),
	}

	size := s.Grid.Size()
	out.Board = make([][]any, size)
	for x := 0; x < size; x++ {
		row := make([]any, size)
		for y := 0; y < size; y++ {
			if id := s.Grid.At(Coord{X: x, Y: y}); id != NoShip {
				row[y] = string(id)
			} else {
				row[y] = 0
			}
		}
		out.Board[x] = row
	}

	for _, sh := range s.Ships {
		pos := make([][2]int, len(sh.Positions))
		for i, c := range sh.Positions {
			pos[i] = [2]int{c.X, c.Y}
		}
		out.Ships[string(sh.ID)] = shipJSON{Size: sh.Length, Positions: pos}
	}

	for _, m := range s.Moves {
		mj := moveJSON{X: m.At.X, Y: m.At.Y, Hit: m.Hit}
		if m.Hit {
			color := string(m.Ship)
			mj.ShipColor = &color
		}
		out.Moves = append(out.Moves, mj)
	}
	return json.Marshal(out)
}
