package boards

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/robalobadob/battleship-backend/assets"
	"github.com/robalobadob/battleship-backend/internal/game"
)

func TestInitEmbedded(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Count() != 10 {
		t.Fatalf("Count = %d, want 10", Count())
	}

	// ship sizes (blue, red, purple) and revealed water per board
	want := []struct {
		blue, red, purple, water int
	}{
		{2, 3, 4, 3}, {3, 2, 4, 3}, {3, 4, 2, 5}, {4, 3, 2, 4}, {4, 2, 3, 3},
		{2, 4, 3, 4}, {3, 3, 4, 3}, {2, 2, 4, 3}, {2, 2, 3, 4}, {4, 3, 2, 2},
	}
	for i, w := range want {
		st, err := Get(i + 1)
		if err != nil {
			t.Fatalf("Get(%d): %v", i+1, err)
		}
		got := map[game.ShipID]int{}
		for _, s := range st.Ships {
			got[s.ID] = s.Length
		}
		if got["blue"] != w.blue || got["red"] != w.red || got["purple"] != w.purple {
			t.Errorf("board %d ships = %v", i+1, got)
		}
		if len(st.Moves) != w.water {
			t.Errorf("board %d has %d revealed water cells, want %d", i+1, len(st.Moves), w.water)
		}
		if st.Grid.OccupiedCount() != w.blue+w.red+w.purple {
			t.Errorf("board %d occupied = %d", i+1, st.Grid.OccupiedCount())
		}
	}
}

func TestGetOutOfRange(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	for _, n := range []int{0, -1, Count() + 1} {
		if _, err := Get(n); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Get(%d) err = %v, want ErrNotFound", n, err)
		}
	}
}

func TestParseFirstReferenceBoard(t *testing.T) {
	rows := []string{
		"HHWHHH",
		"HRRRHH",
		"HHHHWH",
		"HHBWHH",
		"HHBHHH",
		"PPPPHH",
	}
	st, err := Parse(rows)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	wantShips := []game.Ship{
		{ID: "blue", Length: 2, Orientation: game.Horizontal, Positions: []game.Coord{{X: 3, Y: 2}, {X: 4, Y: 2}}},
		{ID: "red", Length: 3, Orientation: game.Vertical, Positions: []game.Coord{{X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}}},
		{ID: "purple", Length: 4, Orientation: game.Vertical, Positions: []game.Coord{{X: 5, Y: 0}, {X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 3}}},
	}
	if !reflect.DeepEqual(st.Ships, wantShips) {
		t.Fatalf("ships = %+v\nwant %+v", st.Ships, wantShips)
	}
	wantMoves := []game.Move{
		{At: game.Coord{X: 0, Y: 2}},
		{At: game.Coord{X: 2, Y: 4}},
		{At: game.Coord{X: 3, Y: 3}},
	}
	if !reflect.DeepEqual(st.Moves, wantMoves) {
		t.Fatalf("moves = %+v, want %+v", st.Moves, wantMoves)
	}
	if st.Grid.At(game.Coord{X: 5, Y: 3}) != "purple" {
		t.Fatalf("grid not populated from ships")
	}
}

func TestParseRejectsMalformedBoards(t *testing.T) {
	cases := []struct {
		name string
		rows []string
	}{
		{"ragged", []string{"HHH", "HH", "HHH"}},
		{"unknown letter", []string{"HHH", "HXH", "HHH"}},
		{"bent ship", []string{"RRH", "HRH", "HHH"}},
		{"gap", []string{"BHB", "HHH", "HHH"}},
		{"empty", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.rows); !errors.Is(err, game.ErrInvalidArgument) {
				t.Fatalf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestReadBlocks(t *testing.T) {
	src := "# two boards\nhw\nHH\n\n# next\nBB\nWH\n"
	blocks, err := assets.ReadBlocks(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadBlocks: %v", err)
	}
	want := [][]string{{"HW", "HH"}, {"BB", "WH"}}
	if !reflect.DeepEqual(blocks, want) {
		t.Fatalf("blocks = %v, want %v", blocks, want)
	}
}
