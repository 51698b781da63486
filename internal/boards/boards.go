// internal/boards/boards.go
//
// Reference boards: hand-made layouts served alongside generated games.
//
// Board text format (one board per block of rows):
//   - H: water, not yet revealed.
//   - W: water, revealed (becomes a miss move).
//   - R / B / P: a cell of the red / blue / purple ship.
//
// Row r, column c of the text is cell board[r][c] (X = r, Y = c).
// Every ship letter must form one straight contiguous run.
//
// Initialization behavior (Init):
//  1. If path is set, boards are loaded from that file.
//  2. Otherwise the embedded assets/boards.txt is used.
//
// Initialization is run once (sync.Once).

package boards

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/robalobadob/battleship-backend/assets"
	"github.com/robalobadob/battleship-backend/internal/game"
)

// ErrNotFound is returned by Get for an index outside 1..Count().
var ErrNotFound = errors.New("board not found")

// shipLetters maps board letters to ships, in registry order.
var shipLetters = []struct {
	letter byte
	id     game.ShipID
}{
	{'B', "blue"},
	{'R', "red"},
	{'P', "purple"},
}

const (
	hidden   = 'H'
	revealed = 'W'
)

var (
	initOnce   sync.Once
	loaded     []*game.State
	initialErr error
)

// Init loads and parses the reference boards exactly once.
func Init(path string) error {
	initOnce.Do(func() {
		var blocks [][]string
		if path != "" {
			f, err := os.Open(path)
			if err != nil {
				initialErr = err
				return
			}
			defer f.Close()
			blocks, err = assets.ReadBlocks(f)
			if err != nil {
				initialErr = err
				return
			}
		} else {
			var err error
			blocks, err = assets.BoardBlocks()
			if err != nil {
				initialErr = err
				return
			}
		}

		out := make([]*game.State, 0, len(blocks))
		for i, rows := range blocks {
			st, err := Parse(rows)
			if err != nil {
				initialErr = fmt.Errorf("board %d: %w", i+1, err)
				return
			}
			out = append(out, st)
		}
		if len(out) == 0 {
			initialErr = errors.New("boards: no boards loaded")
			return
		}
		loaded = out
	})
	return initialErr
}

// Count returns the number of loaded boards.
func Count() int { return len(loaded) }

// Get returns board n, 1-based.
func Get(n int) (*game.State, error) {
	if n < 1 || n > len(loaded) {
		return nil, fmt.Errorf("board %d of %d: %w", n, len(loaded), ErrNotFound)
	}
	return loaded[n-1], nil
}

// Parse converts one board's rows into a State. Revealed water becomes
// miss moves in row-major order; ships are listed blue, red, purple.
func Parse(rows []string) (*game.State, error) {
	size := len(rows)
	grid, err := game.NewGrid(size)
	if err != nil {
		return nil, err
	}

	cells := map[byte][]game.Coord{}
	var moves []game.Move
	for x, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", x+1, len(row), size, game.ErrInvalidArgument)
		}
		for y := 0; y < size; y++ {
			c := game.Coord{X: x, Y: y}
			switch ch := row[y]; ch {
			case hidden:
			case revealed:
				moves = append(moves, game.Move{At: c})
			default:
				if shipFor(ch) == game.NoShip {
					return nil, fmt.Errorf("unknown cell %q at (%d,%d): %w", ch, x, y, game.ErrInvalidArgument)
				}
				cells[ch] = append(cells[ch], c)
			}
		}
	}

	var ships []game.Ship
	for _, sl := range shipLetters {
		pos, ok := cells[sl.letter]
		if !ok {
			continue
		}
		ship, err := straightRun(sl.id, pos)
		if err != nil {
			return nil, err
		}
		if err := grid.Occupy(ship.Positions, ship.ID); err != nil {
			return nil, err
		}
		ships = append(ships, ship)
	}
	return game.NewState(grid, ships, moves), nil
}

func shipFor(letter byte) game.ShipID {
	for _, sl := range shipLetters {
		if sl.letter == letter {
			return sl.id
		}
	}
	return game.NoShip
}

// straightRun checks that pos lie on one line with no gaps and builds the Ship.
func straightRun(id game.ShipID, pos []game.Coord) (game.Ship, error) {
	sort.Slice(pos, func(i, j int) bool {
		if pos[i].X != pos[j].X {
			return pos[i].X < pos[j].X
		}
		return pos[i].Y < pos[j].Y
	})
	orient := game.Horizontal
	if len(pos) > 1 && pos[0].X == pos[1].X {
		orient = game.Vertical
	}
	for i := 1; i < len(pos); i++ {
		want := game.Coord{X: pos[0].X + i, Y: pos[0].Y}
		if orient == game.Vertical {
			want = game.Coord{X: pos[0].X, Y: pos[0].Y + i}
		}
		if pos[i] != want {
			return game.Ship{}, fmt.Errorf("ship %q is not a straight run: %w", id, game.ErrInvalidArgument)
		}
	}
	return game.Ship{ID: id, Length: len(pos), Orientation: orient, Positions: pos}, nil
}
