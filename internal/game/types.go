// internal/game/types.go
//
// Core type definitions for the battleship board generator.
// Defines:
//   - Coord: a grid coordinate, X is the outer board index.
//   - ShipID / Ship / Orientation: a placed ship and its occupied run.
//   - Move: a pre-revealed cell (not a player action).
//   - Fleet: the ordered ship table used for placement.
//   - Sentinel errors shared by the package.

package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks a caller contract violation (bad size, out of bounds, malformed fleet).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRetryExhausted is returned when random sampling does not converge within its attempt cap.
	ErrRetryExhausted = errors.New("retry exhausted")
)

// Coord is a cell position. Boards are indexed board[X][Y].
type Coord struct {
	X int
	Y int
}

// ShipID identifies a ship. The empty ShipID means "no ship".
type ShipID string

// NoShip is the value of an empty cell.
const NoShip ShipID = ""

// Orientation of a placed ship.
//   - Horizontal: X varies, Y is fixed.
//   - Vertical:   Y varies, X is fixed.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Ship is a contiguous run of Length cells owned by ID.
type Ship struct {
	ID          ShipID
	Length      int
	Orientation Orientation
	Positions   []Coord // ordered, strictly increasing along the varying axis
}

// Move is a disclosure record. Ship is set iff Hit is true.
type Move struct {
	At   Coord
	Hit  bool
	Ship ShipID
}

// FleetEntry is one row of the ship table.
type FleetEntry struct {
	ID     ShipID
	Length int
}

// Fleet is the ordered ship table. Placement happens in slice order.
type Fleet []FleetEntry

// DefaultFleet is the classic three-ship table.
func DefaultFleet() Fleet {
	return Fleet{
		{ID: "blue", Length: 3},
		{ID: "red", Length: 2},
		{ID: "purple", Length: 2},
	}
}

// Cells returns the total number of cells the fleet occupies.
func (f Fleet) Cells() int {
	n := 0
	for _, e := range f {
		n += e.Length
	}
	return n
}

// Validate checks the table against a board side length.
func (f Fleet) Validate(size int) error {
	if len(f) == 0 {
		return fmt.Errorf("fleet is empty: %w", ErrInvalidArgument)
	}
	seen := make(map[ShipID]struct{}, len(f))
	for _, e := range f {
		if e.ID == NoShip {
			return fmt.Errorf("fleet entry without id: %w", ErrInvalidArgument)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("duplicate ship %q: %w", e.ID, ErrInvalidArgument)
		}
		seen[e.ID] = struct{}{}
		if e.Length < 1 || e.Length > size {
			return fmt.Errorf("ship %q length %d outside [1,%d]: %w", e.ID, e.Length, size, ErrInvalidArgument)
		}
	}
	if f.Cells() > size*size {
		return fmt.Errorf("fleet needs %d cells, board has %d: %w", f.Cells(), size*size, ErrInvalidArgument)
	}
	return nil
}
