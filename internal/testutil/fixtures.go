package testutil

import (
	"github.com/dianaoana1/COMP472-Warzone/internal/game/core"
)

// Placement describes one unit for a test board. A zero Health means full
// health for the type.
type Placement struct {
	At     core.Coord
	Owner  core.Player
	Type   core.UnitType
	Health int
}

// EmptyBoard creates an empty test board.
func EmptyBoard(dim int) *core.Board {
	return core.NewBoard(dim)
}

// BoardWith creates a board and places the given units on it.
func BoardWith(dim int, placements ...Placement) *core.Board {
	b := core.NewBoard(dim)
	for _, p := range placements {
		u := core.NewUnit(p.Owner, p.Type)
		if p.Health > 0 {
			u.Health = p.Health
		}
		b.Place(p.At, u)
	}
	return b
}

// DuelBoard creates a board with just the two AI units in opposite corners,
// the minimal position that is not yet terminal.
func DuelBoard(dim int) *core.Board {
	return BoardWith(dim,
		Placement{At: core.NewCoord(0, 0), Owner: core.Defender, Type: core.UnitAI},
		Placement{At: core.NewCoord(dim - 1, dim - 1), Owner: core.Attacker, Type: core.UnitAI},
	)
}
