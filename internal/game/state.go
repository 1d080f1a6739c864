package game

import "github.com/dianaoana1/COMP472-Warzone/internal/game/core"

// GameState is the authoritative game position: the board, whose turn it
// is, and how many full turns (both players moved) have been completed.
// The engine owns it exclusively between turns; search never touches it.
type GameState struct {
	Board  *core.Board
	ToMove core.Player
	Turn   int
}

// Clone returns an independent deep copy.
func (gs *GameState) Clone() *GameState {
	return &GameState{
		Board:  gs.Board.Clone(),
		ToMove: gs.ToMove,
		Turn:   gs.Turn,
	}
}
