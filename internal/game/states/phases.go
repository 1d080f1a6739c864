package states

import "fmt"

// GamePhase represents the current phase of a game. The game is a strict
// two-player alternation: attacker turn, defender turn, repeat, until a
// terminal condition moves it to GameOver.
type GamePhase int

const (
	// PhaseAttackerTurn - waiting for the attacker's action
	PhaseAttackerTurn GamePhase = iota

	// PhaseDefenderTurn - waiting for the defender's action
	PhaseDefenderTurn

	// PhaseGameOver - terminal, no further actions accepted
	PhaseGameOver
)

// String returns the string representation of a GamePhase.
func (p GamePhase) String() string {
	switch p {
	case PhaseAttackerTurn:
		return "AttackerTurn"
	case PhaseDefenderTurn:
		return "DefenderTurn"
	case PhaseGameOver:
		return "GameOver"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// CanTransitionTo returns whether a transition to the target phase is valid.
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	switch p {
	case PhaseAttackerTurn:
		return target == PhaseDefenderTurn || target == PhaseGameOver
	case PhaseDefenderTurn:
		return target == PhaseAttackerTurn || target == PhaseGameOver
	default:
		return false
	}
}

// CanReceiveActions reports whether the phase accepts player actions.
func (p GamePhase) CanReceiveActions() bool {
	return p == PhaseAttackerTurn || p == PhaseDefenderTurn
}
