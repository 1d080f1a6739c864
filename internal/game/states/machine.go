package states

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Transition records one phase change for post-game inspection.
type Transition struct {
	From      GamePhase
	To        GamePhase
	Timestamp time.Time
	Reason    string
}

// Machine drives the turn alternation. The core is single-threaded by
// contract, so the machine does no locking.
type Machine struct {
	current GamePhase
	history []Transition
	logger  zerolog.Logger
}

// NewMachine creates a state machine starting at the attacker's turn.
func NewMachine(logger zerolog.Logger) *Machine {
	return &Machine{
		current: PhaseAttackerTurn,
		logger:  logger.With().Str("component", "state_machine").Logger(),
	}
}

// Current returns the current game phase.
func (m *Machine) Current() GamePhase {
	return m.current
}

// TransitionTo moves to the target phase, rejecting invalid transitions.
func (m *Machine) TransitionTo(target GamePhase, reason string) error {
	if !m.current.CanTransitionTo(target) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, target)
	}
	m.history = append(m.history, Transition{
		From:      m.current,
		To:        target,
		Timestamp: time.Now(),
		Reason:    reason,
	})
	m.logger.Debug().
		Stringer("from_phase", m.current).
		Stringer("to_phase", target).
		Str("reason", reason).
		Msg("State transition")
	m.current = target
	return nil
}

// History returns a copy of the transition history.
func (m *Machine) History() []Transition {
	out := make([]Transition, len(m.history))
	copy(out, m.history)
	return out
}
