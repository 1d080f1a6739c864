package rules

import (
	"github.com/dianaoana1/COMP472-Warzone/internal/game/core"
	"github.com/rs/zerolog"
)

// TimeoutPolicy decides the result when the turn limit is reached with both
// AI units still alive.
type TimeoutPolicy int

const (
	// TimeoutDefenderWins awards the game to the defender on turn
	// exhaustion. This is the classic rule: the attacker is on the clock.
	TimeoutDefenderWins TimeoutPolicy = iota
	// TimeoutDraw ends the game with no winner.
	TimeoutDraw
)

// Verdict is the result of a game-over check.
type Verdict struct {
	Over   bool
	Draw   bool
	Winner core.Player // valid only when Over && !Draw
}

// WinConditionChecker detects terminal positions: a destroyed AI unit loses
// the game for its owner, and the turn limit triggers the timeout policy.
type WinConditionChecker struct {
	logger   zerolog.Logger
	maxTurns int
	timeout  TimeoutPolicy
}

// NewWinConditionChecker creates a checker with the given turn limit and
// timeout policy.
func NewWinConditionChecker(logger zerolog.Logger, maxTurns int, timeout TimeoutPolicy) *WinConditionChecker {
	return &WinConditionChecker{
		logger:   logger.With().Str("component", "win_checker").Logger(),
		maxTurns: maxTurns,
		timeout:  timeout,
	}
}

// Check evaluates the board and completed-turn count for terminal conditions.
func (wc *WinConditionChecker) Check(b *core.Board, turn int) Verdict {
	attackerAI := b.HasAI(core.Attacker)
	defenderAI := b.HasAI(core.Defender)

	switch {
	case !attackerAI && !defenderAI:
		wc.logger.Info().Int("turn", turn).Msg("Both AI units destroyed, game drawn")
		return Verdict{Over: true, Draw: true}
	case !attackerAI:
		wc.logger.Info().Int("turn", turn).Msg("Attacker AI destroyed")
		return Verdict{Over: true, Winner: core.Defender}
	case !defenderAI:
		wc.logger.Info().Int("turn", turn).Msg("Defender AI destroyed")
		return Verdict{Over: true, Winner: core.Attacker}
	case turn >= wc.maxTurns:
		if wc.timeout == TimeoutDraw {
			wc.logger.Info().Int("turn", turn).Msg("Turn limit reached, game drawn")
			return Verdict{Over: true, Draw: true}
		}
		wc.logger.Info().Int("turn", turn).Msg("Turn limit reached, defender wins")
		return Verdict{Over: true, Winner: core.Defender}
	default:
		return Verdict{}
	}
}

// TerminalWinner reports whether the board alone (ignoring turn limits) is
// terminal. Search uses this on speculative positions where the turn count
// is not tracked.
func TerminalWinner(b *core.Board) (core.Player, bool) {
	attackerAI := b.HasAI(core.Attacker)
	defenderAI := b.HasAI(core.Defender)
	switch {
	case attackerAI && !defenderAI:
		return core.Attacker, true
	case defenderAI && !attackerAI:
		return core.Defender, true
	default:
		return 0, false
	}
}
