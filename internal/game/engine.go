package game

import (
	"fmt"
	"time"

	"github.com/dianaoana1/COMP472-Warzone/internal/game/core"
	"github.com/dianaoana1/COMP472-Warzone/internal/game/events"
	"github.com/dianaoana1/COMP472-Warzone/internal/game/rules"
	"github.com/dianaoana1/COMP472-Warzone/internal/game/states"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	DefaultDim      = 5
	DefaultMaxTurns = 100
)

// Engine is the turn controller. It owns the authoritative GameState,
// validates and applies exactly one action per half-turn, publishes effect
// summaries on the event bus, and drives the phase machine to GameOver
// when an AI unit is destroyed or the turn limit is reached.
type Engine struct {
	gs        *GameState
	sm        *states.Machine
	checker   *rules.WinConditionChecker
	eventBus  *events.EventBus
	logger    zerolog.Logger
	gameID    string
	started   time.Time
	verdict   rules.Verdict
	halfMoves int
}

// NewEngine creates an engine with the standard initial layout. A nil
// event bus gets a fresh one, for callers that do not care about tracing.
func NewEngine(dim, maxTurns int, timeout rules.TimeoutPolicy, bus *events.EventBus, logger zerolog.Logger) *Engine {
	if bus == nil {
		bus = events.NewEventBus()
	}
	gameID := uuid.NewString()
	logger = logger.With().Str("component", "engine").Str("game_id", gameID).Logger()

	e := &Engine{
		gs:       &GameState{Board: NewStandardBoard(dim), ToMove: core.Attacker},
		sm:       states.NewMachine(logger),
		checker:  rules.NewWinConditionChecker(logger, maxTurns, timeout),
		eventBus: bus,
		logger:   logger,
		gameID:   gameID,
		started:  time.Now(),
	}
	bus.Publish(events.NewGameStartedEvent(gameID, dim, maxTurns, e.BoardString()))
	return e
}

// GameID returns the unique id of this game.
func (e *Engine) GameID() string { return e.gameID }

// Bus returns the engine's event bus.
func (e *Engine) Bus() *events.EventBus { return e.eventBus }

// State returns the authoritative game state. Callers must not mutate it;
// between turns the engine is its exclusive owner.
func (e *Engine) State() *GameState { return e.gs }

// Phase returns the current phase of the game.
func (e *Engine) Phase() states.GamePhase { return e.sm.Current() }

// ToMove returns the player whose action Step expects next.
func (e *Engine) ToMove() core.Player { return e.gs.ToMove }

// IsGameOver reports whether the game has ended.
func (e *Engine) IsGameOver() bool { return e.sm.Current() == states.PhaseGameOver }

// Verdict returns the terminal verdict. Only meaningful once IsGameOver.
func (e *Engine) Verdict() rules.Verdict { return e.verdict }

// LegalActions enumerates the legal actions for the player to move.
func (e *Engine) LegalActions() []core.Action {
	return rules.LegalActions(e.gs.Board, e.gs.ToMove)
}

// Step validates and applies one action for the player to move. An illegal
// action leaves the state untouched and returns the legality error, so a
// human caller can re-prompt. An action that validates but fails to apply
// indicates a broken rules/resolver pairing and panics rather than playing
// on with a corrupt board.
func (e *Engine) Step(a core.Action) error {
	if !e.sm.Current().CanReceiveActions() {
		return core.ErrGameOver
	}
	if a.Actor() != e.gs.ToMove {
		return fmt.Errorf("%w: %s acted on %s's turn", core.ErrWrongTurn, a.Actor(), e.gs.ToMove)
	}
	if err := rules.IsLegal(e.gs.Board, a); err != nil {
		e.eventBus.Publish(events.NewActionRejectedEvent(e.gameID, a.Actor(), a, err.Error(), e.gs.Turn))
		return fmt.Errorf("illegal action %s: %w", a, err)
	}

	outcome, err := core.Apply(e.gs.Board, a)
	if err != nil {
		panic(fmt.Sprintf("engine: validated action %s failed to apply: %v", a, err))
	}

	mover := e.gs.ToMove
	e.gs.ToMove = mover.Opponent()
	e.halfMoves++
	if e.halfMoves%2 == 0 {
		e.gs.Turn++
		e.eventBus.Publish(events.NewTurnCompletedEvent(e.gameID, e.gs.Turn))
	}

	e.eventBus.Publish(events.NewActionAppliedEvent(e.gameID, mover, outcome, e.gs.Turn, e.BoardString()))

	e.verdict = e.checker.Check(e.gs.Board, e.gs.Turn)
	if e.verdict.Over {
		e.transition(states.PhaseGameOver, "terminal condition reached")
		e.eventBus.Publish(events.NewGameEndedEvent(
			e.gameID, e.verdict.Winner, e.verdict.Draw, e.gs.Turn, time.Since(e.started)))
		return nil
	}

	next := states.PhaseAttackerTurn
	if e.gs.ToMove == core.Defender {
		next = states.PhaseDefenderTurn
	}
	e.transition(next, "action applied")
	return nil
}

func (e *Engine) transition(target states.GamePhase, reason string) {
	from := e.sm.Current()
	if err := e.sm.TransitionTo(target, reason); err != nil {
		panic(fmt.Sprintf("engine: %v", err))
	}
	e.eventBus.Publish(events.NewStateTransitionEvent(e.gameID, from.String(), target.String(), reason))
}
