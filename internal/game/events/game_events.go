package events

import (
	"time"

	"github.com/dianaoana1/COMP472-Warzone/internal/game/core"
)

// Event type constants
const (
	TypeGameStarted     = "game.started"
	TypeGameEnded       = "game.ended"
	TypeTurnCompleted   = "turn.completed"
	TypeActionApplied   = "action.applied"
	TypeActionRejected  = "action.rejected"
	TypeSearchCompleted = "search.completed"
	TypeStateTransition = "state.transition"
)

// GameStartedEvent is published when a new game begins.
type GameStartedEvent struct {
	BaseEvent
	Dim      int
	MaxTurns int
	Board    string
}

// NewGameStartedEvent creates a new GameStartedEvent.
func NewGameStartedEvent(gameID string, dim, maxTurns int, board string) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: BaseEvent{EventType: TypeGameStarted, Time: time.Now(), Game: gameID},
		Dim:       dim,
		MaxTurns:  maxTurns,
		Board:     board,
	}
}

// GameEndedEvent is published when a game ends.
type GameEndedEvent struct {
	BaseEvent
	Winner    core.Player
	Draw      bool
	FinalTurn int
	Duration  time.Duration
}

// NewGameEndedEvent creates a new GameEndedEvent.
func NewGameEndedEvent(gameID string, winner core.Player, draw bool, finalTurn int, duration time.Duration) *GameEndedEvent {
	return &GameEndedEvent{
		BaseEvent: BaseEvent{EventType: TypeGameEnded, Time: time.Now(), Game: gameID},
		Winner:    winner,
		Draw:      draw,
		FinalTurn: finalTurn,
		Duration:  duration,
	}
}

// ActionAppliedEvent carries the immutable effect summary of one applied
// action: the actor, the action, every affected unit's before/after health,
// and a snapshot of the resulting board.
type ActionAppliedEvent struct {
	BaseEvent
	Player  core.Player
	Action  core.Action
	Outcome *core.Outcome
	Turn    int
	Board   string
}

// NewActionAppliedEvent creates a new ActionAppliedEvent.
func NewActionAppliedEvent(gameID string, player core.Player, outcome *core.Outcome, turn int, board string) *ActionAppliedEvent {
	return &ActionAppliedEvent{
		BaseEvent: BaseEvent{EventType: TypeActionApplied, Time: time.Now(), Game: gameID},
		Player:    player,
		Action:    outcome.Action,
		Outcome:   outcome,
		Turn:      turn,
		Board:     board,
	}
}

// ActionRejectedEvent is published when a submitted action fails the
// legality predicate. The state is untouched in that case.
type ActionRejectedEvent struct {
	BaseEvent
	Player core.Player
	Action core.Action
	Reason string
	Turn   int
}

// NewActionRejectedEvent creates a new ActionRejectedEvent.
func NewActionRejectedEvent(gameID string, player core.Player, action core.Action, reason string, turn int) *ActionRejectedEvent {
	return &ActionRejectedEvent{
		BaseEvent: BaseEvent{EventType: TypeActionRejected, Time: time.Now(), Game: gameID},
		Player:    player,
		Action:    action,
		Reason:    reason,
		Turn:      turn,
	}
}

// TurnCompletedEvent is published after both players have moved.
type TurnCompletedEvent struct {
	BaseEvent
	Turn int
}

// NewTurnCompletedEvent creates a new TurnCompletedEvent.
func NewTurnCompletedEvent(gameID string, turn int) *TurnCompletedEvent {
	return &TurnCompletedEvent{
		BaseEvent: BaseEvent{EventType: TypeTurnCompleted, Time: time.Now(), Game: gameID},
		Turn:      turn,
	}
}

// SearchCompletedEvent carries the diagnostics of one search run.
type SearchCompletedEvent struct {
	BaseEvent
	Player       core.Player
	Action       string
	Score        int
	NodesVisited int64
	EvalsByDepth map[int]int64
	DepthReached int
	AvgBranching float64
	Elapsed      time.Duration
}

// NewSearchCompletedEvent creates a new SearchCompletedEvent.
func NewSearchCompletedEvent(gameID string, player core.Player, action string, score int,
	nodes int64, evalsByDepth map[int]int64, depth int, branching float64, elapsed time.Duration) *SearchCompletedEvent {
	return &SearchCompletedEvent{
		BaseEvent:    BaseEvent{EventType: TypeSearchCompleted, Time: time.Now(), Game: gameID},
		Player:       player,
		Action:       action,
		Score:        score,
		NodesVisited: nodes,
		EvalsByDepth: evalsByDepth,
		DepthReached: depth,
		AvgBranching: branching,
		Elapsed:      elapsed,
	}
}

// StateTransitionEvent is published when the phase machine transitions.
type StateTransitionEvent struct {
	BaseEvent
	FromPhase string
	ToPhase   string
	Reason    string
}

// NewStateTransitionEvent creates a new StateTransitionEvent.
func NewStateTransitionEvent(gameID, fromPhase, toPhase, reason string) *StateTransitionEvent {
	return &StateTransitionEvent{
		BaseEvent: BaseEvent{EventType: TypeStateTransition, Time: time.Now(), Game: gameID},
		FromPhase: fromPhase,
		ToPhase:   toPhase,
		Reason:    reason,
	}
}
