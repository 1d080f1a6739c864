package subscribers

import (
	"github.com/dianaoana1/COMP472-Warzone/internal/game/events"
	"github.com/rs/zerolog"
)

// LoggerSubscriber logs game events to structured logs.
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	eventTypeFilter map[string]bool // nil means log everything
}

// NewLoggerSubscriber creates a new logger subscriber.
func NewLoggerSubscriber(id string, logger zerolog.Logger) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:     id,
		logger: logger.With().Str("subscriber", "event_logger").Logger(),
	}
}

// ID returns the subscriber's unique identifier.
func (ls *LoggerSubscriber) ID() string { return ls.id }

// SetEventFilter sets which event types to log (empty means log all).
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}
	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// InterestedIn returns true if the subscriber wants this event type.
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it.
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.Info().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID())

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("dim", e.Dim).
			Int("max_turns", e.MaxTurns)

	case *events.GameEndedEvent:
		logEvent.
			Stringer("winner", e.Winner).
			Bool("draw", e.Draw).
			Int("final_turn", e.FinalTurn).
			Dur("duration", e.Duration)

	case *events.ActionAppliedEvent:
		logEvent.
			Stringer("player", e.Player).
			Stringer("action", e.Action).
			Int("turn", e.Turn).
			Int("affected_units", len(e.Outcome.Changes))

	case *events.ActionRejectedEvent:
		logEvent.
			Stringer("player", e.Player).
			Stringer("action", e.Action).
			Str("reason", e.Reason).
			Int("turn", e.Turn)

	case *events.TurnCompletedEvent:
		logEvent.Int("turn", e.Turn)

	case *events.SearchCompletedEvent:
		logEvent.
			Stringer("player", e.Player).
			Str("action", e.Action).
			Int("score", e.Score).
			Int64("nodes_visited", e.NodesVisited).
			Int("depth_reached", e.DepthReached).
			Float64("avg_branching", e.AvgBranching).
			Dur("elapsed", e.Elapsed)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	logEvent.Msg("Game event")
}
