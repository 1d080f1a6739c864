package subscribers

import (
	"fmt"
	"io"
	"os"

	"github.com/dianaoana1/COMP472-Warzone/internal/game/events"
)

// TraceSubscriber appends a human-readable game trace to a writer,
// typically the gameTrace-<alphabeta>-<time>-<turns>.txt file. It is a pure
// consumer: the core never formats or persists trace output itself.
type TraceSubscriber struct {
	id string
	w  io.Writer
}

// NewTraceSubscriber creates a trace subscriber writing to w.
func NewTraceSubscriber(id string, w io.Writer) *TraceSubscriber {
	return &TraceSubscriber{id: id, w: w}
}

// NewTraceFile creates (truncating) the trace file and a subscriber
// writing to it. The caller owns closing the file.
func NewTraceFile(id, path string) (*TraceSubscriber, *os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("creating trace file: %w", err)
	}
	return NewTraceSubscriber(id, f), f, nil
}

// ID returns the subscriber's unique identifier.
func (ts *TraceSubscriber) ID() string { return ts.id }

// InterestedIn returns true for the event types the trace records.
func (ts *TraceSubscriber) InterestedIn(eventType string) bool {
	switch eventType {
	case events.TypeGameStarted, events.TypeGameEnded,
		events.TypeActionApplied, events.TypeSearchCompleted:
		return true
	default:
		return false
	}
}

// HandleEvent appends the event to the trace.
func (ts *TraceSubscriber) HandleEvent(event events.Event) {
	switch e := event.(type) {
	case *events.GameStartedEvent:
		fmt.Fprintf(ts.w, "New game on a %dx%d board, max %d turns\n\n%s\n",
			e.Dim, e.Dim, e.MaxTurns, e.Board)

	case *events.ActionAppliedEvent:
		fmt.Fprintf(ts.w, "Turn %d, %s: %s\n", e.Turn, e.Player, e.Action)
		for _, ch := range e.Outcome.Changes {
			if ch.Removed {
				fmt.Fprintf(ts.w, "  %s %s at %s destroyed (%d -> 0)\n",
					ch.Owner, ch.Type, ch.At, ch.Before)
			} else {
				fmt.Fprintf(ts.w, "  %s %s at %s: %d -> %d\n",
					ch.Owner, ch.Type, ch.At, ch.Before, ch.After)
			}
		}
		fmt.Fprintf(ts.w, "\n%s\n", e.Board)

	case *events.SearchCompletedEvent:
		fmt.Fprintf(ts.w, "%s search: %s score=%d nodes=%d depth=%d branching=%.1f elapsed=%.3fs\n",
			e.Player, e.Action, e.Score, e.NodesVisited, e.DepthReached,
			e.AvgBranching, e.Elapsed.Seconds())

	case *events.GameEndedEvent:
		if e.Draw {
			fmt.Fprintf(ts.w, "Game drawn after %d turns\n", e.FinalTurn)
		} else {
			fmt.Fprintf(ts.w, "%s wins in %d turns!\n", e.Winner, e.FinalTurn)
		}
	}
}
