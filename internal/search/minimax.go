package search

import (
	"errors"
	"time"

	"github.com/dianaoana1/COMP472-Warzone/internal/game/core"
	"github.com/dianaoana1/COMP472-Warzone/internal/game/rules"
	"github.com/rs/zerolog"
)

// Score sentinels for terminal positions. They dominate every reachable
// heuristic value so a forced win is always preferred over material.
const (
	WinScore  = 2_000_000_000
	LossScore = -WinScore
)

var errDeadline = errors.New("search deadline exceeded")

// Config holds the search cutoffs.
type Config struct {
	// MaxDepth is the depth limit in plies. Must be positive.
	MaxDepth int
	// MaxTime is the wall-clock budget for one BestAction call. A zero
	// budget still yields a depth-1 result.
	MaxTime time.Duration
	// AlphaBeta enables pruning. The chosen action and score are identical
	// with or without it.
	AlphaBeta bool
}

// Result carries the chosen action plus search diagnostics.
type Result struct {
	Action       core.Action
	Score        int
	NodesVisited int64
	EvalsByDepth map[int]int64
	DepthReached int
	AvgBranching float64
	Elapsed      time.Duration
}

// Engine is a depth-limited minimax searcher with optional alpha-beta
// pruning and iterative deepening under a wall-clock budget. It explores
// board clones only; the caller's board is never mutated.
type Engine struct {
	eval   Evaluator
	cfg    Config
	logger zerolog.Logger
}

// New creates a search engine with the given evaluator and cutoffs.
func New(eval Evaluator, cfg Config, logger zerolog.Logger) *Engine {
	return &Engine{
		eval:   eval,
		cfg:    cfg,
		logger: logger.With().Str("component", "search").Str("heuristic", eval.Name()).Logger(),
	}
}

type searchStats struct {
	nodes         int64
	evalsByDepth  map[int]int64
	branchSum     int64
	branchNodes   int64
	deadline      time.Time
	enforceBudget bool
}

// BestAction runs iterative deepening from depth 1 up to the configured
// limit and returns the best action found in the deepest fully-completed
// iteration. Depth 1 always completes, so even an expired budget produces
// an answer based on evaluating the root's children; deeper iterations
// poll the deadline at every node and unwind as soon as it passes.
//
// Returns core.ErrNoLegalActions when the player cannot act at all.
func (e *Engine) BestAction(b *core.Board, toMove core.Player) (Result, error) {
	start := time.Now()
	rootActions := rules.LegalActions(b, toMove)
	if len(rootActions) == 0 {
		return Result{}, core.ErrNoLegalActions
	}

	stats := &searchStats{
		evalsByDepth: make(map[int]int64),
		deadline:     start.Add(e.cfg.MaxTime),
	}

	var best Result
	for depth := 1; depth <= e.cfg.MaxDepth; depth++ {
		stats.enforceBudget = depth > 1
		action, score, err := e.searchRoot(b, toMove, rootActions, depth, stats)
		if err != nil {
			break
		}
		best = Result{Action: action, Score: score, DepthReached: depth}
		if score == WinScore || score == LossScore {
			break
		}
		if stats.enforceBudget && time.Now().After(stats.deadline) {
			break
		}
	}

	best.NodesVisited = stats.nodes
	best.EvalsByDepth = stats.evalsByDepth
	best.Elapsed = time.Since(start)
	if stats.branchNodes > 0 {
		best.AvgBranching = float64(stats.branchSum) / float64(stats.branchNodes)
	}

	e.logger.Debug().
		Stringer("action", best.Action).
		Int("score", best.Score).
		Int64("nodes", best.NodesVisited).
		Int("depth", best.DepthReached).
		Dur("elapsed", best.Elapsed).
		Msg("Search completed")
	return best, nil
}

// searchRoot evaluates every root action at the given depth and picks the
// best one for the side to move. Ties keep the first action in generator
// order, which makes AI play reproducible.
func (e *Engine) searchRoot(b *core.Board, toMove core.Player, actions []core.Action, depth int, stats *searchStats) (core.Action, int, error) {
	maximizing := toMove == core.Attacker
	alpha, beta := LossScore-1, WinScore+1
	bestScore := beta
	if maximizing {
		bestScore = alpha
	}
	var bestAction core.Action

	stats.branchSum += int64(len(actions))
	stats.branchNodes++

	for _, a := range actions {
		child := b.Clone()
		if _, err := core.Apply(child, a); err != nil {
			// Generator and resolver disagree: programming error.
			panic("search: generated action failed to apply: " + err.Error())
		}
		score, err := e.minimax(child, toMove.Opponent(), depth-1, 1, alpha, beta, stats)
		if err != nil {
			return nil, 0, err
		}
		if maximizing {
			if score > bestScore {
				bestScore, bestAction = score, a
			}
			if e.cfg.AlphaBeta && bestScore > alpha {
				alpha = bestScore
			}
		} else {
			if score < bestScore {
				bestScore, bestAction = score, a
			}
			if e.cfg.AlphaBeta && bestScore < beta {
				beta = bestScore
			}
		}
	}
	return bestAction, bestScore, nil
}

func (e *Engine) minimax(b *core.Board, toMove core.Player, depth, ply int, alpha, beta int, stats *searchStats) (int, error) {
	stats.nodes++
	if stats.enforceBudget && time.Now().After(stats.deadline) {
		return 0, errDeadline
	}

	// Terminal positions are scored with the sentinel and never expanded.
	if winner, over := rules.TerminalWinner(b); over {
		if winner == core.Attacker {
			return WinScore, nil
		}
		return LossScore, nil
	}

	if depth == 0 {
		stats.evalsByDepth[ply]++
		return e.eval.Score(b), nil
	}

	actions := rules.LegalActions(b, toMove)
	if len(actions) == 0 {
		// Nothing to play is a dead end for the side to move.
		if toMove == core.Attacker {
			return LossScore, nil
		}
		return WinScore, nil
	}
	stats.branchSum += int64(len(actions))
	stats.branchNodes++

	maximizing := toMove == core.Attacker
	best := beta
	if maximizing {
		best = alpha
	}
	if !e.cfg.AlphaBeta {
		best = WinScore + 1
		if maximizing {
			best = LossScore - 1
		}
	}

	for _, a := range actions {
		child := b.Clone()
		if _, err := core.Apply(child, a); err != nil {
			panic("search: generated action failed to apply: " + err.Error())
		}
		score, err := e.minimax(child, toMove.Opponent(), depth-1, ply+1, alpha, beta, stats)
		if err != nil {
			return 0, err
		}
		if maximizing {
			if score > best {
				best = score
			}
			if e.cfg.AlphaBeta {
				if best > alpha {
					alpha = best
				}
				if alpha >= beta {
					break
				}
			}
		} else {
			if score < best {
				best = score
			}
			if e.cfg.AlphaBeta {
				if best < beta {
					beta = best
				}
				if beta <= alpha {
					break
				}
			}
		}
	}
	return best, nil
}
