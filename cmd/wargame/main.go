package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dianaoana1/COMP472-Warzone/internal/config"
	"github.com/dianaoana1/COMP472-Warzone/internal/game"
	"github.com/dianaoana1/COMP472-Warzone/internal/game/core"
	"github.com/dianaoana1/COMP472-Warzone/internal/game/events"
	"github.com/dianaoana1/COMP472-Warzone/internal/game/events/subscribers"
	"github.com/dianaoana1/COMP472-Warzone/internal/game/rules"
	"github.com/dianaoana1/COMP472-Warzone/internal/search"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	mode := flag.String("mode", "", "game mode: manual|attacker|defender|auto")
	depth := flag.Int("depth", 0, "override search depth limit")
	maxTime := flag.Float64("time", -1, "override search time budget in seconds")
	heuristic := flag.Int("heuristic", -1, "override heuristic id (0, 1 or 2)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize config")
	}
	if *mode != "" {
		config.Set("game.mode", *mode)
	}
	if *depth > 0 {
		config.Set("search.max_depth", *depth)
	}
	if *maxTime >= 0 {
		config.Set("search.max_time_seconds", *maxTime)
	}
	if *heuristic >= 0 {
		config.Set("search.heuristic", *heuristic)
	}
	cfg := config.Get()
	if err := config.Validate(cfg); err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}

	setupLogging(cfg)

	bus := events.NewEventBus()
	bus.Subscribe(subscribers.NewLoggerSubscriber("event-logger", log.Logger))

	trace, traceFile, err := subscribers.NewTraceFile("trace", cfg.TraceFileName())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create trace file")
	}
	defer traceFile.Close()
	bus.Subscribe(trace)

	timeout := rules.TimeoutDefenderWins
	if cfg.Game.TimeoutWinner == "draw" {
		timeout = rules.TimeoutDraw
	}
	engine := game.NewEngine(cfg.Game.Dim, cfg.Game.MaxTurns, timeout, bus, log.Logger)

	eval, err := search.ByID(cfg.Search.Heuristic)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid heuristic")
	}
	searcher := search.New(eval, search.Config{
		MaxDepth:  cfg.Search.MaxDepth,
		MaxTime:   cfg.SearchBudget(),
		AlphaBeta: cfg.Search.AlphaBeta,
	}, log.Logger)

	run(engine, searcher, cfg, bus)
}

func run(engine *game.Engine, searcher *search.Engine, cfg *config.Config, bus *events.EventBus) {
	stdin := bufio.NewScanner(os.Stdin)

	for !engine.IsGameOver() {
		fmt.Println(engine.BoardString())
		player := engine.ToMove()

		isAI := (player == core.Attacker && cfg.AttackerIsAI()) ||
			(player == core.Defender && cfg.DefenderIsAI())
		if isAI {
			playSearchTurn(engine, searcher, player, bus)
		} else {
			playHumanTurn(engine, player, stdin)
		}
	}

	fmt.Println(engine.BoardString())
	verdict := engine.Verdict()
	if verdict.Draw {
		fmt.Printf("Game drawn after %d turns\n", engine.State().Turn)
	} else {
		fmt.Printf("%s wins in %d turns!\n", verdict.Winner, engine.State().Turn)
	}
}

func playSearchTurn(engine *game.Engine, searcher *search.Engine, player core.Player, bus *events.EventBus) {
	result, err := searcher.BestAction(engine.State().Board, player)
	if errors.Is(err, core.ErrNoLegalActions) {
		log.Fatal().Stringer("player", player).Msg("No legal actions for AI player")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Search failed")
	}

	bus.Publish(events.NewSearchCompletedEvent(
		engine.GameID(), player, result.Action.String(), result.Score,
		result.NodesVisited, result.EvalsByDepth, result.DepthReached,
		result.AvgBranching, result.Elapsed))

	fmt.Printf("Computer %s plays: %s (score %d, %d nodes, depth %d, %.3fs)\n",
		player, result.Action, result.Score, result.NodesVisited,
		result.DepthReached, result.Elapsed.Seconds())

	// The search engine only ever proposes legal actions; a rejection
	// here is a bug, not user error.
	if err := engine.Step(result.Action); err != nil {
		log.Fatal().Err(err).Msg("Engine rejected a search-selected action")
	}
}

func playHumanTurn(engine *game.Engine, player core.Player, stdin *bufio.Scanner) {
	for {
		fmt.Printf("Player %s, enter your move (e.g. \"B2 B3\", same cell to self-destruct): ", player)
		if !stdin.Scan() {
			log.Fatal().Msg("Input closed")
		}
		action, err := parseAction(engine, player, stdin.Text())
		if err != nil {
			fmt.Printf("Invalid input: %v. Try again.\n", err)
			continue
		}
		if err := engine.Step(action); err != nil {
			fmt.Printf("%v. Try again.\n", err)
			continue
		}
		return
	}
}

// parseAction turns a "src dst" coordinate pair into an action: the same
// cell twice is a self-destruct, an empty destination a move, an enemy an
// attack, and a friendly unit a repair. Legality is the engine's job; this
// only shapes the input.
func parseAction(engine *game.Engine, player core.Player, input string) (core.Action, error) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) != 2 {
		return nil, fmt.Errorf("expected two coordinates, got %q", input)
	}
	src, ok := core.CoordFromString(fields[0])
	if !ok {
		return nil, fmt.Errorf("bad coordinate %q", fields[0])
	}
	dst, ok := core.CoordFromString(fields[1])
	if !ok {
		return nil, fmt.Errorf("bad coordinate %q", fields[1])
	}

	if src.Equal(dst) {
		return core.SelfDestructAction{Player: player, At: src}, nil
	}
	board := engine.State().Board
	target := board.At(dst)
	switch {
	case target == nil:
		return core.MoveAction{Player: player, From: src, To: dst}, nil
	case target.Owner != player:
		return core.AttackAction{Player: player, From: src, Target: dst}, nil
	default:
		return core.RepairAction{Player: player, From: src, Target: dst}, nil
	}
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Log.Format == "json" {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
