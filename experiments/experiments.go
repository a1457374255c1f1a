package experiments

import (
	"fmt"

	"gametree/engine"
	"gametree/experiments/metrics"
	"gametree/game"
	"gametree/game/pawns"
	"gametree/game/tictactoe"
	"gametree/meta"
	"gametree/searcher"
	"gametree/searcher/agent"

	"github.com/rs/zerolog/log"
)

const (
	Minimax   = "minimax"
	AlphaBeta = "alphabeta"
)

// RunEvaluatorExperiment plays minimax against alpha-beta with either side
// starting. Both agents should reach the same values, alpha-beta with fewer nodes.
func RunEvaluatorExperiment(cfg *meta.Config) (string, error) {
	tieBreak := cfg.TieBreakPolicy().String()
	configs := []metrics.AgentConfig{
		{ID: 1, Evaluator: Minimax, TieBreak: tieBreak, Seed: cfg.Seed},
		{ID: 2, Evaluator: AlphaBeta, TieBreak: tieBreak, Seed: cfg.Seed},
	}
	matchUps := [][]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[1], configs[0]},
	}

	return runExperiment(cfg, "evaluators", configs, matchUps)
}

// RunTieBreakExperiment pairs a deterministic alpha-beta agent against one
// that breaks ties at random.
func RunTieBreakExperiment(cfg *meta.Config) (string, error) {
	configs := []metrics.AgentConfig{
		{ID: 3, Evaluator: AlphaBeta, TieBreak: searcher.LastTieWins.String()},
		{ID: 4, Evaluator: AlphaBeta, TieBreak: searcher.RandomTie.String(), Seed: cfg.Seed},
	}
	matchUps := [][]metrics.AgentConfig{
		{configs[0], configs[1]},
		{configs[1], configs[0]},
	}

	return runExperiment(cfg, "tie_breaks", configs, matchUps)
}

func runExperiment(cfg *meta.Config, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) (string, error) {
	// Run a number of games for each game kind and matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for _, gameName := range cfg.Games {
		for mi, matchup := range matchUps {
			config1 := matchup[0]
			config2 := matchup[1]

			log.Info().Msgf("starting %s matchup %d of %d between agent1=%+v and agent2=%+v...", gameName, mi+1, len(matchUps), config1, config2)

			for i := 0; i < cfg.GamesPerMatchUp; i++ {
				count++
				winner, gameMetric, moveMetrics, err := runGame(cfg, gameName, count, config1, config2)
				if err != nil {
					return "", err
				}

				gameRecords = append(gameRecords, metrics.GameRecord{
					ID:         count,
					Agent1:     config1.ID,
					Agent2:     config2.ID,
					GameMetric: gameMetric,
				})
				for _, mm := range moveMetrics {
					moveRecords = append(moveRecords, metrics.MoveRecord{
						Game:       count,
						MoveMetric: mm,
					})
				}

				log.Info().Msgf("completed %s matchup %d of %d game %d with winner: %q", gameName, mi+1, len(matchUps), i+1, winner)
			}
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("run", writer.RunID()).Msgf("stored %s results in %s", name, writer.Dir())

	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(cfg *meta.Config, gameName string, gameID int, config1, config2 metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	board, players, err := newBoard(cfg, gameName)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	agents := []agent.Agent{
		createAgent(config1, gameID),
		createAgent(config2, gameID),
	}
	e := engine.NewLocalEngine(gameName, board, players, agents)
	e.MaxMoves = cfg.MaxMoves

	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

// newBoard returns the starting position and the players in turn order.
func newBoard(cfg *meta.Config, gameName string) (game.Board, []string, error) {
	switch gameName {
	case "tictactoe":
		return tictactoe.New(cfg.MaxPly), []string{tictactoe.X, tictactoe.O}, nil
	case "hexapawn":
		board, err := pawns.New(cfg.HexapawnRows, cfg.HexapawnCols, cfg.MaxPly)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create hexapawn board: %w", err)
		}
		log.Debug().Msgf("hexapawn rules: %+v", board.Rules())
		return board, []string{pawns.White, pawns.Black}, nil
	default:
		return nil, nil, fmt.Errorf("unknown game %q", gameName)
	}
}

func createAgent(config metrics.AgentConfig, gameID int) agent.Agent {
	options := []searcher.Option{searcher.WithMetrics()}

	if tieBreak, ok := searcher.ParseTieBreak(config.TieBreak); ok {
		options = append(options, searcher.WithTieBreak(tieBreak))
	}
	if config.Seed != 0 {
		// Distinct but reproducible games
		options = append(options, searcher.WithSeed(config.Seed+uint64(gameID)))
	}

	s := searcher.New(options...)
	log.Debug().Int("agent", config.ID).Str("tie_break", s.TieBreak().String()).Msgf("created %s agent", config.Evaluator)
	if config.Evaluator == Minimax {
		return agent.NewMinimaxAgent(s)
	}
	return agent.NewAlphaBetaAgent(s)
}
