package experiments

import (
	"fmt"

	"gametree/experiments/metrics"
	"gametree/meta"

	"github.com/rs/zerolog/log"
)

// RunThroughputExperiment searches the starting position of every configured
// game once per evaluator and records the search metrics as step 0 moves.
func RunThroughputExperiment(cfg *meta.Config) ([]metrics.MoveRecord, error) {
	configs := []metrics.AgentConfig{
		{ID: 1, Evaluator: Minimax, TieBreak: cfg.TieBreakPolicy().String()},
		{ID: 2, Evaluator: AlphaBeta, TieBreak: cfg.TieBreakPolicy().String()},
	}

	log.Info().Msg("starting throughput experiment...")

	records := []metrics.MoveRecord{}
	for gi, gameName := range cfg.Games {
		for _, config := range configs {
			board, _, err := newBoard(cfg, gameName)
			if err != nil {
				return nil, err
			}

			_, score, searchMetric := createAgent(config, 0).FindMove(board)
			records = append(records, metrics.MoveRecord{
				Game: gi + 1,
				MoveMetric: metrics.MoveMetric{
					Player:       board.VantagePoint(),
					Score:        score,
					SearchMetric: searchMetric,
				},
			})

			nodesPerSecond := 0.0
			if searchMetric.Duration > 0 {
				nodesPerSecond = float64(searchMetric.Nodes) / searchMetric.Duration.Seconds()
			}
			log.Info().
				Str("game", gameName).
				Str("evaluator", config.Evaluator).
				Int("nodes", searchMetric.Nodes).
				Int("cutoffs", searchMetric.Cutoffs).
				Dur("duration", searchMetric.Duration).
				Float64("nodes_per_second", nodesPerSecond).
				Msgf("searched %s with %s", gameName, config.Evaluator)
		}
	}

	log.Info().Msg("completed throughput experiment")

	writer, err := metrics.NewWriter(cfg.OutputDir, "throughput")
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}

	err = writer.WriteMoveRecords(records)
	if err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("run", writer.RunID()).Msgf("stored throughput results in %s", writer.Dir())

	return records, nil
}
