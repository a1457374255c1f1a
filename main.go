package main

import (
	"flag"
	"os"
	"time"

	"gametree/experiments"
	"gametree/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfgPath := flag.String("config", "", "Path to an optional config file")
	experiment := flag.String("experiment", "evaluators", "Experiment to run: evaluators, tie_breaks or throughput")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := meta.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	switch *experiment {
	case "evaluators":
		_, err = experiments.RunEvaluatorExperiment(cfg)
	case "tie_breaks":
		_, err = experiments.RunTieBreakExperiment(cfg)
	case "throughput":
		_, err = experiments.RunThroughputExperiment(cfg)
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s experiment failed", *experiment)
	}
}
