package meta

import (
	"fmt"
	"strings"

	"gametree/searcher"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Default values used when neither a config file nor the environment sets them.
const (
	GAMES_PER_MATCHUP = 10
	MAX_PLY           = 0 // unbounded
	MAX_MOVES         = 300
	HEXAPAWN_ROWS     = 3
	HEXAPAWN_COLS     = 3
	OUTPUT_DIR        = "results"
)

// ENV_PREFIX is prepended to every key looked up in the environment,
// e.g. GAMETREE_TIE_BREAK.
const ENV_PREFIX = "GAMETREE"

var knownGames = []string{"tictactoe", "hexapawn"}

type Config struct {
	Games           []string `mapstructure:"GAMES"`
	GamesPerMatchUp int      `mapstructure:"GAMES_PER_MATCHUP"`
	MaxPly          int      `mapstructure:"MAX_PLY"`
	MaxMoves        int      `mapstructure:"MAX_MOVES"`
	HexapawnRows    int      `mapstructure:"HEXAPAWN_ROWS"`
	HexapawnCols    int      `mapstructure:"HEXAPAWN_COLS"`
	Seed            uint64   `mapstructure:"SEED"`
	TieBreak        string   `mapstructure:"TIE_BREAK"`
	OutputDir       string   `mapstructure:"OUTPUT_DIR"`
	LogLevel        string   `mapstructure:"LOG_LEVEL"`
}

// Load reads the configuration from the optional file at cfgPath and the
// environment. Environment variables take precedence over the file.
func Load(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetDefault("GAMES", append([]string(nil), knownGames...))
	v.SetDefault("GAMES_PER_MATCHUP", GAMES_PER_MATCHUP)
	v.SetDefault("MAX_PLY", MAX_PLY)
	v.SetDefault("MAX_MOVES", MAX_MOVES)
	v.SetDefault("HEXAPAWN_ROWS", HEXAPAWN_ROWS)
	v.SetDefault("HEXAPAWN_COLS", HEXAPAWN_COLS)
	v.SetDefault("SEED", 0)
	v.SetDefault("TIE_BREAK", searcher.LastTieWins.String())
	v.SetDefault("OUTPUT_DIR", OUTPUT_DIR)
	v.SetDefault("LOG_LEVEL", zerolog.InfoLevel.String())

	v.SetEnvPrefix(ENV_PREFIX)
	v.AutomaticEnv()

	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	err := v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	err = cfg.validate()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Games) == 0 {
		return fmt.Errorf("no games configured")
	}
	for i, name := range c.Games {
		name = strings.ToLower(strings.TrimSpace(name))
		if !known(name) {
			return fmt.Errorf("unknown game %q, expected one of %v", name, knownGames)
		}
		c.Games[i] = name
	}
	if c.GamesPerMatchUp < 1 {
		return fmt.Errorf("games per match up must be positive, got %d", c.GamesPerMatchUp)
	}
	if c.MaxPly < 0 {
		return fmt.Errorf("max ply must not be negative, got %d", c.MaxPly)
	}
	if c.MaxMoves < 1 {
		return fmt.Errorf("max moves must be positive, got %d", c.MaxMoves)
	}
	if _, ok := searcher.ParseTieBreak(c.TieBreak); !ok {
		return fmt.Errorf("unknown tie break %q", c.TieBreak)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

func (c *Config) TieBreakPolicy() searcher.TieBreak {
	tieBreak, _ := searcher.ParseTieBreak(c.TieBreak)
	return tieBreak
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

func known(name string) bool {
	for _, g := range knownGames {
		if g == name {
			return true
		}
	}
	return false
}
