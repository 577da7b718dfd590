package main

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/dfb159/scythe-bot/meta"
)

type config struct {
	Players    int           `env:"SCYTHE_PLAYERS" envDefault:"2"`
	Games      int           `env:"SCYTHE_GAMES" envDefault:"1"`
	MaxTurns   int           `env:"SCYTHE_MAX_TURNS"`
	Seed       uint64        `env:"SCYTHE_SEED" envDefault:"1"`
	Agent      string        `env:"SCYTHE_AGENT" envDefault:"random"`
	Goroutines int           `env:"SCYTHE_MCTS_GOROUTINES"`
	Episodes   int           `env:"SCYTHE_MCTS_EPISODES"`
	Duration   time.Duration `env:"SCYTHE_MCTS_DURATION"`
	Cutoff     int           `env:"SCYTHE_MCTS_CUTOFF"`
	Board      string        `env:"SCYTHE_BOARD"`
	ResultsDir string        `env:"SCYTHE_RESULTS_DIR"`
	LogLevel   string        `env:"SCYTHE_LOG_LEVEL" envDefault:"info"`
}

func parseConfig() (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxTurns <= 0 {
		cfg.MaxTurns = meta.MAX_TURNS
	}
	if cfg.Goroutines <= 0 {
		cfg.Goroutines = meta.GO_ROUTINES
	}
	if cfg.Episodes <= 0 && cfg.Duration <= 0 {
		cfg.Episodes = meta.EPISODES
	}
	if cfg.Cutoff <= 0 {
		cfg.Cutoff = meta.WITH_CUTOFF
	}
	if cfg.Agent != "random" && cfg.Agent != "mcts" {
		return cfg, fmt.Errorf("unknown agent %q", cfg.Agent)
	}
	return cfg, nil
}
