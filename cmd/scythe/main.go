package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dfb159/scythe-bot/agent"
	"github.com/dfb159/scythe-bot/engine"
	"github.com/dfb159/scythe-bot/game"
	"github.com/dfb159/scythe-bot/metrics"
	"github.com/dfb159/scythe-bot/searcher"
	"github.com/dfb159/scythe-bot/template"
	"github.com/dfb159/scythe-bot/turn"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := parseConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	set := template.Default()
	if cfg.Board != "" {
		set, err = template.Load(cfg.Board)
		if err != nil {
			log.Fatal().Err(err).Msgf("failed to load board %s", cfg.Board)
		}
	}

	var games []metrics.GameMetric
	var moves []metrics.MoveRecord
	wins := make(map[string]int)
	for i := 0; i < cfg.Games; i++ {
		g, err := set.NewGame(cfg.Players)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to set up game")
		}
		eng, err := engine.NewLocal(g, createAgents(cfg, g, uint64(i)), cfg.MaxTurns)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create engine")
		}

		_, gameMetric, moveMetrics := eng.Run()
		games = append(games, gameMetric)
		for _, m := range moveMetrics {
			moves = append(moves, metrics.MoveRecord{Game: gameMetric.ID, MoveMetric: m})
		}
		if gameMetric.Winner != "" {
			wins[gameMetric.Winner]++
		}
		log.Info().Msgf("game %d/%d over after %d turns, scores %v", i+1, cfg.Games, gameMetric.TotalTurns, gameMetric.Scores)
	}
	log.Info().Msgf("wins: %v", wins)

	if cfg.ResultsDir == "" {
		return
	}
	writer, err := metrics.NewWriter(cfg.ResultsDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create results writer")
	}
	if err := writer.WriteGameRecords(games); err != nil {
		log.Fatal().Err(err).Msg("failed to write game records")
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		log.Fatal().Err(err).Msg("failed to write move records")
	}
	log.Info().Msgf("results written to %s", writer.Dir())
}

func createAgents(cfg config, g *game.Game, index uint64) []agent.Agent {
	agents := make([]agent.Agent, len(g.Players))
	for i := range agents {
		switch cfg.Agent {
		case "mcts":
			agents[i] = agent.NewSearch(searcher.NewMCTS(
				cfg.Goroutines,
				searcher.WithEpisodes(cfg.Episodes),
				searcher.WithDuration(cfg.Duration),
				searcher.WithCutoff(cfg.Cutoff),
				searcher.WithMetrics(),
			))
		default:
			seed := cfg.Seed + index*uint64(len(agents)) + uint64(i)
			agents[i] = agent.NewRandom(seed, turn.WithMaxHops(1), turn.WithCarryLimit(1), turn.WithoutWorkerCarry())
		}
	}
	return agents
}
