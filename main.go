package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hexblokus/config"
	"hexblokus/experiments"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	name := flag.String("experiment", "selfplay", "experiment name, used for output paths")
	players := flag.Int("players", 0, "play only this player count")
	games := flag.Int("games", 0, "games per player count")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	if *players > 0 {
		cfg.Game.Players = *players
		cfg.Experiments.PlayerCounts = []int{*players}
	}
	if *games > 0 {
		cfg.Experiments.Games = *games
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	setupLogging(cfg.Log.Level)

	summary, err := experiments.Run(*name, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}

	seats := make([]string, 0, len(summary.Wins))
	for seat := range summary.Wins {
		seats = append(seats, seat)
	}
	sort.Strings(seats)
	for _, seat := range seats {
		log.Info().Msgf("%s won %d of %d games", seat, summary.Wins[seat], summary.Games)
	}
	log.Info().Msgf("%d undecided, %d drawn, records in %s", summary.Undecided, summary.Draws, summary.Dir)
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
