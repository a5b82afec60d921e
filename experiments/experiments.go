package experiments

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"hexblokus/agent"
	"hexblokus/config"
	"hexblokus/engine"
	"hexblokus/game"
	"hexblokus/gamemaster"
	"hexblokus/hex"
	"hexblokus/metrics"
	"hexblokus/records"
)

// Summary tallies an experiment.
type Summary struct {
	Games      int
	Wins       map[string]int // by seat name
	Undecided  int
	Draws      int
	Unfinished int // stopped at the turn limit
	Cells      int
	Duration   time.Duration
	Dir        string // CSV output directory
}

// Run plays cfg.Experiments.Games self-play games for every configured
// player count, then writes CSV records and, if configured, SQLite records.
func Run(name string, cfg *config.Config) (Summary, error) {
	summary := Summary{Wins: make(map[string]int)}
	start := time.Now()

	var store *records.Store
	if cfg.Output.Database != "" {
		var err error
		store, err = records.Open(cfg.Output.Database)
		if err != nil {
			return summary, fmt.Errorf("experiment %s: %w", name, err)
		}
		defer store.Close()
	}

	log.Info().Msgf("starting %s experiment...", name)

	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for _, players := range cfg.Experiments.PlayerCounts {
		seats := cfg.SeatsFor(players)
		for i := 0; i < cfg.Experiments.Games; i++ {
			id := len(gameRecords) + 1
			log.Info().Msgf("starting %s %d player game of %d...", humanize.Ordinal(i+1), players, cfg.Experiments.Games)

			result, gameMetric, moveMetrics, err := runGame(cfg, seats, uint64(id)+cfg.Seed, store)
			switch {
			case errors.Is(err, game.ErrUndecidedWinner):
				summary.Undecided++
			case errors.Is(err, engine.ErrMaxTurns):
				log.Warn().Err(err).Msgf("game %d stopped unfinished", id)
				summary.Unfinished++
			case err != nil:
				return summary, fmt.Errorf("experiment %s game %d: %w", name, id, err)
			case result.Kind == game.Draw:
				summary.Draws++
			default:
				summary.Wins[seats[result.Winner].Name]++
			}
			summary.Games++
			summary.Cells += gameMetric.CellsPlaced

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         id,
				Seats:      seatAgents(seats),
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{Game: id, MoveMetric: mm})
			}
			if store != nil {
				if err := store.SaveGame(gameRow(name, seats, gameMetric)); err != nil {
					return summary, err
				}
			}

			log.Info().Msgf("completed game %d with %s in %d turns", id, gameMetric.Result, gameMetric.Turns)
		}
	}

	writer, err := metrics.NewWriter(cfg.Output.Dir, name)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, err
	}
	log.Info().Msg("stored move records")

	summary.Dir = writer.Dir()
	summary.Duration = time.Since(start)
	log.Info().Msgf("completed %s experiment: %s games, %s cells placed, took %s",
		name, humanize.Comma(int64(summary.Games)), humanize.Comma(int64(summary.Cells)), summary.Duration.Round(time.Millisecond))
	return summary, nil
}

func runGame(cfg *config.Config, seats []config.SeatConfig, seed uint64, store *records.Store) (game.Result, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := make([]agent.Agent, len(seats))
	for i, seat := range seats {
		a, err := agent.New(seat.Agent, seed*uint64(game.MaxPlayers)+uint64(i))
		if err != nil {
			return game.Result{}, metrics.GameMetric{}, nil, err
		}
		agents[i] = a
	}

	sessionOpts := []gamemaster.Option{
		gamemaster.WithLayout(hex.NewLayout(cfg.Layout.HexRadius)),
		gamemaster.WithCueSource(rand.New(rand.NewSource(seed))),
	}
	var recorder *records.Recorder
	if store != nil {
		recorder = records.NewRecorder(store)
		sessionOpts = append(sessionOpts, gamemaster.WithListener(recorder))
	}

	e, err := engine.LocalEngine(agents,
		engine.WithMaxTurns(cfg.Game.MaxTurns),
		engine.WithCollector(metrics.NewCollector()),
		engine.WithSessionOptions(sessionOpts...),
	)
	if err != nil {
		return game.Result{}, metrics.GameMetric{}, nil, err
	}
	result, gameMetric, moveMetrics, err := e.Run()
	if recorder != nil {
		// games cut off at the turn limit never announce their end
		if ferr := recorder.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}
	return result, gameMetric, moveMetrics, err
}

func seatAgents(seats []config.SeatConfig) []string {
	names := make([]string, len(seats))
	for i, s := range seats {
		names[i] = s.Name + ":" + s.Agent
	}
	return names
}

func gameRow(experiment string, seats []config.SeatConfig, m metrics.GameMetric) records.Game {
	return records.Game{
		ID:         m.Session.String(),
		Experiment: experiment,
		Players:    m.Players,
		Seats:      strings.Join(seatAgents(seats), "|"),
		Result:     m.Result,
		Winner:     m.Winner,
		Turns:      m.Turns,
		StartedAt:  m.StartTime,
		EndedAt:    m.EndTime,
	}
}
