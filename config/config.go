package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"hexblokus/agent"
	"hexblokus/game"
)

// Config holds all run configuration
type Config struct {
	Game        GameConfig        `yaml:"game"`
	Layout      LayoutConfig      `yaml:"layout"`
	Seats       []SeatConfig      `yaml:"seats"`
	Seed        uint64            `yaml:"seed"`
	Log         LogConfig         `yaml:"log"`
	Output      OutputConfig      `yaml:"output"`
	Experiments ExperimentsConfig `yaml:"experiments"`
}

type GameConfig struct {
	Players  int `yaml:"players"`
	MaxTurns int `yaml:"max_turns"`
}

type LayoutConfig struct {
	HexRadius float64 `yaml:"hex_radius"` // pixels, centre to corner
}

// SeatConfig names the agent playing one seat. Seats are assigned in order
// and repeat when a game has more players than seats.
type SeatConfig struct {
	Name  string `yaml:"name"`
	Agent string `yaml:"agent"`
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

type OutputConfig struct {
	Dir      string `yaml:"dir"`      // CSV experiment records
	Database string `yaml:"database"` // SQLite file, empty disables it
}

type ExperimentsConfig struct {
	Games        int   `yaml:"games"` // per player count
	PlayerCounts []int `yaml:"player_counts"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *Config) setDefaults() {
	if cfg.Game.Players == 0 {
		cfg.Game.Players = 4
	}
	if cfg.Game.MaxTurns == 0 {
		cfg.Game.MaxTurns = 500
	}
	if cfg.Layout.HexRadius == 0 {
		cfg.Layout.HexRadius = 16
	}
	if len(cfg.Seats) == 0 {
		cfg.Seats = []SeatConfig{
			{Name: "random", Agent: agent.KindRandom},
			{Name: "greedy", Agent: agent.KindGreedy},
		}
	}
	for i := range cfg.Seats {
		if cfg.Seats[i].Name == "" {
			cfg.Seats[i].Name = fmt.Sprintf("seat%d", i)
		}
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "results"
	}
	if cfg.Experiments.Games == 0 {
		cfg.Experiments.Games = 10
	}
	if len(cfg.Experiments.PlayerCounts) == 0 {
		cfg.Experiments.PlayerCounts = []int{cfg.Game.Players}
	}
}

// Validate reports the first setting that cannot be used.
func (cfg *Config) Validate() error {
	counts := append([]int{cfg.Game.Players}, cfg.Experiments.PlayerCounts...)
	for _, n := range counts {
		if n < game.MinPlayers || n > game.MaxPlayers {
			return fmt.Errorf("invalid config: %w: %d", game.ErrUnsupportedPlayerCount, n)
		}
	}
	for _, seat := range cfg.Seats {
		if !slices.Contains(agent.Kinds, seat.Agent) {
			return fmt.Errorf("invalid config: seat %q: unknown agent %q", seat.Name, seat.Agent)
		}
	}
	if cfg.Game.MaxTurns < 0 {
		return fmt.Errorf("invalid config: max_turns must not be negative")
	}
	if cfg.Layout.HexRadius < 0 {
		return fmt.Errorf("invalid config: hex_radius must not be negative")
	}
	if cfg.Experiments.Games < 0 {
		return fmt.Errorf("invalid config: experiments.games must not be negative")
	}
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid config: unknown log level %q", cfg.Log.Level)
	}
	return nil
}

// SeatsFor returns the seat list for a game of n players.
func (cfg *Config) SeatsFor(n int) []SeatConfig {
	seats := make([]SeatConfig, n)
	for i := range seats {
		seats[i] = cfg.Seats[i%len(cfg.Seats)]
	}
	return seats
}
