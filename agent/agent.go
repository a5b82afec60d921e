package agent

import (
	"fmt"

	"hexblokus/game"
	"hexblokus/gamemaster"
)

type Agent interface {
	// FindMove returns the placement to make for the session's current
	// player, or false to pass.
	FindMove(s *gamemaster.Session) (game.Placement, bool)
}

const (
	KindRandom = "random"
	KindGreedy = "greedy"
)

// Kinds lists the agent kinds New accepts.
var Kinds = []string{KindRandom, KindGreedy}

// New builds an agent of the given kind seeded with seed.
func New(kind string, seed uint64) (Agent, error) {
	switch kind {
	case KindRandom:
		return NewRandomAgent(seed), nil
	case KindGreedy:
		return NewGreedyAgent(seed), nil
	}
	return nil, fmt.Errorf("unknown agent kind %q", kind)
}
