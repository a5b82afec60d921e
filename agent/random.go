package agent

import (
	"golang.org/x/exp/rand"

	"hexblokus/game"
	"hexblokus/gamemaster"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal
// placement and passes only when it has none.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(s *gamemaster.Session) (game.Placement, bool) {
	player := s.CurrentPlayer()
	placements := game.LegalPlacements(s.Board(), s.RemainingShapes(player), player)
	if len(placements) == 0 {
		return game.Placement{}, false
	}
	return placements[a.rng.Intn(len(placements))], true
}
