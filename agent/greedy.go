package agent

import (
	"sort"

	"golang.org/x/exp/rand"

	"hexblokus/game"
	"hexblokus/gamemaster"
)

type greedyAgent struct {
	rng *rand.Rand
}

// NewGreedyAgent returns an agent that always places one of its largest
// placeable pieces, choosing randomly between equally large candidates.
func NewGreedyAgent(seed uint64) Agent {
	return &greedyAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *greedyAgent) FindMove(s *gamemaster.Session) (game.Placement, bool) {
	player := s.CurrentPlayer()
	bySize := make(map[int]map[int]game.Shape)
	for id, shape := range s.RemainingShapes(player) {
		if bySize[shape.Size()] == nil {
			bySize[shape.Size()] = make(map[int]game.Shape)
		}
		bySize[shape.Size()][id] = shape
	}

	sizes := make([]int, 0, len(bySize))
	for size := range bySize {
		sizes = append(sizes, size)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	for _, size := range sizes {
		placements := game.LegalPlacements(s.Board(), bySize[size], player)
		if len(placements) > 0 {
			return placements[a.rng.Intn(len(placements))], true
		}
	}
	return game.Placement{}, false
}
