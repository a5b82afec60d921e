package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"hexblokus/agent"
	"hexblokus/game"
	"hexblokus/gamemaster"
	"hexblokus/hex"
	"hexblokus/metrics"
)

type passingAgent struct{}

func (passingAgent) FindMove(*gamemaster.Session) (game.Placement, bool) {
	return game.Placement{}, false
}

func seats(n int, kind string) []agent.Agent {
	agents := make([]agent.Agent, n)
	for i := range agents {
		a, _ := agent.New(kind, uint64(i+1))
		agents[i] = a
	}
	return agents
}

func TestLocalEngine(t *testing.T) {
	t.Run("unsupported seat count", func(t *testing.T) {
		_, err := LocalEngine(seats(1, agent.KindRandom))
		require.True(t, errors.Is(err, game.ErrUnsupportedPlayerCount))
	})

	t.Run("random game runs to the end", func(t *testing.T) {
		c := metrics.NewCollector()
		e, err := LocalEngine(seats(3, agent.KindRandom), WithCollector(c))
		require.NoError(t, err)

		result, gameMetric, moves, err := e.Run()
		if err != nil {
			require.True(t, errors.Is(err, game.ErrUndecidedWinner))
			require.Equal(t, game.Undecided, result.Kind)
		}
		require.True(t, e.Session.Ended())
		require.Len(t, moves, e.Session.Turn())
		require.Equal(t, e.Session.Turn(), gameMetric.Turns)
		require.Equal(t, 3, gameMetric.Players)
		require.Zero(t, gameMetric.Rejections)
		require.Equal(t, e.Session.Board().Count(game.Occupied), gameMetric.CellsPlaced)
		// The final round is all passes.
		for _, m := range moves[len(moves)-3:] {
			require.Equal(t, -1, m.Piece)
		}
	})

	t.Run("greedy game places large pieces first", func(t *testing.T) {
		e, err := LocalEngine(seats(2, agent.KindGreedy))
		require.NoError(t, err)
		_, _, moves, err := e.Run()
		if err != nil {
			require.True(t, errors.Is(err, game.ErrUndecidedWinner))
		}
		require.Equal(t, 5, moves[0].Cells)
		require.Equal(t, 5, moves[1].Cells)
	})

	t.Run("all passing ends undecided", func(t *testing.T) {
		e, err := LocalEngine([]agent.Agent{passingAgent{}, passingAgent{}, passingAgent{}, passingAgent{}})
		require.NoError(t, err)
		result, _, moves, err := e.Run()
		require.True(t, errors.Is(err, game.ErrUndecidedWinner))
		require.Equal(t, game.Undecided, result.Kind)
		require.Len(t, moves, 4)
	})

	t.Run("turn limit", func(t *testing.T) {
		e, err := LocalEngine(seats(6, agent.KindRandom), WithMaxTurns(4))
		require.NoError(t, err)
		_, _, moves, err := e.Run()
		require.True(t, errors.Is(err, ErrMaxTurns))
		require.Len(t, moves, 4)
		require.False(t, e.Session.Ended())
	})
}

func TestPlay(t *testing.T) {
	t.Run("rotated placement lands where listed", func(t *testing.T) {
		s, err := gamemaster.NewSession(6)
		require.NoError(t, err)
		for _, p := range game.LegalPlacements(s.Board(), s.RemainingShapes(0), 0) {
			if p.Rotation == hex.Rot120Ccw && len(p.Cells) == 3 {
				// Leave the piece turned before it is played.
				_, err := s.Update(gamemaster.PickUp{Piece: p.Piece})
				require.NoError(t, err)
				_, err = s.Update(gamemaster.Rotate{Rotation: hex.Rot60Cw})
				require.NoError(t, err)
				_, err = s.Update(gamemaster.Release{})
				require.NoError(t, err)

				require.NoError(t, Play(s, p))
				for _, h := range p.Cells {
					c, _ := s.Board().Cell(h)
					require.Equal(t, game.OccupiedBy(0), c)
				}
				return
			}
		}
		t.Fatal("no three hex placement found")
	})

	t.Run("illegal placement is reported", func(t *testing.T) {
		s, err := gamemaster.NewSession(6)
		require.NoError(t, err)
		err = Play(s, game.Placement{Piece: 17, Anchor: hex.Zero})
		require.Error(t, err)
		require.Zero(t, s.Board().Count(game.Occupied))
	})
}
