package records

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"hexblokus/gamemaster"
	"hexblokus/hex"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "games.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestStore(t *testing.T) {
	t.Run("games round trip", func(t *testing.T) {
		s := openTestStore(t)
		id := uuid.New()
		start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		g := Game{
			ID: id.String(), Experiment: "smoke", Players: 2, Seats: "random|greedy",
			Result: "winner", Winner: 1, Turns: 30, StartedAt: start, EndedAt: start.Add(time.Second),
		}
		require.NoError(t, s.SaveGame(g))

		got, err := s.Game(id)
		require.NoError(t, err)
		require.Equal(t, g.Seats, got.Seats)
		require.Equal(t, 1, got.Winner)
		require.True(t, start.Equal(got.StartedAt))

		g.Turns = 31
		require.NoError(t, s.SaveGame(g))
		got, err = s.Game(id)
		require.NoError(t, err)
		require.Equal(t, 31, got.Turns)
	})

	t.Run("missing game", func(t *testing.T) {
		s := openTestStore(t)
		_, err := s.Game(uuid.New())
		require.Error(t, err)
	})

	t.Run("wins per seat", func(t *testing.T) {
		s := openTestStore(t)
		for _, winner := range []int{0, 1, 1, -1} {
			require.NoError(t, s.SaveGame(Game{ID: uuid.NewString(), Experiment: "e", Winner: winner, Result: "winner"}))
		}
		require.NoError(t, s.SaveGame(Game{ID: uuid.NewString(), Experiment: "other", Winner: 0}))

		wins, err := s.Wins("e")
		require.NoError(t, err)
		require.Equal(t, map[int]int{0: 1, 1: 2}, wins)

		games, err := s.Games("other")
		require.NoError(t, err)
		require.Len(t, games, 1)
		require.Equal(t, "other", games[0].Experiment)
	})
}

func TestRecorder(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store)
	s, err := gamemaster.NewSession(2, gamemaster.WithListener(rec))
	require.NoError(t, err)

	cmds := []gamemaster.Command{
		gamemaster.PickUp{Piece: 17},
		gamemaster.Move{Anchor: hex.Hex{Q: 8, R: 3}},
		gamemaster.Release{},
		gamemaster.PickUp{Piece: 35},
		gamemaster.Move{Anchor: hex.Hex{Q: -8, R: -3}},
		gamemaster.Release{},
	}
	for _, cmd := range cmds {
		_, err := s.Update(cmd)
		require.NoError(t, err)
	}

	placements, err := store.Placements(s.ID())
	require.NoError(t, err)
	require.Empty(t, placements, "placements are buffered until the game ends")

	for i := 0; i < 2; i++ {
		_, err := s.Update(gamemaster.Pass{})
		require.NoError(t, err)
	}
	require.True(t, s.Ended())

	placements, err = store.Placements(s.ID())
	require.NoError(t, err)
	require.Len(t, placements, 2)
	require.Equal(t, 0, placements[0].Player)
	require.Equal(t, 1, placements[1].Player)
	require.Len(t, placements[0].BoardHash, 16)
	require.NotEqual(t, placements[0].BoardHash, placements[1].BoardHash)

	cells, err := placements[1].HexCells()
	require.NoError(t, err)
	require.Equal(t, []hex.Hex{{Q: -8, R: -3}}, cells)

	require.NoError(t, rec.Flush())
}
