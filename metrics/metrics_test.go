package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"hexblokus/game"
	"hexblokus/gamemaster"
	"hexblokus/hex"
)

func TestCollector(t *testing.T) {
	t.Run("counts session events", func(t *testing.T) {
		c := NewCollector()
		c.Start(2)
		s, err := gamemaster.NewSession(2, gamemaster.WithListener(c))
		require.NoError(t, err)

		cmds := []gamemaster.Command{
			gamemaster.PickUp{Piece: 17},
			gamemaster.Move{Anchor: hex.Zero},
			gamemaster.Release{},
			gamemaster.PickUp{Piece: 17},
			gamemaster.Move{Anchor: hex.Hex{Q: 100, R: 0}},
			gamemaster.Release{},
			gamemaster.PickUp{Piece: 17},
			gamemaster.Move{Anchor: hex.Hex{Q: 8, R: 3}},
			gamemaster.Release{},
			gamemaster.Pass{},
			gamemaster.Pass{},
		}
		for _, cmd := range cmds {
			_, err := s.Update(cmd)
			require.NoError(t, err)
		}

		m := c.Complete()
		require.Equal(t, s.ID(), m.Session)
		require.Equal(t, 2, m.Players)
		require.Equal(t, 1, m.Placements)
		require.Equal(t, 1, m.CellsPlaced)
		require.Equal(t, 2, m.Passes)
		require.Equal(t, 1, m.Rejections)
		require.Equal(t, 1, m.Drops)
		require.Equal(t, 3, m.Turns)
		require.Equal(t, game.Winner.String(), m.Result)
		require.Equal(t, 0, m.Winner)
	})

	t.Run("unfinished game", func(t *testing.T) {
		c := NewCollector()
		c.Start(3)
		m := c.Complete()
		require.Equal(t, "unfinished", m.Result)
		require.Equal(t, -1, m.Winner)
	})

	t.Run("dummy collector", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start(2)
		c.Notify(uuid.New(), gamemaster.TurnPassed{Player: 1})
		require.Equal(t, -1, c.Complete().Winner)
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "smoke")
	require.NoError(t, err)

	now := time.Now()
	err = w.WriteGameRecords([]GameRecord{{
		ID:    1,
		Seats: []string{"random", "greedy"},
		GameMetric: GameMetric{
			Session: uuid.New(), Players: 2, Result: "winner", Winner: 1,
			StartTime: now, EndTime: now, Turns: 4, Placements: 2, Passes: 2,
		},
	}})
	require.NoError(t, err)
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{
		{Game: 1, MoveMetric: MoveMetric{Step: 1, Player: 0, Piece: 3, Cells: 5}},
		{Game: 1, MoveMetric: MoveMetric{Step: 2, Player: 1, Piece: -1}},
	}))

	rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "random|greedy", rows[1][3])
	require.Equal(t, "1", rows[1][5])

	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 3)
	require.Equal(t, []string{"1", "2", "1", "-1", "0", "0s"}, rows[2])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
