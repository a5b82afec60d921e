package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"hexblokus/hex"
)

func TestNewBoard(t *testing.T) {
	t.Run("cell counts per player count", func(t *testing.T) {
		tests := []struct {
			players   int
			empty     int
			startZone int
			disabled  int
		}{
			{players: 6, empty: 457, startZone: 6, disabled: 0},
			{players: 5, empty: 458, startZone: 5, disabled: 0},
			{players: 4, empty: 259, startZone: 4, disabled: 200},
			{players: 3, empty: 238, startZone: 3, disabled: 222},
			{players: 2, empty: 261, startZone: 2, disabled: 200},
		}
		for _, tt := range tests {
			b, err := NewBoard(tt.players)
			require.NoError(t, err)
			require.Equal(t, 463, b.Len(), "players=%d", tt.players)
			require.Equal(t, tt.empty, b.Count(Empty), "players=%d", tt.players)
			require.Equal(t, tt.startZone, b.Count(StartZone), "players=%d", tt.players)
			require.Equal(t, tt.disabled, b.Count(Disabled), "players=%d", tt.players)
			require.Zero(t, b.Count(Occupied))
		}
	})

	t.Run("coordinate space is shared by every player count", func(t *testing.T) {
		six, err := NewBoard(6)
		require.NoError(t, err)
		for players := MinPlayers; players < MaxPlayers; players++ {
			b, err := NewBoard(players)
			require.NoError(t, err)
			require.Equal(t, six.Hexes(), b.Hexes())
		}
	})

	t.Run("board fits within distance 14 of the origin", func(t *testing.T) {
		b, err := NewBoard(6)
		require.NoError(t, err)
		for _, h := range b.Hexes() {
			require.LessOrEqual(t, hex.Distance(h, hex.Zero), 14)
		}
		require.True(t, b.Contains(hex.Zero))
	})

	t.Run("unsupported player counts", func(t *testing.T) {
		for _, players := range []int{-1, 0, 1, 7, 12} {
			b, err := NewBoard(players)
			require.Nil(t, b)
			require.True(t, errors.Is(err, ErrUnsupportedPlayerCount), "players=%d", players)
		}
	})

	t.Run("start zones belong to their seats", func(t *testing.T) {
		for players := MinPlayers; players <= MaxPlayers; players++ {
			b, err := NewBoard(players)
			require.NoError(t, err)
			starts, err := StartHexes(players)
			require.NoError(t, err)
			require.Len(t, starts, players)
			for player, h := range starts {
				c, ok := b.Cell(h)
				require.True(t, ok)
				require.Equal(t, StartZoneOf(player), c)
				require.Equal(t, []hex.Hex{h}, b.StartZones(player))
			}
		}
	})
}

func TestStartHexes(t *testing.T) {
	t.Run("six players rotate the anchor", func(t *testing.T) {
		starts, err := StartHexes(6)
		require.NoError(t, err)
		require.Equal(t, []hex.Hex{
			{Q: 7, R: 7}, {Q: -7, R: 14}, {Q: -14, R: 7},
			{Q: -7, R: -7}, {Q: 7, R: -14}, {Q: 14, R: -7},
		}, starts)
		for i, h := range starts {
			require.Equal(t, starts[0].Rotate(hex.Rotation(i)), h)
		}
	})

	t.Run("five players use the first five six player seats", func(t *testing.T) {
		five, err := StartHexes(5)
		require.NoError(t, err)
		six, err := StartHexes(6)
		require.NoError(t, err)
		require.Equal(t, six[:5], five)
	})

	t.Run("three players", func(t *testing.T) {
		starts, err := StartHexes(3)
		require.NoError(t, err)
		require.Equal(t, []hex.Hex{{Q: 5, R: 5}, {Q: -10, R: 5}, {Q: 5, R: -10}}, starts)
	})

	t.Run("corners for two and four players", func(t *testing.T) {
		four, err := StartHexes(4)
		require.NoError(t, err)
		require.Equal(t, []hex.Hex{{Q: 8, R: 3}, {Q: -8, R: 11}, {Q: -8, R: -3}, {Q: 8, R: -11}}, four)

		two, err := StartHexes(2)
		require.NoError(t, err)
		require.Equal(t, []hex.Hex{four[0], four[2]}, two)
	})

	t.Run("disabled hexes stay disabled for three players", func(t *testing.T) {
		b, err := NewBoard(3)
		require.NoError(t, err)
		c, ok := b.Cell(hex.Hex{Q: 10, R: 0})
		require.True(t, ok)
		require.Equal(t, Disabled, c.Kind)
	})
}
