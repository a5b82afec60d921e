package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayerColor(t *testing.T) {
	require.Equal(t, 0.0, PlayerHue(0))
	require.Equal(t, 180.0, PlayerHue(3))

	require.Equal(t, color.RGBA{R: 255, A: 255}, PlayerColor(0))
	require.Equal(t, color.RGBA{R: 255, G: 255, A: 255}, PlayerColor(1))
	require.Equal(t, color.RGBA{G: 255, B: 255, A: 255}, PlayerColor(3))
	require.Equal(t, color.RGBA{R: 255, B: 255, A: 255}, PlayerColor(5))

	for player := 0; player < MaxPlayers; player++ {
		bright, dark := PlayerColor(player), StartZoneColor(player)
		require.Less(t, int(dark.R)+int(dark.G)+int(dark.B), int(bright.R)+int(bright.G)+int(bright.B))
	}
}
