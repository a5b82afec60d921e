package game

import (
	"image/color"
	"math"
)

// PlayerHue is player's hue in degrees. Seats are spread evenly around the
// colour wheel for the largest table, so a seat keeps its colour whatever
// the player count.
func PlayerHue(player int) float64 {
	return float64(player) / float64(MaxPlayers) * 360
}

// PlayerColor is the colour of player's pieces and claimed cells.
func PlayerColor(player int) color.RGBA {
	return hsl(PlayerHue(player), 1, 0.5)
}

// StartZoneColor is a darker shade of PlayerColor for unclaimed start zones.
func StartZoneColor(player int) color.RGBA {
	return hsl(PlayerHue(player), 0.9, 0.4)
}

func hsl(h, s, l float64) color.RGBA {
	c := (1 - math.Abs(2*l-1)) * s
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	channel := func(v float64) uint8 {
		return uint8(math.Round((v + m) * 255))
	}
	return color.RGBA{R: channel(r), G: channel(g), B: channel(b), A: 0xff}
}
