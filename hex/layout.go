package hex

import "math"

// DefaultRadius is the centre-to-corner size of a hex in pixels: a 128px
// sprite drawn at quarter scale, halved.
const DefaultRadius = 128.0 * 0.25 / 2

// Layout maps hexes to pixel positions for a flat-top grid with y pointing up.
type Layout struct {
	Radius float64
}

// NewLayout returns a layout for hexes of the given radius. Non-positive
// radii fall back to DefaultRadius.
func NewLayout(radius float64) Layout {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return Layout{Radius: radius}
}

// Width is the corner-to-corner width of one hex.
func (l Layout) Width() float64 {
	return 2 * l.Radius
}

// ToPixel returns the centre of h.
func (l Layout) ToPixel(h Hex) (x, y float64) {
	x = l.Radius * (3.0 / 2.0 * float64(h.Q))
	y = -l.Radius * (math.Sqrt(3)/2*float64(h.Q) + math.Sqrt(3)*float64(h.R))
	return x, y
}

// FractionAt returns the continuous axial coordinate under a pixel position.
func (l Layout) FractionAt(x, y float64) (q, r float64) {
	q = (2.0 / 3.0 * x) / l.Radius
	r = (-1.0/3.0*x + math.Sqrt(3)/3.0*-y) / l.Radius
	return q, r
}

// HexAt returns the hex containing a pixel position.
func (l Layout) HexAt(x, y float64) Hex {
	return FromFraction(l.FractionAt(x, y))
}

// Contains reports whether the pixel lies within radius of h's centre.
func (l Layout) Contains(h Hex, x, y float64) bool {
	cx, cy := l.ToPixel(h)
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= l.Radius*l.Radius
}
