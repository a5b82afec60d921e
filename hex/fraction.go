package hex

import "math"

// FromFraction rounds a continuous axial coordinate to the nearest hex.
//
// q, r and the derived s are rounded independently; the component with the
// largest rounding error is then recomputed from the other two so that the
// result keeps q+r+s == 0.
func FromFraction(q, r float64) Hex {
	s := -q - r

	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)

	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)

	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	}
	return Hex{Q: int(rq), R: int(rr)}
}
