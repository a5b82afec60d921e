package hex

// Hex is an axial coordinate (q, r) on the board grid. The third cube
// coordinate s = -q - r is derived on demand and never stored.
type Hex struct {
	Q int
	R int
}

// Zero is the origin hex, the anchor of every piece shape.
var Zero = Hex{}

// S returns the implicit third cube coordinate.
func (h Hex) S() int {
	return -h.Q - h.R
}

// Add returns h+o component-wise.
func (h Hex) Add(o Hex) Hex {
	return Hex{Q: h.Q + o.Q, R: h.R + o.R}
}

// Sub returns h-o component-wise.
func (h Hex) Sub(o Hex) Hex {
	return Hex{Q: h.Q - o.Q, R: h.R - o.R}
}

// Neighbours holds the six edge-adjacent offsets.
var Neighbours = [6]Hex{
	{Q: 0, R: 1}, {Q: 1, R: 0}, {Q: 0, R: -1},
	{Q: -1, R: 0}, {Q: 1, R: -1}, {Q: -1, R: 1},
}

// Neighbours returns the six edge-adjacent hexes of h.
func (h Hex) Neighbours() [6]Hex {
	var result [6]Hex
	for i, n := range Neighbours {
		result[i] = h.Add(n)
	}
	return result
}

// IsNeighbour reports whether o shares an edge with h.
func (h Hex) IsNeighbour(o Hex) bool {
	d := o.Sub(h)
	for _, n := range Neighbours {
		if d == n {
			return true
		}
	}
	return false
}

// Distance returns the number of steps between two hexes.
func Distance(a, b Hex) int {
	d := a.Sub(b)
	return max(abs(d.Q), abs(d.R), abs(d.S()))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
