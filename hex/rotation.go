package hex

import "fmt"

// Rotation is a turn about the origin hex in 60 degree steps. The numeric
// value is the number of clockwise steps, so rotations compose by addition.
type Rotation int

const (
	Rot0 Rotation = iota
	Rot60Cw
	Rot120Cw
	Rot180
	Rot120Ccw
	Rot60Ccw
)

// AllRotations lists the six distinct rotations.
var AllRotations = [6]Rotation{Rot0, Rot60Cw, Rot120Cw, Rot180, Rot120Ccw, Rot60Ccw}

func (rot Rotation) String() string {
	switch rot.normalize() {
	case Rot0:
		return "0"
	case Rot60Cw:
		return "60cw"
	case Rot120Cw:
		return "120cw"
	case Rot180:
		return "180"
	case Rot120Ccw:
		return "120ccw"
	case Rot60Ccw:
		return "60ccw"
	}
	return fmt.Sprintf("Rotation(%d)", int(rot))
}

func (rot Rotation) normalize() Rotation {
	return Rotation(((int(rot) % 6) + 6) % 6)
}

// Compose returns the single rotation equal to applying a then b.
func Compose(a, b Rotation) Rotation {
	return (a + b).normalize()
}

// Inverse returns the rotation that undoes rot.
func (rot Rotation) Inverse() Rotation {
	return (-rot).normalize()
}

// Clockwise returns rot turned one further step clockwise.
func (rot Rotation) Clockwise() Rotation {
	return Compose(rot, Rot60Cw)
}

// CounterClockwise returns rot turned one further step counter-clockwise.
func (rot Rotation) CounterClockwise() Rotation {
	return Compose(rot, Rot60Ccw)
}

type cube struct {
	q, r, s int
}

// Rotate turns h about the origin. The permutation is applied in cube form
// and s is dropped again afterwards.
func (h Hex) Rotate(rot Rotation) Hex {
	c := cube{q: h.Q, r: h.R, s: h.S()}
	switch rot.normalize() {
	case Rot60Cw:
		c = cube{q: -c.r, r: -c.s, s: -c.q}
	case Rot120Cw:
		c = cube{q: c.s, r: c.q, s: c.r}
	case Rot180:
		c = cube{q: -c.q, r: -c.r, s: -c.s}
	case Rot120Ccw:
		c = cube{q: c.r, r: c.s, s: c.q}
	case Rot60Ccw:
		c = cube{q: -c.s, r: -c.q, s: -c.r}
	}
	return Hex{Q: c.q, R: c.r}
}
