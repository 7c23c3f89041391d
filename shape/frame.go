package shape

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// CompleteBasis returns two unit vectors v, w such that (u, v, w) is a right
// handed orthonormal frame. u must be unit length.
func CompleteBasis(u r3.Vec) (v, w r3.Vec) {
	// Zero out the smallest component so the cross product is well away from
	// zero.
	if math.Abs(u.X) > math.Abs(u.Y) {
		v = r3.Unit(r3.Vec{X: -u.Z, Z: u.X})
	} else {
		v = r3.Unit(r3.Vec{Y: u.Z, Z: -u.Y})
	}
	w = r3.Cross(u, v)
	return v, w
}

// Rigid is a rotation followed by a translation. The property tests use it to
// check that queries do not depend on where things are in space.
type Rigid struct {
	Rotation    r3.Rotation
	Translation r3.Vec
}

func (m Rigid) Point(p r3.Vec) r3.Vec {
	return r3.Add(m.Rotation.Rotate(p), m.Translation)
}

func (m Rigid) Vector(v r3.Vec) r3.Vec {
	return m.Rotation.Rotate(v)
}

func (m Rigid) Rectangle(r Rectangle) Rectangle {
	return Rectangle{
		Center: m.Point(r.Center),
		Axis:   [2]r3.Vec{m.Vector(r.Axis[0]), m.Vector(r.Axis[1])},
		Extent: r.Extent,
	}
}

func (m Rigid) Triangle(t Triangle) Triangle {
	return Triangle{[3]r3.Vec{m.Point(t.V[0]), m.Point(t.V[1]), m.Point(t.V[2])}}
}

func (m Rigid) Segment(s Segment) Segment {
	return Segment{m.Point(s.P0), m.Point(s.P1)}
}
