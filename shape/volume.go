package shape

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Box is an oriented box. Axis must be orthonormal. An extent of zero is
// allowed, which is how enclosing boxes of flat or collinear point sets are
// reported.
type Box struct {
	Center r3.Vec
	Axis   [3]r3.Vec
	Extent [3]float64
}

// AxisAligned builds a box from an axis aligned bounding box.
func AxisAligned(b r3.Box) Box {
	size := b.Size()
	return Box{
		Center: b.Center(),
		Axis:   [3]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}},
		Extent: [3]float64{size.X / 2, size.Y / 2, size.Z / 2},
	}
}

func (b Box) Volume() float64 {
	return 8 * b.Extent[0] * b.Extent[1] * b.Extent[2]
}

// Coordinates of p in the box frame, relative to the center.
func (b Box) Coordinates(p r3.Vec) [3]float64 {
	diff := r3.Sub(p, b.Center)
	return [3]float64{r3.Dot(diff, b.Axis[0]), r3.Dot(diff, b.Axis[1]), r3.Dot(diff, b.Axis[2])}
}

// Contains allows points up to eps outside each face.
func (b Box) Contains(p r3.Vec, eps float64) bool {
	for i, c := range b.Coordinates(p) {
		if math.Abs(c) > b.Extent[i]+eps {
			return false
		}
	}
	return true
}

func (b Box) Corners() [8]r3.Vec {
	var corners [8]r3.Vec
	for i := range corners {
		p := b.Center
		for axis := 0; axis < 3; axis++ {
			sign := -1.0
			if i&(1<<axis) != 0 {
				sign = 1
			}
			p = r3.Add(p, r3.Scale(sign*b.Extent[axis], b.Axis[axis]))
		}
		corners[i] = p
	}
	return corners
}

type Sphere struct {
	Center r3.Vec
	Radius float64
}

// Contains allows points up to eps outside the surface.
func (s Sphere) Contains(p r3.Vec, eps float64) bool {
	return r3.Norm(r3.Sub(p, s.Center)) <= s.Radius+eps
}

func (s Sphere) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * s.Radius * s.Radius * s.Radius
}
