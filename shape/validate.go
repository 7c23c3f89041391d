package shape

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/proximity/num"
)

func finite(v r3.Vec) bool {
	return num.Finite(v.X, v.Y, v.Z)
}

func NewRectangle(center, axis0, axis1 r3.Vec, extent0, extent1 float64) (Rectangle, error) {
	r := Rectangle{
		Center: center,
		Axis:   [2]r3.Vec{axis0, axis1},
		Extent: [2]float64{extent0, extent1},
	}
	return r, r.Validate()
}

// Validate checks the rectangle invariants: finite center, unit and mutually
// perpendicular axes, strictly positive finite extents.
func (r Rectangle) Validate() error {
	if !finite(r.Center) {
		return errors.Errorf("rectangle center %v is not finite", r.Center)
	}
	for i, axis := range r.Axis {
		if !finite(axis) || !num.Equal(r3.Norm2(axis), 1) {
			return errors.Errorf("rectangle axis %d %v is not unit length", i, axis)
		}
	}
	if dot := r3.Dot(r.Axis[0], r.Axis[1]); math.Abs(dot) > num.Tolerance {
		return errors.Errorf("rectangle axes are not perpendicular (dot %g)", dot)
	}
	for i, e := range r.Extent {
		if !(e > 0) || math.IsInf(e, 0) {
			return errors.Errorf("rectangle extent %d is %g, must be positive", i, e)
		}
	}
	return nil
}

func NewLine(origin, direction r3.Vec) (Line, error) {
	l := Line{origin, direction}
	return l, l.Validate()
}

func (l Line) Validate() error {
	return errors.Wrap(validateLinear(l.Origin, l.Direction), "line")
}

func NewRay(origin, direction r3.Vec) (Ray, error) {
	r := Ray{origin, direction}
	return r, r.Validate()
}

func (r Ray) Validate() error {
	return errors.Wrap(validateLinear(r.Origin, r.Direction), "ray")
}

func NewSegment(p0, p1 r3.Vec) (Segment, error) {
	s := Segment{p0, p1}
	return s, s.Validate()
}

func (s Segment) Validate() error {
	return errors.Wrap(validateLinear(s.P0, s.Direction()), "segment")
}

func validateLinear(origin, direction r3.Vec) error {
	if !finite(origin) || !finite(direction) {
		return errors.New("non-finite coordinates")
	}
	if r3.Norm2(direction) == 0 {
		return errors.New("zero direction")
	}
	return nil
}

func NewTriangle(v0, v1, v2 r3.Vec) (Triangle, error) {
	t := Triangle{[3]r3.Vec{v0, v1, v2}}
	return t, t.Validate()
}

// Validate rejects non-finite vertices and triangles with no area.
func (t Triangle) Validate() error {
	for i, v := range t.V {
		if !finite(v) {
			return errors.Errorf("triangle vertex %d %v is not finite", i, v)
		}
	}
	if r3.Norm2(t.Normal()) == 0 {
		return errors.New("triangle is degenerate")
	}
	return nil
}
