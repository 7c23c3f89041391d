// Distance and closest point queries between 3D primitives, and minimum
// volume boxes and spheres around point sets.
//
// The query functions live in the dcp package and the enclosing algorithms in
// the enclose package. This package aliases their types and adds entry points
// that validate their input and never panic.
package proximity

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/proximity/dcp"
	"github.com/osuushi/proximity/enclose"
	"github.com/osuushi/proximity/shape"
)

type Vec = r3.Vec
type Line = shape.Line
type Ray = shape.Ray
type Segment = shape.Segment
type Triangle = shape.Triangle
type Rectangle = shape.Rectangle
type Box = shape.Box
type Sphere = shape.Sphere

type validator interface {
	Validate() error
}

func validate(primitives ...interface{}) error {
	for _, p := range primitives {
		if v, ok := p.(validator); ok {
			if err := v.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Distance between two primitives. Supported pairs are a point (Vec), Line,
// Ray, Segment or Triangle against a Rectangle, a point or Segment against a
// Triangle, and two Rectangles, in either order. Invalid primitives and other
// pairs are errors.
func Distance(a, b interface{}) (float64, error) {
	if err := validate(a, b); err != nil {
		return 0, err
	}
	if d, ok := distance(a, b); ok {
		return d, nil
	}
	if d, ok := distance(b, a); ok {
		return d, nil
	}
	return 0, errors.Errorf("proximity: no distance query for %T and %T", a, b)
}

func distance(a, b interface{}) (float64, bool) {
	switch b := b.(type) {
	case Rectangle:
		switch a := a.(type) {
		case Vec:
			return dcp.PointRectangle(a, b).Distance, true
		case Line:
			return dcp.LineRectangle(a, b).Distance, true
		case Ray:
			return dcp.RayRectangle(a, b).Distance, true
		case Segment:
			return dcp.SegmentRectangle(a, b).Distance, true
		case Triangle:
			return dcp.TriangleRectangle(a, b).Distance, true
		case Rectangle:
			return dcp.RectangleRectangle(a, b).Distance, true
		}
	case Triangle:
		switch a := a.(type) {
		case Vec:
			return dcp.PointTriangle(a, b).Distance, true
		case Segment:
			return dcp.SegmentTriangle(a, b).Distance, true
		}
	}
	return 0, false
}

// Enclose computes both enclosing shapes of points.
func Enclose(points []Vec, opts ...enclose.BoxOption) (Box, Sphere, error) {
	boxResult, err := enclose.MinimumBox(points, opts...)
	if err != nil {
		return Box{}, Sphere{}, err
	}
	sphere, _, err := enclose.MinimumSphere(points)
	if err != nil {
		return Box{}, Sphere{}, err
	}
	return boxResult.Box, sphere, nil
}
