package dcp

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/proximity/shape"
)

type PointRectangleResult struct {
	Distance, SqrDistance float64
	// Closest[0] is the query point itself, Closest[1] the point on the
	// rectangle.
	Closest [2]r3.Vec
	// Rectangle coordinates (s0, s1) of Closest[1], within the extents.
	Rectangle [2]float64
}

// PointRectangle projects the point into the rectangle's frame and clamps each
// coordinate to its extent. The squared distance splits into independent
// terms along the two axes (plus the normal, which clamping does not touch),
// so clamping each coordinate on its own is optimal.
func PointRectangle(p r3.Vec, rect shape.Rectangle) PointRectangleResult {
	s0, s1 := rect.Coordinates(p)
	s0 = clampExtent(s0, rect.Extent[0])
	s1 = clampExtent(s1, rect.Extent[1])
	closest := rect.Point(s0, s1)
	sqr := r3.Norm2(r3.Sub(p, closest))
	return PointRectangleResult{
		Distance:    math.Sqrt(sqr),
		SqrDistance: sqr,
		Closest:     [2]r3.Vec{p, closest},
		Rectangle:   [2]float64{s0, s1},
	}
}

func clampExtent(s, e float64) float64 {
	return math.Max(-e, math.Min(e, s))
}

// LineRectangleResult is shared by the line, ray and segment queries.
type LineRectangleResult struct {
	Distance, SqrDistance float64
	// The line parameter t of Closest[0]. For segments it is in [0, 1], for
	// rays it is non-negative.
	Parameter float64
	Closest   [2]r3.Vec
	Rectangle [2]float64
}

func LineRectangle(line shape.Line, rect shape.Rectangle) LineRectangleResult {
	return lineRectangle(line.Origin, line.Direction, LineRange, rect)
}

func RayRectangle(ray shape.Ray, rect shape.Rectangle) LineRectangleResult {
	return lineRectangle(ray.Origin, ray.Direction, RayRange, rect)
}

func SegmentRectangle(segment shape.Segment, rect shape.Rectangle) LineRectangleResult {
	return lineRectangle(segment.P0, segment.Direction(), SegmentRange, rect)
}

// lineRectangle minimizes |origin + t*direction - rect.Point(s0, s1)|² over t
// in rng and (s0, s1) within the extents.
//
// The only possible unconstrained minimum is where the line crosses the
// rectangle's plane. If that point is feasible we are done at distance zero.
// Otherwise the minimum is on a face of the feasible box in (t, s0, s1): one of
// the four rectangle edges (range against edge) or one of the finite ends of
// rng (point against rectangle). A line parallel to the plane has no unique
// unconstrained minimum, but its minimizers always reach one of those faces,
// so the same enumeration covers it.
func lineRectangle(origin, direction r3.Vec, rng Range, rect shape.Rectangle) LineRectangleResult {
	normal := rect.Normal()
	if denom := r3.Dot(normal, direction); denom != 0 {
		t := -r3.Dot(normal, r3.Sub(origin, rect.Center)) / denom
		if rng.Contains(t) {
			p := r3.Add(origin, r3.Scale(t, direction))
			s0, s1 := rect.Coordinates(p)
			if math.Abs(s0) <= rect.Extent[0] && math.Abs(s1) <= rect.Extent[1] {
				return LineRectangleResult{
					Parameter: t,
					Closest:   [2]r3.Vec{p, p},
					Rectangle: [2]float64{s0, s1},
				}
			}
		}
	}

	best := LineRectangleResult{SqrDistance: math.Inf(1)}
	consider := func(candidate LineRectangleResult) {
		if candidate.SqrDistance < best.SqrDistance {
			best = candidate
		}
	}

	for _, edge := range rectangleEdges(rect) {
		rr := RangeRange(origin, direction, rng, edge.origin, edge.direction, edge.rng)
		consider(LineRectangleResult{
			SqrDistance: rr.SqrDistance,
			Parameter:   rr.Parameter[0],
			Closest:     rr.Closest,
			Rectangle:   edge.coordinates(rr.Parameter[1]),
		})
	}
	for _, t := range rng.bounds() {
		pr := PointRectangle(r3.Add(origin, r3.Scale(t, direction)), rect)
		consider(LineRectangleResult{
			SqrDistance: pr.SqrDistance,
			Parameter:   t,
			Closest:     pr.Closest,
			Rectangle:   pr.Rectangle,
		})
	}

	best.Distance = math.Sqrt(best.SqrDistance)
	return best
}

// rectangleEdge is one side of a rectangle, parameterized directly by the
// rectangle coordinate that varies along it.
type rectangleEdge struct {
	origin, direction r3.Vec
	rng               Range
	// Which coordinate is pinned, and to what.
	fixedAxis  int
	fixedValue float64
}

func (e rectangleEdge) coordinates(u float64) [2]float64 {
	var s [2]float64
	s[e.fixedAxis] = e.fixedValue
	s[1-e.fixedAxis] = u
	return s
}

func (e rectangleEdge) segment() shape.Segment {
	return shape.Segment{
		P0: r3.Add(e.origin, r3.Scale(e.rng.Min, e.direction)),
		P1: r3.Add(e.origin, r3.Scale(e.rng.Max, e.direction)),
	}
}

// rectangleEdges lists the sides s1 = -e1, s0 = e0, s1 = e1, s0 = -e0, in that
// order.
func rectangleEdges(rect shape.Rectangle) [4]rectangleEdge {
	e0, e1 := rect.Extent[0], rect.Extent[1]
	edge := func(fixedAxis int, fixedValue float64) rectangleEdge {
		free := 1 - fixedAxis
		return rectangleEdge{
			origin:     r3.Add(rect.Center, r3.Scale(fixedValue, rect.Axis[fixedAxis])),
			direction:  rect.Axis[free],
			rng:        Range{-rect.Extent[free], rect.Extent[free]},
			fixedAxis:  fixedAxis,
			fixedValue: fixedValue,
		}
	}
	return [4]rectangleEdge{
		edge(1, -e1),
		edge(0, e0),
		edge(1, e1),
		edge(0, -e0),
	}
}

// segmentCoordinates maps the parameter of segment() back to rectangle
// coordinates.
func (e rectangleEdge) segmentCoordinates(t float64) [2]float64 {
	return e.coordinates(e.rng.Min + t*(e.rng.Max-e.rng.Min))
}
