package dcp

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/proximity/shape"
)

type TriangleRectangleResult struct {
	Distance, SqrDistance float64
	// Closest[0] is on the triangle, Closest[1] on the rectangle.
	Closest     [2]r3.Vec
	Barycentric [3]float64
	Rectangle   [2]float64
}

// TriangleRectangle has no single quadratic program to solve, since the
// triangle contributes its own inequality constraints. Unless the two are
// coplanar and overlap, the closest pair always has a point on an edge of one
// of them, so the answer is the best of:
//
//   - each triangle edge against the rectangle (SegmentRectangle),
//   - each rectangle edge against the triangle (SegmentTriangle), which also
//     catches a rectangle that pierces the triangle's interior.
func TriangleRectangle(tri shape.Triangle, rect shape.Rectangle) TriangleRectangleResult {
	if s, ok := planarOverlap(rect, tri.V[:]); ok {
		p := rect.Point(s[0], s[1])
		b, _ := planeBarycentric(p, tri)
		return TriangleRectangleResult{
			Closest:     [2]r3.Vec{p, p},
			Barycentric: b,
			Rectangle:   s,
		}
	}

	best := TriangleRectangleResult{SqrDistance: math.Inf(1)}
	consider := func(candidate TriangleRectangleResult) {
		if candidate.SqrDistance < best.SqrDistance {
			best = candidate
		}
	}

	for i := 0; i < 3; i++ {
		lr := SegmentRectangle(tri.Edge(i), rect)
		var b [3]float64
		b[i] = 1 - lr.Parameter
		b[(i+1)%3] = lr.Parameter
		consider(TriangleRectangleResult{
			SqrDistance: lr.SqrDistance,
			Closest:     lr.Closest,
			Barycentric: b,
			Rectangle:   lr.Rectangle,
		})
	}
	for _, edge := range rectangleEdges(rect) {
		st := SegmentTriangle(edge.segment(), tri)
		consider(TriangleRectangleResult{
			SqrDistance: st.SqrDistance,
			Closest:     [2]r3.Vec{st.Closest[1], st.Closest[0]},
			Barycentric: st.Barycentric,
			Rectangle:   edge.segmentCoordinates(st.Parameter),
		})
	}

	best.Distance = math.Sqrt(best.SqrDistance)
	return best
}

type RectangleRectangleResult struct {
	Distance, SqrDistance float64
	// Closest[i] is on the i-th rectangle, at coordinates Rectangle[i].
	Closest   [2]r3.Vec
	Rectangle [2][2]float64
}

// RectangleRectangle uses the same reduction as TriangleRectangle: the edges
// of each rectangle against the other one, plus the coplanar overlap case.
// Both sides are decomposed, the first rectangle's edges after the second's,
// so the query is symmetric up to which tie wins.
func RectangleRectangle(r0, r1 shape.Rectangle) RectangleRectangleResult {
	corners := r1.Corners()
	if s, ok := planarOverlap(r0, corners[:]); ok {
		p := r0.Point(s[0], s[1])
		t0, t1 := r1.Coordinates(p)
		return RectangleRectangleResult{
			Closest: [2]r3.Vec{p, p},
			Rectangle: [2][2]float64{
				s,
				{clampExtent(t0, r1.Extent[0]), clampExtent(t1, r1.Extent[1])},
			},
		}
	}

	best := RectangleRectangleResult{SqrDistance: math.Inf(1)}
	consider := func(candidate RectangleRectangleResult) {
		if candidate.SqrDistance < best.SqrDistance {
			best = candidate
		}
	}

	for _, edge := range rectangleEdges(r1) {
		lr := SegmentRectangle(edge.segment(), r0)
		consider(RectangleRectangleResult{
			SqrDistance: lr.SqrDistance,
			Closest:     [2]r3.Vec{lr.Closest[1], lr.Closest[0]},
			Rectangle:   [2][2]float64{lr.Rectangle, edge.segmentCoordinates(lr.Parameter)},
		})
	}
	for _, edge := range rectangleEdges(r0) {
		lr := SegmentRectangle(edge.segment(), r1)
		consider(RectangleRectangleResult{
			SqrDistance: lr.SqrDistance,
			Closest:     lr.Closest,
			Rectangle:   [2][2]float64{edge.segmentCoordinates(lr.Parameter), lr.Rectangle},
		})
	}

	best.Distance = math.Sqrt(best.SqrDistance)
	return best
}
