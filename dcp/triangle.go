package dcp

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/proximity/shape"
)

type PointTriangleResult struct {
	Distance, SqrDistance float64
	// Closest[0] is the query point.
	Closest     [2]r3.Vec
	Barycentric [3]float64
}

// PointTriangle walks the Voronoi regions of the triangle's vertices and edges
// before falling back to the face region, so no case needs a square root or a
// division by something that could be zero.
func PointTriangle(p r3.Vec, tri shape.Triangle) PointTriangleResult {
	b := pointTriangleBarycentric(p, tri)
	closest := tri.Point(b)
	sqr := r3.Norm2(r3.Sub(p, closest))
	return PointTriangleResult{
		Distance:    math.Sqrt(sqr),
		SqrDistance: sqr,
		Closest:     [2]r3.Vec{p, closest},
		Barycentric: b,
	}
}

func pointTriangleBarycentric(p r3.Vec, tri shape.Triangle) [3]float64 {
	a, b, c := tri.V[0], tri.V[1], tri.V[2]
	ab := r3.Sub(b, a)
	ac := r3.Sub(c, a)

	ap := r3.Sub(p, a)
	d1 := r3.Dot(ab, ap)
	d2 := r3.Dot(ac, ap)
	if d1 <= 0 && d2 <= 0 {
		return [3]float64{1, 0, 0}
	}

	bp := r3.Sub(p, b)
	d3 := r3.Dot(ab, bp)
	d4 := r3.Dot(ac, bp)
	if d3 >= 0 && d4 <= d3 {
		return [3]float64{0, 1, 0}
	}

	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return [3]float64{1 - v, v, 0}
	}

	cp := r3.Sub(p, c)
	d5 := r3.Dot(ab, cp)
	d6 := r3.Dot(ac, cp)
	if d6 >= 0 && d5 <= d6 {
		return [3]float64{0, 0, 1}
	}

	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return [3]float64{1 - w, 0, w}
	}

	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return [3]float64{0, 1 - w, w}
	}

	// Inside the face region.
	denom := 1 / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return [3]float64{1 - v - w, v, w}
}

// planeBarycentric returns the barycentric coordinates of p, which must lie in
// the triangle's plane, and whether p is inside the triangle (edges
// included).
func planeBarycentric(p r3.Vec, tri shape.Triangle) ([3]float64, bool) {
	v0 := r3.Sub(tri.V[1], tri.V[0])
	v1 := r3.Sub(tri.V[2], tri.V[0])
	v2 := r3.Sub(p, tri.V[0])
	d00 := r3.Dot(v0, v0)
	d01 := r3.Dot(v0, v1)
	d11 := r3.Dot(v1, v1)
	d20 := r3.Dot(v2, v0)
	d21 := r3.Dot(v2, v1)
	denom := d00*d11 - d01*d01
	v := (d11*d20 - d01*d21) / denom
	w := (d00*d21 - d01*d20) / denom
	u := 1 - v - w
	return [3]float64{u, v, w}, u >= 0 && v >= 0 && w >= 0
}

type SegmentTriangleResult struct {
	Distance, SqrDistance float64
	Parameter             float64
	// Closest[0] is on the segment, Closest[1] on the triangle.
	Closest     [2]r3.Vec
	Barycentric [3]float64
}

// SegmentTriangle is the triangle analogue of SegmentRectangle: the segment
// either pierces the triangle, or the closest pair involves one of the
// triangle's edges or one of the segment's endpoints.
func SegmentTriangle(segment shape.Segment, tri shape.Triangle) SegmentTriangleResult {
	direction := segment.Direction()
	normal := tri.Normal()
	if denom := r3.Dot(normal, direction); denom != 0 {
		t := r3.Dot(normal, r3.Sub(tri.V[0], segment.P0)) / denom
		if SegmentRange.Contains(t) {
			p := segment.Point(t)
			if b, inside := planeBarycentric(p, tri); inside {
				return SegmentTriangleResult{
					Parameter:   t,
					Closest:     [2]r3.Vec{p, p},
					Barycentric: b,
				}
			}
		}
	}

	best := SegmentTriangleResult{SqrDistance: math.Inf(1)}
	consider := func(candidate SegmentTriangleResult) {
		if candidate.SqrDistance < best.SqrDistance {
			best = candidate
		}
	}

	for i := 0; i < 3; i++ {
		edge := tri.Edge(i)
		rr := RangeRange(segment.P0, direction, SegmentRange, edge.P0, edge.Direction(), SegmentRange)
		var b [3]float64
		b[i] = 1 - rr.Parameter[1]
		b[(i+1)%3] = rr.Parameter[1]
		consider(SegmentTriangleResult{
			SqrDistance: rr.SqrDistance,
			Parameter:   rr.Parameter[0],
			Closest:     rr.Closest,
			Barycentric: b,
		})
	}
	for _, t := range SegmentRange.bounds() {
		pt := PointTriangle(segment.Point(t), tri)
		consider(SegmentTriangleResult{
			SqrDistance: pt.SqrDistance,
			Parameter:   t,
			Closest:     pt.Closest,
			Barycentric: pt.Barycentric,
		})
	}

	best.Distance = math.Sqrt(best.SqrDistance)
	return best
}
