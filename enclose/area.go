package enclose

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// convexHull2 is Andrew's monotone chain on rounded 2D projections. The exact
// work has been done by the 3D hull already; here a near-collinear vertex
// being kept or dropped does not change the rectangles that come out.
func convexHull2(points []r2.Vec) []r2.Vec {
	sorted := append([]r2.Vec(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	if len(sorted) < 3 {
		return sorted
	}

	turn := func(o, a, b r2.Vec) float64 {
		return r2.Cross(r2.Sub(a, o), r2.Sub(b, o))
	}
	chain := func(points []r2.Vec) []r2.Vec {
		var out []r2.Vec
		for _, p := range points {
			for len(out) >= 2 && turn(out[len(out)-2], out[len(out)-1], p) <= 0 {
				out = out[:len(out)-1]
			}
			out = append(out, p)
		}
		return out
	}

	lower := chain(sorted)
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	upper := chain(sorted)
	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

type rectangle2 struct {
	Center r2.Vec
	Axis   [2]r2.Vec
	Extent [2]float64
}

func (r rectangle2) area() float64 {
	return 4 * r.Extent[0] * r.Extent[1]
}

// minimumAreaRectangle tries a rectangle flush with every edge of the convex
// polygon, the 2D version of the fact that makes the box search finite.
// The first minimum wins.
func minimumAreaRectangle(polygon []r2.Vec) rectangle2 {
	if len(polygon) == 1 {
		return rectangle2{Center: polygon[0], Axis: [2]r2.Vec{{X: 1}, {Y: 1}}}
	}

	best := rectangle2{Extent: [2]float64{math.Inf(1), math.Inf(1)}}
	for i := range polygon {
		edge := r2.Sub(polygon[(i+1)%len(polygon)], polygon[i])
		if edge.X == 0 && edge.Y == 0 {
			continue
		}
		u := r2.Unit(edge)
		v := r2.Vec{X: -u.Y, Y: u.X}

		lo := [2]float64{math.Inf(1), math.Inf(1)}
		hi := [2]float64{math.Inf(-1), math.Inf(-1)}
		for _, p := range polygon {
			for k, axis := range [2]r2.Vec{u, v} {
				d := r2.Dot(p, axis)
				lo[k] = math.Min(lo[k], d)
				hi[k] = math.Max(hi[k], d)
			}
		}

		candidate := rectangle2{
			Center: r2.Add(r2.Scale((lo[0]+hi[0])/2, u), r2.Scale((lo[1]+hi[1])/2, v)),
			Axis:   [2]r2.Vec{u, v},
			Extent: [2]float64{(hi[0] - lo[0]) / 2, (hi[1] - lo[1]) / 2},
		}
		if candidate.area() < best.area() {
			best = candidate
		}
	}
	if math.IsInf(best.Extent[0], 1) {
		// Every edge had zero length.
		return rectangle2{Center: polygon[0], Axis: [2]r2.Vec{{X: 1}, {Y: 1}}}
	}
	return best
}
