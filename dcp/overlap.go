package dcp

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/proximity/num"
	"github.com/osuushi/proximity/shape"
)

// Coplanar primitives can overlap in a whole region instead of crossing at a
// point, and the edge decomposition alone would then report whichever edge
// point happened to win. These helpers handle that case explicitly: flatten
// the other primitive into the rectangle's (s0, s1) frame, clip it to the
// rectangle, and report the middle of whatever is left.

// inPlane reports whether every point lies in the rectangle's plane, within a
// tolerance relative to the size of the configuration.
func inPlane(rect shape.Rectangle, points []r3.Vec) bool {
	normal := rect.Normal()
	scale := math.Max(1, math.Max(rect.Extent[0], rect.Extent[1]))
	for _, p := range points {
		scale = math.Max(scale, r3.Norm(r3.Sub(p, rect.Center)))
	}
	for _, p := range points {
		if math.Abs(r3.Dot(normal, r3.Sub(p, rect.Center))) > num.Tolerance*scale {
			return false
		}
	}
	return true
}

// planarOverlap returns a point, in rectangle coordinates, inside both the
// rectangle and the convex polygon. ok is false if the polygon is not in the
// rectangle's plane or misses the rectangle.
func planarOverlap(rect shape.Rectangle, polygon []r3.Vec) (s [2]float64, ok bool) {
	if !inPlane(rect, polygon) {
		return s, false
	}
	flat := make([]r2.Vec, len(polygon))
	for i, p := range polygon {
		s0, s1 := rect.Coordinates(p)
		flat[i] = r2.Vec{X: s0, Y: s1}
	}
	clipped := clipToExtents(flat, rect.Extent[0], rect.Extent[1])
	if len(clipped) == 0 {
		return s, false
	}
	var sum r2.Vec
	for _, p := range clipped {
		sum = r2.Add(sum, p)
	}
	// The vertex average of a convex polygon is inside it. Clamp anyway, the
	// clipped vertices can overshoot the extents by a rounding error.
	mid := r2.Scale(1/float64(len(clipped)), sum)
	return [2]float64{
		clampExtent(mid.X, rect.Extent[0]),
		clampExtent(mid.Y, rect.Extent[1]),
	}, true
}

// clipToExtents clips a convex polygon to |x| <= e0, |y| <= e1, one half plane
// at a time (Sutherland-Hodgman). Points on the boundary count as inside, so a
// polygon that only touches the rectangle still produces a vertex.
func clipToExtents(polygon []r2.Vec, e0, e1 float64) []r2.Vec {
	halfPlanes := []struct {
		normal r2.Vec
		offset float64
	}{
		{r2.Vec{X: 1}, e0},
		{r2.Vec{X: -1}, e0},
		{r2.Vec{Y: 1}, e1},
		{r2.Vec{Y: -1}, e1},
	}
	for _, hp := range halfPlanes {
		if len(polygon) == 0 {
			return nil
		}
		var out []r2.Vec
		for i, cur := range polygon {
			prev := polygon[num.CircularIndex(i-1, len(polygon))]
			dCur := r2.Dot(hp.normal, cur) - hp.offset
			dPrev := r2.Dot(hp.normal, prev) - hp.offset
			if dCur <= 0 {
				if dPrev > 0 {
					out = append(out, crossing(prev, cur, dPrev, dCur))
				}
				out = append(out, cur)
			} else if dPrev <= 0 {
				out = append(out, crossing(prev, cur, dPrev, dCur))
			}
		}
		polygon = out
	}
	return polygon
}

// crossing is where the edge from a to b meets the clipping line, given the
// signed distances of a and b, which must have opposite signs.
func crossing(a, b r2.Vec, da, db float64) r2.Vec {
	t := da / (da - db)
	return r2.Add(a, r2.Scale(t, r2.Sub(b, a)))
}
