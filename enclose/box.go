// Package enclose finds minimum-volume boxes and spheres around point sets.
//
// Degenerate input is not an error here. Coincident, collinear and coplanar
// points give shapes with zero extents (or a zero radius) instead.
package enclose

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/proximity/internal/hull"
	"github.com/osuushi/proximity/num"
	"github.com/osuushi/proximity/shape"
)

type boxConfig struct {
	epsilon    float64
	arithmetic num.Arithmetic
}

type BoxOption func(*boxConfig)

// WithEpsilon merges points that are within eps of an earlier point before the
// hull is built. The default of zero only merges exact duplicates.
func WithEpsilon(eps float64) BoxOption {
	return func(c *boxConfig) {
		c.epsilon = eps
	}
}

// WithArithmetic picks the arithmetic of the hull's predicates. The default is
// num.Exact.
func WithArithmetic(arithmetic num.Arithmetic) BoxOption {
	return func(c *boxConfig) {
		c.arithmetic = arithmetic
	}
}

type BoxResult struct {
	Box shape.Box
	// The hull of the merged points, with indices into the caller's slice.
	Hull hull.Hull
	// Hull vertices lying on a face of the box.
	Support []int
}

// MinimumBox returns the box of least volume that contains every point. The
// optimal box has a face flush with a face of the convex hull, so only the
// hull's face normals need to be tried as box axes. The axis aligned box is
// tried as well, which makes the result never worse than it.
func MinimumBox(points []r3.Vec, opts ...BoxOption) (BoxResult, error) {
	config := boxConfig{arithmetic: num.Exact}
	for _, opt := range opts {
		opt(&config)
	}
	if !num.Finite(config.epsilon) || config.epsilon < 0 {
		return BoxResult{}, errors.Errorf("enclose: invalid epsilon %v", config.epsilon)
	}
	if len(points) == 0 {
		return BoxResult{}, errors.New("enclose: no points")
	}
	for i, p := range points {
		if !num.Finite(p.X, p.Y, p.Z) {
			return BoxResult{}, errors.Errorf("enclose: point %d is not finite: %v", i, p)
		}
	}

	merged, original := merge(points, config.epsilon)
	h, err := hull.Compute(merged, config.arithmetic)
	if _, broken := err.(hull.HullError); broken && config.arithmetic == num.Floating {
		// Rounded predicates disagreed on nearly coplanar points.
		h, err = hull.Compute(merged, num.Exact)
	}
	if err != nil {
		return BoxResult{}, errors.Wrap(err, "enclose")
	}

	var box shape.Box
	switch h.Dimension {
	case 0:
		box = shape.Box{
			Center: merged[h.Vertices[0]],
			Axis:   [3]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}},
		}
	case 1:
		box = segmentBox(merged[h.Vertices[0]], merged[h.Vertices[1]])
	case 2:
		box = planarBox(merged, h)
	default:
		box = solidBox(merged, h)
	}

	// Report the hull against the caller's indices.
	for i, v := range h.Vertices {
		h.Vertices[i] = original[v]
	}
	for i, f := range h.Faces {
		h.Faces[i] = [3]int{original[f[0]], original[f[1]], original[f[2]]}
	}

	return BoxResult{
		Box:     box,
		Hull:    h,
		Support: support(points, h.Vertices, box),
	}, nil
}

// merge keeps the first of every group of points closer than eps, and
// returns the kept points with their indices in the input.
func merge(points []r3.Vec, eps float64) ([]r3.Vec, []int) {
	var merged []r3.Vec
	var original []int
	if eps == 0 {
		seen := map[r3.Vec]bool{}
		for i, p := range points {
			if !seen[p] {
				seen[p] = true
				merged = append(merged, p)
				original = append(original, i)
			}
		}
		return merged, original
	}

outer:
	for i, p := range points {
		for _, q := range merged {
			if r3.Norm(r3.Sub(p, q)) < eps {
				continue outer
			}
		}
		merged = append(merged, p)
		original = append(original, i)
	}
	return merged, original
}

func segmentBox(a, b r3.Vec) shape.Box {
	diff := r3.Sub(b, a)
	axis := r3.Unit(diff)
	v, w := shape.CompleteBasis(axis)
	return shape.Box{
		Center: r3.Scale(0.5, r3.Add(a, b)),
		Axis:   [3]r3.Vec{axis, v, w},
		Extent: [3]float64{r3.Norm(diff) / 2, 0, 0},
	}
}

// planarBox is the minimum-area rectangle of the hull polygon, with a zero
// extent along the normal.
func planarBox(points []r3.Vec, h hull.Hull) shape.Box {
	normal := r3.Unit(h.Normal)
	origin := points[h.Vertices[0]]
	u, v := shape.CompleteBasis(normal)
	polygon := make([]r2.Vec, len(h.Vertices))
	for i, vertex := range h.Vertices {
		polygon[i] = project(points[vertex], origin, u, v)
	}
	rect := minimumAreaRectangle(convexHull2(polygon))
	return lift(rect, origin, u, v, normal, 0, 0)
}

// solidBox tries every hull face normal as a box axis and keeps the smallest
// box, starting from the axis aligned one.
func solidBox(points []r3.Vec, h hull.Hull) shape.Box {
	aabb := r3.Box{Min: points[h.Vertices[0]], Max: points[h.Vertices[0]]}
	for _, vertex := range h.Vertices {
		p := points[vertex]
		aabb.Min = r3.Vec{X: math.Min(aabb.Min.X, p.X), Y: math.Min(aabb.Min.Y, p.Y), Z: math.Min(aabb.Min.Z, p.Z)}
		aabb.Max = r3.Vec{X: math.Max(aabb.Max.X, p.X), Y: math.Max(aabb.Max.Y, p.Y), Z: math.Max(aabb.Max.Z, p.Z)}
	}
	best := shape.AxisAligned(aabb)

	origin := points[h.Vertices[0]]
	var tried []r3.Vec
	polygon := make([]r2.Vec, len(h.Vertices))
	for _, face := range h.Faces {
		normal := hull.FaceNormal(points, face)
		if !num.Finite(normal.X, normal.Y, normal.Z) || sameDirection(tried, normal) {
			continue
		}
		tried = append(tried, normal)

		u, v := shape.CompleteBasis(normal)
		lo, hi := math.Inf(1), math.Inf(-1)
		for i, vertex := range h.Vertices {
			p := points[vertex]
			polygon[i] = project(p, origin, u, v)
			height := r3.Dot(r3.Sub(p, origin), normal)
			lo = math.Min(lo, height)
			hi = math.Max(hi, height)
		}
		rect := minimumAreaRectangle(convexHull2(polygon))
		candidate := lift(rect, origin, u, v, normal, lo, hi)
		if candidate.Volume() < best.Volume() {
			best = candidate
		}
	}
	return best
}

// sameDirection reports whether normal matches one of the tried unit normals,
// or its opposite, up to rounding. Triangles of one flat hull face give the
// same box, and so does the parallel face across the hull.
func sameDirection(tried []r3.Vec, normal r3.Vec) bool {
	for _, n := range tried {
		if r3.Norm(r3.Sub(n, normal)) <= num.Tolerance || r3.Norm(r3.Add(n, normal)) <= num.Tolerance {
			return true
		}
	}
	return false
}

func project(p, origin, u, v r3.Vec) r2.Vec {
	d := r3.Sub(p, origin)
	return r2.Vec{X: r3.Dot(d, u), Y: r3.Dot(d, v)}
}

// lift turns a rectangle in the (u, v) plane through origin into a box
// spanning heights lo to hi along normal.
func lift(rect rectangle2, origin, u, v, normal r3.Vec, lo, hi float64) shape.Box {
	in3 := func(q r2.Vec) r3.Vec {
		return r3.Add(r3.Scale(q.X, u), r3.Scale(q.Y, v))
	}
	center := r3.Add(origin, in3(rect.Center))
	center = r3.Add(center, r3.Scale((lo+hi)/2, normal))
	axis0 := in3(rect.Axis[0])
	axis1 := in3(rect.Axis[1])
	return shape.Box{
		Center: center,
		Axis:   [3]r3.Vec{axis0, axis1, r3.Cross(axis0, axis1)},
		Extent: [3]float64{rect.Extent[0], rect.Extent[1], (hi - lo) / 2},
	}
}

// support lists the vertices that touch a face of the box.
func support(points []r3.Vec, vertices []int, box shape.Box) []int {
	var touching []int
	for _, vertex := range vertices {
		c := box.Coordinates(points[vertex])
		for axis := 0; axis < 3; axis++ {
			if num.Equal(math.Abs(c[axis]), box.Extent[axis]) {
				touching = append(touching, vertex)
				break
			}
		}
	}
	return touching
}
