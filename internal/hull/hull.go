// Package hull computes convex hulls of 3D point sets. All the decisions the
// construction makes (which points coincide, which are collinear or coplanar,
// which faces a point can see) are sign tests, and they are evaluated on a
// num.Real so that the exact arithmetic gets them right on degenerate input.
package hull

import (
	"fmt"
	"math"
	"sort"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/proximity/num"
)

type Hull struct {
	// Affine dimension of the input: 0 when every point coincides, 1 when
	// they are collinear, 2 when coplanar, 3 otherwise.
	Dimension int
	// Indices into the input of the points on the hull. For dimension 1 these
	// are the two extremes, for dimension 2 the polygon in counterclockwise
	// order around Normal, and for dimension 3 they are sorted.
	Vertices []int
	// Only for dimension 3. Each face is oriented so that (b-a)×(c-a) points
	// out of the hull.
	Faces [][3]int
	// The plane's normal for dimension 2, not normalized.
	Normal r3.Vec
}

func (h Hull) String() string {
	return fmt.Sprintf("%s hull: %d vertices, %d faces",
		aurora.Cyan(DimensionName(h.Dimension)), len(h.Vertices), len(h.Faces))
}

func DimensionName(dimension int) string {
	switch dimension {
	case 0:
		return "point"
	case 1:
		return "segment"
	case 2:
		return "polygon"
	case 3:
		return "polyhedron"
	}
	return fmt.Sprintf("dimension %d", dimension)
}

// FaceNormal is the unit outward normal of a face of a hull computed from
// points.
func FaceNormal(points []r3.Vec, face [3]int) r3.Vec {
	a, b, c := points[face[0]], points[face[1]], points[face[2]]
	return r3.Unit(r3.Cross(r3.Sub(b, a), r3.Sub(c, a)))
}

// Compute returns the convex hull of points. Errors are returned for empty or
// non-finite input, and when the floating arithmetic makes inconsistent
// decisions that leave the hull broken.
func Compute(points []r3.Vec, arithmetic num.Arithmetic) (h Hull, err error) {
	if len(points) == 0 {
		return Hull{}, errors.New("hull: no points")
	}
	for i, p := range points {
		if !num.Finite(p.X, p.Y, p.Z) {
			return Hull{}, errors.Errorf("hull: point %d is not finite: %v", i, p)
		}
	}

	defer func() {
		if e := HandleHullPanicRecover(recover()); e != nil {
			h, err = Hull{}, e
		}
	}()

	switch arithmetic {
	case num.Exact:
		return compute[num.Rat](points), nil
	case num.Floating:
		return compute[num.Float](points), nil
	}
	return Hull{}, errors.Errorf("hull: unknown arithmetic %v", arithmetic)
}

func compute[T num.Real[T]](points []r3.Vec) Hull {
	p := make([]num.Vec3[T], len(points))
	for i, v := range points {
		p[i] = num.VecOf[T](v)
	}

	// Grow an affinely independent seed one point at a time. How far it gets
	// is the dimension.
	i1 := firstIndex(len(p), func(i int) bool { return !p[i].Equal(p[0]) })
	if i1 < 0 {
		return Hull{Dimension: 0, Vertices: []int{0}}
	}
	i2 := firstIndex(len(p), func(i int) bool { return !num.Collinear(p[0], p[i1], p[i]) })
	if i2 < 0 {
		return collinearHull(p, i1)
	}
	i3 := firstIndex(len(p), func(i int) bool { return num.Orient(p[0], p[i1], p[i2], p[i]) != 0 })
	if i3 < 0 {
		normal := p[i1].Sub(p[0]).Cross(p[i2].Sub(p[0]))
		return planarHull(p, normal)
	}
	return solidHull(p, [4]int{0, i1, i2, i3})
}

func firstIndex(n int, pred func(int) bool) int {
	for i := 0; i < n; i++ {
		if pred(i) {
			return i
		}
	}
	return -1
}

func collinearHull[T num.Real[T]](p []num.Vec3[T], i1 int) Hull {
	direction := p[i1].Sub(p[0])
	lo, hi := 0, 0
	loValue := direction.Dot(p[0])
	hiValue := loValue
	for i := range p {
		value := direction.Dot(p[i])
		if value.Cmp(loValue) < 0 {
			lo, loValue = i, value
		}
		if value.Cmp(hiValue) > 0 {
			hi, hiValue = i, value
		}
	}
	return Hull{Dimension: 1, Vertices: []int{lo, hi}}
}

func component[T num.Real[T]](v num.Vec3[T], axis int) T {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	}
	return v.Z
}

// planarHull runs Andrew's monotone chain in a projection of the plane.
// Dropping the axis along which the normal is largest keeps the projection
// one to one, and taking the two remaining axes in cyclic order makes the 2D
// cross product equal to that axis's component of the 3D one.
func planarHull[T num.Real[T]](p []num.Vec3[T], normal num.Vec3[T]) Hull {
	k := 0
	best := 0.0
	for axis := 0; axis < 3; axis++ {
		if a := math.Abs(component(normal, axis).Float64()); a > best {
			k, best = axis, a
		}
	}
	u := func(i int) T { return component(p[i], (k+1)%3) }
	v := func(i int) T { return component(p[i], (k+2)%3) }

	order := make([]int, len(p))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if c := u(order[a]).Cmp(u(order[b])); c != 0 {
			return c < 0
		}
		return v(order[a]).Cmp(v(order[b])) < 0
	})
	// Duplicates are adjacent now. Keep the first index of each.
	unique := order[:1]
	for _, i := range order[1:] {
		last := unique[len(unique)-1]
		if u(i).Cmp(u(last)) != 0 || v(i).Cmp(v(last)) != 0 {
			unique = append(unique, i)
		}
	}
	order = unique

	turn := func(o, a, b int) int {
		du0, dv0 := u(a).Sub(u(o)), v(a).Sub(v(o))
		du1, dv1 := u(b).Sub(u(o)), v(b).Sub(v(o))
		return du0.Mul(dv1).Sub(dv0.Mul(du1)).Sign()
	}
	chain := func(indices []int) []int {
		var out []int
		for _, i := range indices {
			for len(out) >= 2 && turn(out[len(out)-2], out[len(out)-1], i) <= 0 {
				out = out[:len(out)-1]
			}
			out = append(out, i)
		}
		return out
	}

	lower := chain(order)
	reversed := make([]int, len(order))
	for i, j := range order {
		reversed[len(order)-1-i] = j
	}
	upper := chain(reversed)
	polygon := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(polygon) < 3 {
		fatalf("hull: planar input collapsed to %d vertices", len(polygon))
	}

	// The chain is counterclockwise around +axis k.
	if component(normal, k).Sign() < 0 {
		for i, j := 0, len(polygon)-1; i < j; i, j = i+1, j-1 {
			polygon[i], polygon[j] = polygon[j], polygon[i]
		}
	}
	return Hull{Dimension: 2, Vertices: polygon, Normal: normal.R3()}
}

type edge [2]int

func (e edge) reversed() edge {
	return edge{e[1], e[0]}
}

// solidHull is the incremental algorithm: starting from the seed tetrahedron,
// each point outside the current hull removes the faces it can see and is
// connected to the horizon of that region.
func solidHull[T num.Real[T]](p []num.Vec3[T], seed [4]int) Hull {
	sees := func(f [3]int, i int) bool {
		return num.Orient(p[f[0]], p[f[1]], p[f[2]], p[i]) > 0
	}

	var faces [][3]int
	for skip := 0; skip < 4; skip++ {
		var f [3]int
		n := 0
		for j := 0; j < 4; j++ {
			if j != skip {
				f[n] = seed[j]
				n++
			}
		}
		if sees(f, seed[skip]) {
			f[1], f[2] = f[2], f[1]
		}
		faces = append(faces, f)
	}

	inSeed := map[int]bool{seed[0]: true, seed[1]: true, seed[2]: true, seed[3]: true}
	for i := range p {
		if inSeed[i] {
			continue
		}

		visible := make([]bool, len(faces))
		directed := map[edge]bool{}
		count := 0
		for j, f := range faces {
			if sees(f, i) {
				visible[j] = true
				count++
				for e := 0; e < 3; e++ {
					directed[edge{f[e], f[(e+1)%3]}] = true
				}
			}
		}
		if count == 0 {
			continue
		}

		// Horizon edges are the ones whose twin belongs to a face that stays.
		var horizon []edge
		next := make([][3]int, 0, len(faces))
		for j, f := range faces {
			if !visible[j] {
				next = append(next, f)
				continue
			}
			for e := 0; e < 3; e++ {
				ed := edge{f[e], f[(e+1)%3]}
				if !directed[ed.reversed()] {
					horizon = append(horizon, ed)
				}
			}
		}
		if len(horizon) < 3 {
			fatalf("hull: point %d sees %d faces but the horizon has %d edges", i, count, len(horizon))
		}
		for _, ed := range horizon {
			next = append(next, [3]int{ed[0], ed[1], i})
		}
		faces = next
	}

	checkClosed(faces)

	seen := map[int]bool{}
	var vertices []int
	for _, f := range faces {
		for _, i := range f {
			if !seen[i] {
				seen[i] = true
				vertices = append(vertices, i)
			}
		}
	}
	sort.Ints(vertices)
	return Hull{Dimension: 3, Vertices: vertices, Faces: faces}
}

// checkClosed verifies that every directed edge appears exactly once and is
// matched by its twin, which is what a consistently oriented closed surface
// looks like.
func checkClosed(faces [][3]int) {
	directed := map[edge]int{}
	for _, f := range faces {
		for e := 0; e < 3; e++ {
			directed[edge{f[e], f[(e+1)%3]}]++
		}
	}
	for ed, n := range directed {
		if n != 1 || directed[ed.reversed()] != 1 {
			fatalf("hull: edge %d-%d is not shared by exactly two faces", ed[0], ed[1])
		}
	}
}
