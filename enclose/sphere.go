package enclose

import (
	"math"
	"math/bits"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/proximity/num"
	"github.com/osuushi/proximity/shape"
)

type SphereOption func(*SphereBuilder)

// WithTolerance sets how far outside the sphere a point may be and still
// count as contained, relative to the radius or to the largest coordinate
// seen so far, whichever is bigger.
func WithTolerance(eps float64) SphereOption {
	return func(b *SphereBuilder) {
		b.tolerance = eps
	}
}

// SphereBuilder maintains the minimum enclosing sphere of the points added so
// far, along with the support set of at most four points that determines it.
// The zero value is not usable; use NewSphereBuilder.
type SphereBuilder struct {
	points    []r3.Vec
	support   []int
	sphere    shape.Sphere
	tolerance float64
	// Largest coordinate magnitude added so far.
	scale float64
}

func NewSphereBuilder(opts ...SphereOption) *SphereBuilder {
	b := &SphereBuilder{tolerance: num.Tolerance}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// MinimumSphere is the minimum enclosing sphere of points, with the indices of
// its support.
func MinimumSphere(points []r3.Vec, opts ...SphereOption) (shape.Sphere, []int, error) {
	if len(points) == 0 {
		return shape.Sphere{}, nil, errors.New("enclose: no points")
	}
	b := NewSphereBuilder(opts...)
	if err := b.AddAll(points); err != nil {
		return shape.Sphere{}, nil, err
	}
	sphere, _ := b.Sphere()
	return sphere, b.SupportIndices(), nil
}

func (b *SphereBuilder) Len() int {
	return len(b.points)
}

// Points returns the points in the order they were added. The slice must not
// be modified.
func (b *SphereBuilder) Points() []r3.Vec {
	return b.points
}

// Sphere reports false until a point has been added.
func (b *SphereBuilder) Sphere() (shape.Sphere, bool) {
	return b.sphere, len(b.points) > 0
}

func (b *SphereBuilder) Support() []r3.Vec {
	support := make([]r3.Vec, len(b.support))
	for i, j := range b.support {
		support[i] = b.points[j]
	}
	return support
}

// SupportIndices are positions in Points, in increasing order.
func (b *SphereBuilder) SupportIndices() []int {
	return append([]int(nil), b.support...)
}

func (b *SphereBuilder) AddAll(points []r3.Vec) error {
	for _, p := range points {
		if err := b.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// Add grows the sphere to contain p. Points already inside change nothing.
// Otherwise p is on the boundary of the new sphere, which is found among the
// spheres through p and subsets of the old support. Points added earlier are
// then checked again, and any that fell outside is handled the same way. The
// radius grows at every step, so this ends.
func (b *SphereBuilder) Add(p r3.Vec) error {
	if !num.Finite(p.X, p.Y, p.Z) {
		return errors.Errorf("enclose: point is not finite: %v", p)
	}
	b.points = append(b.points, p)
	b.scale = math.Max(b.scale, math.Max(math.Abs(p.X), math.Max(math.Abs(p.Y), math.Abs(p.Z))))
	i := len(b.points) - 1
	if i == 0 {
		b.support = []int{0}
		b.sphere = shape.Sphere{Center: p}
		return nil
	}

	for i >= 0 && !b.contains(b.points[i]) {
		previous := b.sphere.Radius
		b.refit(i)
		if b.sphere.Radius <= previous {
			// Rounding left no candidate that grows; stretch the sphere
			// over the point instead of cycling.
			b.sphere.Radius = math.Max(previous, r3.Norm(r3.Sub(b.points[i], b.sphere.Center)))
		}
		i = b.firstOutside()
	}
	return nil
}

func (b *SphereBuilder) contains(p r3.Vec) bool {
	return b.sphere.Contains(p, b.slack(b.sphere))
}

// slack is the containment tolerance for s. It follows the size of the
// input, so tiny point sets keep their own scale.
func (b *SphereBuilder) slack(s shape.Sphere) float64 {
	return b.tolerance * math.Max(b.scale, s.Radius)
}

func (b *SphereBuilder) firstOutside() int {
	for i, p := range b.points {
		if !b.contains(p) {
			return i
		}
	}
	return -1
}

// refit replaces the sphere with the smallest sphere through point i and some
// subset of the current support that contains all of them. Smaller subsets
// are tried first and only a strictly smaller sphere replaces a candidate, so
// ties go to the smaller support.
func (b *SphereBuilder) refit(i int) {
	old := b.support
	set := append(append([]int(nil), old...), i)
	fits := func(s shape.Sphere) bool {
		eps := b.slack(s)
		for _, j := range set {
			if !s.Contains(b.points[j], eps) {
				return false
			}
		}
		return true
	}

	masks := make([]int, 1<<len(old))
	for m := range masks {
		masks[m] = m
	}
	sort.SliceStable(masks, func(x, y int) bool {
		return bits.OnesCount(uint(masks[x])) < bits.OnesCount(uint(masks[y]))
	})

	var best shape.Sphere
	var bestSupport []int
	found := false
	for _, m := range masks {
		var subset []int
		for k, j := range old {
			if m&(1<<k) != 0 {
				subset = append(subset, j)
			}
		}
		subset = append(subset, i)
		if len(subset) > 4 {
			continue
		}
		positions := make([]r3.Vec, len(subset))
		for k, j := range subset {
			positions[k] = b.points[j]
		}
		s, ok := circumsphere(positions)
		if !ok || !fits(s) {
			continue
		}
		if !found || s.Radius < best.Radius {
			best, bestSupport, found = s, subset, true
		}
	}

	if !found {
		// Only reachable through rounding: keep the center and reach p.
		b.sphere.Radius = r3.Norm(r3.Sub(b.points[i], b.sphere.Center))
		b.support = append(old, i)
		sort.Ints(b.support)
		return
	}
	sort.Ints(bestSupport)
	b.sphere, b.support = best, bestSupport
}

// circumsphere is the smallest sphere with every point on its surface: the
// circumsphere of four points, the circumcircle of three within their plane,
// the diameter sphere of two. It reports false when the points are
// coincident, collinear or coplanar for their count, since no such sphere is
// determined then.
func circumsphere(points []r3.Vec) (shape.Sphere, bool) {
	a := points[0]
	switch len(points) {
	case 1:
		return shape.Sphere{Center: a}, true
	case 2:
		d := r3.Sub(points[1], a)
		if r3.Norm2(d) == 0 {
			return shape.Sphere{}, false
		}
		return shape.Sphere{Center: r3.Add(a, r3.Scale(0.5, d)), Radius: r3.Norm(d) / 2}, true
	case 3:
		// Center = a + s·u + t·v, equidistant from all three.
		u := r3.Sub(points[1], a)
		v := r3.Sub(points[2], a)
		m := mat.NewDense(2, 2, []float64{
			r3.Dot(u, u), r3.Dot(u, v),
			r3.Dot(u, v), r3.Dot(v, v),
		})
		rhs := mat.NewVecDense(2, []float64{r3.Dot(u, u) / 2, r3.Dot(v, v) / 2})
		var x mat.VecDense
		if err := x.SolveVec(m, rhs); err != nil {
			return shape.Sphere{}, false
		}
		offset := r3.Add(r3.Scale(x.AtVec(0), u), r3.Scale(x.AtVec(1), v))
		return shape.Sphere{Center: r3.Add(a, offset), Radius: r3.Norm(offset)}, true
	case 4:
		rows := make([]float64, 0, 9)
		rhs := make([]float64, 0, 3)
		for _, p := range points[1:] {
			d := r3.Sub(p, a)
			rows = append(rows, d.X, d.Y, d.Z)
			rhs = append(rhs, r3.Norm2(d)/2)
		}
		var x mat.VecDense
		if err := x.SolveVec(mat.NewDense(3, 3, rows), mat.NewVecDense(3, rhs)); err != nil {
			return shape.Sphere{}, false
		}
		offset := r3.Vec{X: x.AtVec(0), Y: x.AtVec(1), Z: x.AtVec(2)}
		return shape.Sphere{Center: r3.Add(a, offset), Radius: r3.Norm(offset)}, true
	}
	return shape.Sphere{}, false
}
