package num

import "gonum.org/v1/gonum/spatial/r3"

// Vec3 is a 3D vector over any Real. It only carries what the predicates
// need; geometry that can tolerate rounding works on r3.Vec directly.
type Vec3[T Real[T]] struct {
	X, Y, Z T
}

func VecOf[T Real[T]](v r3.Vec) Vec3[T] {
	return Vec3[T]{Of[T](v.X), Of[T](v.Y), Of[T](v.Z)}
}

func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X.Add(b.X), a.Y.Add(b.Y), a.Z.Add(b.Z)}
}

func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a.X.Sub(b.X), a.Y.Sub(b.Y), a.Z.Sub(b.Z)}
}

func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a.X.Mul(b.X).Add(a.Y.Mul(b.Y)).Add(a.Z.Mul(b.Z))
}

func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a.Y.Mul(b.Z).Sub(a.Z.Mul(b.Y)),
		a.Z.Mul(b.X).Sub(a.X.Mul(b.Z)),
		a.X.Mul(b.Y).Sub(a.Y.Mul(b.X)),
	}
}

func (a Vec3[T]) IsZero() bool {
	return a.X.Sign() == 0 && a.Y.Sign() == 0 && a.Z.Sign() == 0
}

func (a Vec3[T]) Equal(b Vec3[T]) bool {
	return a.X.Cmp(b.X) == 0 && a.Y.Cmp(b.Y) == 0 && a.Z.Cmp(b.Z) == 0
}

// R3 rounds back to float64.
func (a Vec3[T]) R3() r3.Vec {
	return r3.Vec{X: a.X.Float64(), Y: a.Y.Float64(), Z: a.Z.Float64()}
}

// Orient is the sign of the volume of the tetrahedron (a, b, c, p). It is
// positive when p is on the side that (b-a)×(c-a) points to, and zero when the
// four points are coplanar.
func Orient[T Real[T]](a, b, c, p Vec3[T]) int {
	n := b.Sub(a).Cross(c.Sub(a))
	return n.Dot(p.Sub(a)).Sign()
}

// Collinear reports whether the three points lie on one line.
func Collinear[T Real[T]](a, b, c Vec3[T]) bool {
	return b.Sub(a).Cross(c.Sub(a)).IsZero()
}
