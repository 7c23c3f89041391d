// Package shape holds the primitive value types the queries and the
// enclosing algorithms work on. Everything here is a plain value: copy it
// freely, nothing is shared.
//
// The queries assume well formed primitives (unit, orthogonal axes, positive
// extents, non-zero directions). They do not re-normalize anything. Use the
// New* constructors, or call Validate on values built by hand, to catch
// malformed input before querying.
package shape

import "gonum.org/v1/gonum/spatial/r3"

// Rectangle is the set of points Center + s0*Axis[0] + s1*Axis[1] with
// |s0| <= Extent[0] and |s1| <= Extent[1].
type Rectangle struct {
	Center r3.Vec
	Axis   [2]r3.Vec
	Extent [2]float64
}

// Point maps rectangle coordinates to world space. The coordinates are not
// clamped.
func (r Rectangle) Point(s0, s1 float64) r3.Vec {
	return r3.Add(r.Center, r3.Add(r3.Scale(s0, r.Axis[0]), r3.Scale(s1, r.Axis[1])))
}

func (r Rectangle) Normal() r3.Vec {
	return r3.Cross(r.Axis[0], r.Axis[1])
}

// Corners are returned in counterclockwise order about the normal, starting
// at (-e0, -e1).
func (r Rectangle) Corners() [4]r3.Vec {
	e0, e1 := r.Extent[0], r.Extent[1]
	return [4]r3.Vec{
		r.Point(-e0, -e1),
		r.Point(e0, -e1),
		r.Point(e0, e1),
		r.Point(-e0, e1),
	}
}

// Edges connects consecutive corners. Edge i runs from Corners()[i] to
// Corners()[(i+1)%4].
func (r Rectangle) Edges() [4]Segment {
	c := r.Corners()
	var edges [4]Segment
	for i := range c {
		edges[i] = Segment{c[i], c[(i+1)%4]}
	}
	return edges
}

// Coordinates returns the unclamped (s0, s1) of the projection of p onto the
// rectangle's plane.
func (r Rectangle) Coordinates(p r3.Vec) (s0, s1 float64) {
	diff := r3.Sub(p, r.Center)
	return r3.Dot(diff, r.Axis[0]), r3.Dot(diff, r.Axis[1])
}

// Line is infinite in both directions.
type Line struct {
	Origin, Direction r3.Vec
}

func (l Line) Point(t float64) r3.Vec {
	return r3.Add(l.Origin, r3.Scale(t, l.Direction))
}

// Ray is Origin + t*Direction for t >= 0.
type Ray struct {
	Origin, Direction r3.Vec
}

func (r Ray) Point(t float64) r3.Vec {
	return r3.Add(r.Origin, r3.Scale(t, r.Direction))
}

// Segment runs from P0 to P1. Its parameter t is always in [0, 1], with
// Point(0) == P0 and Point(1) == P1. The direction is not normalized.
type Segment struct {
	P0, P1 r3.Vec
}

func (s Segment) Origin() r3.Vec { return s.P0 }

func (s Segment) Direction() r3.Vec { return r3.Sub(s.P1, s.P0) }

func (s Segment) Point(t float64) r3.Vec {
	return r3.Add(s.P0, r3.Scale(t, s.Direction()))
}

func (s Segment) Length() float64 {
	return r3.Norm(s.Direction())
}

// Triangle has no derived state. Points inside it are addressed by
// barycentric coordinates (b0, b1, b2) with b0+b1+b2 == 1.
type Triangle struct {
	V [3]r3.Vec
}

func (t Triangle) Point(b [3]float64) r3.Vec {
	return r3.Add(r3.Scale(b[0], t.V[0]), r3.Add(r3.Scale(b[1], t.V[1]), r3.Scale(b[2], t.V[2])))
}

// Normal is not normalized. Its length is twice the triangle's area.
func (t Triangle) Normal() r3.Vec {
	return r3.Cross(r3.Sub(t.V[1], t.V[0]), r3.Sub(t.V[2], t.V[0]))
}

// Edge i runs from V[i] to V[(i+1)%3].
func (t Triangle) Edge(i int) Segment {
	return Segment{t.V[i], t.V[(i+1)%3]}
}
