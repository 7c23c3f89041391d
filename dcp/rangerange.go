// Package dcp computes distances and closest points between pairs of 3D
// primitives.
//
// Every query is closed form: it minimizes a convex quadratic over a box of
// parameters by checking the unconstrained minimum and then each face of the
// box, each of which is a smaller query of the same kind. The bigger queries
// (triangle and rectangle pairs) are built entirely out of the smaller ones.
//
// Candidates are always compared by the squared distance between the two
// actual points they produce, scanning in a fixed order and replacing the
// best only on a strict improvement. Equal inputs therefore always produce
// equal outputs, even when two boundary cases tie.
//
// Queries never fail and never return errors. They assume their primitives
// are valid (see shape.Rectangle.Validate and friends) and do not normalize
// anything themselves.
package dcp

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/proximity/num"
)

// Range is a closed interval of line parameters. Either end may be infinite.
type Range struct {
	Min, Max float64
}

var (
	LineRange    = Range{math.Inf(-1), math.Inf(1)}
	RayRange     = Range{0, math.Inf(1)}
	SegmentRange = Range{0, 1}
)

func (r Range) Contains(t float64) bool {
	return r.Min <= t && t <= r.Max
}

func (r Range) Clamp(t float64) float64 {
	return num.Clamp(t, r.Min, r.Max)
}

// The finite ends of the range, Min first.
func (r Range) bounds() []float64 {
	bounds := make([]float64, 0, 2)
	if !math.IsInf(r.Min, 0) {
		bounds = append(bounds, r.Min)
	}
	if !math.IsInf(r.Max, 0) && r.Max != r.Min {
		bounds = append(bounds, r.Max)
	}
	return bounds
}

type RangeRangeResult struct {
	Distance, SqrDistance float64
	Parameter             [2]float64
	Closest               [2]r3.Vec
}

// RangeRange finds the closest pair between the linear components
// {p0 + t*d0 : t in range0} and {p1 + u*d1 : u in range1}. This is the work
// horse behind every edge case of the bigger queries: a rectangle edge is
// Center ± e*Axis with a parameter range of [-e, e], and so on.
//
// If both ranges are unbounded and the directions are parallel, every pair at
// the minimal distance is equally good and the one with u nearest zero is
// returned.
func RangeRange(p0, d0 r3.Vec, range0 Range, p1, d1 r3.Vec, range1 Range) RangeRangeResult {
	diff := r3.Sub(p0, p1)
	a := r3.Dot(d0, d0)
	b := r3.Dot(d0, d1)
	c := r3.Dot(d1, d1)
	d := r3.Dot(d0, diff)
	e := r3.Dot(d1, diff)

	best := RangeRangeResult{SqrDistance: math.Inf(1)}
	try := func(t, u float64) {
		q0 := r3.Add(p0, r3.Scale(t, d0))
		q1 := r3.Add(p1, r3.Scale(u, d1))
		sqr := r3.Norm2(r3.Sub(q0, q1))
		if sqr < best.SqrDistance {
			best = RangeRangeResult{
				SqrDistance: sqr,
				Parameter:   [2]float64{t, u},
				Closest:     [2]r3.Vec{q0, q1},
			}
		}
	}

	// Minimizers along one parameter with the other held fixed.
	tFor := func(u float64) float64 {
		if a == 0 {
			return range0.Clamp(0)
		}
		return range0.Clamp((b*u - d) / a)
	}
	uFor := func(t float64) float64 {
		if c == 0 {
			return range1.Clamp(0)
		}
		return range1.Clamp((b*t + e) / c)
	}

	// The unconstrained minimum. It only counts when it is feasible; near
	// parallel directions give wild values that fail the range checks, and the
	// boundary cases below cover them.
	if det := a*c - b*b; det > 0 {
		t := (b*e - c*d) / det
		u := (a*e - b*d) / det
		if range0.Contains(t) && range1.Contains(u) {
			try(t, u)
		}
	}
	for _, t := range range0.bounds() {
		try(t, uFor(t))
	}
	for _, u := range range1.bounds() {
		try(tFor(u), u)
	}
	if math.IsInf(best.SqrDistance, 1) {
		// Two parallel unbounded lines.
		u := range1.Clamp(0)
		try(tFor(u), u)
	}

	best.Distance = math.Sqrt(best.SqrDistance)
	return best
}
