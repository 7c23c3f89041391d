package num

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestRat(t *testing.T) {
	a := NewRat(0.1)
	b := NewRat(0.2)
	// 0.1 and 0.2 are converted exactly, so their sum is not the float 0.3.
	assert.NotEqual(t, 0, a.Add(b).Cmp(NewRat(0.3)))
	assert.Equal(t, 0, a.Add(b).Sub(b).Cmp(a))
	assert.Equal(t, 0.5, NewRat(1).Quo(NewRat(2)).Float64())
	assert.Equal(t, -1, NewRat(3).Neg().Sign())
	assert.Equal(t, "3/2", NewRat(1.5).String())

	var zero Rat
	assert.Equal(t, 0, zero.Sign())
	assert.Equal(t, 0, zero.Add(NewRat(2)).Cmp(NewRat(2)))
	assert.InDelta(t, math.Sqrt2, NewRat(2).Sqrt().Float64(), 1e-15)

	assert.Panics(t, func() { NewRat(math.NaN()) })
	assert.Panics(t, func() { NewRat(math.Inf(1)) })
}

func TestFloat(t *testing.T) {
	assert.Equal(t, Float(0.5), Of[Float](1.0).Quo(Of[Float](2.0)))
	assert.Equal(t, 1, Float(2).Cmp(1))
	assert.Equal(t, 0, Float(-0.0).Sign())
	assert.Equal(t, "exact", Exact.String())
	assert.Equal(t, "floating", Floating.String())
	assert.Equal(t, "Arithmetic(5)", Arithmetic(5).String())
}

func TestOrient(t *testing.T) {
	a := VecOf[Rat](r3.Vec{})
	b := VecOf[Rat](r3.Vec{X: 1})
	c := VecOf[Rat](r3.Vec{Y: 1})
	assert.Equal(t, 1, Orient(a, b, c, VecOf[Rat](r3.Vec{Z: 1})))
	assert.Equal(t, -1, Orient(a, b, c, VecOf[Rat](r3.Vec{Z: -1})))
	assert.Equal(t, 0, Orient(a, b, c, VecOf[Rat](r3.Vec{X: 3, Y: -7})))

	// Displacements far below the scale of the coordinates still count.
	far := r3.Vec{X: 1e8, Y: 1e8, Z: 0}
	p0, p1, p2 := r3.Vec{X: 0.1, Y: 0.1}, r3.Vec{X: 1e8 + 0.1, Y: 0.1}, r3.Vec{X: 0.1, Y: 1e8 + 0.1}
	q := r3.Add(far, r3.Vec{Z: 1e-300})
	assert.Equal(t, 1, Orient(VecOf[Rat](p0), VecOf[Rat](p1), VecOf[Rat](p2), VecOf[Rat](q)))

	assert.True(t, Collinear(a, b, VecOf[Rat](r3.Vec{X: -4})))
	assert.False(t, Collinear(a, b, c))
	assert.Equal(t, r3.Vec{X: 1}, b.R3())
}

func TestHelpers(t *testing.T) {
	assert.True(t, Equal(1, 1+1e-12))
	assert.False(t, Equal(1, 1+1e-6))
	assert.True(t, Equal(1e12, 1e12+1))
	assert.Equal(t, 2.0, Clamp(5.0, -2, 2))
	assert.Equal(t, -2.0, Clamp(-5.0, -2, 2))
	assert.Equal(t, 0.5, Clamp(0.5, -2, 2))
	assert.Equal(t, 3, CircularIndex(-1, 4))
	assert.Equal(t, 1, CircularIndex(5, 4))
	assert.True(t, Finite(1.0, -2, 0))
	assert.False(t, Finite(1.0, math.NaN()))
	assert.False(t, Finite(float32(math.Inf(-1))))
}
