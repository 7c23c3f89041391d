package proximity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/proximity/enclose"
	"github.com/osuushi/proximity/num"
)

// Smoke tests. The internals are already tested.
func TestDistance(t *testing.T) {
	rect := Rectangle{Axis: [2]Vec{{X: 1}, {Y: 1}}, Extent: [2]float64{1, 1}}

	d, err := Distance(Vec{Z: 5}, rect)
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	d, err = Distance(rect, Vec{X: 5})
	require.NoError(t, err)
	assert.Equal(t, 4.0, d)

	d, err = Distance(Segment{P0: Vec{Z: 3}, P1: Vec{Z: 1}}, rect)
	require.NoError(t, err)
	assert.InDelta(t, 1, d, 1e-12)

	_, err = Distance(Ray{Origin: Vec{Z: 1}}, rect)
	assert.Error(t, err, "zero direction")

	_, err = Distance(Vec{}, Vec{})
	assert.Error(t, err)
}

func TestEnclose(t *testing.T) {
	points := []Vec{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}}
	box, sphere, err := Enclose(points)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, sphere.Radius, 1e-12)
	assert.InDelta(t, 4, 4*box.Extent[0]*box.Extent[1], 1e-9)
	assert.Equal(t, 0.0, box.Extent[2])

	_, _, err = Enclose(nil)
	assert.Error(t, err)

	rotation := r3.NewRotation(0.7, r3.Unit(Vec{X: 1, Y: 2, Z: 3}))
	var lattice []Vec
	for i := 0; i < 64; i++ {
		lattice = append(lattice, rotation.Rotate(Vec{X: float64(i % 4), Y: float64(i / 4 % 4), Z: float64(i / 16)}))
	}
	box, _, err = Enclose(lattice, enclose.WithArithmetic(num.Floating))
	require.NoError(t, err)
	assert.InDelta(t, 27, box.Volume(), 1e-9)
}
