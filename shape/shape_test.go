package shape

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestValidate(t *testing.T) {
	x, y := r3.Vec{X: 1}, r3.Vec{Y: 1}

	for _, tc := range []struct {
		name  string
		err   error
		valid bool
	}{
		{"rectangle", second(NewRectangle(r3.Vec{}, x, y, 1, 2)), true},
		{"rectangle with short axis", second(NewRectangle(r3.Vec{}, r3.Vec{X: 0.5}, y, 1, 2)), false},
		{"rectangle with skewed axes", second(NewRectangle(r3.Vec{}, x, r3.Unit(r3.Vec{X: 1, Y: 1}), 1, 2)), false},
		{"rectangle with zero extent", second(NewRectangle(r3.Vec{}, x, y, 0, 2)), false},
		{"rectangle with infinite extent", second(NewRectangle(r3.Vec{}, x, y, 1, math.Inf(1))), false},
		{"rectangle with NaN center", second(NewRectangle(r3.Vec{Z: math.NaN()}, x, y, 1, 1)), false},
		{"line", second(NewLine(r3.Vec{}, r3.Vec{X: 3})), true},
		{"line without direction", second(NewLine(r3.Vec{}, r3.Vec{})), false},
		{"ray", second(NewRay(r3.Vec{}, y)), true},
		{"ray from infinity", second(NewRay(r3.Vec{X: math.Inf(1)}, y)), false},
		{"segment", second(NewSegment(r3.Vec{}, x)), true},
		{"segment of one point", second(NewSegment(x, x)), false},
		{"triangle", second(NewTriangle(r3.Vec{}, x, y)), true},
		{"collinear triangle", second(NewTriangle(r3.Vec{}, x, r3.Vec{X: 2})), false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if tc.valid {
				assert.NoError(t, tc.err)
			} else {
				assert.Error(t, tc.err)
			}
		})
	}
}

func second(_ interface{}, err error) error {
	return err
}

func TestRectangle(t *testing.T) {
	rect, err := NewRectangle(r3.Vec{Z: 1}, r3.Vec{X: 1}, r3.Vec{Y: 1}, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, r3.Vec{Z: 1}, rect.Normal())
	assert.Equal(t, [4]r3.Vec{
		{X: -2, Y: -1, Z: 1},
		{X: 2, Y: -1, Z: 1},
		{X: 2, Y: 1, Z: 1},
		{X: -2, Y: 1, Z: 1},
	}, rect.Corners())

	edges := rect.Edges()
	assert.Equal(t, rect.Corners()[3], edges[3].P0)
	assert.Equal(t, rect.Corners()[0], edges[3].P1)

	s0, s1 := rect.Coordinates(r3.Vec{X: 5, Y: -0.5, Z: 9})
	assert.Equal(t, 5.0, s0)
	assert.Equal(t, -0.5, s1)
	assert.Equal(t, r3.Vec{X: 5, Y: -0.5, Z: 1}, rect.Point(s0, s1))
}

func TestLinearPrimitives(t *testing.T) {
	segment := Segment{P0: r3.Vec{X: 1}, P1: r3.Vec{X: 3, Y: 2}}
	assert.Equal(t, segment.P0, segment.Point(0))
	assert.Equal(t, segment.P1, segment.Point(1))
	assert.Equal(t, r3.Vec{X: 2, Y: 1}, segment.Point(0.5))
	assert.Equal(t, segment.P0, segment.Origin())
	assert.InDelta(t, math.Sqrt(8), segment.Length(), 1e-15)

	assert.Equal(t, r3.Vec{X: -1, Y: 2}, Line{Origin: r3.Vec{X: 1}, Direction: r3.Vec{X: 1, Y: -1}}.Point(-2))
	assert.Equal(t, r3.Vec{Z: 3}, Ray{Direction: r3.Vec{Z: 1}}.Point(3))
}

func TestTriangle(t *testing.T) {
	tri := Triangle{V: [3]r3.Vec{{}, {X: 2}, {Y: 2}}}
	assert.Equal(t, r3.Vec{Z: 4}, tri.Normal())
	assert.Equal(t, r3.Vec{X: 0.5, Y: 0.5}, tri.Point([3]float64{0.5, 0.25, 0.25}))
	assert.Equal(t, Segment{P0: r3.Vec{Y: 2}, P1: r3.Vec{}}, tri.Edge(2))
}

func TestBox(t *testing.T) {
	box := AxisAligned(r3.Box{Min: r3.Vec{X: -1, Y: 0, Z: 2}, Max: r3.Vec{X: 1, Y: 4, Z: 3}})
	assert.Equal(t, r3.Vec{Y: 2, Z: 2.5}, box.Center)
	assert.Equal(t, [3]float64{1, 2, 0.5}, box.Extent)
	assert.Equal(t, 8.0, box.Volume())

	assert.True(t, box.Contains(r3.Vec{X: 1, Y: 4, Z: 3}, 0))
	assert.False(t, box.Contains(r3.Vec{X: 1.1}, 0))
	assert.True(t, box.Contains(r3.Vec{X: 1.05, Y: 2, Z: 2.5}, 0.1))

	for _, corner := range box.Corners() {
		c := box.Coordinates(corner)
		for axis := 0; axis < 3; axis++ {
			assert.Equal(t, box.Extent[axis], math.Abs(c[axis]))
		}
	}
}

func TestSphere(t *testing.T) {
	sphere := Sphere{Center: r3.Vec{X: 1}, Radius: 2}
	assert.True(t, sphere.Contains(r3.Vec{X: 3}, 0))
	assert.False(t, sphere.Contains(r3.Vec{X: 3.1}, 0))
	assert.True(t, sphere.Contains(r3.Vec{X: 3.1}, 0.2))
	assert.InDelta(t, 32*math.Pi/3, sphere.Volume(), 1e-12)
}

func TestFrames(t *testing.T) {
	for _, u := range []r3.Vec{{X: 1}, {Y: 1}, {Z: -1}, r3.Unit(r3.Vec{X: 1, Y: 2, Z: 3})} {
		v, w := CompleteBasis(u)
		assert.InDelta(t, 1, r3.Norm(v), 1e-15)
		assert.InDelta(t, 1, r3.Norm(w), 1e-15)
		assert.InDelta(t, 0, r3.Dot(u, v), 1e-15)
		assert.InDelta(t, 0, r3.Dot(u, w), 1e-15)
		// Right handed.
		assert.InDelta(t, 1, r3.Dot(r3.Cross(u, v), w), 1e-15)
	}

	m := Rigid{Rotation: r3.NewRotation(math.Pi/2, r3.Vec{Z: 1}), Translation: r3.Vec{Z: 1}}
	rect := m.Rectangle(Rectangle{Axis: [2]r3.Vec{{X: 1}, {Y: 1}}, Extent: [2]float64{1, 1}})
	assert.NoError(t, rect.Validate())
	assert.InDelta(t, 0, r3.Norm(r3.Sub(rect.Axis[0], r3.Vec{Y: 1})), 1e-15)
	assert.InDelta(t, 0, r3.Norm(r3.Sub(rect.Center, r3.Vec{Z: 1})), 1e-15)

	segment := m.Segment(Segment{P0: r3.Vec{X: 1}, P1: r3.Vec{X: 2}})
	assert.InDelta(t, 1, segment.Length(), 1e-15)
	tri := m.Triangle(Triangle{V: [3]r3.Vec{{}, {X: 1}, {Y: 1}}})
	assert.InDelta(t, 0, r3.Norm(r3.Sub(tri.Normal(), r3.Vec{Z: 1})), 1e-15)
}
