package dcp

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/proximity/shape"
)

const delta = 1e-9

func unitRectangle() shape.Rectangle {
	return shape.Rectangle{
		Axis:   [2]r3.Vec{{X: 1}, {Y: 1}},
		Extent: [2]float64{1, 1},
	}
}

func randomVec(rng *rand.Rand, scale float64) r3.Vec {
	return r3.Vec{
		X: (rng.Float64()*2 - 1) * scale,
		Y: (rng.Float64()*2 - 1) * scale,
		Z: (rng.Float64()*2 - 1) * scale,
	}
}

func randomRigid(rng *rand.Rand) shape.Rigid {
	axis := r3.Unit(r3.Add(randomVec(rng, 1), r3.Vec{X: 1e-3}))
	return shape.Rigid{
		Rotation:    r3.NewRotation(rng.Float64()*2*math.Pi, axis),
		Translation: randomVec(rng, 10),
	}
}

func randomRectangle(t *testing.T, rng *rand.Rand) shape.Rectangle {
	base := shape.Rectangle{
		Axis:   [2]r3.Vec{{X: 1}, {Y: 1}},
		Extent: [2]float64{0.2 + rng.Float64()*1.8, 0.2 + rng.Float64()*1.8},
	}
	m := randomRigid(rng)
	m.Translation = randomVec(rng, 2)
	rect := m.Rectangle(base)
	require.NoError(t, rect.Validate())
	return rect
}

func randomTriangle(t *testing.T, rng *rand.Rand) shape.Triangle {
	for {
		tri := shape.Triangle{V: [3]r3.Vec{randomVec(rng, 3), randomVec(rng, 3), randomVec(rng, 3)}}
		if r3.Norm(tri.Normal()) > 0.1 {
			require.NoError(t, tri.Validate())
			return tri
		}
	}
}

// Grids of sample points, used to bound the true distance from above.
func sampleRectangle(rect shape.Rectangle, n int) []r3.Vec {
	var samples []r3.Vec
	for i := 0; i <= n; i++ {
		for j := 0; j <= n; j++ {
			s0 := rect.Extent[0] * (2*float64(i)/float64(n) - 1)
			s1 := rect.Extent[1] * (2*float64(j)/float64(n) - 1)
			samples = append(samples, rect.Point(s0, s1))
		}
	}
	return samples
}

func sampleTriangle(tri shape.Triangle, n int) []r3.Vec {
	var samples []r3.Vec
	for i := 0; i <= n; i++ {
		for j := 0; i+j <= n; j++ {
			b1 := float64(i) / float64(n)
			b2 := float64(j) / float64(n)
			samples = append(samples, tri.Point([3]float64{1 - b1 - b2, b1, b2}))
		}
	}
	return samples
}

func sampleSegment(segment shape.Segment, n int) []r3.Vec {
	var samples []r3.Vec
	for i := 0; i <= n; i++ {
		samples = append(samples, segment.Point(float64(i)/float64(n)))
	}
	return samples
}

func minSampledDistance(a, b []r3.Vec) float64 {
	best := math.Inf(1)
	for _, p := range a {
		for _, q := range b {
			best = math.Min(best, r3.Norm(r3.Sub(p, q)))
		}
	}
	return best
}

func assertVecInDelta(t *testing.T, expected, actual r3.Vec, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, 0, r3.Norm(r3.Sub(expected, actual)), delta, msgAndArgs...)
}
