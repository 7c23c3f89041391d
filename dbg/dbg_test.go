package dbg

import (
	"path/filepath"
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/proximity/shape"
)

func TestName(t *testing.T) {
	a := &shape.Sphere{Radius: 1}
	b := &shape.Sphere{Radius: 1}
	assert.Equal(t, Name(a), Name(a))
	assert.NotEqual(t, Name(a), Name(b))
	assert.Equal(t, "Ø", Name((*shape.Sphere)(nil)))
	assert.Equal(t, "Ø", Name(nil))
}

func TestDescribe(t *testing.T) {
	sphere := shape.Sphere{Center: r3.Vec{X: 1}, Radius: 2}
	assert.Contains(t, Describe(sphere), "radius 2")
	assert.Contains(t, Describe(&sphere), Name(&sphere))
	assert.Contains(t, Describe(shape.Box{Extent: [3]float64{1, 1, 1}}), "volume 8")
	assert.Contains(t, Describe(r3.Vec{X: 0.5}), "(0.5, 0, 0)")
	// No dedicated description.
	assert.Contains(t, Describe(struct{ Answer int }{42}), "Answer")
}

func TestDraw(t *testing.T) {
	scene := Scene{
		Points:     []r3.Vec{{}, {X: 2, Y: 1}},
		Segments:   []shape.Segment{{P0: r3.Vec{X: -1}, P1: r3.Vec{X: 1, Y: 2}}},
		Triangles:  []shape.Triangle{{V: [3]r3.Vec{{}, {X: 1}, {Y: 1}}}},
		Rectangles: []shape.Rectangle{{Axis: [2]r3.Vec{{X: 1}, {Y: 1}}, Extent: [2]float64{1, 0.5}}},
		Boxes:      []shape.Box{{Axis: [3]r3.Vec{{X: 1}, {Y: 1}, {Z: 1}}, Extent: [3]float64{1, 1, 1}}},
		Spheres:    []shape.Sphere{{Center: r3.Vec{X: 1}, Radius: 2}},
		Highlights: []r3.Vec{{X: 1, Y: 1}},
	}
	path := filepath.Join(t.TempDir(), "scene.png")
	require.NoError(t, scene.Draw(path, 10))

	img, err := gg.LoadPNG(path)
	require.NoError(t, err)
	// The sphere spans x in [-1, 3] and y in [-2, 2].
	assert.Equal(t, 40+2*drawPadding, img.Bounds().Dx())
	assert.Equal(t, 40+2*drawPadding, img.Bounds().Dy())

	assert.Error(t, Scene{}.Draw(path, 10))
}
