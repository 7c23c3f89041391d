package dbg

import (
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/proximity/shape"
)

// Padding around the scene, in pixels
const drawPadding = 20

// Scene is a set of shapes to render, seen from above: everything is
// projected onto the XY plane.
type Scene struct {
	Points     []r3.Vec
	Segments   []shape.Segment
	Triangles  []shape.Triangle
	Rectangles []shape.Rectangle
	Boxes      []shape.Box
	Spheres    []shape.Sphere
	// Drawn last and larger, for closest points and support sets.
	Highlights []r3.Vec
}

type bounds struct {
	minX, minY, maxX, maxY float64
}

func (b *bounds) add(p r3.Vec, radius float64) {
	b.minX = math.Min(b.minX, p.X-radius)
	b.minY = math.Min(b.minY, p.Y-radius)
	b.maxX = math.Max(b.maxX, p.X+radius)
	b.maxY = math.Max(b.maxY, p.Y+radius)
}

func (s Scene) bounds() (bounds, bool) {
	b := bounds{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	for _, p := range s.Points {
		b.add(p, 0)
	}
	for _, p := range s.Highlights {
		b.add(p, 0)
	}
	for _, segment := range s.Segments {
		b.add(segment.P0, 0)
		b.add(segment.P1, 0)
	}
	for _, tri := range s.Triangles {
		for _, p := range tri.V {
			b.add(p, 0)
		}
	}
	for _, rect := range s.Rectangles {
		for _, p := range rect.Corners() {
			b.add(p, 0)
		}
	}
	for _, box := range s.Boxes {
		for _, p := range box.Corners() {
			b.add(p, 0)
		}
	}
	for _, sphere := range s.Spheres {
		b.add(sphere.Center, sphere.Radius)
	}
	return b, !math.IsInf(b.minX, 1)
}

// Draw renders the scene to a PNG at path. scale is pixels per unit.
func (s Scene) Draw(path string, scale float64) error {
	b, ok := s.bounds()
	if !ok {
		return errors.New("dbg: nothing to draw")
	}

	// Set up the context
	width := int(scale*(b.maxX-b.minX)) + drawPadding*2
	height := int(scale*(b.maxY-b.minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-b.minX, -b.minY)

	// Line widths are in scaled units, so undo the scale.
	c.SetLineWidth(2 / scale)

	polygon := func(points ...r3.Vec) {
		c.MoveTo(points[0].X, points[0].Y)
		for _, p := range points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
	}

	for _, sphere := range s.Spheres {
		c.DrawCircle(sphere.Center.X, sphere.Center.Y, sphere.Radius)
		c.SetRGBA(0.5, 0, 0.5, 0.3)
		c.FillPreserve()
		c.SetRGB(1, 0, 1)
		c.Stroke()
	}

	for _, box := range s.Boxes {
		corners := box.Corners()
		// Corners differ in one axis when their indices differ in one bit.
		for i := range corners {
			for axis := 0; axis < 3; axis++ {
				if j := i | 1<<axis; j != i {
					c.MoveTo(corners[i].X, corners[i].Y)
					c.LineTo(corners[j].X, corners[j].Y)
				}
			}
		}
		c.SetRGB(1, 0.5, 0)
		c.Stroke()
	}

	for _, rect := range s.Rectangles {
		corners := rect.Corners()
		polygon(corners[:]...)
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	for _, tri := range s.Triangles {
		polygon(tri.V[:]...)
		c.SetRGBA(0, 0, 0.5, 0.5)
		c.FillPreserve()
		c.SetRGB(0.3, 0.3, 1)
		c.Stroke()
	}

	c.SetRGB(1, 1, 0)
	for _, segment := range s.Segments {
		c.DrawLine(segment.P0.X, segment.P0.Y, segment.P1.X, segment.P1.Y)
		c.Stroke()
	}

	c.SetRGB(1, 1, 1)
	for _, p := range s.Points {
		c.DrawCircle(p.X, p.Y, 2/scale)
		c.Fill()
	}
	c.SetRGB(1, 0, 0)
	for _, p := range s.Highlights {
		c.DrawCircle(p.X, p.Y, 4/scale)
		c.Fill()
	}

	return c.SavePNG(path)
}

// Show draws the scene to a temporary file and prints it in the terminal
// (iTerm only).
func (s Scene) Show(scale float64) error {
	path := filepath.Join(os.TempDir(), "proximity_scene.png")
	if err := s.Draw(path, scale); err != nil {
		return err
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}
