package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/proximity/dbg"
	"github.com/osuushi/proximity/dcp"
	"github.com/osuushi/proximity/enclose"
	"github.com/osuushi/proximity/num"
	"github.com/osuushi/proximity/shape"
)

// Demo of the enclosing shapes and distance queries. Point input on stdin
// should be newline separated points in the form "x y z". Blank lines and
// lines starting with # are skipped.

var (
	app     = kingpin.New("proximity", "Distance queries and enclosing shapes for 3D points.")
	pngPath = app.Flag("png", "Render the scene, projected onto the XY plane, to this PNG file.").String()
	show    = app.Flag("show", "Print the rendered scene in the terminal (iTerm only).").Bool()
	scale   = app.Flag("scale", "Pixels per unit when rendering.").Default("50").Float64()
	verbose = app.Flag("verbose", "Dump the full result.").Short('v').Bool()

	sphereCmd = app.Command("sphere", "Minimum enclosing sphere of the points on stdin.")

	boxCmd     = app.Command("box", "Minimum volume box around the points on stdin.")
	boxEpsilon = boxCmd.Flag("epsilon", "Merge points closer than this.").Default("0").Float64()
	boxFloat   = boxCmd.Flag("float", "Use floating point predicates for the hull.").Bool()

	rectPointCmd = app.Command("rect-point", "Distance from a point to a rectangle.")
	rectFlag     = rectPointCmd.Flag("rect", `Rectangle as "cx cy cz a0x a0y a0z a1x a1y a1z e0 e1".`).Required().String()
	pointArgs    = rectPointCmd.Arg("point", "X Y Z").Required().Strings()
)

func main() {
	var scene dbg.Scene
	var result interface{}

	switch kingpin.MustParse(app.Parse(os.Args[1:])) {
	case sphereCmd.FullCommand():
		points, err := readPoints(os.Stdin)
		if err != nil {
			log.Fatalf("Could not read points: %v", err)
		}
		builder := enclose.NewSphereBuilder()
		if err := builder.AddAll(points); err != nil {
			log.Fatalf("Could not enclose points: %v", err)
		}
		sphere, ok := builder.Sphere()
		if !ok {
			log.Fatalf("No points on stdin")
		}
		fmt.Printf("Read %d points\n", len(points))
		fmt.Println(dbg.Describe(sphere))
		for _, i := range builder.SupportIndices() {
			fmt.Printf("  support %d: %s\n", i, dbg.Describe(points[i]))
		}
		scene = dbg.Scene{Points: points, Spheres: []shape.Sphere{sphere}, Highlights: builder.Support()}
		result = builder

	case boxCmd.FullCommand():
		points, err := readPoints(os.Stdin)
		if err != nil {
			log.Fatalf("Could not read points: %v", err)
		}
		arithmetic := num.Exact
		if *boxFloat {
			arithmetic = num.Floating
		}
		box, err := enclose.MinimumBox(points, enclose.WithEpsilon(*boxEpsilon), enclose.WithArithmetic(arithmetic))
		if err != nil {
			log.Fatalf("Could not enclose points: %v", err)
		}
		fmt.Printf("Read %d points, %s hull arithmetic\n", len(points), arithmetic)
		fmt.Println(box.Hull)
		fmt.Println(dbg.Describe(box.Box))
		highlights := make([]r3.Vec, len(box.Support))
		for i, j := range box.Support {
			highlights[i] = points[j]
		}
		scene = dbg.Scene{Points: points, Boxes: []shape.Box{box.Box}, Highlights: highlights}
		result = box

	case rectPointCmd.FullCommand():
		rect, err := parseRectangle(*rectFlag)
		if err != nil {
			log.Fatalf("Invalid rectangle: %v", err)
		}
		p, err := parsePoint(strings.Join(*pointArgs, " "))
		if err != nil {
			log.Fatalf("Invalid point: %v", err)
		}
		query := dcp.PointRectangle(p, rect)
		fmt.Printf("distance %g\n", query.Distance)
		fmt.Printf("closest %s at (%g, %g)\n", dbg.Describe(query.Closest[1]), query.Rectangle[0], query.Rectangle[1])
		scene = dbg.Scene{Points: []r3.Vec{p}, Rectangles: []shape.Rectangle{rect}, Highlights: query.Closest[:]}
		result = query
	}

	if *verbose {
		fmt.Println(dbg.Dump(result))
	}
	if *pngPath != "" {
		if err := scene.Draw(*pngPath, *scale); err != nil {
			log.Fatalf("Could not render: %v", err)
		}
	}
	if *show {
		if err := scene.Show(*scale); err != nil {
			log.Fatalf("Could not show: %v", err)
		}
	}
}

func readPoints(in io.Reader) ([]r3.Vec, error) {
	points := []r3.Vec{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Fields(s)
	if len(parts) != n {
		return nil, errors.Errorf("expected %d numbers, got %d in %q", n, len(parts), s)
	}
	values := make([]float64, n)
	for i, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", part)
		}
		values[i] = v
	}
	return values, nil
}

func parsePoint(line string) (r3.Vec, error) {
	v, err := parseFloats(line, 3)
	if err != nil {
		return r3.Vec{}, err
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}

func parseRectangle(s string) (shape.Rectangle, error) {
	v, err := parseFloats(s, 11)
	if err != nil {
		return shape.Rectangle{}, err
	}
	return shape.NewRectangle(
		r3.Vec{X: v[0], Y: v[1], Z: v[2]},
		r3.Vec{X: v[3], Y: v[4], Z: v[5]},
		r3.Vec{X: v[6], Y: v[7], Z: v[8]},
		v[9], v[10],
	)
}
