package enclose

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"gonum.org/v1/gonum/spatial/r3"
)

// This file turns the svg fixtures into point clouds. Every polygon in the
// file is one layer: its points are lifted to the height in its data-z
// attribute. Polygons are only used as point lists, so they need not be
// closed or convex. If anything goes wrong, it exits.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []r3.Vec {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}

	var points []r3.Vec
	for _, polygonEl := range polygons {
		z, err := strconv.ParseFloat(polygonEl.Attributes["data-z"], 64)
		if err != nil {
			log.Fatalf("Invalid data-z value in fixture %q: %v", name, err)
		}

		for _, pointString := range strings.Split(polygonEl.Attributes["points"], " ") {
			if pointString == "" {
				continue
			}

			pointStrings := strings.Split(pointString, ",")
			if len(pointStrings) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			x, err := strconv.ParseFloat(pointStrings[0], 64)
			if err != nil {
				log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
			}
			y, err := strconv.ParseFloat(pointStrings[1], 64)
			if err != nil {
				log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
			}
			points = append(points, r3.Vec{X: x, Y: y, Z: z})
		}
	}
	return points
}
