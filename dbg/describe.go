package dbg

import (
	"fmt"
	"reflect"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/osuushi/proximity/shape"
)

func vec(v r3.Vec) string {
	return fmt.Sprintf("(%.6g, %.6g, %.6g)", v.X, v.Y, v.Z)
}

// Describe is a one line, colored summary of a shape. Pointers are prefixed
// with their readable name. Anything else falls back to Dump.
func Describe(obj interface{}) string {
	if obj != nil {
		if v := reflect.ValueOf(obj); v.Kind() == reflect.Ptr && !v.IsNil() {
			return fmt.Sprintf("%s: %s", aurora.Yellow(Name(obj)), Describe(v.Elem().Interface()))
		}
	}

	switch s := obj.(type) {
	case r3.Vec:
		return fmt.Sprintf("%s %s", aurora.Green("point"), vec(s))
	case shape.Segment:
		return fmt.Sprintf("%s %s to %s", aurora.Green("segment"), vec(s.P0), vec(s.P1))
	case shape.Line:
		return fmt.Sprintf("%s through %s along %s", aurora.Green("line"), vec(s.Origin), vec(s.Direction))
	case shape.Ray:
		return fmt.Sprintf("%s from %s along %s", aurora.Green("ray"), vec(s.Origin), vec(s.Direction))
	case shape.Triangle:
		return fmt.Sprintf("%s %s %s %s", aurora.Cyan("triangle"), vec(s.V[0]), vec(s.V[1]), vec(s.V[2]))
	case shape.Rectangle:
		return fmt.Sprintf("%s at %s, axes %s %s, extents %.6g x %.6g",
			aurora.Cyan("rectangle"), vec(s.Center), vec(s.Axis[0]), vec(s.Axis[1]), s.Extent[0], s.Extent[1])
	case shape.Box:
		return fmt.Sprintf("%s at %s, axes %s %s %s, extents %.6g x %.6g x %.6g, volume %.6g",
			aurora.Red("box"), vec(s.Center), vec(s.Axis[0]), vec(s.Axis[1]), vec(s.Axis[2]),
			s.Extent[0], s.Extent[1], s.Extent[2], s.Volume())
	case shape.Sphere:
		return fmt.Sprintf("%s at %s, radius %.6g", aurora.Red("sphere"), vec(s.Center), s.Radius)
	}
	return Dump(obj)
}

// Dump pretty prints any value with its field names, for results that have no
// dedicated description.
func Dump(obj interface{}) string {
	return pretty.Sprint(obj)
}
