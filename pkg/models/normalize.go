package models

import (
	"math"

	"github.com/taigrr/objsvg/pkg/math3d"
)

// Bounds returns the component-wise minimum and maximum of vs.
// NaN coordinates propagate into the result.
func Bounds(vs []math3d.Vec3) (min, max math3d.Vec3) {
	if len(vs) == 0 {
		return math3d.Zero3(), math3d.Zero3()
	}

	min, max = vs[0], vs[0]
	for _, v := range vs[1:] {
		min = min.Min(v)
		max = max.Max(v)
	}
	return min, max
}

// NormalizeVertices recenters and rescales vs into a cube of side 2 centered
// at the origin. One scale factor (the largest bounding-box extent) is used
// for all axes, so proportions are preserved.
//
// The result is always a new slice. When the extent is zero (all vertices
// coincide) or not a number, the positions are returned unchanged.
func NormalizeVertices(vs []math3d.Vec3) []math3d.Vec3 {
	out := make([]math3d.Vec3, len(vs))
	if len(vs) == 0 {
		return out
	}

	min, max := Bounds(vs)
	center := min.Add(max).Scale(0.5)
	size := max.Sub(min).MaxComponent()

	if size == 0 || math.IsNaN(size) {
		copy(out, vs)
		return out
	}

	for i, v := range vs {
		out[i] = v.Sub(center).Div(size).Scale(2)
	}
	return out
}
