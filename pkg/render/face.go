package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/taigrr/objsvg/pkg/math3d"
)

// RGB is a flat face color. Channels come straight from the palette formula
// and are not clamped.
type RGB struct {
	R, G, B int
}

// String returns the CSS form "rgb(r,g,b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// RGBA converts to an opaque color.RGBA, clamping each channel to [0, 255].
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{clampChannel(c.R), clampChannel(c.G), clampChannel(c.B), 255}
}

func clampChannel(v int) uint8 {
	return uint8(max(0, min(255, v)))
}

// RenderedFace is one projected, shaded triangle ready to draw.
type RenderedFace struct {
	Index      int            // position of the source face in the mesh
	Points     [3]math3d.Vec2 // viewport coordinates
	Normal     math3d.Vec3    // unit normal in rotated space, zero when degenerate
	Brightness float64
	Color      RGB
	Depth      float64 // rotated Z of the centroid; larger is closer
}

// PointsString formats the points as "x1,y1 x2,y2 x3,y3" with one decimal,
// the form used by SVG polygon points.
func (f RenderedFace) PointsString() string {
	var b strings.Builder
	for i, p := range f.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(FormatFixed(p.X, 1))
		b.WriteByte(',')
		b.WriteString(FormatFixed(p.Y, 1))
	}
	return b.String()
}
