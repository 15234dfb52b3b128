package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/taigrr/objsvg/pkg/math3d"
)

// Framebuffer is a 2D array of pixels that rendered faces are painted into
// for PNG export and terminal preview.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []color.RGBA // Row-major pixel data
}

// NewFramebuffer creates a new framebuffer with the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]color.RGBA, width*height),
	}
}

// Clear fills the framebuffer with a solid color.
func (fb *Framebuffer) Clear(c color.RGBA) {
	for i := range fb.Pixels {
		fb.Pixels[i] = c
	}
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// BlendPixel alpha-blends c over the pixel at (x, y).
func (fb *Framebuffer) BlendPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	dst := &fb.Pixels[y*fb.Width+x]
	a := float64(c.A) / 255
	dst.R = uint8(float64(c.R)*a + float64(dst.R)*(1-a))
	dst.G = uint8(float64(c.G)*a + float64(dst.G)*(1-a))
	dst.B = uint8(float64(c.B)*a + float64(dst.B)*(1-a))
	dst.A = 255
}

// GetPixel returns the color at (x, y).
// Returns transparent black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) color.RGBA {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return color.RGBA{}
	}
	return fb.Pixels[y*fb.Width+x]
}

// DrawLine blends a line from (x0, y0) to (x1, y1). Only the part inside
// the framebuffer is drawn.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c color.RGBA) {
	fb.DrawSegment(math3d.V2(float64(x0), float64(y0)), math3d.V2(float64(x1), float64(y1)), c)
}

// DrawSegment blends the part of segment a-b that lies inside the
// framebuffer. Segments with non-finite endpoints are skipped.
func (fb *Framebuffer) DrawSegment(a, b math3d.Vec2, c color.RGBA) {
	if !finite2(a) || !finite2(b) {
		return
	}
	w, h := float64(fb.Width-1), float64(fb.Height-1)
	x0, y0, x1, y1, ok := clipSegment(a.X, a.Y, b.X, b.Y, w, h)
	if !ok {
		return
	}
	// Clipping very large coordinates loses precision; keep the ends in bounds
	fb.bresenham(
		int(math.Round(clamp(x0, 0, w))), int(math.Round(clamp(y0, 0, h))),
		int(math.Round(clamp(x1, 0, w))), int(math.Round(clamp(y1, 0, h))),
		c,
	)
}

// clipSegment clips a segment to the rectangle [0,xmax]×[0,ymax] using the
// Liang-Barsky algorithm. ok is false when nothing of it is inside.
func clipSegment(x0, y0, x1, y1, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx, dy := x1-x0, y1-y0
	if math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return 0, 0, 0, 0, false
	}
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, x0},
		{dx, xmax - x0},
		{-dy, y0},
		{dy, ymax - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			// Parallel to this edge: entirely outside or irrelevant
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}

	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// bresenham blends a line between two in-bounds points.
func (fb *Framebuffer) bresenham(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.BlendPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// FillTriangle paints a solid triangle. Either winding is filled; there is
// no depth test, so later calls overwrite earlier ones.
func (fb *Framebuffer) FillTriangle(p0, p1, p2 math3d.Vec2, c color.RGBA) {
	for _, p := range [3]math3d.Vec2{p0, p1, p2} {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return
		}
	}
	// Zero-area triangles cover no pixel centers
	if (p1.X-p0.X)*(p2.Y-p0.Y)-(p1.Y-p0.Y)*(p2.X-p0.X) == 0 {
		return
	}

	// Bounding box clamped to the framebuffer before any int conversion
	w, h := float64(fb.Width), float64(fb.Height)
	minX := int(clamp(math.Floor(min3(p0.X, p1.X, p2.X)), 0, w))
	maxX := int(clamp(math.Ceil(max3(p0.X, p1.X, p2.X)), -1, w-1))
	minY := int(clamp(math.Floor(min3(p0.Y, p1.Y, p2.Y)), 0, h))
	maxY := int(clamp(math.Ceil(max3(p0.Y, p1.Y, p2.Y)), -1, h-1))

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			bc := barycentric(p0.X, p0.Y, p1.X, p1.Y, p2.X, p2.Y, px, py)
			if bc.X < 0 || bc.Y < 0 || bc.Z < 0 {
				continue
			}
			fb.SetPixel(x, y, c)
		}
	}
}

// DrawFaces paints faces in slice order (painter's algorithm). The square
// viewport of side viewportSize is scaled to fit the framebuffer and
// centered. A stroke with non-zero alpha is blended over each face's edges.
func (fb *Framebuffer) DrawFaces(faces []RenderedFace, viewportSize float64, stroke color.RGBA) {
	if viewportSize <= 0 || len(faces) == 0 {
		return
	}

	w, h := float64(fb.Width), float64(fb.Height)
	scale := math.Min(w, h) / viewportSize
	offset := math3d.V2((w-viewportSize*scale)/2, (h-viewportSize*scale)/2)

	for _, f := range faces {
		var p [3]math3d.Vec2
		for i, pt := range f.Points {
			p[i] = pt.Scale(scale).Add(offset)
		}
		fb.FillTriangle(p[0], p[1], p[2], f.Color.RGBA())

		if stroke.A == 0 {
			continue
		}
		for i := range p {
			fb.DrawSegment(p[i], p[(i+1)%3], stroke)
		}
	}
}

func finite2(p math3d.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// barycentric calculates barycentric coordinates for point (px, py) in triangle.
func barycentric(x0, y0, x1, y1, x2, y2, px, py float64) math3d.Vec3 {
	v0x, v0y := x2-x0, y2-y0
	v1x, v1y := x1-x0, y1-y0
	v2x, v2y := px-x0, py-y0

	dot00 := v0x*v0x + v0y*v0y
	dot01 := v0x*v1x + v0y*v1y
	dot02 := v0x*v2x + v0y*v2y
	dot11 := v1x*v1x + v1y*v1y
	dot12 := v1x*v2x + v1y*v2y

	invDenom := 1.0 / (dot00*dot11 - dot01*dot01)
	u := (dot11*dot02 - dot01*dot12) * invDenom
	v := (dot00*dot12 - dot01*dot02) * invDenom

	return math3d.V3(1-u-v, v, u)
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, fb.Pixels[y*fb.Width+x])
		}
	}
	return img
}

// EncodePNG writes the framebuffer as a PNG image.
func (fb *Framebuffer) EncodePNG(w io.Writer) error {
	return png.Encode(w, fb.ToImage())
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fb.EncodePNG(f)
}
