// Package render turns a mesh and view parameters into an ordered list of
// flat-shaded 2D triangles (painter's algorithm), and draws such lists into
// a framebuffer or a terminal.
package render

import (
	"cmp"
	"math"
	"slices"

	"github.com/taigrr/objsvg/pkg/math3d"
	"github.com/taigrr/objsvg/pkg/models"
)

// MeshSource is the geometry a Renderer consumes.
// models.Mesh implements it.
type MeshSource interface {
	VertexCount() int
	TriangleCount() int
	GetVertex(i int) math3d.Vec3
	GetFace(i int) [3]int
}

// Renderer runs the transform, projection, shading and depth-sort stages.
// It holds only configuration and is safe to reuse; every call computes its
// output from scratch.
type Renderer struct {
	cfg Config
}

// NewRenderer creates a renderer with the given constants.
func NewRenderer(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Config returns the renderer's constants.
func (r *Renderer) Config() Config {
	return r.cfg
}

// TransformVertex rotates v by yaw (around Y) and then pitch (around X),
// both in degrees. The order is fixed.
func TransformVertex(v math3d.Vec3, yaw, pitch float64) math3d.Vec3 {
	return v.RotateY(math3d.Radians(yaw)).RotateX(math3d.Radians(pitch))
}

// TransformVertices rotates every vertex of mesh by the view's angles.
func TransformVertices(mesh MeshSource, view View) []math3d.Vec3 {
	out := make([]math3d.Vec3, mesh.VertexCount())
	for i := range out {
		out[i] = TransformVertex(mesh.GetVertex(i), view.Yaw, view.Pitch)
	}
	return out
}

// Project maps a rotated vertex to viewport coordinates. Z is discarded.
func (r *Renderer) Project(v math3d.Vec3, zoom float64) math3d.Vec2 {
	scale := r.cfg.BaseRadius * zoom
	return math3d.V2(r.cfg.Center+v.X*scale, r.cfg.Center+v.Y*scale)
}

// Brightness clamps the lit intensity of a unit normal into
// [MinBrightness, MaxBrightness]. An unusable (NaN) intensity counts as
// fully unlit.
func (r *Renderer) Brightness(normal math3d.Vec3) float64 {
	b := normal.Dot(r.cfg.LightDir)
	if math.IsNaN(b) {
		b = 0
	}
	return math.Max(r.cfg.MinBrightness, math.Min(r.cfg.MaxBrightness, b))
}

// Shade converts a brightness into a palette color.
func (r *Renderer) Shade(brightness float64) RGB {
	p := r.cfg.Palette
	return RGB{
		R: int(math.Floor(p.Base[0] + brightness*p.Gain[0])),
		G: int(math.Floor(p.Base[1] + brightness*p.Gain[1])),
		B: int(math.Floor(p.Base[2] + brightness*p.Gain[2])),
	}
}

// ShadeFace projects and shades one face against already transformed
// vertices. It returns false when any index falls outside transformed; such
// faces are skipped rather than treated as errors.
func (r *Renderer) ShadeFace(transformed []math3d.Vec3, index int, face [3]int, zoom float64) (RenderedFace, bool) {
	var v [3]math3d.Vec3
	for i, idx := range face {
		if idx < 0 || idx >= len(transformed) {
			return RenderedFace{}, false
		}
		v[i] = transformed[idx]
	}

	// Flat shading: one normal per face from its edges, right-hand rule
	normal := v[1].Sub(v[0]).Cross(v[2].Sub(v[0])).Normalize()
	brightness := r.Brightness(normal)

	return RenderedFace{
		Index:      index,
		Points:     [3]math3d.Vec2{r.Project(v[0], zoom), r.Project(v[1], zoom), r.Project(v[2], zoom)},
		Normal:     normal,
		Brightness: brightness,
		Color:      r.Shade(brightness),
		Depth:      math3d.Centroid(v[0], v[1], v[2]).Z,
	}, true
}

// ShadeFaces projects and shades every face of mesh in source order,
// dropping faces with out-of-range indices.
func (r *Renderer) ShadeFaces(mesh MeshSource, transformed []math3d.Vec3, zoom float64) []RenderedFace {
	faces := make([]RenderedFace, 0, mesh.TriangleCount())
	for i := 0; i < mesh.TriangleCount(); i++ {
		if f, ok := r.ShadeFace(transformed, i, mesh.GetFace(i), zoom); ok {
			faces = append(faces, f)
		}
	}
	return faces
}

// SortByDepth orders faces back to front (ascending depth) in place.
// The sort is stable, so equal depths keep source order. NaN depths sort
// first.
func SortByDepth(faces []RenderedFace) {
	slices.SortStableFunc(faces, func(a, b RenderedFace) int {
		return cmp.Compare(a.Depth, b.Depth)
	})
}

// Render runs the full pipeline on mesh, which should already be
// normalized. Later faces in the result are drawn on top.
func (r *Renderer) Render(mesh MeshSource, view View) []RenderedFace {
	transformed := TransformVertices(mesh, view)
	faces := r.ShadeFaces(mesh, transformed, view.Zoom)
	SortByDepth(faces)
	return faces
}

// RenderMesh renders an already normalized mesh with DefaultConfig.
func RenderMesh(mesh MeshSource, view View) []RenderedFace {
	return NewRenderer(DefaultConfig()).Render(mesh, view)
}

// RenderText parses and normalizes mesh text, then renders it with
// DefaultConfig.
func RenderText(text string, view View) []RenderedFace {
	return RenderMesh(models.ParseOBJ(text).Normalized(), view)
}
