package render

import (
	"slices"

	"github.com/taigrr/objsvg/pkg/math3d"
	"github.com/taigrr/objsvg/pkg/models"
)

// Scene memoizes the pipeline for interactive use. Mesh text is parsed and
// normalized only when it changes, vertices are re-rotated only when yaw or
// pitch change, and faces are re-projected when the rotation or zoom
// change. Results always equal a fresh Renderer.Render call.
//
// A Scene is not safe for concurrent use.
type Scene struct {
	renderer *Renderer

	text     string
	fromText bool
	source   *models.Mesh // parsed, before normalization
	mesh     *models.Mesh // normalized
	view     View

	// Cached stage outputs (computed on demand)
	transformed    []math3d.Vec3
	faces          []RenderedFace
	transformDirty bool
	facesDirty     bool
}

// NewScene creates an empty scene with the given constants and DefaultView.
func NewScene(cfg Config) *Scene {
	s := &Scene{
		renderer:       NewRenderer(cfg),
		view:           DefaultView(),
		transformDirty: true,
		facesDirty:     true,
	}
	s.setMesh(models.NewMesh(""))
	return s
}

// SetText replaces the mesh with the parsed, normalized form of text.
// Setting the same text again keeps the cached mesh.
func (s *Scene) SetText(text string) {
	if s.fromText && text == s.text {
		return
	}
	s.text, s.fromText = text, true
	s.setMesh(models.ParseOBJ(text))
}

// SetMesh replaces the mesh with a normalized copy of m.
func (s *Scene) SetMesh(m *models.Mesh) {
	s.text, s.fromText = "", false
	s.setMesh(m)
}

func (s *Scene) setMesh(m *models.Mesh) {
	s.source = m
	s.mesh = m.Normalized()
	s.transformDirty = true
	s.facesDirty = true
}

// SetView updates the view parameters, invalidating only the stages that
// depend on what changed.
func (s *Scene) SetView(v View) {
	if v.Yaw != s.view.Yaw || v.Pitch != s.view.Pitch {
		s.transformDirty = true
		s.facesDirty = true
	}
	if v.Zoom != s.view.Zoom {
		s.facesDirty = true
	}
	s.view = v
}

// View returns the current view parameters.
func (s *Scene) View() View {
	return s.view
}

// Source returns the mesh as parsed, before normalization.
func (s *Scene) Source() *models.Mesh {
	return s.source
}

// Mesh returns the normalized mesh.
func (s *Scene) Mesh() *models.Mesh {
	return s.mesh
}

// Faces returns the depth-sorted faces for the current mesh and view.
// The returned slice is a copy and may be modified by the caller.
func (s *Scene) Faces() []RenderedFace {
	if s.transformDirty {
		s.transformed = TransformVertices(s.mesh, s.view)
		s.transformDirty = false
	}
	if s.facesDirty {
		s.faces = s.renderer.ShadeFaces(s.mesh, s.transformed, s.view.Zoom)
		SortByDepth(s.faces)
		s.facesDirty = false
	}
	return slices.Clone(s.faces)
}
