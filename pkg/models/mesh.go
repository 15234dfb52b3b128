// Package models provides mesh loading and representation for objsvg.
package models

import (
	"github.com/taigrr/objsvg/pkg/math3d"
)

// Mesh is a triangle mesh: an ordered vertex list and triangles that index
// into it. A parsed mesh is treated as immutable; operations that change
// geometry return a new Mesh.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is a triangle given as 0-based indices into Mesh.Vertices, in the
// winding order of the source data. Indices are not validated against the
// vertex count; consumers skip faces that reference missing vertices.
type Face struct {
	V [3]int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
	}
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Zero3(), math3d.Zero3()
		return
	}

	m.BoundsMin, m.BoundsMax = Bounds(m.Vertices)
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Faces)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// InvalidVertexCount returns how many vertices carry NaN or infinite
// coordinates, which happens when lenient parsing meets malformed numbers.
func (m *Mesh) InvalidVertexCount() int {
	n := 0
	for _, v := range m.Vertices {
		if !v.IsFinite() {
			n++
		}
	}
	return n
}

// DanglingFaceCount returns how many faces reference a vertex index outside
// the vertex list. Those faces are dropped at render time.
func (m *Mesh) DanglingFaceCount() int {
	n := 0
	for _, f := range m.Faces {
		for _, idx := range f.V {
			if idx < 0 || idx >= len(m.Vertices) {
				n++
				break
			}
		}
	}
	return n
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Faces, m.Faces)
	return clone
}

// Normalized returns a copy of the mesh whose vertices are fitted into the
// canonical cube (see NormalizeVertices). Faces are copied unchanged.
func (m *Mesh) Normalized() *Mesh {
	out := m.Clone()
	out.Vertices = NormalizeVertices(m.Vertices)
	out.CalculateBounds()
	return out
}

// GetVertex returns the position of vertex i.
// Implements render.MeshSource.
func (m *Mesh) GetVertex(i int) math3d.Vec3 {
	return m.Vertices[i]
}

// GetFace returns the vertex indices for face i.
// Implements render.MeshSource.
func (m *Mesh) GetFace(i int) [3]int {
	return m.Faces[i].V
}

// GetBounds returns the axis-aligned bounding box.
func (m *Mesh) GetBounds() (min, max math3d.Vec3) {
	return m.BoundsMin, m.BoundsMax
}
