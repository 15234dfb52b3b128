package models

import (
	"testing"

	"github.com/taigrr/objsvg/pkg/math3d"
)

// TestMeshCloneIsIndependent verifies Clone copies vertices and faces.
func TestMeshCloneIsIndependent(t *testing.T) {
	mesh := NewMesh("original")
	mesh.Vertices = []math3d.Vec3{math3d.V3(1, 2, 3), math3d.V3(4, 5, 6)}
	mesh.Faces = []Face{{V: [3]int{0, 1, 0}}}

	clone := mesh.Clone()
	clone.Vertices[0] = math3d.V3(9, 9, 9)
	clone.Faces[0].V[0] = 7

	if mesh.Vertices[0] != math3d.V3(1, 2, 3) {
		t.Errorf("Clone should have independent vertex copy")
	}
	if mesh.Faces[0].V[0] != 0 {
		t.Errorf("Clone should have independent face copy")
	}
	if clone.Name != "original" {
		t.Errorf("Clone name = %q", clone.Name)
	}
}

func TestMeshBounds(t *testing.T) {
	mesh := NewMesh("box")
	mesh.Vertices = []math3d.Vec3{math3d.V3(-1, -2, -3), math3d.V3(1, 2, 3)}
	mesh.CalculateBounds()

	if c := mesh.Center(); c != math3d.Zero3() {
		t.Errorf("center = %v, want origin", c)
	}
	if s := mesh.Size(); s != math3d.V3(2, 4, 6) {
		t.Errorf("size = %v, want (2, 4, 6)", s)
	}

	min, max := mesh.GetBounds()
	if min != mesh.BoundsMin || max != mesh.BoundsMax {
		t.Errorf("GetBounds mismatch")
	}
}

func TestMeshAccessors(t *testing.T) {
	mesh := ParseOBJ("v 1 2 3\nv 4 5 6\nv 7 8 9\nf 3 2 1\nf 1 2 9")

	if mesh.GetVertex(2) != math3d.V3(7, 8, 9) {
		t.Errorf("GetVertex(2) = %v", mesh.GetVertex(2))
	}
	if mesh.GetFace(0) != [3]int{2, 1, 0} {
		t.Errorf("GetFace(0) = %v", mesh.GetFace(0))
	}
	if mesh.DanglingFaceCount() != 1 {
		t.Errorf("DanglingFaceCount = %d, want 1", mesh.DanglingFaceCount())
	}
	if mesh.InvalidVertexCount() != 0 {
		t.Errorf("InvalidVertexCount = %d, want 0", mesh.InvalidVertexCount())
	}
}

func TestEmptyMesh(t *testing.T) {
	mesh := NewMesh("empty")
	mesh.CalculateBounds()
	if mesh.VertexCount() != 0 || mesh.TriangleCount() != 0 {
		t.Errorf("new mesh should be empty")
	}
	if mesh.Size() != math3d.Zero3() {
		t.Errorf("empty mesh size = %v", mesh.Size())
	}
}
