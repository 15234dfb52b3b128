package models

import (
	"errors"
	"slices"
	"testing"
)

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	for _, want := range []string{"cube", "diamond", "house", "icosahedron", "pyramid"} {
		if !slices.Contains(names, want) {
			t.Errorf("missing preset %q in %v", want, names)
		}
	}
	if !slices.IsSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
}

func TestLoadPresets(t *testing.T) {
	tests := []struct {
		name     string
		vertices int
		faces    int
	}{
		{"diamond", 6, 8},
		{"cube", 8, 12},
		{"pyramid", 5, 6},
		{"icosahedron", 12, 20},
		{"house", 10, 16},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mesh, err := LoadPreset(tc.name)
			if err != nil {
				t.Fatalf("LoadPreset: %v", err)
			}
			if mesh.VertexCount() != tc.vertices || mesh.TriangleCount() != tc.faces {
				t.Errorf("got %d vertices, %d faces; want %d, %d",
					mesh.VertexCount(), mesh.TriangleCount(), tc.vertices, tc.faces)
			}
			if mesh.DanglingFaceCount() != 0 {
				t.Errorf("preset has %d dangling faces", mesh.DanglingFaceCount())
			}
		})
	}
}

func TestLoadPresetUnknown(t *testing.T) {
	_, err := LoadPreset("dodecahedron")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("err = %v, want ErrUnknownPreset", err)
	}
}
