package models

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/objsvg/pkg/math3d"
)

// ErrInvalidAccessor is returned when a primitive references an accessor or
// buffer view that the document does not contain.
var ErrInvalidAccessor = errors.New("invalid accessor reference")

// GLTFLoader loads the triangle geometry of GLTF/GLB files into a Mesh.
// Materials, textures and normals are ignored; shading is computed from
// face geometry at render time.
type GLTFLoader struct {
	// SkipNonTriangles silently skips line and point primitives instead
	// of failing the load.
	SkipNonTriangles bool
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		SkipNonTriangles: true,
	}
}

// LoadGLB loads a binary GLTF (.glb) or JSON GLTF (.gltf) file.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load opens a GLTF or GLB file and returns its merged geometry.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return l.FromDocument(doc, filepath.Base(path))
}

// FromDocument merges every triangle primitive of every mesh in doc into a
// single Mesh. Winding order is kept as stored in the document.
func (l *GLTFLoader) FromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)

	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// processMesh appends the geometry of one GLTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			if l.SkipNonTriangles {
				continue
			}
			return fmt.Errorf("unsupported primitive mode %v", prim.Mode)
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		posAcc, err := accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("positions: %w", err)
		}
		positions, err := modeler.ReadPosition(doc, posAcc, nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		baseVertex := len(mesh.Vertices)
		for _, p := range positions {
			mesh.Vertices = append(mesh.Vertices, math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])))
		}

		if prim.Indices == nil {
			// No indices, assume sequential triangles
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.Faces = append(mesh.Faces, Face{
					V: [3]int{baseVertex + i, baseVertex + i + 1, baseVertex + i + 2},
				})
			}
			continue
		}

		idxAcc, err := accessor(doc, *prim.Indices)
		if err != nil {
			return fmt.Errorf("indices: %w", err)
		}
		indices, err := modeler.ReadIndices(doc, idxAcc, nil)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
		for i := 0; i+2 < len(indices); i += 3 {
			mesh.Faces = append(mesh.Faces, Face{
				V: [3]int{
					baseVertex + int(indices[i]),
					baseVertex + int(indices[i+1]),
					baseVertex + int(indices[i+2]),
				},
			})
		}
	}

	return nil
}

// accessor looks up accessor i, checking the references a malformed file
// could get wrong.
func accessor(doc *gltf.Document, i int) (*gltf.Accessor, error) {
	if i < 0 || i >= len(doc.Accessors) {
		return nil, fmt.Errorf("%w: accessor %d of %d", ErrInvalidAccessor, i, len(doc.Accessors))
	}
	acc := doc.Accessors[i]
	if acc == nil {
		return nil, fmt.Errorf("%w: accessor %d is null", ErrInvalidAccessor, i)
	}
	if acc.BufferView != nil {
		bv := *acc.BufferView
		if bv < 0 || bv >= len(doc.BufferViews) || doc.BufferViews[bv] == nil {
			return nil, fmt.Errorf("%w: accessor %d uses buffer view %d of %d", ErrInvalidAccessor, i, bv, len(doc.BufferViews))
		}
		if b := doc.BufferViews[bv].Buffer; b < 0 || b >= len(doc.Buffers) || doc.Buffers[b] == nil {
			return nil, fmt.Errorf("%w: buffer view %d uses buffer %d of %d", ErrInvalidAccessor, bv, b, len(doc.Buffers))
		}
	}
	return acc, nil
}
