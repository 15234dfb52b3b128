package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/taigrr/objsvg/pkg/models"
)

// inputFlags select the mesh a command works on.
type inputFlags struct {
	preset string
	strict bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.preset, "preset", "p", "", "Use a built-in mesh ("+strings.Join(models.PresetNames(), ", ")+")")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "Fail on malformed vertex or face lines instead of skipping them")
}

// load resolves the command's input: a preset, stdin ("-"), a GLB/glTF
// file, an OBJ file, or the default preset when nothing is given.
func (f *inputFlags) load(cmd *cobra.Command, args []string) (*models.Mesh, error) {
	if f.preset != "" && len(args) > 0 {
		return nil, fmt.Errorf("--preset and a model argument are mutually exclusive")
	}

	var mesh *models.Mesh
	var err error

	switch {
	case f.preset != "":
		mesh, err = models.LoadPreset(f.preset)
	case len(args) == 0:
		mesh, err = models.LoadPreset(models.DefaultPreset)
	case args[0] == "-":
		mesh, err = (&models.OBJLoader{Strict: f.strict}).Parse(cmd.InOrStdin())
		if mesh != nil {
			mesh.Name = "stdin"
		}
	default:
		mesh, err = loadFile(args[0], f.strict)
	}
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	warnMesh(cmd.ErrOrStderr(), mesh)
	return mesh, nil
}

func loadFile(path string, strict bool) (*models.Mesh, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		return models.LoadGLB(path)
	default:
		return (&models.OBJLoader{Strict: strict}).Load(path)
	}
}

// warnMesh reports geometry that lenient parsing kept but rendering will
// skip or shade as unlit.
func warnMesh(w io.Writer, mesh *models.Mesh) {
	if n := mesh.InvalidVertexCount(); n > 0 {
		fmt.Fprintf(w, "Warning: %s: %d vertices have missing or non-numeric coordinates\n", mesh.Name, n)
	}
	if n := mesh.DanglingFaceCount(); n > 0 {
		fmt.Fprintf(w, "Warning: %s: %d faces reference missing vertices and will be skipped\n", mesh.Name, n)
	}
}
