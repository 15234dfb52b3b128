package models

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
)

// ErrUnknownPreset is returned when a preset name is not built in.
var ErrUnknownPreset = errors.New("unknown preset")

//go:embed presets/*.obj
var presetFS embed.FS

// DefaultPreset is the mesh shown when no input is given.
const DefaultPreset = "diamond"

// PresetNames returns the names of the built-in meshes, sorted.
func PresetNames() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".obj"))
	}
	slices.Sort(names)
	return names
}

// PresetText returns the OBJ source of a built-in mesh.
func PresetText(name string) (string, error) {
	data, err := presetFS.ReadFile(path.Join("presets", name+".obj"))
	if err != nil {
		return "", fmt.Errorf("%w: %q (available: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return string(data), nil
}

// LoadPreset parses a built-in mesh.
func LoadPreset(name string) (*Mesh, error) {
	text, err := PresetText(name)
	if err != nil {
		return nil, err
	}
	mesh := ParseOBJ(text)
	mesh.Name = name
	return mesh, nil
}
