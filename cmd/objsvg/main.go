// objsvg - OBJ to SVG renderer
// Renders OBJ and GLB meshes as flat-shaded, depth-sorted 2D projections
// and exports them as HTML, SVG, JSON or PNG, or previews them live in the
// terminal.
//
// Usage:
//
//	objsvg render [model.obj|model.glb|-] [flags]
//	objsvg view   [model.obj|model.glb|-] [flags]
//	objsvg info   [model.obj|model.glb|-] [flags]
//	objsvg presets [name]
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "objsvg",
		Short: "Render OBJ meshes as flat-shaded SVG",
		Long: `objsvg - OBJ to SVG renderer

Parses a Wavefront OBJ (or GLB/glTF) mesh, fits it into a unit cube,
rotates it by yaw then pitch, flat-shades every triangle against a light
pointing at the viewer and sorts the triangles back to front. The result
is exported as a standalone HTML page, an SVG fragment, JSON face data or
a PNG image.

With no model argument the built-in "diamond" preset is used. Use "-" to
read OBJ text from stdin.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newRenderCmd(),
		newViewCmd(),
		newInfoCmd(),
		newPresetsCmd(),
	)
	return cmd
}
