package main

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/taigrr/objsvg/pkg/math3d"
	"github.com/taigrr/objsvg/pkg/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7DCFFF"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8A8FA3")).Width(12)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0E3F0"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E0AF68"))
)

func newInfoCmd() *cobra.Command {
	var input inputFlags

	cmd := &cobra.Command{
		Use:   "info [model.obj|model.glb|-]",
		Short: "Display mesh information",
		Long:  "Display vertex and face counts, malformed data and the bounding box of a mesh.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mesh, err := input.load(cmd, args)
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), mesh)
			return nil
		},
	}
	input.register(cmd)
	return cmd
}

func printInfo(w io.Writer, mesh *models.Mesh) {
	row := func(label, value string) {
		fmt.Fprintln(w, labelStyle.Render(label)+valueStyle.Render(value))
	}

	fmt.Fprintln(w, titleStyle.Render(mesh.Name))
	row("Vertices", fmt.Sprint(mesh.VertexCount()))
	row("Faces", fmt.Sprint(mesh.TriangleCount()))

	if n := mesh.InvalidVertexCount(); n > 0 {
		fmt.Fprintln(w, labelStyle.Render("Malformed")+warnStyle.Render(fmt.Sprintf("%d vertices", n)))
	}
	if n := mesh.DanglingFaceCount(); n > 0 {
		fmt.Fprintln(w, labelStyle.Render("Dangling")+warnStyle.Render(fmt.Sprintf("%d faces", n)))
	}

	if mesh.VertexCount() == 0 {
		return
	}
	min, max := mesh.GetBounds()
	row("Bounds min", formatVec(min))
	row("Bounds max", formatVec(max))
	row("Size", formatVec(mesh.Size()))
	row("Center", formatVec(mesh.Center()))
}

func formatVec(v math3d.Vec3) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", v.X, v.Y, v.Z)
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [name]",
		Short: "List built-in meshes, or print one as OBJ",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if len(args) == 1 {
				text, err := models.PresetText(args[0])
				if err != nil {
					return err
				}
				_, err = io.WriteString(w, text)
				return err
			}

			for _, name := range models.PresetNames() {
				mesh, err := models.LoadPreset(name)
				if err != nil {
					return err
				}
				marker := " "
				if name == models.DefaultPreset {
					marker = "*"
				}
				counts := fmt.Sprintf("%d vertices, %d faces", mesh.VertexCount(), mesh.TriangleCount())
				fmt.Fprintln(w, marker+" "+labelStyle.Render(name)+valueStyle.Render(counts))
			}
			fmt.Fprintln(w, "  "+warnStyle.Render("* default"))
			return nil
		},
	}
}
