package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/taigrr/objsvg/pkg/export"
	"github.com/taigrr/objsvg/pkg/render"
)

// viewFlags are the three numeric view parameters.
type viewFlags struct {
	yaw, pitch, zoom float64
}

func (f *viewFlags) register(cmd *cobra.Command) {
	d := render.DefaultView()
	cmd.Flags().Float64Var(&f.yaw, "yaw", d.Yaw, "Rotation around the vertical axis in degrees")
	cmd.Flags().Float64Var(&f.pitch, "pitch", d.Pitch, "Rotation around the horizontal axis in degrees, applied after yaw")
	cmd.Flags().Float64Var(&f.zoom, "zoom", d.Zoom, "Scale multiplier")
}

func (f *viewFlags) view() render.View {
	return render.View{Yaw: f.yaw, Pitch: f.pitch, Zoom: f.zoom}
}

// styleFlags feed export.Options.
type styleFlags struct {
	title         string
	bg            string
	stroke        string
	strokeOpacity float64
	size          int
}

func (f *styleFlags) register(cmd *cobra.Command) {
	d := export.DefaultOptions()
	cmd.Flags().StringVar(&f.title, "title", d.Title, "HTML page title")
	cmd.Flags().StringVar(&f.bg, "bg", d.Background, "Background color (#RRGGBB or R,G,B)")
	cmd.Flags().StringVar(&f.stroke, "stroke", d.Stroke, "Face outline color (#RRGGBB or R,G,B)")
	cmd.Flags().Float64Var(&f.strokeOpacity, "stroke-opacity", d.StrokeOpacity, "Face outline opacity, 0 disables outlines")
	cmd.Flags().IntVar(&f.size, "size", d.PNGSize, "PNG width and height in pixels")
}

func (f *styleFlags) options() export.Options {
	opts := export.DefaultOptions()
	opts.Title = f.title
	opts.Background = f.bg
	opts.Stroke = f.stroke
	opts.StrokeOpacity = f.strokeOpacity
	opts.PNGSize = f.size
	return opts
}

func newRenderCmd() *cobra.Command {
	var (
		input  inputFlags
		view   viewFlags
		style  styleFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "render [model.obj|model.glb|-]",
		Short: "Render a mesh and export it",
		Long: `Render a mesh once and write it as HTML, SVG, JSON or PNG.

The format defaults to the output file's extension, or HTML when writing
to stdout.`,
		Example: `  objsvg render --preset cube --format svg
  objsvg render model.obj --yaw 45 --pitch -30 -o shape.html
  cat model.obj | objsvg render - --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(format, output)
			if err != nil {
				return err
			}

			mesh, err := input.load(cmd, args)
			if err != nil {
				return err
			}

			faces := render.RenderMesh(mesh.Normalized(), view.view())
			return writeOutput(cmd.OutOrStdout(), output, f, faces, style.options())
		},
	}

	input.register(cmd)
	view.register(cmd)
	style.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (html, svg, json, png)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

// resolveFormat picks the explicit format, else the output extension,
// else HTML.
func resolveFormat(format, output string) (export.Format, error) {
	if format != "" {
		return export.ParseFormat(format)
	}
	if output != "" && output != "-" {
		return export.FormatFromPath(output)
	}
	return export.FormatHTML, nil
}

// writeOutput writes to path, or to stdout when path is empty or "-".
func writeOutput(stdout io.Writer, path string, f export.Format, faces []render.RenderedFace, opts export.Options) error {
	if path == "" || path == "-" {
		return export.Write(stdout, f, faces, opts)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := export.Write(file, f, faces, opts); err != nil {
		file.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return file.Close()
}
