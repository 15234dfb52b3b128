package main

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"github.com/taigrr/objsvg/pkg/export"
	"github.com/taigrr/objsvg/pkg/models"
	"github.com/taigrr/objsvg/pkg/render"
)

// Keyboard steps for rotation (degrees) and zoom.
const (
	rotateStep = 5.0
	zoomStep   = 0.1
)

// control is one viewer input action.
type control int

const (
	controlNone control = iota
	controlYawLeft
	controlYawRight
	controlPitchUp
	controlPitchDown
	controlZoomIn
	controlZoomOut
	controlReset
	controlExport
	controlQuit
)

// controlFor maps a key press to a control.
func controlFor(ev uv.KeyPressEvent) control {
	switch {
	case ev.MatchString("escape", "q", "ctrl+c"):
		return controlQuit
	case ev.MatchString("a", "left"):
		return controlYawLeft
	case ev.MatchString("d", "right"):
		return controlYawRight
	case ev.MatchString("w", "up"):
		return controlPitchUp
	case ev.MatchString("s", "down"):
		return controlPitchDown
	case ev.MatchString("+", "="):
		return controlZoomIn
	case ev.MatchString("-", "_"):
		return controlZoomOut
	case ev.MatchString("r"):
		return controlReset
	case ev.MatchString("x"):
		return controlExport
	}
	return controlNone
}

// applyControl returns the view after a navigation control, kept within
// the interactive ranges.
func applyControl(v render.View, c control) render.View {
	switch c {
	case controlYawLeft:
		v.Yaw -= rotateStep
	case controlYawRight:
		v.Yaw += rotateStep
	case controlPitchUp:
		v.Pitch -= rotateStep
	case controlPitchDown:
		v.Pitch += rotateStep
	case controlZoomIn:
		// Round to the step so repeated presses don't accumulate float error
		v.Zoom = math.Round((v.Zoom+zoomStep)*10) / 10
	case controlZoomOut:
		v.Zoom = math.Round((v.Zoom-zoomStep)*10) / 10
	case controlReset:
		return render.DefaultView()
	}
	return v.Clamped()
}

func newViewCmd() *cobra.Command {
	var (
		input  inputFlags
		view   viewFlags
		style  styleFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "view [model.obj|model.glb|-]",
		Short: "Preview a mesh interactively in the terminal",
		Long: `Preview a mesh in the terminal with the same pipeline used for export.

Controls:
  A/D, ←/→    - Yaw left/right (5°)
  W/S, ↑/↓    - Pitch up/down (5°)
  +/-         - Zoom in/out (0.1)
  R           - Reset view
  X           - Export the current view to --output
  Esc/Q       - Quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.FormatFromPath(output)
			if err != nil {
				return err
			}
			mesh, err := input.load(cmd, args)
			if err != nil {
				return err
			}
			opts := style.options()
			bg, err := export.ParseColor(opts.Background)
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}

			v := &viewer{
				mesh:       mesh,
				view:       view.view().Clamped(),
				bg:         bg,
				opts:       opts,
				exportPath: output,
				format:     format,
			}
			return v.run(cmd.Context())
		},
	}

	input.register(cmd)
	view.register(cmd)
	style.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "shape.html", "File written by the export key; format follows the extension")
	return cmd
}

// viewer is the interactive terminal preview state.
type viewer struct {
	mesh       *models.Mesh
	view       render.View
	bg         color.RGBA
	opts       export.Options
	exportPath string
	format     export.Format

	scene  *render.Scene
	term   *uv.Terminal
	fb     *render.Framebuffer
	width  int
	height int
	status string
}

func (v *viewer) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	v.scene = render.NewScene(render.DefaultConfig())
	v.scene.SetMesh(v.mesh)

	v.term = uv.DefaultTerminal()
	width, height, err := v.term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := v.term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	v.term.EnterAltScreen()
	v.term.HideCursor()
	v.resize(width, height)

	defer func() {
		v.term.ExitAltScreen()
		v.term.ShowCursor()
		v.term.Shutdown(context.Background())
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	if err := v.draw(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sigChan:
			return nil
		case ev, ok := <-v.term.Events():
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				v.term.Erase()
				v.resize(ev.Width, ev.Height)
			case uv.KeyPressEvent:
				switch c := controlFor(ev); c {
				case controlQuit:
					return nil
				case controlExport:
					v.exportView()
				case controlNone:
					continue
				default:
					v.view = applyControl(v.view, c)
					v.status = ""
				}
			default:
				continue
			}
			if err := v.draw(); err != nil {
				return err
			}
		}
	}
}

func (v *viewer) resize(width, height int) {
	v.width, v.height = width, height
	v.term.Resize(width, height)
	fbWidth, fbHeight := render.FramebufferSize(width, height)
	v.fb = render.NewFramebuffer(fbWidth, fbHeight)
}

func (v *viewer) stroke() color.RGBA {
	c, err := export.ParseColor(v.opts.Stroke)
	if err != nil || v.opts.StrokeOpacity <= 0 {
		return color.RGBA{}
	}
	c.A = uint8(math.Round(math.Min(1, v.opts.StrokeOpacity) * 255))
	return c
}

func (v *viewer) draw() error {
	v.scene.SetView(v.view)

	v.fb.Clear(v.bg)
	v.fb.DrawFaces(v.scene.Faces(), v.opts.ViewportSize, v.stroke())
	v.fb.Draw(v.term, uv.Rect(0, 0, v.width, v.height))
	if err := v.term.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	v.drawHUD()
	return nil
}

// exportView writes the faces currently on screen to the export path.
func (v *viewer) exportView() {
	f, err := os.Create(v.exportPath)
	if err != nil {
		v.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	err = export.Write(f, v.format, v.scene.Faces(), v.opts)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		v.status = fmt.Sprintf("export failed: %v", err)
		return
	}
	v.status = "exported " + filepath.Base(v.exportPath)
}

// drawHUD overlays model info and view parameters on the first and last
// terminal rows.
func (v *viewer) drawHUD() {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgCyan    = "\x1b[96m"
		fgYellow  = "\x1b[93m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(v.height, 1) + clearLine)

	// Top: name and counts
	fmt.Printf("%s%s%s%s %s %s", moveTo(1, 1), bold, bgBlack, fgWhite, v.mesh.Name, reset)
	counts := fmt.Sprintf(" %d vertices  %d faces ", v.mesh.VertexCount(), v.mesh.TriangleCount())
	fmt.Print(moveTo(1, max(v.width-len(counts)+1, 1)) + bgBlack + fgCyan + counts + reset)

	// Bottom: view parameters and status
	params := fmt.Sprintf(" yaw %3.0f°  pitch %3.0f°  zoom %.1fx ", v.view.Yaw, v.view.Pitch, v.view.Zoom)
	fmt.Print(moveTo(v.height, 1) + bgBlack + fgGreen + params + reset)
	if v.status != "" {
		fmt.Print(moveTo(v.height, max(v.width-len(v.status)-1, 1)) + bgBlack + fgYellow + " " + v.status + " " + reset)
	}
}
