package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/objsvg/pkg/export"
	"github.com/taigrr/objsvg/pkg/models"
	"github.com/taigrr/objsvg/pkg/render"
)

const exampleOBJ = `v 0 -50 0
v -30 0 -30
v 30 0 -30
v 30 0 30
v -30 0 30
v 0 50 0
f 1 2 3
`

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderDefaultPreset(t *testing.T) {
	out, _, err := execute(t, "", "render")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Errorf("default output should be HTML, got %.40q", out)
	}
	if !strings.Contains(out, `<polygon class="face"`) {
		t.Error("output has no faces")
	}
}

func TestRenderPresetSVG(t *testing.T) {
	out, _, err := execute(t, "", "render", "--preset", "cube", "--format", "svg")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.HasPrefix(out, "<svg ") {
		t.Errorf("expected svg output, got %.40q", out)
	}

	cube, err := models.LoadPreset("cube")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "<polygon"); n != cube.TriangleCount() {
		t.Errorf("got %d polygons, want %d", n, cube.TriangleCount())
	}
}

func TestRenderStdinJSON(t *testing.T) {
	out, _, err := execute(t, exampleOBJ, "render", "-", "--format", "json")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var doc struct {
		FacesCount int `json:"facesCount"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.FacesCount != 1 {
		t.Errorf("facesCount = %d, want 1", doc.FacesCount)
	}
}

func TestRenderFileToOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "shape.obj")
	if err := os.WriteFile(in, []byte(exampleOBJ), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "shape.png")

	if _, _, err := execute(t, "", "render", in, "-o", out, "--size", "64"); err != nil {
		t.Fatalf("render: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestRenderWarnsOnMalformedInput(t *testing.T) {
	_, stderr, err := execute(t, "v 1 x 3\nv 0 0 0\nv 1 0 0\nf 1 2 9\n", "render", "-")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(stderr, "1 vertices") || !strings.Contains(stderr, "1 faces") {
		t.Errorf("stderr = %q, want warnings for the bad vertex and face", stderr)
	}
}

func TestRenderStrict(t *testing.T) {
	_, _, err := execute(t, "v 1 x 3\n", "render", "-", "--strict")

	var perr *models.ParseError
	if !errors.As(err, &perr) || perr.Line != 1 {
		t.Fatalf("error = %v, want *ParseError on line 1", err)
	}
	if !errors.Is(err, models.ErrMalformedVertex) {
		t.Errorf("error = %v, want ErrMalformedVertex", err)
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown preset", []string{"render", "--preset", "teapot"}, models.ErrUnknownPreset},
		{"unknown format", []string{"render", "--format", "gif"}, export.ErrUnknownFormat},
		{"unknown extension", []string{"render", "-o", "shape.bmp"}, export.ErrUnknownFormat},
		{"bad color", []string{"render", "--bg", "nope"}, export.ErrInvalidColor},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, "", tc.args...)
			if !errors.Is(err, tc.want) {
				t.Errorf("error = %v, want %v", err, tc.want)
			}
		})
	}

	if _, _, err := execute(t, "", "render", "--preset", "cube", "model.obj"); err == nil {
		t.Error("expected error for --preset with a model argument")
	}
}

func TestInfo(t *testing.T) {
	out, _, err := execute(t, exampleOBJ, "info", "-")
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	for _, want := range []string{"stdin", "Vertices", "6", "Faces", "1", "(0.000, 0.000, 0.000)"} {
		if !strings.Contains(out, want) {
			t.Errorf("info output missing %q:\n%s", want, out)
		}
	}
}

func TestPresets(t *testing.T) {
	out, _, err := execute(t, "", "presets")
	if err != nil {
		t.Fatalf("presets: %v", err)
	}
	for _, name := range models.PresetNames() {
		if !strings.Contains(out, name) {
			t.Errorf("list missing %q", name)
		}
	}

	out, _, err = execute(t, "", "presets", "pyramid")
	if err != nil {
		t.Fatalf("presets pyramid: %v", err)
	}
	text, _ := models.PresetText("pyramid")
	if out != text {
		t.Errorf("presets pyramid printed %q, want the preset source", out)
	}
}

func TestApplyControl(t *testing.T) {
	start := render.View{Yaw: 0, Pitch: 88, Zoom: 1.5}

	tests := []struct {
		name string
		c    control
		want render.View
	}{
		{"yaw left wraps", controlYawLeft, render.View{Yaw: 355, Pitch: 88, Zoom: 1.5}},
		{"yaw right", controlYawRight, render.View{Yaw: 5, Pitch: 88, Zoom: 1.5}},
		{"pitch down clamps", controlPitchDown, render.View{Yaw: 0, Pitch: 90, Zoom: 1.5}},
		{"pitch up", controlPitchUp, render.View{Yaw: 0, Pitch: 83, Zoom: 1.5}},
		{"zoom in", controlZoomIn, render.View{Yaw: 0, Pitch: 88, Zoom: 1.6}},
		{"zoom out", controlZoomOut, render.View{Yaw: 0, Pitch: 88, Zoom: 1.4}},
		{"reset", controlReset, render.DefaultView()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := applyControl(start, tc.c); got != tc.want {
				t.Errorf("applyControl(%v) = %+v, want %+v", tc.c, got, tc.want)
			}
		})
	}

	if got := applyControl(render.View{Zoom: render.MaxZoom}, controlZoomIn); got.Zoom != render.MaxZoom {
		t.Errorf("zoom past max = %v, want %v", got.Zoom, render.MaxZoom)
	}
	if got := applyControl(render.View{Zoom: render.MinZoom}, controlZoomOut); got.Zoom != render.MinZoom {
		t.Errorf("zoom past min = %v, want %v", got.Zoom, render.MinZoom)
	}
}

func TestControlFor(t *testing.T) {
	tests := []struct {
		key  uv.Key
		want control
	}{
		{uv.Key{Code: uv.KeyLeft}, controlYawLeft},
		{uv.Key{Code: uv.KeyUp}, controlPitchUp},
		{uv.Key{Code: uv.KeyEscape}, controlQuit},
		{uv.Key{Code: 'x', Text: "x"}, controlExport},
		{uv.Key{Code: 'z', Text: "z"}, controlNone},
	}

	for _, tc := range tests {
		if got := controlFor(uv.KeyPressEvent(tc.key)); got != tc.want {
			t.Errorf("controlFor(%v) = %v, want %v", tc.key, got, tc.want)
		}
	}
}
