// Package export writes depth-sorted faces as an HTML document, an SVG
// fragment, a JSON dump or a PNG image.
package export

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/objsvg/pkg/render"
)

// Format identifies an export format.
type Format string

const (
	FormatHTML Format = "html" // standalone page with inline SVG
	FormatSVG  Format = "svg"  // bare <svg> element
	FormatJSON Format = "json" // structured face data
	FormatPNG  Format = "png"  // rasterized image
)

// ErrUnknownFormat is returned for format names and file extensions that
// have no writer.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatHTML, FormatSVG, FormatJSON, FormatPNG}
}

// ParseFormat maps a case-insensitive name such as "svg" to a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case FormatHTML, FormatSVG, FormatJSON, FormatPNG:
		return f, nil
	case "htm":
		return FormatHTML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Options controls the presentation of exported output. Geometry is never
// affected; faces are written exactly as rendered.
type Options struct {
	Title string // HTML <title>
	Lang  string // HTML lang attribute
	Info  string // JSON "info" field

	Background    string  // page / image background, "#rrggbb" or "r,g,b"
	Stroke        string  // face outline color
	StrokeOpacity float64 // 0 disables the outline
	StrokeWidth   float64 // outline width in viewport units

	ViewportSize float64 // side of the square viewBox
	PNGSize      int     // PNG width and height in pixels
}

// DefaultOptions returns the standard dark page with faint white outlines
// on a 500×500 viewBox.
func DefaultOptions() Options {
	return Options{
		Title:         "3D Shape",
		Lang:          "en",
		Info:          "Rendered 3D shape data",
		Background:    "#1a1a2e",
		Stroke:        "#ffffff",
		StrokeOpacity: 0.15,
		StrokeWidth:   0.5,
		ViewportSize:  render.DefaultConfig().ViewportSize,
		PNGSize:       500,
	}
}

// viewBox returns the "0 0 w h" attribute value.
func (o Options) viewBox() string {
	s := strconv.FormatFloat(o.ViewportSize, 'f', -1, 64)
	return "0 0 " + s + " " + s
}

// Write encodes faces in format f. Faces are written in slice order, which
// for Renderer output is back to front.
func Write(w io.Writer, f Format, faces []render.RenderedFace, opts Options) error {
	switch f {
	case FormatHTML:
		return WriteHTML(w, faces, opts)
	case FormatSVG:
		return WriteSVG(w, faces, opts)
	case FormatJSON:
		return WriteJSON(w, faces, opts)
	case FormatPNG:
		return WritePNG(w, faces, opts)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
