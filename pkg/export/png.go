package export

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/taigrr/objsvg/pkg/render"
)

// WritePNG rasterizes faces in order onto a square image of opts.PNGSize
// pixels filled with the background color.
func WritePNG(w io.Writer, faces []render.RenderedFace, opts Options) error {
	if opts.PNGSize <= 0 {
		return fmt.Errorf("invalid png size %d", opts.PNGSize)
	}
	bg, err := ParseColor(opts.Background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	var stroke color.RGBA
	if opts.StrokeOpacity > 0 && opts.StrokeWidth > 0 {
		stroke, err = ParseColor(opts.Stroke)
		if err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
		stroke.A = uint8(math.Round(math.Min(1, opts.StrokeOpacity) * 255))
	}

	fb := render.NewFramebuffer(opts.PNGSize, opts.PNGSize)
	fb.Clear(bg)
	fb.DrawFaces(faces, opts.ViewportSize, stroke)
	return fb.EncodePNG(w)
}
