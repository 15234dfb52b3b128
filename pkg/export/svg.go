package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/taigrr/objsvg/pkg/render"
)

const polygonIndent = "            "

// Polygons returns one <polygon class="face"> element per face, each on
// its own indented line, joined by newlines.
func Polygons(faces []render.RenderedFace) string {
	var b strings.Builder
	for i, f := range faces {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, `%s<polygon class="face" points="%s" fill="%s"/>`, polygonIndent, f.PointsString(), f.Color)
	}
	return b.String()
}

// WriteSVG writes a standalone <svg> element. Outline styling is left to
// the embedding page.
func WriteSVG(w io.Writer, faces []render.RenderedFace, opts Options) error {
	_, err := fmt.Fprintf(w, "<svg viewBox=%q xmlns=\"http://www.w3.org/2000/svg\">\n%s\n</svg>\n",
		opts.viewBox(), Polygons(faces))
	return err
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang | html}}">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title | html}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { min-height: 100vh; display: flex; justify-content: center; align-items: center; background: {{.Background}}; }
        .shape-container { width: {{.Size}}px; height: {{.Size}}px; }
        .shape-container svg { width: 100%; height: 100%; }
        .face { stroke: {{.Stroke}}; stroke-width: {{.StrokeWidth}}; }
    </style>
</head>
<body>
    <div class="shape-container">
        <svg viewBox="{{.ViewBox}}">
{{.Polygons}}
        </svg>
    </div>
</body>
</html>
`))

type pageData struct {
	Lang, Title string
	Background  string
	Stroke      string
	StrokeWidth string
	Size        string
	ViewBox     string
	Polygons    string
}

// WriteHTML writes a complete page that centers the shape on the
// background color, with every face outlined by the stroke.
func WriteHTML(w io.Writer, faces []render.RenderedFace, opts Options) error {
	bg, err := ParseColor(opts.Background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}
	stroke, err := ParseColor(opts.Stroke)
	if err != nil {
		return fmt.Errorf("stroke: %w", err)
	}

	return pageTemplate.Execute(w, pageData{
		Lang:        opts.Lang,
		Title:       opts.Title,
		Background:  cssHex(bg),
		Stroke:      cssRGBA(stroke, opts.StrokeOpacity),
		StrokeWidth: strconv.FormatFloat(opts.StrokeWidth, 'f', -1, 64),
		Size:        strconv.FormatFloat(opts.ViewportSize, 'f', -1, 64),
		ViewBox:     opts.viewBox(),
		Polygons:    Polygons(faces),
	})
}
