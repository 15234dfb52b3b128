package export

import (
	"encoding/json"
	"io"
	"math"

	"github.com/taigrr/objsvg/pkg/render"
)

type document struct {
	Info       string `json:"info"`
	ViewBox    string `json:"viewBox"`
	FacesCount int    `json:"facesCount"`
	Faces      []face `json:"faces"`
}

type face struct {
	Index  int     `json:"index"` // draw position, not source face index
	Points []point `json:"points"`
	Color  rgb     `json:"color"`
	Depth  number  `json:"depth"`
}

type point struct {
	X number `json:"x"`
	Y number `json:"y"`
}

type rgb struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// number encodes NaN and infinities as null instead of failing.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// WriteJSON writes the faces as an indented JSON document. Point
// coordinates are rounded to one decimal and depths to three.
func WriteJSON(w io.Writer, faces []render.RenderedFace, opts Options) error {
	doc := document{
		Info:       opts.Info,
		ViewBox:    opts.viewBox(),
		FacesCount: len(faces),
		Faces:      make([]face, 0, len(faces)),
	}
	for i, f := range faces {
		pts := make([]point, len(f.Points))
		for j, p := range f.Points {
			pts[j] = point{X: number(render.RoundFixed(p.X, 1)), Y: number(render.RoundFixed(p.Y, 1))}
		}
		doc.Faces = append(doc.Faces, face{
			Index:  i,
			Points: pts,
			Color:  rgb{f.Color.R, f.Color.G, f.Color.B},
			Depth:  number(render.RoundFixed(f.Depth, 3)),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
