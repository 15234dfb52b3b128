package render

import "github.com/taigrr/objsvg/pkg/math3d"

// Palette maps brightness to a flat face color:
//
//	channel = floor(Base + brightness*Gain)
//
// Results are not clamped to [0, 255].
type Palette struct {
	Base [3]float64
	Gain [3]float64
}

// Config holds the fixed viewport, light and palette constants of the
// pipeline. The zero value is not useful; start from DefaultConfig.
type Config struct {
	ViewportSize float64 // side of the square viewport in logical units
	Center       float64 // screen coordinate of the model origin on both axes
	BaseRadius   float64 // screen units per normalized unit at zoom 1

	LightDir      math3d.Vec3 // brightness is the unit face normal dotted with this
	MinBrightness float64
	MaxBrightness float64

	Palette Palette
}

// DefaultConfig returns the standard 500×500 viewport with a cool-toned
// palette lit from +Z.
func DefaultConfig() Config {
	return Config{
		ViewportSize:  500,
		Center:        250,
		BaseRadius:    200,
		LightDir:      math3d.V3(0, 0, 1),
		MinBrightness: 0.2,
		MaxBrightness: 1.0,
		Palette: Palette{
			Base: [3]float64{52, 120, 180},
			Gain: [3]float64{100, 100, 40},
		},
	}
}
