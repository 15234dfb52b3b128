package render

import "math"

// View holds the user-controlled view parameters.
type View struct {
	Yaw   float64 // rotation around Y in degrees, applied first
	Pitch float64 // rotation around X in degrees, applied second
	Zoom  float64 // screen scale multiplier
}

// UI ranges for interactive controls. The pipeline accepts any values;
// only input handling clamps to these.
const (
	MinPitch = -90.0
	MaxPitch = 90.0
	MinZoom  = 0.5
	MaxZoom  = 2.0
)

// DefaultView is the initial view of the interactive viewer.
func DefaultView() View {
	return View{Yaw: 30, Pitch: -20, Zoom: 0.7}
}

// Clamped returns v limited to the interactive ranges: yaw wrapped into
// [0, 360), pitch within [MinPitch, MaxPitch], zoom within [MinZoom, MaxZoom].
func (v View) Clamped() View {
	yaw := math.Mod(v.Yaw, 360)
	if yaw < 0 {
		yaw += 360
	}
	return View{
		Yaw:   yaw,
		Pitch: math.Max(MinPitch, math.Min(MaxPitch, v.Pitch)),
		Zoom:  math.Max(MinZoom, math.Min(MaxZoom, v.Zoom)),
	}
}
