package math3d

import "math"

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// RotateY rotates the vector around the Y axis by angle radians.
//
//	x' =  x*cos(a) + z*sin(a)
//	z' = -x*sin(a) + z*cos(a)
func (a Vec3) RotateY(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{
		a.X*c + a.Z*s,
		a.Y,
		-a.X*s + a.Z*c,
	}
}

// RotateX rotates the vector around the X axis by angle radians.
//
//	y' = y*cos(a) - z*sin(a)
//	z' = y*sin(a) + z*cos(a)
func (a Vec3) RotateX(angle float64) Vec3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Vec3{
		a.X,
		a.Y*c - a.Z*s,
		a.Y*s + a.Z*c,
	}
}
