package vector

import "github.com/chewxy/math32"

// DegToRad converts an angle in degrees to radians.
//
// Example:
//
//	DegToRad(180) // math32.Pi
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math32.Pi
}
