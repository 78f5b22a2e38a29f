package math

import "github.com/chewxy/math32"

// DegToRad converts an angle in degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// RadToDeg converts an angle in radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math32.Pi
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
