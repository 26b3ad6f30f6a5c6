package common

import "math"

// Sign returns -1 for negative values and 1 otherwise, so Sign(0) == 1.
func Sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}

// RotatedBounds returns the width/height of the axis-aligned box enclosing a
// w×h rectangle rotated by deg degrees.
func RotatedBounds(w, h, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	c := math.Abs(math.Cos(rad))
	s := math.Abs(math.Sin(rad))
	return w*c + h*s, w*s + h*c
}
