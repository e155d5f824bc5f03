package util

import "math"

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// ClampFloat constrains a value to a range. NaN clamps to min.
func ClampFloat(value, min, max float64) float64 {
	if math.IsNaN(value) || value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Round converts a float offset to the nearest cell.
func Round(v float64) int {
	return int(math.Round(v))
}
