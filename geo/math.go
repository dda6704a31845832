package geo

import "math"

// RoundToInt rounds to the nearest integer, halves away from zero.
func RoundToInt(v float64) int {
	return int(math.Round(v))
}

// Quantize rounds v to the precision of 1/scale, e.g. scale 100 keeps two
// decimals. Keeping stored coordinates quantized avoids issues with floats
// rounding differently on different machines.
func Quantize(v, scale float64) float64 {
	return math.Round(v*scale) / scale
}

// PrecisionCompare compares a and b and considers them equal if their
// difference is less than precision e (e.g. e=0.001).
func PrecisionCompare(a, b, e float64) int {
	if math.Abs(a-b) < e {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}
