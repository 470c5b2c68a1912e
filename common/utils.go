package common

import "math"

// FloatEpsilon is the absolute tolerance used by FloatEqual, FloatLessThan and FloatGreaterThan.
const FloatEpsilon = 1e-4

// Float is the set of floating-point types accepted by the scalar helpers.
type Float interface {
	~float32 | ~float64
}

// DegsToRads converts an angle in degrees to radians.
func DegsToRads[T Float](degrees T) T {
	return T((float64(degrees) / 180.0) * math.Pi)
}

// RadsToDegs converts an angle in radians to degrees.
func RadsToDegs[T Float](radians T) T {
	return T((float64(radians) / math.Pi) * 180.0)
}

// FloatEqual reports whether a and b differ by at most FloatEpsilon.
// It complements FloatLessThan and FloatGreaterThan: exactly one of the three holds
// for any pair of finite values.
//
// Parameters:
//   - a, b: the values to compare
//
// Returns:
//   - bool: true if |a-b| <= FloatEpsilon
func FloatEqual[T Float](a, b T) bool {
	return math.Abs(float64(a-b)) <= FloatEpsilon
}

// FloatLessThan reports whether a is less than b by more than FloatEpsilon.
func FloatLessThan[T Float](a, b T) bool {
	return float64(b-a) > FloatEpsilon
}

// FloatGreaterThan reports whether a is greater than b by more than FloatEpsilon.
func FloatGreaterThan[T Float](a, b T) bool {
	return float64(a-b) > FloatEpsilon
}
