package geometry

import "math"

// Epsilon is the tolerance used for face classification and boundary
// tests on polyhedral shapes (cube face assignment, cap vs. barrel).
const Epsilon = 1e-4

// withinEpsilon reports whether a and b are equal within Epsilon.
func withinEpsilon(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}
