package vmath

// Epsilon is the absolute tolerance used by the Approx family.
// It equals the float32 machine epsilon.
const Epsilon float32 = 1.1920929e-07

// Floats is implemented by every float-backed type in this package.
type Floats interface {
	Components() []float32
}

// ApproxF32 reports whether a and b differ by at most Epsilon.
func ApproxF32(a, b float32) bool {
	if a == b {
		return true
	}
	return abs(a-b) <= Epsilon
}

// Approx reports whether a and b have the same length and are
// element-wise approximately equal.
func Approx(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ApproxF32(a[i], b[i]) {
			return false
		}
	}
	return true
}

// ApproxEqual compares the components of two values with Approx.
// Values of different dimension are never equal.
func ApproxEqual(a, b Floats) bool {
	return Approx(a.Components(), b.Components())
}
