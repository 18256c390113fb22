package vmath

import "strconv"

// Angle is implemented by angle units that can be expressed in radians.
type Angle interface {
	Radians() Radians
}

// Radians is an angle in radians.
type Radians float32

// Degrees is an angle in degrees.
type Degrees float32

// Rad creates an angle in radians.
func Rad(v float32) Radians { return Radians(v) }

// Deg creates an angle in degrees.
func Deg(v float32) Degrees { return Degrees(v) }

// Radians returns r unchanged.
func (r Radians) Radians() Radians { return r }

// Degrees converts r to degrees.
func (r Radians) Degrees() Degrees { return Degrees(RadToDeg(float32(r))) }

// Approx reports whether r and other are approximately the same angle.
func (r Radians) Approx(other Angle) bool {
	return ApproxF32(float32(r), float32(other.Radians()))
}

// String formats r with a "rad" suffix.
func (r Radians) String() string {
	return strconv.FormatFloat(float64(r), 'g', -1, 32) + "rad"
}

// Radians converts d to radians.
func (d Degrees) Radians() Radians { return Radians(DegToRad(float32(d))) }

// Degrees returns d unchanged.
func (d Degrees) Degrees() Degrees { return d }

// Approx reports whether d and other are approximately the same angle.
// The comparison happens in radians.
func (d Degrees) Approx(other Angle) bool {
	return d.Radians().Approx(other)
}

// String formats d with a "deg" suffix.
func (d Degrees) String() string {
	return strconv.FormatFloat(float64(d), 'g', -1, 32) + "deg"
}
