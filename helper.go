package vmath

import (
	"cmp"
	"math"
)

// Common float32 constants.
const (
	Pi    float32 = math.Pi
	Tau   float32 = 2 * math.Pi
	Sqrt2 float32 = math.Sqrt2
)

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * (Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * (180 / Pi)
}

// Sign returns 1 for positive x, -1 for negative x and 0 otherwise.
func Sign(x float32) float32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// SignInt returns 1 for positive x, -1 for negative x and 0 otherwise.
func SignInt(x int32) int32 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Lerp performs linear interpolation between a and b.
// t=0 returns a, t=1 returns b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Bezier3 evaluates a quadratic Bezier curve with control point b.
func Bezier3(a, b, c, t float32) float32 {
	u := 1 - t
	return a*u*u + b*2*u*t + c*t*t
}

// Bezier4 evaluates a cubic Bezier curve with control points b and c.
func Bezier4(a, b, c, d, t float32) float32 {
	return t*t*t*(d+3*(b-c)-a) + 3*t*t*(a-2*b+c) + 3*t*(b-a) + a
}

// Hermite evaluates a cubic Hermite spline from p0 (tangent m0) to p1 (tangent m1).
func Hermite(p0, m0, p1, m1, t float32) float32 {
	return (2*p0-2*p1+m1+m0)*t*t*t +
		(3*p1-3*p0-2*m0-m1)*t*t +
		m0*t +
		p0
}

// CatmullRom evaluates a Catmull-Rom spline segment between b and c.
func CatmullRom(a, b, c, d, t float32) float32 {
	return 0.5 * (2*b +
		(c-a)*t +
		(2*a-5*b+4*c-d)*t*t +
		(3*b-a-3*c+d)*t*t*t)
}

// SmoothStep applies the smoothstep easing curve to t.
func SmoothStep(t float32) float32 {
	return t * t * (3 - 2*t)
}

// SqrDistance returns the squared distance between (x1, y1) and (x2, y2).
func SqrDistance(x1, y1, x2, y2 float32) float32 {
	x := x1 - x2
	y := y1 - y2
	return x*x + y*y
}

// Distance returns the euclidean distance between (x1, y1) and (x2, y2).
func Distance(x1, y1, x2, y2 float32) float32 {
	return sqrt(SqrDistance(x1, y1, x2, y2))
}

// Clamp restricts v to the range [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// HashF32 returns the bit pattern of v, suitable as a hash input.
func HashF32(v float32) int32 {
	return int32(math.Float32bits(v)) //nolint:gosec // bit reinterpretation
}

// float32 wrappers over package math.

func sqrt(x float32) float32  { return float32(math.Sqrt(float64(x))) }
func abs(x float32) float32   { return float32(math.Abs(float64(x))) }
func floor(x float32) float32 { return float32(math.Floor(float64(x))) }
func ceil(x float32) float32  { return float32(math.Ceil(float64(x))) }
func round(x float32) float32 { return float32(math.Round(float64(x))) }
func sin(x float32) float32   { return float32(math.Sin(float64(x))) }
func cos(x float32) float32   { return float32(math.Cos(float64(x))) }
func tan(x float32) float32   { return float32(math.Tan(float64(x))) }
func mod(x, y float32) float32 {
	return float32(math.Mod(float64(x), float64(y)))
}
func pow(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }
func cbrt(x float32) float32   { return float32(math.Cbrt(float64(x))) }
func atan2(y, x float32) float32 {
	return float32(math.Atan2(float64(y), float64(x)))
}

func absInt(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
