package vmath

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// Vec4 is a four-dimensional float32 vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 is a convenience function to create a Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Splat4 returns a Vec4 with all components set to v.
func Splat4(v float32) Vec4 {
	return Vec4{X: v, Y: v, Z: v, W: v}
}

// Vec4From3 extends a Vec3 with w.
func Vec4From3(v Vec3, w float32) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Vec4Zero and Vec4One are the all-zero and all-one vectors.
var (
	Vec4Zero = Vec4{0, 0, 0, 0}
	Vec4One  = Vec4{1, 1, 1, 1}
)

// Vec4FromF32 converts an x/image f32.Vec4.
func Vec4FromF32(v f32.Vec4) Vec4 {
	return Vec4{X: v[0], Y: v[1], Z: v[2], W: v[3]}
}

// F32 converts v to an x/image f32.Vec4.
func (v Vec4) F32() f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

// XY returns the x and y components.
func (v Vec4) XY() Vec2 { return Vec2{v.X, v.Y} }

// XYZ returns the x, y and z components.
func (v Vec4) XYZ() Vec3 { return Vec3{v.X, v.Y, v.Z} }

// Index returns the i'th component (0=x .. 3=w).
// It panics if i is out of range.
func (v Vec4) Index(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	case 3:
		return v.W
	}
	panic(fmt.Sprintf("vmath: Vec4 index %d out of range", i))
}

// Add returns the component-wise sum of v and o.
func (v Vec4) Add(o Vec4) Vec4 { return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W} }

// Sub returns the component-wise difference v - o.
func (v Vec4) Sub(o Vec4) Vec4 { return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W} }

// Mul returns the component-wise product of v and o.
func (v Vec4) Mul(o Vec4) Vec4 { return Vec4{v.X * o.X, v.Y * o.Y, v.Z * o.Z, v.W * o.W} }

// Div returns the component-wise quotient of v and o.
func (v Vec4) Div(o Vec4) Vec4 { return Vec4{v.X / o.X, v.Y / o.Y, v.Z / o.Z, v.W / o.W} }

// Neg returns v with every component negated.
func (v Vec4) Neg() Vec4 { return Vec4{-v.X, -v.Y, -v.Z, -v.W} }

// Scale returns v multiplied by s.
func (v Vec4) Scale(s float32) Vec4 { return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s} }

// DivScalar returns v divided by s.
func (v Vec4) DivScalar(s float32) Vec4 { return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s} }

// Mod returns the component-wise floating-point remainder of v / o.
func (v Vec4) Mod(o Vec4) Vec4 {
	return Vec4{mod(v.X, o.X), mod(v.Y, o.Y), mod(v.Z, o.Z), mod(v.W, o.W)}
}

// ModScalar returns the floating-point remainder of each component by s.
func (v Vec4) ModScalar(s float32) Vec4 {
	return Vec4{mod(v.X, s), mod(v.Y, s), mod(v.Z, s), mod(v.W, s)}
}

// SqrLen returns the squared length of v.
func (v Vec4) SqrLen() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Len returns the euclidean length of v.
func (v Vec4) Len() float32 {
	return sqrt(v.SqrLen())
}

// Norm returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec4) Norm() Vec4 {
	l := v.Len()
	if l == 0 {
		return Vec4{}
	}
	return v.DivScalar(l)
}

// OnlyX keeps the x component and zeroes the rest.
func (v Vec4) OnlyX() Vec4 { return Vec4{X: v.X} }

// OnlyY keeps the y component and zeroes the rest.
func (v Vec4) OnlyY() Vec4 { return Vec4{Y: v.Y} }

// OnlyZ keeps the z component and zeroes the rest.
func (v Vec4) OnlyZ() Vec4 { return Vec4{Z: v.Z} }

// OnlyW keeps the w component and zeroes the rest.
func (v Vec4) OnlyW() Vec4 { return Vec4{W: v.W} }

// Abs returns the absolute value of each component.
func (v Vec4) Abs() Vec4 { return Vec4{abs(v.X), abs(v.Y), abs(v.Z), abs(v.W)} }

// Floor rounds each component down.
func (v Vec4) Floor() Vec4 { return Vec4{floor(v.X), floor(v.Y), floor(v.Z), floor(v.W)} }

// Ceil rounds each component up.
func (v Vec4) Ceil() Vec4 { return Vec4{ceil(v.X), ceil(v.Y), ceil(v.Z), ceil(v.W)} }

// Round rounds each component half away from zero.
func (v Vec4) Round() Vec4 { return Vec4{round(v.X), round(v.Y), round(v.Z), round(v.W)} }

// Min returns the component-wise minimum of v and o.
func (v Vec4) Min(o Vec4) Vec4 {
	return Vec4{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z), min(v.W, o.W)}
}

// Max returns the component-wise maximum of v and o.
func (v Vec4) Max(o Vec4) Vec4 {
	return Vec4{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z), max(v.W, o.W)}
}

// Sign returns the sign of each component.
func (v Vec4) Sign() Vec4 { return Vec4{Sign(v.X), Sign(v.Y), Sign(v.Z), Sign(v.W)} }

// Clamp restricts each component to [lo, hi].
func (v Vec4) Clamp(lo, hi Vec4) Vec4 { return v.Max(lo).Min(hi) }

// Dot returns the dot product of v and o.
func (v Vec4) Dot(o Vec4) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// SqrDist returns the squared distance between v and o.
func (v Vec4) SqrDist(o Vec4) float32 { return v.Sub(o).SqrLen() }

// Dist returns the euclidean distance between v and o.
func (v Vec4) Dist(o Vec4) float32 { return sqrt(v.SqrDist(o)) }

// Lerp performs linear interpolation between v and o.
func (v Vec4) Lerp(o Vec4, t float32) Vec4 {
	return Vec4{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t), Lerp(v.Z, o.Z, t), Lerp(v.W, o.W, t)}
}

// Bezier3 performs quadratic Bezier interpolation using b as the anchor.
func (v Vec4) Bezier3(b, c Vec4, t float32) Vec4 {
	return Vec4{
		Bezier3(v.X, b.X, c.X, t),
		Bezier3(v.Y, b.Y, c.Y, t),
		Bezier3(v.Z, b.Z, c.Z, t),
		Bezier3(v.W, b.W, c.W, t),
	}
}

// Bezier4 performs cubic Bezier interpolation using b and c as anchors.
func (v Vec4) Bezier4(b, c, d Vec4, t float32) Vec4 {
	return Vec4{
		Bezier4(v.X, b.X, c.X, d.X, t),
		Bezier4(v.Y, b.Y, c.Y, d.Y, t),
		Bezier4(v.Z, b.Z, c.Z, d.Z, t),
		Bezier4(v.W, b.W, c.W, d.W, t),
	}
}

// CatmullRom interpolates between b and c using v and d as outer points.
func (v Vec4) CatmullRom(b, c, d Vec4, t float32) Vec4 {
	return Vec4{
		CatmullRom(v.X, b.X, c.X, d.X, t),
		CatmullRom(v.Y, b.Y, c.Y, d.Y, t),
		CatmullRom(v.Z, b.Z, c.Z, d.Z, t),
		CatmullRom(v.W, b.W, c.W, d.W, t),
	}
}

// Hermite interpolates from v to other using the given tangents.
func (v Vec4) Hermite(tangent, other, otherTangent Vec4, t float32) Vec4 {
	return Vec4{
		Hermite(v.X, tangent.X, other.X, otherTangent.X, t),
		Hermite(v.Y, tangent.Y, other.Y, otherTangent.Y, t),
		Hermite(v.Z, tangent.Z, other.Z, otherTangent.Z, t),
		Hermite(v.W, tangent.W, other.W, otherTangent.W, t),
	}
}

// SmoothStep interpolates towards target with smoothstep easing.
func (v Vec4) SmoothStep(target Vec4, t float32) Vec4 {
	return v.Lerp(target, SmoothStep(t))
}

// Components returns v as a slice.
func (v Vec4) Components() []float32 {
	return []float32{v.X, v.Y, v.Z, v.W}
}

// Approx reports whether every element of v is within Epsilon of o.
func (v Vec4) Approx(o Vec4) bool {
	return ApproxF32(v.X, o.X) && ApproxF32(v.Y, o.Y) &&
		ApproxF32(v.Z, o.Z) && ApproxF32(v.W, o.W)
}

// String formats v as its comma-separated components.
func (v Vec4) String() string {
	return formatFloats(v.X, v.Y, v.Z, v.W)
}
