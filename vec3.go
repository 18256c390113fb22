package vmath

import "golang.org/x/image/math/f32"

// Vec3 is a three-dimensional float32 vector.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Splat3 returns a Vec3 with all components set to v.
func Splat3(v float32) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

// Vec3From2 extends a Vec2 with z.
func Vec3From2(v Vec2, z float32) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

// Vec3 directions use a y-up, z-forward space.
var (
	Vec3Zero    = Vec3{0, 0, 0}
	Vec3One     = Vec3{1, 1, 1}
	Vec3Right   = Vec3{1, 0, 0}
	Vec3Left    = Vec3{-1, 0, 0}
	Vec3Down    = Vec3{0, -1, 0}
	Vec3Up      = Vec3{0, 1, 0}
	Vec3Forward = Vec3{0, 0, 1}
	Vec3Back    = Vec3{0, 0, -1}
)

// Vec3FromF32 converts an x/image f32.Vec3.
func Vec3FromF32(v f32.Vec3) Vec3 {
	return Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// F32 converts v to an x/image f32.Vec3.
func (v Vec3) F32() f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

// Extend returns a Vec4 with v's components and the given w.
func (v Vec3) Extend(w float32) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// XY drops the z component.
func (v Vec3) XY() Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Int3 truncates v's components toward zero.
func (v Vec3) Int3() Int3 {
	return Int3{X: int32(v.X), Y: int32(v.Y), Z: int32(v.Z)}
}

// Add returns the component-wise sum of v and w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns the component-wise difference v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Mul returns the component-wise product of v and w.
func (v Vec3) Mul(w Vec3) Vec3 { return Vec3{v.X * w.X, v.Y * w.Y, v.Z * w.Z} }

// Div returns the component-wise quotient of v and w.
func (v Vec3) Div(w Vec3) Vec3 { return Vec3{v.X / w.X, v.Y / w.Y, v.Z / w.Z} }

// Neg returns v with every component negated.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Scale returns v multiplied by s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// DivScalar returns v divided by s.
func (v Vec3) DivScalar(s float32) Vec3 { return Vec3{v.X / s, v.Y / s, v.Z / s} }

// Mod returns the component-wise floating-point remainder of v / w.
func (v Vec3) Mod(w Vec3) Vec3 {
	return Vec3{mod(v.X, w.X), mod(v.Y, w.Y), mod(v.Z, w.Z)}
}

// ModScalar returns the floating-point remainder of each component by s.
func (v Vec3) ModScalar(s float32) Vec3 {
	return Vec3{mod(v.X, s), mod(v.Y, s), mod(v.Z, s)}
}

// SqrLen returns the squared length of v.
func (v Vec3) SqrLen() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Len returns the euclidean length of v.
func (v Vec3) Len() float32 {
	return sqrt(v.SqrLen())
}

// Norm returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec3) Norm() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// OnlyX keeps the x component and zeroes the rest.
func (v Vec3) OnlyX() Vec3 { return Vec3{v.X, 0, 0} }

// OnlyY keeps the y component and zeroes the rest.
func (v Vec3) OnlyY() Vec3 { return Vec3{0, v.Y, 0} }

// OnlyZ keeps the z component and zeroes the rest.
func (v Vec3) OnlyZ() Vec3 { return Vec3{0, 0, v.Z} }

// Abs returns the absolute value of each component.
func (v Vec3) Abs() Vec3 { return Vec3{abs(v.X), abs(v.Y), abs(v.Z)} }

// Floor rounds each component down.
func (v Vec3) Floor() Vec3 { return Vec3{floor(v.X), floor(v.Y), floor(v.Z)} }

// Ceil rounds each component up.
func (v Vec3) Ceil() Vec3 { return Vec3{ceil(v.X), ceil(v.Y), ceil(v.Z)} }

// Round rounds each component half away from zero.
func (v Vec3) Round() Vec3 { return Vec3{round(v.X), round(v.Y), round(v.Z)} }

// Min returns the component-wise minimum of v and w.
func (v Vec3) Min(w Vec3) Vec3 { return Vec3{min(v.X, w.X), min(v.Y, w.Y), min(v.Z, w.Z)} }

// Max returns the component-wise maximum of v and w.
func (v Vec3) Max(w Vec3) Vec3 { return Vec3{max(v.X, w.X), max(v.Y, w.Y), max(v.Z, w.Z)} }

// Sign returns the sign of each component.
func (v Vec3) Sign() Vec3 { return Vec3{Sign(v.X), Sign(v.Y), Sign(v.Z)} }

// Clamp restricts each component to [lo, hi].
func (v Vec3) Clamp(lo, hi Vec3) Vec3 { return v.Max(lo).Min(hi) }

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// SqrDist returns the squared distance between v and w.
func (v Vec3) SqrDist(w Vec3) float32 {
	return v.Sub(w).SqrLen()
}

// Dist returns the euclidean distance between v and w.
func (v Vec3) Dist(w Vec3) float32 {
	return sqrt(v.SqrDist(w))
}

// Lerp performs linear interpolation between v and w.
func (v Vec3) Lerp(w Vec3, t float32) Vec3 {
	return Vec3{Lerp(v.X, w.X, t), Lerp(v.Y, w.Y, t), Lerp(v.Z, w.Z, t)}
}

// Bezier3 performs quadratic Bezier interpolation using b as the anchor.
func (v Vec3) Bezier3(b, c Vec3, t float32) Vec3 {
	return Vec3{
		Bezier3(v.X, b.X, c.X, t),
		Bezier3(v.Y, b.Y, c.Y, t),
		Bezier3(v.Z, b.Z, c.Z, t),
	}
}

// Bezier4 performs cubic Bezier interpolation using b and c as anchors.
func (v Vec3) Bezier4(b, c, d Vec3, t float32) Vec3 {
	return Vec3{
		Bezier4(v.X, b.X, c.X, d.X, t),
		Bezier4(v.Y, b.Y, c.Y, d.Y, t),
		Bezier4(v.Z, b.Z, c.Z, d.Z, t),
	}
}

// CatmullRom interpolates between b and c using v and d as outer points.
func (v Vec3) CatmullRom(b, c, d Vec3, t float32) Vec3 {
	return Vec3{
		CatmullRom(v.X, b.X, c.X, d.X, t),
		CatmullRom(v.Y, b.Y, c.Y, d.Y, t),
		CatmullRom(v.Z, b.Z, c.Z, d.Z, t),
	}
}

// Hermite interpolates from v to other using the given tangents.
func (v Vec3) Hermite(tangent, other, otherTangent Vec3, t float32) Vec3 {
	return Vec3{
		Hermite(v.X, tangent.X, other.X, otherTangent.X, t),
		Hermite(v.Y, tangent.Y, other.Y, otherTangent.Y, t),
		Hermite(v.Z, tangent.Z, other.Z, otherTangent.Z, t),
	}
}

// SmoothStep interpolates towards target with smoothstep easing.
func (v Vec3) SmoothStep(target Vec3, t float32) Vec3 {
	return v.Lerp(target, SmoothStep(t))
}

// Components returns v as a slice.
func (v Vec3) Components() []float32 {
	return []float32{v.X, v.Y, v.Z}
}

// Approx reports whether every element of v is within Epsilon of w.
func (v Vec3) Approx(w Vec3) bool {
	return ApproxF32(v.X, w.X) && ApproxF32(v.Y, w.Y) && ApproxF32(v.Z, w.Z)
}

// String formats v as its comma-separated components.
func (v Vec3) String() string {
	return formatFloats(v.X, v.Y, v.Z)
}
