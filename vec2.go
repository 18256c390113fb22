package vmath

import (
	"strconv"

	"golang.org/x/image/math/f32"
)

// Vec2 is a two-dimensional float32 vector.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Splat2 returns a Vec2 with both components set to v.
func Splat2(v float32) Vec2 {
	return Vec2{X: v, Y: v}
}

// Vec2 directions use screen space, where y grows downwards.
var (
	Vec2Zero  = Vec2{0, 0}
	Vec2One   = Vec2{1, 1}
	Vec2Right = Vec2{1, 0}
	Vec2Left  = Vec2{-1, 0}
	Vec2Down  = Vec2{0, 1}
	Vec2Up    = Vec2{0, -1}
)

// Polar returns the unit vector pointing in the direction of a.
func Polar(a Angle) Vec2 {
	r := float32(a.Radians())
	return Vec2{X: cos(r), Y: sin(r)}
}

// Bary returns the point with barycentric coordinates (t1, t2)
// relative to the triangle a, b, c.
func Bary(a, b, c Vec2, t1, t2 float32) Vec2 {
	return Vec2{
		X: a.X + t1*(b.X-a.X) + t2*(c.X-a.X),
		Y: a.Y + t1*(b.Y-a.Y) + t2*(c.Y-a.Y),
	}
}

// Vec2FromF32 converts an x/image f32.Vec2.
func Vec2FromF32(v f32.Vec2) Vec2 {
	return Vec2{X: v[0], Y: v[1]}
}

// F32 converts v to an x/image f32.Vec2.
func (v Vec2) F32() f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

// Extend returns a Vec3 with v's components and the given z.
func (v Vec2) Extend(z float32) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

// Int2 truncates v's components toward zero.
func (v Vec2) Int2() Int2 {
	return Int2{X: int32(v.X), Y: int32(v.Y)}
}

// Add returns the component-wise sum of v and w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns the component-wise difference v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Mul returns the component-wise product of v and w.
func (v Vec2) Mul(w Vec2) Vec2 { return Vec2{v.X * w.X, v.Y * w.Y} }

// Div returns the component-wise quotient of v and w.
func (v Vec2) Div(w Vec2) Vec2 { return Vec2{v.X / w.X, v.Y / w.Y} }

// Neg returns v with every component negated.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v.X * s, v.Y * s} }

// DivScalar returns v divided by s.
func (v Vec2) DivScalar(s float32) Vec2 { return Vec2{v.X / s, v.Y / s} }

// Mod returns the component-wise floating-point remainder of v / w.
// The result has the sign of v.
func (v Vec2) Mod(w Vec2) Vec2 { return Vec2{mod(v.X, w.X), mod(v.Y, w.Y)} }

// ModScalar returns the floating-point remainder of each component by s.
func (v Vec2) ModScalar(s float32) Vec2 { return Vec2{mod(v.X, s), mod(v.Y, s)} }

// SqrLen returns the squared length of v.
func (v Vec2) SqrLen() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the euclidean length of v.
func (v Vec2) Len() float32 {
	return sqrt(v.SqrLen())
}

// Angle returns the direction of v in radians.
func (v Vec2) Angle() Radians {
	return Radians(atan2(v.Y, v.X))
}

// Norm returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec2) Norm() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// TurnLeft rotates v by 90 degrees to the left in screen space.
func (v Vec2) TurnLeft() Vec2 { return Vec2{v.Y, -v.X} }

// TurnRight rotates v by 90 degrees to the right in screen space.
func (v Vec2) TurnRight() Vec2 { return Vec2{-v.Y, v.X} }

// OnlyX keeps the x component and zeroes the rest.
func (v Vec2) OnlyX() Vec2 { return Vec2{v.X, 0} }

// OnlyY keeps the y component and zeroes the rest.
func (v Vec2) OnlyY() Vec2 { return Vec2{0, v.Y} }

// Abs returns the absolute value of each component.
func (v Vec2) Abs() Vec2 { return Vec2{abs(v.X), abs(v.Y)} }

// Floor rounds each component down.
func (v Vec2) Floor() Vec2 { return Vec2{floor(v.X), floor(v.Y)} }

// Ceil rounds each component up.
func (v Vec2) Ceil() Vec2 { return Vec2{ceil(v.X), ceil(v.Y)} }

// Round rounds each component half away from zero.
func (v Vec2) Round() Vec2 { return Vec2{round(v.X), round(v.Y)} }

// Min returns the component-wise minimum of v and w.
func (v Vec2) Min(w Vec2) Vec2 { return Vec2{min(v.X, w.X), min(v.Y, w.Y)} }

// Max returns the component-wise maximum of v and w.
func (v Vec2) Max(w Vec2) Vec2 { return Vec2{max(v.X, w.X), max(v.Y, w.Y)} }

// Sign returns the sign of each component.
func (v Vec2) Sign() Vec2 { return Vec2{Sign(v.X), Sign(v.Y)} }

// Clamp restricts each component to [lo, hi].
func (v Vec2) Clamp(lo, hi Vec2) Vec2 { return v.Max(lo).Min(hi) }

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product of v and w.
func (v Vec2) Cross(w Vec2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Project projects v onto the line through origin along the
// normalized axis.
func (v Vec2) Project(origin, axis Vec2) Vec2 {
	return origin.Add(axis.Scale(v.Dot(axis)))
}

// SqrDist returns the squared distance between v and w.
func (v Vec2) SqrDist(w Vec2) float32 {
	return SqrDistance(v.X, v.Y, w.X, w.Y)
}

// Dist returns the euclidean distance between v and w.
func (v Vec2) Dist(w Vec2) float32 {
	return sqrt(v.SqrDist(w))
}

// Lerp performs linear interpolation between v and w.
// t=0.5 returns the midpoint.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{Lerp(v.X, w.X, t), Lerp(v.Y, w.Y, t)}
}

// Bezier3 performs quadratic Bezier interpolation using b as the anchor.
func (v Vec2) Bezier3(b, c Vec2, t float32) Vec2 {
	return Vec2{Bezier3(v.X, b.X, c.X, t), Bezier3(v.Y, b.Y, c.Y, t)}
}

// Bezier4 performs cubic Bezier interpolation using b and c as anchors.
func (v Vec2) Bezier4(b, c, d Vec2, t float32) Vec2 {
	return Vec2{Bezier4(v.X, b.X, c.X, d.X, t), Bezier4(v.Y, b.Y, c.Y, d.Y, t)}
}

// CatmullRom interpolates between b and c using v and d as outer points.
func (v Vec2) CatmullRom(b, c, d Vec2, t float32) Vec2 {
	return Vec2{CatmullRom(v.X, b.X, c.X, d.X, t), CatmullRom(v.Y, b.Y, c.Y, d.Y, t)}
}

// Hermite interpolates from v to other using the given tangents.
func (v Vec2) Hermite(tangent, other, otherTangent Vec2, t float32) Vec2 {
	return Vec2{
		Hermite(v.X, tangent.X, other.X, otherTangent.X, t),
		Hermite(v.Y, tangent.Y, other.Y, otherTangent.Y, t),
	}
}

// Reflect reflects v off a surface with the given unit normal.
func (v Vec2) Reflect(normal Vec2) Vec2 {
	d := v.Dot(normal) * 2
	return Vec2{v.X - normal.X*d, v.Y - normal.Y*d}
}

// SmoothStep interpolates towards target with smoothstep easing.
func (v Vec2) SmoothStep(target Vec2, t float32) Vec2 {
	return v.Lerp(target, SmoothStep(t))
}

// Components returns v as a slice.
func (v Vec2) Components() []float32 {
	return []float32{v.X, v.Y}
}

// Approx reports whether v and w are approximately equal.
func (v Vec2) Approx(w Vec2) bool {
	return ApproxF32(v.X, w.X) && ApproxF32(v.Y, w.Y)
}

// String formats v as its comma-separated components.
func (v Vec2) String() string {
	return formatFloats(v.X, v.Y)
}

// formatFloats joins values with ", " using the shortest representation.
func formatFloats(vals ...float32) string {
	buf := make([]byte, 0, 16*len(vals))
	for i, f := range vals {
		if i > 0 {
			buf = append(buf, ", "...)
		}
		buf = strconv.AppendFloat(buf, float64(f), 'g', -1, 32)
	}
	return string(buf)
}
