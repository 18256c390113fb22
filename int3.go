package vmath

import (
	"fmt"
	"strconv"
)

// Int3 is a three-dimensional integer vector, such as a voxel coordinate.
type Int3 struct {
	X, Y, Z int32
}

// I3 is a convenience function to create an Int3.
func I3(x, y, z int32) Int3 {
	return Int3{X: x, Y: y, Z: z}
}

// Int3From2 extends an Int2 with z.
func Int3From2(i Int2, z int32) Int3 {
	return Int3{X: i.X, Y: i.Y, Z: z}
}

// Int3 directions follow Vec3: y up, z forward.
var (
	Int3Zero    = Int3{0, 0, 0}
	Int3One     = Int3{1, 1, 1}
	Int3Right   = Int3{1, 0, 0}
	Int3Left    = Int3{-1, 0, 0}
	Int3Down    = Int3{0, -1, 0}
	Int3Up      = Int3{0, 1, 0}
	Int3Forward = Int3{0, 0, 1}
	Int3Back    = Int3{0, 0, -1}
)

// Vec3 converts i to a float vector.
func (i Int3) Vec3() Vec3 {
	return Vec3{X: float32(i.X), Y: float32(i.Y), Z: float32(i.Z)}
}

// XY drops the z component.
func (i Int3) XY() Int2 {
	return Int2{X: i.X, Y: i.Y}
}

// Index returns the n'th component (0=x .. 2=z).
// It panics if n is out of range.
func (i Int3) Index(n int) int32 {
	switch n {
	case 0:
		return i.X
	case 1:
		return i.Y
	case 2:
		return i.Z
	}
	panic(fmt.Sprintf("vmath: Int3 index %d out of range", n))
}

// ManhattanLen returns |x| + |y| + |z|.
func (i Int3) ManhattanLen() int32 {
	return absInt(i.X) + absInt(i.Y) + absInt(i.Z)
}

// ManhattanDist returns the taxicab distance between i and o.
func (i Int3) ManhattanDist(o Int3) int32 {
	return i.Sub(o).ManhattanLen()
}

// OnlyX keeps the x component and zeroes the rest.
func (i Int3) OnlyX() Int3 { return Int3{X: i.X} }

// OnlyY keeps the y component and zeroes the rest.
func (i Int3) OnlyY() Int3 { return Int3{Y: i.Y} }

// OnlyZ keeps the z component and zeroes the rest.
func (i Int3) OnlyZ() Int3 { return Int3{Z: i.Z} }

// Abs returns the absolute value of each component.
func (i Int3) Abs() Int3 { return Int3{absInt(i.X), absInt(i.Y), absInt(i.Z)} }

// Min returns the component-wise minimum of i and o.
func (i Int3) Min(o Int3) Int3 {
	return Int3{min(i.X, o.X), min(i.Y, o.Y), min(i.Z, o.Z)}
}

// Max returns the component-wise maximum of i and o.
func (i Int3) Max(o Int3) Int3 {
	return Int3{max(i.X, o.X), max(i.Y, o.Y), max(i.Z, o.Z)}
}

// Sign returns the sign of each component.
func (i Int3) Sign() Int3 { return Int3{SignInt(i.X), SignInt(i.Y), SignInt(i.Z)} }

// Clamp restricts each component to [lo, hi].
func (i Int3) Clamp(lo, hi Int3) Int3 { return i.Max(lo).Min(hi) }

// Add returns the component-wise sum of i and o.
func (i Int3) Add(o Int3) Int3 { return Int3{i.X + o.X, i.Y + o.Y, i.Z + o.Z} }

// Sub returns the component-wise difference i - o.
func (i Int3) Sub(o Int3) Int3 { return Int3{i.X - o.X, i.Y - o.Y, i.Z - o.Z} }

// Mul returns the component-wise product of i and o.
func (i Int3) Mul(o Int3) Int3 { return Int3{i.X * o.X, i.Y * o.Y, i.Z * o.Z} }

// Div divides component-wise, truncating toward zero.
// It panics if a component of o is zero.
func (i Int3) Div(o Int3) Int3 { return Int3{i.X / o.X, i.Y / o.Y, i.Z / o.Z} }

// Mod returns the component-wise remainder, which has the sign of i.
func (i Int3) Mod(o Int3) Int3 { return Int3{i.X % o.X, i.Y % o.Y, i.Z % o.Z} }

// Neg returns i with every component negated.
func (i Int3) Neg() Int3 { return Int3{-i.X, -i.Y, -i.Z} }

// Scale returns i multiplied by s.
func (i Int3) Scale(s int32) Int3 { return Int3{i.X * s, i.Y * s, i.Z * s} }

// DivScalar divides each component by s, truncating toward zero.
func (i Int3) DivScalar(s int32) Int3 { return Int3{i.X / s, i.Y / s, i.Z / s} }

// ModScalar returns the remainder of each component by s.
func (i Int3) ModScalar(s int32) Int3 { return Int3{i.X % s, i.Y % s, i.Z % s} }

// String formats i as its comma-separated components.
func (i Int3) String() string {
	return strconv.FormatInt(int64(i.X), 10) + ", " +
		strconv.FormatInt(int64(i.Y), 10) + ", " +
		strconv.FormatInt(int64(i.Z), 10)
}
