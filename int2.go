package vmath

import (
	"fmt"
	"image"
	"strconv"

	"golang.org/x/image/math/fixed"
)

// Int2 is a two-dimensional integer vector, typically a grid or pixel
// coordinate.
type Int2 struct {
	X, Y int32
}

// I2 is a convenience function to create an Int2.
func I2(x, y int32) Int2 {
	return Int2{X: x, Y: y}
}

// Int2 directions use screen space, where y grows downwards.
var (
	Int2Zero  = Int2{0, 0}
	Int2One   = Int2{1, 1}
	Int2Right = Int2{1, 0}
	Int2Left  = Int2{-1, 0}
	Int2Down  = Int2{0, 1}
	Int2Up    = Int2{0, -1}
)

// Int2FromPoint converts an image.Point.
func Int2FromPoint(p image.Point) Int2 {
	return Int2{X: int32(p.X), Y: int32(p.Y)} //nolint:gosec // image coordinates fit in int32
}

// Int2FromFixed converts a 26.6 fixed-point position, flooring each axis.
func Int2FromFixed(p fixed.Point26_6) Int2 {
	return Int2{X: int32(p.X.Floor()), Y: int32(p.Y.Floor())} //nolint:gosec // 26.6 integer part fits in int32
}

// Point converts i to an image.Point.
func (i Int2) Point() image.Point {
	return image.Point{X: int(i.X), Y: int(i.Y)}
}

// Fixed converts i to a 26.6 fixed-point position.
func (i Int2) Fixed() fixed.Point26_6 {
	return fixed.P(int(i.X), int(i.Y))
}

// Vec2 converts i to a float vector.
func (i Int2) Vec2() Vec2 {
	return Vec2{X: float32(i.X), Y: float32(i.Y)}
}

// Index returns the i'th component (0=x, 1=y).
// It panics if n is out of range.
func (i Int2) Index(n int) int32 {
	switch n {
	case 0:
		return i.X
	case 1:
		return i.Y
	}
	panic(fmt.Sprintf("vmath: Int2 index %d out of range", n))
}

// ManhattanLen returns |x| + |y|.
func (i Int2) ManhattanLen() int32 {
	return absInt(i.X) + absInt(i.Y)
}

// ManhattanDist returns the taxicab distance between i and o.
func (i Int2) ManhattanDist(o Int2) int32 {
	return i.Sub(o).ManhattanLen()
}

// TurnLeft rotates i by 90 degrees to the left in screen space.
func (i Int2) TurnLeft() Int2 { return Int2{i.Y, -i.X} }

// TurnRight rotates i by 90 degrees to the right in screen space.
func (i Int2) TurnRight() Int2 { return Int2{-i.Y, i.X} }

// OnlyX keeps the x component and zeroes the rest.
func (i Int2) OnlyX() Int2 { return Int2{i.X, 0} }

// OnlyY keeps the y component and zeroes the rest.
func (i Int2) OnlyY() Int2 { return Int2{0, i.Y} }

// Abs returns the absolute value of each component.
func (i Int2) Abs() Int2 { return Int2{absInt(i.X), absInt(i.Y)} }

// Min returns the component-wise minimum of i and o.
func (i Int2) Min(o Int2) Int2 { return Int2{min(i.X, o.X), min(i.Y, o.Y)} }

// Max returns the component-wise maximum of i and o.
func (i Int2) Max(o Int2) Int2 { return Int2{max(i.X, o.X), max(i.Y, o.Y)} }

// Sign returns the sign of each component.
func (i Int2) Sign() Int2 { return Int2{SignInt(i.X), SignInt(i.Y)} }

// Clamp restricts each component to [lo, hi].
func (i Int2) Clamp(lo, hi Int2) Int2 { return i.Max(lo).Min(hi) }

// Add returns the component-wise sum of i and o.
func (i Int2) Add(o Int2) Int2 { return Int2{i.X + o.X, i.Y + o.Y} }

// Sub returns the component-wise difference i - o.
func (i Int2) Sub(o Int2) Int2 { return Int2{i.X - o.X, i.Y - o.Y} }

// Mul returns the component-wise product of i and o.
func (i Int2) Mul(o Int2) Int2 { return Int2{i.X * o.X, i.Y * o.Y} }

// Neg returns i with every component negated.
func (i Int2) Neg() Int2 { return Int2{-i.X, -i.Y} }

// Div divides component-wise, truncating toward zero.
// It panics if a component of o is zero.
func (i Int2) Div(o Int2) Int2 { return Int2{i.X / o.X, i.Y / o.Y} }

// Mod returns the component-wise remainder, which has the sign of i.
func (i Int2) Mod(o Int2) Int2 { return Int2{i.X % o.X, i.Y % o.Y} }

// Scale returns i multiplied by s.
func (i Int2) Scale(s int32) Int2 { return Int2{i.X * s, i.Y * s} }

// DivScalar divides each component by s, truncating toward zero.
func (i Int2) DivScalar(s int32) Int2 { return Int2{i.X / s, i.Y / s} }

// ModScalar returns the remainder of each component by s.
func (i Int2) ModScalar(s int32) Int2 { return Int2{i.X % s, i.Y % s} }

// String formats i as its comma-separated components.
func (i Int2) String() string {
	return strconv.FormatInt(int64(i.X), 10) + ", " + strconv.FormatInt(int64(i.Y), 10)
}
