// Package vmath provides float32 vector, matrix, rectangle and color types
// for 2D and 3D graphics.
//
// # Overview
//
// All types are small value structs. Operations never allocate (except
// Components and String) and never mutate their receiver, so values can be
// shared freely between goroutines.
//
//	import "github.com/gogpu/vmath"
//
//	p := vmath.V2(10, 20)
//	m := vmath.Rotation2(vmath.Deg(90)).Mul(vmath.Translation2(vmath.V2(5, 0)))
//	q := m.Transform(p) // rotate, then translate
//
// # Types
//
//   - Vectors: Vec2, Vec3, Vec4 (float32), Int2, Int3 (int32)
//   - Rectangles: Rect (float32), IntRect (int32, iterable)
//   - Matrices: Mat3x2 (2D affine), Mat4x4 (3D, row vectors)
//   - Angles: Radians, Degrees, both implementing Angle
//   - Color: 8-bit sRGB with HSV, XYZ, CIELAB and OKLab conversions
//
// # Conventions
//
// 2D types use screen space: y grows downwards, so Vec2Up is (0, -1).
// 3D types use a y-up space, so Vec3Up is (0, 1, 0).
//
// Matrix composition reads left to right: a.Mul(b) applies a first, then b.
//
// Exact equality uses ==; approximate equality uses the Approx methods,
// which compare with an absolute tolerance of Epsilon.
//
// # Interoperability
//
// Vectors and matrices convert to and from golang.org/x/image/math/f32,
// Int2 to image.Point and fixed.Point26_6, IntRect to image.Rectangle, and
// Color implements image/color.Color and converts to gputypes.Color.
//
// # Logging
//
// vmath is silent by default. See SetLogger.
package vmath
