package vmath

import "golang.org/x/image/math/f32"

// Mat3x2 is a 2D affine transformation stored as two rows in row-major
// order:
//
//	| m0  m1  m2 |
//	| m3  m4  m5 |
//
// This represents the transformation:
//
//	x' = m0*x + m1*y + m2
//	y' = m3*x + m4*y + m5
//
// The layout matches x/image's f32.Aff3.
type Mat3x2 struct {
	M [6]float32
}

// Mat3x2Zero is the zero matrix; Mat3x2Identity leaves points unchanged.
var (
	Mat3x2Zero     = Mat3x2{}
	Mat3x2Identity = Mat3x2{M: [6]float32{1, 0, 0, 0, 1, 0}}
)

// NewMat3x2 creates a matrix from its six elements.
func NewMat3x2(m [6]float32) Mat3x2 {
	return Mat3x2{M: m}
}

// Mat3x2FromAff3 converts an x/image f32.Aff3.
func Mat3x2FromAff3(a f32.Aff3) Mat3x2 {
	return Mat3x2{M: a}
}

// Translation2 creates a translation matrix.
func Translation2(amount Vec2) Mat3x2 {
	return Mat3x2{M: [6]float32{1, 0, amount.X, 0, 1, amount.Y}}
}

// Scaling2 creates a scaling matrix.
func Scaling2(amount Vec2) Mat3x2 {
	return Mat3x2{M: [6]float32{amount.X, 0, 0, 0, amount.Y, 0}}
}

// Rotation2 creates a rotation matrix. Positive angles rotate from +x
// towards +y.
func Rotation2(a Angle) Mat3x2 {
	r := float32(a.Radians())
	c, s := cos(r), sin(r)
	return Mat3x2{M: [6]float32{c, -s, 0, s, c, 0}}
}

// Skew2 creates a shear matrix from skew angles in radians along each axis.
func Skew2(angles Vec2) Mat3x2 {
	return Mat3x2{M: [6]float32{1, tan(angles.X), 0, tan(angles.Y), 1, 0}}
}

// Aff3 converts m to an x/image f32.Aff3.
func (m Mat3x2) Aff3() f32.Aff3 {
	return m.M
}

// Transform applies m to the point p.
func (m Mat3x2) Transform(p Vec2) Vec2 {
	return m.TransformXY(p.X, p.Y)
}

// TransformXY applies m to the point (x, y).
func (m Mat3x2) TransformXY(x, y float32) Vec2 {
	return Vec2{
		X: x*m.M[0] + y*m.M[1] + m.M[2],
		Y: x*m.M[3] + y*m.M[4] + m.M[5],
	}
}

// TransformDir applies m to the direction d, ignoring translation.
func (m Mat3x2) TransformDir(d Vec2) Vec2 {
	return Vec2{
		X: d.X*m.M[0] + d.Y*m.M[1],
		Y: d.X*m.M[3] + d.Y*m.M[4],
	}
}

// Determinant returns the determinant of the linear part of m.
func (m Mat3x2) Determinant() float32 {
	return m.M[0]*m.M[4] - m.M[3]*m.M[1]
}

// Invert returns the inverse of m. If m is singular it returns the zero
// matrix and false.
func (m Mat3x2) Invert() (Mat3x2, bool) {
	det := m.Determinant()
	if det == 0 {
		Logger().Debug("vmath: Mat3x2 is not invertible", "m", m.String())
		return Mat3x2{}, false
	}
	inv := 1 / det
	a := &m.M
	return Mat3x2{M: [6]float32{
		a[4] * inv,
		-a[1] * inv,
		(a[1]*a[5] - a[2]*a[4]) * inv,
		-a[3] * inv,
		a[0] * inv,
		-(a[0]*a[5] - a[2]*a[3]) * inv,
	}}, true
}

// Mul composes m with other. The result applies m first, then other:
//
//	m.Mul(other).Transform(p) == other.Transform(m.Transform(p))
func (m Mat3x2) Mul(other Mat3x2) Mat3x2 {
	a := &m.M
	b := &other.M
	return Mat3x2{M: [6]float32{
		a[0]*b[0] + a[3]*b[1],
		a[1]*b[0] + a[4]*b[1],
		a[2]*b[0] + a[5]*b[1] + b[2],
		a[0]*b[3] + a[3]*b[4],
		a[1]*b[3] + a[4]*b[4],
		a[2]*b[3] + a[5]*b[4] + b[5],
	}}
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Mat3x2) IsIdentity() bool {
	return m == Mat3x2Identity
}

// Components returns the matrix elements in storage order.
func (m Mat3x2) Components() []float32 {
	return m.M[:]
}

// Approx reports whether every element of m is within Epsilon of o.
func (m Mat3x2) Approx(o Mat3x2) bool {
	return Approx(m.M[:], o.M[:])
}

// String formats the matrix with one row per line.
func (m Mat3x2) String() string {
	return formatFloats(m.M[0], m.M[1], m.M[2]) + "\n" + formatFloats(m.M[3], m.M[4], m.M[5])
}
