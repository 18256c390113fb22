package vmath

import "golang.org/x/image/math/f32"

// Mat4x4 is a 4x4 transformation matrix stored in row-major order for
// row vectors: a point is transformed as v' = v × M, so the translation
// lives in M[12], M[13] and M[14].
//
// Projection helpers produce right-handed clip space with depth in [0, 1].
type Mat4x4 struct {
	M [16]float32
}

// Mat4x4Zero is the zero matrix; Mat4x4Identity leaves points unchanged.
var (
	Mat4x4Zero     = Mat4x4{}
	Mat4x4Identity = Mat4x4{M: [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
)

// NewMat4x4 creates a matrix from its sixteen elements.
func NewMat4x4(m [16]float32) Mat4x4 {
	return Mat4x4{M: m}
}

// Mat4x4FromF32 converts an x/image f32.Mat4, which uses column vectors.
func Mat4x4FromF32(m f32.Mat4) Mat4x4 {
	return Mat4x4{M: m}.Transpose()
}

// F32 converts m to an x/image f32.Mat4 acting on column vectors.
func (m Mat4x4) F32() f32.Mat4 {
	return m.Transpose().M
}

// Translation3 creates a translation matrix.
func Translation3(amount Vec3) Mat4x4 {
	return Mat4x4{M: [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		amount.X, amount.Y, amount.Z, 1,
	}}
}

// Scaling3 creates a scaling matrix.
func Scaling3(scale Vec3) Mat4x4 {
	return Mat4x4{M: [16]float32{
		scale.X, 0, 0, 0,
		0, scale.Y, 0, 0,
		0, 0, scale.Z, 0,
		0, 0, 0, 1,
	}}
}

// RotationX creates a rotation around the x axis.
func RotationX(a Angle) Mat4x4 {
	r := float32(a.Radians())
	c, s := cos(r), sin(r)
	return Mat4x4{M: [16]float32{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}}
}

// RotationY creates a rotation around the y axis.
func RotationY(a Angle) Mat4x4 {
	r := float32(a.Radians())
	c, s := cos(r), sin(r)
	return Mat4x4{M: [16]float32{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}}
}

// RotationZ creates a rotation around the z axis.
func RotationZ(a Angle) Mat4x4 {
	r := float32(a.Radians())
	c, s := cos(r), sin(r)
	return Mat4x4{M: [16]float32{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// RotationAxis creates a rotation around the normalized axis.
func RotationAxis(axis Vec3, a Angle) Mat4x4 {
	x, y, z := axis.X, axis.Y, axis.Z
	r := float32(a.Radians())
	s, c := sin(r), cos(r)
	xx, yy, zz := x*x, y*y, z*z
	xy, xz, yz := x*y, x*z, y*z
	return Mat4x4{M: [16]float32{
		xx + c*(1-xx), xy - c*xy + s*z, xz - c*xz - s*y, 0,
		xy - c*xy - s*z, yy + c*(1-yy), yz - c*yz + s*x, 0,
		xz - c*xz + s*y, yz - c*yz - s*x, zz + c*(1-zz), 0,
		0, 0, 0, 1,
	}}
}

// Orthographic creates an off-center orthographic projection.
func Orthographic(left, right, bottom, top, near, far float32) Mat4x4 {
	return Mat4x4{M: [16]float32{
		2 / (right - left), 0, 0, 0,
		0, 2 / (top - bottom), 0, 0,
		0, 0, 1 / (near - far), 0,
		(left + right) / (left - right), (top + bottom) / (bottom - top), near / (near - far), 1,
	}}
}

// LookAt creates a right-handed view matrix for a camera at eye looking
// towards target. The camera looks down its -z axis, matching Perspective
// and PerspectiveFov.
func LookAt(eye, target, up Vec3) Mat4x4 {
	z := eye.Sub(target).Norm()
	x := up.Cross(z).Norm()
	y := z.Cross(x)
	return Mat4x4{M: [16]float32{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}}
}

// Perspective creates a perspective projection from the size of the
// view volume at the near plane.
func Perspective(width, height, near, far float32) Mat4x4 {
	return Mat4x4{M: [16]float32{
		2 * near / width, 0, 0, 0,
		0, 2 * near / height, 0, 0,
		0, 0, far / (near - far), -1,
		0, 0, near * far / (near - far), 0,
	}}
}

// PerspectiveFov creates a perspective projection from a vertical field
// of view and aspect ratio (width / height).
func PerspectiveFov(fov Angle, aspect, near, far float32) Mat4x4 {
	yScale := 1 / tan(float32(fov.Radians())*0.5)
	xScale := yScale / aspect
	return Mat4x4{M: [16]float32{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		0, 0, far / (near - far), -1,
		0, 0, near * far / (near - far), 0,
	}}
}

// Transform4 transforms the homogeneous vector p.
func (m Mat4x4) Transform4(p Vec4) Vec4 {
	a := &m.M
	return Vec4{
		p.X*a[0] + p.Y*a[4] + p.Z*a[8] + p.W*a[12],
		p.X*a[1] + p.Y*a[5] + p.Z*a[9] + p.W*a[13],
		p.X*a[2] + p.Y*a[6] + p.Z*a[10] + p.W*a[14],
		p.X*a[3] + p.Y*a[7] + p.Z*a[11] + p.W*a[15],
	}
}

// Transform4Dir transforms p ignoring its w component and translation.
func (m Mat4x4) Transform4Dir(p Vec4) Vec4 {
	a := &m.M
	return Vec4{
		p.X*a[0] + p.Y*a[4] + p.Z*a[8],
		p.X*a[1] + p.Y*a[5] + p.Z*a[9],
		p.X*a[2] + p.Y*a[6] + p.Z*a[10],
		p.X*a[3] + p.Y*a[7] + p.Z*a[11],
	}
}

// Transform3 transforms the point p (implicit w = 1). No perspective
// divide is applied.
func (m Mat4x4) Transform3(p Vec3) Vec3 {
	a := &m.M
	return Vec3{
		p.X*a[0] + p.Y*a[4] + p.Z*a[8] + a[12],
		p.X*a[1] + p.Y*a[5] + p.Z*a[9] + a[13],
		p.X*a[2] + p.Y*a[6] + p.Z*a[10] + a[14],
	}
}

// Transform3Dir transforms the direction d (implicit w = 0).
func (m Mat4x4) Transform3Dir(d Vec3) Vec3 {
	a := &m.M
	return Vec3{
		d.X*a[0] + d.Y*a[4] + d.Z*a[8],
		d.X*a[1] + d.Y*a[5] + d.Z*a[9],
		d.X*a[2] + d.Y*a[6] + d.Z*a[10],
	}
}

// Transform2 transforms the point p in the z = 0 plane.
func (m Mat4x4) Transform2(p Vec2) Vec2 {
	a := &m.M
	return Vec2{
		p.X*a[0] + p.Y*a[4] + a[12],
		p.X*a[1] + p.Y*a[5] + a[13],
	}
}

// Transform2Dir transforms the direction d in the z = 0 plane.
func (m Mat4x4) Transform2Dir(d Vec2) Vec2 {
	a := &m.M
	return Vec2{d.X*a[0] + d.Y*a[4], d.X*a[1] + d.Y*a[5]}
}

// Determinant returns the determinant of m.
func (m Mat4x4) Determinant() float32 {
	a := &m.M
	b0 := a[8]*a[13] - a[9]*a[12]
	b1 := a[8]*a[14] - a[10]*a[12]
	b2 := a[11]*a[12] - a[8]*a[15]
	b3 := a[9]*a[14] - a[10]*a[13]
	b4 := a[11]*a[13] - a[9]*a[15]
	b5 := a[10]*a[15] - a[11]*a[14]
	d11 := a[5]*b5 + a[6]*b4 + a[7]*b3
	d12 := a[4]*b5 + a[6]*b2 + a[7]*b1
	d13 := a[4]*-b4 + a[5]*b2 + a[7]*b0
	d14 := a[4]*b3 + a[5]*-b1 + a[6]*b0
	return a[0]*d11 - a[1]*d12 + a[2]*d13 - a[3]*d14
}

// Invert returns the inverse of m. If m is singular it returns the zero
// matrix and false.
func (m Mat4x4) Invert() (Mat4x4, bool) {
	a := &m.M
	b0 := a[8]*a[13] - a[9]*a[12]
	b1 := a[8]*a[14] - a[10]*a[12]
	b2 := a[11]*a[12] - a[8]*a[15]
	b3 := a[9]*a[14] - a[10]*a[13]
	b4 := a[11]*a[13] - a[9]*a[15]
	b5 := a[10]*a[15] - a[11]*a[14]
	d11 := a[5]*b5 + a[6]*b4 + a[7]*b3
	d12 := a[4]*b5 + a[6]*b2 + a[7]*b1
	d13 := a[4]*-b4 + a[5]*b2 + a[7]*b0
	d14 := a[4]*b3 + a[5]*-b1 + a[6]*b0
	det := a[0]*d11 - a[1]*d12 + a[2]*d13 - a[3]*d14
	if det == 0 {
		Logger().Debug("vmath: Mat4x4 is not invertible")
		return Mat4x4{}, false
	}
	inv := 1 / det

	c0 := a[0]*a[5] - a[1]*a[4]
	c1 := a[0]*a[6] - a[2]*a[4]
	c2 := a[3]*a[4] - a[0]*a[7]
	c3 := a[1]*a[6] - a[2]*a[5]
	c4 := a[3]*a[5] - a[1]*a[7]
	c5 := a[2]*a[7] - a[3]*a[6]
	d21 := a[1]*b5 + a[2]*b4 + a[3]*b3
	d22 := a[0]*b5 + a[2]*b2 + a[3]*b1
	d23 := a[0]*-b4 + a[1]*b2 + a[3]*b0
	d24 := a[0]*b3 + a[1]*-b1 + a[2]*b0
	d31 := a[13]*c5 + a[14]*c4 + a[15]*c3
	d32 := a[12]*c5 + a[14]*c2 + a[15]*c1
	d33 := a[12]*-c4 + a[13]*c2 + a[15]*c0
	d34 := a[12]*c3 + a[13]*-c1 + a[14]*c0
	d41 := a[9]*c5 + a[10]*c4 + a[11]*c3
	d42 := a[8]*c5 + a[10]*c2 + a[11]*c1
	d43 := a[8]*-c4 + a[9]*c2 + a[11]*c0
	d44 := a[8]*c3 + a[9]*-c1 + a[10]*c0

	return Mat4x4{M: [16]float32{
		d11 * inv, -d21 * inv, d31 * inv, -d41 * inv,
		-d12 * inv, d22 * inv, -d32 * inv, d42 * inv,
		d13 * inv, -d23 * inv, d33 * inv, -d43 * inv,
		-d14 * inv, d24 * inv, -d34 * inv, d44 * inv,
	}}, true
}

// Mul composes m with other. The result applies m first, then other:
//
//	m.Mul(other).Transform3(p) == other.Transform3(m.Transform3(p))
func (m Mat4x4) Mul(other Mat4x4) Mat4x4 {
	var out Mat4x4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.M[4*r+c] = m.M[4*r]*other.M[c] +
				m.M[4*r+1]*other.M[4+c] +
				m.M[4*r+2]*other.M[8+c] +
				m.M[4*r+3]*other.M[12+c]
		}
	}
	return out
}

// Transpose swaps rows and columns.
func (m Mat4x4) Transpose() Mat4x4 {
	var out Mat4x4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out.M[4*c+r] = m.M[4*r+c]
		}
	}
	return out
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Mat4x4) IsIdentity() bool {
	return m == Mat4x4Identity
}

// Components returns the matrix elements in storage order.
func (m Mat4x4) Components() []float32 {
	return m.M[:]
}

// Approx reports whether every element of m is within Epsilon of o.
func (m Mat4x4) Approx(o Mat4x4) bool {
	return Approx(m.M[:], o.M[:])
}

// String formats the matrix with one row per line.
func (m Mat4x4) String() string {
	a := &m.M
	return formatFloats(a[0], a[1], a[2], a[3]) + "\n" +
		formatFloats(a[4], a[5], a[6], a[7]) + "\n" +
		formatFloats(a[8], a[9], a[10], a[11]) + "\n" +
		formatFloats(a[12], a[13], a[14], a[15])
}
