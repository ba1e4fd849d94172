// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Matrix4 is a 4x4 matrix stored in column-major order,
// matching the layout GLSL expects for mat4 uniforms.
type Matrix4 [16]float32

// Identity4 returns a new identity [Matrix4].
func Identity4() Matrix4 {
	m := Matrix4{}
	m.SetIdentity()
	return m
}

// SetIdentity sets this matrix to the identity matrix.
func (m *Matrix4) SetIdentity() {
	*m = Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation4 returns a matrix translating by x, y, z.
func Translation4(x, y, z float32) Matrix4 {
	m := Identity4()
	m[12] = x
	m[13] = y
	m[14] = z
	return m
}

// Scale4 returns a matrix scaling by x, y, z.
func Scale4(x, y, z float32) Matrix4 {
	m := Identity4()
	m[0] = x
	m[5] = y
	m[10] = z
	return m
}

// Rotation4 returns a matrix rotating by angle radians around
// the given (not necessarily unit) axis.
func Rotation4(angle float32, axis Vector3) Matrix4 {
	a := axis.Normal()
	c := Cos(angle)
	s := Sin(angle)
	t := 1 - c
	x, y, z := a.X, a.Y, a.Z
	return Matrix4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product m * other, so that applying the
// result transforms first by other and then by m.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var out Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * other[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// MulVector4 returns the matrix-vector product m * v.
func (m Matrix4) MulVector4(v Vector4) Vector4 {
	return Vec4(
		m[0]*v.X+m[4]*v.Y+m[8]*v.Z+m[12]*v.W,
		m[1]*v.X+m[5]*v.Y+m[9]*v.Z+m[13]*v.W,
		m[2]*v.X+m[6]*v.Y+m[10]*v.Z+m[14]*v.W,
		m[3]*v.X+m[7]*v.Y+m[11]*v.Z+m[15]*v.W,
	)
}

// MulPoint transforms the point p (W = 1), returning the X, Y, Z
// of the result without perspective division.
func (m Matrix4) MulPoint(p Vector3) Vector3 {
	return m.MulVector4(p.ToVector4(1)).ToVector3()
}

// Transpose returns the transpose of the matrix.
func (m Matrix4) Transpose() Matrix4 {
	var out Matrix4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[r*4+c] = m[c*4+r]
		}
	}
	return out
}

// Translation returns the translation component of the matrix,
// i.e., the position a transform places the origin at.
func (m Matrix4) Translation() Vector3 {
	return Vec3(m[12], m[13], m[14])
}

// Inverse returns the inverse of the matrix, or the identity
// matrix if m is singular.
func (m Matrix4) Inverse() Matrix4 {
	n11, n21, n31, n41 := m[0], m[1], m[2], m[3]
	n12, n22, n32, n42 := m[4], m[5], m[6], m[7]
	n13, n23, n33, n43 := m[8], m[9], m[10], m[11]
	n14, n24, n34, n44 := m[12], m[13], m[14], m[15]

	t11 := n23*n34*n42 - n24*n33*n42 + n24*n32*n43 - n22*n34*n43 - n23*n32*n44 + n22*n33*n44
	t12 := n14*n33*n42 - n13*n34*n42 - n14*n32*n43 + n12*n34*n43 + n13*n32*n44 - n12*n33*n44
	t13 := n13*n24*n42 - n14*n23*n42 + n14*n22*n43 - n12*n24*n43 - n13*n22*n44 + n12*n23*n44
	t14 := n14*n23*n32 - n13*n24*n32 - n14*n22*n33 + n12*n24*n33 + n13*n22*n34 - n12*n23*n34

	det := n11*t11 + n21*t12 + n31*t13 + n41*t14
	if det == 0 {
		return Identity4()
	}
	d := 1 / det

	var out Matrix4
	out[0] = t11 * d
	out[1] = (n24*n33*n41 - n23*n34*n41 - n24*n31*n43 + n21*n34*n43 + n23*n31*n44 - n21*n33*n44) * d
	out[2] = (n22*n34*n41 - n24*n32*n41 + n24*n31*n42 - n21*n34*n42 - n22*n31*n44 + n21*n32*n44) * d
	out[3] = (n23*n32*n41 - n22*n33*n41 - n23*n31*n42 + n21*n33*n42 + n22*n31*n43 - n21*n32*n43) * d
	out[4] = t12 * d
	out[5] = (n13*n34*n41 - n14*n33*n41 + n14*n31*n43 - n11*n34*n43 - n13*n31*n44 + n11*n33*n44) * d
	out[6] = (n14*n32*n41 - n12*n34*n41 - n14*n31*n42 + n11*n34*n42 + n12*n31*n44 - n11*n32*n44) * d
	out[7] = (n12*n33*n41 - n13*n32*n41 + n13*n31*n42 - n11*n33*n42 - n12*n31*n43 + n11*n32*n43) * d
	out[8] = t13 * d
	out[9] = (n14*n23*n41 - n13*n24*n41 - n14*n21*n43 + n11*n24*n43 + n13*n21*n44 - n11*n23*n44) * d
	out[10] = (n12*n24*n41 - n14*n22*n41 + n14*n21*n42 - n11*n24*n42 - n12*n21*n44 + n11*n22*n44) * d
	out[11] = (n13*n22*n41 - n12*n23*n41 - n13*n21*n42 + n11*n23*n42 + n12*n21*n43 - n11*n22*n43) * d
	out[12] = t14 * d
	out[13] = (n13*n24*n31 - n14*n23*n31 + n14*n21*n33 - n11*n24*n33 - n13*n21*n34 + n11*n23*n34) * d
	out[14] = (n14*n22*n31 - n12*n24*n31 - n14*n21*n32 + n11*n24*n32 + n12*n21*n34 - n11*n22*n34) * d
	out[15] = (n12*n23*n31 - n13*n22*n31 + n13*n21*n32 - n11*n23*n32 - n12*n21*n33 + n11*n22*n33) * d
	return out
}

// Perspective4 returns a perspective projection matrix with the
// given vertical field of view in radians, aspect ratio (width over
// height), and near and far clipping distances.
func Perspective4(fovy, aspect, near, far float32) Matrix4 {
	f := 1 / Tan(fovy/2)
	var m Matrix4
	m[0] = f / aspect
	m[5] = f
	m[10] = (near + far) / (near - far)
	m[11] = -1
	m[14] = 2 * near * far / (near - far)
	return m
}

// LookAt4 returns a camera (view) matrix positioned at eye, looking
// toward at, with the given up direction. It is the inverse of the
// camera's placement transform, ready to multiply onto model matrices.
func LookAt4(eye, at, up Vector3) Matrix4 {
	z := eye.Sub(at).Normal()
	x := up.Cross(z).Normal()
	y := z.Cross(x)
	return Matrix4{
		x.X, y.X, z.X, 0,
		x.Y, y.Y, z.Y, 0,
		x.Z, y.Z, z.Z, 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}
