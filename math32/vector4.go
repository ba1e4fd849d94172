// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector4 is a 4D vector/point with X, Y, Z and W components,
// used for homogeneous coordinates and RGBA colors.
type Vector4 struct {
	X float32
	Y float32
	Z float32
	W float32
}

// Vec4 returns a new [Vector4] with the given x, y, z and w components.
func Vec4(x, y, z, w float32) Vector4 {
	return Vector4{x, y, z, w}
}

// Set sets this vector's X, Y, Z and W components.
func (v *Vector4) Set(x, y, z, w float32) {
	v.X = x
	v.Y = y
	v.Z = z
	v.W = w
}

// Add returns the vector sum of v and other.
func (v Vector4) Add(other Vector4) Vector4 {
	return Vec4(v.X+other.X, v.Y+other.Y, v.Z+other.Z, v.W+other.W)
}

// Sub returns v minus other.
func (v Vector4) Sub(other Vector4) Vector4 {
	return Vec4(v.X-other.X, v.Y-other.Y, v.Z-other.Z, v.W-other.W)
}

// MulScalar returns v multiplied componentwise by scalar s.
func (v Vector4) MulScalar(s float32) Vector4 {
	return Vec4(v.X*s, v.Y*s, v.Z*s, v.W*s)
}

// Dot returns the dot product of v with other.
func (v Vector4) Dot(other Vector4) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

// ToVector3 returns the X, Y, Z components as a [Vector3],
// dropping W without perspective division.
func (v Vector4) ToVector3() Vector3 {
	return Vec3(v.X, v.Y, v.Z)
}

// PerspDiv returns the X, Y, Z components divided by W.
// It returns the undivided components if W is zero.
func (v Vector4) PerspDiv() Vector3 {
	if v.W == 0 {
		return v.ToVector3()
	}
	return Vec3(v.X/v.W, v.Y/v.W, v.Z/v.W)
}
