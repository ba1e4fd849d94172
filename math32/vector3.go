// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector3 is a 3D vector/point with X, Y and Z components.
type Vector3 struct {
	X float32
	Y float32
	Z float32
}

// Vec3 returns a new [Vector3] with the given x, y and z components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Vector3Scalar returns a new [Vector3] with all components set to scalar.
func Vector3Scalar(scalar float32) Vector3 {
	return Vector3{scalar, scalar, scalar}
}

// Set sets this vector's X, Y and Z components.
func (v *Vector3) Set(x, y, z float32) {
	v.X = x
	v.Y = y
	v.Z = z
}

// Add returns the vector sum of v and other.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vec3(v.X+other.X, v.Y+other.Y, v.Z+other.Z)
}

// Sub returns v minus other.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vec3(v.X-other.X, v.Y-other.Y, v.Z-other.Z)
}

// MulScalar returns v multiplied componentwise by scalar s.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vec3(v.X*s, v.Y*s, v.Z*s)
}

// DivScalar returns v divided componentwise by scalar s.
// It returns the zero vector if s is zero.
func (v Vector3) DivScalar(s float32) Vector3 {
	if s == 0 {
		return Vector3{}
	}
	return v.MulScalar(1 / s)
}

// Negate returns the vector with each component negated.
func (v Vector3) Negate() Vector3 {
	return Vec3(-v.X, -v.Y, -v.Z)
}

// Dot returns the dot product of v with other.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of v with other.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vec3(
		v.Y*other.Z-v.Z*other.Y,
		v.Z*other.X-v.X*other.Z,
		v.X*other.Y-v.Y*other.X,
	)
}

// Length returns the length (magnitude) of the vector.
func (v Vector3) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of the vector,
// which is cheaper to compute than [Vector3.Length] when only
// comparing magnitudes.
func (v Vector3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normal returns the vector scaled to unit length.
// It returns the zero vector for a zero-length input.
func (v Vector3) Normal() Vector3 {
	return v.DivScalar(v.Length())
}

// Lerp returns the linear interpolation between v and other at
// fraction t, where t = 0 is v and t = 1 is other.
func (v Vector3) Lerp(other Vector3, t float32) Vector3 {
	return v.Add(other.Sub(v).MulScalar(t))
}

// ToVector4 returns a [Vector4] with the given W component.
func (v Vector3) ToVector4(w float32) Vector4 {
	return Vec4(v.X, v.Y, v.Z, w)
}
