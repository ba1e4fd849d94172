// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector2 is a 2D vector/point with X and Y components,
// used mainly for texture coordinates.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to scalar.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{scalar, scalar}
}

// Set sets this vector's X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// Add returns the vector sum of v and other.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// Sub returns v minus other.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// MulScalar returns v multiplied componentwise by scalar s.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// Dot returns the dot product of v with other.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Length returns the length (magnitude) of the vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.X*v.X + v.Y*v.Y)
}
