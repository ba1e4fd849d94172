// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 is a float32 based vector and matrix package
// for 3D graphics, providing the small subset of linear algebra
// that shader and shape code needs.
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// These are mostly just wrappers around chewxy/math32, which has
// some optimized implementations.

// Mathematical constants.
const (
	E  = math.E
	Pi = math.Pi

	Sqrt2 = math.Sqrt2
)

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = Pi / 180

	// RadToDegFactor is the number of degrees per radian.
	RadToDegFactor = 180 / Pi
)

// DegToRad converts a number of degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * DegToRadFactor
}

// RadToDeg converts a number of radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * RadToDegFactor
}

// Abs returns the absolute value of x.
func Abs(x float32) float32 {
	return math32.Abs(x)
}

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 {
	return math32.Sqrt(x)
}

// Sin returns the sine of the radian argument x.
func Sin(x float32) float32 {
	return math32.Sin(x)
}

// Cos returns the cosine of the radian argument x.
func Cos(x float32) float32 {
	return math32.Cos(x)
}

// Tan returns the tangent of the radian argument x.
func Tan(x float32) float32 {
	return math32.Tan(x)
}

// Atan2 returns the arc tangent of y/x, using the signs
// of the two to determine the quadrant of the return value.
func Atan2(y, x float32) float32 {
	return math32.Atan2(y, x)
}

// Acos returns the arccosine, in radians, of x.
func Acos(x float32) float32 {
	return math32.Acos(x)
}

// Pow returns x**y, the base-x exponential of y.
func Pow(x, y float32) float32 {
	return math32.Pow(x, y)
}

// Mod returns the floating-point remainder of x/y,
// with the sign of x.
func Mod(x, y float32) float32 {
	return math32.Mod(x, y)
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 {
	return math32.Floor(x)
}

// IsNaN reports whether f is a "not-a-number" value.
func IsNaN(x float32) bool {
	return math32.IsNaN(x)
}

// Clamp clamps x to the provided closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}
