// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{1, 2, 3}, Vec3(1, 2, 3))
	assert.Equal(t, Vector3{5, 5, 5}, Vector3Scalar(5))

	v := Vector3{}
	v.Set(-1, 7, 2)
	assert.Equal(t, Vector3{-1, 7, 2}, v)

	assert.Equal(t, Vec3(3, 5, 7), Vec3(1, 2, 3).Add(Vec3(2, 3, 4)))
	assert.Equal(t, Vec3(-1, -1, -1), Vec3(1, 2, 3).Sub(Vec3(2, 3, 4)))
	assert.Equal(t, Vec3(2, 4, 6), Vec3(1, 2, 3).MulScalar(2))
	assert.Equal(t, Vector3{}, Vec3(1, 2, 3).DivScalar(0))
}

func TestVector3CrossDot(t *testing.T) {
	x := Vec3(1, 0, 0)
	y := Vec3(0, 1, 0)
	z := Vec3(0, 0, 1)
	assert.Equal(t, z, x.Cross(y))
	assert.Equal(t, x, y.Cross(z))
	assert.Equal(t, float32(0), x.Dot(y))
	assert.Equal(t, float32(32), Vec3(1, 2, 3).Dot(Vec3(4, 5, 6)))
}

func TestVector3Normal(t *testing.T) {
	n := Vec3(3, 0, 4).Normal()
	assert.InDelta(t, 0.6, float64(n.X), tolerance)
	assert.InDelta(t, 0.8, float64(n.Z), tolerance)
	assert.InDelta(t, 1, float64(n.Length()), tolerance)
	assert.Equal(t, Vector3{}, Vector3{}.Normal())
}

func TestVector3Lerp(t *testing.T) {
	a := Vec3(0, 0, 0)
	b := Vec3(2, 4, 8)
	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, Vec3(1, 2, 4), a.Lerp(b, 0.5))
}

func TestVector4(t *testing.T) {
	v := Vec4(2, 4, 6, 2)
	assert.Equal(t, Vec3(1, 2, 3), v.PerspDiv())
	assert.Equal(t, Vec3(2, 4, 6), v.ToVector3())
	assert.Equal(t, Vec3(2, 4, 6), Vec4(2, 4, 6, 0).PerspDiv())
	assert.Equal(t, Vec4(1, 2, 3, 1), Vec3(1, 2, 3).ToVector4(1))
}
