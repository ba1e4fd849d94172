// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// ArrayF32 is a slice of float32 holding flattened vector data in
// the contiguous row-major layout that GPU vertex buffers expect.
type ArrayF32 []float32

// NewArrayF32 returns a new array with the given length and capacity.
func NewArrayF32(size, capacity int) ArrayF32 {
	return make(ArrayF32, size, capacity)
}

// Append appends the given raw float values to the array.
func (a *ArrayF32) Append(v ...float32) {
	*a = append(*a, v...)
}

// AppendVector2 appends the components of the given vectors to the array.
func (a *ArrayF32) AppendVector2(v ...Vector2) {
	for _, vv := range v {
		*a = append(*a, vv.X, vv.Y)
	}
}

// AppendVector3 appends the components of the given vectors to the array.
func (a *ArrayF32) AppendVector3(v ...Vector3) {
	for _, vv := range v {
		*a = append(*a, vv.X, vv.Y, vv.Z)
	}
}

// AppendVector4 appends the components of the given vectors to the array.
func (a *ArrayF32) AppendVector4(v ...Vector4) {
	for _, vv := range v {
		*a = append(*a, vv.X, vv.Y, vv.Z, vv.W)
	}
}

// SetVector3 writes the components of v starting at index idx.
func (a ArrayF32) SetVector3(idx int, v Vector3) {
	a[idx] = v.X
	a[idx+1] = v.Y
	a[idx+2] = v.Z
}

// GetVector3 reads a [Vector3] starting at index idx.
func (a ArrayF32) GetVector3(idx int) Vector3 {
	return Vec3(a[idx], a[idx+1], a[idx+2])
}

// ArrayU32 is a slice of uint32 holding flattened index data,
// stored as the unsigned 32-bit integers that GPU index buffers expect.
type ArrayU32 []uint32

// Append appends the given index values to the array.
func (a *ArrayU32) Append(v ...uint32) {
	*a = append(*a, v...)
}
