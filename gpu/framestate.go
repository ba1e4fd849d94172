// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "github.com/intro-graphics/tinygraphics/math32"

// Light is one light source for the lighting shaders.
type Light struct {
	// Position is the homogeneous position: W = 1 for a point light
	// at (X, Y, Z), W = 0 for a directional light shining along
	// (X, Y, Z).
	Position math32.Vector4

	// Color is the RGBA light color.
	Color math32.Vector4

	// Size scales the light's falloff; attenuation goes as
	// 1 / (1 + Size * distance^2). Zero means no falloff.
	Size float32
}

// Attenuation returns the attenuation factor uniform value.
func (lt *Light) Attenuation() float32 {
	return lt.Size
}

// FrameState is the per-tick shared rendering state: camera and
// projection transforms, elapsed time, and the active lights.
// The render loop driver writes it once per tick; drawing code
// only reads it.
type FrameState struct {
	// Projection is the perspective projection matrix.
	Projection math32.Matrix4

	// CameraInverse is the view matrix: the inverse of the camera's
	// placement transform, applied to world coordinates before
	// projection.
	CameraInverse math32.Matrix4

	// CameraTransform is the camera's placement transform, the
	// inverse of CameraInverse; shaders use its translation as the
	// eye position for specular lighting.
	CameraTransform math32.Matrix4

	// Time is the seconds elapsed since the render loop started.
	Time float32

	// DeltaTime is the seconds elapsed since the previous tick.
	DeltaTime float32

	// Lights are the active light sources, in shader array order.
	Lights []Light
}

// SetCamera sets both the camera placement transform and its
// precomputed inverse from the given view matrix.
func (fs *FrameState) SetCamera(view math32.Matrix4) {
	fs.CameraInverse = view
	fs.CameraTransform = view.Inverse()
}
