// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"image"
	"strings"
	"testing"

	"github.com/intro-graphics/tinygraphics/gl"
	"github.com/intro-graphics/tinygraphics/gl/gltest"
	"github.com/intro-graphics/tinygraphics/gpu"
	"github.com/intro-graphics/tinygraphics/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame() *gpu.FrameState {
	frame := &gpu.FrameState{
		Projection: math32.Perspective4(math32.DegToRad(60), 1.6, 0.1, 100),
		Lights: []gpu.Light{
			{Position: math32.Vec4(5, 5, 5, 1), Color: math32.Vec4(1, 1, 1, 1), Size: 0.01},
		},
	}
	frame.SetCamera(math32.LookAt4(math32.Vec3(0, 0, 5), math32.Vector3{}, math32.Vec3(0, 1, 0)))
	return frame
}

func activate(t *testing.T, ctx *gltest.Recorder, pr *gpu.Program, mat *gpu.Material) *gpu.ProgramState {
	t.Helper()
	pr.Cache.Counter = gpu.NewCounter(gpu.DefaultThreshold)
	ps, err := pr.Activate(ctx, nil, testFrame(), math32.Identity4(), mat)
	require.NoError(t, err)
	return ps
}

func TestSourcesComplete(t *testing.T) {
	for _, sh := range []gpu.Shader{&Basic{}, &Phong{}, &TexturedPhong{}} {
		vtx, frag := sh.Sources()
		assert.Contains(t, vtx, "gl_Position")
		assert.Contains(t, frag, "gl_FragColor")
		assert.Contains(t, vtx, "precision mediump float;")
	}

	// lighting stages share the light arrays and phong function
	vtx, frag := (&Phong{}).Sources()
	for _, src := range []string{vtx, frag} {
		assert.Contains(t, src, "const int N_LIGHTS = 2;")
		assert.Contains(t, src, "light_colors[N_LIGHTS]")
		assert.Contains(t, src, "phong_model_lights")
	}

	// per-stage declarations are not duplicated
	assert.Equal(t, 1, strings.Count(vtx, "attribute vec3 position"))
}

func TestPhongUniforms(t *testing.T) {
	ctx := gltest.NewRecorder()
	ctx.Uniforms = []gl.ActiveInfo{
		{Name: "projection_camera_model_transform", Type: gl.FLOAT_MAT4, Size: 1},
		{Name: "model_transform", Type: gl.FLOAT_MAT4, Size: 1},
		{Name: "camera_center", Type: gl.FLOAT_VEC3, Size: 1},
		{Name: "shape_color", Type: gl.FLOAT_VEC4, Size: 1},
		{Name: "ambient", Type: gl.FLOAT, Size: 1},
		{Name: "light_positions_or_vectors[0]", Type: gl.FLOAT_VEC4, Size: MaxLights},
		{Name: "light_colors[0]", Type: gl.FLOAT_VEC4, Size: MaxLights},
		{Name: "light_attenuation_factors[0]", Type: gl.FLOAT, Size: MaxLights},
	}
	pr := NewPhong()
	mat := gpu.NewMaterial(pr)

	activate(t, ctx, pr, mat)

	assert.Equal(t, 2, ctx.NumCalls("UniformMatrix4fv"))
	assert.Equal(t, 1, ctx.NumCalls("Uniform3f"))
	assert.Equal(t, 1, ctx.NumCalls("Uniform4f"))
	// the padded light arrays are flattened to MaxLights entries
	assert.Equal(t, 2, ctx.NumCalls("Uniform4fv"))
	assert.Equal(t, 1, ctx.NumCalls("Uniform1fv"))
}

func TestTexturedPhongNotReady(t *testing.T) {
	ctx := gltest.NewRecorder()
	pr := NewTexturedPhong()
	mat := gpu.NewMaterial(pr)
	mat.Texture = &gpu.Texture{URL: "pending.png"}
	mat.Texture.Cache.Counter = gpu.NewCounter(gpu.DefaultThreshold)

	// drawing before the image loads binds no texture
	activate(t, ctx, pr, mat)
	assert.Equal(t, 0, ctx.NumCalls("TexImage2D"))
	assert.Equal(t, 0, ctx.NumCalls("BindTexture"))

	// after the load completes, the next draw uploads once
	mat.Texture.SetImage(image.NewRGBA(image.Rect(0, 0, 2, 2)))
	_, err := pr.Activate(ctx, nil, testFrame(), math32.Identity4(), mat)
	require.NoError(t, err)
	assert.Equal(t, 1, ctx.NumCalls("TexImage2D"))

	_, err = pr.Activate(ctx, nil, testFrame(), math32.Identity4(), mat)
	require.NoError(t, err)
	assert.Equal(t, 1, ctx.NumCalls("TexImage2D"))
}
