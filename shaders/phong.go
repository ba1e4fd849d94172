// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"github.com/intro-graphics/tinygraphics/gl"
	"github.com/intro-graphics/tinygraphics/gpu"
	"github.com/intro-graphics/tinygraphics/math32"
)

// Phong lights surfaces with the Blinn-Phong model: an ambient term
// from the material color plus per-light diffuse and specular terms,
// computed per fragment. Shapes drawn with it need position and
// normal attributes.
type Phong struct{}

// NewPhong returns a program drawing Blinn-Phong shaded surfaces.
func NewPhong() *gpu.Program {
	return gpu.NewProgram(&Phong{})
}

const phongVertex = `
attribute vec3 position, normal;
uniform mat4 projection_camera_model_transform;
uniform mat4 model_transform;

void main() {
    gl_Position = projection_camera_model_transform * vec4(position, 1.0);
    N = normalize(mat3(model_transform) * normal);
    vertex_worldspace = (model_transform * vec4(position, 1.0)).xyz;
}
`

const phongFragment = `
void main() {
    gl_FragColor = vec4(shape_color.xyz * ambient, shape_color.w);
    gl_FragColor.xyz += phong_model_lights(normalize(N), vertex_worldspace);
}
`

func (sh *Phong) Sources() (string, string) {
	return sharedHeader + phongVertex, sharedHeader + phongFragment
}

func (sh *Phong) SetUniforms(ctx gl.Context, ps *gpu.ProgramState, frame *gpu.FrameState, model math32.Matrix4, mat *gpu.Material) {
	pcm := frame.Projection.Mul(frame.CameraInverse).Mul(model)
	setMatrix(ctx, ps.Uniform("projection_camera_model_transform"), pcm)
	setMatrix(ctx, ps.Uniform("model_transform"), model)
	eye := frame.CameraTransform.Translation()
	ctx.Uniform3f(ps.Uniform("camera_center"), eye.X, eye.Y, eye.Z)

	ctx.Uniform4f(ps.Uniform("shape_color"), mat.Color.X, mat.Color.Y, mat.Color.Z, mat.Color.W)
	ctx.Uniform1f(ps.Uniform("ambient"), mat.Ambient)
	ctx.Uniform1f(ps.Uniform("diffusivity"), mat.Diffusivity)
	ctx.Uniform1f(ps.Uniform("specularity"), mat.Specularity)
	ctx.Uniform1f(ps.Uniform("smoothness"), mat.Smoothness)

	setLights(ctx, ps, frame)
}
