// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"github.com/intro-graphics/tinygraphics/base/errors"
	"github.com/intro-graphics/tinygraphics/gl"
	"github.com/intro-graphics/tinygraphics/gpu"
	"github.com/intro-graphics/tinygraphics/math32"
)

// TexturedPhong is [Phong] with the material's texture multiplied
// into the base color. Shapes drawn with it additionally need a
// texture_coord attribute. While the material's texture is still
// loading, surfaces render with the plain material color.
type TexturedPhong struct {
	Phong
}

// NewTexturedPhong returns a program drawing textured Blinn-Phong
// shaded surfaces.
func NewTexturedPhong() *gpu.Program {
	return gpu.NewProgram(&TexturedPhong{})
}

const texturedVertex = `
attribute vec3 position, normal;
attribute vec2 texture_coord;
uniform mat4 projection_camera_model_transform;
uniform mat4 model_transform;
varying vec2 f_tex_coord;

void main() {
    gl_Position = projection_camera_model_transform * vec4(position, 1.0);
    N = normalize(mat3(model_transform) * normal);
    vertex_worldspace = (model_transform * vec4(position, 1.0)).xyz;
    f_tex_coord = texture_coord;
}
`

const texturedFragment = `
varying vec2 f_tex_coord;
uniform sampler2D texture;
uniform bool use_texture;

void main() {
    vec4 tex_color = use_texture ? texture2D(texture, f_tex_coord) : vec4(1.0);
    if (tex_color.w < 0.01)
        discard;
    gl_FragColor = vec4(tex_color.xyz * shape_color.xyz * ambient, shape_color.w * tex_color.w);
    gl_FragColor.xyz += phong_model_lights(normalize(N), vertex_worldspace);
}
`

func (sh *TexturedPhong) Sources() (string, string) {
	return sharedHeader + texturedVertex, sharedHeader + texturedFragment
}

func (sh *TexturedPhong) SetUniforms(ctx gl.Context, ps *gpu.ProgramState, frame *gpu.FrameState, model math32.Matrix4, mat *gpu.Material) {
	sh.Phong.SetUniforms(ctx, ps, frame, model, mat)
	ctx.Uniform1i(ps.Uniform("texture"), 0)
	ready := mat.Texture != nil && mat.Texture.Ready()
	if ready {
		// activation is the cached-rebind path after the first call;
		// a failure here is the upload smoke alarm, which the draw
		// cannot recover from, so surface it loudly
		errors.Log(mat.Texture.Activate(ctx, 0))
	}
	use := 0
	if ready {
		use = 1
	}
	ctx.Uniform1i(ps.Uniform("use_texture"), use)
}
