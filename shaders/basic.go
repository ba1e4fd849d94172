// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shaders

import (
	"github.com/intro-graphics/tinygraphics/gl"
	"github.com/intro-graphics/tinygraphics/gpu"
	"github.com/intro-graphics/tinygraphics/math32"
)

// Basic colors each triangle by interpolating per-vertex colors from
// the shape's color attribute, with no lighting. Shapes drawn with
// it need position and color attributes.
type Basic struct{}

// NewBasic returns a program drawing per-vertex colors.
func NewBasic() *gpu.Program {
	return gpu.NewProgram(&Basic{})
}

const basicVertex = `precision mediump float;
attribute vec3 position;
attribute vec4 color;
uniform mat4 projection_camera_model_transform;
varying vec4 vertex_color;

void main() {
    gl_Position = projection_camera_model_transform * vec4(position, 1.0);
    vertex_color = color;
}
`

const basicFragment = `precision mediump float;
varying vec4 vertex_color;

void main() {
    gl_FragColor = vertex_color;
}
`

func (sh *Basic) Sources() (string, string) {
	return basicVertex, basicFragment
}

func (sh *Basic) SetUniforms(ctx gl.Context, ps *gpu.ProgramState, frame *gpu.FrameState, model math32.Matrix4, mat *gpu.Material) {
	pcm := frame.Projection.Mul(frame.CameraInverse).Mul(model)
	setMatrix(ctx, ps.Uniform("projection_camera_model_transform"), pcm)
}
