// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/intro-graphics/tinygraphics/gl"
	"github.com/intro-graphics/tinygraphics/gl/gltest"
	"github.com/intro-graphics/tinygraphics/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSquare returns a 4-vertex indexed quad with position, normal
// and texture_coord attributes.
func testSquare() *VertexData {
	vd := NewVertexData("square")
	vd.SetAttribute("position", 3, math32.ArrayF32{
		-1, -1, 0, 1, -1, 0, 1, 1, 0, -1, 1, 0,
	})
	vd.SetAttribute("normal", 3, math32.ArrayF32{
		0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1,
	})
	vd.SetAttribute("texture_coord", 2, math32.ArrayF32{
		0, 0, 1, 0, 1, 1, 0, 1,
	})
	vd.Index = math32.ArrayU32{0, 1, 2, 0, 2, 3}
	vd.Cache.Counter = NewCounter(DefaultThreshold)
	return vd
}

func TestVertexDataFirstUpload(t *testing.T) {
	ctx := gltest.NewRecorder()
	vd := testSquare()

	require.NoError(t, vd.Upload(ctx, nil, true))

	// one buffer per attribute plus the index buffer
	assert.Equal(t, 4, ctx.NumCalls("CreateBuffer"))
	assert.Equal(t, 3, ctx.NumCalls("BufferDataF32"))
	assert.Equal(t, 1, ctx.NumCalls("BufferDataU32"))

	vs, ok := vd.Cache.Lookup(ctx)
	require.True(t, ok)
	assert.Equal(t, []float32(vd.Attribute("position").Data), ctx.BufferF32(vs.Buffers["position"]))
	assert.Equal(t, []uint32(vd.Index), ctx.BufferU32(vs.IndexBuffer))
}

func TestVertexDataSelectiveReupload(t *testing.T) {
	ctx := gltest.NewRecorder()
	vd := testSquare()
	require.NoError(t, vd.Upload(ctx, nil, true))
	vs, _ := vd.Cache.Lookup(ctx)

	posBefore := ctx.BufferF32(vs.Buffers["position"])
	idxBefore := ctx.BufferU32(vs.IndexBuffer)

	// mutate everything, but only re-upload texture_coord
	tc := vd.Attribute("texture_coord")
	for i := range tc.Data {
		tc.Data[i] *= 0.5
	}
	pos := vd.Attribute("position")
	for i := range pos.Data {
		pos.Data[i] *= 2
	}
	vd.Index[0] = 3
	require.NoError(t, vd.Upload(ctx, []string{"texture_coord"}, false))

	// texture_coord contents changed; everything else bit-identical
	assert.Equal(t, []float32(tc.Data), ctx.BufferF32(vs.Buffers["texture_coord"]))
	assert.Equal(t, posBefore, ctx.BufferF32(vs.Buffers["position"]))
	assert.Equal(t, idxBefore, ctx.BufferU32(vs.IndexBuffer))

	// no new buffers, no second first-upload charge
	assert.Equal(t, 4, ctx.NumCalls("CreateBuffer"))
	assert.Equal(t, 1, vd.Cache.Counter.Count)

	// naming an unknown attribute is an error
	assert.Error(t, vd.Upload(ctx, []string{"color"}, false))
}

func TestVertexDataValidate(t *testing.T) {
	vd := NewVertexData("bad")
	vd.SetAttribute("position", 3, math32.ArrayF32{0, 0, 0, 1, 1, 1})
	vd.SetAttribute("texture_coord", 2, math32.ArrayF32{0, 0})
	err := vd.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "texture_coord")

	vd = NewVertexData("bad-index")
	vd.SetAttribute("position", 3, math32.ArrayF32{0, 0, 0, 1, 1, 1})
	vd.Index = math32.ArrayU32{0, 1, 2}
	err = vd.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	vd = NewVertexData("bad-components")
	vd.SetAttribute("position", 5, math32.ArrayF32{0, 0, 0, 0, 0})
	assert.Error(t, vd.Validate())

	vd = NewVertexData("ragged")
	vd.SetAttribute("position", 3, math32.ArrayF32{0, 0, 0, 1})
	assert.Error(t, vd.Validate())

	// upload refuses malformed shapes before touching the GPU
	ctx := gltest.NewRecorder()
	vd.Cache.Counter = NewCounter(DefaultThreshold)
	assert.Error(t, vd.Upload(ctx, nil, true))
	assert.Empty(t, ctx.Calls)
}

// flatShader is a minimal Shader for drawing tests.
type flatShader struct{}

func (sh *flatShader) Sources() (string, string) {
	return "void main() {}", "void main() {}"
}

func (sh *flatShader) SetUniforms(ctx gl.Context, ps *ProgramState, frame *FrameState, model math32.Matrix4, mat *Material) {
	ctx.Uniform4f(ps.Uniform("shape_color"), mat.Color.X, mat.Color.Y, mat.Color.Z, mat.Color.W)
}

func testMaterial(ctx *gltest.Recorder) *Material {
	ctx.Attribs = []gl.ActiveInfo{
		{Name: "position", Type: gl.FLOAT_VEC3, Size: 1},
		{Name: "color", Type: gl.FLOAT_VEC4, Size: 1},
	}
	ctx.Uniforms = []gl.ActiveInfo{
		{Name: "shape_color", Type: gl.FLOAT_VEC4, Size: 1},
	}
	pr := NewProgram(&flatShader{})
	pr.Cache.Counter = NewCounter(DefaultThreshold)
	return NewMaterial(pr)
}

func TestVertexDataDrawIndexed(t *testing.T) {
	ctx := gltest.NewRecorder()
	vd := testSquare()
	mat := testMaterial(ctx)
	frame := &FrameState{}

	require.NoError(t, vd.Draw(ctx, frame, math32.Identity4(), mat))

	require.Equal(t, 1, ctx.NumCalls("DrawElements"))
	assert.Equal(t, 0, ctx.NumCalls("DrawArrays"))
	last := ctx.Calls[len(ctx.Calls)-1]
	assert.Equal(t, "DrawElements", last.Name)
	assert.Equal(t, []any{gl.TRIANGLES, 6, gl.UNSIGNED_INT, 0}, last.Args)

	// the program's position attribute is enabled and pointed at the
	// shape's buffer; the color attribute has no buffer and is disabled
	vs, _ := vd.Cache.Lookup(ctx)
	ps, _ := mat.Program.Cache.Lookup(ctx)
	assert.True(t, ctx.AttribEnabled(ps.Attributes["position"].Loc))
	assert.False(t, ctx.AttribEnabled(ps.Attributes["color"].Loc))
	assert.True(t, vs.Buffers["position"].Valid())

	// drawing twice re-activates: no new uploads
	require.NoError(t, vd.Draw(ctx, frame, math32.Identity4(), mat))
	assert.Equal(t, 4, ctx.NumCalls("CreateBuffer"))
	assert.Equal(t, 1, vd.Cache.Counter.Count)
	assert.Equal(t, 2, ctx.NumCalls("DrawElements"))
}

func TestVertexDataDrawUnindexed(t *testing.T) {
	ctx := gltest.NewRecorder()
	vd := NewVertexData("tri")
	vd.SetAttribute("position", 3, math32.ArrayF32{
		0, 0, 0, 1, 0, 0, 0, 1, 0,
		0, 0, 0, 0, 1, 0, -1, 0, 0,
	})
	vd.Cache.Counter = NewCounter(DefaultThreshold)
	mat := testMaterial(ctx)

	require.NoError(t, vd.Draw(ctx, &FrameState{}, math32.Identity4(), mat))

	// no index list: every 3 consecutive vertices form a triangle
	require.Equal(t, 1, ctx.NumCalls("DrawArrays"))
	last := ctx.Calls[len(ctx.Calls)-1]
	assert.Equal(t, []any{gl.TRIANGLES, 0, 6}, last.Args)
	assert.Equal(t, 0, ctx.NumCalls("BufferDataU32"))
}

func TestVertexDataDrawMode(t *testing.T) {
	ctx := gltest.NewRecorder()
	vd := testSquare()
	mat := testMaterial(ctx)

	require.NoError(t, vd.Draw(ctx, &FrameState{}, math32.Identity4(), mat, gl.LINE_STRIP))
	last := ctx.Calls[len(ctx.Calls)-1]
	assert.Equal(t, gl.LINE_STRIP, last.Args[0])
}
