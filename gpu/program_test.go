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

func newTestProgram() *Program {
	pr := NewProgram(&flatShader{})
	pr.Cache.Counter = NewCounter(DefaultThreshold)
	return pr
}

func TestProgramAddressTable(t *testing.T) {
	ctx := gltest.NewRecorder()
	ctx.Uniforms = []gl.ActiveInfo{
		{Name: "ambient", Type: gl.FLOAT, Size: 1},
		{Name: "light_colors[0]", Type: gl.FLOAT_VEC4, Size: 2},
	}
	ctx.Attribs = []gl.ActiveInfo{
		{Name: "position", Type: gl.FLOAT_VEC3, Size: 1},
		{Name: "texture_coord", Type: gl.FLOAT_VEC2, Size: 1},
	}
	pr := newTestProgram()

	ps, err := pr.Ensure(ctx)
	require.NoError(t, err)
	assert.True(t, ps.Handle.Valid())

	// the array uniform appears exactly once, under its base name
	require.Len(t, ps.Uniforms, 2)
	assert.True(t, ps.Uniform("ambient").Valid())
	assert.True(t, ps.Uniform("light_colors").Valid())
	assert.False(t, ps.Uniform("light_colors[0]").Valid())
	assert.False(t, ps.Uniform("missing").Valid())

	// attribute component counts come from the declared types
	require.Len(t, ps.Attributes, 2)
	assert.Equal(t, 3, ps.Attributes["position"].Components)
	assert.Equal(t, 2, ps.Attributes["texture_coord"].Components)

	// both stages compiled, the stage objects freed after linking
	assert.Equal(t, 2, ctx.NumCalls("CompileShader"))
	assert.Equal(t, 1, ctx.NumCalls("LinkProgram"))
	assert.Equal(t, 2, ctx.NumCalls("DeleteShader"))

	// second ensure is a lookup: same state, no recompile
	again, err := pr.Ensure(ctx)
	require.NoError(t, err)
	assert.Same(t, ps, again)
	assert.Equal(t, 2, ctx.NumCalls("CompileShader"))
}

func TestProgramCompileError(t *testing.T) {
	ctx := gltest.NewRecorder()
	ctx.FailCompile = map[gl.Enum]string{
		gl.FRAGMENT_SHADER: "0:12: 'vec9' : no such type",
	}
	pr := newTestProgram()

	_, err := pr.Ensure(ctx)
	var compileErr *ShaderCompileError
	require.ErrorAs(t, err, &compileErr)
	assert.Equal(t, "fragment", compileErr.Stage)
	assert.Contains(t, compileErr.Log, "vec9")

	// no partial program is cached for the context
	_, ok := pr.Cache.Lookup(ctx)
	assert.False(t, ok)
	assert.Equal(t, 0, ctx.NumCalls("LinkProgram"))
}

func TestProgramLinkError(t *testing.T) {
	ctx := gltest.NewRecorder()
	ctx.FailLink = "varying v_color not written by vertex shader"
	pr := newTestProgram()

	_, err := pr.Ensure(ctx)
	var linkErr *ShaderLinkError
	require.ErrorAs(t, err, &linkErr)
	assert.Contains(t, linkErr.Log, "v_color")

	_, ok := pr.Cache.Lookup(ctx)
	assert.False(t, ok)
}

func TestProgramPerContext(t *testing.T) {
	ctxA := gltest.NewRecorder()
	ctxB := gltest.NewRecorder()
	pr := newTestProgram()

	psA, err := pr.Ensure(ctxA)
	require.NoError(t, err)
	psB, err := pr.Ensure(ctxB)
	require.NoError(t, err)

	// one independent compile per context
	assert.NotSame(t, psA, psB)
	assert.Equal(t, 1, ctxA.NumCalls("LinkProgram"))
	assert.Equal(t, 1, ctxB.NumCalls("LinkProgram"))
	assert.Equal(t, 2, pr.Cache.Counter.Count)
}

func TestProgramActivate(t *testing.T) {
	ctx := gltest.NewRecorder()
	ctx.Uniforms = []gl.ActiveInfo{
		{Name: "shape_color", Type: gl.FLOAT_VEC4, Size: 1},
	}
	ctx.Attribs = []gl.ActiveInfo{
		{Name: "position", Type: gl.FLOAT_VEC3, Size: 1},
		{Name: "normal", Type: gl.FLOAT_VEC3, Size: 1},
	}
	pr := newTestProgram()
	mat := NewMaterial(pr)

	buffers := map[string]gl.Buffer{"position": ctx.CreateBuffer()}
	ps, err := pr.Activate(ctx, buffers, &FrameState{}, math32.Identity4(), mat)
	require.NoError(t, err)

	assert.Equal(t, 1, ctx.NumCalls("UseProgram"))
	assert.Equal(t, 1, ctx.NumCalls("Uniform4f"))
	assert.True(t, ctx.AttribEnabled(ps.Attributes["position"].Loc))
	assert.False(t, ctx.AttribEnabled(ps.Attributes["normal"].Loc))
	assert.Equal(t, 1, ctx.NumCalls("DisableVertexAttribArray"))
}
