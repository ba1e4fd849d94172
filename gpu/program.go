// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"strings"

	"github.com/intro-graphics/tinygraphics/gl"
	"github.com/intro-graphics/tinygraphics/math32"
)

// Shader pairs the GLSL source of a program with the code that fills
// its uniforms on each draw. Implementations live in the shaders
// package; wrap one in a [Program] to use it.
type Shader interface {

	// Sources returns the vertex and fragment stage GLSL source text.
	Sources() (vertex, fragment string)

	// SetUniforms writes this shader's uniform values for one draw
	// call, pulling them from the frame state, the model (placement)
	// transform, and the material. The program is already in use and
	// ps holds its uniform address table.
	SetUniforms(ctx gl.Context, ps *ProgramState, frame *FrameState, model math32.Matrix4, mat *Material)
}

// AttribInfo is the address table entry for one vertex attribute.
type AttribInfo struct {
	// Loc is the attribute location in the linked program.
	Loc gl.Attrib

	// Components is the per-vertex component count (1-4), inferred
	// from the attribute's declared float vector type.
	Components int
}

// ProgramState is the per-context representation of a [Program]:
// the linked program handle plus its address table. The table is
// derived purely from the linked program for that context and is
// rebuilt whenever the program is (re)linked, never reused across
// a relink.
type ProgramState struct {
	// Handle is the linked program.
	Handle gl.Program

	// Uniforms maps uniform name to location. Array uniforms appear
	// once under their base name, with any "[0]" suffix stripped.
	Uniforms map[string]gl.Uniform

	// Attributes maps vertex attribute name to its address entry.
	Attributes map[string]AttribInfo
}

// Uniform returns the location of the named uniform, or the invalid
// zero location if the linked program has no such active uniform.
// Writing to an invalid location is a no-op, so shaders can set
// uniforms unconditionally.
func (ps *ProgramState) Uniform(name string) gl.Uniform {
	return ps.Uniforms[name]
}

// Program is a GPU-resident compiled shader program: one vertex and
// fragment source pair, compiled and linked lazily per context, with
// a cached uniform/attribute address table per context.
type Program struct {
	// Shader supplies the source text and the uniform population step.
	Shader Shader

	// Cache holds the per-context compiled state.
	Cache Cache[ProgramState]
}

// NewProgram returns a new program for the given shader.
func NewProgram(sh Shader) *Program {
	return &Program{Shader: sh}
}

// Ensure returns the compiled program state for the given context,
// compiling and linking on first use. Compile failures return a
// [ShaderCompileError] naming the stage; link failures return a
// [ShaderLinkError]. Both are fatal for that context: no partial or
// fallback program is stored.
func (pr *Program) Ensure(ctx gl.Context) (*ProgramState, error) {
	return pr.Cache.Ensure(ctx, func(ps *ProgramState) error {
		return pr.compile(ctx, ps)
	})
}

func (pr *Program) compile(ctx gl.Context, ps *ProgramState) error {
	vsrc, fsrc := pr.Shader.Sources()
	vs, err := compileStage(ctx, gl.VERTEX_SHADER, "vertex", vsrc)
	if err != nil {
		return err
	}
	fs, err := compileStage(ctx, gl.FRAGMENT_SHADER, "fragment", fsrc)
	if err != nil {
		return err
	}
	handle := ctx.CreateProgram()
	ctx.AttachShader(handle, vs)
	ctx.AttachShader(handle, fs)
	ctx.LinkProgram(handle)
	if !ctx.LinkOK(handle) {
		return &ShaderLinkError{Log: ctx.ProgramInfoLog(handle)}
	}
	ctx.DeleteShader(vs)
	ctx.DeleteShader(fs)
	ps.Handle = handle
	ps.buildAddressTable(ctx)
	return nil
}

func compileStage(ctx gl.Context, stage gl.Enum, stageName, src string) (gl.Shader, error) {
	sh := ctx.CreateShader(stage)
	ctx.ShaderSource(sh, src)
	ctx.CompileShader(sh)
	if !ctx.CompileOK(sh) {
		return gl.Shader{}, &ShaderCompileError{Stage: stageName, Log: ctx.ShaderInfoLog(sh)}
	}
	return sh, nil
}

// buildAddressTable enumerates the active uniforms and attributes of
// the freshly linked program into the address table.
func (ps *ProgramState) buildAddressTable(ctx gl.Context) {
	nu := ctx.NumActiveUniforms(ps.Handle)
	ps.Uniforms = make(map[string]gl.Uniform, nu)
	for i := 0; i < nu; i++ {
		info := ctx.ActiveUniform(ps.Handle, i)
		// array uniforms are reported per element as name[0];
		// strip the subscript so all elements share one entry
		name, _, _ := strings.Cut(info.Name, "[")
		ps.Uniforms[name] = ctx.UniformLocation(ps.Handle, info.Name)
	}
	na := ctx.NumActiveAttribs(ps.Handle)
	ps.Attributes = make(map[string]AttribInfo, na)
	for i := 0; i < na; i++ {
		info := ctx.ActiveAttrib(ps.Handle, i)
		comps := gl.TypeComponents(info.Type)
		if comps == 0 { // only float vector attributes are supported
			continue
		}
		ps.Attributes[info.Name] = AttribInfo{
			Loc:        ctx.AttribLocation(ps.Handle, info.Name),
			Components: comps,
		}
	}
}

// Activate selects this program for subsequent draw calls on the
// given context, compiling on first use. It delegates uniform
// population to the [Shader], then points every known attribute at
// the matching buffer in buffers, disabling attributes the drawing
// shape supplied no buffer for.
func (pr *Program) Activate(ctx gl.Context, buffers map[string]gl.Buffer, frame *FrameState, model math32.Matrix4, mat *Material) (*ProgramState, error) {
	ps, err := pr.Ensure(ctx)
	if err != nil {
		return nil, err
	}
	ctx.UseProgram(ps.Handle)
	pr.Shader.SetUniforms(ctx, ps, frame, model, mat)
	for name, ai := range ps.Attributes {
		buf, ok := buffers[name]
		if !ok || !buf.Valid() {
			ctx.DisableVertexAttribArray(ai.Loc)
			continue
		}
		ctx.BindBuffer(gl.ARRAY_BUFFER, buf)
		ctx.VertexAttribPointer(ai.Loc, ai.Components, gl.FLOAT, false, 0, 0)
		ctx.EnableVertexAttribArray(ai.Loc)
	}
	return ps, nil
}
