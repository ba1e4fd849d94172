// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gl defines the graphics context handle: a typed interface
// over the WebGL2 subset this library uses, with opaque handle types
// for buffers, shaders, programs and textures.
//
// The live implementation over syscall/js is only built under js;
// [gltest.Recorder] provides a native implementation for testing.
// Higher layers treat a [Context] purely as an opaque session: a map
// key identifying one rendering surface, and the sink for GPU calls.
package gl

import "fmt"

// ActiveInfo describes one active uniform or attribute of a linked
// program, as reported by driver introspection.
type ActiveInfo struct {
	// Name as declared in the shader source. Array uniforms are
	// reported with an "[0]" suffix.
	Name string

	// Type is the GLSL data type, e.g. [FLOAT_VEC3].
	Type Enum

	// Size is the number of array elements (1 for non-arrays).
	Size int
}

// Context is one GPU-backed rendering surface/session. Each on-screen
// drawing area has exactly one Context, and objects uploaded to one
// Context are invisible to every other. Implementations must be
// comparable (pointer types), since Contexts are used as map keys.
type Context interface {

	// CreateBuffer allocates a new GPU buffer object.
	CreateBuffer() Buffer

	// BindBuffer binds buf to the given target ([ARRAY_BUFFER] or
	// [ELEMENT_ARRAY_BUFFER]) for subsequent buffer calls.
	BindBuffer(target Enum, buf Buffer)

	// BufferDataF32 replaces the entire contents of the buffer bound
	// to target with the given float32 data.
	BufferDataF32(target Enum, data []float32, usage Enum)

	// BufferDataU32 replaces the entire contents of the buffer bound
	// to target with the given uint32 data.
	BufferDataU32(target Enum, data []uint32, usage Enum)

	// CreateShader allocates a shader object for the given stage
	// ([VERTEX_SHADER] or [FRAGMENT_SHADER]).
	CreateShader(stage Enum) Shader

	// ShaderSource sets the GLSL source text of the shader.
	ShaderSource(sh Shader, src string)

	// CompileShader compiles the shader; check [Context.CompileOK].
	CompileShader(sh Shader)

	// CompileOK reports whether the last compile succeeded.
	CompileOK(sh Shader) bool

	// ShaderInfoLog returns the compiler diagnostic text.
	ShaderInfoLog(sh Shader) string

	// DeleteShader frees a shader object (safe after linking).
	DeleteShader(sh Shader)

	// CreateProgram allocates a new program object.
	CreateProgram() Program

	// AttachShader attaches a compiled shader stage to the program.
	AttachShader(pr Program, sh Shader)

	// LinkProgram links the attached stages; check [Context.LinkOK].
	LinkProgram(pr Program)

	// LinkOK reports whether the last link succeeded.
	LinkOK(pr Program) bool

	// ProgramInfoLog returns the linker diagnostic text.
	ProgramInfoLog(pr Program) string

	// UseProgram selects the program for subsequent draw calls.
	UseProgram(pr Program)

	// NumActiveUniforms returns the number of active uniforms in a
	// linked program.
	NumActiveUniforms(pr Program) int

	// ActiveUniform describes the active uniform at the given index.
	ActiveUniform(pr Program, idx int) ActiveInfo

	// UniformLocation returns the location handle for the named
	// uniform, invalid if the name is not an active uniform.
	UniformLocation(pr Program, name string) Uniform

	// NumActiveAttribs returns the number of active vertex attributes
	// in a linked program.
	NumActiveAttribs(pr Program) int

	// ActiveAttrib describes the active attribute at the given index.
	ActiveAttrib(pr Program, idx int) ActiveInfo

	// AttribLocation returns the location handle for the named
	// vertex attribute.
	AttribLocation(pr Program, name string) Attrib

	Uniform1i(loc Uniform, v int)
	Uniform1f(loc Uniform, v float32)
	Uniform3f(loc Uniform, x, y, z float32)
	Uniform4f(loc Uniform, x, y, z, w float32)

	// Uniform1fv sets a float array uniform from flattened data.
	Uniform1fv(loc Uniform, data []float32)

	// Uniform4fv sets a vec4 array uniform from flattened data.
	Uniform4fv(loc Uniform, data []float32)

	// UniformMatrix4fv sets a mat4 uniform from 16 column-major floats.
	UniformMatrix4fv(loc Uniform, data []float32)

	// EnableVertexAttribArray enables sourcing the attribute from a
	// bound buffer.
	EnableVertexAttribArray(loc Attrib)

	// DisableVertexAttribArray disables the attribute, so draws read
	// the constant default value instead of a buffer.
	DisableVertexAttribArray(loc Attrib)

	// VertexAttribPointer points the attribute at the buffer currently
	// bound to [ARRAY_BUFFER], reading size components of the given
	// type per vertex.
	VertexAttribPointer(loc Attrib, size int, typ Enum, normalized bool, stride, offset int)

	// CreateTexture allocates a new texture object.
	CreateTexture() Texture

	// ActiveTexture selects the active texture unit ([TEXTURE0] + n).
	ActiveTexture(unit Enum)

	// BindTexture binds tx to the given target on the active unit.
	BindTexture(target Enum, tx Texture)

	// TexImage2D uploads RGBA8 pixel data to the bound texture.
	TexImage2D(target Enum, level, width, height int, pix []byte)

	// TexParameteri sets a texture parameter such as min/mag filter.
	TexParameteri(target, pname, val Enum)

	// GenerateMipmap builds the mipmap chain for the bound texture.
	GenerateMipmap(target Enum)

	Enable(capability Enum)
	Disable(capability Enum)
	BlendFunc(sfactor, dfactor Enum)
	DepthFunc(fn Enum)
	Viewport(x, y, width, height int)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)

	// DrawArrays draws count vertices starting at first, grouping
	// them into primitives per mode.
	DrawArrays(mode Enum, first, count int)

	// DrawElements draws count indices of the given type from the
	// buffer bound to [ELEMENT_ARRAY_BUFFER], starting at byte offset.
	DrawElements(mode Enum, count int, typ Enum, offset int)
}

// ContextAcquisitionError is returned when a graphics context could
// not be obtained for a drawing surface at all, e.g. when the browser
// does not support WebGL2 or the canvas element is missing.
type ContextAcquisitionError struct {
	// Surface identifies the drawing area the context was requested for.
	Surface string
}

func (e *ContextAcquisitionError) Error() string {
	return fmt.Sprintf("gl: could not acquire a WebGL2 context for surface %q", e.Surface)
}
