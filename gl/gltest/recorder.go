// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

// Package gltest provides [Recorder], an in-memory implementation of
// [gl.Context] that records every call and retains buffer and texture
// contents, so GPU-facing code can be tested natively without a
// browser. Program introspection results and compile/link failures
// are configurable per Recorder.
package gltest

import (
	"fmt"
	"slices"

	"github.com/intro-graphics/tinygraphics/gl"
)

// Call is one recorded context call, with its name and arguments.
type Call struct {
	Name string
	Args []any
}

// Recorder implements [gl.Context] by recording calls. The zero
// value is not usable; use [NewRecorder].
type Recorder struct {

	// Calls is every call made on this context, in order.
	Calls []Call

	// Uniforms is the introspection result reported for any linked
	// program: the active uniforms, in index order. Array uniforms
	// should carry an "[0]" suffix and Size > 1, as WebGL reports them.
	Uniforms []gl.ActiveInfo

	// Attribs is the introspection result reported for any linked
	// program: the active vertex attributes, in index order.
	Attribs []gl.ActiveInfo

	// FailCompile maps a shader stage ([gl.VERTEX_SHADER] or
	// [gl.FRAGMENT_SHADER]) to a diagnostic log; compiling that stage
	// then fails with the given log.
	FailCompile map[gl.Enum]string

	// FailLink, if non-empty, makes every program link fail with the
	// given diagnostic log.
	FailLink string

	nextID      int
	bound       map[gl.Enum]gl.Buffer
	buffersF32  map[int][]float32
	buffersU32  map[int][]uint32
	shaderStage map[int]gl.Enum
	uniformLocs map[string]gl.Uniform
	attribLocs  map[string]gl.Attrib
	enabled     map[int]bool
	boundTex    map[gl.Enum]gl.Texture
}

// NewRecorder returns a new empty recording context.
func NewRecorder() *Recorder {
	return &Recorder{
		bound:       make(map[gl.Enum]gl.Buffer),
		buffersF32:  make(map[int][]float32),
		buffersU32:  make(map[int][]uint32),
		shaderStage: make(map[int]gl.Enum),
		uniformLocs: make(map[string]gl.Uniform),
		attribLocs:  make(map[string]gl.Attrib),
		enabled:     make(map[int]bool),
		boundTex:    make(map[gl.Enum]gl.Texture),
	}
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) id() int {
	r.nextID++
	return r.nextID
}

// NumCalls returns how many times a call with the given name was made.
func (r *Recorder) NumCalls(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// CallNames returns the names of all recorded calls, in order.
func (r *Recorder) CallNames() []string {
	names := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		names[i] = c.Name
	}
	return names
}

// BufferF32 returns a copy of the float32 contents last written to
// the given buffer, or nil if nothing was written.
func (r *Recorder) BufferF32(buf gl.Buffer) []float32 {
	return slices.Clone(r.buffersF32[buf.Id])
}

// BufferU32 returns a copy of the uint32 contents last written to
// the given buffer, or nil if nothing was written.
func (r *Recorder) BufferU32(buf gl.Buffer) []uint32 {
	return slices.Clone(r.buffersU32[buf.Id])
}

// AttribEnabled reports whether the given attribute location is
// currently enabled as an array.
func (r *Recorder) AttribEnabled(loc gl.Attrib) bool {
	return r.enabled[loc.Id]
}

func (r *Recorder) CreateBuffer() gl.Buffer {
	buf := gl.Buffer{Id: r.id()}
	r.record("CreateBuffer", buf.Id)
	return buf
}

func (r *Recorder) BindBuffer(target gl.Enum, buf gl.Buffer) {
	r.record("BindBuffer", target, buf.Id)
	r.bound[target] = buf
}

func (r *Recorder) BufferDataF32(target gl.Enum, data []float32, usage gl.Enum) {
	buf := r.bound[target]
	r.record("BufferDataF32", target, buf.Id, len(data))
	r.buffersF32[buf.Id] = slices.Clone(data)
}

func (r *Recorder) BufferDataU32(target gl.Enum, data []uint32, usage gl.Enum) {
	buf := r.bound[target]
	r.record("BufferDataU32", target, buf.Id, len(data))
	r.buffersU32[buf.Id] = slices.Clone(data)
}

func (r *Recorder) CreateShader(stage gl.Enum) gl.Shader {
	sh := gl.Shader{Id: r.id()}
	r.record("CreateShader", stage)
	r.shaderStage[sh.Id] = stage
	return sh
}

func (r *Recorder) ShaderSource(sh gl.Shader, src string) {
	r.record("ShaderSource", sh.Id, len(src))
}

func (r *Recorder) CompileShader(sh gl.Shader) {
	r.record("CompileShader", sh.Id)
}

func (r *Recorder) CompileOK(sh gl.Shader) bool {
	_, fail := r.FailCompile[r.shaderStage[sh.Id]]
	return !fail
}

func (r *Recorder) ShaderInfoLog(sh gl.Shader) string {
	return r.FailCompile[r.shaderStage[sh.Id]]
}

func (r *Recorder) DeleteShader(sh gl.Shader) {
	r.record("DeleteShader", sh.Id)
}

func (r *Recorder) CreateProgram() gl.Program {
	pr := gl.Program{Id: r.id()}
	r.record("CreateProgram", pr.Id)
	return pr
}

func (r *Recorder) AttachShader(pr gl.Program, sh gl.Shader) {
	r.record("AttachShader", pr.Id, sh.Id)
}

func (r *Recorder) LinkProgram(pr gl.Program) {
	r.record("LinkProgram", pr.Id)
}

func (r *Recorder) LinkOK(pr gl.Program) bool {
	return r.FailLink == ""
}

func (r *Recorder) ProgramInfoLog(pr gl.Program) string {
	return r.FailLink
}

func (r *Recorder) UseProgram(pr gl.Program) {
	r.record("UseProgram", pr.Id)
}

func (r *Recorder) NumActiveUniforms(pr gl.Program) int {
	return len(r.Uniforms)
}

func (r *Recorder) ActiveUniform(pr gl.Program, idx int) gl.ActiveInfo {
	return r.Uniforms[idx]
}

func (r *Recorder) UniformLocation(pr gl.Program, name string) gl.Uniform {
	key := fmt.Sprintf("%d:%s", pr.Id, name)
	if loc, ok := r.uniformLocs[key]; ok {
		return loc
	}
	loc := gl.Uniform{Id: r.id()}
	r.uniformLocs[key] = loc
	return loc
}

func (r *Recorder) NumActiveAttribs(pr gl.Program) int {
	return len(r.Attribs)
}

func (r *Recorder) ActiveAttrib(pr gl.Program, idx int) gl.ActiveInfo {
	return r.Attribs[idx]
}

func (r *Recorder) AttribLocation(pr gl.Program, name string) gl.Attrib {
	key := fmt.Sprintf("%d:%s", pr.Id, name)
	if loc, ok := r.attribLocs[key]; ok {
		return loc
	}
	loc := gl.Attrib{Id: r.id()}
	r.attribLocs[key] = loc
	return loc
}

func (r *Recorder) Uniform1i(loc gl.Uniform, v int) {
	r.record("Uniform1i", loc.Id, v)
}

func (r *Recorder) Uniform1f(loc gl.Uniform, v float32) {
	r.record("Uniform1f", loc.Id, v)
}

func (r *Recorder) Uniform3f(loc gl.Uniform, x, y, z float32) {
	r.record("Uniform3f", loc.Id, x, y, z)
}

func (r *Recorder) Uniform4f(loc gl.Uniform, x, y, z, w float32) {
	r.record("Uniform4f", loc.Id, x, y, z, w)
}

func (r *Recorder) Uniform1fv(loc gl.Uniform, data []float32) {
	r.record("Uniform1fv", loc.Id, len(data))
}

func (r *Recorder) Uniform4fv(loc gl.Uniform, data []float32) {
	r.record("Uniform4fv", loc.Id, len(data))
}

func (r *Recorder) UniformMatrix4fv(loc gl.Uniform, data []float32) {
	r.record("UniformMatrix4fv", loc.Id, len(data))
}

func (r *Recorder) EnableVertexAttribArray(loc gl.Attrib) {
	r.record("EnableVertexAttribArray", loc.Id)
	r.enabled[loc.Id] = true
}

func (r *Recorder) DisableVertexAttribArray(loc gl.Attrib) {
	r.record("DisableVertexAttribArray", loc.Id)
	r.enabled[loc.Id] = false
}

func (r *Recorder) VertexAttribPointer(loc gl.Attrib, size int, typ gl.Enum, normalized bool, stride, offset int) {
	r.record("VertexAttribPointer", loc.Id, size, typ, r.bound[gl.ARRAY_BUFFER].Id)
}

func (r *Recorder) CreateTexture() gl.Texture {
	tx := gl.Texture{Id: r.id()}
	r.record("CreateTexture", tx.Id)
	return tx
}

func (r *Recorder) ActiveTexture(unit gl.Enum) {
	r.record("ActiveTexture", unit)
}

func (r *Recorder) BindTexture(target gl.Enum, tx gl.Texture) {
	r.record("BindTexture", target, tx.Id)
	r.boundTex[target] = tx
}

func (r *Recorder) TexImage2D(target gl.Enum, level, width, height int, pix []byte) {
	r.record("TexImage2D", target, level, width, height, len(pix))
}

func (r *Recorder) TexParameteri(target, pname, val gl.Enum) {
	r.record("TexParameteri", target, pname, val)
}

func (r *Recorder) GenerateMipmap(target gl.Enum) {
	r.record("GenerateMipmap", target)
}

func (r *Recorder) Enable(capability gl.Enum) {
	r.record("Enable", capability)
}

func (r *Recorder) Disable(capability gl.Enum) {
	r.record("Disable", capability)
}

func (r *Recorder) BlendFunc(sfactor, dfactor gl.Enum) {
	r.record("BlendFunc", sfactor, dfactor)
}

func (r *Recorder) DepthFunc(fn gl.Enum) {
	r.record("DepthFunc", fn)
}

func (r *Recorder) Viewport(x, y, width, height int) {
	r.record("Viewport", x, y, width, height)
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear(mask gl.Enum) {
	r.record("Clear", mask)
}

func (r *Recorder) DrawArrays(mode gl.Enum, first, count int) {
	r.record("DrawArrays", mode, first, count)
}

func (r *Recorder) DrawElements(mode gl.Enum, count int, typ gl.Enum, offset int) {
	r.record("DrawElements", mode, count, typ, offset)
}
