// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package gl

import (
	"encoding/binary"
	"math"
	"syscall/js"
)

// context implements [Context] over a browser WebGL2RenderingContext.
type context struct {
	gl js.Value
}

// GetContext acquires the WebGL2 context of the canvas element with
// the given document id, returning a [ContextAcquisitionError] if the
// element is missing or the browser cannot provide a context.
func GetContext(canvasID string) (Context, error) {
	canvas := js.Global().Get("document").Call("getElementById", canvasID)
	if !canvas.Truthy() {
		return nil, &ContextAcquisitionError{Surface: canvasID}
	}
	return GetCanvasContext(canvas, canvasID)
}

// GetCanvasContext acquires the WebGL2 context of the given canvas
// element. The name is only used in error messages.
func GetCanvasContext(canvas js.Value, name string) (Context, error) {
	glv := canvas.Call("getContext", "webgl2", map[string]any{
		"antialias": true,
	})
	if !glv.Truthy() {
		return nil, &ContextAcquisitionError{Surface: name}
	}
	return &context{gl: glv}, nil
}

// float32Array copies data into a new JS Float32Array.
// WASM and JS typed arrays are both little-endian, so the bytes can
// be copied directly and viewed as floats on the JS side.
func float32Array(data []float32) js.Value {
	b := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(b[i*4:], math.Float32bits(v))
	}
	u8 := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(u8, b)
	return js.Global().Get("Float32Array").New(u8.Get("buffer"), 0, len(data))
}

// uint32Array copies data into a new JS Uint32Array.
func uint32Array(data []uint32) js.Value {
	b := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(b[i*4:], v)
	}
	u8 := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(u8, b)
	return js.Global().Get("Uint32Array").New(u8.Get("buffer"), 0, len(data))
}

// uint8Array copies bytes into a new JS Uint8Array.
func uint8Array(data []byte) js.Value {
	u8 := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(u8, data)
	return u8
}

func (c *context) CreateBuffer() Buffer {
	return Buffer{V: c.gl.Call("createBuffer")}
}

func (c *context) BindBuffer(target Enum, buf Buffer) {
	c.gl.Call("bindBuffer", int(target), buf.V)
}

func (c *context) BufferDataF32(target Enum, data []float32, usage Enum) {
	c.gl.Call("bufferData", int(target), float32Array(data), int(usage))
}

func (c *context) BufferDataU32(target Enum, data []uint32, usage Enum) {
	c.gl.Call("bufferData", int(target), uint32Array(data), int(usage))
}

func (c *context) CreateShader(stage Enum) Shader {
	return Shader{V: c.gl.Call("createShader", int(stage))}
}

func (c *context) ShaderSource(sh Shader, src string) {
	c.gl.Call("shaderSource", sh.V, src)
}

func (c *context) CompileShader(sh Shader) {
	c.gl.Call("compileShader", sh.V)
}

func (c *context) CompileOK(sh Shader) bool {
	return c.gl.Call("getShaderParameter", sh.V, int(COMPILE_STATUS)).Bool()
}

func (c *context) ShaderInfoLog(sh Shader) string {
	return c.gl.Call("getShaderInfoLog", sh.V).String()
}

func (c *context) DeleteShader(sh Shader) {
	c.gl.Call("deleteShader", sh.V)
}

func (c *context) CreateProgram() Program {
	return Program{V: c.gl.Call("createProgram")}
}

func (c *context) AttachShader(pr Program, sh Shader) {
	c.gl.Call("attachShader", pr.V, sh.V)
}

func (c *context) LinkProgram(pr Program) {
	c.gl.Call("linkProgram", pr.V)
}

func (c *context) LinkOK(pr Program) bool {
	return c.gl.Call("getProgramParameter", pr.V, int(LINK_STATUS)).Bool()
}

func (c *context) ProgramInfoLog(pr Program) string {
	return c.gl.Call("getProgramInfoLog", pr.V).String()
}

func (c *context) UseProgram(pr Program) {
	c.gl.Call("useProgram", pr.V)
}

func (c *context) NumActiveUniforms(pr Program) int {
	return c.gl.Call("getProgramParameter", pr.V, int(ACTIVE_UNIFORMS)).Int()
}

func (c *context) ActiveUniform(pr Program, idx int) ActiveInfo {
	info := c.gl.Call("getActiveUniform", pr.V, idx)
	return ActiveInfo{
		Name: info.Get("name").String(),
		Type: Enum(info.Get("type").Int()),
		Size: info.Get("size").Int(),
	}
}

func (c *context) UniformLocation(pr Program, name string) Uniform {
	return Uniform{V: c.gl.Call("getUniformLocation", pr.V, name)}
}

func (c *context) NumActiveAttribs(pr Program) int {
	return c.gl.Call("getProgramParameter", pr.V, int(ACTIVE_ATTRIBUTES)).Int()
}

func (c *context) ActiveAttrib(pr Program, idx int) ActiveInfo {
	info := c.gl.Call("getActiveAttrib", pr.V, idx)
	return ActiveInfo{
		Name: info.Get("name").String(),
		Type: Enum(info.Get("type").Int()),
		Size: info.Get("size").Int(),
	}
}

func (c *context) AttribLocation(pr Program, name string) Attrib {
	return Attrib{Loc: c.gl.Call("getAttribLocation", pr.V, name).Int()}
}

func (c *context) Uniform1i(loc Uniform, v int) {
	c.gl.Call("uniform1i", loc.V, v)
}

func (c *context) Uniform1f(loc Uniform, v float32) {
	c.gl.Call("uniform1f", loc.V, v)
}

func (c *context) Uniform3f(loc Uniform, x, y, z float32) {
	c.gl.Call("uniform3f", loc.V, x, y, z)
}

func (c *context) Uniform4f(loc Uniform, x, y, z, w float32) {
	c.gl.Call("uniform4f", loc.V, x, y, z, w)
}

func (c *context) Uniform1fv(loc Uniform, data []float32) {
	c.gl.Call("uniform1fv", loc.V, float32Array(data))
}

func (c *context) Uniform4fv(loc Uniform, data []float32) {
	c.gl.Call("uniform4fv", loc.V, float32Array(data))
}

func (c *context) UniformMatrix4fv(loc Uniform, data []float32) {
	c.gl.Call("uniformMatrix4fv", loc.V, false, float32Array(data))
}

func (c *context) EnableVertexAttribArray(loc Attrib) {
	c.gl.Call("enableVertexAttribArray", loc.Loc)
}

func (c *context) DisableVertexAttribArray(loc Attrib) {
	c.gl.Call("disableVertexAttribArray", loc.Loc)
}

func (c *context) VertexAttribPointer(loc Attrib, size int, typ Enum, normalized bool, stride, offset int) {
	c.gl.Call("vertexAttribPointer", loc.Loc, size, int(typ), normalized, stride, offset)
}

func (c *context) CreateTexture() Texture {
	return Texture{V: c.gl.Call("createTexture")}
}

func (c *context) ActiveTexture(unit Enum) {
	c.gl.Call("activeTexture", int(unit))
}

func (c *context) BindTexture(target Enum, tx Texture) {
	c.gl.Call("bindTexture", int(target), tx.V)
}

func (c *context) TexImage2D(target Enum, level, width, height int, pix []byte) {
	c.gl.Call("texImage2D", int(target), level, int(RGBA),
		width, height, 0, int(RGBA), int(UNSIGNED_BYTE), uint8Array(pix))
}

func (c *context) TexParameteri(target, pname, val Enum) {
	c.gl.Call("texParameteri", int(target), int(pname), int(val))
}

func (c *context) GenerateMipmap(target Enum) {
	c.gl.Call("generateMipmap", int(target))
}

func (c *context) Enable(capability Enum) {
	c.gl.Call("enable", int(capability))
}

func (c *context) Disable(capability Enum) {
	c.gl.Call("disable", int(capability))
}

func (c *context) BlendFunc(sfactor, dfactor Enum) {
	c.gl.Call("blendFunc", int(sfactor), int(dfactor))
}

func (c *context) DepthFunc(fn Enum) {
	c.gl.Call("depthFunc", int(fn))
}

func (c *context) Viewport(x, y, width, height int) {
	c.gl.Call("viewport", x, y, width, height)
}

func (c *context) ClearColor(r, g, b, a float32) {
	c.gl.Call("clearColor", r, g, b, a)
}

func (c *context) Clear(mask Enum) {
	c.gl.Call("clear", int(mask))
}

func (c *context) DrawArrays(mode Enum, first, count int) {
	c.gl.Call("drawArrays", int(mode), first, count)
}

func (c *context) DrawElements(mode Enum, count int, typ Enum, offset int) {
	c.gl.Call("drawElements", int(mode), count, int(typ), offset)
}
