// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package gl

import "syscall/js"

// On js builds, GPU handles wrap the opaque WebGL objects returned
// by the browser. The zero value is invalid.

// Buffer is a handle to one WebGLBuffer.
type Buffer struct {
	V js.Value
}

// Valid reports whether the handle refers to a real buffer.
func (h Buffer) Valid() bool { return h.V.Truthy() }

// Shader is a handle to one WebGLShader.
type Shader struct {
	V js.Value
}

// Valid reports whether the handle refers to a real shader.
func (h Shader) Valid() bool { return h.V.Truthy() }

// Program is a handle to one WebGLProgram.
type Program struct {
	V js.Value
}

// Valid reports whether the handle refers to a real program.
func (h Program) Valid() bool { return h.V.Truthy() }

// Texture is a handle to one WebGLTexture.
type Texture struct {
	V js.Value
}

// Valid reports whether the handle refers to a real texture.
func (h Texture) Valid() bool { return h.V.Truthy() }

// Uniform is a handle to one WebGLUniformLocation.
type Uniform struct {
	V js.Value
}

// Valid reports whether the location refers to an active uniform.
func (h Uniform) Valid() bool { return h.V.Truthy() }

// Attrib is the integer location of one vertex attribute.
// WebGL reports -1 for attributes that are not active.
type Attrib struct {
	Loc int
}

// Valid reports whether the location refers to an active attribute.
func (h Attrib) Valid() bool { return h.Loc >= 0 }
