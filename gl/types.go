// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package gl

// On native (test) builds, GPU handles are plain integer ids handed
// out by the test context. Id 0 is the invalid zero value.

// Buffer is a handle to one GPU buffer object.
type Buffer struct {
	Id int
}

// Valid reports whether the handle refers to a real buffer.
func (h Buffer) Valid() bool { return h.Id != 0 }

// Shader is a handle to one shader stage object.
type Shader struct {
	Id int
}

// Valid reports whether the handle refers to a real shader.
func (h Shader) Valid() bool { return h.Id != 0 }

// Program is a handle to one linked program object.
type Program struct {
	Id int
}

// Valid reports whether the handle refers to a real program.
func (h Program) Valid() bool { return h.Id != 0 }

// Texture is a handle to one texture object.
type Texture struct {
	Id int
}

// Valid reports whether the handle refers to a real texture.
func (h Texture) Valid() bool { return h.Id != 0 }

// Uniform is the location of one uniform variable in a program.
type Uniform struct {
	Id int
}

// Valid reports whether the location refers to an active uniform.
func (h Uniform) Valid() bool { return h.Id != 0 }

// Attrib is the location of one vertex attribute in a program.
type Attrib struct {
	Id int
}

// Valid reports whether the location refers to an active attribute.
func (h Attrib) Valid() bool { return h.Id != 0 }
