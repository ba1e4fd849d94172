// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

// Enum is a WebGL enumerated constant.
type Enum uint32

// WebGL constant values, named as in the specification.
const (
	POINTS         Enum = 0x0000
	LINES          Enum = 0x0001
	LINE_LOOP      Enum = 0x0002
	LINE_STRIP     Enum = 0x0003
	TRIANGLES      Enum = 0x0004
	TRIANGLE_STRIP Enum = 0x0005
	TRIANGLE_FAN   Enum = 0x0006

	DEPTH_BUFFER_BIT Enum = 0x0100
	COLOR_BUFFER_BIT Enum = 0x4000

	LESS   Enum = 0x0201
	LEQUAL Enum = 0x0203

	SRC_ALPHA           Enum = 0x0302
	ONE_MINUS_SRC_ALPHA Enum = 0x0303

	CULL_FACE  Enum = 0x0B44
	DEPTH_TEST Enum = 0x0B71
	BLEND      Enum = 0x0BE2

	TEXTURE_2D Enum = 0x0DE1

	UNSIGNED_BYTE Enum = 0x1401
	INT           Enum = 0x1404
	UNSIGNED_INT  Enum = 0x1405
	FLOAT         Enum = 0x1406

	RGBA Enum = 0x1908

	NEAREST               Enum = 0x2600
	LINEAR                Enum = 0x2601
	NEAREST_MIPMAP_LINEAR Enum = 0x2702
	LINEAR_MIPMAP_LINEAR  Enum = 0x2703

	TEXTURE_MAG_FILTER Enum = 0x2800
	TEXTURE_MIN_FILTER Enum = 0x2801
	TEXTURE_WRAP_S     Enum = 0x2802
	TEXTURE_WRAP_T     Enum = 0x2803

	REPEAT        Enum = 0x2901
	CLAMP_TO_EDGE Enum = 0x812F

	TEXTURE0 Enum = 0x84C0

	ARRAY_BUFFER         Enum = 0x8892
	ELEMENT_ARRAY_BUFFER Enum = 0x8893

	STATIC_DRAW  Enum = 0x88E4
	DYNAMIC_DRAW Enum = 0x88E8

	FRAGMENT_SHADER Enum = 0x8B30
	VERTEX_SHADER   Enum = 0x8B31

	FLOAT_VEC2 Enum = 0x8B50
	FLOAT_VEC3 Enum = 0x8B51
	FLOAT_VEC4 Enum = 0x8B52
	BOOL       Enum = 0x8B56
	FLOAT_MAT3 Enum = 0x8B5B
	FLOAT_MAT4 Enum = 0x8B5C
	SAMPLER_2D Enum = 0x8B5E

	COMPILE_STATUS    Enum = 0x8B81
	LINK_STATUS       Enum = 0x8B82
	ACTIVE_UNIFORMS   Enum = 0x8B86
	ACTIVE_ATTRIBUTES Enum = 0x8B89
)

// TypeComponents returns the per-vertex component count for a float
// attribute type: 1 for FLOAT up to 4 for FLOAT_VEC4, and 0 for
// types that cannot source a vertex attribute from a float buffer.
func TypeComponents(typ Enum) int {
	switch typ {
	case FLOAT:
		return 1
	case FLOAT_VEC2:
		return 2
	case FLOAT_VEC3:
		return 3
	case FLOAT_VEC4:
		return 4
	}
	return 0
}
