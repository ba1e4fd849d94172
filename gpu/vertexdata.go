// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/intro-graphics/tinygraphics/base/ordmap"
	"github.com/intro-graphics/tinygraphics/gl"
	"github.com/intro-graphics/tinygraphics/math32"
)

// Attribute is one named per-vertex attribute array of a
// [VertexData], flattened row-major into contiguous float32 values.
type Attribute struct {
	// Components is the number of floats per vertex (1-4).
	Components int

	// Data is the flattened values, Components floats per vertex.
	Data math32.ArrayF32
}

// NumVertex returns the number of vertices the array covers.
func (at *Attribute) NumVertex() int {
	if at.Components == 0 {
		return 0
	}
	return len(at.Data) / at.Components
}

// VertexState is the per-context representation of a [VertexData]:
// one GPU buffer per attribute name, plus an index buffer when the
// shape has connectivity.
type VertexState struct {
	// Buffers maps attribute name to its GPU buffer.
	Buffers map[string]gl.Buffer

	// IndexBuffer holds the connectivity indices; invalid when the
	// shape draws unindexed.
	IndexBuffer gl.Buffer
}

// VertexData is a GPU-resident shape: named per-vertex attribute
// arrays kept in lock-step by vertex index, plus an optional
// connectivity index list. With an empty index list, every 3
// consecutive vertices form a triangle.
//
// Shape generators populate the arrays before the first draw. After
// that the arrays may be mutated, followed by [VertexData.Upload]
// naming the changed attributes to selectively rewrite only those
// GPU buffers. Drawing never mutates the arrays.
type VertexData struct {
	// Name identifies the shape in error messages.
	Name string

	// Attributes are the per-vertex arrays, in insertion order.
	Attributes ordmap.Map[string, *Attribute]

	// Index is the connectivity list; may be empty.
	Index math32.ArrayU32

	// Cache holds the per-context buffer state.
	Cache Cache[VertexState]
}

// NewVertexData returns a new empty shape with the given name.
func NewVertexData(name string) *VertexData {
	return &VertexData{Name: name}
}

// SetAttribute sets the named attribute array, replacing any
// existing one. The data is used as-is, not copied.
func (vd *VertexData) SetAttribute(name string, components int, data math32.ArrayF32) {
	vd.Attributes.Add(name, &Attribute{Components: components, Data: data})
}

// Attribute returns the named attribute array, or nil if not present.
func (vd *VertexData) Attribute(name string) *Attribute {
	return vd.Attributes.ValueByKey(name)
}

// NumVertex returns the vertex count of the first attribute array.
func (vd *VertexData) NumVertex() int {
	if vd.Attributes.Len() == 0 {
		return 0
	}
	return vd.Attributes.ValueByIndex(0).NumVertex()
}

// Validate eagerly checks the shape invariants: every attribute
// array covers the same number of vertices, and every connectivity
// index is in range. Malformed shapes would otherwise render blank
// with only host-level warnings, so [VertexData.Upload] calls this
// before touching the GPU.
func (vd *VertexData) Validate() error {
	nv := -1
	first := ""
	for _, kv := range vd.Attributes.Order {
		at := kv.Value
		if at.Components < 1 || at.Components > 4 {
			return fmt.Errorf("gpu.VertexData %s: attribute %s has %d components; must be 1-4", vd.Name, kv.Key, at.Components)
		}
		if len(at.Data)%at.Components != 0 {
			return fmt.Errorf("gpu.VertexData %s: attribute %s length %d is not a multiple of %d components", vd.Name, kv.Key, len(at.Data), at.Components)
		}
		if nv < 0 {
			nv = at.NumVertex()
			first = kv.Key
			continue
		}
		if at.NumVertex() != nv {
			return fmt.Errorf("gpu.VertexData %s: attribute %s has %d vertices but %s has %d", vd.Name, kv.Key, at.NumVertex(), first, nv)
		}
	}
	for i, ix := range vd.Index {
		if int(ix) >= nv {
			return fmt.Errorf("gpu.VertexData %s: index %d value %d is out of range of %d vertices", vd.Name, i, ix, nv)
		}
	}
	return nil
}

// Upload writes the shape's arrays to the given context's buffers.
//
// On the first upload for a context it allocates one buffer per
// attribute plus an index buffer when connectivity is non-empty, and
// writes full contents of everything. On later calls it rewrites
// only the buffers named in names (nil means all attributes), each a
// full overwrite, and rewrites the index buffer only when withIndex
// is set; unnamed buffers are left untouched, so callers can cheaply
// update e.g. only texture coordinates of an uploaded shape.
func (vd *VertexData) Upload(ctx gl.Context, names []string, withIndex bool) error {
	if err := vd.Validate(); err != nil {
		return err
	}
	first := false
	vs, err := vd.Cache.Ensure(ctx, func(vs *VertexState) error {
		first = true
		vs.Buffers = make(map[string]gl.Buffer, vd.Attributes.Len())
		for _, kv := range vd.Attributes.Order {
			vs.Buffers[kv.Key] = ctx.CreateBuffer()
		}
		if len(vd.Index) > 0 {
			vs.IndexBuffer = ctx.CreateBuffer()
		}
		return vd.write(ctx, vs, nil, true)
	})
	if err != nil {
		return err
	}
	if first {
		return nil
	}
	return vd.write(ctx, vs, names, withIndex)
}

// write rewrites the named attribute buffers (nil means all) and,
// when withIndex is set, the index buffer.
func (vd *VertexData) write(ctx gl.Context, vs *VertexState, names []string, withIndex bool) error {
	if names == nil {
		names = vd.Attributes.Keys()
	}
	for _, name := range names {
		at, ok := vd.Attributes.ValueByKeyTry(name)
		if !ok {
			return fmt.Errorf("gpu.VertexData %s: no attribute named %s to upload", vd.Name, name)
		}
		ctx.BindBuffer(gl.ARRAY_BUFFER, vs.Buffers[name])
		ctx.BufferDataF32(gl.ARRAY_BUFFER, at.Data, gl.STATIC_DRAW)
	}
	if withIndex && len(vd.Index) > 0 {
		ctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, vs.IndexBuffer)
		ctx.BufferDataU32(gl.ELEMENT_ARRAY_BUFFER, vd.Index, gl.STATIC_DRAW)
	}
	return nil
}

// Activate returns the per-context buffer state, performing the full
// first upload if the context has not seen this shape; after that it
// is a map lookup only.
func (vd *VertexData) Activate(ctx gl.Context) (*VertexState, error) {
	if vs, ok := vd.Cache.Lookup(ctx); ok {
		return vs, nil
	}
	if err := vd.Upload(ctx, nil, true); err != nil {
		return nil, err
	}
	vs, _ := vd.Cache.Lookup(ctx)
	return vs, nil
}

// Draw draws the shape once on the given context: it activates the
// cached (or freshly uploaded) buffers, has the material's program
// bind itself and its uniform and attribute state, then issues one
// draw call covering the whole index list, or every 3 consecutive
// vertices when the shape has no connectivity. The default primitive
// mode is [gl.TRIANGLES].
func (vd *VertexData) Draw(ctx gl.Context, frame *FrameState, model math32.Matrix4, mat *Material, mode ...gl.Enum) error {
	md := gl.TRIANGLES
	if len(mode) > 0 {
		md = mode[0]
	}
	vs, err := vd.Activate(ctx)
	if err != nil {
		return err
	}
	if _, err := mat.Program.Activate(ctx, vs.Buffers, frame, model, mat); err != nil {
		return err
	}
	if len(vd.Index) > 0 {
		ctx.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, vs.IndexBuffer)
		ctx.DrawElements(md, len(vd.Index), gl.UNSIGNED_INT, 0)
	} else {
		ctx.DrawArrays(md, 0, vd.NumVertex())
	}
	return nil
}
