// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene provides the drawable scene tree and the render loop
// driver. A [Scene] is a forest of [Node]s visited in fixed pre-order
// (parent before children, roots in order) once per tick, so draw
// calls execute in the same deterministic order every frame; this
// matters because later draws occlude or blend over earlier ones.
package scene

import (
	"github.com/intro-graphics/tinygraphics/gl"
	"github.com/intro-graphics/tinygraphics/gpu"
	"github.com/intro-graphics/tinygraphics/math32"
)

// Node is one element of the scene tree.
type Node interface {

	// AsNodeBase returns the [NodeBase] of this node, which provides
	// its name, placement transform, and children.
	AsNodeBase() *NodeBase

	// Render draws this node once. The model matrix is the node's
	// world placement: the parent's world matrix times the node's
	// own Transform. Group nodes render nothing.
	Render(ctx gl.Context, frame *gpu.FrameState, model math32.Matrix4) error
}

// NodeBase provides the core implementation of the [Node] interface.
type NodeBase struct {
	// Name identifies the node in control panels and errors.
	Name string

	// Transform places the node relative to its parent.
	Transform math32.Matrix4

	// Children are rendered after (and placed relative to) this node.
	Children []Node
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

// Render on the base node draws nothing.
func (nb *NodeBase) Render(ctx gl.Context, frame *gpu.FrameState, model math32.Matrix4) error {
	return nil
}

// AddChild appends children to this node, returning the node's base
// for chaining.
func (nb *NodeBase) AddChild(kids ...Node) *NodeBase {
	nb.Children = append(nb.Children, kids...)
	return nb
}

// Group is a [Node] that renders nothing itself and only places its
// children.
type Group struct {
	NodeBase
}

// NewGroup returns a group node with an identity transform.
func NewGroup(name string) *Group {
	gr := &Group{}
	gr.Name = name
	gr.Transform = math32.Identity4()
	return gr
}

// Solid is a [Node] that draws one shape with one material.
type Solid struct {
	NodeBase

	// Shape is the vertex data to draw.
	Shape *gpu.VertexData

	// Material is the surface appearance to draw it with.
	Material *gpu.Material

	// Mode is the primitive kind, [gl.TRIANGLES] by default.
	Mode gl.Enum
}

// NewSolid returns a solid node drawing the given shape with the
// given material, with an identity transform.
func NewSolid(name string, shape *gpu.VertexData, mat *gpu.Material) *Solid {
	sl := &Solid{Shape: shape, Material: mat, Mode: gl.TRIANGLES}
	sl.Name = name
	sl.Transform = math32.Identity4()
	return sl
}

func (sl *Solid) Render(ctx gl.Context, frame *gpu.FrameState, model math32.Matrix4) error {
	return sl.Shape.Draw(ctx, frame, model, sl.Material, sl.Mode)
}

// Walker return values, for readability.
const (
	// Continue proceeds into the node's children.
	Continue = true

	// Break stops the traversal.
	Break = false
)

// WalkDown calls fun on the node and then, if fun returns [Continue],
// pre-order on each of its children. It returns false as soon as any
// call returns [Break].
func WalkDown(n Node, fun func(n Node) bool) bool {
	if !fun(n) {
		return false
	}
	for _, kid := range n.AsNodeBase().Children {
		if !WalkDown(kid, fun) {
			return false
		}
	}
	return true
}
