// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/intro-graphics/tinygraphics/gl"
	"github.com/intro-graphics/tinygraphics/gpu"
	"github.com/intro-graphics/tinygraphics/math32"
)

// Scene is a forest of drawable nodes.
type Scene struct {
	// Name identifies the scene.
	Name string

	// Background is the RGBA clear color.
	Background math32.Vector4

	// Roots are the top-level nodes, rendered in order.
	Roots []Node
}

// NewScene returns an empty scene with a near-black background.
func NewScene(name string) *Scene {
	return &Scene{
		Name:       name,
		Background: math32.Vec4(0, 0, 0.1, 1),
	}
}

// Add appends root nodes to the scene.
func (sc *Scene) Add(roots ...Node) *Scene {
	sc.Roots = append(sc.Roots, roots...)
	return sc
}

// Render draws the whole scene once on the given context, visiting
// nodes in fixed pre-order: each root before the next, each parent
// before its children. Placement transforms compose down the tree.
// The first error stops the traversal and propagates.
func (sc *Scene) Render(ctx gl.Context, frame *gpu.FrameState) error {
	for _, root := range sc.Roots {
		if err := renderNode(root, ctx, frame, math32.Identity4()); err != nil {
			return err
		}
	}
	return nil
}

func renderNode(n Node, ctx gl.Context, frame *gpu.FrameState, parent math32.Matrix4) error {
	nb := n.AsNodeBase()
	world := parent.Mul(nb.Transform)
	if err := n.Render(ctx, frame, world); err != nil {
		return err
	}
	for _, kid := range nb.Children {
		if err := renderNode(kid, ctx, frame, world); err != nil {
			return err
		}
	}
	return nil
}
