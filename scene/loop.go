// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"github.com/intro-graphics/tinygraphics/gl"
	"github.com/intro-graphics/tinygraphics/gpu"
)

// Loop is the render loop driver for one graphics context: it owns
// the context and the frame state clock, and renders its scene once
// per tick. The host's display-refresh callback (requestAnimationFrame
// in the widgets layer) calls [Loop.Tick]; nothing here re-schedules.
type Loop struct {
	// Context is the surface this loop draws to.
	Context gl.Context

	// Scene is rendered once per tick.
	Scene *Scene

	// Frame is the per-tick shared state handed to every draw call.
	// The caller configures camera, projection, and lights on it.
	Frame gpu.FrameState

	started bool
	start   float64
	last    float64
}

// NewLoop returns a render loop drawing the given scene to the given
// context.
func NewLoop(ctx gl.Context, sc *Scene) *Loop {
	return &Loop{Context: ctx, Scene: sc}
}

// Init sets the ambient GL state the library assumes on every draw:
// depth testing and alpha blending. Call once after acquiring the
// context.
func (lp *Loop) Init() {
	lp.Context.Enable(gl.DEPTH_TEST)
	lp.Context.DepthFunc(gl.LEQUAL)
	lp.Context.Enable(gl.BLEND)
	lp.Context.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// Tick advances the clock to now (seconds, any fixed epoch), clears
// the surface, and renders the scene. Render errors propagate to the
// caller, which should stop the loop: they signal programmer errors,
// not transient faults.
func (lp *Loop) Tick(now float64) error {
	if !lp.started {
		lp.started = true
		lp.start = now
		lp.last = now
	}
	lp.Frame.Time = float32(now - lp.start)
	lp.Frame.DeltaTime = float32(now - lp.last)
	lp.last = now

	bg := lp.Scene.Background
	lp.Context.ClearColor(bg.X, bg.Y, bg.Z, bg.W)
	lp.Context.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	return lp.Scene.Render(lp.Context, &lp.Frame)
}
