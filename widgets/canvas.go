// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

// Package widgets is the HTML layer for interactive demos: a canvas
// widget that owns a graphics context and drives its render loop
// from requestAnimationFrame, a control panel of live readouts and
// key-triggered buttons, and a keyboard shortcut manager.
package widgets

import (
	"syscall/js"

	"github.com/intro-graphics/tinygraphics/base/errors"
	"github.com/intro-graphics/tinygraphics/gl"
	"github.com/intro-graphics/tinygraphics/scene"
)

// Canvas is one on-screen drawing area: a <canvas> element, its
// graphics context, and the render loop drawing a scene to it.
type Canvas struct {
	// Element is the <canvas> DOM element.
	Element js.Value

	// Context is the WebGL2 context of the canvas.
	Context gl.Context

	// Loop renders the scene once per animation frame.
	Loop *scene.Loop

	// OnTick, if set, runs before each render with the loop's frame
	// state already advanced; demos update transforms and camera here.
	OnTick func(lp *scene.Loop)

	raf     js.Func
	running bool
}

// NewCanvas creates a canvas of the given size inside the element
// with the given document id, acquires its context, and prepares a
// render loop for the scene. The loop does not run until
// [Canvas.Start].
func NewCanvas(parentID string, width, height int, sc *scene.Scene) (*Canvas, error) {
	doc := js.Global().Get("document")
	parent := doc.Call("getElementById", parentID)
	if !parent.Truthy() {
		return nil, &gl.ContextAcquisitionError{Surface: parentID}
	}
	elem := doc.Call("createElement", "canvas")
	elem.Set("width", width)
	elem.Set("height", height)
	parent.Call("appendChild", elem)

	ctx, err := gl.GetCanvasContext(elem, parentID)
	if err != nil {
		return nil, err
	}
	cv := &Canvas{Element: elem, Context: ctx, Loop: scene.NewLoop(ctx, sc)}
	cv.Loop.Init()
	ctx.Viewport(0, 0, width, height)
	return cv, nil
}

// Start begins the render loop, re-scheduling itself on every
// animation frame until [Canvas.Stop] or a render error. A render
// error is a programmer-error signal: it is logged and halts the
// loop rather than being retried.
func (cv *Canvas) Start() {
	if cv.running {
		return
	}
	cv.running = true
	cv.raf = js.FuncOf(func(this js.Value, args []js.Value) any {
		if !cv.running {
			return nil
		}
		now := args[0].Float() / 1000 // ms -> seconds
		if cv.OnTick != nil {
			cv.OnTick(cv.Loop)
		}
		if err := cv.Loop.Tick(now); errors.Log(err) != nil {
			cv.Stop()
			return nil
		}
		js.Global().Call("requestAnimationFrame", cv.raf)
		return nil
	})
	js.Global().Call("requestAnimationFrame", cv.raf)
}

// Stop halts the render loop and releases the frame callback.
func (cv *Canvas) Stop() {
	if !cv.running {
		return
	}
	cv.running = false
	cv.raf.Release()
}
