// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package widgets

import "syscall/js"

// ControlPanel is a block of demo controls under a canvas: buttons
// that trigger handlers (optionally bound to key combos) and live
// text readouts refreshed every frame.
type ControlPanel struct {
	// Element is the panel's <div>.
	Element js.Value

	// Keyboard receives the key bindings of buttons added with a
	// combo; may be nil if no buttons use combos.
	Keyboard *Keyboard

	live []liveString
}

type liveString struct {
	elem js.Value
	text func() string
}

// NewControlPanel creates an empty panel inside the element with the
// given document id.
func NewControlPanel(parentID string, kb *Keyboard) (*ControlPanel, error) {
	doc := js.Global().Get("document")
	parent := doc.Call("getElementById", parentID)
	if !parent.Truthy() {
		return nil, &missingElementError{id: parentID}
	}
	elem := doc.Call("createElement", "div")
	parent.Call("appendChild", elem)
	return &ControlPanel{Element: elem, Keyboard: kb}, nil
}

type missingElementError struct {
	id string
}

func (e *missingElementError) Error() string {
	return "widgets: no element with id " + e.id
}

// AddButton adds a button running fn when clicked. A non-empty combo
// additionally binds fn to that key combo and shows it on the label.
func (cp *ControlPanel) AddButton(label, combo string, fn func()) {
	doc := js.Global().Get("document")
	btn := doc.Call("createElement", "button")
	text := label
	if combo != "" {
		text += " (" + combo + ")"
	}
	btn.Set("textContent", text)
	btn.Call("addEventListener", "click", js.FuncOf(func(this js.Value, args []js.Value) any {
		fn()
		return nil
	}))
	cp.Element.Call("appendChild", btn)
	if combo != "" && cp.Keyboard != nil {
		cp.Keyboard.Bind(combo, fn)
	}
}

// AddLiveString adds a text readout whose contents are recomputed by
// text on every [ControlPanel.Update].
func (cp *ControlPanel) AddLiveString(text func() string) {
	doc := js.Global().Get("document")
	elem := doc.Call("createElement", "div")
	cp.Element.Call("appendChild", elem)
	cp.live = append(cp.live, liveString{elem: elem, text: text})
}

// NewLine adds a line break between controls.
func (cp *ControlPanel) NewLine() {
	doc := js.Global().Get("document")
	cp.Element.Call("appendChild", doc.Call("createElement", "br"))
}

// Update refreshes every live readout; call it once per tick.
func (cp *ControlPanel) Update() {
	for _, ls := range cp.live {
		ls.elem.Set("textContent", ls.text())
	}
}
