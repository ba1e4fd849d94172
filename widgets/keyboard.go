// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package widgets

import (
	"strings"
	"syscall/js"
)

// Keyboard dispatches key combos to handlers and tracks which keys
// are currently held, for demos that move the camera while a key is
// down. Combos are written as "key" or "Modifier+key", e.g. "w",
// "ArrowUp", "Shift+t".
type Keyboard struct {
	bindings map[string]func()
	down     map[string]bool

	keydown js.Func
	keyup   js.Func
}

// NewKeyboard installs keydown/keyup listeners on the window and
// returns the manager.
func NewKeyboard() *Keyboard {
	kb := &Keyboard{
		bindings: make(map[string]func()),
		down:     make(map[string]bool),
	}
	kb.keydown = js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		key := ev.Get("key").String()
		kb.down[key] = true
		if fn, ok := kb.bindings[comboOf(ev)]; ok {
			ev.Call("preventDefault")
			fn()
		}
		return nil
	})
	kb.keyup = js.FuncOf(func(this js.Value, args []js.Value) any {
		delete(kb.down, args[0].Get("key").String())
		return nil
	})
	window := js.Global().Get("window")
	window.Call("addEventListener", "keydown", kb.keydown)
	window.Call("addEventListener", "keyup", kb.keyup)
	return kb
}

// comboOf renders a keyboard event as a combo string.
func comboOf(ev js.Value) string {
	mods := []struct{ prop, name string }{
		{"ctrlKey", "Control"},
		{"altKey", "Alt"},
		{"metaKey", "Meta"},
		{"shiftKey", "Shift"},
	}
	var sb strings.Builder
	for _, mod := range mods {
		if ev.Get(mod.prop).Bool() {
			sb.WriteString(mod.name)
			sb.WriteString("+")
		}
	}
	sb.WriteString(ev.Get("key").String())
	return sb.String()
}

// Bind registers a handler for a key combo, replacing any previous
// binding for the same combo.
func (kb *Keyboard) Bind(combo string, fn func()) {
	kb.bindings[combo] = fn
}

// Down reports whether the named key is currently held.
func (kb *Keyboard) Down(key string) bool {
	return kb.down[key]
}

// Release removes the window listeners.
func (kb *Keyboard) Release() {
	window := js.Global().Get("window")
	window.Call("removeEventListener", "keydown", kb.keydown)
	window.Call("removeEventListener", "keyup", kb.keyup)
	kb.keydown.Release()
	kb.keyup.Release()
}
