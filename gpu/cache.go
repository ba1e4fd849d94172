// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu implements the GPU-resident object protocol: shapes,
// shader programs and textures that lazily upload themselves to one
// or more graphics contexts on first use, cache the per-context
// handles, and re-activate that cached state on every later draw
// without re-uploading.
//
// The shared mechanism is [Cache], a per-context map that each of
// [VertexData], [Program] and [Texture] holds (composition rather
// than a base class). A first call for a context runs the expensive
// upload exactly once; every call after that is a map lookup. A
// process-wide [Counter] guards against the classic bug of
// re-constructing a GPU-bound object every frame.
//
// Everything here runs on the single render goroutine; nothing locks.
package gpu

import "github.com/intro-graphics/tinygraphics/gl"

// Cache is the per-context state of one GPU-resident object: a map
// from graphics context to the representation R holding that
// context's resource handles (buffers, program, texture).
//
// For any context there is at most one R, created exactly once on
// the first [Cache.Ensure] and returned by identity ever after.
// Entries are never removed: contexts live for the process duration.
// Representations for different contexts never interact.
type Cache[R any] struct {
	// Counter is the upload counter to charge first uploads against.
	// When nil, [DefaultCounter] is used.
	Counter *Counter

	contexts map[gl.Context]*R
}

// Lookup returns the representation for the given context if one has
// been created, with no side effects.
func (ch *Cache[R]) Lookup(ctx gl.Context) (*R, bool) {
	rep, ok := ch.contexts[ctx]
	return rep, ok
}

// Len returns the number of contexts this object has been uploaded to.
func (ch *Cache[R]) Len() int {
	return len(ch.contexts)
}

// Ensure returns the representation for the given context, creating
// it on first use. On the re-activation path (context already known)
// it returns the stored representation unchanged, with no side
// effects. On the first-upload path it charges the upload counter,
// stores a blank representation, and runs init to populate the real
// resource handles into it.
//
// A counter failure returns [ExcessiveUploadError] before anything
// is stored. A failed init removes the entry again, so no partial
// representation survives; the counter charge stands, since the
// counter is a smoke alarm rather than precise accounting.
func (ch *Cache[R]) Ensure(ctx gl.Context, init func(rep *R) error) (*R, error) {
	if rep, ok := ch.contexts[ctx]; ok {
		return rep, nil
	}
	ct := ch.Counter
	if ct == nil {
		ct = DefaultCounter
	}
	if err := ct.Incr(); err != nil {
		return nil, err
	}
	if ch.contexts == nil {
		ch.contexts = make(map[gl.Context]*R)
	}
	rep := new(R)
	ch.contexts[ctx] = rep
	if init != nil {
		if err := init(rep); err != nil {
			delete(ch.contexts, ctx)
			return nil, err
		}
	}
	return rep, nil
}
