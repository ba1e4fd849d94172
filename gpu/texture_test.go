// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"image/color"
	"testing"

	"github.com/intro-graphics/tinygraphics/gl/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 60), A: 255})
		}
	}
	return img
}

func TestTextureNotReadyNoOp(t *testing.T) {
	ctx := gltest.NewRecorder()
	tx := &Texture{URL: "unloaded.png"}
	tx.Cache.Counter = NewCounter(DefaultThreshold)

	// before the image loads, activation is a no-op: zero GPU calls
	require.NoError(t, tx.Activate(ctx, 0))
	assert.Empty(t, ctx.Calls)
	assert.False(t, tx.Ready())
	assert.Equal(t, 0, tx.Cache.Counter.Count)

	// once ready, the first activation uploads exactly once
	tx.SetImage(testImage())
	assert.True(t, tx.Ready())
	require.NoError(t, tx.Activate(ctx, 0))
	assert.Equal(t, 1, ctx.NumCalls("TexImage2D"))
	assert.Equal(t, 1, ctx.NumCalls("CreateTexture"))
	assert.Equal(t, 1, tx.Cache.Counter.Count)

	// further activations only rebind the cached handle
	binds := ctx.NumCalls("BindTexture")
	require.NoError(t, tx.Activate(ctx, 1))
	require.NoError(t, tx.Activate(ctx, 0))
	assert.Equal(t, 1, ctx.NumCalls("TexImage2D"))
	assert.Equal(t, 1, ctx.NumCalls("CreateTexture"))
	assert.Equal(t, binds+2, ctx.NumCalls("BindTexture"))
	assert.Equal(t, 1, tx.Cache.Counter.Count)
}

func TestTextureFilterModes(t *testing.T) {
	ctx := gltest.NewRecorder()
	tx := NewTextureFromImage(testImage())
	tx.Cache.Counter = NewCounter(DefaultThreshold)

	// default trilinear filtering generates the mipmap chain
	require.NoError(t, tx.Activate(ctx, 0))
	assert.Equal(t, 1, ctx.NumCalls("GenerateMipmap"))

	ctx2 := gltest.NewRecorder()
	nearest := NewTextureFromImage(testImage())
	nearest.Filter = Nearest
	nearest.Cache.Counter = NewCounter(DefaultThreshold)
	require.NoError(t, nearest.Activate(ctx2, 0))
	assert.Equal(t, 0, ctx2.NumCalls("GenerateMipmap"))
}

func TestTexturePerContext(t *testing.T) {
	ctxA := gltest.NewRecorder()
	ctxB := gltest.NewRecorder()
	tx := NewTextureFromImage(testImage())
	tx.Cache.Counter = NewCounter(DefaultThreshold)

	require.NoError(t, tx.Activate(ctxA, 0))
	require.NoError(t, tx.Activate(ctxB, 0))
	assert.Equal(t, 1, ctxA.NumCalls("TexImage2D"))
	assert.Equal(t, 1, ctxB.NumCalls("TexImage2D"))
	assert.Equal(t, 2, tx.Cache.Counter.Count)
}

func TestTextureLoadEmptyURL(t *testing.T) {
	tx := &Texture{}
	tx.Load() // nothing to fetch; stays quietly unready
	assert.False(t, tx.Ready())
}
