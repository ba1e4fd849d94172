// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"sync/atomic"

	"github.com/anthonynsimon/bild/transform"
	"github.com/intro-graphics/tinygraphics/base/errors"
	"github.com/intro-graphics/tinygraphics/gl"
	"golang.org/x/image/draw"
)

// Filter selects how a texture is sampled.
type Filter int32

const (
	// Trilinear samples with linear filtering across a generated
	// mipmap chain; the default.
	Trilinear Filter = iota

	// Nearest samples the nearest texel with no mipmaps, for a
	// pixelated look.
	Nearest
)

// TextureState is the per-context representation of a [Texture].
type TextureState struct {
	// Handle is the uploaded texture.
	Handle gl.Texture
}

// Texture is a GPU-resident image. Construction with [NewTexture]
// starts an asynchronous fetch of the image resource; until it
// completes, activating the texture is a no-op and drawing proceeds
// without it, so callers must tolerate untextured output during the
// load window. Once loaded, the first activation per context uploads
// the pixels and later activations only rebind the cached handle.
type Texture struct {
	// URL is the image resource this texture was fetched from, if any.
	URL string

	// Filter selects the sampling mode, set before first activation.
	Filter Filter

	// Cache holds the per-context texture handles.
	Cache Cache[TextureState]

	image   *image.RGBA
	ready   atomic.Bool
	loading atomic.Bool
}

// NewTexture returns a texture that asynchronously fetches its image
// from the given URL.
func NewTexture(url string) *Texture {
	tx := &Texture{URL: url}
	tx.Load()
	return tx
}

// NewTextureFromImage returns an immediately-ready texture wrapping
// the given image, for procedurally generated pixels.
func NewTextureFromImage(img image.Image) *Texture {
	tx := &Texture{}
	tx.SetImage(img)
	return tx
}

// Ready reports whether the image has loaded and the texture can be
// uploaded and bound.
func (tx *Texture) Ready() bool {
	return tx.ready.Load()
}

// Load starts fetching the image from URL if no fetch is underway
// and the texture is not already loaded. A Load while a prior fetch
// is still pending is ignored; there is no cancellation.
func (tx *Texture) Load() {
	if tx.URL == "" || tx.ready.Load() {
		return
	}
	if !tx.loading.CompareAndSwap(false, true) {
		return
	}
	go func() {
		img, err := fetchImage(tx.URL)
		if errors.Log(err) != nil {
			tx.loading.Store(false)
			return
		}
		tx.SetImage(img)
	}()
}

// fetchImage retrieves and decodes the image at the given URL.
// Under js, net/http is implemented with the browser's fetch.
func fetchImage(url string) (image.Image, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gpu.Texture: fetching %s: %s", url, resp.Status)
	}
	img, _, err := image.Decode(resp.Body)
	return img, err
}

// SetImage sets the texture pixels from the given image and marks
// the texture ready. The image is converted to RGBA and flipped
// vertically, since WebGL texture coordinates start at the bottom.
func (tx *Texture) SetImage(img image.Image) {
	tx.image = transform.FlipV(toRGBA(img))
	tx.ready.Store(true)
	tx.loading.Store(false)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// Activate binds this texture to the given texture unit on the given
// context. Before the image has loaded this is a no-op making zero
// GPU calls, and drawing proceeds without a bound texture. Once
// ready, the first call per context uploads the pixel data (and the
// mipmap chain for [Trilinear]); subsequent calls only rebind the
// cached handle.
func (tx *Texture) Activate(ctx gl.Context, unit int) error {
	if !tx.ready.Load() {
		return nil
	}
	ctx.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
	ts, err := tx.Cache.Ensure(ctx, func(ts *TextureState) error {
		ts.Handle = ctx.CreateTexture()
		ctx.BindTexture(gl.TEXTURE_2D, ts.Handle)
		sz := tx.image.Bounds().Size()
		ctx.TexImage2D(gl.TEXTURE_2D, 0, sz.X, sz.Y, tx.image.Pix)
		ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
		ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
		switch tx.Filter {
		case Nearest:
			ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
			ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		default:
			ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
			ctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
			ctx.GenerateMipmap(gl.TEXTURE_2D)
		}
		return nil
	})
	if err != nil {
		return err
	}
	ctx.BindTexture(gl.TEXTURE_2D, ts.Handle)
	return nil
}
