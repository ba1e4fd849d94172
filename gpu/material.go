// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "github.com/intro-graphics/tinygraphics/math32"

// Material is the surface appearance applied to one draw call: a
// program paired with named style parameters. Fields are set by name
// directly; there is no merge-by-type convenience, so code states
// which parameter it is changing.
type Material struct {
	// Program draws surfaces using this material.
	Program *Program

	// Color is the base RGBA surface color.
	Color math32.Vector4

	// Ambient is the fraction of Color visible with no light (0-1).
	Ambient float32

	// Diffusivity scales matte reflection of light (0-1).
	Diffusivity float32

	// Specularity scales shiny reflection of light (0-1).
	Specularity float32

	// Smoothness is the specular exponent; higher is shinier.
	Smoothness float32

	// Texture optionally replaces Color as the base color source.
	// Drawing tolerates a texture whose image has not loaded yet.
	Texture *Texture
}

// NewMaterial returns a material for the given program with neutral
// defaults: opaque white, fully ambient and diffuse.
func NewMaterial(pr *Program) *Material {
	return &Material{
		Program:     pr,
		Color:       math32.Vec4(1, 1, 1, 1),
		Ambient:     0.3,
		Diffusivity: 0.8,
		Specularity: 0.5,
		Smoothness:  40,
	}
}

// SetColor sets the base color and returns the material for chaining.
func (mt *Material) SetColor(color math32.Vector4) *Material {
	mt.Color = color
	return mt
}

// SetTexture sets the texture and returns the material for chaining.
func (mt *Material) SetTexture(tx *Texture) *Material {
	mt.Texture = tx
	return mt
}
