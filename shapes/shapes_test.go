// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"testing"

	"github.com/intro-graphics/tinygraphics/gpu"
	"github.com/intro-graphics/tinygraphics/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapesValid(t *testing.T) {
	shapes := map[string]*gpu.VertexData{
		"square":      NewSquare(),
		"cube":        NewCube(),
		"tetrahedron": NewTetrahedron(),
		"windmill":    NewWindmill(5),
		"axes":        NewAxes(2),
		"sphere":      NewSphere(8, 16),
		"torus":       NewTorus(1, 0.3, 12, 8),
	}
	for name, vd := range shapes {
		require.NoError(t, vd.Validate(), name)
		assert.Equal(t, []string{"position", "normal", "texture_coord"}, vd.Attributes.Keys(), name)
		assert.Equal(t, 3, vd.Attribute("position").Components, name)
		assert.Equal(t, 2, vd.Attribute("texture_coord").Components, name)
	}
}

func TestSquare(t *testing.T) {
	sq := NewSquare()
	assert.Equal(t, 4, sq.NumVertex())
	assert.Len(t, sq.Index, 6)
}

func TestCube(t *testing.T) {
	cb := NewCube()
	assert.Equal(t, 24, cb.NumVertex())
	assert.Len(t, cb.Index, 36)

	// every corner lies on the surface of the 2x2x2 cube and every
	// normal is a unit axis vector
	pos := cb.Attribute("position").Data
	for i := 0; i < len(pos); i += 3 {
		p := pos.GetVector3(i)
		m := max(math32.Abs(p.X), math32.Abs(p.Y), math32.Abs(p.Z))
		assert.InDelta(t, 1, float64(m), 1e-5)
	}
	nrm := cb.Attribute("normal").Data
	for i := 0; i < len(nrm); i += 3 {
		assert.InDelta(t, 1, float64(nrm.GetVector3(i).Length()), 1e-5)
	}
}

func TestWindmillUnindexed(t *testing.T) {
	wm := NewWindmill(7)
	assert.Equal(t, 21, wm.NumVertex())
	assert.Empty(t, wm.Index)
}

func TestAxes(t *testing.T) {
	ax := NewAxes(3)
	assert.Equal(t, 6, ax.NumVertex())
	assert.Empty(t, ax.Index)
	pos := ax.Attribute("position").Data
	assert.Equal(t, math32.Vec3(3, 0, 0), pos.GetVector3(3))
	assert.Equal(t, math32.Vec3(0, 0, 3), pos.GetVector3(15))
}

func TestSphere(t *testing.T) {
	sp := NewSphere(8, 16)
	assert.Equal(t, 9*17, sp.NumVertex())
	assert.Len(t, sp.Index, 8*16*6)

	// points and normals are unit length
	pos := sp.Attribute("position").Data
	for i := 0; i < len(pos); i += 3 {
		assert.InDelta(t, 1, float64(pos.GetVector3(i).Length()), 1e-5)
	}

	// minimum subdivision is enforced
	tiny := NewSphere(0, 0)
	assert.NoError(t, tiny.Validate())
	assert.Equal(t, 16, tiny.NumVertex())
}

func TestTorus(t *testing.T) {
	to := NewTorus(2, 0.5, 12, 8)
	require.NoError(t, to.Validate())

	// every point is tubeRadius away from the ring circle
	pos := to.Attribute("position").Data
	for i := 0; i < len(pos); i += 3 {
		p := pos.GetVector3(i)
		ring := math32.Sqrt(p.X*p.X+p.Z*p.Z) - 2
		d := math32.Sqrt(ring*ring + p.Y*p.Y)
		assert.InDelta(t, 0.5, float64(d), 1e-5)
	}
}
