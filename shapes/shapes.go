// Copyright (c) 2026, Tiny Graphics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes generates the stock vertex data sets: flat and
// curved surfaces with position, normal and texture_coord attributes
// plus triangle connectivity, ready to draw with any of the stock
// shaders. Construct each shape once, outside per-frame code, and
// reuse it; a shape uploads itself to each context on first draw.
package shapes

import (
	"fmt"

	"github.com/intro-graphics/tinygraphics/gpu"
	"github.com/intro-graphics/tinygraphics/math32"
)

// NewSquare returns a unit square in the XY plane, from (-1,-1) to
// (1,1), facing +Z.
func NewSquare() *gpu.VertexData {
	vd := gpu.NewVertexData("square")
	vd.SetAttribute("position", 3, math32.ArrayF32{
		-1, -1, 0, 1, -1, 0, 1, 1, 0, -1, 1, 0,
	})
	vd.SetAttribute("normal", 3, math32.ArrayF32{
		0, 0, 1, 0, 0, 1, 0, 0, 1, 0, 0, 1,
	})
	vd.SetAttribute("texture_coord", 2, math32.ArrayF32{
		0, 0, 1, 0, 1, 1, 0, 1,
	})
	vd.Index = math32.ArrayU32{0, 1, 2, 0, 2, 3}
	return vd
}

// NewCube returns a 2x2x2 cube centered on the origin, with flat
// normals (4 vertices per face).
func NewCube() *gpu.VertexData {
	vd := gpu.NewVertexData("cube")
	var pos, nrm, tex math32.ArrayF32
	var idx math32.ArrayU32

	// each face is a rotated copy of the +Z square
	faces := []math32.Matrix4{
		math32.Identity4(),                                // +Z
		math32.Rotation4(math32.Pi, math32.Vec3(0, 1, 0)), // -Z
		math32.Rotation4(math32.Pi/2, math32.Vec3(0, 1, 0)),  // +X
		math32.Rotation4(-math32.Pi/2, math32.Vec3(0, 1, 0)), // -X
		math32.Rotation4(-math32.Pi/2, math32.Vec3(1, 0, 0)), // +Y
		math32.Rotation4(math32.Pi/2, math32.Vec3(1, 0, 0)),  // -Y
	}
	corners := []math32.Vector3{
		{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
	}
	for fi, face := range faces {
		base := uint32(fi * 4)
		normal := face.MulVector4(math32.Vec4(0, 0, 1, 0)).ToVector3()
		for _, corner := range corners {
			pos.AppendVector3(face.MulPoint(corner))
			nrm.AppendVector3(normal)
		}
		tex.Append(0, 0, 1, 0, 1, 1, 0, 1)
		idx.Append(base, base+1, base+2, base, base+2, base+3)
	}
	vd.SetAttribute("position", 3, pos)
	vd.SetAttribute("normal", 3, nrm)
	vd.SetAttribute("texture_coord", 2, tex)
	vd.Index = idx
	return vd
}

// NewTetrahedron returns a regular tetrahedron with flat normals
// (3 vertices per face).
func NewTetrahedron() *gpu.VertexData {
	vd := gpu.NewVertexData("tetrahedron")
	a := math32.Vec3(1, 1, 1)
	b := math32.Vec3(1, -1, -1)
	c := math32.Vec3(-1, 1, -1)
	d := math32.Vec3(-1, -1, 1)
	faces := [][3]math32.Vector3{
		{a, c, b}, {a, b, d}, {a, d, c}, {b, c, d},
	}
	var pos, nrm, tex math32.ArrayF32
	var idx math32.ArrayU32
	for fi, face := range faces {
		normal := face[1].Sub(face[0]).Cross(face[2].Sub(face[0])).Normal()
		for _, p := range face {
			pos.AppendVector3(p)
			nrm.AppendVector3(normal)
		}
		tex.Append(0, 0, 1, 0, 0.5, 1)
		base := uint32(fi * 3)
		idx.Append(base, base+1, base+2)
	}
	vd.SetAttribute("position", 3, pos)
	vd.SetAttribute("normal", 3, nrm)
	vd.SetAttribute("texture_coord", 2, tex)
	vd.Index = idx
	return vd
}

// NewWindmill returns a fan of blades triangles sticking out of the
// Y axis, one of the classic transform-demo shapes. It draws
// unindexed: every 3 consecutive vertices form one blade.
func NewWindmill(blades int) *gpu.VertexData {
	vd := gpu.NewVertexData(fmt.Sprintf("windmill-%d", blades))
	var pos, nrm, tex math32.ArrayF32
	up := math32.Vec3(0, 1, 0)
	for i := 0; i < blades; i++ {
		angle := 2 * math32.Pi * float32(i) / float32(blades)
		spin := math32.Rotation4(angle, up)
		edge := spin.MulPoint(math32.Vec3(1, 0, 0))
		normal := spin.MulVector4(math32.Vec4(0, 0, 1, 0)).ToVector3()
		pos.AppendVector3(math32.Vector3{}, edge, edge.Add(up))
		nrm.AppendVector3(normal, normal, normal)
		tex.Append(0, 0, 1, 0, 1, 1)
	}
	vd.SetAttribute("position", 3, pos)
	vd.SetAttribute("normal", 3, nrm)
	vd.SetAttribute("texture_coord", 2, tex)
	return vd
}

// NewAxes returns the three coordinate axis segments from the origin
// out to the given length, for orienting a scene while debugging.
// It draws unindexed; render it with mode [gl.LINES].
func NewAxes(length float32) *gpu.VertexData {
	vd := gpu.NewVertexData("axes")
	var pos, nrm, tex math32.ArrayF32
	for _, axis := range []math32.Vector3{
		math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), math32.Vec3(0, 0, 1),
	} {
		pos.AppendVector3(math32.Vector3{}, axis.MulScalar(length))
		nrm.AppendVector3(axis, axis)
		tex.Append(0, 0, 1, 1)
	}
	vd.SetAttribute("position", 3, pos)
	vd.SetAttribute("normal", 3, nrm)
	vd.SetAttribute("texture_coord", 2, tex)
	return vd
}

// NewSphere returns a unit sphere subdivided into the given number
// of latitude rings and longitude sectors (minimum 3 each), with
// smooth normals.
func NewSphere(rings, sectors int) *gpu.VertexData {
	if rings < 3 {
		rings = 3
	}
	if sectors < 3 {
		sectors = 3
	}
	vd := gpu.NewVertexData(fmt.Sprintf("sphere-%dx%d", rings, sectors))
	var pos, nrm, tex math32.ArrayF32
	var idx math32.ArrayU32
	for r := 0; r <= rings; r++ {
		v := float32(r) / float32(rings)
		phi := v * math32.Pi
		for s := 0; s <= sectors; s++ {
			u := float32(s) / float32(sectors)
			theta := u * 2 * math32.Pi
			p := math32.Vec3(
				math32.Sin(phi)*math32.Cos(theta),
				math32.Cos(phi),
				math32.Sin(phi)*math32.Sin(theta),
			)
			pos.AppendVector3(p)
			nrm.AppendVector3(p)
			tex.Append(u, 1-v)
		}
	}
	stride := uint32(sectors + 1)
	for r := uint32(0); r < uint32(rings); r++ {
		for s := uint32(0); s < uint32(sectors); s++ {
			i := r*stride + s
			idx.Append(i, i+stride, i+stride+1, i, i+stride+1, i+1)
		}
	}
	vd.SetAttribute("position", 3, pos)
	vd.SetAttribute("normal", 3, nrm)
	vd.SetAttribute("texture_coord", 2, tex)
	vd.Index = idx
	return vd
}

// NewTorus returns a torus around the Y axis with the given ring
// radius (center of tube to center of torus) and tube radius,
// subdivided into rings x sectors quads.
func NewTorus(ringRadius, tubeRadius float32, rings, sectors int) *gpu.VertexData {
	if rings < 3 {
		rings = 3
	}
	if sectors < 3 {
		sectors = 3
	}
	vd := gpu.NewVertexData(fmt.Sprintf("torus-%dx%d", rings, sectors))
	var pos, nrm, tex math32.ArrayF32
	var idx math32.ArrayU32
	for r := 0; r <= rings; r++ {
		u := float32(r) / float32(rings)
		theta := u * 2 * math32.Pi
		center := math32.Vec3(math32.Cos(theta), 0, math32.Sin(theta)).MulScalar(ringRadius)
		for s := 0; s <= sectors; s++ {
			v := float32(s) / float32(sectors)
			phi := v * 2 * math32.Pi
			radial := math32.Vec3(math32.Cos(theta), 0, math32.Sin(theta))
			normal := radial.MulScalar(math32.Cos(phi)).Add(math32.Vec3(0, math32.Sin(phi), 0))
			pos.AppendVector3(center.Add(normal.MulScalar(tubeRadius)))
			nrm.AppendVector3(normal)
			tex.Append(u, v)
		}
	}
	stride := uint32(sectors + 1)
	for r := uint32(0); r < uint32(rings); r++ {
		for s := uint32(0); s < uint32(sectors); s++ {
			i := r*stride + s
			idx.Append(i, i+stride, i+stride+1, i, i+stride+1, i+1)
		}
	}
	vd.SetAttribute("position", 3, pos)
	vd.SetAttribute("normal", 3, nrm)
	vd.SetAttribute("texture_coord", 2, tex)
	vd.Index = idx
	return vd
}
