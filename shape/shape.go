// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape provides parametric primitive shapes that generate
// their vertices and indices through a [geom.Geometry].
//
// Each shape is configured by a Params struct of defaults with
// an Options struct applied over it, in which only the set
// (non-nil) fields take effect.
package shape

import (
	"cogentcore.org/mesh/geom"
	"cogentcore.org/mesh/layout"
	"cogentcore.org/mesh/math32"
)

// Generator is a shape together with the geometry it generates.
// [Box], [Plane] and [Torus] are Generators.
type Generator interface {
	geom.Shape

	// Geom returns the geometry of the shape.
	Geom() *geom.Geometry

	// Prepare computes the counts and parts; see [geom.Geometry.Prepare].
	Prepare(force bool) error

	// Generate fills the buffers; see [geom.Geometry.Generate].
	Generate(vertex, index []byte) (vb, ib []byte, err error)
}

// PlaneN returns the number of vertices and indices of a plane
// with the given number of grid cells along each axis.
func PlaneN(tu, tv int) (numVertex, numIndex int) {
	return (tu + 1) * (tv + 1), 6 * tu * tv
}

// writer writes the planes of a shape in sequence.
type writer struct {
	vw   *geom.Vertices
	iw   *geom.Indices
	pos  *layout.Attribute
	norm *layout.Attribute
	uv   *layout.Attribute

	// vi and ii are the next vertex and index to write.
	vi, ii int
}

func newWriter(vw *geom.Vertices, iw *geom.Indices) *writer {
	return &writer{
		vw:   vw,
		iw:   iw,
		pos:  vw.Attribute(layout.Position),
		norm: vw.Attribute(layout.Normal),
		uv:   vw.Attribute(layout.UV),
	}
}

// vertex writes the next vertex.
func (wr *writer) vertex(pos, norm math32.Vector3, u, v float32) {
	wr.vw.SetVector3(wr.pos, wr.vi, pos)
	wr.vw.SetVector3(wr.norm, wr.vi, norm)
	wr.vw.Set(wr.uv, wr.vi, u, v)
	wr.vi++
}

// plane writes the vertices and indices of one face of a box
// with the given center, size and number of grid cells per axis.
func (wr *writer) plane(face Faces, center, size math32.Vector3, tess math32.Vector3i) {
	ud, vd, wd := face.Axes()
	us, vs, ws := face.Signs()
	norm := face.Normal()
	su, sv, sw := size.Dim(ud), size.Dim(vd), size.Dim(wd)
	tu, tv := int(tess.Dim(ud)), int(tess.Dim(vd))

	u0 := center.Dim(ud) - su*0.5*us
	v0 := center.Dim(vd) - sv*0.5*vs
	var p math32.Vector3
	p.SetDim(wd, center.Dim(wd)+sw*0.5*ws)

	base := wr.vi
	for iv := 0; iv <= tv; iv++ {
		fv := float32(iv) / float32(tv)
		p.SetDim(vd, v0+fv*sv*vs)
		for iu := 0; iu <= tu; iu++ {
			fu := float32(iu) / float32(tu)
			p.SetDim(ud, u0+fu*su*us)
			wr.vertex(p, norm, fu, 1-fv)
		}
	}
	wr.grid(base, tu, tv)
}

// grid writes two triangles for each cell of a grid of vertices
// that starts at vertex base and has rows of tu+1 vertices.
func (wr *writer) grid(base, tu, tv int) {
	nu := uint32(tu + 1)
	for iv := range tv {
		row := uint32(base + iv*(tu+1))
		for iu := range tu {
			b := row + uint32(iu)
			wr.ii = wr.iw.SetTriangle(wr.ii, b, b+nu+1, b+nu)
			wr.ii = wr.iw.SetTriangle(wr.ii, b, b+1, b+nu+1)
		}
	}
}
