// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/mesh/base/errors"
	"cogentcore.org/mesh/geom"
	"cogentcore.org/mesh/layout"
	"cogentcore.org/mesh/math32"
	"github.com/jinzhu/copier"
)

// BoxParams are the parameters of a [Box].
type BoxParams struct {

	// Size is the length of the box along each axis.
	Size math32.Vector3

	// Center is the center of the box.
	Center math32.Vector3

	// Tesselation is the number of grid cells along each axis,
	// which must be at least 1.
	Tesselation math32.Vector3i
}

// DefaultBoxParams returns a unit box centered on the origin,
// with one cell per face.
func DefaultBoxParams() BoxParams {
	return BoxParams{
		Size:        math32.Vector3Scalar(1),
		Tesselation: math32.Vector3iScalar(1),
	}
}

// BoxOptions are the parameters of a [Box] to set,
// leaving the others unchanged.
type BoxOptions struct {
	Size        *math32.Vector3
	Center      *math32.Vector3
	Tesselation *math32.Vector3i
}

// Apply sets the parameters that are set in the options.
func (o *BoxOptions) Apply(p *BoxParams) {
	if o == nil {
		return
	}
	if o.Size != nil {
		p.Size = *o.Size
	}
	if o.Center != nil {
		p.Center = *o.Center
	}
	if o.Tesselation != nil {
		p.Tesselation = *o.Tesselation
	}
}

// Box is a rectangular cuboid made of six tesselated faces,
// in one part named "all".
type Box struct {
	*geom.Geometry

	params BoxParams
}

// NewBox returns a new box with the given options applied over
// [DefaultBoxParams]. The options may be nil.
func NewBox(opts *BoxOptions) *Box {
	bx := &Box{params: DefaultBoxParams()}
	opts.Apply(&bx.params)
	bx.Geometry = geom.New(bx)
	return bx
}

// Geom returns the geometry of the box.
func (bx *Box) Geom() *geom.Geometry { return bx.Geometry }

// Params returns the parameters of the box.
func (bx *Box) Params() BoxParams { return bx.params }

// SetOptions applies the given options.
func (bx *Box) SetOptions(opts *BoxOptions) *Box {
	opts.Apply(&bx.params)
	bx.SetNeedsUpdate()
	return bx
}

// SetSize sets the size of the box.
func (bx *Box) SetSize(size math32.Vector3) *Box {
	return bx.SetOptions(&BoxOptions{Size: &size})
}

// SetCenter sets the center of the box.
func (bx *Box) SetCenter(center math32.Vector3) *Box {
	return bx.SetOptions(&BoxOptions{Center: &center})
}

// SetTesselation sets the number of grid cells along each axis.
func (bx *Box) SetTesselation(tess math32.Vector3i) *Box {
	return bx.SetOptions(&BoxOptions{Tesselation: &tess})
}

// Clone returns a new box with the same parameters, layout and settings.
func (bx *Box) Clone() *Box {
	nb := &Box{}
	errors.Log(copier.CopyWithOption(&nb.params, &bx.params, copier.Option{CaseSensitive: true, DeepCopy: true}))
	nb.Geometry = bx.Geometry.Clone(nb)
	return nb
}

// BoxN returns the number of vertices and indices of a box
// with the given number of grid cells along each axis.
func BoxN(tess math32.Vector3i) (numVertex, numIndex int) {
	for f := range FacesN {
		ud, vd, _ := f.Axes()
		nv, ni := PlaneN(int(tess.Dim(ud)), int(tess.Dim(vd)))
		numVertex += nv
		numIndex += ni
	}
	return
}

func (bx *Box) N() (numVertex, numIndex int) { return BoxN(bx.params.Tesselation) }

func (bx *Box) PartNames() []string { return []string{"all"} }

func (bx *Box) SizeAndParts(g *geom.Geometry) error {
	if bx.params.Tesselation.Min() < 1 {
		return fmt.Errorf("shape: box tesselation %v must be at least 1: %w", bx.params.Tesselation, layout.ErrInvalidArgument)
	}
	nv, ni := bx.N()
	if err := g.SetCount(nv, ni); err != nil {
		return err
	}
	return g.SetPart(0, 0, ni)
}

func (bx *Box) Fill(vw *geom.Vertices, iw *geom.Indices) {
	wr := newWriter(vw, iw)
	for f := range FacesN {
		wr.plane(f, bx.params.Center, bx.params.Size, bx.params.Tesselation)
	}
}
