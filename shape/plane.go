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

// PlaneParams are the parameters of a [Plane].
type PlaneParams struct {

	// Size is the extent of the plane along X and Y.
	Size math32.Vector2

	// Tesselation is the number of grid cells along X and Y,
	// which must be at least 1.
	Tesselation math32.Vector2i

	// Back adds a back face facing -Z, in the part named "back".
	Back bool
}

// DefaultPlaneParams returns a unit plane with one cell and no back face.
func DefaultPlaneParams() PlaneParams {
	return PlaneParams{
		Size:        math32.Vec2(1, 1),
		Tesselation: math32.Vec2i(1, 1),
	}
}

// PlaneOptions are the parameters of a [Plane] to set,
// leaving the others unchanged.
type PlaneOptions struct {
	Size        *math32.Vector2
	Tesselation *math32.Vector2i
	Back        *bool
}

// Apply sets the parameters that are set in the options.
func (o *PlaneOptions) Apply(p *PlaneParams) {
	if o == nil {
		return
	}
	if o.Size != nil {
		p.Size = *o.Size
	}
	if o.Tesselation != nil {
		p.Tesselation = *o.Tesselation
	}
	if o.Back != nil {
		p.Back = *o.Back
	}
}

// Plane is a tesselated rectangle in the XY plane centered on the
// origin, facing +Z in the part named "front", with an optional
// back face in the part named "back".
type Plane struct {
	*geom.Geometry

	params PlaneParams
}

// NewPlane returns a new plane with the given options applied over
// [DefaultPlaneParams]. The options may be nil.
func NewPlane(opts *PlaneOptions) *Plane {
	pl := &Plane{params: DefaultPlaneParams()}
	opts.Apply(&pl.params)
	pl.Geometry = geom.New(pl)
	return pl
}

// Geom returns the geometry of the plane.
func (pl *Plane) Geom() *geom.Geometry { return pl.Geometry }

// Params returns the parameters of the plane.
func (pl *Plane) Params() PlaneParams { return pl.params }

// SetOptions applies the given options.
func (pl *Plane) SetOptions(opts *PlaneOptions) *Plane {
	opts.Apply(&pl.params)
	pl.SetNeedsUpdate()
	return pl
}

// SetSize sets the extent of the plane.
func (pl *Plane) SetSize(size math32.Vector2) *Plane {
	return pl.SetOptions(&PlaneOptions{Size: &size})
}

// SetTesselation sets the number of grid cells along X and Y.
func (pl *Plane) SetTesselation(tess math32.Vector2i) *Plane {
	return pl.SetOptions(&PlaneOptions{Tesselation: &tess})
}

// SetBack sets whether the plane has a back face.
func (pl *Plane) SetBack(back bool) *Plane {
	return pl.SetOptions(&PlaneOptions{Back: &back})
}

// Clone returns a new plane with the same parameters, layout and settings.
func (pl *Plane) Clone() *Plane {
	np := &Plane{}
	errors.Log(copier.CopyWithOption(&np.params, &pl.params, copier.Option{CaseSensitive: true, DeepCopy: true}))
	np.Geometry = pl.Geometry.Clone(np)
	return np
}

func (pl *Plane) tesselation() math32.Vector3i {
	return math32.Vec3i(pl.params.Tesselation.X, pl.params.Tesselation.Y, 1)
}

func (pl *Plane) N() (numVertex, numIndex int) {
	numVertex, numIndex = PlaneN(int(pl.params.Tesselation.X), int(pl.params.Tesselation.Y))
	if pl.params.Back {
		numVertex *= 2
		numIndex *= 2
	}
	return
}

func (pl *Plane) PartNames() []string { return []string{"front", "back"} }

func (pl *Plane) SizeAndParts(g *geom.Geometry) error {
	if pl.tesselation().Min() < 1 {
		return fmt.Errorf("shape: plane tesselation %v must be at least 1: %w", pl.params.Tesselation, layout.ErrInvalidArgument)
	}
	nv, ni := pl.N()
	if err := g.SetCount(nv, ni); err != nil {
		return err
	}
	if !pl.params.Back {
		return errors.Join(g.SetPart(0, 0, ni), g.SetPart(1, 0, 0))
	}
	return errors.Join(g.SetPart(0, 0, ni/2), g.SetPart(1, ni/2, ni/2))
}

func (pl *Plane) Fill(vw *geom.Vertices, iw *geom.Indices) {
	size := math32.Vec3(pl.params.Size.X, pl.params.Size.Y, 0)
	wr := newWriter(vw, iw)
	wr.plane(PosZ, math32.Vector3{}, size, pl.tesselation())
	if pl.params.Back {
		wr.plane(NegZ, math32.Vector3{}, size, pl.tesselation())
	}
}
