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

// TorusParams are the parameters of a [Torus].
type TorusParams struct {

	// Radius is the radius of the ring (X) and of the tube (Y).
	Radius math32.Vector2

	// Tesselation is the number of segments around the ring (X)
	// and around the tube (Y), which must be at least 1.
	Tesselation math32.Vector2i
}

// DefaultTorusParams returns the default torus parameters.
func DefaultTorusParams() TorusParams {
	return TorusParams{
		Radius:      math32.Vec2(1.5, 0.5),
		Tesselation: math32.Vec2i(128, 64),
	}
}

// TorusOptions are the parameters of a [Torus] to set,
// leaving the others unchanged.
type TorusOptions struct {
	Radius      *math32.Vector2
	Tesselation *math32.Vector2i
}

// Apply sets the parameters that are set in the options.
func (o *TorusOptions) Apply(p *TorusParams) {
	if o == nil {
		return
	}
	if o.Radius != nil {
		p.Radius = *o.Radius
	}
	if o.Tesselation != nil {
		p.Tesselation = *o.Tesselation
	}
}

// Torus is a ring around the Y axis with a circular cross section,
// in one part named "all". The texture coordinates run around
// the ring (U) and around the tube (V).
type Torus struct {
	*geom.Geometry

	params TorusParams
}

// NewTorus returns a new torus with the given options applied over
// [DefaultTorusParams]. The options may be nil.
func NewTorus(opts *TorusOptions) *Torus {
	tr := &Torus{params: DefaultTorusParams()}
	opts.Apply(&tr.params)
	tr.Geometry = geom.New(tr)
	return tr
}

// Geom returns the geometry of the torus.
func (tr *Torus) Geom() *geom.Geometry { return tr.Geometry }

// Params returns the parameters of the torus.
func (tr *Torus) Params() TorusParams { return tr.params }

// SetOptions applies the given options.
func (tr *Torus) SetOptions(opts *TorusOptions) *Torus {
	opts.Apply(&tr.params)
	tr.SetNeedsUpdate()
	return tr
}

// SetRadius sets the ring and tube radius.
func (tr *Torus) SetRadius(radius math32.Vector2) *Torus {
	return tr.SetOptions(&TorusOptions{Radius: &radius})
}

// SetTesselation sets the number of segments around the ring and tube.
func (tr *Torus) SetTesselation(tess math32.Vector2i) *Torus {
	return tr.SetOptions(&TorusOptions{Tesselation: &tess})
}

// Clone returns a new torus with the same parameters, layout and settings.
func (tr *Torus) Clone() *Torus {
	nt := &Torus{}
	errors.Log(copier.CopyWithOption(&nt.params, &tr.params, copier.Option{CaseSensitive: true, DeepCopy: true}))
	nt.Geometry = tr.Geometry.Clone(nt)
	return nt
}

// TorusN returns the number of vertices and indices of a torus with
// the given number of segments around the ring and around the tube.
func TorusN(tx, ty int) (numVertex, numIndex int) {
	return PlaneN(tx, ty)
}

func (tr *Torus) N() (numVertex, numIndex int) {
	return TorusN(int(tr.params.Tesselation.X), int(tr.params.Tesselation.Y))
}

func (tr *Torus) PartNames() []string { return []string{"all"} }

func (tr *Torus) SizeAndParts(g *geom.Geometry) error {
	ts := tr.params.Tesselation
	if ts.X < 1 || ts.Y < 1 {
		return fmt.Errorf("shape: torus tesselation %v must be at least 1: %w", ts, layout.ErrInvalidArgument)
	}
	nv, ni := tr.N()
	if err := g.SetCount(nv, ni); err != nil {
		return err
	}
	return g.SetPart(0, 0, ni)
}

func (tr *Torus) Fill(vw *geom.Vertices, iw *geom.Indices) {
	tx, ty := int(tr.params.Tesselation.X), int(tr.params.Tesselation.Y)
	r0, r1 := tr.params.Radius.X, tr.params.Radius.Y
	wr := newWriter(vw, iw)
	// one row of ty+1 vertices around the tube per ring segment
	for ix := 0; ix <= tx; ix++ {
		fx := float32(ix) / float32(tx)
		s0, c0 := math32.Sincos(fx * 2 * math32.Pi)
		x0, z0 := -s0, -c0
		for iy := 0; iy <= ty; iy++ {
			fy := float32(iy) / float32(ty)
			s1, c1 := math32.Sincos(fy * 2 * math32.Pi)
			x1, y1 := -c1, s1
			r := r0 + r1*x1
			wr.vertex(math32.Vec3(x0*r, r1*y1, z0*r), math32.Vec3(x0*x1, y1, z0*x1), fx, fy)
		}
	}
	wr.grid(0, ty, tx)
}
