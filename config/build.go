// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strings"

	"cogentcore.org/mesh/layout"
	"cogentcore.org/mesh/math32"
	"cogentcore.org/mesh/shape"
)

// Build returns a new shape with the configured parameters
// applied over the defaults of its kind, and with the configured
// layout, topology and index settings. Vectors of the wrong length
// and fields that the kind does not use are errors.
func (sc *ShapeConfig) Build() (shape.Generator, error) {
	gen, err := sc.newShape()
	if err != nil {
		return nil, fmt.Errorf("config: shape %q: %w", sc.Name, err)
	}
	g := gen.Geom()
	if sc.Layout != "" {
		ly, err := layout.Preset(sc.Layout)
		if err != nil {
			return nil, fmt.Errorf("config: shape %q: %w", sc.Name, err)
		}
		g.SetLayout(ly)
	}
	if sc.Topology != "" {
		if err := g.Topology.SetString(sc.Topology); err != nil {
			return nil, fmt.Errorf("config: shape %q: %w", sc.Name, err)
		}
	}
	g.WideIndices = sc.WideIndices
	return gen, nil
}

func (sc *ShapeConfig) newShape() (shape.Generator, error) {
	switch strings.ToLower(sc.Kind) {
	case "box":
		if err := sc.unused(field{"radius", len(sc.Radius) > 0}, field{"back", sc.Back != nil}); err != nil {
			return nil, err
		}
		opts := &shape.BoxOptions{}
		var err error
		if opts.Size, err = vector3("size", sc.Size); err != nil {
			return nil, err
		}
		if opts.Center, err = vector3("center", sc.Center); err != nil {
			return nil, err
		}
		if opts.Tesselation, err = vector3i("tesselation", sc.Tesselation); err != nil {
			return nil, err
		}
		return shape.NewBox(opts), nil
	case "plane":
		if err := sc.unused(field{"radius", len(sc.Radius) > 0}, field{"center", len(sc.Center) > 0}); err != nil {
			return nil, err
		}
		opts := &shape.PlaneOptions{Back: sc.Back}
		var err error
		if opts.Size, err = vector2("size", sc.Size); err != nil {
			return nil, err
		}
		if opts.Tesselation, err = vector2i("tesselation", sc.Tesselation); err != nil {
			return nil, err
		}
		return shape.NewPlane(opts), nil
	case "torus":
		if err := sc.unused(field{"size", len(sc.Size) > 0}, field{"center", len(sc.Center) > 0}, field{"back", sc.Back != nil}); err != nil {
			return nil, err
		}
		opts := &shape.TorusOptions{}
		var err error
		if opts.Radius, err = vector2("radius", sc.Radius); err != nil {
			return nil, err
		}
		if opts.Tesselation, err = vector2i("tesselation", sc.Tesselation); err != nil {
			return nil, err
		}
		return shape.NewTorus(opts), nil
	}
	return nil, fmt.Errorf("unknown kind %q (want box, plane or torus): %w", sc.Kind, layout.ErrInvalidArgument)
}

// field is a named option and whether it is set.
type field struct {
	name string
	set  bool
}

// unused returns an error for the first of the fields that is set.
func (sc *ShapeConfig) unused(fields ...field) error {
	for _, fd := range fields {
		if fd.set {
			return fmt.Errorf("%s does not have a %s: %w", sc.Kind, fd.name, layout.ErrInvalidArgument)
		}
	}
	return nil
}

func checkLen[T any](name string, v []T, n int) error {
	if len(v) != n {
		return fmt.Errorf("%s has %d values, want %d: %w", name, len(v), n, layout.ErrInvalidArgument)
	}
	return nil
}

func vector3(name string, v []float32) (*math32.Vector3, error) {
	if v == nil {
		return nil, nil
	}
	if err := checkLen(name, v, 3); err != nil {
		return nil, err
	}
	r := math32.Vec3(v[0], v[1], v[2])
	return &r, nil
}

func vector2(name string, v []float32) (*math32.Vector2, error) {
	if v == nil {
		return nil, nil
	}
	if err := checkLen(name, v, 2); err != nil {
		return nil, err
	}
	r := math32.Vec2(v[0], v[1])
	return &r, nil
}

func vector3i(name string, v []int32) (*math32.Vector3i, error) {
	if v == nil {
		return nil, nil
	}
	if err := checkLen(name, v, 3); err != nil {
		return nil, err
	}
	r := math32.Vec3i(v[0], v[1], v[2])
	return &r, nil
}

func vector2i(name string, v []int32) (*math32.Vector2i, error) {
	if v == nil {
		return nil, nil
	}
	if err := checkLen(name, v, 2); err != nil {
		return nil, err
	}
	r := math32.Vec2i(v[0], v[1])
	return &r, nil
}
