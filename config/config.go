// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the shape files read by the meshgen tool:
// a list of named shapes with their parameters and geometry settings,
// in TOML or YAML.
package config

import (
	"fmt"
	"strings"

	"cogentcore.org/mesh/layout"
)

// File is the contents of a shape file.
type File struct {

	// LogLevel is the log level: debug, info, warn or error.
	LogLevel string `toml:"log_level,omitempty" yaml:"log_level,omitempty"`

	// Shapes are the shapes to generate, in order.
	Shapes []ShapeConfig `toml:"shapes" yaml:"shapes"`
}

// ShapeConfig is the configuration of one shape. The vector fields
// are optional, and any that are not given keep their defaults.
type ShapeConfig struct {

	// Name of the shape, which must be unique within the file.
	Name string `toml:"name" yaml:"name"`

	// Kind of shape: box, plane or torus.
	Kind string `toml:"kind" yaml:"kind"`

	// Layout is the name of the vertex layout preset; the default is p3n3t2.
	Layout string `toml:"layout,omitempty" yaml:"layout,omitempty"`

	// Topology of the primitives; the default is TriangleList.
	Topology string `toml:"topology,omitempty" yaml:"topology,omitempty"`

	// WideIndices forces 32 bit indices.
	WideIndices bool `toml:"wide_indices,omitempty" yaml:"wide_indices,omitempty"`

	// Size of a box (x, y, z) or a plane (x, y).
	Size []float32 `toml:"size,omitempty" yaml:"size,omitempty,flow"`

	// Center of a box (x, y, z).
	Center []float32 `toml:"center,omitempty" yaml:"center,omitempty,flow"`

	// Tesselation of a box (x, y, z), a plane (x, y)
	// or a torus (ring, tube).
	Tesselation []int32 `toml:"tesselation,omitempty" yaml:"tesselation,omitempty,flow"`

	// Radius of a torus (ring, tube).
	Radius []float32 `toml:"radius,omitempty" yaml:"radius,omitempty,flow"`

	// Back adds a back face to a plane.
	Back *bool `toml:"back,omitempty" yaml:"back,omitempty"`
}

// Validate checks that every shape has a unique name.
func (f *File) Validate() error {
	seen := make(map[string]bool, len(f.Shapes))
	for i := range f.Shapes {
		nm := f.Shapes[i].Name
		if nm == "" {
			return fmt.Errorf("config: shape %d has no name: %w", i, layout.ErrInvalidArgument)
		}
		if seen[nm] {
			return fmt.Errorf("config: shape name %q is used more than once: %w", nm, layout.ErrInvalidArgument)
		}
		seen[nm] = true
	}
	return nil
}

// Example returns a file with one of each kind of shape.
func Example() *File {
	back := true
	return &File{
		LogLevel: "info",
		Shapes: []ShapeConfig{
			{Name: "crate", Kind: "box", Size: []float32{2, 1, 1}, Tesselation: []int32{4, 2, 2}},
			{Name: "floor", Kind: "plane", Layout: "p3n3t2-planar", Size: []float32{10, 10}, Tesselation: []int32{10, 10}, Back: &back},
			{Name: "ring", Kind: "torus", Radius: []float32{1, 0.25}, Tesselation: []int32{64, 16}},
		},
	}
}

// Formats are the supported shape file formats.
type Formats int32 //enums:enum

const (
	TOML Formats = iota
	YAML
)

func (fm Formats) String() string {
	switch fm {
	case TOML:
		return "TOML"
	case YAML:
		return "YAML"
	}
	return fmt.Sprintf("Formats(%d)", int32(fm))
}

// FormatFromPath returns the format for the extension of the given path:
// .toml, .yaml or .yml.
func FormatFromPath(path string) (Formats, error) {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return TOML, fmt.Errorf("config: %q has no file extension: %w", path, layout.ErrInvalidArgument)
	}
	switch strings.ToLower(path[i:]) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("config: %q is not a .toml, .yaml or .yml file: %w", path, layout.ErrInvalidArgument)
}
