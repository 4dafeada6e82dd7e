// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"sort"
	"strings"

	"cogentcore.org/mesh/base/errors"
)

// presets are the attribute lists of the named preset layouts.
// They are only ever read: every preset layout is built fresh from them.
var presets = map[string][]AttributeSpec{
	"p2t2": {
		{Name: Position, Type: Float32, Count: 2},
		{Name: UV, Type: Float32, Count: 2, Interleaved: true},
	},
	"p3n3t2": {
		{Name: Position, Type: Float32, Count: 3},
		{Name: Normal, Type: Float32, Count: 3, Interleaved: true},
		{Name: UV, Type: Float32, Count: 2, Interleaved: true},
	},
	"p3n3t2-planar": {
		{Name: Position, Type: Float32, Count: 3},
		{Name: Normal, Type: Float32, Count: 3},
		{Name: UV, Type: Float32, Count: 2},
	},
}

// Preset returns a new layout with the attributes of the named preset:
// "p2t2", "p3n3t2" or "p3n3t2-planar". An unknown name is an
// [ErrInvalidArgument] error.
func Preset(name string) (*Layout, error) {
	specs, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("layout: unknown preset %q (have %s): %w", name, strings.Join(PresetNames(), ", "), ErrInvalidArgument)
	}
	ly := NewLayout()
	if err := ly.AddAttributes(specs...); err != nil {
		return nil, err
	}
	return ly, nil
}

// PresetNames returns the sorted names of all presets.
func PresetNames() []string {
	nms := make([]string, 0, len(presets))
	for nm := range presets {
		nms = append(nms, nm)
	}
	sort.Strings(nms)
	return nms
}

// P2T2 returns a new layout with an interleaved 2D position
// and texture coordinate.
func P2T2() *Layout {
	return errors.Must1(Preset("p2t2"))
}

// P3N3T2 returns a new layout with an interleaved 3D position,
// normal and texture coordinate. It is the standard layout of
// the generated shapes.
func P3N3T2() *Layout {
	return errors.Must1(Preset("p3n3t2"))
}

// P3N3T2Planar returns a new layout with a 3D position, normal and
// texture coordinate, each in its own block.
func P3N3T2Planar() *Layout {
	return errors.Must1(Preset("p3n3t2-planar"))
}
