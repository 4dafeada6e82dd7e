// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"strings"

	"cogentcore.org/mesh/layout"
	"github.com/gogpu/gputypes"
)

// Topologies are the ways in which indices are grouped into primitives.
type Topologies int32 //enums:enum

const (
	PointList Topologies = iota
	LineList
	LineStrip
	TriangleList
	TriangleStrip

	// TopologiesN is the number of topologies.
	TopologiesN
)

var topologyNames = [TopologiesN]string{
	PointList:     "PointList",
	LineList:      "LineList",
	LineStrip:     "LineStrip",
	TriangleList:  "TriangleList",
	TriangleStrip: "TriangleStrip",
}

var topologyGPU = [TopologiesN]gputypes.PrimitiveTopology{
	PointList:     gputypes.PrimitiveTopologyPointList,
	LineList:      gputypes.PrimitiveTopologyLineList,
	LineStrip:     gputypes.PrimitiveTopologyLineStrip,
	TriangleList:  gputypes.PrimitiveTopologyTriangleList,
	TriangleStrip: gputypes.PrimitiveTopologyTriangleStrip,
}

// String returns the name of the topology.
func (tp Topologies) String() string {
	if tp < 0 || tp >= TopologiesN {
		return fmt.Sprintf("Topologies(%d)", int32(tp))
	}
	return topologyNames[tp]
}

// SetString sets the topology from its case insensitive name.
func (tp *Topologies) SetString(s string) error {
	for i, nm := range topologyNames {
		if strings.EqualFold(nm, s) {
			*tp = Topologies(i)
			return nil
		}
	}
	return fmt.Errorf("geom: %q is not a valid topology: %w", s, layout.ErrInvalidArgument)
}

// MarshalText implements [encoding.TextMarshaler].
func (tp Topologies) MarshalText() ([]byte, error) {
	return []byte(tp.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (tp *Topologies) UnmarshalText(text []byte) error {
	return tp.SetString(string(text))
}

// GPU returns the WebGPU primitive topology.
func (tp Topologies) GPU() gputypes.PrimitiveTopology {
	if tp < 0 || tp >= TopologiesN {
		return gputypes.PrimitiveTopologyTriangleList
	}
	return topologyGPU[tp]
}

// States are the stages of the [Geometry] lifecycle.
type States int32 //enums:enum

const (
	// Dirty means the counts and parts must be recomputed by Prepare.
	Dirty States = iota

	// Prepared means the counts, parts and buffer sizes are valid.
	Prepared

	// Generated means the buffers are filled and consistent
	// with the last Prepare.
	Generated
)

func (st States) String() string {
	switch st {
	case Dirty:
		return "Dirty"
	case Prepared:
		return "Prepared"
	case Generated:
		return "Generated"
	}
	return fmt.Sprintf("States(%d)", int32(st))
}
