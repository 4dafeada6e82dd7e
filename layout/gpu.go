// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "github.com/gogpu/gputypes"

// GPULayouts returns a WebGPU vertex buffer layout for each run of
// the layout, along with the byte offset of each run within the packed
// buffer, for binding the same buffer once per run at that offset.
// Attribute offsets are relative to the start of their run, and
// shader locations are assigned in order starting at firstLocation.
// Attributes with no WebGPU vertex format get
// [gputypes.VertexFormatUndefined].
func (ly *Layout) GPULayouts(firstLocation uint32) ([]gputypes.VertexBufferLayout, []uint64) {
	vbls := make([]gputypes.VertexBufferLayout, len(ly.runs))
	offs := make([]uint64, len(ly.runs))
	loc := firstLocation
	for i, run := range ly.runs {
		vbl := &vbls[i]
		vbl.ArrayStride = uint64(run.Stride)
		vbl.StepMode = gputypes.VertexStepModeVertex
		vbl.Attributes = make([]gputypes.VertexAttribute, len(run.Attributes))
		for j, at := range run.Attributes {
			vbl.Attributes[j] = gputypes.VertexAttribute{
				Format:         at.Type().VertexFormat(at.Count()),
				Offset:         uint64(at.Offset() - run.Start),
				ShaderLocation: loc,
			}
			loc++
		}
		offs[i] = uint64(run.Start)
	}
	return vbls, offs
}
