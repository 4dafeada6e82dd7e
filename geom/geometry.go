// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides the two-phase lifecycle of generated mesh
// geometry: Prepare computes the vertex and index counts and the index
// ranges of named parts, and Generate fills correctly sized vertex and
// index buffers laid out by a [layout.Layout].
//
// The math of each kind of shape is supplied by a [Shape].
package geom

import (
	"fmt"
	"log/slog"
	"slices"

	"cogentcore.org/mesh/base/errors"
	"cogentcore.org/mesh/layout"
	"cogentcore.org/mesh/math32"
	"github.com/gogpu/gputypes"
)

// MaxNarrowVertices is the largest vertex count that uses 16 bit
// indices. The largest index is then 0xFFFE, leaving 0xFFFF free
// as the primitive restart value.
const MaxNarrowVertices = 65535

// Shape computes the counts and fills the buffers
// of one kind of shape.
type Shape interface {

	// PartNames returns the names of the parts of the shape,
	// in the order of their index ranges.
	PartNames() []string

	// N returns the number of vertices and indices for the
	// current shape parameters.
	N() (vertices, indices int)

	// SizeAndParts computes the vertex and index counts from the
	// shape parameters, calling [Geometry.SetPart] for each part
	// and [Geometry.SetCount] once.
	SizeAndParts(g *Geometry) error

	// Fill writes all of the vertices and indices of the shape.
	// It is only called when N matches the prepared counts.
	Fill(vertices *Vertices, indices *Indices)
}

// Part is a named range of the index buffer.
type Part struct {

	// Name of the part.
	Name string

	// Offset is the first index of the part.
	Offset int

	// Count is the number of indices in the part.
	Count int
}

func (pt Part) String() string {
	return fmt.Sprintf("%s: offset = %d, count = %d", pt.Name, pt.Offset, pt.Count)
}

// Geometry is the shape-independent state of generated geometry:
// its layout, topology, parts, counts and buffers.
type Geometry struct {

	// Topology of the primitives formed by the indices.
	Topology Topologies

	// WideIndices forces 32 bit indices for any vertex count.
	WideIndices bool

	// NeedsUpdate means the next Prepare recomputes the counts.
	NeedsUpdate bool

	counts
	layout       *layout.Layout
	shape        Shape
	parts        []Part
	state        States
	vertexBuffer []byte
	indexBuffer  []byte
	bbox         math32.Box3
}

// counts are the values computed by Prepare.
type counts struct {
	vertexCount      int
	indexCount       int
	vertexBufferSize int
	indexBufferSize  int
	indexType        layout.ElementTypes
}

// New returns a new geometry for the given shape with
// the standard [layout.P3N3T2] layout and triangle list topology.
func New(sh Shape) *Geometry {
	return newGeometry(sh, layout.P3N3T2(), TriangleList)
}

// NewWithLayout returns a new geometry for the given shape with
// a copy of the given layout and the given topology.
func NewWithLayout(sh Shape, ly *layout.Layout, top Topologies) *Geometry {
	return newGeometry(sh, ly.Clone(), top)
}

func newGeometry(sh Shape, ly *layout.Layout, top Topologies) *Geometry {
	g := &Geometry{
		layout:      ly,
		Topology:    top,
		NeedsUpdate: true,
		counts:      counts{indexType: layout.Uint16},
		shape:       sh,
		bbox:        math32.B3Empty(),
	}
	g.DefineParts(sh.PartNames()...)
	return g
}

// Clone returns a new geometry for the given shape with a copy
// of the layout and the same settings, which must be prepared anew.
func (g *Geometry) Clone(sh Shape) *Geometry {
	ng := NewWithLayout(sh, g.layout, g.Topology)
	ng.WideIndices = g.WideIndices
	return ng
}

// Shape returns the shape that computes and fills this geometry.
func (g *Geometry) Shape() Shape { return g.shape }

// Layout returns a copy of the vertex buffer layout, sized for the
// last Prepare. The geometry owns its layout; use [Geometry.SetLayout]
// to change it.
func (g *Geometry) Layout() *layout.Layout { return g.layout.Clone() }

// State returns the lifecycle stage.
func (g *Geometry) State() States { return g.state }

// Parts returns a copy of the parts.
func (g *Geometry) Parts() []Part { return slices.Clone(g.parts) }

// VertexCount returns the number of vertices computed by the last Prepare.
func (g *Geometry) VertexCount() int { return g.vertexCount }

// IndexCount returns the number of indices computed by the last Prepare.
func (g *Geometry) IndexCount() int { return g.indexCount }

// VertexBufferSize returns the size of the vertex buffer in bytes.
func (g *Geometry) VertexBufferSize() int { return g.vertexBufferSize }

// IndexBufferSize returns the size of the index buffer in bytes.
func (g *Geometry) IndexBufferSize() int { return g.indexBufferSize }

// IndexType returns the element type of the indices:
// [layout.Uint16] or [layout.Uint32].
func (g *Geometry) IndexType() layout.ElementTypes { return g.indexType }

// IndexFormat returns the WebGPU index format of the indices.
func (g *Geometry) IndexFormat() gputypes.IndexFormat {
	if g.indexType == layout.Uint16 {
		return gputypes.IndexFormatUint16
	}
	return gputypes.IndexFormatUint32
}

// VertexBuffer returns the internally owned vertex buffer
// of the last Generate, or nil if it used a caller buffer.
func (g *Geometry) VertexBuffer() []byte { return g.vertexBuffer }

// IndexBuffer returns the internally owned index buffer
// of the last Generate, or nil if it used a caller buffer.
func (g *Geometry) IndexBuffer() []byte { return g.indexBuffer }

// BBox returns the bounding box of the positions written by the
// last Generate. It is empty if the layout has no position.
func (g *Geometry) BBox() math32.Box3 { return g.bbox }

// SetNeedsUpdate marks the geometry for recomputation by the next Prepare.
func (g *Geometry) SetNeedsUpdate() {
	g.NeedsUpdate = true
	g.state = Dirty
}

// SetLayout sets the layout to a copy of the given one.
func (g *Geometry) SetLayout(ly *layout.Layout) {
	g.layout = ly.Clone()
	g.SetNeedsUpdate()
}

// DefineParts sets the parts to the given names, with
// zero offset and count until set by [Geometry.SetPart].
func (g *Geometry) DefineParts(names ...string) {
	g.parts = make([]Part, len(names))
	for i, nm := range names {
		g.parts[i].Name = nm
	}
}

// SetPart sets the index range of the part at the given index.
func (g *Geometry) SetPart(index, offset, count int) error {
	if index < 0 || index >= len(g.parts) {
		return fmt.Errorf("geom: part index %d out of range [0, %d): %w", index, len(g.parts), layout.ErrInvalidArgument)
	}
	if offset < 0 || count < 0 {
		return fmt.Errorf("geom: part %q: offset %d and count %d must not be negative: %w", g.parts[index].Name, offset, count, layout.ErrInvalidArgument)
	}
	g.parts[index].Offset = offset
	g.parts[index].Count = count
	return nil
}

// SetCount sets the vertex and index counts, sizing the layout for
// the vertices and selecting the index type, and computes the
// sizes of both buffers.
func (g *Geometry) SetCount(vertexCount, indexCount int) error {
	if vertexCount <= 0 || indexCount < 0 {
		return fmt.Errorf("geom: vertex count %d must be positive and index count %d must not be negative: %w", vertexCount, indexCount, layout.ErrInvalidArgument)
	}
	if err := g.layout.SetVertexCount(vertexCount); err != nil {
		return err
	}
	g.indexType = layout.Uint16
	if g.WideIndices || vertexCount > MaxNarrowVertices {
		g.indexType = layout.Uint32
	}
	g.vertexCount = vertexCount
	g.indexCount = indexCount
	g.vertexBufferSize = g.layout.ByteSize()
	g.indexBufferSize = indexCount * g.indexType.Bytes()
	return nil
}

// checkCounts returns an [layout.ErrBufferSizeMismatch] error if the
// given counts or the current layout size differ from the last Prepare.
func (g *Geometry) checkCounts(vertexCount, indexCount int) error {
	if vertexCount != g.vertexCount || indexCount != g.indexCount {
		return fmt.Errorf("geom: shape has %d vertices and %d indices, prepared for %d and %d: %w", vertexCount, indexCount, g.vertexCount, g.indexCount, layout.ErrBufferSizeMismatch)
	}
	if g.layout.ByteSize() != g.vertexBufferSize {
		return fmt.Errorf("geom: layout size %d differs from prepared vertex buffer size %d: %w", g.layout.ByteSize(), g.vertexBufferSize, layout.ErrBufferSizeMismatch)
	}
	return nil
}

// checkParts returns an error for any part outside of the indices.
func (g *Geometry) checkParts() error {
	for _, pt := range g.parts {
		if pt.Offset+pt.Count > g.indexCount {
			return fmt.Errorf("geom: part %q [%d, %d) exceeds index count %d: %w", pt.Name, pt.Offset, pt.Offset+pt.Count, g.indexCount, layout.ErrInvalidArgument)
		}
	}
	return nil
}

// Prepare computes the counts, parts and buffer sizes if
// NeedsUpdate is set or force is true, and otherwise does nothing.
// On error the geometry is left as it was.
func (g *Geometry) Prepare(force bool) error {
	if !g.NeedsUpdate && !force {
		return nil
	}
	saved := g.counts
	savedParts := slices.Clone(g.parts)
	savedVertices := g.layout.VertexCount()
	err := g.shape.SizeAndParts(g)
	if err == nil {
		err = g.checkParts()
	}
	if err != nil {
		g.counts = saved
		g.parts = savedParts
		errors.Log(g.layout.SetVertexCount(savedVertices))
		return err
	}
	g.NeedsUpdate = false
	g.state = Prepared
	slog.Debug("Geometry.Prepare", "vertices", g.vertexCount, "indices", g.indexCount, "indexType", g.indexType, "vertexBytes", g.vertexBufferSize)
	return nil
}

// Generate fills the vertex and index buffers and returns them.
// Non-nil caller buffers must have exactly [Geometry.VertexBufferSize]
// and [Geometry.IndexBufferSize] bytes, and are used directly without
// being retained. Otherwise the internal buffers are used, reallocated
// only when their size has changed. On error no buffer is modified.
func (g *Geometry) Generate(vertex, index []byte) (vb, ib []byte, err error) {
	if vertex != nil && len(vertex) != g.vertexBufferSize {
		return nil, nil, fmt.Errorf("geom: vertex buffer has %d bytes, need %d: %w", len(vertex), g.vertexBufferSize, layout.ErrBufferSizeMismatch)
	}
	if index != nil && len(index) != g.indexBufferSize {
		return nil, nil, fmt.Errorf("geom: index buffer has %d bytes, need %d: %w", len(index), g.indexBufferSize, layout.ErrBufferSizeMismatch)
	}
	if g.vertexCount > 0 {
		if err := g.checkCounts(g.shape.N()); err != nil {
			return nil, nil, err
		}
	}
	vb, ib = vertex, index
	if vb == nil {
		vb = reuse(g.vertexBuffer, g.vertexBufferSize)
	}
	if ib == nil {
		ib = reuse(g.indexBuffer, g.indexBufferSize)
	}

	bbox := math32.B3Empty()
	if g.vertexCount > 0 {
		vw := &Vertices{Layout: g.layout, Data: vb, Count: g.vertexCount}
		g.shape.Fill(vw, &Indices{Type: g.indexType, Data: ib, Count: g.indexCount})
		bbox = positionBounds(vw)
	}
	g.vertexBuffer = owned(vertex, vb)
	g.indexBuffer = owned(index, ib)
	g.bbox = bbox
	g.state = Generated
	slog.Debug("Geometry.Generate", "vertexBytes", len(vb), "indexBytes", len(ib))
	return vb, ib, nil
}

// reuse returns buf cleared if it has exactly size bytes,
// and otherwise a new buffer of size bytes.
func reuse(buf []byte, size int) []byte {
	if buf != nil && len(buf) == size {
		clear(buf)
		return buf
	}
	return make([]byte, size)
}

// owned returns the internal buffer buf, or nil if the caller gave one.
func owned(caller, buf []byte) []byte {
	if caller != nil {
		return nil
	}
	return buf
}

// positionBounds returns the bounding box of the positions,
// which is empty if there are none.
func positionBounds(vw *Vertices) math32.Box3 {
	bb := math32.B3Empty()
	at := vw.Attribute(layout.Position)
	if at == nil {
		return bb
	}
	var p math32.Vector3
	for vi := range vw.Count {
		vals := vw.Get(at, vi)
		for d := range min(len(vals), 3) {
			p.SetDim(math32.Dims(d), vals[d])
		}
		bb.ExpandByPoint(p)
	}
	return bb
}
