// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout computes packed binary memory layouts for vertex data
// made of named numeric attributes.
//
// Attributes are packed in the order they are added. A run is one
// attribute that is not interleaved followed by all of the interleaved
// attributes directly after it. Within a run the attributes of each
// vertex are stored together (array of structures), sharing a single
// stride. Each run holds all vertices in its own contiguous block
// before the next run starts (structure of arrays).
package layout

import (
	"fmt"
	"slices"
	"strings"

	"cogentcore.org/mesh/base/ordmap"
)

// Run is one stride group of a [Layout]: a contiguous block of
// vertex data in which each vertex holds one value of every
// attribute in the run.
type Run struct {

	// Start is the byte offset of the block.
	Start int

	// Stride is the number of bytes per vertex in the block.
	Stride int

	// Attributes are the attributes in the run, in layout order.
	Attributes []*Attribute
}

// Layout is an ordered set of vertex attributes, with the byte
// offsets and strides of each computed for a given number of vertices.
// All derived values are recomputed on every change, so they are
// always valid.
type Layout struct {
	attrs       ordmap.Map[string, *Attribute]
	vertexCount int
	byteSize    int
	runs        []Run
}

// NewLayout returns a new empty layout.
func NewLayout() *Layout {
	return &Layout{}
}

// VertexCount returns the number of vertices the layout is sized for.
func (ly *Layout) VertexCount() int {
	return ly.vertexCount
}

// SetVertexCount sets the number of vertices and recomputes the layout.
// It returns an [ErrInvalidArgument] error for a negative count.
func (ly *Layout) SetVertexCount(n int) error {
	if n < 0 {
		return fmt.Errorf("layout: vertex count %d is negative: %w", n, ErrInvalidArgument)
	}
	ly.vertexCount = n
	ly.update()
	return nil
}

// ByteSize returns the total size of the buffer in bytes.
func (ly *Layout) ByteSize() int {
	return ly.byteSize
}

// Len returns the number of attributes.
func (ly *Layout) Len() int {
	return ly.attrs.Len()
}

// Attributes returns the attributes in packing order.
func (ly *Layout) Attributes() []*Attribute {
	return ly.attrs.Values()
}

// AttributeByName returns the attribute with the given name,
// or nil if there is none.
func (ly *Layout) AttributeByName(name string) *Attribute {
	return ly.attrs.ValueByKey(name)
}

// Runs returns the stride groups of the layout in packing order.
func (ly *Layout) Runs() []Run {
	return slices.Clone(ly.runs)
}

// AddAttribute adds an attribute with the given name, element type and
// number of elements to the end of the layout and recomputes it.
// If interleaved is true, the attribute is packed together with the
// attribute(s) before it. A name that is already in the layout is an
// [ErrDuplicateAttribute] error, and the layout is left unchanged.
func (ly *Layout) AddAttribute(name string, tp ElementTypes, count int, interleaved bool) error {
	return ly.AddAttributes(AttributeSpec{Name: name, Type: tp, Count: count, Interleaved: interleaved})
}

// AddAttributes adds all of the given attributes and then recomputes
// the layout once. All specs are checked before any is added, so on
// error the layout is left unchanged.
func (ly *Layout) AddAttributes(specs ...AttributeSpec) error {
	seen := make(map[string]bool, len(specs))
	for i := range specs {
		as := &specs[i]
		if err := as.Validate(); err != nil {
			return err
		}
		if seen[as.Name] || ly.attrs.Has(as.Name) {
			return fmt.Errorf("layout: attribute %q: %w", as.Name, ErrDuplicateAttribute)
		}
		seen[as.Name] = true
	}
	for _, as := range specs {
		ly.attrs.Add(as.Name, &Attribute{spec: as})
	}
	ly.update()
	return nil
}

// Clear removes all attributes, keeping the vertex count.
func (ly *Layout) Clear() {
	ly.attrs.Reset()
	ly.update()
}

// Specs returns the declarations of all attributes in order.
func (ly *Layout) Specs() []AttributeSpec {
	specs := make([]AttributeSpec, ly.attrs.Len())
	for i, kv := range ly.attrs.Order {
		specs[i] = kv.Value.spec
	}
	return specs
}

// Clone returns a deep copy of the layout that shares
// no state with it.
func (ly *Layout) Clone() *Layout {
	nl := &Layout{vertexCount: ly.vertexCount}
	for _, as := range ly.Specs() {
		nl.attrs.Add(as.Name, &Attribute{spec: as})
	}
	nl.update()
	return nl
}

// roundUp returns the smallest multiple of align that is >= v.
func roundUp(v, align int) int {
	if align <= 1 {
		return v
	}
	return (v + align - 1) / align * align
}

// update recomputes all offsets, strides, runs and the byte size
// from the attribute list and vertex count.
func (ly *Layout) update() {
	attrs := ly.attrs.Values()
	ly.runs = ly.runs[:0]
	cursor := 0
	for i := 0; i < len(attrs); {
		j := i + 1
		for j < len(attrs) && attrs[j].spec.Interleaved {
			j++
		}
		run := attrs[i:j]
		start := roundUp(cursor, run[0].ElementSize())
		stride := 0
		align := 1
		for _, at := range run {
			es := at.ElementSize()
			at.offset = roundUp(start+stride, es)
			stride = at.offset - start + at.ByteSize()
			align = max(align, es)
		}
		stride = roundUp(stride, align)
		for _, at := range run {
			at.stride = stride
		}
		ly.runs = append(ly.runs, Run{Start: start, Stride: stride, Attributes: run})
		cursor = start + stride*ly.vertexCount
		i = j
	}
	ly.byteSize = cursor
}

// String returns a description of the layout and all of its attributes.
func (ly *Layout) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Layout: vertex count = %d, size (bytes) = %d", ly.vertexCount, ly.byteSize)
	for _, at := range ly.Attributes() {
		b.WriteString("\n  ")
		b.WriteString(at.String())
	}
	return b.String()
}
