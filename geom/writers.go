// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"encoding/binary"
	"fmt"
	"math"

	"cogentcore.org/mesh/layout"
	"cogentcore.org/mesh/math32"
)

// Vertices writes vertex values into a packed vertex buffer
// at the offsets and strides of its layout.
type Vertices struct {

	// Layout gives the offset and stride of each attribute.
	Layout *layout.Layout

	// Data is the vertex buffer, of Layout.ByteSize() bytes.
	Data []byte

	// Count is the number of vertices.
	Count int
}

// Attribute returns the attribute with the given name,
// or nil if the layout does not have it.
func (vw *Vertices) Attribute(name string) *layout.Attribute {
	return vw.Layout.AttributeByName(name)
}

// Set writes up to at.Count() values for the given vertex,
// converting each to the element type of the attribute.
// It does nothing for a nil attribute, so shapes can write
// every channel they have without checking the layout.
func (vw *Vertices) Set(at *layout.Attribute, vertex int, values ...float32) {
	if at == nil {
		return
	}
	tp := at.Type()
	es := at.ElementSize()
	off := at.VertexOffset(vertex)
	n := min(len(values), at.Count())
	for i := range n {
		tp.Put(vw.Data[off+i*es:], values[i])
	}
}

// SetVector3 writes the components of v for the given vertex.
func (vw *Vertices) SetVector3(at *layout.Attribute, vertex int, v math32.Vector3) {
	vw.Set(at, vertex, v.X, v.Y, v.Z)
}

// SetVector2 writes the components of v for the given vertex.
func (vw *Vertices) SetVector2(at *layout.Attribute, vertex int, v math32.Vector2) {
	vw.Set(at, vertex, v.X, v.Y)
}

// Get returns all of the values of the attribute for the given vertex.
func (vw *Vertices) Get(at *layout.Attribute, vertex int) []float32 {
	if at == nil {
		return nil
	}
	tp := at.Type()
	es := at.ElementSize()
	off := at.VertexOffset(vertex)
	vals := make([]float32, at.Count())
	for i := range vals {
		vals[i] = tp.Value(vw.Data[off+i*es:])
	}
	return vals
}

// Indices writes little-endian vertex indices into an index buffer.
type Indices struct {

	// Type is [layout.Uint16] or [layout.Uint32].
	Type layout.ElementTypes

	// Data is the index buffer, of Count indices.
	Data []byte

	// Count is the number of indices.
	Count int
}

// Set sets index i to vertex v. It panics if v does not fit
// in 16 bit indices.
func (iw *Indices) Set(i int, v uint32) {
	if iw.Type == layout.Uint16 {
		if v > math.MaxUint16 {
			panic(fmt.Sprintf("geom: vertex %d out of range for %v indices", v, iw.Type))
		}
		binary.LittleEndian.PutUint16(iw.Data[2*i:], uint16(v))
		return
	}
	binary.LittleEndian.PutUint32(iw.Data[4*i:], v)
}

// SetTriangle sets indices i, i+1 and i+2 to the vertices of one
// triangle and returns the position after it.
func (iw *Indices) SetTriangle(i int, a, b, c uint32) int {
	iw.Set(i, a)
	iw.Set(i+1, b)
	iw.Set(i+2, c)
	return i + 3
}

// Get returns the vertex at index i.
func (iw *Indices) Get(i int) uint32 {
	if iw.Type == layout.Uint16 {
		return uint32(binary.LittleEndian.Uint16(iw.Data[2*i:]))
	}
	return binary.LittleEndian.Uint32(iw.Data[4*i:])
}
