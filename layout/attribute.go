// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "fmt"

// Standard attribute names for common vertex channels.
const (
	Position  = "position"
	Normal    = "normal"
	UV        = "uv"
	UV2       = "uv2"
	Color     = "color"
	Tangent   = "tangent"
	Bitangent = "bitangent"
)

// AttributeSpec declares an attribute to be added to a [Layout].
type AttributeSpec struct {

	// Name is the unique key of the attribute within its layout.
	Name string

	// Type is the type of each element.
	Type ElementTypes

	// Count is the number of elements per vertex, e.g., 3 for a 3D position.
	Count int

	// Interleaved packs this attribute in the same stride group as the
	// attribute before it. The first attribute of a layout always
	// starts a new group.
	Interleaved bool
}

// Validate returns an error if the spec can not be added to a layout.
func (as *AttributeSpec) Validate() error {
	if as.Name == "" {
		return fmt.Errorf("layout: attribute name is empty: %w", ErrInvalidArgument)
	}
	if !as.Type.IsValid() {
		return fmt.Errorf("layout: attribute %q: element type %d: %w", as.Name, int32(as.Type), ErrUnknownElementType)
	}
	if as.Count <= 0 {
		return fmt.Errorf("layout: attribute %q: element count %d must be positive: %w", as.Name, as.Count, ErrInvalidArgument)
	}
	return nil
}

// Attribute is one named numeric channel of a [Layout]. Its offset
// and stride are computed by the layout whenever the layout changes,
// so they are always consistent with the layout's attribute list
// and vertex count.
type Attribute struct {
	spec   AttributeSpec
	offset int
	stride int
}

// Name returns the name of the attribute.
func (at *Attribute) Name() string { return at.spec.Name }

// Type returns the element type.
func (at *Attribute) Type() ElementTypes { return at.spec.Type }

// Count returns the number of elements per vertex.
func (at *Attribute) Count() int { return at.spec.Count }

// Interleaved returns whether the attribute shares the stride group
// of the attribute before it.
func (at *Attribute) Interleaved() bool { return at.spec.Interleaved }

// Spec returns the declaration of the attribute.
func (at *Attribute) Spec() AttributeSpec { return at.spec }

// ElementSize returns the size of one element in bytes,
// which is also the alignment of the attribute.
func (at *Attribute) ElementSize() int { return at.spec.Type.Bytes() }

// ByteSize returns the size of the attribute for one vertex in bytes.
func (at *Attribute) ByteSize() int { return at.spec.Count * at.ElementSize() }

// Offset returns the byte offset of the first element of vertex 0.
func (at *Attribute) Offset() int { return at.offset }

// Stride returns the number of bytes between the values
// of successive vertices.
func (at *Attribute) Stride() int { return at.stride }

// VertexOffset returns the byte offset of the first element
// of the given vertex.
func (at *Attribute) VertexOffset(vertex int) int {
	return at.offset + vertex*at.stride
}

// String returns a one line description of the attribute.
func (at *Attribute) String() string {
	il := ""
	if at.spec.Interleaved {
		il = "interleaved "
	}
	return fmt.Sprintf("%sattribute %q, offset = %d, stride = %d, %d x %s", il, at.spec.Name, at.offset, at.stride, at.spec.Count, at.spec.Type)
}
