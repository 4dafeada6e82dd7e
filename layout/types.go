// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
)

// ElementTypes are the fixed-size numeric kinds that a single element
// of a vertex attribute can have. Norm types are signed normalized
// integers mapping to [-1, 1], and Unorm types are unsigned normalized
// integers mapping to [0, 1].
type ElementTypes int32 //enums:enum

const (
	Int8 ElementTypes = iota
	Uint8
	Norm8
	Unorm8
	Int16
	Uint16
	Norm16
	Unorm16
	Int32
	Uint32
	Float16
	Float32

	// ElementTypesN is the number of element types.
	ElementTypesN
)

// elementSizes gives the size of each element type in bytes.
var elementSizes = [ElementTypesN]int{
	Int8:    1,
	Uint8:   1,
	Norm8:   1,
	Unorm8:  1,
	Int16:   2,
	Uint16:  2,
	Norm16:  2,
	Unorm16: 2,
	Int32:   4,
	Uint32:  4,
	Float16: 2,
	Float32: 4,
}

var elementTypeNames = [ElementTypesN]string{
	Int8:    "Int8",
	Uint8:   "Uint8",
	Norm8:   "Norm8",
	Unorm8:  "Unorm8",
	Int16:   "Int16",
	Uint16:  "Uint16",
	Norm16:  "Norm16",
	Unorm16: "Unorm16",
	Int32:   "Int32",
	Uint32:  "Uint32",
	Float16: "Float16",
	Float32: "Float32",
}

// IsValid returns whether the type is in the element size table.
func (tp ElementTypes) IsValid() bool {
	return tp >= 0 && tp < ElementTypesN
}

// Bytes returns the number of bytes for this type, or 0 for an unknown type.
func (tp ElementTypes) Bytes() int {
	if !tp.IsValid() {
		return 0
	}
	return elementSizes[tp]
}

// Size returns the number of bytes for this type,
// or an [ErrUnknownElementType] error.
func (tp ElementTypes) Size() (int, error) {
	if !tp.IsValid() {
		return 0, fmt.Errorf("layout: element type %d: %w", int32(tp), ErrUnknownElementType)
	}
	return elementSizes[tp], nil
}

// String returns the name of the type.
func (tp ElementTypes) String() string {
	if !tp.IsValid() {
		return fmt.Sprintf("ElementTypes(%d)", int32(tp))
	}
	return elementTypeNames[tp]
}

// SetString sets the type from its case insensitive name.
func (tp *ElementTypes) SetString(s string) error {
	for i, nm := range elementTypeNames {
		if strings.EqualFold(nm, s) {
			*tp = ElementTypes(i)
			return nil
		}
	}
	return fmt.Errorf("layout: %q is not a valid element type: %w", s, ErrUnknownElementType)
}

// MarshalText implements [encoding.TextMarshaler].
func (tp ElementTypes) MarshalText() ([]byte, error) {
	return []byte(tp.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (tp *ElementTypes) UnmarshalText(text []byte) error {
	return tp.SetString(string(text))
}

// IsNormalized returns whether the type is a normalized integer type.
func (tp ElementTypes) IsNormalized() bool {
	switch tp {
	case Norm8, Unorm8, Norm16, Unorm16:
		return true
	}
	return false
}

// vertexFormats maps each element type to the WebGPU vertex formats
// for 1, 2, 3 and 4 elements, with Undefined where there is none.
var vertexFormats = [ElementTypesN][4]gputypes.VertexFormat{
	Int8:    {0, gputypes.VertexFormatSint8x2, 0, gputypes.VertexFormatSint8x4},
	Uint8:   {0, gputypes.VertexFormatUint8x2, 0, gputypes.VertexFormatUint8x4},
	Norm8:   {0, gputypes.VertexFormatSnorm8x2, 0, gputypes.VertexFormatSnorm8x4},
	Unorm8:  {0, gputypes.VertexFormatUnorm8x2, 0, gputypes.VertexFormatUnorm8x4},
	Int16:   {0, gputypes.VertexFormatSint16x2, 0, gputypes.VertexFormatSint16x4},
	Uint16:  {0, gputypes.VertexFormatUint16x2, 0, gputypes.VertexFormatUint16x4},
	Norm16:  {0, gputypes.VertexFormatSnorm16x2, 0, gputypes.VertexFormatSnorm16x4},
	Unorm16: {0, gputypes.VertexFormatUnorm16x2, 0, gputypes.VertexFormatUnorm16x4},
	Int32:   {gputypes.VertexFormatSint32, gputypes.VertexFormatSint32x2, gputypes.VertexFormatSint32x3, gputypes.VertexFormatSint32x4},
	Uint32:  {gputypes.VertexFormatUint32, gputypes.VertexFormatUint32x2, gputypes.VertexFormatUint32x3, gputypes.VertexFormatUint32x4},
	Float16: {0, gputypes.VertexFormatFloat16x2, 0, gputypes.VertexFormatFloat16x4},
	Float32: {gputypes.VertexFormatFloat32, gputypes.VertexFormatFloat32x2, gputypes.VertexFormatFloat32x3, gputypes.VertexFormatFloat32x4},
}

// VertexFormat returns the WebGPU vertex format for count elements
// of this type, or [gputypes.VertexFormatUndefined] if WebGPU has
// no such format.
func (tp ElementTypes) VertexFormat(count int) gputypes.VertexFormat {
	if !tp.IsValid() || count < 1 || count > 4 {
		return gputypes.VertexFormatUndefined
	}
	return vertexFormats[tp][count-1]
}
