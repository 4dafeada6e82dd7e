// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"encoding/binary"
	"math"

	"github.com/x448/float16"
)

var le = binary.LittleEndian

// toInt rounds v and clamps it to [lo, hi].
func toInt(v float32, lo, hi float64) float64 {
	return max(lo, min(hi, math.Round(float64(v))))
}

// toNorm scales v, clamped to [lo, 1], by scale and rounds it.
func toNorm(v float32, lo, scale float64) float64 {
	return math.Round(max(lo, min(1, float64(v))) * scale)
}

// Put writes v as one little-endian element of this type into b,
// which must have at least [ElementTypes.Bytes] bytes. Integer types
// round and clamp to their range; normalized types clamp v to
// [-1, 1] (Norm) or [0, 1] (Unorm) and scale it to the full range.
// Put does nothing for an unknown type.
func (tp ElementTypes) Put(b []byte, v float32) {
	switch tp {
	case Int8:
		b[0] = byte(int8(toInt(v, math.MinInt8, math.MaxInt8)))
	case Uint8:
		b[0] = uint8(toInt(v, 0, math.MaxUint8))
	case Norm8:
		b[0] = byte(int8(toNorm(v, -1, math.MaxInt8)))
	case Unorm8:
		b[0] = uint8(toNorm(v, 0, math.MaxUint8))
	case Int16:
		le.PutUint16(b, uint16(int16(toInt(v, math.MinInt16, math.MaxInt16))))
	case Uint16:
		le.PutUint16(b, uint16(toInt(v, 0, math.MaxUint16)))
	case Norm16:
		le.PutUint16(b, uint16(int16(toNorm(v, -1, math.MaxInt16))))
	case Unorm16:
		le.PutUint16(b, uint16(toNorm(v, 0, math.MaxUint16)))
	case Int32:
		le.PutUint32(b, uint32(int32(toInt(v, math.MinInt32, math.MaxInt32))))
	case Uint32:
		le.PutUint32(b, uint32(toInt(v, 0, math.MaxUint32)))
	case Float16:
		le.PutUint16(b, float16.Fromfloat32(v).Bits())
	case Float32:
		le.PutUint32(b, math.Float32bits(v))
	}
}

// Value reads one little-endian element of this type from b,
// converting normalized types back to [-1, 1] or [0, 1].
// It returns 0 for an unknown type.
func (tp ElementTypes) Value(b []byte) float32 {
	switch tp {
	case Int8:
		return float32(int8(b[0]))
	case Uint8:
		return float32(b[0])
	case Norm8:
		return max(-1, float32(int8(b[0]))/math.MaxInt8)
	case Unorm8:
		return float32(b[0]) / math.MaxUint8
	case Int16:
		return float32(int16(le.Uint16(b)))
	case Uint16:
		return float32(le.Uint16(b))
	case Norm16:
		return max(-1, float32(int16(le.Uint16(b)))/math.MaxInt16)
	case Unorm16:
		return float32(le.Uint16(b)) / math.MaxUint16
	case Int32:
		return float32(int32(le.Uint32(b)))
	case Uint32:
		return float32(le.Uint32(b))
	case Float16:
		return float16.Frombits(le.Uint16(b)).Float32()
	case Float32:
		return math.Float32frombits(le.Uint32(b))
	}
	return 0
}
