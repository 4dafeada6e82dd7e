// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementTypes(t *testing.T) {
	assert.Equal(t, 1, Norm8.Bytes())
	assert.Equal(t, 2, Float16.Bytes())
	assert.Equal(t, 4, Float32.Bytes())
	assert.Equal(t, 0, ElementTypesN.Bytes())

	_, err := ElementTypes(99).Size()
	assert.ErrorIs(t, err, ErrUnknownElementType)
	sz, err := Uint16.Size()
	require.NoError(t, err)
	assert.Equal(t, 2, sz)

	assert.Equal(t, "Unorm16", Unorm16.String())
	assert.Equal(t, "ElementTypes(42)", ElementTypes(42).String())

	var tp ElementTypes
	require.NoError(t, tp.SetString("float16"))
	assert.Equal(t, Float16, tp)
	assert.ErrorIs(t, tp.SetString("float64"), ErrUnknownElementType)

	txt, err := Int16.MarshalText()
	require.NoError(t, err)
	require.NoError(t, tp.UnmarshalText(txt))
	assert.Equal(t, Int16, tp)

	assert.True(t, Unorm8.IsNormalized())
	assert.False(t, Uint8.IsNormalized())
}

func TestVertexFormat(t *testing.T) {
	assert.Equal(t, gputypes.VertexFormatFloat32x3, Float32.VertexFormat(3))
	assert.Equal(t, gputypes.VertexFormatUnorm8x4, Unorm8.VertexFormat(4))
	assert.Equal(t, gputypes.VertexFormatSint32, Int32.VertexFormat(1))
	assert.Equal(t, gputypes.VertexFormatUndefined, Unorm8.VertexFormat(3))
	assert.Equal(t, gputypes.VertexFormatUndefined, Float32.VertexFormat(5))

	// every defined format has the size of the attribute
	for tp := Int8; tp < ElementTypesN; tp++ {
		for n := 1; n <= 4; n++ {
			vf := tp.VertexFormat(n)
			if vf == gputypes.VertexFormatUndefined {
				continue
			}
			assert.Equal(t, uint64(n*tp.Bytes()), vf.Size(), "%v x %d", tp, n)
		}
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		tp   ElementTypes
		in   float32
		want float32
	}{
		{Int8, -3.4, -3},
		{Int8, 300, 127},
		{Uint8, -5, 0},
		{Uint8, 254.6, 255},
		{Norm8, 1, 1},
		{Norm8, -2, -1},
		{Unorm8, 2, 1},
		{Unorm8, 0, 0},
		{Int16, -1234, -1234},
		{Uint16, 70000, 65535},
		{Norm16, -1, -1},
		{Unorm16, 1, 1},
		{Int32, -123456, -123456},
		{Uint32, 123456, 123456},
		{Float16, 1.5, 1.5},
		{Float16, -0.25, -0.25},
		{Float32, 3.14159, 3.14159},
	}
	for _, tt := range tests {
		b := make([]byte, 4)
		tt.tp.Put(b, tt.in)
		assert.Equal(t, tt.want, tt.tp.Value(b), "%v(%v)", tt.tp, tt.in)
	}

	b := make([]byte, 4)
	Norm8.Put(b, 1)
	assert.Equal(t, byte(127), b[0])
	Norm8.Put(b, -1)
	assert.Equal(t, byte(0x81), b[0])
	Float32.Put(b, 1)
	assert.Equal(t, []byte{0, 0, 0x80, 0x3f}, b)
	Uint16.Put(b, 0x0102)
	assert.Equal(t, []byte{2, 1}, b[:2])

	assert.InDelta(t, 0.5, Unorm8.Value([]byte{128}), 0.01)
	assert.Equal(t, float32(0), ElementTypesN.Value(b))
}

func TestGPULayouts(t *testing.T) {
	ly := P3N3T2()
	require.NoError(t, ly.SetVertexCount(4))
	vbls, offs := ly.GPULayouts(0)
	require.Len(t, vbls, 1)
	assert.Equal(t, []uint64{0}, offs)
	assert.Equal(t, uint64(32), vbls[0].ArrayStride)
	assert.Equal(t, gputypes.VertexStepModeVertex, vbls[0].StepMode)
	assert.Equal(t, []gputypes.VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
		{Format: gputypes.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
		{Format: gputypes.VertexFormatFloat32x2, Offset: 24, ShaderLocation: 2},
	}, vbls[0].Attributes)

	ly = P3N3T2Planar()
	require.NoError(t, ly.SetVertexCount(4))
	vbls, offs = ly.GPULayouts(1)
	require.Len(t, vbls, 3)
	assert.Equal(t, []uint64{0, 48, 96}, offs)
	assert.Equal(t, uint64(8), vbls[2].ArrayStride)
	assert.Equal(t, uint64(0), vbls[2].Attributes[0].Offset)
	assert.Equal(t, uint32(3), vbls[2].Attributes[0].ShaderLocation)
}
