// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"slices"
	"testing"

	"cogentcore.org/mesh/layout"
	"cogentcore.org/mesh/math32"
	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strip is a row of unit quads along X, with the first quad
// in part "first" and the rest in part "rest".
type strip struct {
	quads    int
	prepares int
	fills    int

	// badPart sets a part past the end of the indices.
	badPart bool
}

func (st *strip) PartNames() []string { return []string{"first", "rest"} }

func (st *strip) N() (nv, ni int) {
	return 2 * (st.quads + 1), 6 * st.quads
}

func (st *strip) SizeAndParts(g *Geometry) error {
	st.prepares++
	nv, ni := st.N()
	if err := g.SetCount(nv, ni); err != nil {
		return err
	}
	if err := g.SetPart(0, 0, min(6, ni)); err != nil {
		return err
	}
	if st.badPart {
		return g.SetPart(1, 6, ni)
	}
	return g.SetPart(1, min(6, ni), max(0, ni-6))
}

func (st *strip) Fill(vw *Vertices, iw *Indices) {
	st.fills++
	pos := vw.Attribute(layout.Position)
	norm := vw.Attribute(layout.Normal)
	uv := vw.Attribute(layout.UV)
	for i := 0; i <= st.quads; i++ {
		x := float32(i)
		for j := range 2 {
			vi := 2*i + j
			vw.SetVector3(pos, vi, math32.Vec3(x, float32(j), 0))
			vw.SetVector3(norm, vi, math32.Vec3(0, 0, 1))
			vw.SetVector2(uv, vi, math32.Vec2(x/float32(st.quads), float32(j)))
		}
	}
	ii := 0
	for i := range st.quads {
		b := uint32(2 * i)
		ii = iw.SetTriangle(ii, b, b+2, b+1)
		ii = iw.SetTriangle(ii, b+1, b+2, b+3)
	}
}

func TestNew(t *testing.T) {
	st := &strip{quads: 2}
	g := New(st)
	assert.Equal(t, Dirty, g.State())
	assert.True(t, g.NeedsUpdate)
	assert.Equal(t, TriangleList, g.Topology)
	assert.Equal(t, []Part{{Name: "first"}, {Name: "rest"}}, g.Parts())
	assert.Equal(t, 0, g.VertexBufferSize())

	// each geometry has its own layout
	ly := layout.P3N3T2()
	g2 := NewWithLayout(&strip{quads: 1}, ly, TriangleStrip)
	require.NoError(t, ly.AddAttribute(layout.Color, layout.Unorm8, 4, true))
	assert.Equal(t, 3, g2.Layout().Len())
	require.NoError(t, g2.Layout().AddAttribute(layout.Color, layout.Unorm8, 4, true))
	assert.Equal(t, 3, g2.Layout().Len())
	assert.Equal(t, 3, g.Layout().Len())
}

func TestPrepare(t *testing.T) {
	st := &strip{quads: 3}
	g := New(st)
	require.NoError(t, g.Prepare(false))
	assert.Equal(t, Prepared, g.State())
	assert.False(t, g.NeedsUpdate)
	assert.Equal(t, 8, g.VertexCount())
	assert.Equal(t, 18, g.IndexCount())
	assert.Equal(t, 8*32, g.VertexBufferSize())
	assert.Equal(t, 18*2, g.IndexBufferSize())
	assert.Equal(t, layout.Uint16, g.IndexType())
	assert.Equal(t, gputypes.IndexFormatUint16, g.IndexFormat())
	assert.Equal(t, []Part{{"first", 0, 6}, {"rest", 6, 12}}, g.Parts())

	// skipped unless needed or forced
	require.NoError(t, g.Prepare(false))
	assert.Equal(t, 1, st.prepares)
	require.NoError(t, g.Prepare(true))
	assert.Equal(t, 2, st.prepares)
	st.quads = 4
	g.SetNeedsUpdate()
	assert.Equal(t, Dirty, g.State())
	require.NoError(t, g.Prepare(false))
	assert.Equal(t, 3, st.prepares)
	assert.Equal(t, 10, g.VertexCount())
}

func TestPrepareError(t *testing.T) {
	st := &strip{quads: 2}
	g := New(st)
	require.NoError(t, g.Prepare(false))
	parts := g.Parts()

	st.quads = 5
	st.badPart = true
	err := g.Prepare(true)
	assert.ErrorIs(t, err, layout.ErrInvalidArgument)
	assert.Equal(t, parts, g.Parts())
	assert.Equal(t, 6, g.VertexCount())
	assert.Equal(t, 12, g.IndexCount())
	assert.Equal(t, 6, g.Layout().VertexCount())
	assert.Equal(t, 6*32, g.VertexBufferSize())

	st.badPart = false
	st.quads = -1
	assert.ErrorIs(t, g.Prepare(true), layout.ErrInvalidArgument)
	assert.Equal(t, 6, g.VertexCount())
}

func TestIndexWidth(t *testing.T) {
	g := New(&strip{})
	require.NoError(t, g.SetCount(MaxNarrowVertices, 3))
	assert.Equal(t, layout.Uint16, g.IndexType())
	assert.Equal(t, 6, g.IndexBufferSize())

	require.NoError(t, g.SetCount(MaxNarrowVertices+1, 3))
	assert.Equal(t, layout.Uint32, g.IndexType())
	assert.Equal(t, gputypes.IndexFormatUint32, g.IndexFormat())
	assert.Equal(t, 12, g.IndexBufferSize())

	g.WideIndices = true
	require.NoError(t, g.SetCount(4, 6))
	assert.Equal(t, layout.Uint32, g.IndexType())
	assert.Equal(t, 24, g.IndexBufferSize())

	assert.ErrorIs(t, g.SetCount(0, 6), layout.ErrInvalidArgument)
	assert.ErrorIs(t, g.SetCount(4, -1), layout.ErrInvalidArgument)
}

func TestSetPart(t *testing.T) {
	g := New(&strip{})
	assert.ErrorIs(t, g.SetPart(2, 0, 0), layout.ErrInvalidArgument)
	assert.ErrorIs(t, g.SetPart(-1, 0, 0), layout.ErrInvalidArgument)
	assert.ErrorIs(t, g.SetPart(0, -1, 0), layout.ErrInvalidArgument)
	require.NoError(t, g.SetPart(1, 3, 9))
	assert.Equal(t, Part{"rest", 3, 9}, g.Parts()[1])
	assert.Equal(t, "rest: offset = 3, count = 9", g.Parts()[1].String())
}

func TestGenerate(t *testing.T) {
	st := &strip{quads: 2}
	g := New(st)

	// before prepare, nothing to fill
	vb, ib, err := g.Generate(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, vb)
	assert.Empty(t, ib)
	assert.Equal(t, 0, st.fills)
	assert.True(t, g.BBox().IsEmpty())

	require.NoError(t, g.Prepare(false))
	vb, ib, err = g.Generate(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Generated, g.State())
	require.Len(t, vb, 6*32)
	require.Len(t, ib, 12*2)

	vw := &Vertices{Layout: g.Layout(), Data: vb, Count: g.VertexCount()}
	pos := vw.Attribute(layout.Position)
	assert.Equal(t, []float32{2, 1, 0}, vw.Get(pos, 5))
	// interleaved: the normal of vertex 1 is at 32 + 12
	assert.Equal(t, float32(1), layout.Float32.Value(vb[32+12+8:]))

	iw := &Indices{Type: g.IndexType(), Data: ib, Count: g.IndexCount()}
	assert.Equal(t, uint32(2), iw.Get(1))
	for i := range iw.Count {
		assert.Less(t, iw.Get(i), uint32(g.VertexCount()))
	}

	bb := g.BBox()
	assert.Equal(t, math32.Vec3(0, 0, 0), bb.Min)
	assert.Equal(t, math32.Vec3(2, 1, 0), bb.Max)
}

func TestGenerateReuse(t *testing.T) {
	st := &strip{quads: 2}
	g := New(st)
	require.NoError(t, g.Prepare(false))
	vb1, ib1, err := g.Generate(nil, nil)
	require.NoError(t, err)
	vb2, ib2, err := g.Generate(nil, nil)
	require.NoError(t, err)
	assert.Same(t, &vb1[0], &vb2[0])
	assert.Same(t, &ib1[0], &ib2[0])

	st.quads = 3
	require.NoError(t, g.Prepare(true))
	vb3, _, err := g.Generate(nil, nil)
	require.NoError(t, err)
	assert.Len(t, vb3, 8*32)
	assert.NotSame(t, &vb1[0], &vb3[0])
}

func TestGenerateCallerBuffers(t *testing.T) {
	g := New(&strip{quads: 1})
	require.NoError(t, g.Prepare(false))
	_, _, err := g.Generate(nil, nil)
	require.NoError(t, err)
	require.NotNil(t, g.VertexBuffer())

	short := make([]byte, g.VertexBufferSize()-1)
	_, _, err = g.Generate(short, nil)
	assert.ErrorIs(t, err, layout.ErrBufferSizeMismatch)
	assert.Equal(t, make([]byte, len(short)), short)
	_, _, err = g.Generate(nil, make([]byte, g.IndexBufferSize()+2))
	assert.ErrorIs(t, err, layout.ErrBufferSizeMismatch)

	vbuf := make([]byte, g.VertexBufferSize())
	ibuf := make([]byte, g.IndexBufferSize())
	vb, ib, err := g.Generate(vbuf, ibuf)
	require.NoError(t, err)
	assert.Same(t, &vbuf[0], &vb[0])
	assert.Same(t, &ibuf[0], &ib[0])
	assert.Nil(t, g.VertexBuffer())
	assert.Nil(t, g.IndexBuffer())
}

func TestGenerateStale(t *testing.T) {
	st := &strip{quads: 2}
	g := New(st)
	require.NoError(t, g.Prepare(false))
	vb, ib, err := g.Generate(nil, nil)
	require.NoError(t, err)
	vb0, ib0 := slices.Clone(vb), slices.Clone(ib)
	bb := g.BBox()

	// shape changed without a new prepare
	st.quads = 3
	_, _, err = g.Generate(nil, nil)
	assert.ErrorIs(t, err, layout.ErrBufferSizeMismatch)
	assert.Equal(t, 1, st.fills)
	assert.Equal(t, vb0, g.VertexBuffer())
	assert.Equal(t, ib0, g.IndexBuffer())

	// nor is a caller buffer written, or the internal one dropped
	vbuf := make([]byte, g.VertexBufferSize())
	_, _, err = g.Generate(vbuf, nil)
	assert.ErrorIs(t, err, layout.ErrBufferSizeMismatch)
	assert.Equal(t, make([]byte, len(vbuf)), vbuf)
	assert.Equal(t, vb0, g.VertexBuffer())

	// layout changed without a new prepare
	st.quads = 2
	ly := layout.P3N3T2()
	require.NoError(t, ly.AddAttribute(layout.Color, layout.Float32, 4, true))
	g.SetLayout(ly)
	_, _, err = g.Generate(nil, nil)
	assert.ErrorIs(t, err, layout.ErrBufferSizeMismatch)
	assert.Equal(t, 1, st.fills)
	assert.Equal(t, vb0, g.VertexBuffer())
	assert.Equal(t, ib0, g.IndexBuffer())
	assert.Equal(t, bb, g.BBox())

	require.NoError(t, g.Prepare(false))
	vb, _, err = g.Generate(nil, nil)
	require.NoError(t, err)
	assert.Len(t, vb, 6*48)
}

func TestPlanarLayout(t *testing.T) {
	st := &strip{quads: 1}
	g := NewWithLayout(st, layout.P3N3T2Planar(), TriangleList)
	g.WideIndices = true
	require.NoError(t, g.Prepare(false))
	vb, ib, err := g.Generate(nil, nil)
	require.NoError(t, err)
	assert.Len(t, vb, 4*32)
	assert.Len(t, ib, 6*4)

	// normals block starts after 4 positions
	assert.Equal(t, float32(1), layout.Float32.Value(vb[4*12+8:]))
	// uv of vertex 2 is (1, 0)
	assert.Equal(t, float32(1), layout.Float32.Value(vb[4*24+2*8:]))

	cl := g.Clone(&strip{quads: 2})
	assert.True(t, cl.WideIndices)
	assert.Equal(t, g.Layout().Specs(), cl.Layout().Specs())
	require.NoError(t, cl.Prepare(false))
	assert.Equal(t, 4*32, g.VertexBufferSize())
}

func TestSetLayout(t *testing.T) {
	g := New(&strip{quads: 1})
	require.NoError(t, g.Prepare(false))
	ly := layout.P2T2()
	g.SetLayout(ly)
	assert.NotSame(t, ly, g.Layout())
	assert.True(t, g.NeedsUpdate)
	require.NoError(t, g.Prepare(false))
	assert.Equal(t, 4*16, g.VertexBufferSize())

	// the strip writes 3 position values, only 2 are stored
	vb, _, err := g.Generate(nil, nil)
	require.NoError(t, err)
	vw := &Vertices{Layout: g.Layout(), Data: vb, Count: 4}
	assert.Equal(t, []float32{1, 1}, vw.Get(vw.Attribute(layout.Position), 3))
	assert.Nil(t, vw.Get(vw.Attribute(layout.Normal), 3))
}

func TestTopologies(t *testing.T) {
	assert.Equal(t, gputypes.PrimitiveTopologyLineStrip, LineStrip.GPU())
	assert.Equal(t, "TriangleStrip", TriangleStrip.String())
	var tp Topologies
	require.NoError(t, tp.UnmarshalText([]byte("pointlist")))
	assert.Equal(t, PointList, tp)
	assert.ErrorIs(t, tp.SetString("quads"), layout.ErrInvalidArgument)
}

func TestIndices(t *testing.T) {
	iw := &Indices{Type: layout.Uint16, Data: make([]byte, 6), Count: 3}
	assert.Equal(t, 3, iw.SetTriangle(0, 1, 2, MaxNarrowVertices-1))
	assert.Equal(t, uint32(MaxNarrowVertices-1), iw.Get(2))
	assert.Panics(t, func() { iw.Set(0, 1<<16) })
	assert.Equal(t, uint32(1), iw.Get(0))

	iw = &Indices{Type: layout.Uint32, Data: make([]byte, 4), Count: 1}
	iw.Set(0, 1<<16)
	assert.Equal(t, uint32(1<<16), iw.Get(0))
}
