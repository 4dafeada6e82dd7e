// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Vector3 is a 3D vector or point.
type Vector3 struct {
	X, Y, Z float32
}

// Vec3 returns a new [Vector3].
func Vec3(x, y, z float32) Vector3 {
	return Vector3{x, y, z}
}

// Vector3Scalar returns a [Vector3] with all components set to s.
func Vector3Scalar(s float32) Vector3 {
	return Vector3{s, s, s}
}

func (v *Vector3) comp(dim Dims) *float32 {
	switch dim {
	case X:
		return &v.X
	case Y:
		return &v.Y
	case Z:
		return &v.Z
	}
	panic(outOfRange(dim, "Vector3"))
}

// Dim returns the given component.
func (v Vector3) Dim(dim Dims) float32 { return *v.comp(dim) }

// SetDim sets the given component.
func (v *Vector3) SetDim(dim Dims, value float32) { *v.comp(dim) = value }

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vector3) MulScalar(s float32) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Min returns the component-wise minimum of v and o.
func (v Vector3) Min(o Vector3) Vector3 {
	return Vector3{min(v.X, o.X), min(v.Y, o.Y), min(v.Z, o.Z)}
}

// Max returns the component-wise maximum of v and o.
func (v Vector3) Max(o Vector3) Vector3 {
	return Vector3{max(v.X, o.X), max(v.Y, o.Y), max(v.Z, o.Z)}
}

// Vector3i is a 3D vector of int32 components, used for counts
// along each axis.
type Vector3i struct {
	X, Y, Z int32
}

// Vec3i returns a new [Vector3i].
func Vec3i(x, y, z int32) Vector3i {
	return Vector3i{x, y, z}
}

// Vector3iScalar returns a [Vector3i] with all components set to s.
func Vector3iScalar(s int32) Vector3i {
	return Vector3i{s, s, s}
}

// Dim returns the given component.
func (v Vector3i) Dim(dim Dims) int32 {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	}
	panic(outOfRange(dim, "Vector3i"))
}

// Min returns the smallest component.
func (v Vector3i) Min() int32 { return min(v.X, v.Y, v.Z) }

// Vector2 is a 2D vector or point.
type Vector2 struct {
	X, Y float32
}

// Vec2 returns a new [Vector2].
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2i is a 2D vector of int32 components.
type Vector2i struct {
	X, Y int32
}

// Vec2i returns a new [Vector2i].
func Vec2i(x, y int32) Vector2i {
	return Vector2i{x, y}
}
