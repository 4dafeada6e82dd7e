// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box3 is an axis-aligned bounding box. It is empty when any
// component of Min is greater than that of Max.
type Box3 struct {
	Min Vector3
	Max Vector3
}

// B3Empty returns an empty box that any point expands.
func B3Empty() Box3 {
	return Box3{Min: Vector3Scalar(Infinity), Max: Vector3Scalar(-Infinity)}
}

func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

// ExpandByPoint grows the box to contain p.
func (b *Box3) ExpandByPoint(p Vector3) {
	b.Min = b.Min.Min(p)
	b.Max = b.Max.Max(p)
}

// Size returns the extent of the box, which is zero for an empty box.
func (b Box3) Size() Vector3 {
	if b.IsEmpty() {
		return Vector3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the center of the box.
func (b Box3) Center() Vector3 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}
