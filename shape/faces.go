// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/mesh/math32"
)

// Faces are the six axis-aligned faces of a box. Each face is
// a plane spanned by a u and a v axis, with the w axis along its
// normal. Vertices of a face are generated in rows along u.
type Faces int32 //enums:enum

const (
	PosZ Faces = iota
	NegZ
	NegX
	PosX
	PosY
	NegY

	// FacesN is the number of faces.
	FacesN
)

var faceNames = [FacesN]string{"PosZ", "NegZ", "NegX", "PosX", "PosY", "NegY"}

// faceAxes are the u, v and w axes of each face.
var faceAxes = [FacesN][3]math32.Dims{
	PosZ: {math32.X, math32.Y, math32.Z},
	NegZ: {math32.X, math32.Y, math32.Z},
	NegX: {math32.Z, math32.Y, math32.X},
	PosX: {math32.Z, math32.Y, math32.X},
	PosY: {math32.X, math32.Z, math32.Y},
	NegY: {math32.X, math32.Z, math32.Y},
}

// faceSigns are the directions of the u, v and w axes of each face.
var faceSigns = [FacesN][3]float32{
	PosZ: {1, 1, 1},
	NegZ: {-1, 1, -1},
	NegX: {1, 1, -1},
	PosX: {-1, 1, 1},
	PosY: {1, -1, 1},
	NegY: {-1, -1, -1},
}

var faceNormals = [FacesN]math32.Vector3{
	PosZ: {Z: 1},
	NegZ: {Z: -1},
	NegX: {X: -1},
	PosX: {X: 1},
	PosY: {Y: 1},
	NegY: {Y: -1},
}

func (f Faces) String() string {
	if f < 0 || f >= FacesN {
		return fmt.Sprintf("Faces(%d)", int32(f))
	}
	return faceNames[f]
}

// Axes returns the u, v and w axes of the face.
func (f Faces) Axes() (u, v, w math32.Dims) {
	ax := faceAxes[f]
	return ax[0], ax[1], ax[2]
}

// Signs returns the directions of the u, v and w axes of the face.
func (f Faces) Signs() (u, v, w float32) {
	sg := faceSigns[f]
	return sg[0], sg[1], sg[2]
}

// Normal returns the outward normal of the face.
func (f Faces) Normal() math32.Vector3 {
	return faceNormals[f]
}
