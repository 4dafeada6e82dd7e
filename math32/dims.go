// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Dims are the components of a vector.
type Dims int32 //enums:enum

const (
	X Dims = iota
	Y
	Z
)

func (d Dims) String() string {
	switch d {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return fmt.Sprintf("Dims(%d)", int32(d))
}

func outOfRange(d Dims, typ string) string {
	return fmt.Sprintf("math32: dimension %v is out of range for %s", d, typ)
}
