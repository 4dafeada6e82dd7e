// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides the float32 and int32 vectors and the
// bounding box used by the shape generators, with the float32 math
// functions of [github.com/chewxy/math32].
package math32

import (
	"math"

	"github.com/chewxy/math32"
)

// Pi is the ratio of a circle's circumference to its diameter.
const Pi = math.Pi

// Infinity is positive infinity.
var Infinity = math32.Inf(1)

// Sincos returns the sine and cosine of x.
func Sincos(x float32) (sin, cos float32) {
	return math32.Sincos(x)
}
