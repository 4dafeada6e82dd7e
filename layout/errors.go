// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import "cogentcore.org/mesh/base/errors"

// These are the error kinds reported by layouts and by the geometry
// built on them. They are always returned wrapped with context, so
// test for them with [errors.Is].
var (
	// ErrInvalidArgument is returned for an out-of-range count, size,
	// index or name.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateAttribute is returned when an attribute name is
	// already registered in a layout.
	ErrDuplicateAttribute = errors.New("duplicate attribute")

	// ErrUnknownElementType is returned for an element type that is
	// not in the element size table.
	ErrUnknownElementType = errors.New("unknown element type")

	// ErrBufferSizeMismatch is returned when a buffer does not have
	// the byte size computed from the layout.
	ErrBufferSizeMismatch = errors.New("buffer size mismatch")
)
