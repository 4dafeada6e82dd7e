// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors stands in for the standard errors package, adding
// helpers for errors that are logged or fatal instead of returned.
package errors

import (
	"errors"
	"log/slog"
)

// New returns a new error with the given text, as [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is reports whether err or any error it wraps matches target, as [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Join wraps the non-nil errors into one, as [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Log logs err at the error level if it is non-nil, and returns it:
//
//	errors.Log(w.Close())
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error())
	}
	return err
}

// Must1 returns v, panicking if err is non-nil. It is for
// values that can only fail through a programming error:
//
//	ly := errors.Must1(Preset("p3n3t2"))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
