// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"io"
	"log/slog"
	"os"
)

// SetDefaultLogger sets the default [slog] logger to a text handler
// writing to [os.Stderr] that shows messages at or above [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(NewLogger(os.Stderr))
}

// NewLogger returns a text logger writing to w at [UserLevel].
func NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: UserLevel}))
}

// SetLevel sets [UserLevel] and resets the default logger to use it.
func SetLevel(level slog.Level) {
	UserLevel = level
	SetDefaultLogger()
}
