// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user log level, the default slog handler
// setup, and colored terminal printing used by the mesh tools.
package logx

import (
	"fmt"
	"log/slog"
	"strings"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default user
// verbosity level is [slog.LevelWarn].
var UserLevel = slog.LevelWarn

// LevelFromFlags returns the level selected by the -vv, -v and -q
// command line flags: debug, info or error. The most verbose flag
// that is set wins, and with none set it is [slog.LevelWarn].
func LevelFromFlags(debug, info, quiet bool) slog.Level {
	level := slog.LevelWarn
	if quiet {
		level = slog.LevelError
	}
	if info {
		level = slog.LevelInfo
	}
	if debug {
		level = slog.LevelDebug
	}
	return level
}

// LevelFromString returns the level for the given case insensitive
// name: debug, info, warn or error. An empty string is [slog.LevelWarn].
func LevelFromString(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelWarn, fmt.Errorf("logx.LevelFromString: unknown log level %q", s)
}
