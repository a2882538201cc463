// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default structured logger used by
// the example programs, with colored level output on terminals.
package logx

import "log/slog"

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [LevelFromFlags] from the command-line config.
// Changes take effect immediately on loggers made with [SetDefaultLogger].
// The default verbosity level is [slog.LevelWarn], as returned by
// [LevelFromFlags] when no flag is set.
var UserLevel = new(slog.LevelVar)

func init() {
	UserLevel.Set(LevelFromFlags(false, false, false))
}

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - debug: [slog.LevelDebug]
//   - verbose: [slog.LevelInfo]
//   - quiet: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// debug and quiet are set, the level will be debug.
func LevelFromFlags(debug, verbose, quiet bool) slog.Level {
	switch {
	case debug:
		return slog.LevelDebug
	case verbose:
		return slog.LevelInfo
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
