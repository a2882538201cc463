// Copyright 2018 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

// Package driver selects the [system.Platform] for the
// operating system the program is built for.
package driver

import (
	"cogentcore.org/learngl/system"
	"cogentcore.org/learngl/system/driver/desktop"
)

// Platform returns the windowing platform of this operating system.
func Platform() system.Platform {
	return desktop.NewApp()
}
