// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import "cogentcore.org/learngl/base/errors"

// Result is the outcome of compiling a shader or linking a program.
// Log holds the full driver diagnostic, of any length.
type Result struct {

	// OK is whether the compile or link succeeded.
	OK bool

	// Log is the driver info log, which can be non-empty even on success.
	Log string
}

// Err returns nil for a successful result and an error
// carrying the info log otherwise.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	if r.Log == "" {
		return errors.New("no info log available")
	}
	return errors.New(r.Log)
}
