// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/learngl/base/errors"
	"cogentcore.org/learngl/base/fsx"
)

//go:embed shaders/*.vert shaders/*.frag
var embedded embed.FS

// shaders are the embedded shader files, by file name.
var shaders = errors.Must1(fs.Sub(embedded, "shaders"))

// Sources loads shader sources by file name, from Dir when the
// file exists there and from the embedded shaders otherwise.
// A nil *Sources only uses the embedded shaders.
type Sources struct {

	// Dir is a directory of shader files overriding the embedded ones.
	// A leading ~ is expanded to the home directory.
	Dir string
}

// Load returns the source of the named shader file,
// with its #include "file" lines expanded; see [Sources.Include].
func (s *Sources) Load(name string) (string, error) {
	code, err := s.read(name)
	if err != nil {
		return "", err
	}
	return s.Include(name, code)
}

func (s *Sources) read(name string) (string, error) {
	if s != nil && s.Dir != "" {
		dir, err := fsx.ExpandPath(s.Dir)
		if err != nil {
			return "", err
		}
		fn := filepath.Join(dir, name)
		ok, err := fsx.FileExists(fn)
		if err != nil {
			return "", err
		}
		if ok {
			b, err := os.ReadFile(fn)
			if err != nil {
				return "", err
			}
			return string(b), nil
		}
	}
	b, err := fs.ReadFile(shaders, name)
	if err != nil {
		return "", fmt.Errorf("render: no shader named %q: %w", name, err)
	}
	return string(b), nil
}
