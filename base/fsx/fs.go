// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"cogentcore.org/learngl/base/errors"
	"github.com/mitchellh/go-homedir"
)

// ExpandPath expands a leading ~ in the given path to the user's
// home directory and cleans the result. An empty path stays empty.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	ep, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(ep), nil
}

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
// Directories do not count as files.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full Abs path to each file found (nil if none).
// An absolute file is returned as-is when it exists.
func FindFilesOnPaths(paths []string, files ...string) []string {
	var res []string
	for _, fn := range files {
		fn = errors.Log1(ExpandPath(fn))
		if fn == "" {
			continue
		}
		if filepath.IsAbs(fn) {
			if ok, _ := FileExists(fn); ok {
				res = append(res, fn)
			}
			continue
		}
		for _, path := range paths {
			path = errors.Log1(ExpandPath(path))
			fp := filepath.Join(path, fn)
			ok, _ := FileExists(fp)
			if !ok {
				continue
			}
			fa, err := filepath.Abs(fp)
			if err == nil {
				res = append(res, fa)
			}
		}
	}
	return res
}
