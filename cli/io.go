// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/learngl/base/errors"
	"cogentcore.org/learngl/base/fsx"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Open reads the given config object from the given file, which
// must be a TOML (.toml) or YAML (.yaml, .yml) file. Fields not
// present in the file keep their current values.
func Open(cfg any, file string) error {
	fn, err := fsx.ExpandPath(file)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(fn)); ext {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		err = dec.Decode(cfg)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return fmt.Errorf("cli.Open: unsupported config file type %q for %q", ext, fn)
	}
	if err != nil {
		return fmt.Errorf("cli.Open: %s: %w", fn, err)
	}
	return nil
}

// openFiles opens the first of the given files that is found on
// [Options.SearchPaths], returning the path of the file opened.
// It is not an error for none of the files to exist.
func openFiles(opts *Options, cfg any, files ...string) (string, error) {
	found := fsx.FindFilesOnPaths(opts.SearchPaths, files...)
	if len(found) == 0 {
		return "", nil
	}
	return found[0], Open(cfg, found[0])
}
