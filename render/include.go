// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"fmt"
	"slices"
	"strings"
)

// maxIncludeDepth bounds nested includes, which catches cycles.
const maxIncludeDepth = 16

// Include processes the #include "file" lines in the given code of
// the named shader, replacing each with the contents of the file, as
// loaded by [Sources.Load]. The #include line is kept as a comment so
// that line numbers in compiler logs can be traced back. Included
// files may include other files.
func (s *Sources) Include(name, code string) (string, error) {
	return s.include(name, code, 0)
}

func (s *Sources) include(name, code string, depth int) (string, error) {
	if depth > maxIncludeDepth {
		return "", fmt.Errorf("render: %s: includes nested more than %d deep", name, maxIncludeDepth)
	}
	lines := strings.Split(code, "\n")
	for li := len(lines) - 1; li >= 0; li-- {
		ln := strings.TrimSpace(lines[li])
		rest, ok := strings.CutPrefix(ln, "#include")
		if !ok {
			continue
		}
		rest = strings.TrimSpace(rest)
		if len(rest) < 2 || rest[0] != '"' || !strings.HasSuffix(rest, `"`) {
			return "", fmt.Errorf("render: %s:%d: malformed #include: %s", name, li+1, ln)
		}
		fname := rest[1 : len(rest)-1]
		sub, err := s.read(fname)
		if err != nil {
			return "", fmt.Errorf("render: %s:%d: %w", name, li+1, err)
		}
		sub, err = s.include(fname, sub, depth+1)
		if err != nil {
			return "", err
		}
		lines[li] = "// " + ln
		lines = slices.Insert(lines, li+1, strings.Split(sub, "\n")...)
	}
	return strings.Join(lines, "\n"), nil
}
