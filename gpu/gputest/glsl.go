// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gputest

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	versionRe = regexp.MustCompile(`^#version\s+\d+(\s+(core|compatibility|es))?\s*$`)
	mainRe    = regexp.MustCompile(`\bvoid\s+main\s*\(\s*(void)?\s*\)`)
)

// CheckGLSL does a shallow sanity check of GLSL source, in place of a
// real compiler. It returns an info log in the style of a driver, which
// is empty when the source passes. The checks are: a #version directive
// on the first non-blank line, a main function, and balanced brackets.
func CheckGLSL(src string) string {
	src = strings.TrimRight(src, "\x00")
	lines := strings.Split(src, "\n")
	first := -1
	for i, ln := range lines {
		if strings.TrimSpace(ln) != "" {
			first = i
			break
		}
	}
	if first < 0 {
		return "ERROR: 0:1: '' : syntax error: empty shader source"
	}
	if !versionRe.MatchString(strings.TrimSpace(lines[first])) {
		return fmt.Sprintf("ERROR: 0:%d: '' : #version required and missing", first+1)
	}
	var stack []rune
	pairs := map[rune]rune{')': '(', '}': '{', ']': '['}
	for i, ln := range lines {
		for _, c := range ln {
			switch c {
			case '(', '{', '[':
				stack = append(stack, c)
			case ')', '}', ']':
				if len(stack) == 0 || stack[len(stack)-1] != pairs[c] {
					return fmt.Sprintf("ERROR: 0:%d: '%c' : syntax error: unexpected token", i+1, c)
				}
				stack = stack[:len(stack)-1]
			}
		}
	}
	if len(stack) > 0 {
		return fmt.Sprintf("ERROR: 0:%d: '' : syntax error: unexpected end of file, unclosed '%c'", len(lines), stack[len(stack)-1])
	}
	if !mainRe.MatchString(src) {
		return "ERROR: 0:1: 'main' : function not defined"
	}
	return ""
}
