// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gputest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckGLSL(t *testing.T) {
	ok := "#version 330 core\nout vec4 FragColor;\nvoid main()\n{\n  FragColor = vec4(1.0);\n}\x00"
	assert.Empty(t, CheckGLSL(ok))
	assert.Empty(t, CheckGLSL("\n\n#version 330\nvoid main(void) {}"))

	cases := map[string]string{
		"empty":         "  \n",
		"no version":    "void main() {}",
		"bad version":   "#version core\nvoid main() {}",
		"unclosed":      "#version 330 core\nvoid main() {",
		"unbalanced":    "#version 330 core\nvoid main() { vec4(1.0]; }",
		"extra closing": "#version 330 core\nvoid main() {}}",
		"no main":       "#version 330 core\nvoid mane() {}",
	}
	for name, src := range cases {
		log := CheckGLSL(src)
		assert.NotEmpty(t, log, name)
		assert.Contains(t, log, "ERROR: 0:", name)
	}
}

func TestLinkRules(t *testing.T) {
	r := NewRecorder()
	vs := r.CreateShader(1)
	r.ShaderSource(vs, "#version 330 core\nvoid main() {}")
	r.CompileShader(vs)
	pr := r.CreateProgram()
	r.AttachShader(pr, vs)
	r.LinkProgram(pr)
	assert.False(t, r.ProgramLinked(pr))
	assert.Contains(t, r.ProgramInfoLog(pr), "FragmentShader")
}
