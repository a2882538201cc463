// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	assert.Equal(t, 4, Float32.Bytes())
	assert.Equal(t, 0, UndefinedType.Bytes())
	assert.Equal(t, "VertexShader", VertexShader.String())
	assert.Equal(t, "Float32", Float32.String())
}

func TestAttributeStride(t *testing.T) {
	at := Attribute{Index: 0, Components: 3, Type: Float32}
	assert.Equal(t, int32(12), at.ByteStride())
	at.Components = 2
	assert.Equal(t, int32(8), at.ByteStride())
	at.Stride = 24
	assert.Equal(t, int32(24), at.ByteStride())
}

func TestResultErr(t *testing.T) {
	assert.NoError(t, Result{OK: true}.Err())
	assert.EqualError(t, Result{Log: "0:1: syntax error"}.Err(), "0:1: syntax error")
	assert.EqualError(t, Result{}.Err(), "no info log available")
}
