// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/cumattn/backend/cpu"
	"github.com/born-ml/cumattn/tensor"
)

func TestNewWithSeed_Reproducible(t *testing.T) {
	x := tensor.Ones[float32](tensor.Shape{64}, cpu.New())

	a, err := tensor.FromSlice(x.Data(), x.Shape(), cpu.NewWithSeed(5))
	require.NoError(t, err)
	b, err := tensor.FromSlice(x.Data(), x.Shape(), cpu.NewWithSeed(5))
	require.NoError(t, err)

	assert.Equal(t, a.Dropout(0.5).Data(), b.Dropout(0.5).Data())
}

func TestWithParallel_Disabled(t *testing.T) {
	cfg := cpu.DefaultParallelConfig()
	cfg.Enabled = false
	backend := cpu.New().WithParallel(cfg)

	a := tensor.Ones[float64](tensor.Shape{32, 2, 3}, backend)
	b := tensor.Ones[float64](tensor.Shape{32, 3, 2}, backend)
	out := a.BatchMatMul(b)

	assert.Equal(t, tensor.Shape{32, 2, 2}, out.Shape())
	for _, v := range out.Data() {
		assert.Equal(t, 3.0, v)
	}
}
