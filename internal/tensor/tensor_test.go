package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/cumattn/internal/backend/cpu"
	"github.com/born-ml/cumattn/internal/tensor"
)

func TestFromSlice(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float32{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, backend)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, x.Shape())
	assert.Equal(t, 2, x.Rank())
	assert.Equal(t, 3, x.Dim(-1))
	assert.Equal(t, tensor.Float32, x.DType())
	assert.Equal(t, tensor.CPU, x.Device())
	assert.Equal(t, 6, x.NumElements())
	assert.Equal(t, float32(6), x.At(1, 2))
	assert.Equal(t, "Tensor[float32][2 3] on CPU", x.String())

	_, err = tensor.FromSlice([]float32{1, 2, 3}, tensor.Shape{2, 2}, backend)
	assert.Error(t, err)
}

func TestTensor_AtSet(t *testing.T) {
	backend := cpu.New()
	x := tensor.Zeros[int64](tensor.Shape{2, 2}, backend)

	x.Set(7, 1, 0)
	assert.Equal(t, int64(7), x.At(1, 0))
	assert.Equal(t, []int64{0, 0, 7, 0}, x.Data())

	assert.Panics(t, func() { x.At(2, 0) })
	assert.Panics(t, func() { x.At(0) })
}

func TestTensor_Clone(t *testing.T) {
	backend := cpu.New()
	x := tensor.Ones[float64](tensor.Shape{3}, backend)

	c := x.Clone()
	c.Set(5, 0)
	assert.Equal(t, []float64{1, 1, 1}, x.Data())
	assert.Same(t, x.Backend(), c.Backend())
}

func TestCreation(t *testing.T) {
	backend := cpu.New()

	assert.Equal(t, []float32{0, 0, 0}, tensor.Zeros[float32](tensor.Shape{3}, backend).Data())
	assert.Equal(t, []float32{1, 1}, tensor.Ones[float32](tensor.Shape{2}, backend).Data())
	assert.Equal(t, []int32{4, 4}, tensor.Full[int32](tensor.Shape{2}, 4, backend).Data())
	assert.Equal(t, []int32{-1, 0, 1, 2}, tensor.Arange[int32](-1, 3, backend).Data())
	assert.Panics(t, func() { tensor.Arange[int32](3, 3, backend) })

	r := tensor.Rand[float64](tensor.Shape{100}, backend)
	for _, v := range r.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
	assert.Equal(t, tensor.Shape{4, 5}, tensor.Randn[float32](tensor.Shape{4, 5}, backend).Shape())
}

func TestTensor_Ops(t *testing.T) {
	backend := cpu.New()
	a, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2}, backend)
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float64{10, 20}, tensor.Shape{2}, backend)
	require.NoError(t, err)

	assert.Equal(t, []float64{11, 22, 13, 24}, a.Add(b).Data())
	assert.Equal(t, []float64{-9, -18, -7, -16}, a.Sub(b).Data())
	assert.Equal(t, []float64{10, 40, 30, 80}, a.Mul(b).Data())
	assert.Equal(t, []float64{0.5, 1, 1.5, 2}, a.MulScalar(0.5).Data())
	assert.Equal(t, []float64{7, 10, 15, 22}, a.BatchMatMul(a).Data())
	assert.Equal(t, []float64{1, 2, 4, 6}, a.CumSum(0).Data())
	assert.Equal(t, a.Data(), a.Dropout(0).Data())

	// Operands are left untouched.
	assert.Equal(t, []float64{1, 2, 3, 4}, a.Data())
}

func TestTensor_Manipulation(t *testing.T) {
	backend := cpu.New()
	x := tensor.Arange[float32](0, 6, backend)

	m := x.Reshape(2, 3)
	assert.Equal(t, tensor.Shape{2, 3}, m.Shape())
	assert.Equal(t, tensor.Shape{2, 1, 3}, m.Unsqueeze(1).Shape())
	assert.Equal(t, tensor.Shape{2, 3, 1}, m.Unsqueeze(-1).Shape())
	assert.Equal(t, tensor.Shape{2, 3}, m.Unsqueeze(-1).Squeeze(-1).Shape())
	assert.Panics(t, func() { m.Squeeze(0) })

	idx, err := tensor.FromSlice([]int32{2, 0}, tensor.Shape{2}, backend)
	require.NoError(t, err)
	assert.Equal(t, []float32{2, 0, 5, 3}, m.IndexSelect(1, idx).Data())
	assert.Equal(t, []float32{0, 1, 2, 0, 1, 2, 3, 4, 5, 3, 4, 5}, m.RepeatInterleave(2, 0).Data())
}
