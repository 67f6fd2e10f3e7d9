package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/cumattn/internal/tensor"
)

func TestIndexSelect(t *testing.T) {
	backend := New()

	// [2, 3, 2]
	x := rawFloat32(t, tensor.Shape{2, 3, 2},
		0, 1, 10, 11, 20, 21,
		100, 101, 110, 111, 120, 121,
	)

	t.Run("MiddleAxis", func(t *testing.T) {
		out := backend.IndexSelect(x, 1, rawInt32(t, 2, 0))
		assert.Equal(t, tensor.Shape{2, 2, 2}, out.Shape())
		assert.Equal(t, []float32{20, 21, 0, 1, 120, 121, 100, 101}, out.AsFloat32())
	})

	t.Run("NegativeAxisWithRepeats", func(t *testing.T) {
		out := backend.IndexSelect(x, -2, rawInt32(t, 1, 1, 1))
		assert.Equal(t, tensor.Shape{2, 3, 2}, out.Shape())
		assert.Equal(t, []float32{10, 11, 10, 11, 10, 11, 110, 111, 110, 111, 110, 111}, out.AsFloat32())
	})

	t.Run("LastAxis", func(t *testing.T) {
		out := backend.IndexSelect(x, -1, rawInt32(t, 1))
		assert.Equal(t, tensor.Shape{2, 3, 1}, out.Shape())
		assert.Equal(t, []float32{1, 11, 21, 101, 111, 121}, out.AsFloat32())
	})

	t.Run("Float64", func(t *testing.T) {
		y := rawFloat64(t, tensor.Shape{3}, 1.5, 2.5, 3.5)
		out := backend.IndexSelect(y, 0, rawInt32(t, 2, 0))
		assert.Equal(t, []float64{3.5, 1.5}, out.AsFloat64())
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		assert.Panics(t, func() { backend.IndexSelect(x, 1, rawInt32(t, 3)) })
		assert.Panics(t, func() { backend.IndexSelect(x, 1, rawInt32(t, -1)) })
	})

	t.Run("IndexDType", func(t *testing.T) {
		idx := rawFloat32(t, tensor.Shape{1}, 0)
		assert.Panics(t, func() { backend.IndexSelect(x, 1, idx) })
	})
}

func TestRepeatInterleave(t *testing.T) {
	backend := New()

	// [1, 2, 2, 1]: two heads of two positions.
	x := rawFloat32(t, tensor.Shape{1, 2, 2, 1}, 1, 2, 3, 4)

	out := backend.RepeatInterleave(x, 3, 1)
	assert.Equal(t, tensor.Shape{1, 6, 2, 1}, out.Shape())
	assert.Equal(t, []float32{1, 2, 1, 2, 1, 2, 3, 4, 3, 4, 3, 4}, out.AsFloat32())

	out = backend.RepeatInterleave(x, 2, -1)
	assert.Equal(t, tensor.Shape{1, 2, 2, 2}, out.Shape())
	assert.Equal(t, []float32{1, 1, 2, 2, 3, 3, 4, 4}, out.AsFloat32())

	same := backend.RepeatInterleave(x, 1, 1)
	assert.Equal(t, x.AsFloat32(), same.AsFloat32())
	same.AsFloat32()[0] = 42
	assert.Equal(t, float32(1), x.AsFloat32()[0], "repeats=1 must still copy")

	assert.Panics(t, func() { backend.RepeatInterleave(x, 0, 1) })
}
