package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/cumattn/internal/tensor"
)

func TestBatchMatMul_3D(t *testing.T) {
	backend := New()

	// [2, 2, 3] @ [2, 3, 2]
	a := rawFloat32(t, tensor.Shape{2, 2, 3},
		1, 2, 3,
		4, 5, 6,

		1, 0, 0,
		0, 1, 0,
	)
	b := rawFloat32(t, tensor.Shape{2, 3, 2},
		1, 2,
		3, 4,
		5, 6,

		7, 8,
		9, 10,
		11, 12,
	)

	out := backend.BatchMatMul(a, b)
	assert.Equal(t, tensor.Shape{2, 2, 2}, out.Shape())
	assert.Equal(t, []float32{
		22, 28,
		49, 64,

		7, 8,
		9, 10,
	}, out.AsFloat32())
}

func TestBatchMatMul_BroadcastBatch(t *testing.T) {
	backend := New()

	// a has two batches, b has one that is shared.
	a := rawFloat64(t, tensor.Shape{2, 1, 2}, 1, 2, 3, 4)
	b := rawFloat64(t, tensor.Shape{1, 2, 3}, 1, 0, 1, 0, 1, 1)

	out := backend.BatchMatMul(a, b)
	assert.Equal(t, tensor.Shape{2, 1, 3}, out.Shape())
	assert.Equal(t, []float64{1, 2, 3, 3, 4, 7}, out.AsFloat64())
}

func TestBatchMatMul_BroadcastRank(t *testing.T) {
	backend := New()

	// Rank-2 right operand broadcasts over every batch of a.
	a := rawFloat32(t, tensor.Shape{3, 1, 2}, 1, 1, 2, 2, 3, 3)
	b := rawFloat32(t, tensor.Shape{2, 2}, 1, 2, 3, 4)

	out := backend.BatchMatMul(a, b)
	assert.Equal(t, tensor.Shape{3, 1, 2}, out.Shape())
	assert.Equal(t, []float32{4, 6, 8, 12, 12, 18}, out.AsFloat32())
}

func TestBatchMatMul_OuterProduct(t *testing.T) {
	backend := New()

	// [.., k, 1] @ [.., 1, v] is the outer product k ⊗ v.
	k := rawFloat32(t, tensor.Shape{1, 2, 1}, 1, 2)
	v := rawFloat32(t, tensor.Shape{1, 1, 3}, 1, 10, 100)

	out := backend.BatchMatMul(k, v)
	assert.Equal(t, tensor.Shape{1, 2, 3}, out.Shape())
	assert.Equal(t, []float32{1, 10, 100, 2, 20, 200}, out.AsFloat32())
}

func TestBatchMatMul_Errors(t *testing.T) {
	backend := New()

	a := rawFloat32(t, tensor.Shape{2, 2, 3}, make([]float32, 12)...)
	bad := rawFloat32(t, tensor.Shape{2, 2, 2}, make([]float32, 8)...)
	assert.Panics(t, func() { backend.BatchMatMul(a, bad) }, "inner dimension mismatch")

	batchMismatch := rawFloat32(t, tensor.Shape{3, 3, 2}, make([]float32, 18)...)
	assert.Panics(t, func() { backend.BatchMatMul(a, batchMismatch) })

	vec := rawFloat32(t, tensor.Shape{3}, 1, 2, 3)
	assert.Panics(t, func() { backend.BatchMatMul(vec, vec) })
}
