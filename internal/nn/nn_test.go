package nn

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/cumattn/internal/backend/cpu"
	"github.com/born-ml/cumattn/internal/tensor"
)

func fromSlice[T tensor.DType](t *testing.T, backend *cpu.CPUBackend, shape tensor.Shape, data ...T) *tensor.Tensor[T, *cpu.CPUBackend] {
	t.Helper()
	x, err := tensor.FromSlice(data, shape, backend)
	require.NoError(t, err)
	return x
}

func indexMask(t *testing.T, backend *cpu.CPUBackend, idx ...int32) *tensor.Tensor[int32, *cpu.CPUBackend] {
	t.Helper()
	return fromSlice(t, backend, tensor.Shape{len(idx)}, idx...)
}

// sliceSeq returns x[..., from:to, :] along the second to last axis.
func sliceSeq(backend *cpu.CPUBackend, x *tensor.Tensor[float64, *cpu.CPUBackend], from, to int) *tensor.Tensor[float64, *cpu.CPUBackend] {
	idx := tensor.Arange[int32](int32(from), int32(to), backend)
	return x.IndexSelect(-2, idx)
}
