package cpu

import (
	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/born-ml/cumattn/internal/parallel"
	"github.com/born-ml/cumattn/internal/tensor"
)

// CumSum computes the inclusive prefix sum of x along dim.
//
//	out[..., i, ...] = x[..., 0, ...] + ... + x[..., i, ...]
//
// Supports negative dim indexing. The tensor is walked as [outer, n, inner]:
// each step along dim adds the previous inner slab with one Axpy, and
// independent outer slices run in parallel.
//
// Example:
//
//	x := [[1, 2, 3], [4, 5, 6]]
//	backend.CumSum(x, -1) // [[1, 3, 6], [4, 9, 15]]
//	backend.CumSum(x, 0)  // [[1, 2, 3], [5, 7, 9]]
func (cpu *CPUBackend) CumSum(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	if len(shape) == 0 {
		exceptions.Panicf("cumsum: cannot scan a 0-D tensor")
	}
	outer, n, inner := shape.Split(dim)

	result := x.Clone()
	switch x.DType() {
	case tensor.Float32:
		cumSumFloat32(result.AsFloat32(), outer, n, inner, cpu.par)
	case tensor.Float64:
		cumSumFloat64(result.AsFloat64(), outer, n, inner, cpu.par)
	default:
		exceptions.Panicf("cumsum: unsupported dtype %s (only float32/float64 supported)", x.DType())
	}
	return result
}

// cumSumFloat32 scans data in place; data already holds a copy of the input.
func cumSumFloat32(data []float32, outer, n, inner int, cfg parallel.Config) {
	parallel.For(outer, func(o int) {
		base := o * n * inner
		for i := 1; i < n; i++ {
			prev := base + (i-1)*inner
			cur := base + i*inner
			blas32.Axpy(1,
				blas32.Vector{N: inner, Inc: 1, Data: data[prev : prev+inner]},
				blas32.Vector{N: inner, Inc: 1, Data: data[cur : cur+inner]},
			)
		}
	}, cfg)
}

// cumSumFloat64 scans data in place; data already holds a copy of the input.
func cumSumFloat64(data []float64, outer, n, inner int, cfg parallel.Config) {
	parallel.For(outer, func(o int) {
		base := o * n * inner
		for i := 1; i < n; i++ {
			prev := base + (i-1)*inner
			cur := base + i*inner
			blas64.Axpy(1,
				blas64.Vector{N: inner, Inc: 1, Data: data[prev : prev+inner]},
				blas64.Vector{N: inner, Inc: 1, Data: data[cur : cur+inner]},
			)
		}
	}, cfg)
}
