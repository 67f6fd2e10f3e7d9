package cpu

import (
	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"

	"github.com/born-ml/cumattn/internal/parallel"
	"github.com/born-ml/cumattn/internal/tensor"
)

// BatchMatMul performs batched matrix multiplication.
//
// The last two dimensions are matrix dimensions; all leading dimensions are
// batch dimensions and broadcast with NumPy rules:
//
//	[B, H, M, K] @ [B, H, K, N]    -> [B, H, M, N]
//	[B, H, S, 1, K] @ [1, H, S, K, N] -> [B, H, S, 1, N]
//
// Each batch is a single gonum Gemm call; batches run in parallel.
func (cpu *CPUBackend) BatchMatMul(a, b *tensor.RawTensor) *tensor.RawTensor {
	checkSameDType("BatchMatMul", a, b)
	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) < 2 || len(bShape) < 2 {
		exceptions.Panicf("BatchMatMul: inputs must be at least 2D, got %v and %v", aShape, bShape)
	}

	m, k1 := aShape[len(aShape)-2], aShape[len(aShape)-1]
	k2, n := bShape[len(bShape)-2], bShape[len(bShape)-1]
	if k1 != k2 {
		exceptions.Panicf("BatchMatMul: inner dimension mismatch: %v @ %v (%d vs %d)", aShape, bShape, k1, k2)
	}

	aBatch, bBatch := aShape[:len(aShape)-2], bShape[:len(bShape)-2]
	batchShape, _, err := tensor.BroadcastShapes(aBatch, bBatch)
	if err != nil {
		exceptions.Panicf("BatchMatMul: batch dimensions: %v", err)
	}

	outShape := append(batchShape.Clone(), m, n)
	result := tensor.MustNewRaw("BatchMatMul", outShape, a.DType(), cpu.device)

	plan := batchPlan{
		outStrides: batchShape.ComputeStrides(),
		aStrides:   computeBroadcastStridesForShape(aBatch, batchShape),
		bStrides:   computeBroadcastStridesForShape(bBatch, batchShape),
		batches:    batchShape.NumElements(),
		m:          m,
		k:          k1,
		n:          n,
	}

	switch a.DType() {
	case tensor.Float32:
		batchMatmulFloat32(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), plan, cpu.par)
	case tensor.Float64:
		batchMatmulFloat64(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), plan, cpu.par)
	default:
		exceptions.Panicf("BatchMatMul: unsupported dtype %s", a.DType())
	}
	return result
}

// batchPlan holds the geometry of a broadcast batched matmul.
type batchPlan struct {
	outStrides, aStrides, bStrides []int
	batches, m, k, n               int
}

// offsets returns the element offsets of the a, b and c matrices of batch i.
func (p batchPlan) offsets(i int) (aOff, bOff, cOff int) {
	aOff = computeFlatIndex(i, p.outStrides, p.aStrides) * p.m * p.k
	bOff = computeFlatIndex(i, p.outStrides, p.bStrides) * p.k * p.n
	cOff = i * p.m * p.n
	return aOff, bOff, cOff
}

func batchMatmulFloat32(c, a, b []float32, p batchPlan, cfg parallel.Config) {
	parallel.For(p.batches, func(i int) {
		aOff, bOff, cOff := p.offsets(i)
		blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas32.General{Rows: p.m, Cols: p.k, Stride: p.k, Data: a[aOff : aOff+p.m*p.k]},
			blas32.General{Rows: p.k, Cols: p.n, Stride: p.n, Data: b[bOff : bOff+p.k*p.n]},
			0,
			blas32.General{Rows: p.m, Cols: p.n, Stride: p.n, Data: c[cOff : cOff+p.m*p.n]},
		)
	}, cfg)
}

func batchMatmulFloat64(c, a, b []float64, p batchPlan, cfg parallel.Config) {
	parallel.For(p.batches, func(i int) {
		aOff, bOff, cOff := p.offsets(i)
		blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
			blas64.General{Rows: p.m, Cols: p.k, Stride: p.k, Data: a[aOff : aOff+p.m*p.k]},
			blas64.General{Rows: p.k, Cols: p.n, Stride: p.n, Data: b[bOff : bOff+p.k*p.n]},
			0,
			blas64.General{Rows: p.m, Cols: p.n, Stride: p.n, Data: c[cOff : cOff+p.m*p.n]},
		)
	}, cfg)
}
