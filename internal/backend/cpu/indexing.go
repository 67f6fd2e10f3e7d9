package cpu

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/cumattn/internal/tensor"
)

// IndexSelect selects slices of x along dim using a 1-D int32 index tensor.
// Similar to torch.index_select(input, dim, index).
//
// Example:
//
//	x:     [2, 5, 4, 4]
//	index: [3] (int32, values in [0, 5))
//	dim:   1
//	out:   [2, 3, 4, 4] where out[b, i] = x[b, index[i]]
//
// The copy is dtype-agnostic: each selected slice is a contiguous block of
// bytes in row-major layout.
func (cpu *CPUBackend) IndexSelect(x *tensor.RawTensor, dim int, index *tensor.RawTensor) *tensor.RawTensor {
	if index.DType() != tensor.Int32 {
		exceptions.Panicf("index_select: index tensor must have dtype int32, got %s", index.DType())
	}
	if len(index.Shape()) != 1 {
		exceptions.Panicf("index_select: index must be 1-D, got shape %v", index.Shape())
	}

	shape := x.Shape()
	dim = shape.NormalizeAxis(dim)
	outer, n, inner := shape.Split(dim)
	indices := index.AsInt32()
	for pos, idx := range indices {
		if idx < 0 || int(idx) >= n {
			exceptions.Panicf("index_select: index %d out of bounds [0, %d) at position %d", idx, n, pos)
		}
	}

	outShape := shape.Clone()
	outShape[dim] = len(indices)
	result := tensor.MustNewRaw("index_select", outShape, x.DType(), cpu.device)

	block := inner * x.DType().Size()
	src, dst := x.Data(), result.Data()
	for o := 0; o < outer; o++ {
		srcBase := o * n * block
		dstBase := o * len(indices) * block
		for i, idx := range indices {
			s := srcBase + int(idx)*block
			d := dstBase + i*block
			copy(dst[d:d+block], src[s:s+block])
		}
	}
	return result
}

// RepeatInterleave repeats every slice of x along dim `repeats` times, with
// the copies of one slice kept adjacent: along dim, [a, b] becomes
// [a, a, b, b] for repeats=2.
//
// Example:
//
//	x:   [1, 2, 6, 8] (2 heads)
//	out: backend.RepeatInterleave(x, 4, 1) -> [1, 8, 6, 8]; heads 0-3 copy head 0
func (cpu *CPUBackend) RepeatInterleave(x *tensor.RawTensor, repeats, dim int) *tensor.RawTensor {
	if repeats <= 0 {
		exceptions.Panicf("repeat_interleave: repeats must be positive, got %d", repeats)
	}

	shape := x.Shape()
	dim = shape.NormalizeAxis(dim)
	if repeats == 1 {
		return x.Clone()
	}
	outer, n, inner := shape.Split(dim)

	outShape := shape.Clone()
	outShape[dim] = n * repeats
	result := tensor.MustNewRaw("repeat_interleave", outShape, x.DType(), cpu.device)

	block := inner * x.DType().Size()
	src, dst := x.Data(), result.Data()
	d := 0
	for o := 0; o < outer; o++ {
		for i := 0; i < n; i++ {
			s := (o*n + i) * block
			for r := 0; r < repeats; r++ {
				copy(dst[d:d+block], src[s:s+block])
				d += block
			}
		}
	}
	return result
}
