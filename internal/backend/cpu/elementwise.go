package cpu

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/cumattn/internal/tensor"
)

type binaryOp int

const (
	opAdd binaryOp = iota
	opSub
	opMul
)

type numeric interface {
	float32 | float64 | int32 | int64
}

// binary allocates the broadcast result of a op b and dispatches on dtype.
func (cpu *CPUBackend) binary(name string, a, b *tensor.RawTensor, op binaryOp) *tensor.RawTensor {
	checkSameDType(name, a, b)
	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		exceptions.Panicf("%s: %v", name, err)
	}
	result := tensor.MustNewRaw(name, outShape, a.DType(), cpu.device)

	switch a.DType() {
	case tensor.Float32:
		binaryKernel(result.AsFloat32(), a.AsFloat32(), b.AsFloat32(), a.Shape(), b.Shape(), outShape, needsBroadcast, op)
	case tensor.Float64:
		binaryKernel(result.AsFloat64(), a.AsFloat64(), b.AsFloat64(), a.Shape(), b.Shape(), outShape, needsBroadcast, op)
	case tensor.Int32:
		binaryKernel(result.AsInt32(), a.AsInt32(), b.AsInt32(), a.Shape(), b.Shape(), outShape, needsBroadcast, op)
	case tensor.Int64:
		binaryKernel(result.AsInt64(), a.AsInt64(), b.AsInt64(), a.Shape(), b.Shape(), outShape, needsBroadcast, op)
	default:
		exceptions.Panicf("%s: unsupported dtype %s", name, a.DType())
	}
	return result
}

func binaryKernel[T numeric](dst, a, b []T, aShape, bShape, outShape tensor.Shape, broadcast bool, op binaryOp) {
	if !broadcast {
		switch op {
		case opAdd:
			for i := range dst {
				dst[i] = a[i] + b[i]
			}
		case opSub:
			for i := range dst {
				dst[i] = a[i] - b[i]
			}
		case opMul:
			for i := range dst {
				dst[i] = a[i] * b[i]
			}
		}
		return
	}

	outStrides := outShape.ComputeStrides()
	aStrides := computeBroadcastStridesForShape(aShape, outShape)
	bStrides := computeBroadcastStridesForShape(bShape, outShape)
	for i := range dst {
		x := a[computeFlatIndex(i, outStrides, aStrides)]
		y := b[computeFlatIndex(i, outStrides, bStrides)]
		switch op {
		case opAdd:
			dst[i] = x + y
		case opSub:
			dst[i] = x - y
		case opMul:
			dst[i] = x * y
		}
	}
}
