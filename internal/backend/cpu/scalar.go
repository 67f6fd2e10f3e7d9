package cpu

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/cumattn/internal/tensor"
)

// MulScalar multiplies each element of the tensor by a scalar value.
// The scalar's Go type must match the tensor dtype.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result := tensor.MustNewRaw("mulScalar", x.Shape(), x.DType(), cpu.device)

	switch x.DType() {
	case tensor.Float32:
		mulScalar(result.AsFloat32(), x.AsFloat32(), scalarAs[float32](x.DType(), scalar))
	case tensor.Float64:
		mulScalar(result.AsFloat64(), x.AsFloat64(), scalarAs[float64](x.DType(), scalar))
	case tensor.Int32:
		mulScalar(result.AsInt32(), x.AsInt32(), scalarAs[int32](x.DType(), scalar))
	case tensor.Int64:
		mulScalar(result.AsInt64(), x.AsInt64(), scalarAs[int64](x.DType(), scalar))
	default:
		exceptions.Panicf("mulScalar: unsupported dtype %v", x.DType())
	}
	return result
}

func mulScalar[T numeric](dst, src []T, s T) {
	for i, v := range src {
		dst[i] = v * s
	}
}

func scalarAs[T numeric](dtype tensor.DataType, scalar any) T {
	v, ok := scalar.(T)
	if !ok {
		exceptions.Panicf("mulScalar: scalar of type %T does not match tensor dtype %s", scalar, dtype)
	}
	return v
}
