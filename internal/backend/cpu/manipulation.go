package cpu

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/cumattn/internal/tensor"
)

// Unsqueeze adds a dimension of size 1 at the specified position.
// Supports negative dim indexing (-1 appends a trailing axis).
//
// Example:
//
//	x := tensor.Randn[float32](tensor.Shape{2, 3}, backend)
//	y := backend.Unsqueeze(x.Raw(), 1)  // Shape: [2, 1, 3]
func (cpu *CPUBackend) Unsqueeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	// Valid range for unsqueeze is [0, ndim].
	if dim < 0 {
		dim = ndim + 1 + dim
	}
	if dim < 0 || dim > ndim {
		exceptions.Panicf("unsqueeze: dimension %d out of range for %dD tensor (valid: [0, %d])", dim, ndim, ndim)
	}

	newShape := make(tensor.Shape, 0, ndim+1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, shape[dim:]...)
	return cpu.Reshape(x, newShape)
}

// Squeeze removes a dimension of size 1 at the specified position.
// Panics if the dimension size is not 1.
func (cpu *CPUBackend) Squeeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)

	if dim < 0 {
		dim = ndim + dim
	}
	if dim < 0 || dim >= ndim {
		exceptions.Panicf("squeeze: dimension %d out of range for %dD tensor", dim, ndim)
	}
	if shape[dim] != 1 {
		exceptions.Panicf("squeeze: dimension %d has size %d, must be 1", dim, shape[dim])
	}

	newShape := make(tensor.Shape, 0, ndim-1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, shape[dim+1:]...)
	return cpu.Reshape(x, newShape)
}
