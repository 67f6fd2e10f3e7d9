package tensor

// Reshape returns a tensor with the same data but different shape.
// The new shape must have the same number of elements.
//
// Example:
//
//	t := tensor.Arange[int32](0, 12, backend) // Shape: [12]
//	reshaped := t.Reshape(3, 4)               // Shape: [3, 4]
func (t *Tensor[T, B]) Reshape(newShape ...int) *Tensor[T, B] {
	return New[T, B](t.backend.Reshape(t.raw, Shape(newShape)), t.backend)
}

// Unsqueeze adds a dimension of size 1 at the specified position.
// Supports negative dim indexing.
//
// Example:
//
//	x := tensor.Randn[float32](Shape{2, 3}, backend)
//	y := x.Unsqueeze(1)  // Shape: [2, 1, 3]
//	z := x.Unsqueeze(-1) // Shape: [2, 3, 1]
func (t *Tensor[T, B]) Unsqueeze(dim int) *Tensor[T, B] {
	return New[T, B](t.backend.Unsqueeze(t.raw, dim), t.backend)
}

// Squeeze removes a dimension of size 1 at the specified position.
// Panics if the dimension size is not 1.
func (t *Tensor[T, B]) Squeeze(dim int) *Tensor[T, B] {
	return New[T, B](t.backend.Squeeze(t.raw, dim), t.backend)
}

// IndexSelect picks slices along dim using a 1-D int32 index tensor. The
// result has the shape of t with dim replaced by len(index); indices may
// repeat and need not be sorted.
//
// Example:
//
//	x := tensor.Randn[float32](Shape{5, 4, 4}, backend)
//	idx, _ := tensor.FromSlice([]int32{1, 4}, Shape{2}, backend)
//	y := x.IndexSelect(0, idx) // Shape: [2, 4, 4]; y[0] == x[1], y[1] == x[4]
func (t *Tensor[T, B]) IndexSelect(dim int, index *Tensor[int32, B]) *Tensor[T, B] {
	return New[T, B](t.backend.IndexSelect(t.raw, dim, index.raw), t.backend)
}

// RepeatInterleave repeats each slice along dim `repeats` times, keeping
// copies of the same slice adjacent.
//
// Example:
//
//	kv := tensor.Randn[float32](Shape{2, 8, 100, 128}, backend)
//	expanded := kv.RepeatInterleave(4, 1) // [2, 32, 100, 128]; heads 0-3 are copies of head 0
func (t *Tensor[T, B]) RepeatInterleave(repeats, dim int) *Tensor[T, B] {
	return New[T, B](t.backend.RepeatInterleave(t.raw, repeats, dim), t.backend)
}
