package tensor

// Add performs element-wise addition with broadcasting.
//
// Example:
//
//	a := tensor.Ones[float32](Shape{3, 1}, backend)
//	b := tensor.Ones[float32](Shape{3, 5}, backend)
//	c := a.Add(b) // Shape: [3, 5] (broadcasted)
func (t *Tensor[T, B]) Add(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Add(t.raw, other.raw), t.backend)
}

// Sub performs element-wise subtraction with broadcasting.
func (t *Tensor[T, B]) Sub(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Sub(t.raw, other.raw), t.backend)
}

// Mul performs element-wise multiplication with broadcasting.
func (t *Tensor[T, B]) Mul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.Mul(t.raw, other.raw), t.backend)
}

// MulScalar multiplies each element of the tensor by a scalar value.
//
// Example:
//
//	y := x.MulScalar(0.5)
func (t *Tensor[T, B]) MulScalar(scalar T) *Tensor[T, B] {
	return New[T, B](t.backend.MulScalar(t.raw, scalar), t.backend)
}

// BatchMatMul performs batched matrix multiplication over the last two axes.
// Leading (batch) axes broadcast.
//
// Example:
//
//	q := tensor.Randn[float32](Shape{2, 8, 10, 1, 64}, backend)
//	s := tensor.Randn[float32](Shape{2, 8, 10, 64, 32}, backend)
//	out := q.BatchMatMul(s) // Shape: [2, 8, 10, 1, 32]
func (t *Tensor[T, B]) BatchMatMul(other *Tensor[T, B]) *Tensor[T, B] {
	return New[T, B](t.backend.BatchMatMul(t.raw, other.raw), t.backend)
}

// CumSum returns the inclusive prefix sum along dim.
// Supports negative dim indexing.
//
// Example:
//
//	x := [[1, 2, 3], [4, 5, 6]]
//	x.CumSum(-1) // [[1, 3, 6], [4, 9, 15]]
//	x.CumSum(0)  // [[1, 2, 3], [5, 7, 9]]
func (t *Tensor[T, B]) CumSum(dim int) *Tensor[T, B] {
	return New[T, B](t.backend.CumSum(t.raw, dim), t.backend)
}

// Dropout zeroes each element with probability p and scales the survivors
// by 1/(1-p). Randomness comes from the backend.
func (t *Tensor[T, B]) Dropout(p float64) *Tensor[T, B] {
	return New[T, B](t.backend.Dropout(t.raw, p), t.backend)
}
