package tensor

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Operations never modify their operands; each returns a newly allocated
// RawTensor. Invalid arguments (incompatible shapes, bad axes, unsupported
// dtypes) panic with an error value.
type Backend interface {
	// Element-wise binary operations with NumPy broadcasting.
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor

	// MulScalar multiplies every element by scalar, which must match the dtype.
	MulScalar(x *RawTensor, scalar any) *RawTensor

	// BatchMatMul multiplies the last two axes as matrices; leading axes
	// are batch axes and broadcast against each other.
	// [..., M, K] @ [..., K, N] -> [..., M, N]
	BatchMatMul(a, b *RawTensor) *RawTensor

	// Shape operations.
	Reshape(x *RawTensor, newShape Shape) *RawTensor
	Unsqueeze(x *RawTensor, dim int) *RawTensor // add dimension of size 1
	Squeeze(x *RawTensor, dim int) *RawTensor   // remove dimension of size 1

	// Scan and indexing operations along a single axis.
	CumSum(x *RawTensor, dim int) *RawTensor                        // inclusive prefix sum
	IndexSelect(x *RawTensor, dim int, index *RawTensor) *RawTensor // pick slices by int32 index
	RepeatInterleave(x *RawTensor, repeats, dim int) *RawTensor     // repeat each slice contiguously

	// Dropout zeroes each element with probability p and scales the rest by 1/(1-p).
	Dropout(x *RawTensor, p float64) *RawTensor

	// Metadata
	Name() string
	Device() Device
}
