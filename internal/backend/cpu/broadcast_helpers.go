package cpu

import (
	"github.com/born-ml/cumattn/internal/tensor"
)

// computeBroadcastStridesForShape computes strides for reading a tensor of
// inShape while walking outShape. Dimensions that are broadcast (size 1 or
// missing on the left) get stride 0.
func computeBroadcastStridesForShape(inShape, outShape tensor.Shape) []int {
	outDim := len(outShape)
	strides := make([]int, outDim)
	offset := outDim - len(inShape)
	origStrides := inShape.ComputeStrides()

	for i := 0; i < outDim; i++ {
		inIdx := i - offset
		if inIdx < 0 || inShape[inIdx] == 1 {
			continue
		}
		strides[i] = origStrides[inIdx]
	}
	return strides
}

// computeFlatIndex maps a flat output index to the flat index of a
// broadcast input, given the output strides and the input's broadcast strides.
func computeFlatIndex(outIdx int, outStrides, inStrides []int) int {
	flatIdx := 0
	for i := range outStrides {
		coord := outIdx / outStrides[i]
		outIdx %= outStrides[i]
		flatIdx += coord * inStrides[i]
	}
	return flatIdx
}
