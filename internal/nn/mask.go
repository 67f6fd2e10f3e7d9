package nn

import (
	"github.com/pkg/errors"

	"github.com/born-ml/cumattn/internal/tensor"
)

// CausalIndexMask returns the causal index mask for seqLen queries over a
// dictionary of dictSize positions: mask[i] = dictSize - seqLen + i.
//
// The queries are aligned to the end of the dictionary, so the last query
// reads the state accumulated over the whole dictionary. When seqLen exceeds
// dictSize the first entries are negative and ValidateIndexMask rejects them.
//
// Example:
//
//	nn.CausalIndexMask(2, 3, backend) // [1, 2]
func CausalIndexMask[B tensor.Backend](seqLen, dictSize int, backend B) *tensor.Tensor[int32, B] {
	return tensor.Arange[int32](int32(dictSize-seqLen), int32(dictSize), backend)
}

// GlobalIndexMask returns the non-causal default mask: every query reads the
// state accumulated over the whole dictionary (mask[i] = dictSize - 1).
func GlobalIndexMask[B tensor.Backend](seqLen, dictSize int, backend B) *tensor.Tensor[int32, B] {
	return tensor.Full[int32](tensor.Shape{seqLen}, int32(dictSize-1), backend)
}

// ValidateIndexMask checks that mask holds one dictionary index per query
// position and that every index lies in [0, dictSize).
//
// The range is checked before the length, so a mask that is both too long and
// out of range reports ErrMaskOutOfRange.
func ValidateIndexMask[B tensor.Backend](mask *tensor.Tensor[int32, B], seqLen, dictSize int) error {
	for i, idx := range mask.Data() {
		if idx < 0 || int(idx) >= dictSize {
			return errors.Wrapf(ErrMaskOutOfRange, "mask[%d] = %d, want [0, %d)", i, idx, dictSize)
		}
	}
	if mask.Rank() != 1 || mask.Dim(0) != seqLen {
		return errors.Wrapf(ErrMaskLength, "mask shape %v, want [%d]", mask.Shape(), seqLen)
	}
	return nil
}
