// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/cumattn/internal/nn"
	"github.com/born-ml/cumattn/internal/tensor"
)

// CausalIndexMask returns mask[i] = dictSize - seqLen + i, aligning the
// queries to the end of the dictionary.
//
// Example:
//
//	nn.CausalIndexMask(2, 3, backend) // [1, 2]
func CausalIndexMask[B tensor.Backend](seqLen, dictSize int, backend B) *tensor.Tensor[int32, B] {
	return nn.CausalIndexMask(seqLen, dictSize, backend)
}

// GlobalIndexMask returns mask[i] = dictSize - 1: every query reads the
// whole dictionary. This is the default when no mask is given.
func GlobalIndexMask[B tensor.Backend](seqLen, dictSize int, backend B) *tensor.Tensor[int32, B] {
	return nn.GlobalIndexMask(seqLen, dictSize, backend)
}

// ValidateIndexMask checks that mask has seqLen entries, each in [0, dictSize).
func ValidateIndexMask[B tensor.Backend](mask *tensor.Tensor[int32, B], seqLen, dictSize int) error {
	return nn.ValidateIndexMask(mask, seqLen, dictSize)
}
