// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/cumattn/internal/nn"
	"github.com/born-ml/cumattn/internal/tensor"
)

// RepeatKV repeats key/value heads (axis -3) nRep times contiguously so that
// query heads h*nRep .. h*nRep+nRep-1 share key/value head h.
//
// Example:
//
//	kv:  [batch, 8, seq, head_dim]
//	out: nn.RepeatKV(kv, 4) // [batch, 32, seq, head_dim]
func RepeatKV[T tensor.DType, B tensor.Backend](kv *tensor.Tensor[T, B], nRep int) *tensor.Tensor[T, B] {
	return nn.RepeatKV(kv, nRep)
}
