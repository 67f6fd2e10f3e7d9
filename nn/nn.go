// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/cumattn/internal/nn"
	"github.com/born-ml/cumattn/internal/tensor"
)

// AttentionConfig configures CumulativeLinearAttention.
// The zero value is valid: no dropout, global mask, scale 1/sqrt(d_k), no GQA.
type AttentionConfig = nn.AttentionConfig

// Errors returned for invalid arguments. Match with errors.Is.
var (
	ErrCausalWithMask    = nn.ErrCausalWithMask
	ErrMaskLength        = nn.ErrMaskLength
	ErrMaskOutOfRange    = nn.ErrMaskOutOfRange
	ErrHeadsNotDivisible = nn.ErrHeadsNotDivisible
	ErrInvalidRank       = nn.ErrInvalidRank
	ErrInvalidDropout    = nn.ErrInvalidDropout
	ErrInvalidScale      = nn.ErrInvalidScale
)

// CumulativeLinearAttention computes linear attention over a running
// key-value state.
//
// Shapes:
//
//	query:   [..., H_q, S, d_k]
//	key:     [..., H_kv, D, d_k]
//	value:   [..., H_kv, D, d_v]
//	mask:    [S] int32 in [0, D), or nil
//	kvCache: broadcastable to keyValueStore, or nil for zeros
//	output:        [..., H_q, S, d_v]
//	keyValueStore: [..., H, S, d_k, d_v]
//
// See internal/nn.CumulativeLinearAttention for detailed documentation.
func CumulativeLinearAttention[T tensor.Float, B tensor.Backend](
	query, key, value *tensor.Tensor[T, B],
	mask *tensor.Tensor[int32, B],
	kvCache *tensor.Tensor[T, B],
	cfg AttentionConfig,
) (output, keyValueStore *tensor.Tensor[T, B], err error) {
	return nn.CumulativeLinearAttention(query, key, value, mask, kvCache, cfg)
}
