// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/cumattn/internal/nn"
	"github.com/born-ml/cumattn/internal/tensor"
)

// CumulativeState carries the running key-value state of
// CumulativeLinearAttention across calls for streaming decoding.
//
// See internal/nn/kvcache.go for detailed documentation.
type CumulativeState[T tensor.Float, B tensor.Backend] = nn.CumulativeState[T, B]

// NewCumulativeState creates an empty state using cfg for every call.
//
// Example:
//
//	state, err := nn.NewCumulativeState[float32](nn.AttentionConfig{IsCausal: true}, backend)
func NewCumulativeState[T tensor.Float, B tensor.Backend](cfg AttentionConfig, backend B) (*CumulativeState[T, B], error) {
	return nn.NewCumulativeState[T](cfg, backend)
}
