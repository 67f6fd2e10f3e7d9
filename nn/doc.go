// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides cumulative linear attention.
//
// # Overview
//
// Cumulative linear attention replaces the softmax over attention scores with
// a running sum of key-value outer products. Query position i reads the
// accumulated state at dictionary position mask[i]:
//
//	state[i]  = kvCache + sum over d <= mask[i] of key[d] ⊗ value[d]
//	output[i] = (scale * query[i]) @ dropout(state[i])
//
// This package contains:
//   - CumulativeLinearAttention: the operation itself
//   - AttentionConfig: dropout, causal masking, scale and GQA options
//   - CumulativeState: carries the state across calls for streaming
//   - CausalIndexMask, GlobalIndexMask, ValidateIndexMask: mask helpers
//   - RepeatKV: grouped-query head expansion
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/cumattn/backend/cpu"
//	    "github.com/born-ml/cumattn/nn"
//	    "github.com/born-ml/cumattn/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    q := tensor.Randn[float32](tensor.Shape{2, 8, 16, 64}, backend)
//	    k := tensor.Randn[float32](tensor.Shape{2, 8, 16, 64}, backend)
//	    v := tensor.Randn[float32](tensor.Shape{2, 8, 16, 64}, backend)
//
//	    out, kv, err := nn.CumulativeLinearAttention(q, k, v, nil, nil,
//	        nn.AttentionConfig{IsCausal: true})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    _ = kv // [2, 8, 16, 64, 64]
//	}
//
// # Streaming
//
//	state, _ := nn.NewCumulativeState[float32](nn.AttentionConfig{IsCausal: true}, backend)
//	for _, chunk := range chunks {
//	    out, err := state.Forward(chunk.Q, chunk.K, chunk.V)
//	}
//
// # Dropout
//
// AttentionConfig.Dropout is applied on every call; there is no separate
// inference mode. Set it to 0 for deterministic results, or use a seeded
// backend (cpu.NewWithSeed) for reproducible ones.
//
// # Errors
//
// Invalid arguments are reported as errors wrapping ErrCausalWithMask,
// ErrMaskLength, ErrMaskOutOfRange, ErrHeadsNotDivisible, ErrInvalidRank,
// ErrInvalidDropout or ErrInvalidScale. Shape errors from the backend are
// returned as they are.
package nn
