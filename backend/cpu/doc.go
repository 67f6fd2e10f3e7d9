// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - gonum BLAS (Gemm, Axpy) for batched matrix products and prefix sums
//   - Float32 and Float64 support
//   - NumPy-compatible broadcasting
//   - Seedable dropout (NewWithSeed)
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
//	    backend := cpu.NewWithSeed(42)
//
//	    q := tensor.Randn[float32](tensor.Shape{1, 8, 4, 64}, backend)
//	    k := tensor.Randn[float32](tensor.Shape{1, 2, 4, 64}, backend)
//	    v := tensor.Randn[float32](tensor.Shape{1, 2, 4, 64}, backend)
//	    out, state, err := nn.CumulativeLinearAttention(q, k, v, nil, nil,
//	        nn.AttentionConfig{IsCausal: true, EnableGQA: true})
//	}
//
// # Parallelism
//
// BatchMatMul and CumSum split independent batches across goroutines once
// there is enough work. Use WithParallel to tune or disable this.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Operations share no mutable
// state except the dropout random source, which is guarded by a mutex.
package cpu
