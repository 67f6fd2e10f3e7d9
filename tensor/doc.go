// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the tensor types consumed by the cumulative
// attention operations in package nn.
//
// # Overview
//
// The package is deliberately small. It offers:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting for element-wise operations
//   - Batched matrix multiplication over the last two axes
//   - Single-axis primitives: CumSum, IndexSelect, RepeatInterleave
//   - Dropout driven by the backend's random source
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/cumattn/backend/cpu"
//	    "github.com/born-ml/cumattn/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    k := tensor.Randn[float32](tensor.Shape{2, 8, 16, 64}, backend)
//	    v := tensor.Randn[float32](tensor.Shape{2, 8, 16, 64}, backend)
//
//	    // Running sum of key-value outer products along the sequence axis.
//	    kv := k.Unsqueeze(-1).BatchMatMul(v.Unsqueeze(-2)).CumSum(-3)
//	}
//
// # Memory
//
// Operations never modify their operands; every result owns a fresh buffer.
// Data returns a view of a tensor's own buffer, so writing through it changes
// only that tensor.
//
// # Errors
//
// Tensor methods panic on invalid arguments (incompatible shapes, bad axes,
// unsupported dtypes). The panic value is an error created with
// github.com/gomlx/exceptions, so callers can recover it with
// exceptions.TryCatch. The nn package does this and returns the error.
package tensor
