// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/cumattn/internal/tensor"

// Backend defines the interface that all compute backends must implement.
//
// Implementations:
//   - backend/cpu: Pure Go, gonum BLAS for matrix products and scans
//
// Backends must never modify their operands and must panic with an error
// value on invalid arguments.
//
// Example:
//
//	import (
//	    "github.com/born-ml/cumattn/backend/cpu"
//	    "github.com/born-ml/cumattn/tensor"
//	)
//
//	backend := cpu.New()
//	x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//	z := x.Add(y) // Uses backend.Add under the hood
type Backend = tensor.Backend
