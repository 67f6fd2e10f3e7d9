// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/cumattn/internal/backend/cpu"
	"github.com/born-ml/cumattn/internal/parallel"
	"github.com/born-ml/cumattn/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of the tensor operations,
// with gonum BLAS kernels for matrix products and prefix sums.
type Backend = internalcpu.CPUBackend

// ParallelConfig controls how the backend fans work out across goroutines.
type ParallelConfig = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend with a randomly seeded dropout source.
//
// Example:
//
//	import (
//	    "github.com/born-ml/cumattn/backend/cpu"
//	    "github.com/born-ml/cumattn/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithSeed creates a CPU backend whose dropout masks are reproducible:
// two backends with the same seed produce the same masks for the same
// sequence of operations.
func NewWithSeed(seed uint64) *Backend {
	return internalcpu.NewWithSeed(seed)
}

// DefaultParallelConfig returns the parallel settings New uses.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}
