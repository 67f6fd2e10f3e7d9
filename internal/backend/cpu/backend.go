// Package cpu implements the pure Go CPU backend, using gonum BLAS kernels for
// the matrix and scan hot paths.
package cpu

import (
	"math/rand/v2"
	"sync"

	"github.com/gomlx/exceptions"

	"github.com/born-ml/cumattn/internal/parallel"
	"github.com/born-ml/cumattn/internal/tensor"
)

// CPUBackend implements tensor operations on CPU.
//
// It is safe for concurrent use: operations share no mutable state except the
// random source used by Dropout, which is guarded by a mutex.
type CPUBackend struct {
	device tensor.Device
	par    parallel.Config

	rngMu sync.Mutex
	rng   *rand.Rand
}

// New creates a new CPU backend whose random source is seeded from the
// runtime's entropy.
func New() *CPUBackend {
	return NewWithSeed(rand.Uint64()) //nolint:gosec // G404: dropout noise, not crypto
}

// NewWithSeed creates a CPU backend with a deterministic random source.
// Two backends created with the same seed produce the same dropout masks
// for the same sequence of calls.
func NewWithSeed(seed uint64) *CPUBackend {
	return &CPUBackend{
		device: tensor.CPU,
		par:    parallel.DefaultConfig(),
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), //nolint:gosec // G404
	}
}

// WithParallel sets the parallel execution config and returns the backend.
func (cpu *CPUBackend) WithParallel(cfg parallel.Config) *CPUBackend {
	cpu.par = cfg
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition with NumPy-style broadcasting.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("add", a, b, opAdd)
}

// Sub performs element-wise subtraction with broadcasting.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("sub", a, b, opSub)
}

// Mul performs element-wise multiplication with broadcasting.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.binary("mul", a, b, opMul)
}

// Reshape returns a copy of the tensor with a different shape.
func (cpu *CPUBackend) Reshape(t *tensor.RawTensor, newShape tensor.Shape) *tensor.RawTensor {
	if err := newShape.Validate(); err != nil {
		exceptions.Panicf("reshape: invalid shape: %v", err)
	}
	result, err := t.WithShape(newShape)
	if err != nil {
		exceptions.Panicf("reshape: %v", err)
	}
	return result
}

// checkSameDType panics unless a and b share a dtype.
func checkSameDType(op string, a, b *tensor.RawTensor) {
	if a.DType() != b.DType() {
		exceptions.Panicf("%s: dtype mismatch: %s vs %s", op, a.DType(), b.DType())
	}
}
