package cpu

import (
	"math"

	"github.com/gomlx/exceptions"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/born-ml/cumattn/internal/tensor"
)

// Dropout zeroes each element of x independently with probability p and
// scales the surviving elements by 1/(1-p), so the expected value of every
// element is unchanged.
//
// p = 0 returns a copy of x; p = 1 returns zeros. The keep mask is drawn from
// a Bernoulli(1-p) distribution over the backend's random source, so results
// are reproducible for backends created with NewWithSeed.
func (cpu *CPUBackend) Dropout(x *tensor.RawTensor, p float64) *tensor.RawTensor {
	if math.IsNaN(p) || p < 0 || p > 1 {
		exceptions.Panicf("dropout: probability must be in [0, 1], got %v", p)
	}
	if !x.DType().IsFloat() {
		exceptions.Panicf("dropout: unsupported dtype %s (only float32/float64 supported)", x.DType())
	}

	if p == 0 {
		return x.Clone()
	}
	result := tensor.MustNewRaw("dropout", x.Shape(), x.DType(), cpu.device)
	if p == 1 {
		return result
	}

	keep := cpu.bernoulliMask(x.NumElements(), 1-p)
	scale := 1 / (1 - p)
	switch x.DType() {
	case tensor.Float32:
		applyDropout(result.AsFloat32(), x.AsFloat32(), keep, float32(scale))
	case tensor.Float64:
		applyDropout(result.AsFloat64(), x.AsFloat64(), keep, scale)
	}
	return result
}

// bernoulliMask draws n keep/drop decisions, each kept with probability keepProb.
func (cpu *CPUBackend) bernoulliMask(n int, keepProb float64) []bool {
	cpu.rngMu.Lock()
	defer cpu.rngMu.Unlock()

	dist := distuv.Bernoulli{P: keepProb, Src: cpu.rng}
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = dist.Rand() == 1
	}
	return mask
}

func applyDropout[T float32 | float64](dst, src []T, keep []bool, scale T) {
	for i, v := range src {
		if keep[i] {
			dst[i] = v * scale
		}
	}
}
