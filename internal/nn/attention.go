package nn

import (
	"math"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/cumattn/internal/tensor"
)

// AttentionConfig configures CumulativeLinearAttention.
//
// The zero value is valid: no dropout, global (non-causal) mask, scale
// 1/sqrt(d_k), no head expansion.
type AttentionConfig struct {
	Dropout   float64 // Probability of zeroing key-value state entries, in [0, 1]
	IsCausal  bool    // Synthesize a causal index mask (excludes an explicit mask)
	Scale     float64 // Query scale (default: 1/sqrt(d_k))
	EnableGQA bool    // Repeat key/value heads to match query heads
}

// Validate checks the scalar options.
func (c AttentionConfig) Validate() error {
	if math.IsNaN(c.Dropout) || c.Dropout < 0 || c.Dropout > 1 {
		return errors.Wrapf(ErrInvalidDropout, "got %v", c.Dropout)
	}
	if math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) {
		return errors.Wrapf(ErrInvalidScale, "got %v", c.Scale)
	}
	return nil
}

// CumulativeLinearAttention computes linear attention over a running
// key-value state.
//
// For every dictionary position d the outer product key[d] ⊗ value[d] is
// formed and summed cumulatively along the dictionary axis. Query position i
// reads the cumulative state at dictionary position mask[i], plus kvCache:
//
//	state[i]  = kvCache + sum over d <= mask[i] of key[d] ⊗ value[d]
//	output[i] = (scale * query[i]) @ dropout(state[i])
//
// Shapes:
//
//	query:   [..., H_q, S, d_k]
//	key:     [..., H_kv, D, d_k]
//	value:   [..., H_kv, D, d_v]
//	mask:    [S] int32, each entry in [0, D); nil for the default mask
//	kvCache: broadcastable to [..., H, S, d_k, d_v]; nil for zeros [d_k, d_v]
//	output:         [..., H_q, S, d_v]
//	keyValueStore:  [..., H, S, d_k, d_v]
//
// Without an explicit mask, cfg.IsCausal selects CausalIndexMask and otherwise
// GlobalIndexMask is used, where every query reads the whole dictionary.
//
// Dropout is always applied to the state with probability cfg.Dropout; there
// is no inference mode. The returned keyValueStore already includes kvCache
// and the dropout noise, so it can be carried into the next call (see
// CumulativeState).
//
// Contract violations are returned as errors wrapping the package sentinels.
// Shape and dtype errors raised by the backend are returned unchanged.
// Inputs are never modified.
func CumulativeLinearAttention[T tensor.Float, B tensor.Backend](
	query, key, value *tensor.Tensor[T, B],
	mask *tensor.Tensor[int32, B],
	kvCache *tensor.Tensor[T, B],
	cfg AttentionConfig,
) (output, keyValueStore *tensor.Tensor[T, B], err error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if err := checkRank(2, query.Shape(), key.Shape(), value.Shape()); err != nil {
		return nil, nil, err
	}

	backend := query.Backend()
	seqLen, dictSize := query.Dim(-2), key.Dim(-2)

	scale := cfg.Scale
	if scale == 0 {
		scale = 1 / math.Sqrt(float64(query.Dim(-1)))
	}

	maskMode := "explicit"
	switch {
	case cfg.IsCausal:
		if mask != nil {
			return nil, nil, ErrCausalWithMask
		}
		mask = CausalIndexMask(seqLen, dictSize, backend)
		maskMode = "causal"
	case mask == nil:
		mask = GlobalIndexMask(seqLen, dictSize, backend)
		maskMode = "global"
	}
	if err := ValidateIndexMask(mask, seqLen, dictSize); err != nil {
		return nil, nil, err
	}

	nRep := 1
	if cfg.EnableGQA {
		if nRep, err = groupFactor(query.Shape(), key.Shape(), value.Shape()); err != nil {
			return nil, nil, err
		}
	}

	klog.V(2).Infof("cumulative linear attention: mask=%s query=%v key=%v value=%v gqa=%d scale=%g dropout=%g",
		maskMode, query.Shape(), key.Shape(), value.Shape(), nRep, scale, cfg.Dropout)

	err = exceptions.TryCatch[error](func() {
		key = RepeatKV(key, nRep)
		value = RepeatKV(value, nRep)
		if kvCache == nil {
			kvCache = tensor.Zeros[T](tensor.Shape{key.Dim(-1), value.Dim(-1)}, backend)
		}
		output, keyValueStore = cumulativeAttention(query.MulScalar(T(scale)), key, value, mask, kvCache, cfg.Dropout)
	})
	if err != nil {
		return nil, nil, err
	}
	return output, keyValueStore, nil
}

// cumulativeAttention runs the numeric part on already scaled queries and
// validated arguments.
func cumulativeAttention[T tensor.Float, B tensor.Backend](
	query, key, value *tensor.Tensor[T, B],
	mask *tensor.Tensor[int32, B],
	kvCache *tensor.Tensor[T, B],
	dropout float64,
) (output, store *tensor.Tensor[T, B]) {
	// [..., D, d_k, 1] @ [..., D, 1, d_v] -> [..., D, d_k, d_v]
	outer := key.Unsqueeze(-1).BatchMatMul(value.Unsqueeze(-2))

	store = outer.CumSum(-3).IndexSelect(-3, mask).Add(kvCache).Dropout(dropout)

	// [..., S, 1, d_k] @ [..., S, d_k, d_v] -> [..., S, 1, d_v]
	output = query.Unsqueeze(-2).BatchMatMul(store).Squeeze(-2)
	return output, store
}

// checkRank requires every shape to have at least minRank axes.
func checkRank(minRank int, shapes ...tensor.Shape) error {
	names := [...]string{"query", "key", "value"}
	for i, s := range shapes {
		if len(s) < minRank {
			return errors.Wrapf(ErrInvalidRank, "%s must have rank >= %d, got shape %v", names[i], minRank, s)
		}
	}
	return nil
}
