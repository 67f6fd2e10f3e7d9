package nn

import (
	"github.com/gomlx/exceptions"

	"github.com/born-ml/cumattn/internal/tensor"
)

// CumulativeState carries the running key-value state of
// CumulativeLinearAttention across calls, for streaming or chunked decoding.
//
// Unlike a softmax KV cache, which must keep every past key and value, the
// cumulative state has a fixed size: one [d_k, d_v] matrix per head, holding
// the sum of all outer products seen so far.
//
// After each Forward the state at the last query position is kept and fed
// back as the next call's kvCache. With IsCausal set and one query per new
// dictionary position, running a sequence chunk by chunk gives the same
// outputs as a single call over the whole sequence (when Dropout is 0; with
// dropout the noise is folded into the carried state).
//
// Example:
//
//	state, _ := nn.NewCumulativeState[float32](nn.AttentionConfig{IsCausal: true}, backend)
//	for _, chunk := range chunks {
//	    out, err := state.Forward(chunk.Q, chunk.K, chunk.V)
//	    ...
//	}
type CumulativeState[T tensor.Float, B tensor.Backend] struct {
	cfg     AttentionConfig
	state   *tensor.Tensor[T, B] // [..., H, 1, d_k, d_v]; nil before the first Forward
	length  int                  // Dictionary positions consumed
	backend B
}

// NewCumulativeState creates an empty state. The config applies to every
// Forward call.
func NewCumulativeState[T tensor.Float, B tensor.Backend](cfg AttentionConfig, backend B) (*CumulativeState[T, B], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &CumulativeState[T, B]{cfg: cfg, backend: backend}, nil
}

// Forward attends over the new chunk of keys and values on top of the carried
// state and advances the state past them.
//
// Parameters:
//   - query: [..., H_q, S, d_k]
//   - key: [..., H_kv, D, d_k]
//   - value: [..., H_kv, D, d_v]
//
// Returns the attention output [..., H_q, S, d_v]. On error the state is left
// unchanged.
func (c *CumulativeState[T, B]) Forward(query, key, value *tensor.Tensor[T, B]) (*tensor.Tensor[T, B], error) {
	output, store, err := CumulativeLinearAttention(query, key, value, nil, c.state, c.cfg)
	if err != nil {
		return nil, err
	}

	err = exceptions.TryCatch[error](func() {
		last := tensor.Full[int32](tensor.Shape{1}, int32(store.Dim(-3)-1), c.backend)
		c.state = store.IndexSelect(-3, last)
	})
	if err != nil {
		return nil, err
	}
	c.length += key.Dim(-2)
	return output, nil
}

// State returns the carried key-value state [..., H, 1, d_k, d_v], or nil if
// nothing has been consumed yet.
func (c *CumulativeState[T, B]) State() *tensor.Tensor[T, B] {
	return c.state
}

// Len returns the number of dictionary positions consumed since the last Reset.
func (c *CumulativeState[T, B]) Len() int {
	return c.length
}

// Reset clears the state for a new sequence.
func (c *CumulativeState[T, B]) Reset() {
	c.state = nil
	c.length = 0
}
