package nn

import "github.com/pkg/errors"

// Contract violations reported by CumulativeLinearAttention and its helpers.
// Returned errors wrap one of these with context; match with errors.Is.
var (
	ErrCausalWithMask    = errors.New("is_causal and an explicit mask are mutually exclusive")
	ErrMaskLength        = errors.New("mask must have exactly one entry per query position")
	ErrMaskOutOfRange    = errors.New("mask entry outside the dictionary range")
	ErrHeadsNotDivisible = errors.New("query heads must be a multiple of key/value heads")
	ErrInvalidRank       = errors.New("tensor rank too small")
	ErrInvalidDropout    = errors.New("dropout probability must be in [0, 1]")
	ErrInvalidScale      = errors.New("scale must be finite")
)
