package nn

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"

	"github.com/born-ml/cumattn/internal/tensor"
)

// RepeatKV repeats key/value heads to match the number of query heads.
//
// The head axis is the third from the end ([..., n_kv, seq, dim]); each head
// is repeated nRep times contiguously, so query heads h*nRep .. h*nRep+nRep-1
// share key/value head h.
//
// Example:
//
//	kv:  [batch, 8, seq, head_dim]
//	out: RepeatKV(kv, 4) -> [batch, 32, seq, head_dim]
//
// Panics if kv has rank < 3 or nRep < 1.
func RepeatKV[T tensor.DType, B tensor.Backend](kv *tensor.Tensor[T, B], nRep int) *tensor.Tensor[T, B] {
	if kv.Rank() < 3 {
		exceptions.Panicf("RepeatKV: expected [..., n_kv, seq, head_dim], got shape %v", kv.Shape())
	}
	if nRep == 1 {
		// MHA case: no repeat needed
		return kv
	}
	return kv.RepeatInterleave(nRep, -3)
}

// groupFactor returns how many query heads share each key/value head.
func groupFactor(queryShape, keyShape, valueShape tensor.Shape) (int, error) {
	if err := checkRank(3, queryShape, keyShape, valueShape); err != nil {
		return 0, errors.WithMessage(err, "grouped-query attention")
	}

	nQ := queryShape.Dim(-3)
	nKV := keyShape.Dim(-3)
	if valueShape.Dim(-3) != nKV {
		return 0, errors.Wrapf(ErrHeadsNotDivisible, "key has %d heads but value has %d", nKV, valueShape.Dim(-3))
	}
	if nQ%nKV != 0 {
		return 0, errors.Wrapf(ErrHeadsNotDivisible, "%d query heads, %d key/value heads", nQ, nKV)
	}
	return nQ / nKV, nil
}
