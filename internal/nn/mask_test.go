package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/cumattn/internal/backend/cpu"
	"github.com/born-ml/cumattn/internal/tensor"
)

func TestCausalIndexMask(t *testing.T) {
	backend := cpu.New()

	assert.Equal(t, []int32{1, 2}, CausalIndexMask(2, 3, backend).Data())
	assert.Equal(t, []int32{0, 1, 2, 3}, CausalIndexMask(4, 4, backend).Data())
	assert.Equal(t, []int32{9}, CausalIndexMask(1, 10, backend).Data())

	// More queries than dictionary positions: the head of the mask is negative.
	m := CausalIndexMask(3, 2, backend)
	assert.Equal(t, []int32{-1, 0, 1}, m.Data())
	assert.ErrorIs(t, ValidateIndexMask(m, 3, 2), ErrMaskOutOfRange)
}

func TestGlobalIndexMask(t *testing.T) {
	backend := cpu.New()

	m := GlobalIndexMask(3, 5, backend)
	assert.Equal(t, tensor.Shape{3}, m.Shape())
	assert.Equal(t, []int32{4, 4, 4}, m.Data())
}

func TestValidateIndexMask(t *testing.T) {
	backend := cpu.New()

	tests := []struct {
		name    string
		mask    []int32
		seqLen  int
		wantErr error
	}{
		{"Valid", []int32{0, 2, 1}, 3, nil},
		{"Negative", []int32{0, -1, 1}, 3, ErrMaskOutOfRange},
		{"TooLarge", []int32{0, 1, 3}, 3, ErrMaskOutOfRange},
		{"TooShort", []int32{0, 1}, 3, ErrMaskLength},
		{"TooLong", []int32{0, 1, 2, 2}, 3, ErrMaskLength},
		{"RangeCheckedFirst", []int32{0, 1, 2, 7}, 3, ErrMaskOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateIndexMask(indexMask(t, backend, tt.mask...), tt.seqLen, 3)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("Rank", func(t *testing.T) {
		m := fromSlice(t, backend, tensor.Shape{1, 2}, int32(0), 1)
		assert.ErrorIs(t, ValidateIndexMask(m, 2, 3), ErrMaskLength)
	})
}
