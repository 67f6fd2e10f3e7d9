package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataType(t *testing.T) {
	tests := []struct {
		dtype   DataType
		size    int
		name    string
		isFloat bool
	}{
		{Float32, 4, "float32", true},
		{Float64, 8, "float64", true},
		{Int32, 4, "int32", false},
		{Int64, 8, "int64", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.size, tt.dtype.Size())
			assert.Equal(t, tt.name, tt.dtype.String())
			assert.Equal(t, tt.isFloat, tt.dtype.IsFloat())
		})
	}

	assert.Equal(t, Float32, inferDataType[float32]())
	assert.Equal(t, Int32, inferDataType[int32]())
	assert.Panics(t, func() { DataType(42).Size() })
}

func TestNewRaw(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float64, CPU)
	require.NoError(t, err)

	assert.Equal(t, Shape{2, 3}, raw.Shape())
	assert.Equal(t, []int{3, 1}, raw.Strides())
	assert.Equal(t, Float64, raw.DType())
	assert.Equal(t, CPU, raw.Device())
	assert.Equal(t, 6, raw.NumElements())
	assert.Equal(t, 48, raw.ByteSize())
	assert.Equal(t, make([]float64, 6), raw.AsFloat64())

	_, err = NewRaw(Shape{2, 0}, Float32, CPU)
	assert.Error(t, err)
	assert.Panics(t, func() { MustNewRaw("test", Shape{0}, Float32, CPU) })
}

func TestRawTensor_ShapeIsCopied(t *testing.T) {
	shape := Shape{2, 2}
	raw, err := NewRaw(shape, Float32, CPU)
	require.NoError(t, err)

	shape[0] = 9
	assert.Equal(t, Shape{2, 2}, raw.Shape())
}

func TestRawTensor_Clone(t *testing.T) {
	raw, err := NewRaw(Shape{3}, Int32, CPU)
	require.NoError(t, err)
	copy(raw.AsInt32(), []int32{1, 2, 3})

	clone := raw.Clone()
	clone.AsInt32()[0] = 100
	assert.Equal(t, []int32{1, 2, 3}, raw.AsInt32())
	assert.Equal(t, []int32{100, 2, 3}, clone.AsInt32())
}

func TestRawTensor_WithShape(t *testing.T) {
	raw, err := NewRaw(Shape{2, 3}, Float32, CPU)
	require.NoError(t, err)
	copy(raw.AsFloat32(), []float32{1, 2, 3, 4, 5, 6})

	reshaped, err := raw.WithShape(Shape{3, 2})
	require.NoError(t, err)
	assert.Equal(t, Shape{3, 2}, reshaped.Shape())
	assert.Equal(t, []int{2, 1}, reshaped.Strides())
	assert.Equal(t, raw.AsFloat32(), reshaped.AsFloat32())

	reshaped.AsFloat32()[0] = 0
	assert.Equal(t, float32(1), raw.AsFloat32()[0])

	_, err = raw.WithShape(Shape{4})
	assert.Error(t, err)
}

func TestRawTensor_TypedViewMismatch(t *testing.T) {
	raw, err := NewRaw(Shape{2}, Float32, CPU)
	require.NoError(t, err)

	assert.Panics(t, func() { raw.AsFloat64() })
	assert.Panics(t, func() { raw.AsInt32() })
	assert.NotPanics(t, func() { raw.AsFloat32() })
}
