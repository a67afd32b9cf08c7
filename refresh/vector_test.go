package refresh

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func vectorMagnitude(v []float32) float64 {
	var sum float64
	for _, val := range v {
		sum += float64(val) * float64(val)
	}
	return math.Sqrt(sum)
}

func TestNormalizeVector(t *testing.T) {
	tests := []struct {
		name  string
		input []float32
	}{
		{"unit axis", []float32{1.0, 0.0, 0.0}},
		{"uniform", []float32{1.0, 1.0, 1.0, 1.0}},
		{"mixed signs", []float32{3.0, -4.0}},
		{"small values", []float32{0.001, 0.002, 0.003}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeVector(tt.input)
			assert.Len(t, result, len(tt.input))
			assert.InDelta(t, 1.0, vectorMagnitude(result), 0.0001)
		})
	}
}

func TestNormalizeVector_ZeroVector(t *testing.T) {
	result := NormalizeVector([]float32{0.0, 0.0, 0.0})
	assert.Equal(t, []float32{0.0, 0.0, 0.0}, result)
}

func TestNormalizeVector_Empty(t *testing.T) {
	assert.Empty(t, NormalizeVector([]float32{}))
	assert.Nil(t, NormalizeVector(nil))
}

func TestNormalizeVector_DoesNotMutateInput(t *testing.T) {
	input := []float32{3.0, 4.0}
	_ = NormalizeVector(input)
	assert.Equal(t, []float32{3.0, 4.0}, input)
}
