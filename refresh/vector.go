package refresh

import "math"

// NormalizeVector scales a meaning embedding to unit length so the store's
// similarity search can rank by plain dot product. The input is never
// mutated. A zero vector cannot be normalized and comes back zero-filled;
// an empty or nil vector is returned as-is.
func NormalizeVector(v []float32) []float32 {
	if len(v) == 0 {
		return v
	}

	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}

	out := make([]float32, len(v))
	if sum == 0 {
		return out
	}

	inv := 1.0 / math.Sqrt(sum)
	for i, x := range v {
		out[i] = float32(float64(x) * inv)
	}
	return out
}
