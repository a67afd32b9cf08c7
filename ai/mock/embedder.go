package mock

import (
	"context"
	"hash/fnv"
	"math"
)

// glossDim matches the production embedding width so tests exercise
// realistic vector sizes.
const glossDim = 384

// MockEmbedder is a test double for ai.Embedder. Without injected
// functions it derives a stable unit vector from each gloss, so the same
// text always embeds to the same point.
type MockEmbedder struct {
	// EmbedTextFunc overrides EmbedText when set.
	EmbedTextFunc func(ctx context.Context, text string) ([]float32, error)

	// EmbedTextsFunc overrides EmbedTexts when set.
	EmbedTextsFunc func(ctx context.Context, texts []string) ([][]float32, error)

	callCount int
}

// NewMockEmbedder creates a mock embedder with the default deterministic
// behavior.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

// EmbedText embeds a single gloss deterministically.
func (m *MockEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	m.callCount++

	if m.EmbedTextFunc != nil {
		return m.EmbedTextFunc(ctx, text)
	}

	return glossVector(text), nil
}

// EmbedTexts embeds each gloss deterministically, in input order.
func (m *MockEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	m.callCount++

	if m.EmbedTextsFunc != nil {
		return m.EmbedTextsFunc(ctx, texts)
	}

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vectors[i] = glossVector(text)
	}
	return vectors, nil
}

// CallCount returns the number of times any method was called.
func (m *MockEmbedder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockEmbedder) Reset() {
	m.callCount = 0
	m.EmbedTextFunc = nil
	m.EmbedTextsFunc = nil
}

// glossVector maps text to a unit vector: an FNV-64a digest of the text
// seeds an xorshift generator, whose stream fills the dimensions before
// normalization.
func glossVector(text string) []float32 {
	h := fnv.New64a()
	h.Write([]byte(text))
	state := h.Sum64() | 1 // xorshift must not start at zero

	vec := make([]float32, glossDim)
	var sum float64
	for i := range vec {
		state ^= state << 13
		state ^= state >> 7
		state ^= state << 17
		component := float64(int64(state%2001)-1000) / 1000.0
		vec[i] = float32(component)
		sum += component * component
	}

	if sum == 0 {
		vec[0] = 1
		return vec
	}

	inv := 1.0 / math.Sqrt(sum)
	for i := range vec {
		vec[i] = float32(float64(vec[i]) * inv)
	}
	return vec
}
