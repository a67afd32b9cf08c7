package mock

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/namankura/namankura/ai"
)

// MockWishParser is a test double for ai.WishParser.
// It allows custom behavior injection via function fields.
type MockWishParser struct {
	// ParseWishFunc is called by ParseWish if set.
	// If nil, uses default keyword-based extraction.
	ParseWishFunc func(ctx context.Context, wish string) (*ai.ParsedWish, error)

	callCount int
}

// NewMockWishParser creates a mock wish parser with default behavior.
// Note: Returns concrete type to allow test assertions via GetMockParser().
func NewMockWishParser() *MockWishParser {
	return &MockWishParser{}
}

// ParseWish extracts a simple mock fragment from the wish text.
// Default behavior: recognizes literal gender words, a leading digit as a
// syllable count, and known deity names. Everything else is left unset.
func (m *MockWishParser) ParseWish(ctx context.Context, text string) (*ai.ParsedWish, error) {
	m.callCount++

	if m.ParseWishFunc != nil {
		return m.ParseWishFunc(ctx, text)
	}

	frag := &ai.ParsedWish{}
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?;:\"'()[]{}")
		if word == "" {
			continue
		}

		if slices.Contains(ai.Genders, word) && frag.Gender == nil {
			g := word
			frag.Gender = &g
			continue
		}

		if n, err := strconv.Atoi(word); err == nil && n > 0 && frag.Syllables == nil {
			frag.Syllables = &n
			continue
		}

		for _, deity := range ai.Deities {
			if strings.EqualFold(deity, word) && frag.Deity == nil {
				d := deity
				frag.Deity = &d
			}
		}
	}

	return frag, nil
}

// CallCount returns the number of times ParseWish was called.
func (m *MockWishParser) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockWishParser) Reset() {
	m.callCount = 0
	m.ParseWishFunc = nil
}
