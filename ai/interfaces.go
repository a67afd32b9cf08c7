package ai

import "context"

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// WishParser turns a free-text wish into a structured filter fragment.
// Implementations must be thread-safe for concurrent use.
type WishParser interface {
	// ParseWish analyzes a wish and extracts the filter constraints it
	// expresses. Every field of the returned fragment is optional; a field
	// left unset means the wish said nothing about it.
	// On model output that cannot be parsed, the fragment carries the raw
	// response in Raw and no constraint fields; callers must not treat such
	// a fragment as authoritative.
	// Returns an error only on transport failure.
	ParseWish(ctx context.Context, wish string) (*ParsedWish, error)
}

// ParsedWish is a best-effort filter fragment extracted from a free-text wish.
// Nil pointers and nil slices mean "the wish did not mention this".
type ParsedWish struct {
	// Gender is the desired gender ("boy", "girl", "unisex"), if expressed.
	Gender *string

	// Syllables is the desired exact syllable count, if expressed.
	Syllables *int

	// Deity is the desired deity affinity, if expressed.
	Deity *string

	// Sources lists acceptable textual source tags, if expressed.
	Sources []string

	// StartLetters lists acceptable starting letters, if expressed.
	StartLetters []string

	// Vibe is a single free-form style tag, if expressed.
	Vibe *string

	// Raw holds the unparseable model output when extraction failed.
	// A fragment with Raw set carries no authority for matching.
	Raw string
}

// Provider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages Embedder and WishParser
// instances, ensuring they share configuration and resources appropriately.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// WishParser returns the wish parsing service.
	// The returned WishParser is safe for concurrent use.
	WishParser() WishParser

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
