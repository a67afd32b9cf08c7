package openai

import (
	"context"
	"log/slog"

	"github.com/namankura/namankura/ai"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// MeaningEmbedder turns name-meaning glosses into vectors through an
// OpenAI-compatible embeddings endpoint. Glosses are short ("dawn, morning
// light"), so batches are cheap and a whole corpus embeds in a few calls.
type MeaningEmbedder struct {
	backend embeddings.Embedder
	logger  *slog.Logger
}

func newEmbedder(config *ai.Config) (*MeaningEmbedder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Local OpenAI-compatible servers ignore the token but the client
	// requires one.
	client, err := openai.New(
		openai.WithBaseURL(config.EmbeddingHost),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.EmbeddingModel),
	)
	if err != nil {
		return nil, err
	}

	// Meanings are single-line glosses; stripping newlines keeps corpus
	// text pasted with line breaks from skewing the vectors.
	backend, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return &MeaningEmbedder{
		backend: backend,
		logger:  slog.Default().With("component", "meaning-embedder"),
	}, nil
}

// NewEmbedder creates an embedder for name-meaning text using the provided
// configuration.
func NewEmbedder(config *ai.Config) (ai.Embedder, error) {
	return newEmbedder(config)
}

// EmbedText embeds a single meaning gloss.
func (e *MeaningEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		e.logger.Warn("embedding endpoint returned no vectors")
		return []float32{}, nil
	}
	return vectors[0], nil
}

// EmbedTexts embeds a batch of meaning glosses, one vector per input in
// input order.
func (e *MeaningEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	e.logger.Debug("embedding meaning glosses", "count", len(texts))

	vectors, err := e.backend.EmbedDocuments(ctx, texts)
	if err != nil {
		e.logger.Error("embedding request failed", "count", len(texts), "err", err)
		return nil, err
	}
	return vectors, nil
}
