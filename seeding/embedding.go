package seeding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/namankura/namankura/ai"
	"github.com/namankura/namankura/core"
	"github.com/namankura/namankura/storage"
)

// meaningProcessor generates meaning embeddings for name records.
type meaningProcessor struct {
	nameRepository storage.NameRepository
	embedder       ai.Embedder
	logger         *slog.Logger
}

var _ processor = (*meaningProcessor)(nil)

// newMeaningProcessor creates a new meaning embedding processor.
func newMeaningProcessor(nameRepository storage.NameRepository, embedder ai.Embedder, logger *slog.Logger) (processor, error) {
	if nameRepository == nil {
		return nil, fmt.Errorf("name repository required")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &meaningProcessor{
		nameRepository: nameRepository,
		embedder:       embedder,
		logger:         logger.With("processor", "meanings"),
	}, nil
}

// process generates meaning embeddings for the specified name records.
func (mp *meaningProcessor) process(ctx context.Context, ids ...core.ID) error {
	if len(ids) == 0 {
		return nil
	}
	mp.logger.Info("processing records for meaning embeddings", "records", len(ids))

	records, err := mp.nameRepository.GetNames(ctx, ids...)
	if err != nil {
		mp.logger.Error("error retrieving name records", "err", err)
		return err
	}
	if len(records) == 0 {
		return nil
	}

	texts := make([]string, len(records))
	for i, record := range records {
		texts[i] = record.Meaning
	}

	mp.logger.Debug("generating embeddings for name meanings", "records", len(texts))
	embeddings, err := mp.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		mp.logger.Error("error generating embeddings", "err", err)
		return err
	}

	if len(embeddings) != len(records) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(records), len(embeddings))
	}

	for i := range embeddings {
		records[i].Vector = embeddings[i]
	}

	_, err = mp.nameRepository.UpdateNames(ctx, records...)
	return err
}
