package seeding

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/namankura/namankura/ai"
	"github.com/namankura/namankura/core"
	"github.com/namankura/namankura/storage"
	"github.com/panjf2000/ants/v2"
)

// Pipeline orchestrates loading name records into the corpus.
// Records are validated and stored synchronously, so corpus order is fixed
// the moment Seed returns; meaning embeddings are generated asynchronously
// on a worker pool.
type Pipeline struct {
	nameRepository storage.NameRepository
	embeddingPool  *ants.Pool
	meaningProc    processor
	logger         *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for embedding generation.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.embeddingPool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new seeding pipeline.
func NewPipeline(
	nameRepository storage.NameRepository,
	provider ai.Provider,
	opts ...Option,
) (*Pipeline, error) {
	if nameRepository == nil {
		return nil, ErrNameRepositoryRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		nameRepository: nameRepository,
		embeddingPool:  pool,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	meaningProc, err := newMeaningProcessor(nameRepository, provider.Embedder(), p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}
	p.meaningProc = meaningProc

	return p, nil
}

// Seed validates and stores name records, then schedules meaning-embedding
// enrichment in the background. Records enter the corpus in argument order;
// re-seeding an existing name overwrites it in place.
// Errors during async enrichment are logged but do not fail the seeding.
func (p *Pipeline) Seed(ctx context.Context, records ...*core.NameRecord) ([]*core.NameRecord, error) {
	if len(records) == 0 {
		return nil, nil
	}

	for _, record := range records {
		if err := core.ValidateNameRecord(record); err != nil {
			return nil, err
		}
	}

	added, err := p.nameRepository.AddNames(ctx, records...)
	if err != nil {
		return nil, err
	}

	ids := make([]core.ID, len(added))
	for i, record := range added {
		ids[i] = record.Id
	}

	p.embeddingPool.Submit(func() {
		if err := p.meaningProc.process(context.Background(), ids...); err != nil {
			p.logger.Error("error processing meaning embeddings", "err", err)
		}
	})

	return added, nil
}

// SeedSync behaves like Seed but runs the embedding enrichment inline.
// Intended for one-shot seeding tools where the process exits right after.
func (p *Pipeline) SeedSync(ctx context.Context, records ...*core.NameRecord) ([]*core.NameRecord, error) {
	if len(records) == 0 {
		return nil, nil
	}

	for _, record := range records {
		if err := core.ValidateNameRecord(record); err != nil {
			return nil, err
		}
	}

	added, err := p.nameRepository.AddNames(ctx, records...)
	if err != nil {
		return nil, err
	}

	ids := make([]core.ID, len(added))
	for i, record := range added {
		ids[i] = record.Id
	}

	if err := p.meaningProc.process(ctx, ids...); err != nil {
		return nil, err
	}

	return added, nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
}
