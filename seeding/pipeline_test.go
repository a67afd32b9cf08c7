package seeding

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/namankura/namankura/ai/mock"
	"github.com/namankura/namankura/core"
	"github.com/namankura/namankura/corpus"
	"github.com/namankura/namankura/storage"
	"github.com/namankura/namankura/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRepository(t *testing.T) storage.NameRepository {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestNewPipeline(t *testing.T) {
	repo := setupTestRepository(t)
	provider := mock.NewMockProvider()

	t.Run("valid pipeline", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, provider)
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		defer pipeline.Release()

		assert.NotNil(t, pipeline.nameRepository)
		assert.NotNil(t, pipeline.embeddingPool)
		assert.NotNil(t, pipeline.meaningProc)
	})

	t.Run("nil name repository", func(t *testing.T) {
		_, err := NewPipeline(nil, provider)
		assert.Equal(t, ErrNameRepositoryRequired, err)
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := NewPipeline(repo, nil)
		assert.Equal(t, ErrAIProviderRequired, err)
	})
}

func TestPipeline_WithOptions(t *testing.T) {
	repo := setupTestRepository(t)
	provider := mock.NewMockProvider()

	t.Run("with pool size", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, provider, WithPoolSize(4))
		require.NoError(t, err)
		defer pipeline.Release()

		assert.NotNil(t, pipeline.embeddingPool)
	})

	t.Run("with pool size zero defaults to 1", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, provider, WithPoolSize(0))
		require.NoError(t, err)
		defer pipeline.Release()
	})

	t.Run("with custom logger", func(t *testing.T) {
		logger := slog.Default()
		pipeline, err := NewPipeline(repo, provider, WithLogger(logger))
		require.NoError(t, err)
		defer pipeline.Release()

		assert.Equal(t, logger, pipeline.logger)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, provider, WithLogger(nil))
		require.NoError(t, err)
		defer pipeline.Release()

		assert.NotNil(t, pipeline.logger)
	})
}

func TestPipeline_SeedSync(t *testing.T) {
	repo := setupTestRepository(t)
	provider := mock.NewMockProvider()

	pipeline, err := NewPipeline(repo, provider, WithPoolSize(1))
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()

	added, err := pipeline.SeedSync(ctx, corpus.SeedRecords()...)
	require.NoError(t, err)
	require.Len(t, added, 5)

	// Corpus order matches seed order.
	all, err := repo.ListNames(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, "Vihaan", all[0].Name)
	assert.Equal(t, "Harish", all[4].Name)

	// Every record got a meaning embedding.
	for _, record := range all {
		assert.NotEmpty(t, record.Vector, record.Name)
	}
}

func TestPipeline_SeedAsyncEmbeddings(t *testing.T) {
	repo := setupTestRepository(t)
	provider := mock.NewMockProvider()

	pipeline, err := NewPipeline(repo, provider, WithPoolSize(1))
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()

	added, err := pipeline.Seed(ctx, corpus.SeedRecords()...)
	require.NoError(t, err)
	require.Len(t, added, 5)

	// Records are queryable immediately, before enrichment lands.
	all, err := repo.ListNames(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)

	// Give the async processor time to complete
	time.Sleep(200 * time.Millisecond)

	all, err = repo.ListNames(ctx)
	require.NoError(t, err)
	for _, record := range all {
		assert.NotEmpty(t, record.Vector, record.Name)
	}
}

func TestPipeline_SeedRejectsInvalidRecord(t *testing.T) {
	repo := setupTestRepository(t)
	provider := mock.NewMockProvider()

	pipeline, err := NewPipeline(repo, provider)
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()

	bad := &core.NameRecord{Name: "", Gender: core.GenderBoy, Syllables: 2}
	_, err = pipeline.Seed(ctx, bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidNameRecord)

	// Nothing was stored.
	all, err := repo.ListNames(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPipeline_SeedEmptyBatch(t *testing.T) {
	repo := setupTestRepository(t)
	provider := mock.NewMockProvider()

	pipeline, err := NewPipeline(repo, provider)
	require.NoError(t, err)
	defer pipeline.Release()

	added, err := pipeline.Seed(context.Background())
	require.NoError(t, err)
	assert.Nil(t, added)
}

func TestPipeline_SeedSyncEmbedderError(t *testing.T) {
	repo := setupTestRepository(t)
	provider := mock.NewMockProvider()
	mp := provider.(*mock.MockProvider)
	mp.GetMockEmbedder().EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("embedder down")
	}

	pipeline, err := NewPipeline(repo, provider)
	require.NoError(t, err)
	defer pipeline.Release()

	_, err = pipeline.SeedSync(context.Background(), corpus.SeedRecords()...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedder down")
}

func TestPipeline_Release(t *testing.T) {
	repo := setupTestRepository(t)
	provider := mock.NewMockProvider()

	pipeline, err := NewPipeline(repo, provider)
	require.NoError(t, err)

	pipeline.Release()
	// Multiple releases should not panic
	pipeline.Release()
}
