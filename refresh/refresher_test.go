package refresh

import (
	"bytes"
	"context"
	"errors"
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

func seededRepo(t *testing.T) storage.NameRepository {
	t.Helper()

	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	_, err = repo.AddNames(context.Background(), corpus.SeedRecords()...)
	require.NoError(t, err)
	return repo
}

func TestRefresherRun(t *testing.T) {
	repo := seededRepo(t)
	embedder := mock.NewMockEmbedder()

	var out bytes.Buffer
	refresher := NewRefresher(repo, embedder, nil, &out)

	err := refresher.Run(context.Background())
	require.NoError(t, err)

	records, err := repo.ListNames(context.Background())
	require.NoError(t, err)
	for _, record := range records {
		require.NotEmpty(t, record.Vector, record.Name)
		assert.InDelta(t, 1.0, vectorMagnitude(record.Vector), 0.001, record.Name)
	}

	assert.Contains(t, out.String(), "Refresh complete")
}

func TestRefresherRun_EmptyCorpus(t *testing.T) {
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})

	var out bytes.Buffer
	refresher := NewRefresher(repo, mock.NewMockEmbedder(), nil, &out)

	err = refresher.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No records found")
}

func TestRefresherRun_EmbedderFailure(t *testing.T) {
	repo := seededRepo(t)
	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		return nil, errors.New("model unavailable")
	}

	var out bytes.Buffer
	config := &Config{BatchSize: 2, ReportInterval: 1, MaxRetries: 2, RetryDelay: time.Millisecond}
	refresher := NewRefresher(repo, embedder, config, &out)

	err := refresher.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model unavailable")
}

func TestRecordIterator_Batches(t *testing.T) {
	repo := seededRepo(t)
	iterator := NewRecordIterator(repo, 2)

	var batches [][]*core.NameRecord
	err := iterator.ForEach(context.Background(), func(records []*core.NameRecord) error {
		batches = append(batches, records)
		return nil
	})
	require.NoError(t, err)

	// Five records in batches of two: 2 + 2 + 1.
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 2)
	assert.Len(t, batches[2], 1)

	// Batches follow corpus order.
	assert.Equal(t, "Vihaan", batches[0][0].Name)
	assert.Equal(t, "Harish", batches[2][0].Name)
}

func TestRecordIterator_StopsOnError(t *testing.T) {
	repo := seededRepo(t)
	iterator := NewRecordIterator(repo, 2)

	boom := errors.New("boom")
	calls := 0
	err := iterator.ForEach(context.Background(), func(records []*core.NameRecord) error {
		calls++
		return boom
	})
	assert.Equal(t, boom, err)
	assert.Equal(t, 1, calls)
}

func TestRecordIterator_ContextCancelled(t *testing.T) {
	repo := seededRepo(t)
	iterator := NewRecordIterator(repo, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := iterator.ForEach(ctx, func(records []*core.NameRecord) error {
		t.Fatal("callback must not run after cancellation")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchProcessor_EmptyBatch(t *testing.T) {
	repo := seededRepo(t)
	bp := NewBatchProcessor(repo, mock.NewMockEmbedder(), 1, time.Millisecond)

	err := bp.Process(context.Background(), nil)
	require.NoError(t, err)
}

func TestProgressTracker(t *testing.T) {
	var out bytes.Buffer
	tracker := NewProgressTracker(&out, 10, 5)
	tracker.Start()

	tracker.Update(3)
	assert.Empty(t, out.String(), "below report interval, nothing written")

	tracker.Update(5)
	assert.Contains(t, out.String(), "5/10")

	tracker.Finish()
	assert.Contains(t, out.String(), "10/10")
	assert.Greater(t, tracker.Elapsed(), time.Duration(0))
}

func TestProgressTracker_NotStarted(t *testing.T) {
	var out bytes.Buffer
	tracker := NewProgressTracker(&out, 10, 1)

	tracker.Update(5)
	tracker.Increment(5)
	tracker.Finish()

	assert.Empty(t, out.String())
	assert.Equal(t, time.Duration(0), tracker.Elapsed())
}
