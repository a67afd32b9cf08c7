package namankura

import (
	"context"
	"io"
	"testing"

	"github.com/namankura/namankura/ai/mock"
	"github.com/namankura/namankura/core"
	"github.com/namankura/namankura/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestLibrary(t *testing.T) *Library {
	t.Helper()

	lib, err := OpenLibrary("", WithInMemory(), WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	t.Cleanup(func() { lib.Close() })
	return lib
}

func TestOpenLibraryAndClose(t *testing.T) {
	lib, err := OpenLibrary("", WithInMemory(), WithProvider(mock.NewMockProvider()))
	require.NoError(t, err)
	require.NotNil(t, lib.NameRepository())
	require.NoError(t, lib.Close())
}

func TestLibrarySeedAndDiscover(t *testing.T) {
	lib := openTestLibrary(t)
	ctx := context.Background()

	pipeline, err := lib.NewSeedingPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	_, err = pipeline.SeedSync(ctx, corpus.SeedRecords()...)
	require.NoError(t, err)

	discoverer, err := lib.NewDiscoverer()
	require.NoError(t, err)

	results, err := discoverer.Discover(ctx, "", &core.WishFilters{
		Gender:       core.GenderBoy,
		StartLetters: []string{"V"},
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Vihaan", results[0].Name)
}

func TestLibraryDiscoverVedic(t *testing.T) {
	lib := openTestLibrary(t)
	ctx := context.Background()

	pipeline, err := lib.NewSeedingPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	_, err = pipeline.SeedSync(ctx, corpus.SeedRecords()...)
	require.NoError(t, err)

	discoverer, err := lib.NewDiscoverer()
	require.NoError(t, err)

	// The default panchanga calculator is deterministic: the same birth
	// moment always yields the same result set.
	base := &core.WishFilters{
		Gender:    core.GenderBoy,
		VedicMode: true,
		Birth: &core.BirthDetails{
			Date:  "2026-01-15",
			Time:  "06:30",
			Place: "Chennai",
		},
	}

	first, err := discoverer.Discover(ctx, "", base)
	require.NoError(t, err)
	second, err := discoverer.Discover(ctx, "", base)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Name, second[i].Name)
	}
}

func TestLibraryRefresher(t *testing.T) {
	lib := openTestLibrary(t)
	ctx := context.Background()

	_, err := lib.NameRepository().AddNames(ctx, corpus.SeedRecords()...)
	require.NoError(t, err)

	refresher := lib.NewRefresher(nil, io.Discard)
	require.NoError(t, refresher.Run(ctx))

	records, err := lib.NameRepository().ListNames(ctx)
	require.NoError(t, err)
	for _, record := range records {
		assert.NotEmpty(t, record.Vector, record.Name)
	}
}
