package profile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/namankura/namankura/core"
	"github.com/namankura/namankura/corpus"
	"github.com/namankura/namankura/discovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "nope", FileName))
	require.NoError(t, err)
	assert.Empty(t, p.Filters.Gender, "fresh profile must not constrain gender")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".namankura", FileName)

	p := Default()
	p.DatabasePath = "/tmp/names"
	p.AI.Host = "http://localhost:11434/v1"
	p.AI.ParserModel = "qwen2.5:3b"
	p.Filters.Gender = "boy"
	p.Filters.Syllables = 2
	p.Filters.Sources = []string{"sanskrit", "vedic"}
	p.Filters.VedicMode = true
	p.Filters.BirthDate = "2026-01-15"
	p.Filters.BirthTime = "06:30"
	p.Filters.BirthPlace = "Chennai"

	require.NoError(t, p.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, p.DatabasePath, loaded.DatabasePath)
	assert.Equal(t, p.AI, loaded.AI)
	assert.Equal(t, p.Filters, loaded.Filters)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("filters = [broken"), 0600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestBaseFilters(t *testing.T) {
	p := Default()
	p.Filters.Gender = "boy"
	p.Filters.Syllables = 2
	p.Filters.Sources = []string{"sanskrit"}
	p.Filters.VedicMode = true
	p.Filters.BirthDate = "2026-01-15"
	p.Filters.BirthTime = "06:30"
	p.Filters.BirthPlace = "Chennai"

	filters := p.BaseFilters()
	assert.Equal(t, core.GenderBoy, filters.Gender)
	require.NotNil(t, filters.Syllables)
	assert.Equal(t, 2, *filters.Syllables)
	assert.Equal(t, []string{"sanskrit"}, filters.Sources)
	assert.True(t, filters.VedicMode)
	require.NotNil(t, filters.Birth)
	assert.True(t, filters.Birth.Complete())
}

func TestBaseFiltersEmptyProfile(t *testing.T) {
	filters := Default().BaseFilters()
	assert.Empty(t, filters.Gender)
	assert.Nil(t, filters.Syllables)
	assert.Nil(t, filters.Birth)
	assert.False(t, filters.VedicMode)
}

func TestBaseFiltersDefaultMatchesWholeCorpus(t *testing.T) {
	// A fresh profile with no saved preferences must not exclude any of
	// the shipped records.
	results := discovery.MatchNames(Default().BaseFilters(), corpus.SeedRecords())
	assert.Len(t, results, len(corpus.SeedRecords()))
}
