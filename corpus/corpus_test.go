package corpus

import (
	"strings"
	"testing"

	"github.com/namankura/namankura/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedRecordsOrder(t *testing.T) {
	records := SeedRecords()
	require.Len(t, records, 5)

	expected := []string{"Vihaan", "Vedant", "Vasu", "Hriday", "Harish"}
	for i, name := range expected {
		assert.Equal(t, name, records[i].Name)
	}
}

func TestSeedRecordsValid(t *testing.T) {
	for _, record := range SeedRecords() {
		assert.NoError(t, core.ValidateNameRecord(record), record.Name)
	}
}

func TestSeedRecordsDeityAffinity(t *testing.T) {
	byName := make(map[string]*core.NameRecord)
	for _, r := range SeedRecords() {
		byName[r.Name] = r
	}

	assert.Equal(t, "Vishnu", byName["Vihaan"].Deity)
	assert.Equal(t, core.DeityNone, byName["Vedant"].Deity)
	assert.Equal(t, "Vishnu", byName["Vasu"].Deity)
	assert.Equal(t, core.DeityNone, byName["Hriday"].Deity)
	assert.Equal(t, "Vishnu", byName["Harish"].Deity)
}

func TestLoad(t *testing.T) {
	input := `[
		{"name": "Aarav", "gender": "boy", "syllables": 2, "phonetic_start": "Aa", "meaning": "peaceful", "language": "sanskrit"},
		{"name": "Kiara", "gender": "girl", "syllables": 2, "phonetic_start": "Ki", "meaning": "dark-haired", "language": "sanskrit", "deity": "Multiple", "modernity": 5, "global_ease": 5, "popularity": "common"}
	]`

	records, err := Load(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Aarav", records[0].Name)
	assert.Equal(t, core.GenderBoy, records[0].Gender)
	assert.Equal(t, core.DeityNone, records[0].Deity)
	assert.Equal(t, 3, records[0].Modernity)

	assert.Equal(t, "Kiara", records[1].Name)
	assert.Equal(t, core.DeityMultiple, records[1].Deity)
	assert.Equal(t, core.PopularityCommon, records[1].Popularity)
}

func TestLoadRejectsInvalidEntry(t *testing.T) {
	input := `[
		{"name": "Aarav", "gender": "boy", "syllables": 2, "phonetic_start": "Aa", "meaning": "peaceful", "language": "sanskrit"},
		{"name": "", "gender": "boy", "syllables": 2, "phonetic_start": "Xx", "meaning": "broken", "language": "sanskrit"}
	]`

	_, err := Load(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrInvalidNameRecord)
	assert.Contains(t, err.Error(), "entry 1")
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`{"not": "an array"`))
	require.Error(t, err)
}
