package discovery

import (
	"fmt"
	"testing"

	"github.com/namankura/namankura/core"
	"github.com/namankura/namankura/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchedNames(filters *core.WishFilters, records []*core.NameRecord) []string {
	var names []string
	for _, r := range MatchNames(filters, records) {
		names = append(names, r.Name)
	}
	return names
}

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestMatchGenderOnly(t *testing.T) {
	records := corpus.SeedRecords()
	filters := &core.WishFilters{Gender: core.GenderBoy}

	names := matchedNames(filters, records)
	assert.Equal(t, []string{"Vihaan", "Vedant", "Vasu", "Hriday", "Harish"}, names)
}

func TestMatchUnsetGenderMatchesAll(t *testing.T) {
	records := corpus.SeedRecords()
	records = append(records, &core.NameRecord{
		Name:      "Kiran",
		Gender:    core.GenderUnisex,
		Syllables: 2,
	})

	// No gender preference constrains nothing.
	names := matchedNames(&core.WishFilters{}, records)
	assert.Equal(t, []string{"Vihaan", "Vedant", "Vasu", "Hriday", "Harish", "Kiran"}, names)
}

func TestMatchGenderMismatch(t *testing.T) {
	records := corpus.SeedRecords()
	filters := &core.WishFilters{Gender: core.GenderGirl}

	results := MatchNames(filters, records)
	assert.Empty(t, results)
	assert.NotNil(t, results)
}

func TestMatchStartLetters(t *testing.T) {
	records := corpus.SeedRecords()
	filters := &core.WishFilters{
		Gender:       core.GenderBoy,
		StartLetters: []string{"V"},
	}

	names := matchedNames(filters, records)
	assert.Equal(t, []string{"Vihaan", "Vedant", "Vasu"}, names)
}

func TestMatchStartSounds(t *testing.T) {
	records := corpus.SeedRecords()
	filters := &core.WishFilters{
		Gender:      core.GenderBoy,
		StartSounds: []string{"Vi"},
	}

	names := matchedNames(filters, records)
	assert.Equal(t, []string{"Vihaan"}, names)
}

func TestMatchDeity(t *testing.T) {
	records := corpus.SeedRecords()
	filters := &core.WishFilters{
		Gender: core.GenderBoy,
		Deity:  strPtr("Vishnu"),
	}

	names := matchedNames(filters, records)
	assert.Equal(t, []string{"Vihaan", "Vasu", "Harish"}, names)
}

func TestMatchDeityMultipleSentinel(t *testing.T) {
	record := &core.NameRecord{
		Name:      "Om",
		Gender:    core.GenderBoy,
		Syllables: 1,
		Deity:     core.DeityMultiple,
	}
	filters := &core.WishFilters{
		Gender: core.GenderBoy,
		Deity:  strPtr("Shiva"),
	}

	assert.True(t, Matches(filters, record))
}

func TestMatchSources(t *testing.T) {
	records := corpus.SeedRecords()
	filters := &core.WishFilters{
		Gender:  core.GenderBoy,
		Sources: []string{"vedic"},
	}

	names := matchedNames(filters, records)
	assert.Equal(t, []string{"Vihaan", "Vedant"}, names)
}

func TestMatchSyllables(t *testing.T) {
	records := corpus.SeedRecords()

	names := matchedNames(&core.WishFilters{Gender: core.GenderBoy, Syllables: intPtr(2)}, records)
	assert.Len(t, names, 5)

	names = matchedNames(&core.WishFilters{Gender: core.GenderBoy, Syllables: intPtr(3)}, records)
	assert.Empty(t, names)
}

func TestMatchConjunction(t *testing.T) {
	records := corpus.SeedRecords()
	filters := &core.WishFilters{
		Gender:       core.GenderBoy,
		Deity:        strPtr("Vishnu"),
		StartLetters: []string{"V"},
		Sources:      []string{"puranic"},
	}

	names := matchedNames(filters, records)
	assert.Equal(t, []string{"Vasu"}, names)
}

func TestMatchEmptyListsInactive(t *testing.T) {
	records := corpus.SeedRecords()
	filters := &core.WishFilters{
		Gender:       core.GenderBoy,
		Sources:      []string{},
		StartLetters: []string{},
		StartSounds:  []string{},
	}

	names := matchedNames(filters, records)
	assert.Len(t, names, 5, "empty lists must be inactive, not match-nothing")
}

func TestMatchAdvisoryFieldsNeverExclude(t *testing.T) {
	records := corpus.SeedRecords()
	easy := true
	filters := &core.WishFilters{
		Gender:     core.GenderBoy,
		Script:     strPtr("tamil"),
		Themes:     []string{"nature"},
		Vibe:       strPtr("rooted"),
		MaxLength:  intPtr(1),
		EasyGlobal: &easy,
	}

	names := matchedNames(filters, records)
	assert.Len(t, names, 5)
}

func TestMatchCaseInsensitivity(t *testing.T) {
	records := corpus.SeedRecords()

	names := matchedNames(&core.WishFilters{Gender: core.GenderBoy, StartLetters: []string{"v"}}, records)
	assert.Len(t, names, 3)

	names = matchedNames(&core.WishFilters{Gender: core.GenderBoy, Sources: []string{"VEDIC"}}, records)
	assert.Len(t, names, 2)

	names = matchedNames(&core.WishFilters{Gender: core.GenderBoy, StartSounds: []string{"HRI"}}, records)
	assert.Equal(t, []string{"Hriday"}, names)
}

func TestMatchPhoneticAlternatives(t *testing.T) {
	record := &core.NameRecord{
		Name:          "Veer",
		Gender:        core.GenderBoy,
		Syllables:     1,
		PhoneticStart: "vi/vee",
	}

	assert.True(t, Matches(&core.WishFilters{Gender: core.GenderBoy, StartSounds: []string{"vee"}}, record))
	assert.True(t, Matches(&core.WishFilters{Gender: core.GenderBoy, StartSounds: []string{"vi"}}, record))
	assert.False(t, Matches(&core.WishFilters{Gender: core.GenderBoy, StartSounds: []string{"va"}}, record))
}

func TestMatchResultCap(t *testing.T) {
	records := make([]*core.NameRecord, 0, MaxResults+5)
	for i := 0; i < MaxResults+5; i++ {
		records = append(records, &core.NameRecord{
			Name:      fmt.Sprintf("Name%02d", i),
			Gender:    core.GenderBoy,
			Syllables: 2,
		})
	}

	results := MatchNames(&core.WishFilters{Gender: core.GenderBoy}, records)
	require.Len(t, results, MaxResults)
	assert.Equal(t, "Name00", results[0].Name)
	assert.Equal(t, fmt.Sprintf("Name%02d", MaxResults-1), results[MaxResults-1].Name)
}

func TestMatchDeterministic(t *testing.T) {
	records := corpus.SeedRecords()
	filters := &core.WishFilters{
		Gender:       core.GenderBoy,
		StartLetters: []string{"V", "H"},
	}

	first := matchedNames(filters, records)
	second := matchedNames(filters, records)
	assert.Equal(t, first, second)
}
