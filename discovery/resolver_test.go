package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/namankura/namankura/ai"
	"github.com/namankura/namankura/astro"
	"github.com/namankura/namankura/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveNilFragment(t *testing.T) {
	base := &core.WishFilters{
		Gender:    core.GenderBoy,
		Syllables: intPtr(2),
	}

	resolved := ResolveFilters(base, nil)
	assert.Equal(t, core.GenderBoy, resolved.Gender)
	require.NotNil(t, resolved.Syllables)
	assert.Equal(t, 2, *resolved.Syllables)
}

func TestResolveFragmentOverwrites(t *testing.T) {
	base := &core.WishFilters{
		Gender:    core.GenderGirl,
		Syllables: intPtr(3),
		Deity:     strPtr("Lakshmi"),
		Sources:   []string{"tamil"},
	}
	fragment := &ai.ParsedWish{
		Gender:    strPtr("boy"),
		Syllables: intPtr(2),
		Deity:     strPtr("Vishnu"),
	}

	resolved := ResolveFilters(base, fragment)

	assert.Equal(t, core.GenderBoy, resolved.Gender)
	assert.Equal(t, 2, *resolved.Syllables)
	assert.Equal(t, "Vishnu", *resolved.Deity)
	// Fields the fragment left unset keep the baseline.
	assert.Equal(t, []string{"tamil"}, resolved.Sources)
}

func TestResolveRawFragmentDisregarded(t *testing.T) {
	base := &core.WishFilters{
		Gender:    core.GenderGirl,
		Syllables: intPtr(3),
	}
	fragment := &ai.ParsedWish{
		Gender: strPtr("boy"),
		Raw:    `{"gender": "bo`,
	}

	resolved := ResolveFilters(base, fragment)
	assert.Equal(t, core.GenderGirl, resolved.Gender, "raw fragments carry no authority")
	assert.Equal(t, 3, *resolved.Syllables)
}

func TestResolveBirthTravelsAsUnit(t *testing.T) {
	base := &core.WishFilters{
		Gender: core.GenderBoy,
		Birth: &core.BirthDetails{
			Date:  "2026-01-15",
			Time:  "06:30",
			Place: "Chennai",
		},
		VedicMode: true,
	}

	resolved := ResolveFilters(base, &ai.ParsedWish{Gender: strPtr("boy")})

	require.NotNil(t, resolved.Birth)
	assert.Equal(t, *base.Birth, *resolved.Birth)
	assert.True(t, resolved.VedicMode)

	// The resolved set must not alias the baseline.
	resolved.Birth.Place = "Mumbai"
	assert.Equal(t, "Chennai", base.Birth.Place)
}

func TestResolveDoesNotMutateBase(t *testing.T) {
	base := &core.WishFilters{
		Gender:  core.GenderBoy,
		Sources: []string{"sanskrit"},
	}
	fragment := &ai.ParsedWish{
		Sources: []string{"vedic", "puranic"},
	}

	resolved := ResolveFilters(base, fragment)
	assert.Equal(t, []string{"vedic", "puranic"}, resolved.Sources)
	assert.Equal(t, []string{"sanskrit"}, base.Sources)
}

func TestEnrichSetsStartSounds(t *testing.T) {
	filters := &core.WishFilters{
		Gender:    core.GenderBoy,
		VedicMode: true,
		Birth: &core.BirthDetails{
			Date:  "2026-01-15",
			Time:  "06:30",
			Place: "Chennai",
		},
	}
	calc := astro.CalculatorFunc(func(ctx context.Context, birth core.BirthDetails) (*astro.Reading, error) {
		return &astro.Reading{Nakshatra: "Rohini", Pada: 3, StartSounds: []string{"Vi"}}, nil
	})

	reading := EnrichFilters(context.Background(), filters, calc, nil)
	require.NotNil(t, reading)
	assert.Equal(t, []string{"Vi"}, filters.StartSounds)
}

func TestEnrichSkippedWithoutVedicMode(t *testing.T) {
	filters := &core.WishFilters{
		Gender: core.GenderBoy,
		Birth: &core.BirthDetails{
			Date:  "2026-01-15",
			Time:  "06:30",
			Place: "Chennai",
		},
	}
	calc := astro.CalculatorFunc(func(ctx context.Context, birth core.BirthDetails) (*astro.Reading, error) {
		t.Fatal("calculator must not be consulted when vedic mode is off")
		return nil, nil
	})

	reading := EnrichFilters(context.Background(), filters, calc, nil)
	assert.Nil(t, reading)
	assert.Nil(t, filters.StartSounds)
}

func TestEnrichSkippedWithIncompleteBirth(t *testing.T) {
	cases := []*core.BirthDetails{
		nil,
		{Date: "2026-01-15"},
		{Date: "2026-01-15", Time: "06:30"},
		{Time: "06:30", Place: "Chennai"},
	}

	for _, birth := range cases {
		filters := &core.WishFilters{
			Gender:    core.GenderBoy,
			VedicMode: true,
			Birth:     birth,
		}
		calc := astro.CalculatorFunc(func(ctx context.Context, birth core.BirthDetails) (*astro.Reading, error) {
			t.Fatal("calculator must not be consulted with incomplete birth details")
			return nil, nil
		})

		reading := EnrichFilters(context.Background(), filters, calc, nil)
		assert.Nil(t, reading)
	}
}

func TestEnrichFailureLeavesStartSounds(t *testing.T) {
	filters := &core.WishFilters{
		Gender:      core.GenderBoy,
		VedicMode:   true,
		StartSounds: []string{"Va"},
		Birth: &core.BirthDetails{
			Date:  "2026-01-15",
			Time:  "06:30",
			Place: "Chennai",
		},
	}
	calc := astro.CalculatorFunc(func(ctx context.Context, birth core.BirthDetails) (*astro.Reading, error) {
		return nil, errors.New("ephemeris unavailable")
	})

	reading := EnrichFilters(context.Background(), filters, calc, nil)
	assert.Nil(t, reading)
	assert.Equal(t, []string{"Va"}, filters.StartSounds, "failure must leave StartSounds unchanged")
}
