package astro

import (
	"context"
	"testing"

	"github.com/namankura/namankura/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanchanga_Reading(t *testing.T) {
	calc := NewPanchanga()
	ctx := context.Background()

	birth := core.BirthDetails{Date: "2026-01-15", Time: "04:30", Place: "Pune"}

	reading, err := calc.Reading(ctx, birth)
	require.NoError(t, err)
	require.NotNil(t, reading)

	assert.NotEmpty(t, reading.Nakshatra)
	assert.GreaterOrEqual(t, reading.Pada, 1)
	assert.LessOrEqual(t, reading.Pada, 4)
	require.Len(t, reading.StartSounds, 1)
	assert.NotEmpty(t, reading.StartSounds[0])
}

func TestPanchanga_Reading_Deterministic(t *testing.T) {
	calc := NewPanchanga()
	ctx := context.Background()

	birth := core.BirthDetails{Date: "2025-11-02", Time: "18:45", Place: "Chennai"}

	first, err := calc.Reading(ctx, birth)
	require.NoError(t, err)
	second, err := calc.Reading(ctx, birth)
	require.NoError(t, err)

	assert.Equal(t, first.Nakshatra, second.Nakshatra)
	assert.Equal(t, first.Pada, second.Pada)
	assert.Equal(t, first.StartSounds, second.StartSounds)
}

func TestPanchanga_Reading_DifferentDatesDiffer(t *testing.T) {
	calc := NewPanchanga()
	ctx := context.Background()

	// The moon crosses a full mansion in about a day, so readings a week
	// apart must land in different mansions.
	a, err := calc.Reading(ctx, core.BirthDetails{Date: "2026-03-01", Time: "12:00", Place: "Delhi"})
	require.NoError(t, err)
	b, err := calc.Reading(ctx, core.BirthDetails{Date: "2026-03-08", Time: "12:00", Place: "Delhi"})
	require.NoError(t, err)

	assert.NotEqual(t, a.Nakshatra, b.Nakshatra)
}

func TestPanchanga_Reading_IncompleteBirth(t *testing.T) {
	calc := NewPanchanga()
	ctx := context.Background()

	tests := []struct {
		name  string
		birth core.BirthDetails
	}{
		{"missing date", core.BirthDetails{Time: "04:30", Place: "Pune"}},
		{"missing time", core.BirthDetails{Date: "2026-01-15", Place: "Pune"}},
		{"missing place", core.BirthDetails{Date: "2026-01-15", Time: "04:30"}},
		{"empty", core.BirthDetails{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := calc.Reading(ctx, tt.birth)
			assert.ErrorIs(t, err, ErrIncompleteBirth)
		})
	}
}

func TestPanchanga_Reading_MalformedInputs(t *testing.T) {
	calc := NewPanchanga()
	ctx := context.Background()

	t.Run("bad date", func(t *testing.T) {
		_, err := calc.Reading(ctx, core.BirthDetails{Date: "15/01/2026", Time: "04:30", Place: "Pune"})
		assert.ErrorIs(t, err, ErrInvalidBirthDate)
	})

	t.Run("bad time", func(t *testing.T) {
		_, err := calc.Reading(ctx, core.BirthDetails{Date: "2026-01-15", Time: "4.30am", Place: "Pune"})
		assert.ErrorIs(t, err, ErrInvalidBirthTime)
	})
}

func TestSiderealMoonLongitude_Range(t *testing.T) {
	dates := []string{"1990-06-15", "2000-01-01", "2026-08-28", "2040-12-31"}
	calc := NewPanchanga()
	ctx := context.Background()

	for _, d := range dates {
		reading, err := calc.Reading(ctx, core.BirthDetails{Date: d, Time: "00:00", Place: "x"})
		require.NoError(t, err, "date %s", d)
		assert.NotEmpty(t, reading.Nakshatra, "date %s", d)
	}
}

func TestCalculatorFunc(t *testing.T) {
	want := &Reading{Nakshatra: "Rohini", Pada: 3, StartSounds: []string{"Vi"}}
	calc := CalculatorFunc(func(ctx context.Context, birth core.BirthDetails) (*Reading, error) {
		return want, nil
	})

	got, err := calc.Reading(context.Background(), core.BirthDetails{Date: "2026-01-15", Time: "04:30", Place: "Pune"})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
