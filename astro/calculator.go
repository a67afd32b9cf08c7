package astro

import (
	"context"

	"github.com/namankura/namankura/core"
)

// Reading is the astrological classification of a birth moment.
// The pipeline treats StartSounds as opaque, authoritative enrichment data;
// Nakshatra and Pada are carried for presentation only.
type Reading struct {
	// Nakshatra is the stellar mansion the moon occupied at birth.
	Nakshatra string

	// Pada is the sub-division of the mansion, 1 through 4.
	Pada int

	// StartSounds lists the starting syllables tradition associates with
	// the pada. Names beginning with one of these sounds are considered
	// auspicious for the birth moment.
	StartSounds []string
}

// Calculator maps complete birth details to a Reading.
// Implementations must be thread-safe for concurrent use.
type Calculator interface {
	// Reading computes the birth reading. The birth details must be
	// complete (date, time, and place all present); implementations
	// return ErrIncompleteBirth otherwise.
	Reading(ctx context.Context, birth core.BirthDetails) (*Reading, error)
}

// CalculatorFunc adapts a plain function to the Calculator interface.
type CalculatorFunc func(ctx context.Context, birth core.BirthDetails) (*Reading, error)

// Reading calls the wrapped function.
func (f CalculatorFunc) Reading(ctx context.Context, birth core.BirthDetails) (*Reading, error) {
	return f(ctx, birth)
}
