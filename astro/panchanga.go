// Copyright 2026 Namankura Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package astro

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/namankura/namankura/core"
)

// Input layout errors
var (
	// ErrIncompleteBirth indicates date, time, or place was missing.
	ErrIncompleteBirth = errors.New("birth details incomplete")

	// ErrInvalidBirthDate indicates the date did not parse as 2006-01-02.
	ErrInvalidBirthDate = errors.New("invalid birth date")

	// ErrInvalidBirthTime indicates the time did not parse as 15:04.
	ErrInvalidBirthTime = errors.New("invalid birth time")
)

const (
	nakshatraSpan = 360.0 / 27.0 // degrees of lunar longitude per mansion
	padaSpan      = nakshatraSpan / 4.0

	// Mean motion approximation: moon longitude at epoch J2000 and mean
	// daily motion, with a fixed ayanamsha to shift into the sidereal zodiac.
	epochLongitude = 218.316
	dailyMotion    = 13.176396
	ayanamsha      = 24.0
)

// nakshatras lists the 27 stellar mansions in zodiacal order, each with the
// starting syllables of its four padas.
var nakshatras = []struct {
	name  string
	padas [4]string
}{
	{"Ashwini", [4]string{"Chu", "Che", "Cho", "La"}},
	{"Bharani", [4]string{"Li", "Lu", "Le", "Lo"}},
	{"Krittika", [4]string{"A", "I", "U", "E"}},
	{"Rohini", [4]string{"O", "Va", "Vi", "Vu"}},
	{"Mrigashira", [4]string{"Ve", "Vo", "Ka", "Ki"}},
	{"Ardra", [4]string{"Ku", "Gha", "Nga", "Chha"}},
	{"Punarvasu", [4]string{"Ke", "Ko", "Ha", "Hi"}},
	{"Pushya", [4]string{"Hu", "He", "Ho", "Da"}},
	{"Ashlesha", [4]string{"Di", "Du", "De", "Do"}},
	{"Magha", [4]string{"Ma", "Mi", "Mu", "Me"}},
	{"Purva Phalguni", [4]string{"Mo", "Ta", "Ti", "Tu"}},
	{"Uttara Phalguni", [4]string{"Te", "To", "Pa", "Pi"}},
	{"Hasta", [4]string{"Pu", "Sha", "Na", "Tha"}},
	{"Chitra", [4]string{"Pe", "Po", "Ra", "Ri"}},
	{"Swati", [4]string{"Ru", "Re", "Ro", "Ta"}},
	{"Vishakha", [4]string{"Ti", "Tu", "Te", "To"}},
	{"Anuradha", [4]string{"Na", "Ni", "Nu", "Ne"}},
	{"Jyeshtha", [4]string{"No", "Ya", "Yi", "Yu"}},
	{"Mula", [4]string{"Ye", "Yo", "Bha", "Bhi"}},
	{"Purva Ashadha", [4]string{"Bhu", "Dha", "Pha", "Dha"}},
	{"Uttara Ashadha", [4]string{"Bhe", "Bho", "Ja", "Ji"}},
	{"Shravana", [4]string{"Khi", "Khu", "Khe", "Kho"}},
	{"Dhanishta", [4]string{"Ga", "Gi", "Gu", "Ge"}},
	{"Shatabhisha", [4]string{"Go", "Sa", "Si", "Su"}},
	{"Purva Bhadrapada", [4]string{"Se", "So", "Da", "Di"}},
	{"Uttara Bhadrapada", [4]string{"Du", "Tha", "Jha", "Na"}},
	{"Revati", [4]string{"De", "Do", "Cha", "Chi"}},
}

// Panchanga is a deterministic Calculator built on a mean-motion lunar
// approximation. It honors the full Calculator contract but is not an
// ephemeris: longitudes come from average daily motion with a fixed
// ayanamsha, and the birth place does not shift the result.
type Panchanga struct {
	logger *slog.Logger
}

var _ Calculator = (*Panchanga)(nil)

// NewPanchanga creates a deterministic panchanga calculator.
func NewPanchanga() *Panchanga {
	return &Panchanga{
		logger: slog.Default().With("component", "panchanga"),
	}
}

// Reading computes the nakshatra, pada, and starting sounds for the birth moment.
func (p *Panchanga) Reading(ctx context.Context, birth core.BirthDetails) (*Reading, error) {
	if !birth.Complete() {
		return nil, ErrIncompleteBirth
	}

	date, err := time.Parse("2006-01-02", birth.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBirthDate, birth.Date)
	}
	clock, err := time.Parse("15:04", birth.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBirthTime, birth.Time)
	}

	moment := time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC)

	longitude := siderealMoonLongitude(moment)
	mansion := int(longitude / nakshatraSpan)
	if mansion >= len(nakshatras) {
		mansion = len(nakshatras) - 1
	}
	pada := int(math.Mod(longitude, nakshatraSpan)/padaSpan) + 1
	if pada > 4 {
		pada = 4
	}

	entry := nakshatras[mansion]
	reading := &Reading{
		Nakshatra:   entry.name,
		Pada:        pada,
		StartSounds: []string{entry.padas[pada-1]},
	}

	p.logger.Debug("computed birth reading",
		"nakshatra", reading.Nakshatra,
		"pada", reading.Pada,
		"sounds", reading.StartSounds)

	return reading, nil
}

// siderealMoonLongitude returns the approximate sidereal lunar longitude in
// degrees, in [0, 360).
func siderealMoonLongitude(moment time.Time) float64 {
	j2000 := time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)
	days := moment.Sub(j2000).Hours() / 24.0

	longitude := math.Mod(epochLongitude+dailyMotion*days-ayanamsha, 360.0)
	if longitude < 0 {
		longitude += 360.0
	}
	return longitude
}
