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


package core

import "fmt"

// ValidateNameRecord validates a NameRecord according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Gender must be valid (boy, girl, unisex)
//   - Syllables must be positive
//   - Modernity and GlobalEase must be between 1 and 5
//   - Popularity, if set, must be a known tier
//
// NOT validated (populated by processors):
//   - Vector (can be empty until the embedding processor runs)
//   - ID (derived from content at storage time)
func ValidateNameRecord(record *NameRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidNameRecord)
	}

	if record.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidNameRecord, ErrEmptyName)
	}

	if err := ValidateGender(record.Gender); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNameRecord, err)
	}

	if record.Syllables <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidNameRecord, ErrInvalidSyllables)
	}

	if !isValidRating(record.Modernity) || !isValidRating(record.GlobalEase) {
		return fmt.Errorf("%w: %w", ErrInvalidNameRecord, ErrInvalidRating)
	}

	if err := ValidatePopularityTier(record.Popularity); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidNameRecord, err)
	}

	return nil
}

// ValidateWishFilters validates a WishFilters according to domain rules.
//
// Validation rules:
//   - Gender, if set, must be valid (boy, girl, unisex); unset means no
//     gender constraint
//   - Syllables, if set, must be positive
//   - MaxLength, if set, must be positive
//
// List-typed fields are never validated for emptiness: a nil or empty list
// means the constraint is inactive, not invalid.
func ValidateWishFilters(filters *WishFilters) error {
	if filters == nil {
		return fmt.Errorf("%w: filters is nil", ErrInvalidWishFilters)
	}

	if filters.Gender != "" {
		if err := ValidateGender(filters.Gender); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidWishFilters, err)
		}
	}

	if filters.Syllables != nil && *filters.Syllables <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidWishFilters, ErrInvalidSyllables)
	}

	if filters.MaxLength != nil && *filters.MaxLength <= 0 {
		return fmt.Errorf("%w: %w", ErrInvalidWishFilters, ErrInvalidMaxLength)
	}

	return nil
}

// ValidateGender validates that a Gender has a recognized value.
func ValidateGender(gender Gender) error {
	switch gender {
	case GenderBoy, GenderGirl, GenderUnisex:
		return nil
	}
	return fmt.Errorf("%w: value %q", ErrInvalidGender, gender)
}

// ValidatePopularityTier validates that a PopularityTier has a recognized value.
// The empty string is valid and means the tier is unknown.
func ValidatePopularityTier(tier PopularityTier) error {
	switch tier {
	case "", PopularityRare, PopularityUncommon, PopularityCommon:
		return nil
	}
	return fmt.Errorf("%w: value %q", ErrInvalidPopularity, tier)
}

func isValidRating(n int) bool {
	return n >= 1 && n <= 5
}
