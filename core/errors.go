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

import "errors"

// Domain validation errors
var (
	// ErrInvalidNameRecord indicates a NameRecord failed validation.
	ErrInvalidNameRecord = errors.New("invalid name record")

	// ErrInvalidWishFilters indicates a WishFilters failed validation.
	ErrInvalidWishFilters = errors.New("invalid wish filters")

	// ErrEmptyName indicates the Name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrInvalidGender indicates an unrecognized Gender value.
	ErrInvalidGender = errors.New("invalid gender")

	// ErrInvalidSyllables indicates a non-positive syllable count.
	ErrInvalidSyllables = errors.New("syllable count must be positive")

	// ErrInvalidRating indicates an ordinal rating outside the 1-5 range.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// ErrInvalidPopularity indicates an unrecognized PopularityTier value.
	ErrInvalidPopularity = errors.New("invalid popularity tier")

	// ErrInvalidMaxLength indicates a non-positive maximum name length.
	ErrInvalidMaxLength = errors.New("maximum name length must be positive")
)
