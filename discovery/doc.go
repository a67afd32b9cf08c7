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


// Package discovery implements the wish-to-names pipeline.
//
// The pipeline has three deterministic stages after the optional AI parse:
//
//  1. Resolution merges the baseline filters with the parsed wish fragment.
//     Fragment fields overwrite baseline fields; unset fragment fields keep
//     the baseline. Birth details travel as a unit from the baseline.
//
//  2. Enrichment consults the astrology calculator when vedic mode is on and
//     the birth details are complete, writing auspicious start sounds into
//     the filter set. Calculator failures are logged and swallowed.
//
//  3. Matching evaluates the filter set as an unordered conjunction against
//     every corpus record, in corpus insertion order, capped at MaxResults.
//     Empty list constraints are inactive; zero matches is a valid outcome.
//
// The same filter set run twice against the same corpus yields the same
// results: stages 1-3 contain no randomness and no AI calls.
package discovery
