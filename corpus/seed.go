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


package corpus

import "github.com/namankura/namankura/core"

// SeedRecords returns the built-in starter corpus in canonical order.
// The order matters: match results follow corpus order, so seeding must
// insert these records exactly as returned.
func SeedRecords() []*core.NameRecord {
	return []*core.NameRecord{
		{
			Name:          "Vihaan",
			Gender:        core.GenderBoy,
			Spellings:     map[string]string{"devanagari": "विहान", "iast": "Vihāna"},
			Syllables:     2,
			PhoneticStart: "Vi",
			Deity:         "Vishnu",
			Sources:       []string{"sanskrit", "vedic"},
			Meaning:       "dawn, the first rays of the morning sun",
			Language:      "sanskrit",
			Regions:       []string{"pan-india"},
			Modernity:     5,
			GlobalEase:    4,
			Nicknames:     []string{"Vi", "Haan"},
			Related:       []string{"Vihan", "Vyan"},
			Popularity:    core.PopularityCommon,
		},
		{
			Name:          "Vedant",
			Gender:        core.GenderBoy,
			Spellings:     map[string]string{"devanagari": "वेदांत", "iast": "Vedānta"},
			Syllables:     2,
			PhoneticStart: "Ve",
			Deity:         core.DeityNone,
			Sources:       []string{"sanskrit", "vedic"},
			Meaning:       "the culmination of the Vedas, ultimate knowledge",
			Language:      "sanskrit",
			Regions:       []string{"pan-india"},
			Modernity:     4,
			GlobalEase:    4,
			Nicknames:     []string{"Ved"},
			Related:       []string{"Ved", "Vedang"},
			Popularity:    core.PopularityCommon,
		},
		{
			Name:          "Vasu",
			Gender:        core.GenderBoy,
			Spellings:     map[string]string{"devanagari": "वसु", "iast": "Vasu"},
			Syllables:     2,
			PhoneticStart: "Va",
			Deity:         "Vishnu",
			Sources:       []string{"sanskrit", "puranic"},
			Meaning:       "wealth, radiance; a class of Vedic deities",
			Language:      "sanskrit",
			Regions:       []string{"pan-india"},
			Modernity:     3,
			GlobalEase:    5,
			Nicknames:     []string{"Vasu"},
			Related:       []string{"Vasudev", "Vasuki"},
			Popularity:    core.PopularityUncommon,
		},
		{
			Name:          "Hriday",
			Gender:        core.GenderBoy,
			Spellings:     map[string]string{"devanagari": "हृदय", "iast": "Hṛdaya"},
			Syllables:     2,
			PhoneticStart: "Hri",
			Deity:         core.DeityNone,
			Sources:       []string{"sanskrit"},
			Meaning:       "heart, the seat of feeling",
			Language:      "sanskrit",
			Regions:       []string{"north-india"},
			Modernity:     3,
			GlobalEase:    2,
			Nicknames:     []string{"Hridu"},
			Related:       []string{"Hridaan", "Hridik"},
			Popularity:    core.PopularityUncommon,
		},
		{
			Name:          "Harish",
			Gender:        core.GenderBoy,
			Spellings:     map[string]string{"devanagari": "हरीश", "iast": "Harīśa"},
			Syllables:     2,
			PhoneticStart: "Ha",
			Deity:         "Vishnu",
			Sources:       []string{"sanskrit", "puranic"},
			Meaning:       "lord Hari, an epithet of Vishnu",
			Language:      "sanskrit",
			Regions:       []string{"south-india", "north-india"},
			Modernity:     2,
			GlobalEase:    4,
			Nicknames:     []string{"Hari"},
			Related:       []string{"Hari", "Harith"},
			Popularity:    core.PopularityCommon,
		},
	}
}
