package discovery

import (
	"strings"

	"github.com/namankura/namankura/core"
)

// MaxResults caps the number of records a match pass returns.
const MaxResults = 40

// MatchNames evaluates the filter set against the corpus and returns matching
// records in corpus order, capped at MaxResults.
//
// A record matches when it satisfies every active constraint; the constraints
// form an unordered conjunction. A list constraint with no entries is
// inactive, whether the list is nil or empty. Zero matches is a valid
// outcome and yields an empty slice.
//
// Script, Themes, Vibe, MaxLength, and EasyGlobal are advisory fields: they
// travel with the filter set for presentation and ranking layers but never
// exclude a record here.
func MatchNames(filters *core.WishFilters, records []*core.NameRecord) []*core.NameRecord {
	results := make([]*core.NameRecord, 0)
	for _, record := range records {
		if record == nil {
			continue
		}
		if Matches(filters, record) {
			results = append(results, record)
			if len(results) == MaxResults {
				break
			}
		}
	}
	return results
}

// Matches reports whether a single record satisfies every active constraint.
// An unset gender ("") is no constraint; a set gender must match exactly.
func Matches(filters *core.WishFilters, record *core.NameRecord) bool {
	if filters.Gender != "" && record.Gender != filters.Gender {
		return false
	}

	if filters.Syllables != nil && record.Syllables != *filters.Syllables {
		return false
	}

	if filters.Deity != nil {
		if record.Deity != *filters.Deity && record.Deity != core.DeityMultiple {
			return false
		}
	}

	if len(filters.Sources) > 0 && !sourcesIntersect(record.Sources, filters.Sources) {
		return false
	}

	if len(filters.StartLetters) > 0 && !hasAnyPrefix(strings.ToLower(record.Name), filters.StartLetters) {
		return false
	}

	if len(filters.StartSounds) > 0 && !soundMatches(record, filters.StartSounds) {
		return false
	}

	return true
}

// sourcesIntersect reports whether the record and filter source lists share
// at least one tag, case-insensitively.
func sourcesIntersect(recordSources, filterSources []string) bool {
	for _, rs := range recordSources {
		rs = strings.ToLower(rs)
		for _, fs := range filterSources {
			if rs == strings.ToLower(fs) {
				return true
			}
		}
	}
	return false
}

// hasAnyPrefix reports whether the subject starts with any of the given
// prefixes, case-insensitively.
func hasAnyPrefix(subject string, prefixes []string) bool {
	for _, p := range prefixes {
		if p == "" {
			continue
		}
		if strings.HasPrefix(subject, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

// soundMatches reports whether any of the record's phonetic start
// alternatives begins with any of the wanted sounds.
func soundMatches(record *core.NameRecord, sounds []string) bool {
	for _, alt := range record.PhoneticStarts() {
		if hasAnyPrefix(alt, sounds) {
			return true
		}
	}
	return false
}
