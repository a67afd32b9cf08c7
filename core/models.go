package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing so that the same name in the
// same language always maps to the same record.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Gender classifies a name record or a wish constraint.
type Gender string

const (
	// GenderBoy marks names used for boys.
	GenderBoy Gender = "boy"
	// GenderGirl marks names used for girls.
	GenderGirl Gender = "girl"
	// GenderUnisex marks names used for any child.
	GenderUnisex Gender = "unisex"
)

// PopularityTier is a coarse usage classification for a name.
// The empty string means the tier is unknown.
type PopularityTier string

const (
	// PopularityRare marks names that are seldom given.
	PopularityRare PopularityTier = "rare"
	// PopularityUncommon marks names given occasionally.
	PopularityUncommon PopularityTier = "uncommon"
	// PopularityCommon marks widely given names.
	PopularityCommon PopularityTier = "common"
)

// Deity affinity sentinels. A record whose Deity equals DeityMultiple satisfies
// any deity constraint; DeityNone marks names with no deity association.
const (
	DeityMultiple = "Multiple"
	DeityNone     = "None"
)

// NameRecord is an immutable catalog entry for a single name.
// Records are loaded once at seeding time and never mutated by the
// discovery pipeline. The Vector field is populated by the seeding
// pipeline from the record's meaning text.
type NameRecord struct {
	Id            ID
	Name          string
	Gender        Gender
	Spellings     map[string]string // script identifier -> rendering, may be partial
	Syllables     int
	PhoneticStart string // starting sound, slash-separated alternatives ("vi/vee")
	Deity         string // deity tag, DeityMultiple, or DeityNone
	Sources       []string
	Meaning       string
	Language      string
	Regions       []string
	Modernity     int // 1-5 ordinal
	GlobalEase    int // 1-5 ordinal, ease of pronunciation outside the home region
	Nicknames     []string
	Related       []string
	Popularity    PopularityTier
	Vector        []float32 // meaning embedding (populated by processors)
	InsertedAt    time.Time // When the record was inserted into the database
	UpdatedAt     time.Time // When the record was last updated
}

// ContentKey returns the string identity of the record as "name|language",
// lowercased. This is used for generating deterministic IDs.
func (r *NameRecord) ContentKey() string {
	return strings.ToLower(r.Name) + "|" + strings.ToLower(r.Language)
}

// PhoneticStarts splits the record's phonetic start into its slash-separated
// alternatives, lowercased. A record with PhoneticStart "vi/vee" yields
// ["vi", "vee"].
func (r *NameRecord) PhoneticStarts() []string {
	parts := strings.Split(r.PhoneticStart, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(strings.ToLower(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// BirthDetails describes when and where a child was born.
// All three fields are required together before an astrology lookup may run.
type BirthDetails struct {
	Date  string // calendar date, "2006-01-02"
	Time  string // local wall clock, "15:04"
	Place string // free-form place name
}

// Complete reports whether every field needed for an astrology lookup is present.
func (b *BirthDetails) Complete() bool {
	if b == nil {
		return false
	}
	return b.Date != "" && b.Time != "" && b.Place != ""
}

// WishFilters is the canonical query object evaluated against the corpus.
// Every optional field, when nil, means "no constraint". A non-nil empty
// slice is treated as inactive by the matcher, never as "match nothing".
// Gender uses its zero value ("") the same way: unset means any gender.
type WishFilters struct {
	Gender       Gender // empty = no constraint
	Syllables    *int
	Script       *string // preferred spelling script, advisory
	Deity        *string
	Sources      []string
	Themes       []string // advisory
	StartLetters []string
	Vibe         *string // advisory
	MaxLength    *int    // nil = unlimited, advisory
	EasyGlobal   *bool   // advisory
	Birth        *BirthDetails
	VedicMode    bool
	StartSounds  []string // derived from astrology, set by enrichment
}

// NameMatch pairs a name record with a relevance score from similarity search.
type NameMatch struct {
	Record *NameRecord
	Score  float32
}
