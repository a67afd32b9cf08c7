package ai

// Genders defines the valid values for the gender field of a parsed wish.
var Genders = []string{
	"boy",
	"girl",
	"unisex",
}

// Deities defines the deity affinities a parsed wish may express.
// These match the affinity tags used in the name catalog.
var Deities = []string{
	"Brahma",
	"Devi",
	"Durga",
	"Ganesha",
	"Hanuman",
	"Indra",
	"Kartikeya",
	"Krishna",
	"Lakshmi",
	"Murugan",
	"Rama",
	"Saraswati",
	"Shiva",
	"Surya",
	"Vishnu",
}

// SourceTags defines the textual source tags a parsed wish may express.
var SourceTags = []string{
	"Bhagavad Gita",
	"Mahabharata",
	"Puranas",
	"Ramayana",
	"Rigveda",
	"Sanskrit",
	"Tamil Sangam",
	"Upanishads",
	"Vedic",
}

// Vibes defines the free-form style tags a parsed wish may express.
var Vibes = []string{
	"classic",
	"devotional",
	"gentle",
	"modern",
	"nature",
	"regal",
	"scholarly",
	"strong",
}
