// Package search implements the catalog search core: query parsing,
// edit-distance matching, weighted relevance scoring, and filter/rank
// orchestration over any record type exposing searchable fields.
package search

// Config controls how queries are matched against fields. The zero value is
// not meaningful; use one of the presets or build a Config explicitly.
type Config struct {
	CaseSensitive  bool
	ExactMatch     bool
	FuzzyTolerance int // max edit distance for fuzzy matching; <= 0 disables
	// HighlightMatches is reserved for result rendering and has no effect
	// on scoring.
	HighlightMatches bool
}

// DefaultConfig returns the standard preset: case-insensitive substring
// matching, no fuzziness.
func DefaultConfig() Config {
	return Config{}
}

// FuzzyConfig returns the typo-tolerant preset (edit distance up to 2).
func FuzzyConfig() Config {
	return Config{FuzzyTolerance: 2}
}

// ExactConfig returns the whole-field equality preset.
func ExactConfig() Config {
	return Config{ExactMatch: true}
}

// Per-field relevance weights for the glass catalog.
const (
	WeightNameExact        = 1.0
	WeightNameWordBoundary = 0.9
	WeightNamePartial      = 0.8
	WeightManufacturer     = 0.6
	WeightCode             = 0.4
	WeightTag              = 0.3
	WeightNotes            = 0.2
)

// Relative strength of each match kind in fuzzy field matching.
const (
	strengthExact      = 1.0
	strengthSubstring  = 0.8
	strengthPrefix     = 0.7
	strengthWordPrefix = 0.6
	strengthTypo       = 0.5
)

// Matching thresholds.
const (
	// minWordPrefixLen is the shortest term considered for word-prefix
	// matching; shorter terms hit too many words to be useful.
	minWordPrefixLen = 3
	// minTypoLen is the shortest term considered for typo detection.
	minTypoLen = 4
	// maxTypoDelta bounds the word/term length difference before an edit
	// distance is computed at all.
	maxTypoDelta = 2
)

// DefaultFieldWeights maps catalog field names to their relevance weights.
// Fields not listed here score with weight 1.0.
var DefaultFieldWeights = map[string]float64{
	"name":         WeightNamePartial,
	"manufacturer": WeightManufacturer,
	"code":         WeightCode,
	"tags":         WeightTag,
	"synonyms":     WeightTag,
	"notes":        WeightNotes,
}
