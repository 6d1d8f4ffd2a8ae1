package search

import "strings"

// Result pairs a record with its relevance score for one search call.
// Scores are only comparable within the call that produced them.
type Result[T Searchable] struct {
	Item          T
	Score         float64
	MatchedFields []string
}

// Score contribution formulas. Exact whole-field equality dominates;
// substring hits decay with the offset of the first occurrence; fuzzy hits
// decay with edit distance.
const (
	exactMatchFactor = 10.0

	substringBase       = 5.0
	substringOffsetStep = 0.1

	fuzzyBase         = 2.0
	fuzzyDistanceStep = 0.5
)

// scoreItem accumulates the relevance of one record against the normalized
// query. Contributions from multiple matching fields add up; a record with
// no matching field scores zero.
func scoreItem(item Searchable, query string, weights map[string]float64, cfg Config) (float64, []string) {
	score := 0.0
	var matched []string

	for _, f := range item.SearchFields() {
		value := f.Value
		if !cfg.CaseSensitive {
			value = strings.ToLower(value)
		}

		weight, ok := weights[f.Name]
		if !ok {
			weight = 1.0
		}

		contribution := fieldScore(value, query, cfg)
		if contribution > 0 {
			score += weight * contribution
			matched = append(matched, f.Name)
		}
	}

	return score, matched
}

// fieldScore returns the unweighted contribution of one field value.
func fieldScore(value, query string, cfg Config) float64 {
	if cfg.ExactMatch {
		if value == query {
			return exactMatchFactor
		}
		return 0
	}

	if idx := strings.Index(value, query); idx >= 0 {
		return max(0, substringBase-substringOffsetStep*float64(idx))
	}

	if cfg.FuzzyTolerance > 0 {
		if d := Levenshtein(value, query); d <= cfg.FuzzyTolerance {
			return max(0, fuzzyBase-fuzzyDistanceStep*float64(d))
		}
	}

	return 0
}
