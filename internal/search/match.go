package search

import "strings"

// Kind classifies how a field matched a term, strongest first.
type Kind int

const (
	MatchNone Kind = iota
	MatchExact
	MatchSubstring
	MatchPrefix
	MatchWordPrefix
	MatchTypo
)

// Strength returns the relative weight of the match kind for fuzzy scoring.
func (k Kind) Strength() float64 {
	switch k {
	case MatchExact:
		return strengthExact
	case MatchSubstring:
		return strengthSubstring
	case MatchPrefix:
		return strengthPrefix
	case MatchWordPrefix:
		return strengthWordPrefix
	case MatchTypo:
		return strengthTypo
	default:
		return 0
	}
}

func (k Kind) String() string {
	switch k {
	case MatchExact:
		return "exact"
	case MatchSubstring:
		return "substring"
	case MatchPrefix:
		return "prefix"
	case MatchWordPrefix:
		return "word-prefix"
	case MatchTypo:
		return "typo"
	default:
		return "none"
	}
}

// MatchField decides how field matches term, checking the strongest kind
// first. Both inputs must already be case-normalized. The returned int is
// the edit distance for MatchTypo and 0 otherwise. tolerance <= 0 disables
// typo detection.
//
// The substring check subsumes the prefix and word-prefix checks (a word
// starting with the term always contains it), so those kinds are reported
// as MatchSubstring here; the weaker branches remain for callers matching
// against pre-split words.
func MatchField(field, term string, tolerance int) (Kind, int) {
	if field == term {
		return MatchExact, 0
	}
	if strings.Contains(field, term) {
		return MatchSubstring, 0
	}
	if strings.HasPrefix(field, term) {
		return MatchPrefix, 0
	}

	if len(term) >= minWordPrefixLen {
		for _, word := range strings.Fields(field) {
			if strings.HasPrefix(word, term) {
				return MatchWordPrefix, 0
			}
		}
	}

	if len(term) >= minTypoLen && tolerance > 0 {
		for _, word := range strings.Fields(field) {
			// Length pre-filter: skip words that cannot be within
			// range before paying for the DP table.
			delta := len(word) - len(term)
			if delta < 0 {
				delta = -delta
			}
			if delta > maxTypoDelta {
				continue
			}
			if d := Levenshtein(word, term); d <= tolerance {
				return MatchTypo, d
			}
		}
	}

	return MatchNone, 0
}
