package search

import (
	"slices"
	"strings"
)

// Filter returns the items with at least one field satisfying the query
// under the given config. An empty (or all-whitespace) query filters
// nothing. The input slice is never mutated.
func Filter[T Searchable](items []T, query string, cfg Config) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}
	if !cfg.CaseSensitive {
		query = strings.ToLower(query)
	}

	var out []T
	for _, item := range items {
		for _, f := range item.SearchFields() {
			value := f.Value
			if !cfg.CaseSensitive {
				value = strings.ToLower(value)
			}
			if fieldMatches(value, query, cfg) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

func fieldMatches(value, query string, cfg Config) bool {
	if cfg.ExactMatch {
		return value == query
	}
	if strings.Contains(value, query) {
		return true
	}
	if cfg.FuzzyTolerance > 0 {
		return Levenshtein(value, query) <= cfg.FuzzyTolerance
	}
	return false
}

// FilterWithQueryString parses the query into terms (quoted phrases stay
// whole) and keeps the items where every term is a substring of at least one
// field: AND across terms, OR across fields per term.
func FilterWithQueryString[T Searchable](items []T, query string, cfg Config) []T {
	terms := parseTerms(query, !cfg.CaseSensitive)
	if len(terms) == 0 {
		return items
	}

	var out []T
	for _, item := range items {
		fields := item.SearchFields()
		values := make([]string, len(fields))
		for i, f := range fields {
			if cfg.CaseSensitive {
				values[i] = f.Value
			} else {
				values[i] = strings.ToLower(f.Value)
			}
		}

		all := true
		for _, term := range terms {
			found := false
			for _, v := range values {
				if strings.Contains(v, term) {
					found = true
					break
				}
			}
			if !found {
				all = false
				break
			}
		}
		if all {
			out = append(out, item)
		}
	}
	return out
}

// FilterWithMultipleTerms keeps the items whose concatenated field text
// contains every term. An empty term list filters nothing.
func FilterWithMultipleTerms[T Searchable](items []T, terms []string) []T {
	if len(terms) == 0 {
		return items
	}

	var out []T
	for _, item := range items {
		var blob strings.Builder
		for _, f := range item.SearchFields() {
			blob.WriteString(strings.ToLower(f.Value))
			blob.WriteByte(' ')
		}
		text := blob.String()

		all := true
		for _, term := range terms {
			if !strings.Contains(text, strings.ToLower(strings.TrimSpace(term))) {
				all = false
				break
			}
		}
		if all {
			out = append(out, item)
		}
	}
	return out
}

// WeightedSearch ranks items against the query using per-field weights,
// descending by accumulated score with ties kept in input order. Items that
// do not match at all are dropped. An empty query returns every item with
// score zero in the original order.
func WeightedSearch[T Searchable](items []T, query string, weights map[string]float64, cfg Config) []Result[T] {
	query = strings.TrimSpace(query)
	if !cfg.CaseSensitive {
		query = strings.ToLower(query)
	}

	if query == "" {
		results := make([]Result[T], len(items))
		for i, item := range items {
			results[i] = Result[T]{Item: item}
		}
		return results
	}

	var results []Result[T]
	for _, item := range items {
		score, matched := scoreItem(item, query, weights, cfg)
		if score > 0 {
			results = append(results, Result[T]{
				Item:          item,
				Score:         score,
				MatchedFields: matched,
			})
		}
	}

	slices.SortStableFunc(results, func(a, b Result[T]) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	return results
}

// FuzzyFilter keeps the items where some field contains the query as a
// substring or lies within the given edit distance of the whole query.
// Matching is case-insensitive.
func FuzzyFilter[T Searchable](items []T, query string, tolerance int) []T {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	var out []T
	for _, item := range items {
		for _, f := range item.SearchFields() {
			value := strings.ToLower(f.Value)
			if strings.Contains(value, query) || Levenshtein(value, query) <= tolerance {
				out = append(out, item)
				break
			}
		}
	}
	return out
}
