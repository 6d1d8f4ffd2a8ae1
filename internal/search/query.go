package search

import "strings"

// ParseQuery splits a raw query into ordered, lowercased terms. A
// double-quoted span is kept together as a single phrase term; outside
// quotes any whitespace run is a boundary. The parser is deliberately
// forgiving: an unterminated quote still emits whatever content was seen,
// and it never fails.
func ParseQuery(query string) []string {
	return parseTerms(query, true)
}

func parseTerms(query string, lower bool) []string {
	var terms []string
	var current strings.Builder
	inPhrase := false

	flush := func() {
		term := strings.TrimSpace(current.String())
		if lower {
			term = strings.ToLower(term)
		}
		if term != "" {
			terms = append(terms, term)
		}
		current.Reset()
	}

	for _, r := range query {
		switch {
		case r == '"':
			flush()
			inPhrase = !inPhrase
		case !inPhrase && (r == ' ' || r == '\t' || r == '\n' || r == '\r'):
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return terms
}
