package search

import (
	"slices"
	"testing"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty", query: "", want: nil},
		{name: "whitespace only", query: "   \t  ", want: nil},
		{name: "single term", query: "red", want: []string{"red"}},
		{name: "two terms", query: "a b", want: []string{"a", "b"}},
		{name: "whitespace run", query: "dark   red", want: []string{"dark", "red"}},
		{name: "lowercased", query: "Dark RED", want: []string{"dark", "red"}},
		{name: "quoted phrase", query: `"a b" c`, want: []string{"a b", "c"}},
		{name: "phrase keeps inner spaces", query: `"dark red transparent"`, want: []string{"dark red transparent"}},
		{name: "phrase then terms", query: `"silver strike" reduce frit`, want: []string{"silver strike", "reduce", "frit"}},
		{name: "unterminated quote", query: `rod "dark red`, want: []string{"rod", "dark red"}},
		{name: "lone quote", query: `"`, want: nil},
		{name: "empty phrase", query: `"" rod`, want: []string{"rod"}},
		{name: "term against quote", query: `ab"cd ef"`, want: []string{"ab", "cd ef"}},
		{name: "tabs and newlines split", query: "a\tb\nc", want: []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuery(tt.query)
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseQuery(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}
