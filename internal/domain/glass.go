package domain

import (
	"strings"

	"molten/internal/search"
)

// GlassItem is one catalog entry: a glass color as sold by a manufacturer.
type GlassItem struct {
	Code         string   // catalog code, e.g. "EF-591-246"
	Name         string   // e.g. "Dark Red Transparent"
	Manufacturer string   // manufacturer short code, e.g. "EF"
	COE          string   // coefficient of expansion as labeled, e.g. "104"
	Type         string   // rod, frit, tube, sheet...
	Tags         []string
	Synonyms     []string
	Notes        string
}

// SearchFields exposes the item's searchable text to the search engine.
// Weights are looked up by these names (see search.DefaultFieldWeights).
func (g GlassItem) SearchFields() []search.Field {
	return []search.Field{
		{Name: "name", Value: g.Name},
		{Name: "code", Value: g.Code},
		{Name: "manufacturer", Value: g.Manufacturer},
		{Name: "tags", Value: strings.Join(g.Tags, " ")},
		{Name: "synonyms", Value: strings.Join(g.Synonyms, " ")},
		{Name: "notes", Value: g.Notes},
		{Name: "coe", Value: g.COE},
	}
}
