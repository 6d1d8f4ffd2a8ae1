package domain

import (
	"strconv"

	"molten/internal/search"
)

// Inventory form/type classification. The integer order is the display
// order used by the type sort.
const (
	InventoryTypeRod = iota
	InventoryTypeFrit
	InventoryTypeTube
	InventoryTypeSheet
	InventoryTypeScrap
)

// InventoryItem is one stash row: how much of a catalog item is on hand.
type InventoryItem struct {
	ID          string
	CatalogCode string  // references GlassItem.Code; may be empty
	Count       float64 // quantity on hand (rods, ounces...)
	Type        int     // one of the InventoryType constants
	Notes       string
}

// SearchFields exposes the row's searchable text to the search engine.
func (i InventoryItem) SearchFields() []search.Field {
	return []search.Field{
		{Name: "code", Value: i.CatalogCode},
		{Name: "notes", Value: i.Notes},
		{Name: "count", Value: strconv.FormatFloat(i.Count, 'f', -1, 64)},
	}
}
