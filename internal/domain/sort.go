package domain

import (
	"slices"
	"strings"
)

// CatalogSortCriterion names an ordering for catalog items.
type CatalogSortCriterion int

const (
	CatalogSortName CatalogSortCriterion = iota
	CatalogSortCode
	CatalogSortManufacturer
)

func (c CatalogSortCriterion) String() string {
	switch c {
	case CatalogSortName:
		return "name"
	case CatalogSortCode:
		return "code"
	case CatalogSortManufacturer:
		return "manufacturer"
	default:
		return "unknown"
	}
}

// ParseCatalogSort maps a criterion name to its CatalogSortCriterion.
func ParseCatalogSort(s string) (CatalogSortCriterion, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return CatalogSortName, true
	case "code":
		return CatalogSortCode, true
	case "manufacturer":
		return CatalogSortManufacturer, true
	default:
		return 0, false
	}
}

// InventorySortCriterion names an ordering for inventory rows.
type InventorySortCriterion int

const (
	InventorySortCatalogCode InventorySortCriterion = iota
	InventorySortCount
	InventorySortType
)

func (c InventorySortCriterion) String() string {
	switch c {
	case InventorySortCatalogCode:
		return "code"
	case InventorySortCount:
		return "count"
	case InventorySortType:
		return "type"
	default:
		return "unknown"
	}
}

// ParseInventorySort maps a criterion name to its InventorySortCriterion.
func ParseInventorySort(s string) (InventorySortCriterion, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "code":
		return InventorySortCatalogCode, true
	case "count":
		return InventorySortCount, true
	case "type":
		return InventorySortType, true
	default:
		return 0, false
	}
}

// SortByStringKey returns a copy of items ordered by the key function,
// case-insensitively. Items with an empty key sort after all items with a
// non-empty key regardless of direction. Equal keys keep their input order.
//
// Note the per-criterion catalog/inventory sorts below do not all share this
// empty-key rule; inventory code sort deliberately treats a missing code as
// an ordinary empty string (which sorts first).
func SortByStringKey[T any](items []T, key func(T) string, descending bool) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b T) int {
		ka := strings.ToLower(strings.TrimSpace(key(a)))
		kb := strings.ToLower(strings.TrimSpace(key(b)))
		if c, done := compareEmptyLast(ka, kb); done {
			return c
		}
		c := strings.Compare(ka, kb)
		if descending {
			return -c
		}
		return c
	})
	return out
}

// compareEmptyLast orders empty keys after non-empty ones. done is false
// when both keys are non-empty and the caller should compare them itself.
func compareEmptyLast(a, b string) (int, bool) {
	switch {
	case a == "" && b == "":
		return 0, true
	case a == "":
		return 1, true
	case b == "":
		return -1, true
	default:
		return 0, false
	}
}

// SortCatalog returns a copy of items ordered by the criterion, using the
// package COE table for manufacturer ordering.
func SortCatalog(items []GlassItem, criterion CatalogSortCriterion) []GlassItem {
	return SortCatalogWithCOE(items, criterion, ManufacturerCOE)
}

// SortCatalogWithCOE is SortCatalog with a caller-supplied manufacturer→COE
// table, for product domains other than the built-in one.
//
// Orderings:
//   - name, code: case-insensitive ascending; empty values cluster at the end.
//   - manufacturer: empty manufacturer last; known manufacturers ascend by
//     their lowest COE class, unknown ones sort after every known class;
//     class ties fall back to the manufacturer code, case-insensitive.
func SortCatalogWithCOE(items []GlassItem, criterion CatalogSortCriterion, table map[string][]int) []GlassItem {
	out := slices.Clone(items)

	switch criterion {
	case CatalogSortName:
		slices.SortStableFunc(out, func(a, b GlassItem) int {
			return compareStringEmptyLast(a.Name, b.Name)
		})
	case CatalogSortCode:
		slices.SortStableFunc(out, func(a, b GlassItem) int {
			return compareStringEmptyLast(a.Code, b.Code)
		})
	case CatalogSortManufacturer:
		slices.SortStableFunc(out, func(a, b GlassItem) int {
			return compareManufacturer(a.Manufacturer, b.Manufacturer, table)
		})
	}

	return out
}

func compareStringEmptyLast(a, b string) int {
	ka := strings.ToLower(strings.TrimSpace(a))
	kb := strings.ToLower(strings.TrimSpace(b))
	if c, done := compareEmptyLast(ka, kb); done {
		return c
	}
	return strings.Compare(ka, kb)
}

func compareManufacturer(a, b string, table map[string][]int) int {
	ka := strings.ToLower(strings.TrimSpace(a))
	kb := strings.ToLower(strings.TrimSpace(b))
	if c, done := compareEmptyLast(ka, kb); done {
		return c
	}

	coeA, okA := MinCOE(table, strings.TrimSpace(a))
	coeB, okB := MinCOE(table, strings.TrimSpace(b))

	// Unknown manufacturers sort after every known class.
	switch {
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	case okA && okB && coeA != coeB:
		if coeA < coeB {
			return -1
		}
		return 1
	}

	return strings.Compare(ka, kb)
}

// SortInventory returns a copy of items ordered by the criterion.
//
// Orderings:
//   - code: case-insensitive ascending; a missing catalog code compares as
//     the empty string and therefore sorts first (unlike catalog sorts).
//   - count: descending, largest quantity first.
//   - type: ascending by type classification, ties by catalog code.
func SortInventory(items []InventoryItem, criterion InventorySortCriterion) []InventoryItem {
	out := slices.Clone(items)

	switch criterion {
	case InventorySortCatalogCode:
		slices.SortStableFunc(out, func(a, b InventoryItem) int {
			return strings.Compare(strings.ToLower(a.CatalogCode), strings.ToLower(b.CatalogCode))
		})
	case InventorySortCount:
		slices.SortStableFunc(out, func(a, b InventoryItem) int {
			if a.Count > b.Count {
				return -1
			}
			if a.Count < b.Count {
				return 1
			}
			return 0
		})
	case InventorySortType:
		slices.SortStableFunc(out, func(a, b InventoryItem) int {
			if a.Type != b.Type {
				if a.Type < b.Type {
					return -1
				}
				return 1
			}
			return strings.Compare(strings.ToLower(a.CatalogCode), strings.ToLower(b.CatalogCode))
		})
	}

	return out
}
