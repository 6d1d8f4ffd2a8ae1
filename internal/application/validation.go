package application

import (
	"fmt"
	"strings"

	"molten/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ParseCatalogSort resolves a criterion name for catalog listings.
func ParseCatalogSort(name string) (domain.CatalogSortCriterion, error) {
	c, ok := domain.ParseCatalogSort(name)
	if !ok {
		return 0, &CriterionError{
			Criterion: name,
			Valid:     []string{"name", "code", "manufacturer"},
		}
	}
	return c, nil
}

// ParseInventorySort resolves a criterion name for inventory listings.
func ParseInventorySort(name string) (domain.InventorySortCriterion, error) {
	c, ok := domain.ParseInventorySort(name)
	if !ok {
		return 0, &CriterionError{
			Criterion: name,
			Valid:     []string{"code", "count", "type"},
		}
	}
	return c, nil
}
