// Package jsonfile loads catalog and inventory collections from the JSON
// files produced by the manufacturer catalog tooling. It is read-only: the
// search and sort core never writes anything back.
package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"molten/internal/domain"
)

// Repository implements ports.CatalogRepository from JSON files on disk
type Repository struct {
	catalogPath   string
	inventoryPath string
}

// NewRepository creates a new jsonfile repository
func NewRepository(catalogPath, inventoryPath string) *Repository {
	return &Repository{
		catalogPath:   expandHome(catalogPath),
		inventoryPath: expandHome(inventoryPath),
	}
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return path
}

// glassRecord mirrors the scraper output schema for one catalog entry.
type glassRecord struct {
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	Manufacturer string   `json:"manufacturer"`
	COE          string   `json:"coe"`
	Type         string   `json:"type"`
	Tags         []string `json:"tags"`
	Synonyms     []string `json:"synonyms"`
	Description  string   `json:"manufacturer_description"`
}

// LoadCatalog reads the catalog file. Both supported layouts are accepted:
// a bare array of entries, or an object with a "colors" key.
func (r *Repository) LoadCatalog() ([]domain.GlassItem, error) {
	data, err := os.ReadFile(r.catalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var records []glassRecord
	if err := json.Unmarshal(data, &records); err != nil {
		var wrapped struct {
			Colors []glassRecord `json:"colors"`
		}
		if err2 := json.Unmarshal(data, &wrapped); err2 != nil {
			return nil, fmt.Errorf("failed to parse catalog: %w", err)
		}
		records = wrapped.Colors
	}

	items := make([]domain.GlassItem, 0, len(records))
	for _, rec := range records {
		items = append(items, domain.GlassItem{
			Code:         strings.TrimSpace(rec.Code),
			Name:         strings.TrimSpace(rec.Name),
			Manufacturer: strings.TrimSpace(rec.Manufacturer),
			COE:          strings.TrimSpace(rec.COE),
			Type:         strings.TrimSpace(rec.Type),
			Tags:         rec.Tags,
			Synonyms:     rec.Synonyms,
			Notes:        strings.TrimSpace(rec.Description),
		})
	}
	return items, nil
}

// inventoryRecord mirrors the inventory export schema for one stash row.
type inventoryRecord struct {
	ID          string  `json:"id"`
	CatalogCode string  `json:"catalog_code"`
	Count       float64 `json:"count"`
	Type        int     `json:"type"`
	Notes       string  `json:"notes"`
}

// LoadInventory reads the inventory file. A missing file is an empty
// inventory, not an error.
func (r *Repository) LoadInventory() ([]domain.InventoryItem, error) {
	data, err := os.ReadFile(r.inventoryPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}

	var records []inventoryRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse inventory: %w", err)
	}

	items := make([]domain.InventoryItem, 0, len(records))
	for _, rec := range records {
		items = append(items, domain.InventoryItem{
			ID:          rec.ID,
			CatalogCode: strings.TrimSpace(rec.CatalogCode),
			Count:       rec.Count,
			Type:        rec.Type,
			Notes:       rec.Notes,
		})
	}
	return items, nil
}
