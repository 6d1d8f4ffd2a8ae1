package ports

import "molten/internal/domain"

// CatalogRepository defines the interface for loading catalog data. The
// search and sort core never touches storage itself; a repository hands it
// in-memory collections to work on.
type CatalogRepository interface {
	LoadCatalog() ([]domain.GlassItem, error)
	LoadInventory() ([]domain.InventoryItem, error)
}
