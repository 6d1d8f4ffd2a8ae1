package config

import "os"

const (
	DefaultCatalogPath   = "~/Documents/molten/catalog.json"
	DefaultInventoryPath = "~/Documents/molten/inventory.json"
)

// CatalogPath returns the catalog file path from MOLTEN_CATALOG env var,
// falling back to DefaultCatalogPath.
func CatalogPath() string {
	if env := os.Getenv("MOLTEN_CATALOG"); env != "" {
		return env
	}
	return DefaultCatalogPath
}

// InventoryPath returns the inventory file path from MOLTEN_INVENTORY env
// var, falling back to DefaultInventoryPath.
func InventoryPath() string {
	if env := os.Getenv("MOLTEN_INVENTORY"); env != "" {
		return env
	}
	return DefaultInventoryPath
}
