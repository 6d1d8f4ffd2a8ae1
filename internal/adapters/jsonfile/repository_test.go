package jsonfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadCatalogArrayLayout(t *testing.T) {
	dir := t.TempDir()
	catalog := writeFile(t, dir, "catalog.json", `[
		{"code": "EF-591-246", "name": " Dark Red ", "manufacturer": "EF", "coe": "104", "type": "rod", "tags": ["transparent"], "synonyms": ["oxblood"]},
		{"code": "GA-033", "name": "Cobalt", "manufacturer": "GA", "coe": "33", "type": "rod"}
	]`)

	repo := NewRepository(catalog, filepath.Join(dir, "missing.json"))
	items, err := repo.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Name != "Dark Red" {
		t.Errorf("name = %q, want trimmed %q", items[0].Name, "Dark Red")
	}
	if items[0].Manufacturer != "EF" || items[0].COE != "104" {
		t.Errorf("manufacturer/coe = %q/%q", items[0].Manufacturer, items[0].COE)
	}
	if len(items[0].Synonyms) != 1 || items[0].Synonyms[0] != "oxblood" {
		t.Errorf("synonyms = %v", items[0].Synonyms)
	}
}

func TestLoadCatalogColorsLayout(t *testing.T) {
	dir := t.TempDir()
	catalog := writeFile(t, dir, "catalog.json", `{"colors": [
		{"code": "CIM-905", "name": "Red Roof Tile", "manufacturer": "CIM", "coe": "104"}
	]}`)

	repo := NewRepository(catalog, filepath.Join(dir, "missing.json"))
	items, err := repo.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(items) != 1 || items[0].Code != "CIM-905" {
		t.Errorf("items = %v, want the single wrapped entry", items)
	}
}

func TestLoadCatalogErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		repo := NewRepository(filepath.Join(dir, "nope.json"), filepath.Join(dir, "nope.json"))
		if _, err := repo.LoadCatalog(); err == nil {
			t.Error("expected error for missing catalog")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		catalog := writeFile(t, dir, "bad.json", `{"colors": `)
		repo := NewRepository(catalog, catalog)
		if _, err := repo.LoadCatalog(); err == nil {
			t.Error("expected error for malformed catalog")
		}
	})
}

func TestLoadInventory(t *testing.T) {
	dir := t.TempDir()
	inventory := writeFile(t, dir, "inventory.json", `[
		{"id": "1", "catalog_code": "EF-591-246", "count": 12.5, "type": 1, "notes": "half used"}
	]`)

	repo := NewRepository(filepath.Join(dir, "catalog.json"), inventory)
	items, err := repo.LoadInventory()
	if err != nil {
		t.Fatalf("LoadInventory: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Count != 12.5 || items[0].Type != 1 {
		t.Errorf("count/type = %v/%d", items[0].Count, items[0].Type)
	}
}

func TestLoadInventoryMissingFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	repo := NewRepository(filepath.Join(dir, "catalog.json"), filepath.Join(dir, "inventory.json"))

	items, err := repo.LoadInventory()
	if err != nil {
		t.Fatalf("LoadInventory: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want empty inventory", len(items))
	}
}
