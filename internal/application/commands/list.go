package commands

import (
	"context"

	"molten/internal/domain"
	"molten/internal/ports"
)

// ListCatalogCommand lists catalog items ordered by a sort criterion
type ListCatalogCommand struct {
	repo      ports.CatalogRepository
	Criterion domain.CatalogSortCriterion
}

// NewListCatalogCommand creates a new ListCatalogCommand
func NewListCatalogCommand(repo ports.CatalogRepository, criterion domain.CatalogSortCriterion) *ListCatalogCommand {
	return &ListCatalogCommand{
		repo:      repo,
		Criterion: criterion,
	}
}

// Execute runs the list catalog command
func (c *ListCatalogCommand) Execute(ctx context.Context) ([]domain.GlassItem, error) {
	items, err := c.repo.LoadCatalog()
	if err != nil {
		return nil, err
	}
	return domain.SortCatalog(items, c.Criterion), nil
}

// ListInventoryCommand lists inventory rows ordered by a sort criterion
type ListInventoryCommand struct {
	repo      ports.CatalogRepository
	Criterion domain.InventorySortCriterion
}

// NewListInventoryCommand creates a new ListInventoryCommand
func NewListInventoryCommand(repo ports.CatalogRepository, criterion domain.InventorySortCriterion) *ListInventoryCommand {
	return &ListInventoryCommand{
		repo:      repo,
		Criterion: criterion,
	}
}

// Execute runs the list inventory command
func (c *ListInventoryCommand) Execute(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := c.repo.LoadInventory()
	if err != nil {
		return nil, err
	}
	return domain.SortInventory(items, c.Criterion), nil
}
