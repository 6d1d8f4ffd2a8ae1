package commands

import (
	"context"

	"molten/internal/domain"
	"molten/internal/ports"
	"molten/internal/search"
)

// SearchCommand runs a ranked weighted search over the catalog
type SearchCommand struct {
	repo   ports.CatalogRepository
	Query  string
	Config search.Config
	Limit  int // max results; <= 0 means no limit
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(repo ports.CatalogRepository, query string, cfg search.Config) *SearchCommand {
	return &SearchCommand{
		repo:   repo,
		Query:  query,
		Config: cfg,
	}
}

// Execute runs the search command and returns scored, sorted results
func (c *SearchCommand) Execute(ctx context.Context) ([]search.Result[domain.GlassItem], error) {
	items, err := c.repo.LoadCatalog()
	if err != nil {
		return nil, err
	}

	results := search.WeightedSearch(items, c.Query, search.DefaultFieldWeights, c.Config)
	if c.Limit > 0 && len(results) > c.Limit {
		results = results[:c.Limit]
	}
	return results, nil
}

// FilterCommand narrows the catalog with AND-of-terms filtering; quoted
// phrases in the query stay whole.
type FilterCommand struct {
	repo   ports.CatalogRepository
	Query  string
	Config search.Config
}

// NewFilterCommand creates a new FilterCommand
func NewFilterCommand(repo ports.CatalogRepository, query string, cfg search.Config) *FilterCommand {
	return &FilterCommand{
		repo:   repo,
		Query:  query,
		Config: cfg,
	}
}

// Execute runs the filter command
func (c *FilterCommand) Execute(ctx context.Context) ([]domain.GlassItem, error) {
	items, err := c.repo.LoadCatalog()
	if err != nil {
		return nil, err
	}
	return search.FilterWithQueryString(items, c.Query, c.Config), nil
}
