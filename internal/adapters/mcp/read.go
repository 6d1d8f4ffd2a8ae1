package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"molten/internal/application"
	"molten/internal/application/commands"
	"molten/internal/domain"
	"molten/internal/ports"
	"molten/internal/search"
)

// RegisterReadTools adds all read-only catalog tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.CatalogRepository) {
	s.AddTool(searchTool(), searchHandler(repo))
	s.AddTool(listCatalogTool(), listCatalogHandler(repo))
	s.AddTool(listInventoryTool(), listInventoryHandler(repo))
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search_catalog",
		mcp.WithDescription("Search the glass catalog. Returns matches ranked by relevance; quoted phrases are matched whole."),
		mcp.WithString("query",
			mcp.Description("Search query"),
			mcp.Required(),
		),
		mcp.WithBoolean("fuzzy",
			mcp.Description("Tolerate small typos (edit distance up to 2)"),
		),
	)
}

func searchHandler(repo ports.CatalogRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if err := application.ValidateRequired("query", query); err != nil {
			return toolError(err)
		}

		cfg := search.DefaultConfig()
		if req.GetBool("fuzzy", false) {
			cfg = search.FuzzyConfig()
		}

		cmd := commands.NewSearchCommand(repo, query, cfg)
		results, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%.2f  %s  %s  [%s]\n", r.Score, r.Item.Code, r.Item.Name, strings.Join(r.MatchedFields, ","))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list catalog ---

func listCatalogTool() mcp.Tool {
	return mcp.NewTool("list_catalog",
		mcp.WithDescription("List catalog items sorted by a criterion. Manufacturer order groups by COE compatibility class."),
		mcp.WithString("sort",
			mcp.Description("Sort criterion: name, code, or manufacturer (default name)"),
		),
	)
}

func listCatalogHandler(repo ports.CatalogRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		criterion, err := application.ParseCatalogSort(req.GetString("sort", "name"))
		if err != nil {
			return toolError(err)
		}

		items, err := commands.NewListCatalogCommand(repo, criterion).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(items, formatGlassItem)
	}
}

// --- list inventory ---

func listInventoryTool() mcp.Tool {
	return mcp.NewTool("list_inventory",
		mcp.WithDescription("List inventory rows sorted by a criterion. Count order is descending (largest stash first)."),
		mcp.WithString("sort",
			mcp.Description("Sort criterion: code, count, or type (default code)"),
		),
	)
}

func listInventoryHandler(repo ports.CatalogRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		criterion, err := application.ParseInventorySort(req.GetString("sort", "code"))
		if err != nil {
			return toolError(err)
		}

		items, err := commands.NewListInventoryCommand(repo, criterion).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(items, formatInventoryItem)
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatGlassItem(g domain.GlassItem) string {
	return fmt.Sprintf("%s  %s  %s (COE %s)", g.Code, g.Name, g.Manufacturer, g.COE)
}

func formatInventoryItem(i domain.InventoryItem) string {
	return fmt.Sprintf("%s  x%g  type=%d", i.CatalogCode, i.Count, i.Type)
}
