package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"molten/internal/adapters/jsonfile"
	mcpadapter "molten/internal/adapters/mcp"
	"molten/internal/config"
)

func main() {
	catalogFlag := flag.String("catalog", config.CatalogPath(), "path to the catalog JSON file")
	inventoryFlag := flag.String("inventory", config.InventoryPath(), "path to the inventory JSON file")
	flag.Parse()

	repo := jsonfile.NewRepository(*catalogFlag, *inventoryFlag)

	mcpServer := server.NewMCPServer(
		"molten-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, repo)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("molten-mcp: %v", err)
	}
}
