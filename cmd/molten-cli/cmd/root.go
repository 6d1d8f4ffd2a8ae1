package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"molten/internal/adapters/jsonfile"
	"molten/internal/config"
	"molten/internal/ports"
)

var (
	catalogPath   string
	inventoryPath string
	repo          ports.CatalogRepository
)

var rootCmd = &cobra.Command{
	Use:   "molten-cli",
	Short: "CLI for searching and sorting glass catalogs",
	Long: `molten-cli searches and sorts hobbyist glass catalogs: items identified
by code, name, manufacturer, tags, and notes.

Search results are ranked by weighted relevance with optional typo
tolerance. Catalog listings can be ordered by name, code, or manufacturer,
where manufacturer order groups by COE compatibility class.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		repo = jsonfile.NewRepository(catalogPath, inventoryPath)
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", config.CatalogPath(), "path to the catalog JSON file")
	rootCmd.PersistentFlags().StringVarP(&inventoryPath, "inventory", "i", config.InventoryPath(), "path to the inventory JSON file")
}

// GetRepo returns the initialized repository
func GetRepo() ports.CatalogRepository {
	return repo
}
