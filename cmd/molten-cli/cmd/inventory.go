package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"molten/internal/application"
	"molten/internal/application/commands"
)

var inventorySort string

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "List the inventory, sorted",
	Long: `List inventory rows ordered by a criterion.

Criteria:
  code   ascending by catalog code
  count  descending, largest stash first
  type   ascending by form type, ties by catalog code

Examples:
  molten-cli inventory
  molten-cli inventory --sort count`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		criterion, err := application.ParseInventorySort(inventorySort)
		if err != nil {
			return err
		}

		items, err := commands.NewListInventoryCommand(GetRepo(), criterion).Execute(context.Background())
		if err != nil {
			return err
		}

		for _, item := range items {
			fmt.Printf("%-14s x%-8g type=%d  %s\n", item.CatalogCode, item.Count, item.Type, item.Notes)
		}
		return nil
	},
}

func init() {
	inventoryCmd.Flags().StringVarP(&inventorySort, "sort", "s", "code", "sort criterion: code, count, type")
	rootCmd.AddCommand(inventoryCmd)
}
