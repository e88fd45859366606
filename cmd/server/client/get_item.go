package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/atlas-api/internal/handlers/atlas/v1alpha1"
)

var getItemCmd = &cobra.Command{
	Use:   "get-item [id]",
	Short: "Get an item page",
	Long:  `Get an item by id, numeric mod id or internal name, with its category and related recipes.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(v1alpha1.CatalogServiceName, "GetItem", map[string]any{"id": args[0]})
	},
}
