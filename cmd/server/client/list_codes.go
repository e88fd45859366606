package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/atlas-api/internal/handlers/atlas/v1alpha1"
)

var activeOnly bool

var listCodesCmd = &cobra.Command{
	Use:   "list-codes",
	Short: "List redemption codes",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(v1alpha1.CatalogServiceName, "ListCodes", map[string]any{"activeOnly": activeOnly})
	},
}

func init() {
	listCodesCmd.Flags().BoolVar(&activeOnly, "active", false, "Only list codes that have not expired")
}
