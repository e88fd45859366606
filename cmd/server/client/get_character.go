package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/atlas-api/internal/handlers/atlas/v1alpha1"
)

var getCharacterCmd = &cobra.Command{
	Use:   "get-character [id]",
	Short: "Get a character page",
	Long:  `Get a character by id, numeric id or internal name.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(v1alpha1.CatalogServiceName, "GetCharacter", map[string]any{"id": args[0]})
	},
}
