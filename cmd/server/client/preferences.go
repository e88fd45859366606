package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/atlas-api/internal/handlers/atlas/v1alpha1"
)

var registerClientCmd = &cobra.Command{
	Use:   "register-client",
	Short: "Register a new client and print its default preferences",
	RunE: func(_ *cobra.Command, _ []string) error {
		return call(v1alpha1.PreferenceServiceName, "RegisterClient", map[string]any{})
	},
}

var toggleMarkerCmd = &cobra.Command{
	Use:   "toggle-marker [client-id] [marker-id]",
	Short: "Mark or unmark a map marker for a client",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		return call(v1alpha1.PreferenceServiceName, "ToggleMarker", map[string]any{
			"clientId": args[0],
			"markerId": args[1],
		})
	},
}
