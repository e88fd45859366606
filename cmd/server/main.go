// Package main is the entry point for the atlas gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/atlas-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "atlas-api",
	Short: "Atlas API gRPC Server",
	Long:  `Atlas API serves a multilingual game content catalog and per-client map preferences over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
