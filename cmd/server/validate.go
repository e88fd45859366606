package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/atlas-api/internal/config"
)

var validateDir string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load the catalog and report what it contains",
	Long:  `Load every catalog document, build the index and print record counts. Fails on any decode error.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		dir := validateDir
		if dir == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			dir = cfg.Catalog.Dir
		}

		index, err := loadIndex(cmd.Context(), dir)
		if err != nil {
			return err
		}

		counts := index.Counts()
		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Strings(names)

		languages := index.Languages()
		fmt.Printf("catalog %s is valid\n", dir)
		fmt.Printf("  languages: %v (default %s)\n", languages.Available, languages.Default)
		for _, name := range names {
			fmt.Printf("  %s: %d\n", name, counts[name])
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateDir, "dir", "", "Catalog directory (defaults to CATALOG_DIR)")
}
