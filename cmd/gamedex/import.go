// ABOUTME: Import command for adding games to the catalog from RSS/Atom feeds
// ABOUTME: Converts feed items to game records and merges them into the local catalog file

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/gamedex/internal/feedimport"
)

var importCmd = &cobra.Command{
	Use:   "import <feed-url>",
	Short: "Import games from an RSS/Atom feed",
	Long:  "Fetch an RSS/Atom feed, convert its items to game records, and merge them into the local catalog file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		out, _ := cmd.Flags().GetString("out")

		if out == "" {
			out = cfg.GetCatalogSource()
		}
		if strings.HasPrefix(out, "http://") || strings.HasPrefix(out, "https://") {
			return fmt.Errorf("catalog source is a URL, use --out to choose a local file")
		}

		games, err := feedimport.FromFeed(cmd.Context(), args[0], feedimport.Options{Category: category})
		if err != nil {
			return fmt.Errorf("failed to import feed: %w", err)
		}
		if len(games) == 0 {
			fmt.Println("No importable items found")
			return nil
		}

		added, err := feedimport.MergeIntoFile(out, games)
		if err != nil {
			return fmt.Errorf("failed to update catalog: %w", err)
		}

		fmt.Printf("Imported %d new game(s) into %s (%d already present)\n", added, out, len(games)-added)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringP("category", "c", "", "force all imported games into this category")
	importCmd.Flags().String("out", "", "catalog file to merge into (default: configured catalog source)")
}
