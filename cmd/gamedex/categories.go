// ABOUTME: Categories command listing distinct game categories
// ABOUTME: Shows each category with its localized title and game count

package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "List game categories",
	Long:    "List the distinct game categories in the catalog with game counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		loadCatalog(cmd.Context())

		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		fmt.Printf("%s\n", bold(translator.Translate("game_categories", nil)))

		categories := gameCat.Categories()
		if len(categories) == 0 {
			fmt.Println(translator.Translate("no_games", nil))
			return nil
		}

		counts := make(map[string]int)
		for _, game := range gameCat.Games() {
			counts[strings.ToLower(game.DisplayCategory())]++
		}

		for _, category := range categories {
			fmt.Printf("%-16s %s %s\n", category, translator.CategoryTitle(category), faint(fmt.Sprintf("(%d)", counts[category])))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
