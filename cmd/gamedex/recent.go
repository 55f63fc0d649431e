// ABOUTME: Recent and favorites commands for viewing tracked games
// ABOUTME: Lists recently played games and the favorites list

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var recentCmd = &cobra.Command{
	Use:     "recent",
	Aliases: []string{"recents"},
	Short:   "List recently played games",
	Long:    "List recently played games, most recent first",
	RunE: func(cmd *cobra.Command, args []string) error {
		loadCatalog(cmd.Context())

		view := selector.RecentlyPlayed()

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s\n", bold(view.Title))

		if len(view.Games) == 0 {
			fmt.Println(translator.Translate("no_games", nil))
			return nil
		}

		for i := range view.Games {
			printGameRow(&view.Games[i])
		}

		return nil
	},
}

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"favs"},
	Short:   "List favorite games",
	Long:    "List the games in the favorites list",
	RunE: func(cmd *cobra.Command, args []string) error {
		loadCatalog(cmd.Context())

		view := selector.Favorites()

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s\n", bold(view.Title))

		if len(view.Games) == 0 {
			fmt.Println(translator.Translate("no_games", nil))
			return nil
		}

		for i := range view.Games {
			printGameRow(&view.Games[i])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(recentCmd)
	rootCmd.AddCommand(favoritesCmd)
}
