// ABOUTME: Fav command for toggling a game's favorite status
// ABOUTME: Adds or removes a game from the favorites list

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var favCmd = &cobra.Command{
	Use:   "fav <game-key>",
	Short: "Toggle a game's favorite status",
	Long:  "Add a game to the favorites list, or remove it if already favorited",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loadCatalog(cmd.Context())

		game, err := gameCat.FindByID(args[0])
		if err != nil {
			return fmt.Errorf("game not found: %s", args[0])
		}

		if tracker.ToggleFavorite(game) {
			fmt.Printf("★ %s: %s\n", translator.Translate("add_to_favorites", nil), game.DisplayName())
		} else {
			fmt.Printf("☆ %s: %s\n", translator.Translate("remove_from_favorites", nil), game.DisplayName())
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(favCmd)
}
