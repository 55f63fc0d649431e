// ABOUTME: Home command showing the landing-page sections in the terminal
// ABOUTME: Prints featured, popular, new, and recently played game sections

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/gamedex/internal/views"
)

var homeCmd = &cobra.Command{
	Use:   "home",
	Short: "Show the home page sections",
	Long:  "Show the featured, popular, new, and recently played game sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		loadCatalog(cmd.Context())

		printSection(selector.Featured())
		printSection(selector.Popular())
		printSection(selector.Newest(views.NewCount))

		if recents := selector.RecentlyPlayed(); len(recents.Games) > 0 {
			printSection(recents)
		}

		return nil
	},
}

func printSection(view views.View) {
	bold := color.New(color.Bold).SprintFunc()

	fmt.Printf("%s\n", bold(view.Title))
	if len(view.Games) == 0 {
		fmt.Println(translator.Translate("no_games", nil))
	}
	for i := range view.Games {
		printGameRow(&view.Games[i])
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(homeCmd)
}
