// ABOUTME: Show command for viewing full game details
// ABOUTME: Displays game metadata, rendered description, and related games

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/gamedex/internal/config"
	"github.com/harper/gamedex/internal/content"
	"github.com/harper/gamedex/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <game-key>",
	Short: "Show game details",
	Long:  "Display full details for a game by its id or url, including related games",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		checkCover, _ := cmd.Flags().GetBool("check-cover")

		loadCatalog(cmd.Context())

		game, err := gameCat.FindByID(args[0])
		if err != nil {
			return fmt.Errorf("game not found: %s", args[0])
		}

		card := cards.RenderCard(game, render.LayoutFeatured, false)
		if checkCover {
			card.ResolveCover(cmd.Context())
		}

		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Println(strings.Repeat("─", config.SeparatorWidth))

		fmt.Printf("%s\n\n", bold(game.DisplayName()))
		fmt.Printf("%s %s\n", faint("Category:"), translator.CategoryTitle(game.DisplayCategory()))
		fmt.Printf("%s %s\n", faint("Developer:"), game.DisplayDeveloper())

		if len(game.Tags) > 0 {
			fmt.Printf("%s %s\n", faint("Tags:"), strings.Join(game.Tags, ", "))
		}

		if game.HasExternalLink() {
			fmt.Printf("%s %s\n", faint("Link:"), cyan(game.URL))
		}
		if embed := game.EmbedTarget(); embed != "" {
			fmt.Printf("%s %s\n", faint("Play:"), cyan(embed))
		}
		fmt.Printf("%s %s\n", faint("Page:"), card.Href)
		fmt.Printf("%s %s\n", faint("Cover:"), card.Cover)

		fmt.Println(strings.Repeat("─", config.SeparatorWidth))

		if game.Description != "" {
			markdown := content.ToMarkdown(game.Description)

			rendered, err := glamour.Render(markdown, "dark")
			if err != nil {
				// Fall back to plain markdown if rendering fails
				fmt.Printf("%s\n", faint("(markdown rendering unavailable, showing plain text)"))
				fmt.Printf("\n%s\n", markdown)
			} else {
				fmt.Print(rendered)
			}
		} else {
			fmt.Println("\n(No description available)")
		}

		fmt.Println()

		fmt.Printf("%s\n", bold(translator.Translate("how_to_play", nil)))
		for _, hint := range render.Controls(game.DisplayCategory()) {
			fmt.Printf("  %s %s\n", faint(fmt.Sprintf("%-14s", hint.Icon)), hint.Text)
		}
		fmt.Println()

		related := selector.Related(game)
		if len(related.Games) > 0 {
			fmt.Printf("%s\n", bold(related.Title))
			for i := range related.Games {
				printGameRow(&related.Games[i])
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("check-cover", false, "probe the cover URL and fall back to a placeholder if it is dead")
}
