// ABOUTME: Play command for launching games in the browser
// ABOUTME: Opens the game's play URL and records it as recently played

package main

import (
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play <game-key>",
	Short: "Play a game in the browser",
	Long:  "Open a game's play URL in your default browser and record it as recently played",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		loadCatalog(cmd.Context())

		game, err := gameCat.FindByID(args[0])
		if err != nil {
			return fmt.Errorf("game not found: %s", args[0])
		}

		target := game.EmbedTarget()
		if target == "" && game.HasExternalLink() {
			target = game.URL
		}
		if target == "" {
			return fmt.Errorf("game has no playable link: %s", game.DisplayName())
		}

		// Validate URL format and scheme for security
		parsedURL, err := url.Parse(target)
		if err != nil {
			return fmt.Errorf("game has malformed link: %w", err)
		}
		if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
			return fmt.Errorf("game link must be http or https, got: %s", parsedURL.Scheme)
		}

		if err := openBrowser(parsedURL.String()); err != nil {
			return fmt.Errorf("failed to open browser: %w", err)
		}

		tracker.RecordPlay(game)

		fmt.Printf("▶ Playing: %s\n", game.DisplayName())

		return nil
	},
}

// openBrowser opens a URL in the default browser for the current platform
func openBrowser(urlStr string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", urlStr)
	case "linux":
		cmd = exec.Command("xdg-open", urlStr)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", urlStr)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	// Start the browser
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start browser: %w", err)
	}

	// Reap the process asynchronously to prevent zombie processes
	go cmd.Wait()

	return nil
}

func init() {
	rootCmd.AddCommand(playCmd)
}
