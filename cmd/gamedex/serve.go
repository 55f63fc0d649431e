// ABOUTME: Serve command running the static site edge server
// ABOUTME: Serves site files with pretty-URL redirects for game and category pages

package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/harper/gamedex/internal/config"
	"github.com/harper/gamedex/internal/edge"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site with edge URL rewriting",
	Long: `Serve a static site directory over HTTP.

Pretty URLs are rewritten at the edge:

  /games/category/<category>.html  redirects to the filtered index page
  /games/<category>/<slug>.html    redirects to the game detail page

Static assets are served as-is, and unknown paths fall back to index.html.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		root, _ := cmd.Flags().GetString("root")

		info, err := os.Stat(root)
		if err != nil {
			return fmt.Errorf("site root not accessible: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("site root is not a directory: %s", root)
		}

		fmt.Printf("Serving %s on %s\n", root, addr)

		if err := http.ListenAndServe(addr, edge.NewHandler(root)); err != nil {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", config.DefaultServeAddr, "listen address")
	serveCmd.Flags().String("root", ".", "site root directory")
}
