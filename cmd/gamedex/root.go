// ABOUTME: Root Cobra command and global flags
// ABOUTME: Sets up CLI structure and initializes storage, tracker, and translator

package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/gamedex/internal/catalog"
	"github.com/harper/gamedex/internal/config"
	"github.com/harper/gamedex/internal/i18n"
	"github.com/harper/gamedex/internal/render"
	"github.com/harper/gamedex/internal/router"
	"github.com/harper/gamedex/internal/storage"
	"github.com/harper/gamedex/internal/userdata"
	"github.com/harper/gamedex/internal/views"
)

var (
	catalogFlag string
	dataDirFlag string
	modeFlag    string

	cfg        *config.Config
	store      storage.Store
	tracker    *userdata.Tracker
	translator *i18n.Translator

	gameCat  *catalog.Store
	selector *views.Selector
	nav      *router.NavRouter
	cards    *render.Renderer
)

var rootCmd = &cobra.Command{
	Use:   "gamedex",
	Short: "Browser game catalog for humans and AI agents",
	Long: `
 ██████╗  █████╗ ███╗   ███╗███████╗██████╗ ███████╗██╗  ██╗
██╔════╝ ██╔══██╗████╗ ████║██╔════╝██╔══██╗██╔════╝╚██╗██╔╝
██║  ███╗███████║██╔████╔██║█████╗  ██║  ██║█████╗   ╚███╔╝
██║   ██║██╔══██║██║╚██╔╝██║██╔══╝  ██║  ██║██╔══╝   ██╔██╗
╚██████╔╝██║  ██║██║ ╚═╝ ██║███████╗██████╔╝███████╗██╔╝ ██╗
 ╚═════╝ ╚═╝  ╚═╝╚═╝     ╚═╝╚══════╝╚═════╝ ╚══════╝╚═╝  ╚═╝

Browse a catalog of browser games, track favorites and recent plays,
and expose everything via MCP for AI agents.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Flags override the config file
		if catalogFlag != "" {
			cfg.CatalogSource = catalogFlag
		}
		if dataDirFlag != "" {
			cfg.DataDir = dataDirFlag
		}
		if modeFlag != "" {
			cfg.Mode = modeFlag
		}

		store, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		tracker = userdata.NewTracker(store)
		translator = i18n.New(store)
		nav = router.New(router.ParseMode(cfg.GetMode()))
		cards = render.NewRenderer(nav)

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			if err := store.Close(); err != nil {
				return fmt.Errorf("failed to close storage: %w", err)
			}
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "catalog source: URL or file path (default: ~/.local/share/gamedex/games_data.json)")
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default: ~/.local/share/gamedex)")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "deployment mode for game URLs: local or deployed")
}

// loadCatalog loads the catalog on first use. Commands that don't touch
// the catalog never pay for a fetch. A failed load warns and falls back
// to the built-in catalog rather than aborting the command.
func loadCatalog(ctx context.Context) {
	if gameCat != nil {
		return
	}

	cat, err := catalog.LoadOrFallback(ctx, cfg.GetCatalogSource())
	if err != nil {
		faint := color.New(color.Faint).SprintFunc()
		fmt.Printf("%s %s\n", faint(translator.Translate("error_loading", nil)), faint(fmt.Sprintf("(%v)", err)))
	}

	gameCat = cat
	selector = views.NewSelector(gameCat, tracker, translator, nil)
}
