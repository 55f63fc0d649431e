// ABOUTME: Navigation router mapping games and categories to URLs by deployment mode
// ABOUTME: Local mode emits query-string pages; deployed mode emits edge-rewritten pretty paths

package router

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/harper/gamedex/internal/models"
	"github.com/harper/gamedex/internal/views"
)

// Mode selects the URL shape the router produces. The deployed edge
// function rewrites pretty paths back to query-string pages; no such
// rewrite exists locally, so local mode must link the query-string pages
// directly.
type Mode int

const (
	ModeLocal Mode = iota
	ModeDeployed
)

// ParseMode maps a config string to a Mode. Unknown values default to
// local, the safe shape in every environment.
func ParseMode(s string) Mode {
	if strings.EqualFold(s, "deployed") {
		return ModeDeployed
	}
	return ModeLocal
}

// String returns the config spelling of the mode.
func (m Mode) String() string {
	if m == ModeDeployed {
		return "deployed"
	}
	return "local"
}

// IntentKind says what a user action resolves to.
type IntentKind int

const (
	// IntentNavigate carries a URL for a full page navigation.
	IntentNavigate IntentKind = iota
	// IntentView carries a token for an in-page view switch.
	IntentView
)

// Intent is the outcome of a navigation decision: either go to a URL or
// switch the current view.
type Intent struct {
	Kind  IntentKind
	URL   string
	Token string
}

// NavRouter builds navigation URLs for one deployment mode.
type NavRouter struct {
	mode Mode
}

// New creates a NavRouter for the given mode.
func New(mode Mode) *NavRouter {
	return &NavRouter{mode: mode}
}

// Mode returns the router's deployment mode.
func (r *NavRouter) Mode() Mode {
	return r.mode
}

// GameURL returns the navigation target for opening a game's detail page.
func (r *NavRouter) GameURL(game *models.GameRecord) string {
	category := strings.ToLower(game.DisplayCategory())
	if r.mode == ModeDeployed {
		return fmt.Sprintf("games/%s/%s.html", category, game.Slug())
	}
	// Locally the game page is addressed by query string. The URL doubles
	// as the identifier when present since many records have no ID in the
	// source data; the slug is the last resort.
	idParam := game.IdentityKey()
	if !game.HasExternalLink() && game.ID == "" {
		idParam = game.Slug()
	}
	return fmt.Sprintf("game.html?id=%s&category=%s", url.QueryEscape(idParam), url.QueryEscape(category))
}

// CategoryURL returns the navigation target for a category listing.
func (r *NavRouter) CategoryURL(category string) string {
	category = strings.ToLower(category)
	if r.mode == ModeDeployed {
		return fmt.Sprintf("games/category/%s.html", category)
	}
	return fmt.Sprintf("index.html?category=%s", url.QueryEscape(category))
}

// OnCategorySelected resolves a sidebar category activation. Special
// pseudo-categories are always in-page view switches, never navigations;
// real categories navigate to their listing URL.
func (r *NavRouter) OnCategorySelected(token string) Intent {
	if token == "" || views.IsSpecial(token) {
		return Intent{Kind: IntentView, Token: token}
	}
	return Intent{Kind: IntentNavigate, URL: r.CategoryURL(token)}
}

// OnCardActivated resolves a game card activation to its detail-page
// navigation.
func (r *NavRouter) OnCardActivated(game *models.GameRecord) Intent {
	return Intent{Kind: IntentNavigate, URL: r.GameURL(game)}
}

// OnSearchSubmitted resolves a search submission: always an in-page view,
// with the trimmed term carried in the token.
func (r *NavRouter) OnSearchSubmitted(term string) Intent {
	return Intent{Kind: IntentView, Token: strings.TrimSpace(term)}
}
