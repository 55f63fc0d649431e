// ABOUTME: Card renderer converting game records into renderable card descriptors
// ABOUTME: Handles cover placeholder fallbacks, category badges, and the new-game badge

package render

import (
	"context"
	"net/http"
	"time"

	"github.com/harper/gamedex/internal/models"
	"github.com/harper/gamedex/internal/router"
)

// Placeholder cover URLs.
const (
	PlaceholderCover = "https://via.placeholder.com/300x200/cccccc/ffffff?text=Game"
	BrokenCover      = "https://via.placeholder.com/300x200/cccccc/ffffff?text=Unavailable"
)

// Layout hints for card grids. Consumers map these to their own column
// classes; the renderer only passes them through.
const (
	LayoutDefault  = "default"
	LayoutFeatured = "featured"
)

// CardDescriptor is everything needed to render one game card.
type CardDescriptor struct {
	Key      string // identity key
	Href     string // navigation target from the router
	Cover    string // cover image URL, placeholder when absent
	Title    string
	Category string // category badge text
	Layout   string
	IsNew    bool // show the "New" badge
}

// Renderer builds card descriptors; hrefs come from the injected router so
// the card never decides URL shape itself.
type Renderer struct {
	nav *router.NavRouter
}

// NewRenderer creates a card renderer backed by nav.
func NewRenderer(nav *router.NavRouter) *Renderer {
	return &Renderer{nav: nav}
}

// RenderCard converts a game into a card descriptor. Pure: same inputs,
// same descriptor.
func (r *Renderer) RenderCard(game *models.GameRecord, layout string, isNew bool) CardDescriptor {
	if layout == "" {
		layout = LayoutDefault
	}
	cover := game.Cover
	if cover == "" {
		cover = PlaceholderCover
	}
	return CardDescriptor{
		Key:      game.IdentityKey(),
		Href:     r.nav.GameURL(game),
		Cover:    cover,
		Title:    game.DisplayName(),
		Category: game.DisplayCategory(),
		Layout:   layout,
		IsNew:    isNew,
	}
}

// coverClient bounds cover probes; a slow CDN must not stall rendering.
var coverClient = &http.Client{Timeout: 5 * time.Second}

// ResolveCover checks that the card's cover URL actually loads and swaps in
// the broken-image placeholder when it does not. Mirrors the onerror
// fallback a browser applies at render time; any probe failure degrades to
// the placeholder rather than an error.
func (c *CardDescriptor) ResolveCover(ctx context.Context) {
	if c.Cover == PlaceholderCover {
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.Cover, nil)
	if err != nil {
		c.Cover = BrokenCover
		return
	}
	resp, err := coverClient.Do(req)
	if err != nil {
		c.Cover = BrokenCover
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		c.Cover = BrokenCover
	}
}
