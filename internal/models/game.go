// ABOUTME: GameRecord model representing a single catalog game with optional metadata
// ABOUTME: Provides identity-key resolution, display fallbacks, and URL slug derivation

package models

import (
	"regexp"
	"strings"
)

// GameRecord represents one game in the catalog. The catalog resource is
// external and loosely schemaed, so every field except the identity pair
// may be absent.
type GameRecord struct {
	ID          string   `json:"id,omitempty"`
	URL         string   `json:"url,omitempty"`
	Name        string   `json:"name,omitempty"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Cover       string   `json:"cover,omitempty"`
	Description string   `json:"description,omitempty"`
	EmbedURL    string   `json:"embed_url,omitempty"`
	Developer   string   `json:"developer,omitempty"`
}

// PlaceholderURL marks a record that has no external link.
const PlaceholderURL = "#"

// IdentityKey returns the value used to reference this game in persisted
// lists: the ID when present, otherwise the URL. An empty return means the
// record cannot be tracked.
func (g *GameRecord) IdentityKey() string {
	if g.ID != "" {
		return g.ID
	}
	return g.URL
}

// DisplayName returns the game name, or a placeholder when absent.
func (g *GameRecord) DisplayName() string {
	if g.Name != "" {
		return g.Name
	}
	return "Unknown Game"
}

// DisplayCategory returns the category, defaulting to "Other".
func (g *GameRecord) DisplayCategory() string {
	if g.Category != "" {
		return g.Category
	}
	return "Other"
}

// DisplayDeveloper returns the developer, defaulting to "Unknown Developer".
func (g *GameRecord) DisplayDeveloper() string {
	if g.Developer != "" {
		return g.Developer
	}
	return "Unknown Developer"
}

// HasExternalLink reports whether the record points at a real external URL
// rather than the "#" placeholder.
func (g *GameRecord) HasExternalLink() bool {
	return g.URL != "" && g.URL != PlaceholderURL
}

// EmbedTarget returns the URL to load the playable game from. Prefers the
// explicit embed URL; CrazyGames links are rewritten to their embed
// endpoint; anything else falls back to the game URL itself.
func (g *GameRecord) EmbedTarget() string {
	if g.EmbedURL != "" {
		return g.EmbedURL
	}
	if g.URL == "" || g.URL == PlaceholderURL {
		return ""
	}
	if strings.Contains(g.URL, "crazygames.com") {
		parts := strings.Split(strings.TrimRight(g.URL, "/"), "/")
		slug := parts[len(parts)-1]
		return "https://www.crazygames.com/embed/" + slug
	}
	return g.URL
}

// MatchesKey reports whether key refers to this record by ID or URL.
func (g *GameRecord) MatchesKey(key string) bool {
	if key == "" {
		return false
	}
	return g.ID == key || g.URL == key
}

var (
	slugStrip   = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// Slugify converts a display name into a URL slug: lowercase, strip
// everything outside [a-z0-9\s-], whitespace runs become single hyphens,
// hyphen runs collapse. Total and idempotent; may return "" for degenerate
// input.
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return s
}

// Slug returns the record's URL slug. A name that slugs to "" falls back
// to the slugged identity key, and to the raw identity key as a last
// resort, so the result is only empty for untrackable records.
func (g *GameRecord) Slug() string {
	if s := Slugify(g.Name); s != "" {
		return s
	}
	key := g.IdentityKey()
	if s := Slugify(key); s != "" {
		return s
	}
	return key
}
