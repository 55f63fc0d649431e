// ABOUTME: View selector deriving filtered, titled game lists from the catalog and user state
// ABOUTME: Covers featured/popular/new/category/search/related plus the special pseudo-categories

package views

import (
	"math/rand"
	"strings"
	"time"

	"github.com/harper/gamedex/internal/catalog"
	"github.com/harper/gamedex/internal/i18n"
	"github.com/harper/gamedex/internal/models"
	"github.com/harper/gamedex/internal/userdata"
)

// View sizes.
const (
	FeaturedCount   = 6
	PopularCount    = 12
	NewCount        = 12
	NewSpecialCount = 20
	TrendingCount   = 20
	RelatedCount    = 6
)

// Special pseudo-category tokens. These are computed views, not literal
// game categories.
const (
	TokenAll            = "all"
	TokenRecentlyPlayed = "recently-played"
	TokenFavorites      = "favorites"
	TokenNewGames       = "new-games"
	TokenTrending       = "trending"
	TokenAllCategories  = "all-categories"
)

// IsSpecial reports whether token names a computed view rather than a
// literal category.
func IsSpecial(token string) bool {
	switch token {
	case TokenAll, TokenRecentlyPlayed, TokenFavorites, TokenNewGames, TokenTrending, TokenAllCategories:
		return true
	}
	return false
}

// View is a filtered, ordered subset of the catalog with a localized title.
type View struct {
	Games []models.GameRecord
	Title string
}

// Selector derives views. All operations are pure given the catalog and
// user state; the random views draw from the injected source.
type Selector struct {
	catalog *catalog.Store
	tracker *userdata.Tracker
	i18n    *i18n.Translator
	rng     *rand.Rand
}

// NewSelector creates a Selector. A nil rng gets a time-seeded source;
// tests inject a fixed seed for reproducibility.
func NewSelector(cat *catalog.Store, tracker *userdata.Tracker, translator *i18n.Translator, rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Selector{catalog: cat, tracker: tracker, i18n: translator, rng: rng}
}

// Featured returns a random sample for the featured section.
func (s *Selector) Featured() View {
	return View{Games: s.sample(s.catalog.Games(), FeaturedCount), Title: s.i18n.Translate("featured_games", nil)}
}

// Popular returns a random sample for the popular section.
func (s *Selector) Popular() View {
	return View{Games: s.sample(s.catalog.Games(), PopularCount), Title: s.i18n.Translate("popular_games", nil)}
}

// Newest returns the last n catalog records in order; insertion order is
// the catalog's recency proxy.
func (s *Selector) Newest(n int) View {
	games := s.catalog.Games()
	if len(games) > n {
		games = games[len(games)-n:]
	}
	return View{Games: games, Title: s.i18n.Translate("new_games_title", nil)}
}

// ByCategory returns games matching the category, case-insensitively.
// "all" (and the empty token) bypasses filtering and returns the whole
// catalog.
func (s *Selector) ByCategory(category string) View {
	if category == "" || strings.EqualFold(category, TokenAll) {
		return View{Games: s.catalog.Games(), Title: s.i18n.Translate("all_games", nil)}
	}

	var matched []models.GameRecord
	for _, g := range s.catalog.Games() {
		if strings.EqualFold(g.Category, category) {
			matched = append(matched, g)
		}
	}
	return View{Games: matched, Title: s.i18n.CategoryTitle(category)}
}

// Search filters by case-insensitive substring over name, description,
// category, and tags. A blank term resets to the full catalog.
func (s *Selector) Search(term string) View {
	term = strings.TrimSpace(term)
	if term == "" {
		return View{Games: s.catalog.Games(), Title: s.i18n.Translate("all_games", nil)}
	}

	needle := strings.ToLower(term)
	var matched []models.GameRecord
	for _, g := range s.catalog.Games() {
		if gameMatches(&g, needle) {
			matched = append(matched, g)
		}
	}
	title := s.i18n.Translate("search_results", map[string]string{"query": term})
	return View{Games: matched, Title: title}
}

func gameMatches(g *models.GameRecord, needle string) bool {
	if strings.Contains(strings.ToLower(g.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(g.Description), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(g.Category), needle) {
		return true
	}
	for _, tag := range g.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// Related returns up to RelatedCount games sharing a category or tag with
// game, excluding game itself, padded with random distinct records when the
// catalog has too few true matches.
func (s *Selector) Related(game *models.GameRecord) View {
	self := game.IdentityKey()
	selected := map[string]bool{self: true}

	var related []models.GameRecord
	for _, g := range s.catalog.Games() {
		if g.MatchesKey(self) {
			continue
		}
		if sharesCategoryOrTag(&g, game) {
			related = append(related, g)
			selected[g.IdentityKey()] = true
		}
	}

	if len(related) < RelatedCount {
		var rest []models.GameRecord
		for _, g := range s.catalog.Games() {
			if !selected[g.IdentityKey()] {
				rest = append(rest, g)
			}
		}
		related = append(related, s.sample(rest, RelatedCount-len(related))...)
	}

	if len(related) > RelatedCount {
		related = related[:RelatedCount]
	}
	return View{Games: related, Title: s.i18n.Translate("related_games", nil)}
}

func sharesCategoryOrTag(a, b *models.GameRecord) bool {
	if a.Category != "" && b.Category != "" && strings.EqualFold(a.Category, b.Category) {
		return true
	}
	for _, ta := range a.Tags {
		for _, tb := range b.Tags {
			if ta == tb {
				return true
			}
		}
	}
	return false
}

// RecentlyPlayed maps the recents list through the catalog, silently
// dropping keys that no longer resolve.
func (s *Selector) RecentlyPlayed() View {
	return View{Games: s.resolve(s.tracker.Recents()), Title: s.i18n.Translate("recently_played", nil)}
}

// Favorites maps the favorites list through the catalog, silently dropping
// keys that no longer resolve.
func (s *Selector) Favorites() View {
	return View{Games: s.resolve(s.tracker.Favorites()), Title: s.i18n.Translate("favorites", nil)}
}

func (s *Selector) resolve(keys []string) []models.GameRecord {
	var games []models.GameRecord
	for _, key := range keys {
		if g, err := s.catalog.FindByID(key); err == nil {
			games = append(games, *g)
		}
	}
	return games
}

// ForToken resolves a navigation token — a special pseudo-category or a
// literal category — to its view.
func (s *Selector) ForToken(token string) View {
	switch token {
	case "", TokenAll:
		return s.ByCategory(TokenAll)
	case TokenRecentlyPlayed:
		return s.RecentlyPlayed()
	case TokenFavorites:
		return s.Favorites()
	case TokenNewGames:
		v := s.Newest(NewSpecialCount)
		v.Title = s.i18n.Translate("new_games", nil)
		return v
	case TokenTrending:
		return View{Games: s.sample(s.catalog.Games(), TrendingCount), Title: s.i18n.Translate("trending_games", nil)}
	case TokenAllCategories:
		// No dedicated categories index; shows the full catalog under the
		// All Categories title, as upstream does.
		return View{Games: s.catalog.Games(), Title: s.i18n.Translate("all_categories", nil)}
	default:
		return s.ByCategory(token)
	}
}

// sample returns min(n, len(games)) records chosen uniformly without
// replacement. The input slice is never mutated.
func (s *Selector) sample(games []models.GameRecord, n int) []models.GameRecord {
	if len(games) == 0 || n <= 0 {
		return nil
	}
	if len(games) <= n {
		out := make([]models.GameRecord, len(games))
		copy(out, games)
		return out
	}

	out := make([]models.GameRecord, len(games))
	copy(out, games)
	for i := len(out) - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out[:n]
}
