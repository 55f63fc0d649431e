// ABOUTME: Tests for the view selector: category and search filtering, sampling, related games
// ABOUTME: Random views use a seeded source so assertions stay deterministic

package views

import (
	"math/rand"
	"testing"

	"github.com/harper/gamedex/internal/catalog"
	"github.com/harper/gamedex/internal/i18n"
	"github.com/harper/gamedex/internal/models"
	"github.com/harper/gamedex/internal/storage"
	"github.com/harper/gamedex/internal/userdata"
)

func newSelector(t *testing.T, games []models.GameRecord) (*Selector, *userdata.Tracker) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cat := catalog.NewStore(games)
	tracker := userdata.NewTracker(store)
	translator := i18n.New(store)
	translator.SetLocale("en")
	sel := NewSelector(cat, tracker, translator, rand.New(rand.NewSource(1)))
	return sel, tracker
}

func sampleGames() []models.GameRecord {
	return []models.GameRecord{
		{ID: "g1", Name: "Moto X3M", Category: "racing", Tags: []string{"bike", "stunt"}},
		{ID: "g2", Name: "Block Blast", Category: "puzzle", Description: "match blocks"},
		{ID: "g3", Name: "Drift King", Category: "racing"},
		{ID: "g4", Name: "Sniper Duty", Category: "shooting", Tags: []string{"war"}},
		{ID: "g5", Name: "Farm Life", Category: "simulation"},
		{ID: "g6", Name: "Penalty Kicks", Category: "sports"},
		{ID: "g7", Name: "Tank War", Category: "action", Tags: []string{"war"}},
	}
}

func TestByCategoryCaseInsensitive(t *testing.T) {
	sel, _ := newSelector(t, sampleGames())

	upper := sel.ByCategory("RACING")
	lower := sel.ByCategory("racing")

	if len(upper.Games) != len(lower.Games) {
		t.Fatalf("case must not matter: %d vs %d", len(upper.Games), len(lower.Games))
	}
	for i := range upper.Games {
		if upper.Games[i].ID != lower.Games[i].ID {
			t.Errorf("result %d differs: %q vs %q", i, upper.Games[i].ID, lower.Games[i].ID)
		}
	}
}

func TestByCategoryPreservesCatalogOrder(t *testing.T) {
	sel, _ := newSelector(t, []models.GameRecord{
		{ID: "a", Name: "A", Category: "racing"},
		{ID: "b", Name: "B", Category: "puzzle"},
		{ID: "c", Name: "C", Category: "racing"},
	})

	v := sel.ByCategory("racing")
	if len(v.Games) != 2 || v.Games[0].ID != "a" || v.Games[1].ID != "c" {
		t.Errorf("expected [a c] in original order, got %v", v.Games)
	}
}

func TestByCategoryAllBypassesFilter(t *testing.T) {
	sel, _ := newSelector(t, sampleGames())
	v := sel.ByCategory("all")
	if len(v.Games) != 7 {
		t.Errorf("category all must return the whole catalog, got %d", len(v.Games))
	}
}

func TestSearchBlankTermResets(t *testing.T) {
	sel, _ := newSelector(t, sampleGames())

	for _, term := range []string{"", "   ", "\t"} {
		v := sel.Search(term)
		if len(v.Games) != 7 {
			t.Errorf("Search(%q) must return the full catalog, got %d", term, len(v.Games))
		}
	}
}

func TestSearchSpansFields(t *testing.T) {
	sel, _ := newSelector(t, sampleGames())

	tests := []struct {
		term string
		want []string
	}{
		{"moto", []string{"g1"}},               // name
		{"match", []string{"g2"}},              // description
		{"RACING", []string{"g1", "g3"}},       // category, case-insensitive
		{"war", []string{"g4", "g7"}},          // tag
		{"definitely-nothing", []string{}},
	}
	for _, tt := range tests {
		v := sel.Search(tt.term)
		if len(v.Games) != len(tt.want) {
			t.Errorf("Search(%q) returned %d games, want %d", tt.term, len(v.Games), len(tt.want))
			continue
		}
		for i, id := range tt.want {
			if v.Games[i].ID != id {
				t.Errorf("Search(%q)[%d] = %q, want %q", tt.term, i, v.Games[i].ID, id)
			}
		}
	}
}

func TestSearchTitleIncludesQuery(t *testing.T) {
	sel, _ := newSelector(t, sampleGames())
	v := sel.Search("moto")
	if want := `Search Results for "moto"`; v.Title != want {
		t.Errorf("Title = %q, want %q", v.Title, want)
	}
}

func TestNewestTakesTail(t *testing.T) {
	sel, _ := newSelector(t, sampleGames())

	v := sel.Newest(3)
	if len(v.Games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(v.Games))
	}
	if v.Games[0].ID != "g5" || v.Games[2].ID != "g7" {
		t.Errorf("expected catalog tail [g5 g6 g7], got %v", v.Games)
	}

	// n larger than the catalog returns everything.
	v = sel.Newest(50)
	if len(v.Games) != 7 {
		t.Errorf("expected full catalog, got %d", len(v.Games))
	}
}

func TestFeaturedSampleSizeAndDistinctness(t *testing.T) {
	sel, _ := newSelector(t, sampleGames())

	v := sel.Featured()
	if len(v.Games) != FeaturedCount {
		t.Fatalf("expected %d featured games, got %d", FeaturedCount, len(v.Games))
	}
	seen := map[string]bool{}
	for _, g := range v.Games {
		if seen[g.ID] {
			t.Errorf("duplicate game %q in sample", g.ID)
		}
		seen[g.ID] = true
	}
}

func TestPopularSmallCatalogReturnsAll(t *testing.T) {
	sel, _ := newSelector(t, sampleGames())
	v := sel.Popular()
	if len(v.Games) != 7 {
		t.Errorf("catalog smaller than sample size must return all, got %d", len(v.Games))
	}
}

func TestRelatedExcludesSelfAndPads(t *testing.T) {
	games := sampleGames()
	sel, _ := newSelector(t, games)

	moto, _ := catalog.NewStore(sampleGames()).FindByID("g1")
	v := sel.Related(moto)

	if len(v.Games) != RelatedCount {
		t.Fatalf("expected exactly %d related games, got %d", RelatedCount, len(v.Games))
	}
	seen := map[string]bool{}
	for _, g := range v.Games {
		if g.ID == "g1" {
			t.Error("related games must exclude the game itself")
		}
		if seen[g.ID] {
			t.Errorf("duplicate game %q in related set", g.ID)
		}
		seen[g.ID] = true
	}
	// True matches (same category or shared tag) come before random padding.
	if v.Games[0].ID != "g3" {
		t.Errorf("expected g3 (same category) first, got %q", v.Games[0].ID)
	}
}

func TestRecentlyPlayedDropsStaleKeys(t *testing.T) {
	sel, tracker := newSelector(t, sampleGames())

	tracker.RecordPlay(&models.GameRecord{ID: "g2"})
	tracker.RecordPlay(&models.GameRecord{ID: "deleted-game"})
	tracker.RecordPlay(&models.GameRecord{ID: "g1"})

	v := sel.RecentlyPlayed()
	if len(v.Games) != 2 {
		t.Fatalf("stale keys must be dropped, got %v", v.Games)
	}
	if v.Games[0].ID != "g1" || v.Games[1].ID != "g2" {
		t.Errorf("expected [g1 g2] most-recent-first, got %v", v.Games)
	}
}

func TestFavoritesView(t *testing.T) {
	sel, tracker := newSelector(t, sampleGames())

	tracker.ToggleFavorite(&models.GameRecord{ID: "g4"})
	tracker.ToggleFavorite(&models.GameRecord{ID: "gone"})

	v := sel.Favorites()
	if len(v.Games) != 1 || v.Games[0].ID != "g4" {
		t.Errorf("expected favorites [g4], got %v", v.Games)
	}
}

func TestForTokenSpecials(t *testing.T) {
	sel, _ := newSelector(t, sampleGames())

	if v := sel.ForToken(TokenAll); len(v.Games) != 7 {
		t.Errorf("all: got %d games", len(v.Games))
	}
	if v := sel.ForToken(TokenNewGames); len(v.Games) != 7 {
		t.Errorf("new-games on a small catalog: got %d games", len(v.Games))
	}
	if v := sel.ForToken(TokenTrending); len(v.Games) != 7 {
		t.Errorf("trending on a small catalog: got %d games", len(v.Games))
	}
	// all-categories falls through to the full catalog.
	v := sel.ForToken(TokenAllCategories)
	if len(v.Games) != 7 {
		t.Errorf("all-categories: got %d games", len(v.Games))
	}
	if v.Title != "All Categories" {
		t.Errorf("all-categories title = %q", v.Title)
	}
	// A literal category dispatches to ByCategory.
	if v := sel.ForToken("puzzle"); len(v.Games) != 1 || v.Games[0].ID != "g2" {
		t.Errorf("literal category: got %v", v.Games)
	}
}

func TestIsSpecial(t *testing.T) {
	for _, token := range []string{"all", "recently-played", "favorites", "new-games", "trending", "all-categories"} {
		if !IsSpecial(token) {
			t.Errorf("IsSpecial(%q) = false", token)
		}
	}
	for _, token := range []string{"racing", "", "Favorites"} {
		if IsSpecial(token) {
			t.Errorf("IsSpecial(%q) = true", token)
		}
	}
}

func TestSampleIsDeterministicWithFixedSeed(t *testing.T) {
	selA, _ := newSelector(t, sampleGames())
	selB, _ := newSelector(t, sampleGames())

	a := selA.Featured()
	b := selB.Featured()
	for i := range a.Games {
		if a.Games[i].ID != b.Games[i].ID {
			t.Fatalf("same seed must give same sample: %v vs %v", a.Games, b.Games)
		}
	}
}
