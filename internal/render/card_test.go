// ABOUTME: Tests for card descriptor construction and cover fallback behavior
// ABOUTME: Uses httptest to simulate covers that 404 at render time

package render

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harper/gamedex/internal/models"
	"github.com/harper/gamedex/internal/router"
)

func TestRenderCard(t *testing.T) {
	r := NewRenderer(router.New(router.ModeDeployed))
	g := &models.GameRecord{
		ID:       "g1",
		Name:     "Moto X3M",
		Category: "racing",
		Cover:    "https://cdn.example.com/moto.png",
	}

	card := r.RenderCard(g, LayoutFeatured, true)
	if card.Key != "g1" {
		t.Errorf("Key = %q", card.Key)
	}
	if card.Href != "games/racing/moto-x3m.html" {
		t.Errorf("Href = %q", card.Href)
	}
	if card.Cover != "https://cdn.example.com/moto.png" {
		t.Errorf("Cover = %q", card.Cover)
	}
	if card.Title != "Moto X3M" || card.Category != "racing" {
		t.Errorf("Title/Category = %q/%q", card.Title, card.Category)
	}
	if card.Layout != LayoutFeatured || !card.IsNew {
		t.Errorf("Layout/IsNew = %q/%v", card.Layout, card.IsNew)
	}
}

func TestRenderCardDefaults(t *testing.T) {
	r := NewRenderer(router.New(router.ModeLocal))
	card := r.RenderCard(&models.GameRecord{ID: "g1"}, "", false)

	if card.Cover != PlaceholderCover {
		t.Errorf("missing cover must use the placeholder, got %q", card.Cover)
	}
	if card.Title != "Unknown Game" {
		t.Errorf("Title = %q", card.Title)
	}
	if card.Category != "Other" {
		t.Errorf("Category = %q", card.Category)
	}
	if card.Layout != LayoutDefault {
		t.Errorf("Layout = %q", card.Layout)
	}
	if card.IsNew {
		t.Error("IsNew must default to false")
	}
}

func TestResolveCoverKeepsWorkingImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	card := CardDescriptor{Cover: server.URL + "/ok.png"}
	card.ResolveCover(context.Background())
	if card.Cover != server.URL+"/ok.png" {
		t.Errorf("working cover must be kept, got %q", card.Cover)
	}
}

func TestResolveCoverSwapsBrokenImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	card := CardDescriptor{Cover: server.URL + "/missing.png"}
	card.ResolveCover(context.Background())
	if card.Cover != BrokenCover {
		t.Errorf("404 cover must become the broken placeholder, got %q", card.Cover)
	}
}

func TestResolveCoverSwapsOnNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	card := CardDescriptor{Cover: server.URL + "/gone.png"}
	card.ResolveCover(context.Background())
	if card.Cover != BrokenCover {
		t.Errorf("unreachable cover must become the broken placeholder, got %q", card.Cover)
	}
}

func TestResolveCoverSkipsPlaceholder(t *testing.T) {
	card := CardDescriptor{Cover: PlaceholderCover}
	card.ResolveCover(context.Background())
	if card.Cover != PlaceholderCover {
		t.Errorf("placeholder cover must not be probed, got %q", card.Cover)
	}
}
