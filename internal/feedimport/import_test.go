// ABOUTME: Tests for feed-to-catalog import: item mapping, cover extraction, file merging
// ABOUTME: Uses httptest to serve a small RSS document end to end

package feedimport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmcdole/gofeed"

	"github.com/harper/gamedex/internal/models"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>New Browser Games</title>
    <item>
      <title>Moto X3M</title>
      <link>https://example.com/games/moto-x3m</link>
      <category>Racing</category>
      <description>&lt;p&gt;Ride &lt;img src="https://cdn.example.com/moto.png"/&gt; fast bikes&lt;/p&gt;</description>
    </item>
    <item>
      <title>No Link Game</title>
      <description>should be skipped</description>
    </item>
  </channel>
</rss>`

func TestFromFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	games, err := FromFeed(context.Background(), server.URL, Options{})
	if err != nil {
		t.Fatalf("FromFeed: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game (linkless item skipped), got %d", len(games))
	}

	g := games[0]
	if g.Name != "Moto X3M" {
		t.Errorf("Name = %q", g.Name)
	}
	if g.URL != "https://example.com/games/moto-x3m" {
		t.Errorf("URL = %q", g.URL)
	}
	if g.Category != "racing" {
		t.Errorf("Category = %q", g.Category)
	}
	if g.Cover != "https://cdn.example.com/moto.png" {
		t.Errorf("Cover = %q", g.Cover)
	}
	if g.ID == "" {
		t.Error("imported records must get an ID")
	}
}

func TestItemToGameCategoryOverride(t *testing.T) {
	item := &gofeed.Item{
		Title:      "Block Blast",
		Link:       "https://example.com/block",
		Categories: []string{"Puzzle", "Casual"},
	}

	g := itemToGame(item, Options{Category: "arcade"})
	if g.Category != "arcade" {
		t.Errorf("Category override ignored, got %q", g.Category)
	}
	if len(g.Tags) != 2 || g.Tags[0] != "puzzle" || g.Tags[1] != "casual" {
		t.Errorf("Tags = %v", g.Tags)
	}

	g = itemToGame(item, Options{})
	if g.Category != "puzzle" {
		t.Errorf("Category = %q, want first item category", g.Category)
	}

	g = itemToGame(&gofeed.Item{Title: "X", Link: "https://example.com/x"}, Options{})
	if g.Category != "other" {
		t.Errorf("Category = %q, want other", g.Category)
	}
}

func TestFirstImage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", `<p><img src="https://a/b.png"></p>`, "https://a/b.png"},
		{"self closing", `<img src="https://a/c.png"/>`, "https://a/c.png"},
		{"first of several", `<img src="https://a/1.png"><img src="https://a/2.png">`, "https://a/1.png"},
		{"no image", `<p>plain</p>`, ""},
		{"empty", ``, ""},
		{"img without src", `<img alt="x">`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := firstImage(tt.in); got != tt.want {
				t.Errorf("firstImage(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMergeIntoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games_data.json")

	added, err := MergeIntoFile(path, []models.GameRecord{
		{ID: "a", URL: "https://example.com/1", Name: "One"},
		{ID: "b", URL: "https://example.com/2", Name: "Two"},
	})
	if err != nil {
		t.Fatalf("MergeIntoFile: %v", err)
	}
	if added != 2 {
		t.Errorf("added = %d, want 2", added)
	}

	// A second merge with one duplicate adds only the new record.
	added, err = MergeIntoFile(path, []models.GameRecord{
		{ID: "c", URL: "https://example.com/2", Name: "Two Again"},
		{ID: "d", URL: "https://example.com/3", Name: "Three"},
	})
	if err != nil {
		t.Fatalf("MergeIntoFile: %v", err)
	}
	if added != 1 {
		t.Errorf("added = %d, want 1", added)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var games []models.GameRecord
	if err := json.Unmarshal(data, &games); err != nil {
		t.Fatal(err)
	}
	if len(games) != 3 {
		t.Fatalf("expected 3 games on disk, got %d", len(games))
	}
	if games[2].URL != "https://example.com/3" {
		t.Errorf("unexpected final record %+v", games[2])
	}
}

func TestMergeIntoFileRejectsCorruptCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games_data.json")
	if err := os.WriteFile(path, []byte("{oops"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := MergeIntoFile(path, []models.GameRecord{{URL: "https://x"}}); err == nil {
		t.Error("merging into a corrupt catalog must fail rather than overwrite it")
	}
}
