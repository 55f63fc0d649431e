// ABOUTME: Imports game records into a catalog JSON file from RSS/Atom feeds
// ABOUTME: Maps feed items to GameRecords, pulling covers out of item HTML when needed

package feedimport

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	"golang.org/x/net/html"

	"github.com/harper/gamedex/internal/content"
	"github.com/harper/gamedex/internal/models"
)

// Options adjusts how feed items become game records.
type Options struct {
	// Category forces every imported record into one category. Empty means
	// derive from the item's own categories, defaulting to "other".
	Category string
}

// FromFeed fetches and parses an RSS/Atom feed and converts its items to
// game records. Items without a link are skipped: a record that can never
// resolve an identity key is untrackable and useless in the catalog.
func FromFeed(ctx context.Context, feedURL string, opts Options) ([]models.GameRecord, error) {
	parser := gofeed.NewParser()
	parser.UserAgent = "gamedex/1.0 (catalog importer)"

	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	var games []models.GameRecord
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}
		games = append(games, itemToGame(item, opts))
	}
	return games, nil
}

// itemToGame maps one feed item to a GameRecord. Imported records get a
// UUID identity up front so catalog merges never depend on positional
// synthetic IDs.
func itemToGame(item *gofeed.Item, opts Options) models.GameRecord {
	body := item.Content
	if body == "" {
		body = item.Description
	}

	category := opts.Category
	if category == "" && len(item.Categories) > 0 {
		category = strings.ToLower(item.Categories[0])
	}
	if category == "" {
		category = "other"
	}

	var tags []string
	for _, c := range item.Categories {
		tags = append(tags, strings.ToLower(c))
	}

	cover := ""
	if item.Image != nil {
		cover = item.Image.URL
	}
	if cover == "" {
		cover = firstImage(body)
	}

	return models.GameRecord{
		ID:          uuid.New().String(),
		URL:         item.Link,
		Name:        item.Title,
		Category:    category,
		Tags:        tags,
		Cover:       cover,
		Description: content.ToMarkdown(body),
	}
}

// firstImage returns the src of the first <img> in an HTML fragment, or
// "" when there is none or the fragment is not parseable.
func firstImage(fragment string) string {
	if fragment == "" {
		return ""
	}
	tokenizer := html.NewTokenizer(strings.NewReader(fragment))
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken, html.SelfClosingTagToken:
			token := tokenizer.Token()
			if token.Data != "img" {
				continue
			}
			for _, attr := range token.Attr {
				if attr.Key == "src" && attr.Val != "" {
					return attr.Val
				}
			}
		}
	}
}

// MergeIntoFile appends games to the catalog JSON file at path, skipping
// records whose URL is already present. A missing file starts a new
// catalog. Returns the number of records actually added.
func MergeIntoFile(path string, games []models.GameRecord) (int, error) {
	var existing []models.GameRecord
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &existing); err != nil {
			return 0, fmt.Errorf("decode existing catalog %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return 0, fmt.Errorf("read catalog %s: %w", path, err)
	}

	known := make(map[string]bool, len(existing))
	for _, g := range existing {
		if g.URL != "" {
			known[g.URL] = true
		}
	}

	added := 0
	for _, g := range games {
		if known[g.URL] {
			continue
		}
		known[g.URL] = true
		existing = append(existing, g)
		added++
	}

	out, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(path, out, 0644); err != nil {
		return 0, fmt.Errorf("write catalog %s: %w", path, err)
	}
	return added, nil
}
