// ABOUTME: MCP resource providers for gamedex
// ABOUTME: Exposes read-only views of the catalog, categories, and user activity

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// ResourceData is the standard response format for all resources.
type ResourceData struct {
	Metadata ResourceMetadata  `json:"metadata"`
	Data     interface{}       `json:"data"`
	Links    map[string]string `json:"links"`
}

// ResourceMetadata contains metadata about the resource response.
type ResourceMetadata struct {
	Timestamp   time.Time `json:"timestamp"`
	Count       int       `json:"count"`
	ResourceURI string    `json:"resource_uri"`
}

func (s *Server) registerResources() {
	s.registerCatalogResource()
	s.registerCategoriesResource()
	s.registerActivityResource()
	s.registerStatsResource()
}

func resourceContents(uri string, data ResourceData) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource data: %w", err)
	}
	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}

func (s *Server) registerCatalogResource() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         "gamedex://catalog",
			Name:        "Game Catalog",
			Description: "The full game catalog with identity keys, names, categories, tags, and play URLs",
			MIMEType:    "application/json",
		},
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			games := s.gameOutputs(s.catalog.Games())

			return resourceContents(request.Params.URI, ResourceData{
				Metadata: ResourceMetadata{
					Timestamp:   time.Now(),
					Count:       len(games),
					ResourceURI: "gamedex://catalog",
				},
				Data: games,
				Links: map[string]string{
					"categories": "gamedex://categories",
					"activity":   "gamedex://activity",
					"stats":      "gamedex://stats",
				},
			})
		},
	)
}

func (s *Server) registerCategoriesResource() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         "gamedex://categories",
			Name:        "Game Categories",
			Description: "Distinct game categories in the catalog with per-category game counts",
			MIMEType:    "application/json",
		},
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			counts := make(map[string]int)
			for _, game := range s.catalog.Games() {
				counts[strings.ToLower(game.DisplayCategory())]++
			}

			categories := s.catalog.Categories()
			data := make([]CategoryStats, 0, len(categories))
			for _, category := range categories {
				data = append(data, CategoryStats{
					Category:  category,
					GameCount: counts[category],
				})
			}

			return resourceContents(request.Params.URI, ResourceData{
				Metadata: ResourceMetadata{
					Timestamp:   time.Now(),
					Count:       len(data),
					ResourceURI: "gamedex://categories",
				},
				Data: data,
				Links: map[string]string{
					"catalog": "gamedex://catalog",
				},
			})
		},
	)
}

func (s *Server) registerActivityResource() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         "gamedex://activity",
			Name:        "User Activity",
			Description: "The user's recently played games (most recent first) and favorites",
			MIMEType:    "application/json",
		},
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			recents := s.selector.RecentlyPlayed()
			favorites := s.selector.Favorites()

			data := ActivityData{
				RecentlyPlayed: s.gameOutputs(recents.Games),
				Favorites:      s.gameOutputs(favorites.Games),
			}

			return resourceContents(request.Params.URI, ResourceData{
				Metadata: ResourceMetadata{
					Timestamp:   time.Now(),
					Count:       len(data.RecentlyPlayed) + len(data.Favorites),
					ResourceURI: "gamedex://activity",
				},
				Data: data,
				Links: map[string]string{
					"catalog": "gamedex://catalog",
					"stats":   "gamedex://stats",
				},
			})
		},
	)
}

func (s *Server) registerStatsResource() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         "gamedex://stats",
			Name:        "Catalog Statistics",
			Description: "Overview statistics including catalog size, category count, and activity counts",
			MIMEType:    "application/json",
		},
		func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			stats := StatsData{
				TotalGames:      s.catalog.Len(),
				TotalCategories: len(s.catalog.Categories()),
				RecentlyPlayed:  len(s.tracker.Recents()),
				Favorites:       len(s.tracker.Favorites()),
				UsedFallback:    s.catalog.UsedFallback(),
			}

			return resourceContents(request.Params.URI, ResourceData{
				Metadata: ResourceMetadata{
					Timestamp:   time.Now(),
					Count:       0, // Stats don't have a count
					ResourceURI: "gamedex://stats",
				},
				Data: stats,
				Links: map[string]string{
					"catalog":    "gamedex://catalog",
					"categories": "gamedex://categories",
					"activity":   "gamedex://activity",
				},
			})
		},
	)
}

// CategoryStats contains per-category counts.
type CategoryStats struct {
	Category  string `json:"category"`
	GameCount int    `json:"game_count"`
}

// ActivityData bundles the user's tracked games.
type ActivityData struct {
	RecentlyPlayed []GameOutput `json:"recently_played"`
	Favorites      []GameOutput `json:"favorites"`
}

// StatsData represents the catalog summary.
type StatsData struct {
	TotalGames      int  `json:"total_games"`
	TotalCategories int  `json:"total_categories"`
	RecentlyPlayed  int  `json:"recently_played"`
	Favorites       int  `json:"favorites"`
	UsedFallback    bool `json:"used_fallback"`
}
