// ABOUTME: MCP tool definitions and handlers for catalog and user-state operations
// ABOUTME: Provides tools to browse, search, and track games for AI agents

package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/gamedex/internal/models"
)

// Type definitions for input/output structures

type GameOutput struct {
	ID          string   `json:"id"`
	URL         string   `json:"url,omitempty"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags,omitempty"`
	Cover       string   `json:"cover,omitempty"`
	Description string   `json:"description,omitempty"`
	Developer   string   `json:"developer,omitempty"`
	EmbedURL    string   `json:"embed_url,omitempty"`
	Favorite    bool     `json:"favorite"`
}

type ListGamesInput struct {
	Category *string `json:"category,omitempty"`
	Limit    *int    `json:"limit,omitempty"`
	Offset   *int    `json:"offset,omitempty"`
}

type ListGamesOutput struct {
	Games []GameOutput `json:"games"`
	Count int          `json:"count"`
	Title string       `json:"title"`
}

type SearchGamesInput struct {
	Query string `json:"query"`
}

type GetGameInput struct {
	Key string `json:"key"`
}

type GetGameOutput struct {
	Game    GameOutput   `json:"game"`
	Related []GameOutput `json:"related"`
}

type ListCategoriesOutput struct {
	Categories []string `json:"categories"`
	Count      int      `json:"count"`
}

type RecordPlayInput struct {
	Key string `json:"key"`
}

type RecordPlayOutput struct {
	Success bool   `json:"success"`
	Name    string `json:"name"`
	Embed   string `json:"embed,omitempty"`
}

type ToggleFavoriteInput struct {
	Key string `json:"key"`
}

type ToggleFavoriteOutput struct {
	Favorited bool   `json:"favorited"`
	Name      string `json:"name"`
}

// Tool registration

func (s *Server) registerTools() {
	s.registerListGamesTool()
	s.registerSearchGamesTool()
	s.registerGetGameTool()
	s.registerListCategoriesTool()
	s.registerRecentlyPlayedTool()
	s.registerFavoritesTool()
	s.registerRecordPlayTool()
	s.registerToggleFavoriteTool()
}

func (s *Server) registerListGamesTool() {
	tool := mcp.Tool{
		Name:        "list_games",
		Description: "List games from the catalog, optionally filtered by category. Category matching is case-insensitive; 'all' (or omitting the category) returns the entire catalog. Supports limit/offset pagination. Returns each game's identity key, display metadata, and favorite status.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"category": map[string]interface{}{
					"type":        "string",
					"description": "Category to filter by, e.g. 'racing'. Omit or use 'all' for the whole catalog.",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of games to return. Default 20.",
				},
				"offset": map[string]interface{}{
					"type":        "number",
					"description": "Number of games to skip, for pagination. Default 0.",
				},
			},
		},
	}
	s.mcpServer.AddTool(tool, s.handleListGames)
}

func (s *Server) registerSearchGamesTool() {
	tool := mcp.Tool{
		Name:        "search_games",
		Description: "Search the catalog by case-insensitive substring across game names, descriptions, categories, and tags. A blank query returns the full catalog.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search term. Example: 'racing' or 'moto'.",
				},
			},
			Required: []string{"query"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleSearchGames)
}

func (s *Server) registerGetGameTool() {
	tool := mcp.Tool{
		Name:        "get_game",
		Description: "Get full details for one game by identity key (its id or url), including up to six related games sharing a category or tag.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"key": map[string]interface{}{
					"type":        "string",
					"description": "The game's identity key: its id (e.g. 'game-3') or url.",
				},
			},
			Required: []string{"key"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleGetGame)
}

func (s *Server) registerListCategoriesTool() {
	tool := mcp.Tool{
		Name:        "list_categories",
		Description: "List the distinct game categories present in the catalog, lowercased, in catalog order.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
	s.mcpServer.AddTool(tool, s.handleListCategories)
}

func (s *Server) registerRecentlyPlayedTool() {
	tool := mcp.Tool{
		Name:        "recently_played",
		Description: "List the user's recently played games, most recent first. Entries that no longer resolve against the catalog are silently dropped.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
	s.mcpServer.AddTool(tool, s.handleRecentlyPlayed)
}

func (s *Server) registerFavoritesTool() {
	tool := mcp.Tool{
		Name:        "favorites",
		Description: "List the user's favorited games. Entries that no longer resolve against the catalog are silently dropped.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
	s.mcpServer.AddTool(tool, s.handleFavorites)
}

func (s *Server) registerRecordPlayTool() {
	tool := mcp.Tool{
		Name:        "record_play",
		Description: "Record that a game was played: moves it to the front of the recently-played list (deduplicated, capped at 20) and returns its embeddable play URL when one exists.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"key": map[string]interface{}{
					"type":        "string",
					"description": "The game's identity key: its id or url.",
				},
			},
			Required: []string{"key"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleRecordPlay)
}

func (s *Server) registerToggleFavoriteTool() {
	tool := mcp.Tool{
		Name:        "toggle_favorite",
		Description: "Toggle a game's membership in the favorites list and return the new state. Toggling twice restores the original state.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"key": map[string]interface{}{
					"type":        "string",
					"description": "The game's identity key: its id or url.",
				},
			},
			Required: []string{"key"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleToggleFavorite)
}

// Handlers

func (s *Server) gameOutput(g *models.GameRecord) GameOutput {
	return GameOutput{
		ID:          g.ID,
		URL:         g.URL,
		Name:        g.DisplayName(),
		Category:    g.DisplayCategory(),
		Tags:        g.Tags,
		Cover:       g.Cover,
		Description: g.Description,
		Developer:   g.Developer,
		EmbedURL:    g.EmbedTarget(),
		Favorite:    s.tracker.IsFavorite(g),
	}
}

func (s *Server) gameOutputs(games []models.GameRecord) []GameOutput {
	outputs := make([]GameOutput, 0, len(games))
	for i := range games {
		outputs = append(outputs, s.gameOutput(&games[i]))
	}
	return outputs
}

func toolResult(v interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleListGames(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ListGamesInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	limit := 20
	if input.Limit != nil {
		if *input.Limit < 0 {
			return nil, fmt.Errorf("limit must be non-negative, got %d", *input.Limit)
		}
		limit = *input.Limit
	}
	offset := 0
	if input.Offset != nil {
		if *input.Offset < 0 {
			return nil, fmt.Errorf("offset must be non-negative, got %d", *input.Offset)
		}
		offset = *input.Offset
	}

	category := "all"
	if input.Category != nil && *input.Category != "" {
		category = *input.Category
	}

	view := s.selector.ByCategory(category)
	games := view.Games
	if offset > len(games) {
		offset = len(games)
	}
	games = games[offset:]
	if limit < len(games) {
		games = games[:limit]
	}

	return toolResult(ListGamesOutput{
		Games: s.gameOutputs(games),
		Count: len(games),
		Title: view.Title,
	})
}

func (s *Server) handleSearchGames(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input SearchGamesInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	view := s.selector.Search(input.Query)
	return toolResult(ListGamesOutput{
		Games: s.gameOutputs(view.Games),
		Count: len(view.Games),
		Title: view.Title,
	})
}

func (s *Server) handleGetGame(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input GetGameInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	game, err := s.catalog.FindByID(input.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to find game: %w", err)
	}

	related := s.selector.Related(game)
	return toolResult(GetGameOutput{
		Game:    s.gameOutput(game),
		Related: s.gameOutputs(related.Games),
	})
}

func (s *Server) handleListCategories(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categories := s.catalog.Categories()
	return toolResult(ListCategoriesOutput{
		Categories: categories,
		Count:      len(categories),
	})
}

func (s *Server) handleRecentlyPlayed(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view := s.selector.RecentlyPlayed()
	return toolResult(ListGamesOutput{
		Games: s.gameOutputs(view.Games),
		Count: len(view.Games),
		Title: view.Title,
	})
}

func (s *Server) handleFavorites(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view := s.selector.Favorites()
	return toolResult(ListGamesOutput{
		Games: s.gameOutputs(view.Games),
		Count: len(view.Games),
		Title: view.Title,
	})
}

func (s *Server) handleRecordPlay(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input RecordPlayInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	game, err := s.catalog.FindByID(input.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to find game: %w", err)
	}

	s.tracker.RecordPlay(game)
	return toolResult(RecordPlayOutput{
		Success: true,
		Name:    game.DisplayName(),
		Embed:   game.EmbedTarget(),
	})
}

func (s *Server) handleToggleFavorite(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input ToggleFavoriteInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	game, err := s.catalog.FindByID(input.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to find game: %w", err)
	}

	favorited := s.tracker.ToggleFavorite(game)
	return toolResult(ToggleFavoriteOutput{
		Favorited: favorited,
		Name:      game.DisplayName(),
	})
}
