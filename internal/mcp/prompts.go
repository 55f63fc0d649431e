// ABOUTME: MCP prompt definitions and handlers
// ABOUTME: Provides workflow templates for game discovery and catalog curation

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.registerFindGamePrompt()
	s.registerCatalogReviewPrompt()
}

func (s *Server) registerFindGamePrompt() {
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        "find-a-game",
			Description: "Recommend a game to play based on the user's favorites, play history, and stated mood",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "mood",
					Description: "Optional free-text mood or preference, e.g. 'something relaxing' or 'fast-paced'",
					Required:    false,
				},
			},
		},
		s.handleFindGame,
	)
}

func (s *Server) handleFindGame(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	mood := req.Params.Arguments["mood"]
	if mood == "" {
		mood = "anything fun"
	}

	template := `# Find a Game to Play

The user is in the mood for: ` + mood + `

## Workflow Steps

### Step 1: Learn the User's Taste
Check gamedex://activity for the recently played list and favorites.
- Favorites show what the user deliberately keeps around
- Recently played shows current habits (most recent first)
- Note the dominant categories and recurring tags

### Step 2: Survey the Options
Use gamedex://categories for the category landscape, then list_games or
search_games to pull candidates.
- Prefer categories the user already favors, unless the mood says otherwise
- Use get_game on strong candidates to read descriptions and related games
- The related list of a favorite is a good source of near-matches

### Step 3: Recommend
Pick 2-3 games and present each with:
- Name and category
- One sentence on why it fits the mood and the user's history
- The play URL from the record

### Step 4: Act on the Choice
When the user picks one:
- Call record_play with the game's key so history stays accurate
- Offer toggle_favorite if they loved it
`

	return &mcp.GetPromptResult{
		Description: "Game recommendation workflow based on user activity",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: template,
				},
			},
		},
	}, nil
}

func (s *Server) registerCatalogReviewPrompt() {
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        "catalog-review",
			Description: "Audit the game catalog for thin categories, missing metadata, and stale favorites",
			Arguments:   []mcp.PromptArgument{},
		},
		s.handleCatalogReview,
	)
}

func (s *Server) handleCatalogReview(_ context.Context, _ mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	template := `# Catalog Review

Audit the game catalog and report what needs attention.

## Workflow Steps

### Step 1: Get the Big Picture
Check gamedex://stats for catalog size and activity counts. A
used_fallback of true means the real catalog failed to load and you are
looking at placeholder data; stop and report that first.

### Step 2: Check Category Balance
Review gamedex://categories.
- Flag categories with only one or two games
- Flag a single category holding most of the catalog

### Step 3: Spot-Check Metadata
Pull the catalog from gamedex://catalog and scan for:
- Games with no description or no tags
- Games without a playable URL (no url and no embed_url)
- Names that look like placeholders

### Step 4: Review User State
Check gamedex://activity. Favorites that no longer appear in the catalog
have already been dropped from the output, so compare counts in
gamedex://stats against the listed games to spot stale entries.

### Step 5: Report
Summarize findings as a short list of concrete fixes, most impactful
first.
`

	return &mcp.GetPromptResult{
		Description: "Catalog audit workflow",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: template,
				},
			},
		},
	}, nil
}
