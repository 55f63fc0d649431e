// ABOUTME: Built-in sample catalog used when the external catalog resource fails to load
// ABOUTME: Six placeholder records spanning six categories so views never render empty

package catalog

import "github.com/harper/gamedex/internal/models"

// FallbackGames returns the fixed sample catalog. Each call returns a fresh
// slice so the synthetic-ID backfill never aliases between stores.
func FallbackGames() []models.GameRecord {
	return []models.GameRecord{
		{
			ID:          "game1",
			Name:        "Racing Game",
			URL:         models.PlaceholderURL,
			Cover:       "https://via.placeholder.com/300x200/3498db/ffffff?text=Racing",
			Category:    "racing",
			Description: "A thrilling racing game",
		},
		{
			ID:          "game2",
			Name:        "Puzzle Game",
			URL:         models.PlaceholderURL,
			Cover:       "https://via.placeholder.com/300x200/e74c3c/ffffff?text=Puzzle",
			Category:    "puzzle",
			Description: "An entertaining puzzle game",
		},
		{
			ID:          "game3",
			Name:        "Action Game",
			URL:         models.PlaceholderURL,
			Cover:       "https://via.placeholder.com/300x200/2ecc71/ffffff?text=Action",
			Category:    "action",
			Description: "An exciting action game",
		},
		{
			ID:          "game4",
			Name:        "Shooting Game",
			URL:         models.PlaceholderURL,
			Cover:       "https://via.placeholder.com/300x200/f39c12/ffffff?text=Shooting",
			Category:    "shooting",
			Description: "An intense shooting game",
		},
		{
			ID:          "game5",
			Name:        "Sports Game",
			URL:         models.PlaceholderURL,
			Cover:       "https://via.placeholder.com/300x200/9b59b6/ffffff?text=Sports",
			Category:    "sports",
			Description: "A competitive sports game",
		},
		{
			ID:          "game6",
			Name:        "Simulation Game",
			URL:         models.PlaceholderURL,
			Cover:       "https://via.placeholder.com/300x200/1abc9c/ffffff?text=Simulation",
			Category:    "simulation",
			Description: "A realistic simulation game",
		},
	}
}
