// ABOUTME: Catalog store holding the full in-memory game list loaded once per run
// ABOUTME: Loads from an HTTP URL or local file, backfills synthetic IDs, and resolves identity keys

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/harper/gamedex/internal/fetch"
	"github.com/harper/gamedex/internal/models"
)

// ErrNotFound is returned when no catalog record matches an identity key.
var ErrNotFound = errors.New("game not found")

// Store holds the loaded catalog. Immutable after load except for the
// one-time synthetic ID backfill applied by the constructor.
type Store struct {
	games    []models.GameRecord
	fallback bool
}

// NewStore wraps a game list in a Store, assigning a synthetic "game-<index>"
// ID to any record that lacks one. The backfill mutates only the in-memory
// copy, never the source data.
func NewStore(games []models.GameRecord) *Store {
	for i := range games {
		if games[i].ID == "" {
			games[i].ID = fmt.Sprintf("game-%d", i)
		}
	}
	return &Store{games: games}
}

// Load reads the catalog from source, which is either an http(s) URL or a
// local file path. Any fetch, read, or decode failure is a load error; the
// caller decides whether to fall back.
func Load(ctx context.Context, source string) (*Store, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = fetch.Fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", source, err)
	}

	var games []models.GameRecord
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("decode catalog from %s: %w", source, err)
	}

	return NewStore(games), nil
}

// LoadOrFallback loads the catalog from source and substitutes the built-in
// sample catalog on failure, so callers always get a renderable store. The
// returned error is the original load error (nil on success) and is
// informational only.
func LoadOrFallback(ctx context.Context, source string) (*Store, error) {
	store, err := Load(ctx, source)
	if err != nil {
		store = NewStore(FallbackGames())
		store.fallback = true
		return store, err
	}
	return store, nil
}

// Games returns the full catalog in load order.
func (s *Store) Games() []models.GameRecord {
	return s.games
}

// Len returns the number of records in the catalog.
func (s *Store) Len() int {
	return len(s.games)
}

// UsedFallback reports whether this store holds the built-in sample catalog.
func (s *Store) UsedFallback() bool {
	return s.fallback
}

// FindByID returns the first record whose ID or URL equals key.
func (s *Store) FindByID(key string) (*models.GameRecord, error) {
	for i := range s.games {
		if s.games[i].MatchesKey(key) {
			return &s.games[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
}

// Categories returns the distinct lowercased categories in first-appearance
// order.
func (s *Store) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for i := range s.games {
		c := strings.ToLower(s.games[i].DisplayCategory())
		if !seen[c] {
			seen[c] = true
			cats = append(cats, c)
		}
	}
	return cats
}
