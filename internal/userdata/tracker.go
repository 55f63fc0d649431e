// ABOUTME: Tracker for the two persisted user-state lists: recently played and favorites
// ABOUTME: Write-through persistence that degrades to in-memory state when writes fail

package userdata

import (
	"log"
	"slices"

	"github.com/harper/gamedex/internal/models"
	"github.com/harper/gamedex/internal/storage"
)

// RecentLimit caps the recently-played list.
const RecentLimit = 20

// Tracker owns the in-memory copies of the recently-played and favorites
// lists and writes them through to the storage adapter after every
// mutation. The runtime is single-threaded per run, so no locking.
type Tracker struct {
	store     storage.Store
	recents   []string
	favorites []string
}

// NewTracker loads both lists from the store. Read failures are logged and
// treated as empty so a broken store never blocks startup.
func NewTracker(store storage.Store) *Tracker {
	t := &Tracker{store: store}

	var err error
	t.recents, err = store.GetList(storage.KeyRecentlyPlayed)
	if err != nil {
		log.Printf("warning: could not load recently played: %v", err)
		t.recents = []string{}
	}
	t.favorites, err = store.GetList(storage.KeyFavorites)
	if err != nil {
		log.Printf("warning: could not load favorites: %v", err)
		t.favorites = []string{}
	}
	return t
}

// RecordPlay moves the game to the front of the recently-played list,
// deduplicating and trimming to RecentLimit. Games without an identity key
// cannot be tracked; the call is a no-op.
func (t *Tracker) RecordPlay(game *models.GameRecord) {
	key := game.IdentityKey()
	if key == "" {
		return
	}

	if i := slices.Index(t.recents, key); i != -1 {
		t.recents = slices.Delete(t.recents, i, i+1)
	}
	t.recents = append([]string{key}, t.recents...)
	if len(t.recents) > RecentLimit {
		t.recents = t.recents[:RecentLimit]
	}

	t.persist(storage.KeyRecentlyPlayed, t.recents)
}

// ToggleFavorite flips the game's favorite membership and returns the new
// state. Untrackable games report false and change nothing.
func (t *Tracker) ToggleFavorite(game *models.GameRecord) bool {
	key := game.IdentityKey()
	if key == "" {
		return false
	}

	if i := slices.Index(t.favorites, key); i != -1 {
		t.favorites = slices.Delete(t.favorites, i, i+1)
		t.persist(storage.KeyFavorites, t.favorites)
		return false
	}
	t.favorites = append(t.favorites, key)
	t.persist(storage.KeyFavorites, t.favorites)
	return true
}

// IsFavorite reports whether the game is currently favorited.
func (t *Tracker) IsFavorite(game *models.GameRecord) bool {
	key := game.IdentityKey()
	return key != "" && slices.Contains(t.favorites, key)
}

// Recents returns identity keys most-recent-first.
func (t *Tracker) Recents() []string {
	return t.recents
}

// Favorites returns favorited identity keys in insertion order.
func (t *Tracker) Favorites() []string {
	return t.favorites
}

// persist writes a list through to storage. A write failure (quota, broken
// disk) is logged and otherwise ignored: the in-memory state stays valid
// for the rest of the session.
func (t *Tracker) persist(key string, values []string) {
	if err := t.store.SetList(key, values); err != nil {
		log.Printf("warning: could not persist %s: %v", key, err)
	}
}
