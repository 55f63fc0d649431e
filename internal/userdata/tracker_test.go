// ABOUTME: Tests for the recents/favorites tracker
// ABOUTME: Covers move-to-front dedup, the 20-item cap, toggle inversion, and write-failure degradation

package userdata

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/harper/gamedex/internal/models"
	"github.com/harper/gamedex/internal/storage"
)

func newFileTracker(t *testing.T) (*Tracker, storage.Store) {
	t.Helper()
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewTracker(store), store
}

func TestRecordPlayMoveToFront(t *testing.T) {
	tracker, _ := newFileTracker(t)

	g1 := &models.GameRecord{ID: "g1"}
	g2 := &models.GameRecord{ID: "g2"}

	tracker.RecordPlay(g1)
	tracker.RecordPlay(g2)
	tracker.RecordPlay(g1)

	got := tracker.Recents()
	if len(got) != 2 {
		t.Fatalf("expected 2 recents, got %v", got)
	}
	if got[0] != "g1" || got[1] != "g2" {
		t.Errorf("expected [g1 g2], got %v", got)
	}
}

func TestRecordPlayRepeatedIsStable(t *testing.T) {
	tracker, _ := newFileTracker(t)
	g := &models.GameRecord{ID: "g1"}

	for i := 0; i < 5; i++ {
		tracker.RecordPlay(g)
	}

	got := tracker.Recents()
	if len(got) != 1 || got[0] != "g1" {
		t.Errorf("repeated plays must keep a single front entry, got %v", got)
	}
}

func TestRecordPlayCap(t *testing.T) {
	tracker, _ := newFileTracker(t)

	for i := 0; i < 30; i++ {
		tracker.RecordPlay(&models.GameRecord{ID: fmt.Sprintf("g%d", i)})
	}

	got := tracker.Recents()
	if len(got) != RecentLimit {
		t.Fatalf("expected %d recents, got %d", RecentLimit, len(got))
	}
	if got[0] != "g29" {
		t.Errorf("most recent play must be first, got %q", got[0])
	}
	if got[len(got)-1] != "g10" {
		t.Errorf("oldest surviving entry must be g10, got %q", got[len(got)-1])
	}
}

func TestRecordPlayUntrackable(t *testing.T) {
	tracker, _ := newFileTracker(t)

	tracker.RecordPlay(&models.GameRecord{Name: "no identity"})
	if len(tracker.Recents()) != 0 {
		t.Error("games without an identity key must not be recorded")
	}
}

func TestToggleFavoriteIsItsOwnInverse(t *testing.T) {
	tracker, _ := newFileTracker(t)
	g := &models.GameRecord{ID: "g1"}

	if !tracker.ToggleFavorite(g) {
		t.Error("first toggle must favorite the game")
	}
	if !tracker.IsFavorite(g) {
		t.Error("expected game to be favorited")
	}
	if tracker.ToggleFavorite(g) {
		t.Error("second toggle must unfavorite the game")
	}
	if tracker.IsFavorite(g) {
		t.Error("expected game to be unfavorited")
	}
	if len(tracker.Favorites()) != 0 {
		t.Errorf("double toggle must leave favorites unchanged, got %v", tracker.Favorites())
	}
}

func TestToggleFavoriteRemovesFromPersistedSet(t *testing.T) {
	store, err := storage.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := store.SetList(storage.KeyFavorites, []string{"g1", "g2"}); err != nil {
		t.Fatal(err)
	}

	tracker := NewTracker(store)
	nowFavorited := tracker.ToggleFavorite(&models.GameRecord{ID: "g1"})
	if nowFavorited {
		t.Error("toggling an existing favorite must return false")
	}

	persisted, err := store.GetList(storage.KeyFavorites)
	if err != nil {
		t.Fatal(err)
	}
	if len(persisted) != 1 || persisted[0] != "g2" {
		t.Errorf("expected stored favorites [g2], got %v", persisted)
	}
}

func TestStatePersistsAcrossTrackers(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	if err != nil {
		t.Fatal(err)
	}

	tracker := NewTracker(store)
	tracker.RecordPlay(&models.GameRecord{ID: "g1"})
	tracker.ToggleFavorite(&models.GameRecord{ID: "g2"})

	reloaded := NewTracker(store)
	if got := reloaded.Recents(); len(got) != 1 || got[0] != "g1" {
		t.Errorf("expected reloaded recents [g1], got %v", got)
	}
	if got := reloaded.Favorites(); len(got) != 1 || got[0] != "g2" {
		t.Errorf("expected reloaded favorites [g2], got %v", got)
	}
}

// failingStore reads fine but refuses every write.
type failingStore struct{}

func (failingStore) Close() error                    { return nil }
func (failingStore) GetList(string) ([]string, error) { return []string{}, nil }
func (failingStore) SetList(string, []string) error  { return errors.New("quota exceeded") }
func (failingStore) GetValue(string) (string, error) { return "", nil }
func (failingStore) SetValue(string, string) error   { return errors.New("quota exceeded") }

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	tracker := NewTracker(failingStore{})
	g := &models.GameRecord{ID: "g1"}

	tracker.RecordPlay(g)
	if got := tracker.Recents(); len(got) != 1 || got[0] != "g1" {
		t.Errorf("in-memory recents must survive a failed write, got %v", got)
	}

	if !tracker.ToggleFavorite(g) {
		t.Error("toggle must still report the new membership state")
	}
	if !tracker.IsFavorite(g) {
		t.Error("in-memory favorites must survive a failed write")
	}
}

func TestTrackerWithSQLiteBackend(t *testing.T) {
	store, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "gamedex.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	tracker := NewTracker(store)
	tracker.RecordPlay(&models.GameRecord{ID: "g1"})

	reloaded := NewTracker(store)
	if got := reloaded.Recents(); len(got) != 1 || got[0] != "g1" {
		t.Errorf("expected [g1] via sqlite backend, got %v", got)
	}
}
