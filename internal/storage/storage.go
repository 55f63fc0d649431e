// ABOUTME: Storage interface and well-known keys for persisted user state
// ABOUTME: Defines the key-value contract shared by the file and sqlite backends

package storage

// Well-known keys. The list keys hold JSON string arrays of game identity
// keys; the language key holds a bare locale tag.
const (
	KeyRecentlyPlayed = "recentlyPlayed"
	KeyFavorites      = "favorites"
	KeyLanguage       = "language"
)

// Store is a small persistent key-value store for user state.
//
// Implementations must treat malformed persisted list content as absent:
// GetList logs and returns an empty list rather than an error, so a corrupt
// store never takes the rest of the program down.
type Store interface {
	// Close releases resources held by the store.
	Close() error

	// GetList returns the ordered list stored under key, or an empty list
	// if the key is absent or its content is malformed.
	GetList(key string) ([]string, error)

	// SetList replaces the list stored under key.
	SetList(key string, values []string) error

	// GetValue returns the raw value stored under key, or "" if absent.
	GetValue(key string) (string, error)

	// SetValue replaces the value stored under key.
	SetValue(key, value string) error
}
