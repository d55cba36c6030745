package domain

// KeyValueStore is the host persistence boundary. Values are opaque bytes;
// the storage package layers JSON on top.
type KeyValueStore interface {
	// Get returns the value for key and whether it exists
	Get(key string) ([]byte, bool, error)

	// Set stores value under key, replacing any previous value
	Set(key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error

	Close() error
}

// Storage keys for the persisted blobs
const (
	KeyListItems   = "cineflix_my_list"
	KeyCollections = "cineflix_custom_collections"
	KeyPreferences = "cineflix_list_preferences"
)
