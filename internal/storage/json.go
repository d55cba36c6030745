// Package storage persists JSON values through a domain.KeyValueStore.
// Reads never fail: missing, unreadable or malformed values degrade to a
// caller-supplied fallback. Writes report every failure as a
// *domain.StorageError.
package storage

import (
	"bytes"
	"encoding/json"
	"log/slog"

	"github.com/mmcdole/cineflix/internal/domain"
)

// JSON wraps a key-value backend with JSON encoding.
type JSON struct {
	kv     domain.KeyValueStore
	logger *slog.Logger
}

// NewJSON creates a JSON adapter over kv.
func NewJSON(kv domain.KeyValueStore, logger *slog.Logger) *JSON {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSON{kv: kv, logger: logger}
}

// Close closes the underlying store.
func (s *JSON) Close() error { return s.kv.Close() }

// ParseOr decodes data over a deep copy of fallback, returning fallback
// when data is empty or not valid JSON for T. Struct fields absent from
// data keep their fallback value. fallback is never modified.
func ParseOr[T any](data []byte, fallback T) T {
	v, _ := parse(data, fallback)
	return v
}

// Load reads key and decodes it with ParseOr, returning fallback when the
// key is absent, the backend cannot be read, or the stored bytes do not
// decode.
func Load[T any](s *JSON, key string, fallback T) T {
	data, ok, err := s.kv.Get(key)
	if err != nil {
		s.logger.Warn("storage read failed, using fallback", "key", key, "error", err)
		return fallback
	}
	if !ok {
		return fallback
	}

	v, err := parse(data, fallback)
	if err != nil {
		s.logger.Warn("stored value is malformed, using fallback", "key", key, "error", err)
	}
	return v
}

// parse reports the decode error that ParseOr swallows so Load can log it.
// The decode target is a JSON round-trip copy of fallback, so a partial
// decode never reaches fallback's backing arrays or maps.
func parse[T any](data []byte, fallback T) (T, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return fallback, nil
	}

	var v T
	if seed, err := json.Marshal(fallback); err == nil {
		_ = json.Unmarshal(seed, &v)
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return fallback, err
	}
	return v, nil
}

// Save encodes value and writes it under key.
func (s *JSON) Save(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return &domain.StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := s.kv.Set(key, data); err != nil {
		s.logger.Error("storage write failed", "key", key, "error", err)
		return &domain.StorageError{Op: "write", Key: key, Err: err}
	}
	return nil
}

// Remove deletes key.
func (s *JSON) Remove(key string) error {
	if err := s.kv.Delete(key); err != nil {
		return &domain.StorageError{Op: "delete", Key: key, Err: err}
	}
	return nil
}
