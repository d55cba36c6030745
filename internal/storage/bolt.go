package storage

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/avast/retry-go/v4"
	bolt "go.etcd.io/bbolt"
)

var bucketData = []byte("cineflix")

// Lock acquisition settings for opening the database file
const (
	boltLockTimeout = 1 * time.Second
	boltOpenRetries = 3
)

// BoltStore implements domain.KeyValueStore using BoltDB.
type BoltStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
}

// OpenBolt opens (or creates) the database at path. Another process holding
// the file lock makes the open retry a few times before giving up.
func OpenBolt(path string, logger *slog.Logger) (*BoltStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	var db *bolt.DB
	err := retry.Do(
		func() error {
			var err error
			db, err = bolt.Open(path, 0600, &bolt.Options{Timeout: boltLockTimeout})
			return err
		},
		retry.Attempts(boltOpenRetries),
		retry.Delay(200*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, bolt.ErrTimeout)
		}),
		retry.OnRetry(func(n uint, err error) {
			logger.Warn("database locked, retrying", "path", path, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketData)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db, cache: make(map[string][]byte)}, nil
}

func (s *BoltStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *BoltStore) Get(key string) ([]byte, bool, error) {
	// Check memory cache first
	s.mu.RLock()
	if data, ok := s.cache[key]; ok {
		s.mu.RUnlock()
		return cloneBytes(data), true, nil
	}
	s.mu.RUnlock()

	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketData)
		if b == nil {
			return nil
		}
		if v := b.Get([]byte(key)); v != nil {
			data = cloneBytes(v)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return nil, false, nil
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()

	return cloneBytes(data), true, nil
}

func (s *BoltStore) Set(key string, value []byte) error {
	data := cloneBytes(value)

	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketData).Put([]byte(key), data)
	})
	if err != nil {
		// Cached copy may be stale now
		s.mu.Lock()
		delete(s.cache, key)
		s.mu.Unlock()
		return err
	}

	s.mu.Lock()
	s.cache[key] = data
	s.mu.Unlock()
	return nil
}

func (s *BoltStore) Delete(key string) error {
	s.mu.Lock()
	delete(s.cache, key)
	s.mu.Unlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketData).Delete([]byte(key))
	})
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
