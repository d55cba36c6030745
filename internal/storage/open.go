package storage

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mmcdole/cineflix/internal/config"
	"github.com/mmcdole/cineflix/internal/domain"
	"github.com/spf13/afero"
)

// Open builds the key-value backend named by cfg. An empty path with the
// bolt backend runs in memory-only mode (no persistence).
func Open(cfg config.StorageConfig, logger *slog.Logger) (domain.KeyValueStore, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Backend {
	case config.BackendMemory:
		return NewMemoryStore(), nil
	case config.BackendBolt, "":
		if cfg.Path == "" {
			logger.Warn("no storage path configured, running memory-only")
			return NewMemoryStore(), nil
		}
		return wrap(OpenBolt(filepath.Join(cfg.Path, "cineflix.db"), logger))
	case config.BackendSQLite:
		return wrap(OpenSQLite(filepath.Join(cfg.Path, "cineflix.sqlite")))
	case config.BackendFile:
		return wrap(NewFileStore(afero.NewOsFs(), filepath.Join(cfg.Path, "data")))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// wrap keeps a failed constructor from returning a typed nil store
func wrap[S domain.KeyValueStore](s S, err error) (domain.KeyValueStore, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
