// Package preferences stores the singleton list preferences.
package preferences

import (
	"log/slog"

	"github.com/mmcdole/cineflix/internal/domain"
	"github.com/mmcdole/cineflix/internal/storage"
)

// Service reads and writes domain.Preferences.
type Service struct {
	store  *storage.JSON
	logger *slog.Logger
}

// NewService creates a preferences service.
func NewService(store *storage.JSON, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// Get returns the saved preferences, or the defaults when nothing usable
// is stored. Invalid stored fields fall back to their default.
func (s *Service) Get() domain.Preferences {
	return normalize(storage.Load(s.store, domain.KeyPreferences, domain.DefaultPreferences()))
}

// Save validates and overwrites the stored preferences.
func (s *Service) Save(p domain.Preferences) error {
	if err := validate(p); err != nil {
		return err
	}
	if err := s.store.Save(domain.KeyPreferences, p); err != nil {
		return err
	}
	s.logger.Info("saved list preferences", "view", p.DefaultView, "sort", p.DefaultSort)
	return nil
}

// Reset removes stored preferences so Get returns the defaults.
func (s *Service) Reset() error {
	return s.store.Remove(domain.KeyPreferences)
}

func validate(p domain.Preferences) error {
	if !p.DefaultView.Valid() {
		return domain.Invalid("defaultView", "must be grid or list")
	}
	if !p.DefaultSort.Valid() {
		return domain.Invalid("defaultSort", "unknown sort key "+string(p.DefaultSort))
	}
	if !p.DefaultSortDirection.Valid() {
		return domain.Invalid("defaultSortDirection", "must be asc or desc")
	}
	if p.RetentionDays < 0 {
		return domain.Invalid("retentionDays", "must not be negative")
	}
	if p.CompactItemsPerRow <= 0 {
		return domain.Invalid("compactItemsPerRow", "must be positive")
	}
	return nil
}

func normalize(p domain.Preferences) domain.Preferences {
	d := domain.DefaultPreferences()
	if !p.DefaultView.Valid() {
		p.DefaultView = d.DefaultView
	}
	if !p.DefaultSort.Valid() {
		p.DefaultSort = d.DefaultSort
	}
	if !p.DefaultSortDirection.Valid() {
		p.DefaultSortDirection = d.DefaultSortDirection
	}
	if p.RetentionDays < 0 {
		p.RetentionDays = d.RetentionDays
	}
	if p.CompactItemsPerRow <= 0 {
		p.CompactItemsPerRow = d.CompactItemsPerRow
	}
	return p
}
