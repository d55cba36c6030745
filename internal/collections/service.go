// Package collections manages user-defined named groupings of content,
// stored independently of the watch list.
package collections

import (
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/cineflix/internal/domain"
	"github.com/mmcdole/cineflix/internal/storage"
)

// Service provides CRUD over the collections stored under
// domain.KeyCollections.
type Service struct {
	store  *storage.JSON
	logger *slog.Logger
	now    func() time.Time
}

// NewService creates a collections service.
func NewService(store *storage.JSON, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// Update is a partial set of collection fields
type Update struct {
	Name        *string
	Description *string
	IsPublic    *bool
}

// List returns every collection in creation order.
func (s *Service) List() []domain.Collection {
	cols := storage.Load(s.store, domain.KeyCollections, []domain.Collection{})
	if cols == nil {
		return []domain.Collection{}
	}
	return cols
}

// Get returns the collection with id.
func (s *Service) Get(id string) (domain.Collection, bool) {
	cols := s.List()
	if i := indexOf(cols, id); i >= 0 {
		return cols[i], true
	}
	return domain.Collection{}, false
}

// Create adds a new, empty collection.
func (s *Service) Create(name, description string, isPublic bool) (domain.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Collection{}, domain.Invalid("name", "must not be empty")
	}

	now := s.now()
	col := domain.Collection{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Items:       []domain.CollectionEntry{},
		IsPublic:    isPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	cols := append(s.List(), col)
	if err := s.save(cols); err != nil {
		return col, err
	}
	s.logger.Info("created collection", "id", col.ID, "name", name)
	return col, nil
}

// Update replaces the fields set in u.
func (s *Service) Update(id string, u *Update) (domain.Collection, error) {
	if id == "" {
		return domain.Collection{}, domain.Invalid("id", "must not be empty")
	}
	if u == nil {
		return domain.Collection{}, domain.Invalid("updates", "must not be nil")
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return domain.Collection{}, domain.Invalid("name", "must not be empty")
	}

	return s.mutate(id, func(col *domain.Collection) bool {
		if u.Name != nil {
			col.Name = strings.TrimSpace(*u.Name)
		}
		if u.Description != nil {
			col.Description = *u.Description
		}
		if u.IsPublic != nil {
			col.IsPublic = *u.IsPublic
		}
		return true
	})
}

// Delete removes the collection with id. Unknown ids are ignored.
func (s *Service) Delete(id string) error {
	if id == "" {
		return domain.Invalid("id", "must not be empty")
	}

	cols := s.List()
	i := indexOf(cols, id)
	if i < 0 {
		return nil
	}
	cols = append(cols[:i], cols[i+1:]...)
	if err := s.save(cols); err != nil {
		return err
	}
	s.logger.Info("deleted collection", "id", id)
	return nil
}

// AddItem references content from the collection. Adding content that is
// already referenced changes nothing.
func (s *Service) AddItem(id string, contentID int64, t domain.ContentType) (domain.Collection, error) {
	if err := validateRef(id, contentID, t); err != nil {
		return domain.Collection{}, err
	}

	return s.mutate(id, func(col *domain.Collection) bool {
		if col.Contains(contentID, t) {
			return false
		}
		col.Items = append(col.Items, domain.CollectionEntry{
			ContentID:   contentID,
			ContentType: t,
			AddedAt:     s.now(),
		})
		return true
	})
}

// RemoveItem drops a content reference from the collection.
func (s *Service) RemoveItem(id string, contentID int64, t domain.ContentType) (domain.Collection, error) {
	if err := validateRef(id, contentID, t); err != nil {
		return domain.Collection{}, err
	}

	return s.mutate(id, func(col *domain.Collection) bool {
		kept := make([]domain.CollectionEntry, 0, len(col.Items))
		for _, e := range col.Items {
			if e.ContentID != contentID || e.ContentType != t {
				kept = append(kept, e)
			}
		}
		if len(kept) == len(col.Items) {
			return false
		}
		col.Items = kept
		return true
	})
}

// CollectionsContaining returns the collections that reference content.
func (s *Service) CollectionsContaining(contentID int64, t domain.ContentType) []domain.Collection {
	var out []domain.Collection
	for _, col := range s.List() {
		if col.Contains(contentID, t) {
			out = append(out, col)
		}
	}
	return out
}

// mutate applies fn to the collection with id and saves when fn reports
// a change.
func (s *Service) mutate(id string, fn func(*domain.Collection) bool) (domain.Collection, error) {
	cols := s.List()
	i := indexOf(cols, id)
	if i < 0 {
		return domain.Collection{}, domain.ErrCollectionNotFound
	}

	if !fn(&cols[i]) {
		return cols[i], nil
	}
	cols[i].UpdatedAt = s.now()
	if err := s.save(cols); err != nil {
		return cols[i], err
	}
	return cols[i], nil
}

func (s *Service) save(cols []domain.Collection) error {
	return s.store.Save(domain.KeyCollections, cols)
}

func indexOf(cols []domain.Collection, id string) int {
	for i := range cols {
		if cols[i].ID == id {
			return i
		}
	}
	return -1
}

func validateRef(id string, contentID int64, t domain.ContentType) error {
	if id == "" {
		return domain.Invalid("id", "must not be empty")
	}
	if contentID <= 0 {
		return domain.Invalid("contentId", "must be a positive number")
	}
	if !t.Valid() {
		return domain.Invalid("contentType", "must be movie or tv")
	}
	return nil
}
