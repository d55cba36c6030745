// Package watchlist manages the user's list of tracked movies and series:
// CRUD keyed by (content id, content type), filtering, search, statistics
// and bulk edits. Every operation reads the full list from storage and
// mutations write it back in one piece.
package watchlist

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/cineflix/internal/domain"
	"github.com/mmcdole/cineflix/internal/storage"
)

// Repository owns the list stored under domain.KeyListItems. Mutations
// are serialized so concurrent callers never drop each other's writes.
type Repository struct {
	mu     sync.Mutex // held across every load-modify-save cycle
	store  *storage.JSON
	logger *slog.Logger
	now    func() time.Time
	newID  func() string
}

// Option is a functional option for configuring Repository
type Option func(*Repository)

// WithLogger sets the logger for the repository
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repository) {
		r.logger = logger
	}
}

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// WithIDGenerator replaces the UUID generator used for new items
func WithIDGenerator(newID func() string) Option {
	return func(r *Repository) {
		r.newID = newID
	}
}

// NewRepository creates a repository persisting through store.
func NewRepository(store *storage.JSON, opts ...Option) *Repository {
	r := &Repository{
		store:  store,
		logger: slog.Default(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns every item in insertion order.
func (r *Repository) List() []domain.ListItem {
	items := storage.Load(r.store, domain.KeyListItems, []domain.ListItem{})
	if items == nil {
		return []domain.ListItem{}
	}
	return items
}

// Get returns the item tracking the given content.
func (r *Repository) Get(contentID int64, t domain.ContentType) (domain.ListItem, bool) {
	items := r.List()
	if i := indexOf(items, contentID, t); i >= 0 {
		return items[i], true
	}
	return domain.ListItem{}, false
}

// Add tracks content. Adding content that is already tracked returns the
// existing item unchanged.
func (r *Repository) Add(content domain.Content, t domain.ContentType) (domain.ListItem, error) {
	if err := validateContent(content, t); err != nil {
		return domain.ListItem{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.List()
	if i := indexOf(items, content.ID, t); i >= 0 {
		return items[i], nil
	}

	item := r.newItem(content, t)
	items = append(items, item)
	if err := r.save(items); err != nil {
		return item, err
	}

	r.logger.Info("added to list", "id", item.ID, "contentID", content.ID, "type", t)
	return item, nil
}

// Remove deletes the item with itemID. Unknown ids are ignored.
func (r *Repository) Remove(itemID string) error {
	if itemID == "" {
		return domain.Invalid("itemId", "must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.List()
	kept := items[:0]
	for _, item := range items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}

	if err := r.save(kept); err != nil {
		return err
	}
	r.logger.Info("removed from list", "id", itemID)
	return nil
}

// Update replaces the fields set in update on the item with itemID.
// Unknown ids are ignored.
func (r *Repository) Update(itemID string, update *ItemUpdate) error {
	if itemID == "" {
		return domain.Invalid("itemId", "must not be empty")
	}
	if update == nil {
		return domain.Invalid("updates", "must not be nil")
	}
	if err := update.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.List()
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		update.apply(&items[i], r.now())
		if err := r.save(items); err != nil {
			return err
		}
		r.logger.Debug("updated list item", "id", itemID)
		return nil
	}
	return nil
}

// ToggleLike flips the like flag on tracked content and returns the new
// state. Untracked content is not added; false is returned instead.
func (r *Repository) ToggleLike(contentID int64, t domain.ContentType) (bool, error) {
	if err := validateRef(contentID, t); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.List()
	i := indexOf(items, contentID, t)
	if i < 0 {
		return false, nil
	}

	item := &items[i]
	item.IsLiked = !item.IsLiked
	if item.IsLiked {
		now := r.now()
		item.LikedAt = &now
	} else {
		item.LikedAt = nil
	}

	if err := r.save(items); err != nil {
		return item.IsLiked, err
	}
	return item.IsLiked, nil
}

// LikeContent marks content as liked, adding it to the list first when it
// is not tracked yet.
func (r *Repository) LikeContent(content domain.Content, t domain.ContentType) (domain.ListItem, error) {
	if err := validateContent(content, t); err != nil {
		return domain.ListItem{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.List()
	i := indexOf(items, content.ID, t)
	if i < 0 {
		items = append(items, r.newItem(content, t))
		i = len(items) - 1
	}

	now := r.now()
	items[i].IsLiked = true
	items[i].LikedAt = &now

	if err := r.save(items); err != nil {
		return items[i], err
	}
	r.logger.Info("liked content", "contentID", content.ID, "type", t)
	return items[i], nil
}

// UnlikeContent clears the like flag on tracked content.
func (r *Repository) UnlikeContent(contentID int64, t domain.ContentType) error {
	if err := validateRef(contentID, t); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.List()
	i := indexOf(items, contentID, t)
	if i < 0 || !items[i].IsLiked {
		return nil
	}

	items[i].IsLiked = false
	items[i].LikedAt = nil
	return r.save(items)
}

// IsInList reports whether content is tracked.
func (r *Repository) IsInList(contentID int64, t domain.ContentType) (bool, error) {
	if err := validateRef(contentID, t); err != nil {
		return false, err
	}
	return indexOf(r.List(), contentID, t) >= 0, nil
}

// IsLiked reports whether content is tracked and liked.
func (r *Repository) IsLiked(contentID int64, t domain.ContentType) (bool, error) {
	if err := validateRef(contentID, t); err != nil {
		return false, err
	}
	items := r.List()
	i := indexOf(items, contentID, t)
	return i >= 0 && items[i].IsLiked, nil
}

// Query filters and sorts the stored list.
func (r *Repository) Query(f domain.Filter, key domain.SortKey, dir domain.SortDirection) []domain.ListItem {
	return FilterAndSort(r.List(), f, key, dir, r.now())
}

// Search matches the stored list against query.
func (r *Repository) Search(query string, opts domain.SearchOptions) []domain.ListItem {
	return Search(r.List(), query, opts)
}

// Suggest returns up to limit titles that fuzzily resemble query.
func (r *Repository) Suggest(query string, limit int) []domain.ListItem {
	return Suggest(r.List(), query, limit)
}

// Stats summarizes the stored list.
func (r *Repository) Stats() domain.Stats {
	return ComputeStats(r.List(), r.now())
}

func (r *Repository) newItem(content domain.Content, t domain.ContentType) domain.ListItem {
	return domain.ListItem{
		ID:               r.newID(),
		ContentID:        content.ID,
		ContentType:      t,
		Content:          content,
		Status:           domain.StatusNotStarted,
		Progress:         0,
		Priority:         domain.PriorityMedium,
		CustomTags:       []string{},
		DateAdded:        r.now(),
		EstimatedRuntime: domain.EstimateRuntime(content, t),
	}
}

func (r *Repository) save(items []domain.ListItem) error {
	return r.store.Save(domain.KeyListItems, items)
}

func indexOf(items []domain.ListItem, contentID int64, t domain.ContentType) int {
	for i := range items {
		if items[i].Matches(contentID, t) {
			return i
		}
	}
	return -1
}

func indexByID(items []domain.ListItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func validateContent(content domain.Content, t domain.ContentType) error {
	if !t.Valid() {
		return domain.Invalid("contentType", "must be movie or tv")
	}
	if content.ID <= 0 {
		return domain.Invalid("content.id", "must be a positive number")
	}
	return nil
}

func validateRef(contentID int64, t domain.ContentType) error {
	if contentID <= 0 {
		return domain.Invalid("contentId", "must be a positive number")
	}
	if !t.Valid() {
		return domain.Invalid("contentType", "must be movie or tv")
	}
	return nil
}
