package watchlist

import (
	"slices"

	"github.com/mmcdole/cineflix/internal/domain"
)

// UpdateProgress records how far into content the user is. The percentage
// is clamped to 0-100 and the status follows it: 100 completes the item,
// anything above 0 puts it in progress, and 0 resets it unless dropped.
func (r *Repository) UpdateProgress(contentID int64, t domain.ContentType, percent int) (domain.ListItem, error) {
	if err := validateRef(contentID, t); err != nil {
		return domain.ListItem{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.List()
	i := indexOf(items, contentID, t)
	if i < 0 {
		return domain.ListItem{}, domain.ErrItemNotFound
	}

	percent = max(0, min(100, percent))
	now := r.now()

	item := &items[i]
	item.Progress = percent
	item.LastWatched = &now
	switch {
	case percent >= 100:
		item.Status = domain.StatusCompleted
	case percent > 0:
		item.Status = domain.StatusInProgress
	case item.Status != domain.StatusDropped:
		item.Status = domain.StatusNotStarted
	}

	if err := r.save(items); err != nil {
		return *item, err
	}
	r.logger.Debug("updated progress", "contentID", contentID, "type", t, "progress", percent)
	return *item, nil
}

// ContinueWatching returns in-progress items, most recently watched first.
// A limit of zero or less returns all of them.
func (r *Repository) ContinueWatching(limit int) []domain.ListItem {
	var items []domain.ListItem
	for _, item := range r.List() {
		if item.Status == domain.StatusInProgress {
			items = append(items, item)
		}
	}

	slices.SortStableFunc(items, func(a, b domain.ListItem) int {
		switch {
		case a.LastWatched == nil && b.LastWatched == nil:
			return 0
		case a.LastWatched == nil:
			return 1
		case b.LastWatched == nil:
			return -1
		default:
			return b.LastWatched.Compare(*a.LastWatched)
		}
	})

	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

// CleanupCompleted removes completed items last watched (or, if never
// watched, added) more than retentionDays ago. It returns how many items
// were removed.
func (r *Repository) CleanupCompleted(retentionDays int) (int, error) {
	if retentionDays < 0 {
		return 0, domain.Invalid("retentionDays", "must not be negative")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().AddDate(0, 0, -retentionDays)
	items := r.List()
	kept := make([]domain.ListItem, 0, len(items))
	for _, item := range items {
		ref := item.DateAdded
		if item.LastWatched != nil {
			ref = *item.LastWatched
		}
		if item.Status == domain.StatusCompleted && ref.Before(cutoff) {
			continue
		}
		kept = append(kept, item)
	}

	removed := len(items) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := r.save(kept); err != nil {
		return removed, err
	}
	r.logger.Info("cleaned up completed items", "removed", removed, "retentionDays", retentionDays)
	return removed, nil
}
