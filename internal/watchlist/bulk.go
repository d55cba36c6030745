package watchlist

import (
	"github.com/mmcdole/cineflix/internal/domain"
)

// BulkApply applies op to every listed id within one read-modify-write
// cycle. Ids that are not on the list are skipped; an unknown operation
// type is logged and changes nothing.
func (r *Repository) BulkApply(op domain.BulkOperation) (domain.BulkResult, error) {
	result := domain.BulkResult{Requested: len(op.ItemIDs)}

	if len(op.ItemIDs) == 0 {
		return result, domain.Invalid("itemIds", "must not be empty")
	}
	if op.Type == domain.BulkSetPriority && !op.Priority.Valid() {
		return result, domain.Invalid("priority", "unknown priority "+string(op.Priority))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.List()
	items, applied, known := applyBulk(items, op)
	if !known {
		r.logger.Warn("unknown bulk operation", "type", op.Type, "count", len(op.ItemIDs))
		return result, nil
	}
	result.Applied = applied
	if applied == 0 {
		return result, nil
	}

	if err := r.save(items); err != nil {
		return result, err
	}
	r.logger.Info("applied bulk operation", "type", op.Type, "requested", result.Requested, "applied", applied)
	return result, nil
}

// applyBulk mutates items in memory and reports how many ids were found and
// whether the operation type is known.
func applyBulk(items []domain.ListItem, op domain.BulkOperation) ([]domain.ListItem, int, bool) {
	switch op.Type {
	case domain.BulkRemove, domain.BulkMarkWatched, domain.BulkMarkUnwatched,
		domain.BulkSetPriority, domain.BulkAddTags, domain.BulkRemoveTags:
	default:
		return items, 0, false
	}

	applied := 0
	for _, id := range op.ItemIDs {
		i := indexByID(items, id)
		if i < 0 {
			continue
		}
		applied++

		switch op.Type {
		case domain.BulkRemove:
			items = append(items[:i], items[i+1:]...)
		case domain.BulkMarkWatched:
			items[i].Status = domain.StatusCompleted
			items[i].Progress = 100
		case domain.BulkMarkUnwatched:
			items[i].Status = domain.StatusNotStarted
			items[i].Progress = 0
		case domain.BulkSetPriority:
			items[i].Priority = op.Priority
		case domain.BulkAddTags:
			items[i].CustomTags = normalizeTags(append(append([]string{}, items[i].CustomTags...), op.Tags...))
		case domain.BulkRemoveTags:
			items[i].CustomTags = removeTags(items[i].CustomTags, op.Tags)
		}
	}
	return items, applied, true
}

func removeTags(tags, remove []string) []string {
	drop := make(map[string]bool, len(remove))
	for _, t := range remove {
		drop[t] = true
	}
	kept := make([]string, 0, len(tags))
	for _, t := range tags {
		if !drop[t] {
			kept = append(kept, t)
		}
	}
	return kept
}
