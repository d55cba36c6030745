package watchlist

import (
	"strings"
	"time"

	"github.com/mmcdole/cineflix/internal/domain"
)

// ItemUpdate is a partial set of list item fields. Nil fields are left
// unchanged; set fields replace the stored value wholesale.
type ItemUpdate struct {
	Status         *domain.Status
	Progress       *int
	Priority       *domain.Priority
	CustomTags     *[]string
	IsLiked        *bool
	LastWatched    *time.Time
	PersonalRating *float64
	ClearRating    bool
	PersonalNotes  *string
}

// Ptr returns a pointer to v, for building updates inline
func Ptr[T any](v T) *T {
	return &v
}

func (u *ItemUpdate) validate() error {
	if u.Status != nil && !u.Status.Valid() {
		return domain.Invalid("status", "unknown status "+string(*u.Status))
	}
	if u.Progress != nil && (*u.Progress < 0 || *u.Progress > 100) {
		return domain.Invalid("progress", "must be between 0 and 100")
	}
	if u.Priority != nil && !u.Priority.Valid() {
		return domain.Invalid("priority", "unknown priority "+string(*u.Priority))
	}
	if u.PersonalRating != nil && (*u.PersonalRating < 0 || *u.PersonalRating > 10) {
		return domain.Invalid("personalRating", "must be between 0 and 10")
	}
	return nil
}

func (u *ItemUpdate) apply(item *domain.ListItem, now time.Time) {
	if u.Status != nil {
		item.Status = *u.Status
	}
	if u.Progress != nil {
		item.Progress = *u.Progress
	}
	if u.Priority != nil {
		item.Priority = *u.Priority
	}
	if u.CustomTags != nil {
		item.CustomTags = normalizeTags(*u.CustomTags)
	}
	if u.IsLiked != nil && *u.IsLiked != item.IsLiked {
		item.IsLiked = *u.IsLiked
		if item.IsLiked {
			item.LikedAt = &now
		} else {
			item.LikedAt = nil
		}
	}
	if u.LastWatched != nil {
		t := *u.LastWatched
		item.LastWatched = &t
	}
	if u.ClearRating {
		item.PersonalRating = nil
	} else if u.PersonalRating != nil {
		r := *u.PersonalRating
		item.PersonalRating = &r
	}
	if u.PersonalNotes != nil {
		item.PersonalNotes = *u.PersonalNotes
	}
}

// normalizeTags trims tags and drops blanks and duplicates, keeping order
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
