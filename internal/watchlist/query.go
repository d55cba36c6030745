package watchlist

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/mmcdole/cineflix/internal/domain"
)

// FilterAndSort returns the items matching every active predicate of f,
// ordered by key. The input slice is not modified. Ties keep their input
// order and an unknown key leaves the filtered order untouched.
func FilterAndSort(
	items []domain.ListItem,
	f domain.Filter,
	key domain.SortKey,
	dir domain.SortDirection,
	now time.Time,
) []domain.ListItem {
	out := make([]domain.ListItem, 0, len(items))
	for _, item := range items {
		if matches(item, f, now) {
			out = append(out, item)
		}
	}
	sortItems(out, key, dir)
	return out
}

func matches(item domain.ListItem, f domain.Filter, now time.Time) bool {
	return matchType(item, f.ContentType) &&
		matchStatus(item, f.Status) &&
		matchGenres(item, f.Genres) &&
		matchTags(item, f.Tags) &&
		matchPriority(item, f.Priority) &&
		matchLiked(item, f.Liked) &&
		matchAdded(item, f.DateAdded, now) &&
		matchRuntime(item, f.Runtime)
}

func isAll(v string) bool {
	return v == "" || v == domain.FilterAll
}

func matchType(item domain.ListItem, t domain.TypeFilter) bool {
	switch {
	case isAll(string(t)):
		return true
	case t == domain.TypeDocumentary:
		return item.Content.HasGenreID(domain.DocumentaryGenreID) ||
			item.Content.HasGenreNameFold("documentary")
	default:
		return string(item.ContentType) == string(t)
	}
}

func matchStatus(item domain.ListItem, s domain.Status) bool {
	return isAll(string(s)) || item.Status == s
}

func matchGenres(item domain.ListItem, genres []int) bool {
	if len(genres) == 0 {
		return true
	}
	for _, g := range genres {
		if item.Content.HasGenreID(g) {
			return true
		}
	}
	return false
}

func matchTags(item domain.ListItem, tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, t := range tags {
		if item.HasTag(t) {
			return true
		}
	}
	return false
}

func matchPriority(item domain.ListItem, p domain.Priority) bool {
	return isAll(string(p)) || item.Priority == p
}

func matchLiked(item domain.ListItem, l domain.LikedFilter) bool {
	switch l {
	case domain.Liked:
		return item.IsLiked
	case domain.NotLiked:
		return !item.IsLiked
	default:
		return true
	}
}

func matchAdded(item domain.ListItem, a domain.AddedFilter, now time.Time) bool {
	var cutoff time.Time
	switch a {
	case domain.AddedLastWeek:
		cutoff = now.AddDate(0, 0, -7)
	case domain.AddedLastMonth:
		cutoff = now.AddDate(0, -1, 0)
	case domain.AddedLastYear:
		cutoff = now.AddDate(-1, 0, 0)
	default:
		return true
	}
	return !item.DateAdded.Before(cutoff)
}

func matchRuntime(item domain.ListItem, r domain.RuntimeFilter) bool {
	rt := item.EstimatedRuntime
	switch r {
	case domain.RuntimeShort:
		return rt <= domain.ShortRuntimeMax
	case domain.RuntimeMedium:
		return rt > domain.ShortRuntimeMax && rt <= domain.MediumRuntimeMax
	case domain.RuntimeLong:
		return rt > domain.MediumRuntimeMax
	default:
		return true
	}
}

// sortItems orders items in place. Anything but SortAsc sorts descending.
func sortItems(items []domain.ListItem, key domain.SortKey, dir domain.SortDirection) {
	compare := comparator(key)
	if compare == nil {
		return
	}
	slices.SortStableFunc(items, func(a, b domain.ListItem) int {
		if dir == domain.SortAsc {
			return compare(a, b)
		}
		return compare(b, a)
	})
}

func comparator(key domain.SortKey) func(a, b domain.ListItem) int {
	switch key {
	case domain.SortDateAdded:
		return func(a, b domain.ListItem) int { return a.DateAdded.Compare(b.DateAdded) }
	case domain.SortTitle:
		return func(a, b domain.ListItem) int { return strings.Compare(a.Title(), b.Title()) }
	case domain.SortRating:
		return func(a, b domain.ListItem) int { return cmp.Compare(a.Content.VoteAverage, b.Content.VoteAverage) }
	case domain.SortRuntime:
		return func(a, b domain.ListItem) int { return cmp.Compare(a.EstimatedRuntime, b.EstimatedRuntime) }
	case domain.SortReleaseYear:
		return func(a, b domain.ListItem) int { return a.Content.ReleaseTime().Compare(b.Content.ReleaseTime()) }
	default:
		return nil
	}
}
