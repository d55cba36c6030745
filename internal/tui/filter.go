package tui

import (
	"strings"

	"github.com/mmcdole/cineflix/internal/domain"
	"github.com/sahilm/fuzzy"
)

// cycle returns the element after cur in opts, wrapping around
func cycle[T comparable](opts []T, cur T) T {
	for i, o := range opts {
		if o == cur {
			return opts[(i+1)%len(opts)]
		}
	}
	return opts[0]
}

var (
	typeCycle    = []domain.TypeFilter{domain.TypeAll, domain.TypeMovie, domain.TypeTV, domain.TypeDocumentary}
	statusCycle  = append([]domain.Status{domain.FilterAll}, domain.Statuses()...)
	likedCycle   = []domain.LikedFilter{domain.LikedAll, domain.Liked, domain.NotLiked}
	runtimeCycle = []domain.RuntimeFilter{domain.RuntimeAll, domain.RuntimeShort, domain.RuntimeMedium, domain.RuntimeLong}
	addedCycle   = []domain.AddedFilter{domain.AddedAll, domain.AddedLastWeek, domain.AddedLastMonth, domain.AddedLastYear}
)

// defaultFilter disables every predicate explicitly so cycling starts at "all"
func defaultFilter() domain.Filter {
	return domain.Filter{
		ContentType: domain.TypeAll,
		Status:      domain.FilterAll,
		Liked:       domain.LikedAll,
		DateAdded:   domain.AddedAll,
		Runtime:     domain.RuntimeAll,
	}
}

// filterSummary renders the active predicates, omitting disabled ones
func filterSummary(f domain.Filter) string {
	var parts []string
	add := func(name, v string) {
		if v != "" && v != domain.FilterAll {
			parts = append(parts, name+"="+v)
		}
	}
	add("type", string(f.ContentType))
	add("status", string(f.Status))
	add("liked", string(f.Liked))
	add("runtime", string(f.Runtime))
	add("added", string(f.DateAdded))
	return strings.Join(parts, " ")
}

// titleSource adapts list items to fuzzy.Source
type titleSource []domain.ListItem

func (s titleSource) String(i int) string { return s[i].Title() }
func (s titleSource) Len() int            { return len(s) }

// applyQuickFilter returns indices of items whose titles fuzzy-match query,
// best match first. An empty query keeps every item in its current order.
func applyQuickFilter(items []domain.ListItem, query string) []int {
	if query == "" {
		visible := make([]int, len(items))
		for i := range items {
			visible[i] = i
		}
		return visible
	}

	matches := fuzzy.FindFrom(query, titleSource(items))
	visible := make([]int, len(matches))
	for i, m := range matches {
		visible[i] = m.Index
	}
	return visible
}
