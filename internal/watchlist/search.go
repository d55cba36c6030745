package watchlist

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/mmcdole/cineflix/internal/domain"
)

// Search returns items whose title or overview contains query, ignoring
// case. Notes and tags are searched too when opts asks for them. A blank
// query matches nothing.
func Search(items []domain.ListItem, query string, opts domain.SearchOptions) []domain.ListItem {
	results := make([]domain.ListItem, 0)

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return results
	}

	for _, item := range items {
		if searchMatch(item, q, opts) {
			results = append(results, item)
		}
	}
	return results
}

func searchMatch(item domain.ListItem, q string, opts domain.SearchOptions) bool {
	if strings.Contains(strings.ToLower(item.Content.Title), q) ||
		strings.Contains(strings.ToLower(item.Content.Name), q) ||
		strings.Contains(strings.ToLower(item.Content.Overview), q) {
		return true
	}
	if opts.IncludeNotes && strings.Contains(strings.ToLower(item.PersonalNotes), q) {
		return true
	}
	if opts.IncludeTags {
		for _, tag := range item.CustomTags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
	}
	return false
}

// Suggest ranks titles that fuzzily contain the characters of query in
// order, best first. It backs "did you mean" when Search finds nothing.
func Suggest(items []domain.ListItem, query string, limit int) []domain.ListItem {
	query = strings.TrimSpace(query)
	if query == "" || len(items) == 0 {
		return nil
	}

	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title()
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.Stable(ranks)

	if limit > 0 && len(ranks) > limit {
		ranks = ranks[:limit]
	}

	results := make([]domain.ListItem, len(ranks))
	for i, rank := range ranks {
		results[i] = items[rank.OriginalIndex]
	}
	return results
}
