package watchlist

import (
	"math"
	"time"

	"github.com/mmcdole/cineflix/internal/domain"
)

// monthsTracked is the size of the monthly additions window
const monthsTracked = 12

// ComputeStats aggregates items. Ratios are zero for an empty list.
func ComputeStats(items []domain.ListItem, now time.Time) domain.Stats {
	stats := domain.Stats{
		TotalItems:         len(items),
		GenreDistribution:  make(map[string]int),
		StatusDistribution: make(map[domain.Status]int, 4),
		MonthlyAdditions:   make(map[string]int, monthsTracked),
	}
	for _, s := range domain.Statuses() {
		stats.StatusDistribution[s] = 0
	}
	for i := monthsTracked - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		stats.MonthlyAdditions[monthKey(month)] = 0
	}

	var (
		minutes   int
		completed int
		ratingSum float64
		rated     int
	)

	for _, item := range items {
		switch item.ContentType {
		case domain.ContentTypeMovie:
			stats.Movies++
		case domain.ContentTypeTV:
			stats.TVShows++
		}

		minutes += item.EstimatedRuntime

		if _, ok := stats.StatusDistribution[item.Status]; ok {
			stats.StatusDistribution[item.Status]++
		}
		if item.Status == domain.StatusCompleted {
			completed++
		}

		if item.PersonalRating != nil {
			ratingSum += *item.PersonalRating
			rated++
		}

		for _, g := range item.Content.Genres {
			if g.Name != "" {
				stats.GenreDistribution[g.Name]++
			}
		}

		key := monthKey(item.DateAdded.In(now.Location()))
		if _, ok := stats.MonthlyAdditions[key]; ok {
			stats.MonthlyAdditions[key]++
		}
	}

	stats.TotalHours = int(math.Round(float64(minutes) / 60))
	if stats.TotalItems > 0 {
		stats.CompletionRate = float64(completed) / float64(stats.TotalItems) * 100
	}
	if rated > 0 {
		stats.AverageRating = math.Round(ratingSum/float64(rated)*10) / 10
	}
	return stats
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
