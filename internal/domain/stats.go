package domain

// Stats is a rollup of the list, computed on demand and never stored
type Stats struct {
	TotalItems         int            `json:"totalItems"`
	Movies             int            `json:"movies"`
	TVShows            int            `json:"tvShows"`
	TotalHours         int            `json:"totalHours"`
	CompletionRate     float64        `json:"completionRate"` // percent
	AverageRating      float64        `json:"averageRating"`  // personal ratings only
	GenreDistribution  map[string]int `json:"genreDistribution"`
	StatusDistribution map[Status]int `json:"statusDistribution"`
	MonthlyAdditions   map[string]int `json:"monthlyAdditions"` // YYYY-MM, trailing 12 months
}
