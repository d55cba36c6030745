package domain

import (
	"strings"
	"time"
)

// ContentType distinguishes catalog content kinds
type ContentType string

const (
	ContentTypeMovie ContentType = "movie"
	ContentTypeTV    ContentType = "tv"
)

// Valid reports whether t is a known content type
func (t ContentType) Valid() bool {
	return t == ContentTypeMovie || t == ContentTypeTV
}

// DocumentaryGenreID is the catalog genre id for documentaries
const DocumentaryGenreID = 99

// Runtime defaults applied when catalog metadata is incomplete
const (
	DefaultMovieRuntime   = 120 // minutes
	DefaultEpisodeRuntime = 45  // minutes
	DefaultEpisodeCount   = 20
)

// Genre is a catalog genre reference
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Content is the catalog metadata snapshot embedded in list entries.
// Field names follow the catalog API so snapshots can be stored verbatim.
type Content struct {
	ID               int64   `json:"id"`
	Title            string  `json:"title,omitempty"` // movies
	Name             string  `json:"name,omitempty"`  // series
	Overview         string  `json:"overview,omitempty"`
	GenreIDs         []int   `json:"genre_ids,omitempty"`
	Genres           []Genre `json:"genres,omitempty"`
	VoteAverage      float64 `json:"vote_average,omitempty"`
	ReleaseDate      string  `json:"release_date,omitempty"`   // YYYY-MM-DD
	FirstAirDate     string  `json:"first_air_date,omitempty"` // YYYY-MM-DD
	Runtime          int     `json:"runtime,omitempty"`
	EpisodeRunTime   []int   `json:"episode_run_time,omitempty"`
	NumberOfEpisodes int     `json:"number_of_episodes,omitempty"`
	PosterPath       string  `json:"poster_path,omitempty"`
	BackdropPath     string  `json:"backdrop_path,omitempty"`
}

// DisplayTitle returns the movie title, falling back to the series name
func (c Content) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Name
}

// ReleaseTime returns the release date, then the first air date,
// then January 1st 1900 when neither parses.
func (c Content) ReleaseTime() time.Time {
	for _, raw := range []string{c.ReleaseDate, c.FirstAirDate} {
		if raw == "" {
			continue
		}
		if t, err := time.Parse("2006-01-02", raw); err == nil {
			return t
		}
	}
	return time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// HasGenreID reports whether any genre id or genre object matches id
func (c Content) HasGenreID(id int) bool {
	for _, g := range c.GenreIDs {
		if g == id {
			return true
		}
	}
	for _, g := range c.Genres {
		if g.ID == id {
			return true
		}
	}
	return false
}

// HasGenreNameFold reports whether any genre name contains sub, ignoring case
func (c Content) HasGenreNameFold(sub string) bool {
	sub = strings.ToLower(sub)
	for _, g := range c.Genres {
		if strings.Contains(strings.ToLower(g.Name), sub) {
			return true
		}
	}
	return false
}

// EstimateRuntime returns the total runtime in minutes for content of the
// given type. Series multiply the first episode runtime by the episode count.
func EstimateRuntime(c Content, t ContentType) int {
	if t == ContentTypeMovie {
		if c.Runtime > 0 {
			return c.Runtime
		}
		return DefaultMovieRuntime
	}

	episode := DefaultEpisodeRuntime
	if len(c.EpisodeRunTime) > 0 && c.EpisodeRunTime[0] > 0 {
		episode = c.EpisodeRunTime[0]
	}
	count := DefaultEpisodeCount
	if c.NumberOfEpisodes > 0 {
		count = c.NumberOfEpisodes
	}
	return episode * count
}
