package watchlist

import (
	"testing"
	"time"

	"github.com/mmcdole/cineflix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(items []domain.ListItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title()
	}
	return out
}

func TestQueryRatingSortAndLongRuntime(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.repo.Add(domain.Content{ID: 2, Title: "Alpha", VoteAverage: 9, Runtime: 80}, domain.ContentTypeMovie)
	require.NoError(t, err)
	env.now = testNow.Add(time.Minute)
	_, err = env.repo.Add(domain.Content{ID: 1, Title: "Beta", VoteAverage: 7, Runtime: 160}, domain.ContentTypeMovie)
	require.NoError(t, err)

	got := env.repo.Query(domain.Filter{ContentType: domain.TypeAll}, domain.SortRating, domain.SortDesc)
	assert.Equal(t, []string{"Alpha", "Beta"}, titles(got))

	got = env.repo.Query(domain.Filter{}, domain.SortTitle, domain.SortDesc)
	assert.Equal(t, []string{"Beta", "Alpha"}, titles(got))

	got = env.repo.Query(domain.Filter{Runtime: domain.RuntimeLong}, domain.SortTitle, domain.SortAsc)
	assert.Equal(t, []string{"Beta"}, titles(got))

	got = env.repo.Query(domain.Filter{Runtime: domain.RuntimeShort}, domain.SortTitle, domain.SortAsc)
	assert.Equal(t, []string{"Alpha"}, titles(got))
}

func TestRuntimeBuckets(t *testing.T) {
	items := []domain.ListItem{
		{ID: "a", EstimatedRuntime: 90},
		{ID: "b", EstimatedRuntime: 91},
		{ID: "c", EstimatedRuntime: 150},
		{ID: "d", EstimatedRuntime: 151},
	}

	ids := func(f domain.RuntimeFilter) []string {
		var out []string
		for _, item := range FilterAndSort(items, domain.Filter{Runtime: f}, "", domain.SortAsc, testNow) {
			out = append(out, item.ID)
		}
		return out
	}

	assert.Equal(t, []string{"a"}, ids(domain.RuntimeShort))
	assert.Equal(t, []string{"b", "c"}, ids(domain.RuntimeMedium))
	assert.Equal(t, []string{"d"}, ids(domain.RuntimeLong))
	assert.Len(t, ids(domain.RuntimeAll), 4)
}

func TestDateAddedFilter(t *testing.T) {
	env := newTestEnv(t)

	env.now = testNow.AddDate(0, 0, -10)
	_, _ = env.repo.Add(movie(1, "Old"), domain.ContentTypeMovie)
	env.now = testNow.AddDate(0, 0, -2)
	_, _ = env.repo.Add(movie(2, "Recent"), domain.ContentTypeMovie)
	env.now = testNow.AddDate(0, -2, 0)
	_, _ = env.repo.Add(movie(3, "Ancient"), domain.ContentTypeMovie)
	env.now = testNow

	got := env.repo.Query(domain.Filter{DateAdded: domain.AddedLastWeek}, domain.SortDateAdded, domain.SortDesc)
	assert.Equal(t, []string{"Recent"}, titles(got))

	got = env.repo.Query(domain.Filter{DateAdded: domain.AddedLastMonth}, domain.SortDateAdded, domain.SortDesc)
	assert.Equal(t, []string{"Recent", "Old"}, titles(got))

	got = env.repo.Query(domain.Filter{DateAdded: domain.AddedLastYear}, domain.SortDateAdded, domain.SortAsc)
	assert.Equal(t, []string{"Ancient", "Old", "Recent"}, titles(got))
}

func TestTypeFilter(t *testing.T) {
	items := []domain.ListItem{
		{ID: "m", ContentType: domain.ContentTypeMovie},
		{ID: "tv", ContentType: domain.ContentTypeTV},
		{ID: "doc-id", ContentType: domain.ContentTypeMovie, Content: domain.Content{GenreIDs: []int{99}}},
		{ID: "doc-name", ContentType: domain.ContentTypeTV, Content: domain.Content{Genres: []domain.Genre{{ID: 1, Name: "Nature Documentary"}}}},
	}

	ids := func(tf domain.TypeFilter) []string {
		var out []string
		for _, item := range FilterAndSort(items, domain.Filter{ContentType: tf}, "", "", testNow) {
			out = append(out, item.ID)
		}
		return out
	}

	assert.Equal(t, []string{"m", "doc-id"}, ids(domain.TypeMovie))
	assert.Equal(t, []string{"tv", "doc-name"}, ids(domain.TypeTV))
	assert.Equal(t, []string{"doc-id", "doc-name"}, ids(domain.TypeDocumentary))
	assert.Len(t, ids(domain.TypeAll), 4)
	assert.Len(t, ids(""), 4)
}

func TestCombinedFilters(t *testing.T) {
	items := []domain.ListItem{
		{ID: "1", Status: domain.StatusCompleted, Priority: domain.PriorityHigh, IsLiked: true, CustomTags: []string{"noir"},
			Content: domain.Content{GenreIDs: []int{18}}},
		{ID: "2", Status: domain.StatusCompleted, Priority: domain.PriorityLow, IsLiked: false, CustomTags: []string{"comfort"},
			Content: domain.Content{Genres: []domain.Genre{{ID: 35, Name: "Comedy"}}}},
		{ID: "3", Status: domain.StatusInProgress, Priority: domain.PriorityHigh, IsLiked: true},
	}

	tests := []struct {
		name   string
		filter domain.Filter
		want   []string
	}{
		{"status", domain.Filter{Status: domain.StatusCompleted}, []string{"1", "2"}},
		{"status all", domain.Filter{Status: domain.FilterAll}, []string{"1", "2", "3"}},
		{"priority", domain.Filter{Priority: domain.PriorityHigh}, []string{"1", "3"}},
		{"liked", domain.Filter{Liked: domain.Liked}, []string{"1", "3"}},
		{"not liked", domain.Filter{Liked: domain.NotLiked}, []string{"2"}},
		{"genre any of", domain.Filter{Genres: []int{35, 18}}, []string{"1", "2"}},
		{"tag any of", domain.Filter{Tags: []string{"comfort", "missing"}}, []string{"2"}},
		{"conjunction", domain.Filter{Status: domain.StatusCompleted, Liked: domain.Liked}, []string{"1"}},
		{"empty result", domain.Filter{Status: domain.StatusDropped}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, item := range FilterAndSort(items, tt.filter, "", "", testNow) {
				got = append(got, item.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortKeys(t *testing.T) {
	items := []domain.ListItem{
		{ID: "a", EstimatedRuntime: 100, Content: domain.Content{Title: "b", VoteAverage: 7.1, ReleaseDate: "2001-05-01"}},
		{ID: "b", EstimatedRuntime: 60, Content: domain.Content{Name: "C", VoteAverage: 9.0, FirstAirDate: "1999-01-01"}},
		{ID: "c", EstimatedRuntime: 100, Content: domain.Content{Title: "a", VoteAverage: 7.1}},
	}

	ids := func(key domain.SortKey, dir domain.SortDirection) []string {
		var out []string
		for _, item := range FilterAndSort(items, domain.Filter{}, key, dir, testNow) {
			out = append(out, item.ID)
		}
		return out
	}

	// Title comparison is case-sensitive: uppercase sorts first
	assert.Equal(t, []string{"b", "c", "a"}, ids(domain.SortTitle, domain.SortAsc))
	assert.Equal(t, []string{"b", "a", "c"}, ids(domain.SortRating, domain.SortDesc))
	// Equal runtimes keep their input order
	assert.Equal(t, []string{"b", "a", "c"}, ids(domain.SortRuntime, domain.SortAsc))
	// Missing release dates sort as 1900
	assert.Equal(t, []string{"c", "b", "a"}, ids(domain.SortReleaseYear, domain.SortAsc))
	// Unknown direction sorts descending
	assert.Equal(t, []string{"a", "b", "c"}, ids(domain.SortReleaseYear, "sideways"))
	// Unknown key keeps the input order
	assert.Equal(t, []string{"a", "b", "c"}, ids("popularity", domain.SortAsc))
}

func TestFilterAndSortDoesNotMutateInput(t *testing.T) {
	items := []domain.ListItem{
		{ID: "z", Content: domain.Content{Title: "Zed"}},
		{ID: "a", Content: domain.Content{Title: "Amy"}},
	}
	_ = FilterAndSort(items, domain.Filter{}, domain.SortTitle, domain.SortAsc, testNow)
	assert.Equal(t, "z", items[0].ID)
}
