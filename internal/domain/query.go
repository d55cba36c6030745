package domain

// FilterAll is the sentinel that disables a single-valued filter
const FilterAll = "all"

// TypeFilter selects content by type. TypeDocumentary matches on genre
// instead of content type.
type TypeFilter string

const (
	TypeAll         TypeFilter = FilterAll
	TypeMovie       TypeFilter = TypeFilter(ContentTypeMovie)
	TypeTV          TypeFilter = TypeFilter(ContentTypeTV)
	TypeDocumentary TypeFilter = "documentary"
)

// Valid reports whether f is a known type filter
func (f TypeFilter) Valid() bool {
	switch f {
	case TypeAll, TypeMovie, TypeTV, TypeDocumentary:
		return true
	}
	return false
}

// LikedFilter selects entries by like state
type LikedFilter string

const (
	LikedAll LikedFilter = FilterAll
	Liked    LikedFilter = "liked"
	NotLiked LikedFilter = "notLiked"
)

// AddedFilter selects entries by how recently they were added
type AddedFilter string

const (
	AddedAll       AddedFilter = FilterAll
	AddedLastWeek  AddedFilter = "lastWeek"
	AddedLastMonth AddedFilter = "lastMonth"
	AddedLastYear  AddedFilter = "lastYear"
)

// RuntimeFilter selects entries by estimated runtime bucket
type RuntimeFilter string

const (
	RuntimeAll    RuntimeFilter = FilterAll
	RuntimeShort  RuntimeFilter = "short"  // <= 90 minutes
	RuntimeMedium RuntimeFilter = "medium" // 91-150 minutes
	RuntimeLong   RuntimeFilter = "long"   // > 150 minutes
)

// Runtime bucket boundaries in minutes
const (
	ShortRuntimeMax  = 90
	MediumRuntimeMax = 150
)

// Filter is a conjunction of independent predicates. Empty values and
// the "all" sentinel disable the corresponding predicate.
type Filter struct {
	ContentType TypeFilter    `json:"contentType,omitempty"`
	Status      Status        `json:"status,omitempty"`
	Genres      []int         `json:"genres,omitempty"`
	Tags        []string      `json:"tags,omitempty"`
	Priority    Priority      `json:"priority,omitempty"`
	Liked       LikedFilter   `json:"liked,omitempty"`
	DateAdded   AddedFilter   `json:"dateAdded,omitempty"`
	Runtime     RuntimeFilter `json:"runtime,omitempty"`
}

// SortKey names the field list entries are ordered by
type SortKey string

const (
	SortDateAdded   SortKey = "dateAdded"
	SortTitle       SortKey = "title"
	SortRating      SortKey = "rating"
	SortRuntime     SortKey = "runtime"
	SortReleaseYear SortKey = "releaseYear"
)

// SortKeys lists the supported sort keys in cycling order
func SortKeys() []SortKey {
	return []SortKey{SortDateAdded, SortTitle, SortRating, SortRuntime, SortReleaseYear}
}

// Valid reports whether k is a supported sort key
func (k SortKey) Valid() bool {
	for _, known := range SortKeys() {
		if k == known {
			return true
		}
	}
	return false
}

// String returns the display name for the sort key
func (k SortKey) String() string {
	switch k {
	case SortDateAdded:
		return "Date Added"
	case SortTitle:
		return "Title"
	case SortRating:
		return "Rating"
	case SortRuntime:
		return "Runtime"
	case SortReleaseYear:
		return "Release Year"
	default:
		return "Unknown"
	}
}

// SortDirection represents sort direction
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Valid reports whether d is a known direction
func (d SortDirection) Valid() bool {
	return d == SortAsc || d == SortDesc
}

// SearchOptions extends title/overview search to personal metadata
type SearchOptions struct {
	IncludeNotes bool
	IncludeTags  bool
}
