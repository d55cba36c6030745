package domain

// ViewMode is the layout used for the list screen
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Valid reports whether v is a known view mode
func (v ViewMode) Valid() bool {
	return v == ViewGrid || v == ViewList
}

// Preferences is the singleton list configuration
type Preferences struct {
	DefaultView          ViewMode      `json:"defaultView"`
	DefaultSort          SortKey       `json:"defaultSort"`
	DefaultSortDirection SortDirection `json:"defaultSortDirection"`
	AutoRemoveCompleted  bool          `json:"autoRemoveCompleted"`
	RetentionDays        int           `json:"retentionDays"`
	ShowProgressBars     bool          `json:"showProgressBars"`
	EnableNotifications  bool          `json:"enableNotifications"`
	CompactItemsPerRow   int           `json:"compactItemsPerRow"`
}

// DefaultPreferences returns the preferences used before anything is saved
func DefaultPreferences() Preferences {
	return Preferences{
		DefaultView:          ViewGrid,
		DefaultSort:          SortDateAdded,
		DefaultSortDirection: SortDesc,
		AutoRemoveCompleted:  false,
		RetentionDays:        30,
		ShowProgressBars:     true,
		EnableNotifications:  false,
		CompactItemsPerRow:   6,
	}
}
