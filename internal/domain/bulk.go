package domain

// BulkType names a mutation applied to every id of a bulk operation
type BulkType string

const (
	BulkRemove        BulkType = "remove"
	BulkMarkWatched   BulkType = "markWatched"
	BulkMarkUnwatched BulkType = "markUnwatched"
	BulkSetPriority   BulkType = "setPriority"
	BulkAddTags       BulkType = "addTags"
	BulkRemoveTags    BulkType = "removeTags"
)

// BulkOperation applies one mutation to a set of list item ids
type BulkOperation struct {
	Type     BulkType `json:"type"`
	ItemIDs  []string `json:"itemIds"`
	Priority Priority `json:"priority,omitempty"` // BulkSetPriority
	Tags     []string `json:"tags,omitempty"`     // BulkAddTags, BulkRemoveTags
}

// BulkResult summarizes a bulk operation
type BulkResult struct {
	Requested int `json:"requested"`
	Applied   int `json:"applied"`
}
