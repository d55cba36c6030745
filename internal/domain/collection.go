package domain

import "time"

// CollectionEntry references one piece of content inside a collection
type CollectionEntry struct {
	ContentID   int64       `json:"contentId"`
	ContentType ContentType `json:"contentType"`
	AddedAt     time.Time   `json:"addedAt"`
}

// Collection is a user-defined named grouping of content
type Collection struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Items       []CollectionEntry `json:"items"`
	IsPublic    bool              `json:"isPublic"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// Contains reports whether the collection references the given content
func (c Collection) Contains(contentID int64, t ContentType) bool {
	for _, e := range c.Items {
		if e.ContentID == contentID && e.ContentType == t {
			return true
		}
	}
	return false
}
