package domain

import (
	"strconv"
	"time"
)

// Status is the viewing state of a list entry
type Status string

const (
	StatusNotStarted Status = "notStarted"
	StatusInProgress Status = "inProgress"
	StatusCompleted  Status = "completed"
	StatusDropped    Status = "dropped"
)

// Statuses lists every status in display order
func Statuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusCompleted, StatusDropped}
}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusDropped:
		return true
	}
	return false
}

// String returns a human-readable representation of the status
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "Not Started"
	case StatusInProgress:
		return "In Progress"
	case StatusCompleted:
		return "Completed"
	case StatusDropped:
		return "Dropped"
	default:
		return "Unknown"
	}
}

// Priority orders entries the user wants to watch first
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority
func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// ListItem is one piece of content tracked on the user's list
type ListItem struct {
	ID          string      `json:"id"`
	ContentID   int64       `json:"contentId"`
	ContentType ContentType `json:"contentType"`
	Content     Content     `json:"content"`

	Status           Status     `json:"status"`
	Progress         int        `json:"progress"` // 0-100
	Priority         Priority   `json:"priority"`
	CustomTags       []string   `json:"customTags"`
	IsLiked          bool       `json:"isLiked"`
	LikedAt          *time.Time `json:"likedAt,omitempty"`
	LastWatched      *time.Time `json:"lastWatched,omitempty"`
	DateAdded        time.Time  `json:"dateAdded"`
	EstimatedRuntime int        `json:"estimatedRuntime"` // minutes, set once at creation

	PersonalRating *float64 `json:"personalRating,omitempty"` // 0-10
	PersonalNotes  string   `json:"personalNotes,omitempty"`
}

// Key returns the identity of the item's content, "type:id"
func (i ListItem) Key() string {
	return ItemKey(i.ContentID, i.ContentType)
}

// Matches reports whether the item tracks the given content
func (i ListItem) Matches(contentID int64, t ContentType) bool {
	return i.ContentID == contentID && i.ContentType == t
}

// Title returns the display title of the tracked content
func (i ListItem) Title() string {
	return i.Content.DisplayTitle()
}

// HasTag reports whether the item carries tag
func (i ListItem) HasTag(tag string) bool {
	for _, t := range i.CustomTags {
		if t == tag {
			return true
		}
	}
	return false
}

// ItemKey builds the composite identity used for list uniqueness
func ItemKey(contentID int64, t ContentType) string {
	return string(t) + ":" + strconv.FormatInt(contentID, 10)
}
