package tui

import (
	"github.com/mmcdole/cineflix/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// ItemsLoadedMsg signals that the list has been (re)loaded from storage
type ItemsLoadedMsg struct {
	Items []domain.ListItem
}

// StatsLoadedMsg carries freshly computed list statistics
type StatsLoadedMsg struct {
	Stats domain.Stats
}

// MutationDoneMsg signals that a list mutation finished
type MutationDoneMsg struct {
	Status string
}
