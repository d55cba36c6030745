package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/cineflix/internal/domain"
	"github.com/mmcdole/cineflix/internal/watchlist"
)

// Command factories for list operations

// LoadItemsCmd loads items matching the filter in the requested order
func LoadItemsCmd(repo *watchlist.Repository, f domain.Filter, key domain.SortKey, dir domain.SortDirection) tea.Cmd {
	return func() tea.Msg {
		return ItemsLoadedMsg{Items: repo.Query(f, key, dir)}
	}
}

// LoadStatsCmd computes statistics over the whole list
func LoadStatsCmd(repo *watchlist.Repository) tea.Cmd {
	return func() tea.Msg {
		return StatsLoadedMsg{Stats: repo.Stats()}
	}
}

// ToggleLikeCmd flips the liked flag of an item
func ToggleLikeCmd(repo *watchlist.Repository, item domain.ListItem) tea.Cmd {
	return func() tea.Msg {
		liked, err := repo.ToggleLike(item.ContentID, item.ContentType)
		if err != nil {
			return ErrMsg{Err: err, Context: "toggling like"}
		}
		if liked {
			return MutationDoneMsg{Status: "Liked " + item.Title()}
		}
		return MutationDoneMsg{Status: "Unliked " + item.Title()}
	}
}

// BulkCmd applies a bulk operation and reports how many items changed
func BulkCmd(repo *watchlist.Repository, op domain.BulkOperation, verb string) tea.Cmd {
	return func() tea.Msg {
		res, err := repo.BulkApply(op)
		if err != nil {
			return ErrMsg{Err: err, Context: verb}
		}
		return MutationDoneMsg{Status: fmt.Sprintf("%s %d of %d", verb, res.Applied, res.Requested)}
	}
}

// CyclePriorityCmd moves an item to the next priority level
func CyclePriorityCmd(repo *watchlist.Repository, item domain.ListItem) tea.Cmd {
	next := nextPriority(item.Priority)
	return func() tea.Msg {
		if err := repo.Update(item.ID, &watchlist.ItemUpdate{Priority: &next}); err != nil {
			return ErrMsg{Err: err, Context: "setting priority"}
		}
		return MutationDoneMsg{Status: fmt.Sprintf("Priority %s: %s", next, item.Title())}
	}
}

func nextPriority(p domain.Priority) domain.Priority {
	switch p {
	case domain.PriorityLow:
		return domain.PriorityMedium
	case domain.PriorityMedium:
		return domain.PriorityHigh
	default:
		return domain.PriorityLow
	}
}
