package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Navigation
	Up   key.Binding
	Down key.Binding
	Home key.Binding
	End  key.Binding

	// Sorting and filtering
	Sort          key.Binding
	Reverse       key.Binding
	FilterType    key.Binding
	FilterStatus  key.Binding
	FilterLiked   key.Binding
	FilterRuntime key.Binding
	FilterAdded   key.Binding
	ClearFilters  key.Binding
	QuickFilter   key.Binding

	// Actions
	ToggleLike    key.Binding
	MarkWatched   key.Binding
	MarkUnwatched key.Binding
	Priority      key.Binding
	Delete        key.Binding
	ToggleView    key.Binding
	Stats         key.Binding

	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Home: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "top"),
		),
		End: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "bottom"),
		),
		Sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "reverse"),
		),
		FilterType: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "type"),
		),
		FilterStatus: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "status"),
		),
		FilterLiked: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "liked"),
		),
		FilterRuntime: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "runtime"),
		),
		FilterAdded: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "added"),
		),
		ClearFilters: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear filters"),
		),
		QuickFilter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		ToggleLike: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "like"),
		),
		MarkWatched: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "watched"),
		),
		MarkUnwatched: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unwatched"),
		),
		Priority: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "priority"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "remove"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "grid/list"),
		),
		Stats: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "stats"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.QuickFilter, k.Sort, k.FilterType, k.ToggleLike, k.MarkWatched, k.Stats, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Home, k.End},
		{k.Sort, k.Reverse, k.QuickFilter, k.ClearFilters},
		{k.FilterType, k.FilterStatus, k.FilterLiked, k.FilterRuntime, k.FilterAdded},
		{k.ToggleLike, k.MarkWatched, k.MarkUnwatched, k.Priority, k.Delete},
		{k.ToggleView, k.Stats, k.Help, k.Quit},
	}
}
