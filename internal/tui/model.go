package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/cineflix/internal/domain"
	"github.com/mmcdole/cineflix/internal/watchlist"
)

// Screen is the top-level view being shown
type Screen int

const (
	ScreenList Screen = iota
	ScreenStats
	ScreenHelp
)

// Model is the root bubbletea model for browsing the list
type Model struct {
	repo   *watchlist.Repository
	logger *slog.Logger
	keys   KeyMap
	help   help.Model

	prefs   domain.Preferences
	view    domain.ViewMode
	filter  domain.Filter
	sortKey domain.SortKey
	sortDir domain.SortDirection

	items   []domain.ListItem
	visible []int // indices into items after the quick filter
	cursor  int
	offset  int

	filterInput textinput.Model
	filtering   bool

	screen Screen
	stats  domain.Stats

	width, height int
	statusMsg     string
	statusIsErr   bool
}

// NewModel creates the root model seeded from the saved preferences
func NewModel(repo *watchlist.Repository, prefs domain.Preferences, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter titles"
	ti.CharLimit = 64

	return Model{
		repo:        repo,
		logger:      logger,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		prefs:       prefs,
		view:        prefs.DefaultView,
		sortKey:     prefs.DefaultSort,
		sortDir:     prefs.DefaultSortDirection,
		filter:      defaultFilter(),
		filterInput: ti,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.reload()
}

func (m Model) reload() tea.Cmd {
	return LoadItemsCmd(m.repo, m.filter, m.sortKey, m.sortDir)
}

// Selected returns the item under the cursor
func (m Model) Selected() (domain.ListItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return domain.ListItem{}, false
	}
	return m.items[m.visible[m.cursor]], true
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampCursor()
		return m, nil

	case ItemsLoadedMsg:
		m.items = msg.Items
		m.refilter()
		return m, nil

	case StatsLoadedMsg:
		m.stats = msg.Stats
		return m, nil

	case MutationDoneMsg:
		m.setStatus(msg.Status, false)
		cmds := []tea.Cmd{m.reload()}
		if m.screen == ScreenStats {
			cmds = append(cmds, LoadStatsCmd(m.repo))
		}
		return m, tea.Batch(cmds...)

	case ErrMsg:
		m.logger.Error("list operation failed", "context", msg.Context, "error", msg.Err)
		m.setStatus(msg.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.handleFilterKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.refilter()
		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.refilter()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Escape):
		if m.screen != ScreenList {
			m.screen = ScreenList
			return m, nil
		}
		if m.filterInput.Value() != "" {
			m.filterInput.SetValue("")
			m.refilter()
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		if m.screen == ScreenHelp {
			m.screen = ScreenList
		} else {
			m.screen = ScreenHelp
		}
		return m, nil

	case key.Matches(msg, m.keys.Stats):
		if m.screen == ScreenStats {
			m.screen = ScreenList
			return m, nil
		}
		m.screen = ScreenStats
		return m, LoadStatsCmd(m.repo)
	}

	if m.screen != ScreenList {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.move(-m.stride())
	case key.Matches(msg, m.keys.Down):
		m.move(m.stride())
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.clampCursor()
	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.visible) - 1
		m.clampCursor()

	case key.Matches(msg, m.keys.QuickFilter):
		m.filtering = true
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.Sort):
		m.sortKey = cycle(domain.SortKeys(), m.sortKey)
		return m, m.reload()
	case key.Matches(msg, m.keys.Reverse):
		if m.sortDir == domain.SortAsc {
			m.sortDir = domain.SortDesc
		} else {
			m.sortDir = domain.SortAsc
		}
		return m, m.reload()

	case key.Matches(msg, m.keys.FilterType):
		m.filter.ContentType = cycle(typeCycle, m.filter.ContentType)
		return m, m.reload()
	case key.Matches(msg, m.keys.FilterStatus):
		m.filter.Status = cycle(statusCycle, m.filter.Status)
		return m, m.reload()
	case key.Matches(msg, m.keys.FilterLiked):
		m.filter.Liked = cycle(likedCycle, m.filter.Liked)
		return m, m.reload()
	case key.Matches(msg, m.keys.FilterRuntime):
		m.filter.Runtime = cycle(runtimeCycle, m.filter.Runtime)
		return m, m.reload()
	case key.Matches(msg, m.keys.FilterAdded):
		m.filter.DateAdded = cycle(addedCycle, m.filter.DateAdded)
		return m, m.reload()
	case key.Matches(msg, m.keys.ClearFilters):
		m.filter = defaultFilter()
		return m, m.reload()

	case key.Matches(msg, m.keys.ToggleView):
		if m.view == domain.ViewGrid {
			m.view = domain.ViewList
		} else {
			m.view = domain.ViewGrid
		}
		m.clampCursor()

	case key.Matches(msg, m.keys.ToggleLike):
		if item, ok := m.Selected(); ok {
			return m, ToggleLikeCmd(m.repo, item)
		}
	case key.Matches(msg, m.keys.MarkWatched):
		return m, m.bulkSelected(domain.BulkMarkWatched, "Marked watched")
	case key.Matches(msg, m.keys.MarkUnwatched):
		return m, m.bulkSelected(domain.BulkMarkUnwatched, "Marked unwatched")
	case key.Matches(msg, m.keys.Delete):
		return m, m.bulkSelected(domain.BulkRemove, "Removed")
	case key.Matches(msg, m.keys.Priority):
		if item, ok := m.Selected(); ok {
			return m, CyclePriorityCmd(m.repo, item)
		}
	}
	return m, nil
}

func (m Model) bulkSelected(t domain.BulkType, verb string) tea.Cmd {
	item, ok := m.Selected()
	if !ok {
		return nil
	}
	return BulkCmd(m.repo, domain.BulkOperation{Type: t, ItemIDs: []string{item.ID}}, verb)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
}

func (m *Model) refilter() {
	m.visible = applyQuickFilter(m.items, m.filterInput.Value())
	m.clampCursor()
}

// stride is how far up/down moves the cursor: one row of cells in grid view
func (m Model) stride() int {
	if m.view == domain.ViewGrid {
		return m.columns()
	}
	return 1
}

func (m *Model) move(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	rows := m.pageRows()
	row := m.cursor / m.stride()
	if row < m.offset {
		m.offset = row
	}
	if row >= m.offset+rows {
		m.offset = row - rows + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
