package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/cineflix/internal/domain"
	"github.com/mmcdole/cineflix/internal/tui/styles"
)

// Layout constants
const (
	headerHeight  = 2
	footerHeight  = 2
	gridCellLines = 5 // border + title + meta + progress + border
	minCellWidth  = 16
)

// columns is the number of grid cells per row, bounded by the terminal width
func (m Model) columns() int {
	n := max(1, m.prefs.CompactItemsPerRow)
	if m.width > 0 {
		n = min(n, max(1, m.width/minCellWidth))
	}
	return n
}

// pageRows is how many rows (lines in list view, cell rows in grid view) fit
func (m Model) pageRows() int {
	avail := m.height - headerHeight - footerHeight
	if m.height == 0 {
		avail = 20
	}
	if m.view == domain.ViewGrid {
		avail /= gridCellLines
	}
	return max(1, avail)
}

// View implements tea.Model
func (m Model) View() string {
	var body string
	switch m.screen {
	case ScreenStats:
		body = m.renderStats()
	case ScreenHelp:
		m.help.ShowAll = true
		body = styles.PanelStyle.Render(m.help.View(m.keys))
	default:
		if len(m.visible) == 0 {
			body = styles.DimStyle.Render("  Nothing here yet")
		} else if m.view == domain.ViewGrid {
			body = m.renderGrid()
		} else {
			body = m.renderList()
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body, m.renderFooter())
}

func (m Model) renderHeader() string {
	dir := "↓"
	if m.sortDir == domain.SortAsc {
		dir = "↑"
	}
	parts := []string{
		styles.BadgeStyle.Render("CineFlix"),
		styles.SubtitleStyle.Render(fmt.Sprintf("%d/%d", len(m.visible), len(m.items))),
		styles.DimBadgeStyle.Render(m.sortKey.String() + " " + dir),
	}
	if s := filterSummary(m.filter); s != "" {
		parts = append(parts, styles.AccentStyle.Render(s))
	}
	header := strings.Join(parts, " ")

	if m.filtering || m.filterInput.Value() != "" {
		header += "\n" + styles.FilterPromptStyle.Render(m.filterInput.View())
	} else {
		header += "\n"
	}
	return header
}

func (m Model) renderFooter() string {
	status := ""
	if m.statusMsg != "" {
		if m.statusIsErr {
			status = styles.ErrorStyle.Render(m.statusMsg)
		} else {
			status = styles.SuccessStyle.Render(m.statusMsg)
		}
	}
	m.help.ShowAll = false
	return status + "\n" + m.help.View(m.keys)
}

func (m Model) renderList() string {
	rows := m.pageRows()
	end := min(len(m.visible), m.offset+rows)
	width := max(40, m.width)

	var b strings.Builder
	for pos := m.offset; pos < end; pos++ {
		item := m.items[m.visible[pos]]
		line := m.renderListRow(item, width-2)
		if pos == m.cursor {
			b.WriteString(styles.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(styles.NormalItemStyle.Render(line))
		}
		if pos < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m Model) renderListRow(item domain.ListItem, width int) string {
	indicator := statusIndicator(item.Status)
	like := " "
	if item.IsLiked {
		like = styles.LikedStyle.Render(styles.LikedChar)
	}
	meta := fmt.Sprintf("%s  %s  %s", typeLabel(item.ContentType), formatRuntime(item.EstimatedRuntime), item.Priority)

	bar := ""
	if m.prefs.ShowProgressBars && item.Progress > 0 {
		bar = " " + styles.ProgressBar(item.Progress, 10)
	}

	titleWidth := width - lipgloss.Width(meta) - lipgloss.Width(bar) - 8
	title := styles.Truncate(item.Title(), max(8, titleWidth))
	pad := max(1, titleWidth-lipgloss.Width(title))

	return indicator + " " + like + " " + title + strings.Repeat(" ", pad) + styles.DimStyle.Render(meta) + bar
}

func (m Model) renderGrid() string {
	cols := m.columns()
	cellWidth := max(minCellWidth, m.width/cols) - 4
	rows := m.pageRows()

	start := m.offset * cols
	end := min(len(m.visible), start+rows*cols)

	var lines []string
	for rowStart := start; rowStart < end; rowStart += cols {
		var cells []string
		for pos := rowStart; pos < min(rowStart+cols, end); pos++ {
			cells = append(cells, m.renderCell(m.items[m.visible[pos]], cellWidth, pos == m.cursor))
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderCell(item domain.ListItem, width int, selected bool) string {
	title := styles.Truncate(item.Title(), width)
	meta := statusIndicator(item.Status) + " " + typeLabel(item.ContentType)
	if item.IsLiked {
		meta += " " + styles.LikedStyle.Render(styles.LikedChar)
	}
	bar := ""
	if m.prefs.ShowProgressBars {
		bar = styles.ProgressBar(item.Progress, width)
	}

	content := title + "\n" + meta + "\n" + bar
	style := styles.GridCellStyle
	if selected {
		style = styles.GridCellSelectedStyle
	}
	return style.Width(width).Render(content)
}

func (m Model) renderStats() string {
	s := m.stats
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("Statistics") + "\n\n")
	fmt.Fprintf(&b, "Items       %d (%d movies, %d series)\n", s.TotalItems, s.Movies, s.TVShows)
	fmt.Fprintf(&b, "Watch time  %dh\n", s.TotalHours)
	fmt.Fprintf(&b, "Completed   %.0f%%\n", s.CompletionRate)
	fmt.Fprintf(&b, "Avg rating  %.1f\n\n", s.AverageRating)

	b.WriteString(styles.SubtitleStyle.Render("By status") + "\n")
	for _, st := range domain.Statuses() {
		fmt.Fprintf(&b, "  %s %-12s %d\n", statusIndicator(st), st.String(), s.StatusDistribution[st])
	}

	if len(s.GenreDistribution) > 0 {
		b.WriteString("\n" + styles.SubtitleStyle.Render("Top genres") + "\n")
		for _, g := range topGenres(s.GenreDistribution, 5) {
			fmt.Fprintf(&b, "  %-16s %d\n", g, s.GenreDistribution[g])
		}
	}

	months := make([]string, 0, len(s.MonthlyAdditions))
	for k := range s.MonthlyAdditions {
		months = append(months, k)
	}
	sort.Strings(months)
	if len(months) > 0 {
		b.WriteString("\n" + styles.SubtitleStyle.Render("Added per month") + "\n")
		for _, k := range months {
			n := s.MonthlyAdditions[k]
			fmt.Fprintf(&b, "  %s %s %d\n", k, styles.AccentStyle.Render(strings.Repeat("▪", min(n, 30))), n)
		}
	}

	return styles.PanelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// topGenres returns up to n genre names by count, ties broken by name
func topGenres(dist map[string]int, n int) []string {
	names := make([]string, 0, len(dist))
	for g := range dist {
		names = append(names, g)
	}
	sort.Slice(names, func(i, j int) bool {
		if dist[names[i]] != dist[names[j]] {
			return dist[names[i]] > dist[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > n {
		names = names[:n]
	}
	return names
}

func statusIndicator(s domain.Status) string {
	switch s {
	case domain.StatusInProgress:
		return styles.InProgressStyle.Render(styles.InProgressChar)
	case domain.StatusCompleted:
		return styles.CompletedStyle.Render(styles.CompletedChar)
	case domain.StatusDropped:
		return styles.DroppedStyle.Render(styles.DroppedChar)
	default:
		return styles.NotStartedStyle.Render(styles.NotStartedChar)
	}
}

func typeLabel(t domain.ContentType) string {
	if t == domain.ContentTypeTV {
		return "TV"
	}
	return "Movie"
}

// formatRuntime renders minutes as "1h 45m"
func formatRuntime(minutes int) string {
	if minutes <= 0 {
		return "-"
	}
	h, mm := minutes/60, minutes%60
	if h == 0 {
		return fmt.Sprintf("%dm", mm)
	}
	if mm == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, mm)
}
