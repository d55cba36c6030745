package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	CineRed    = lipgloss.Color("#E50914")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Amber      = lipgloss.Color("#F59E0B")
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(CineRed)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(CineRed).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// Raw status characters (unstyled)
const (
	NotStartedChar = "●"
	InProgressChar = "◐"
	CompletedChar  = "✓"
	DroppedChar    = "✗"
	LikedChar      = "♥"
)

// Status indicator styles
var (
	NotStartedStyle = lipgloss.NewStyle().Foreground(CineRed)
	InProgressStyle = lipgloss.NewStyle().Foreground(Amber)
	CompletedStyle  = lipgloss.NewStyle().Foreground(Green)
	DroppedStyle    = lipgloss.NewStyle().Foreground(DimGray)
	LikedStyle      = lipgloss.NewStyle().Foreground(CineRed)
)

// List item styles
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)
)

// Grid cell styles
var (
	GridCellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(0, 1)

	GridCellSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(CineRed).
				Padding(0, 1)
)

// Panel and badge styles
var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray).
			Padding(1, 2)

	BadgeStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(CineRed).
			Padding(0, 1)

	DimBadgeStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Background(SlateLight).
			Padding(0, 1)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(CineRed).
				Bold(true)
)

// Progress bar styles
var (
	ProgressFullStyle = lipgloss.NewStyle().
				Foreground(CineRed)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(DimGray)
)

// Truncate truncates a string to the given width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

// ProgressBar renders percent (0-100) as a bar of the given width
func ProgressBar(percent, width int) string {
	if width <= 0 {
		return ""
	}
	percent = max(0, min(100, percent))
	filled := percent * width / 100
	return ProgressFullStyle.Render(strings.Repeat("█", filled)) +
		ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}
