package ui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the TUI.
var (
	ColorBlue     = lipgloss.Color("#5B8DEF")
	ColorSky      = lipgloss.Color("#A0D8E6")
	ColorSun      = lipgloss.Color("#FFD93D")
	ColorOrange   = lipgloss.Color("#FFB347")
	ColorRed      = lipgloss.Color("#FF6B6B")
	ColorLavender = lipgloss.Color("#C8B6E2")
	ColorGreen    = lipgloss.Color("#90EE90")
	ColorGray     = lipgloss.Color("#636E72")
	ColorDimGray  = lipgloss.Color("#444444")
	ColorWhite    = lipgloss.Color("#FFFFFF")
)

// Base styles reused by UI components.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBlue)

	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	ProfileStyle = lipgloss.NewStyle().
			Foreground(ColorSun).
			Bold(true)

	TigerStyle = lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true)

	ChildStyle = lipgloss.NewStyle().
			Foreground(ColorSun)

	BubbleStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSky).
			Padding(0, 1)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorSun).
			Bold(true)

	DoneStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorLavender).
			Italic(true)

	RecordingStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	CelebrateStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorSun).
			Foreground(ColorSun).
			Bold(true).
			Padding(0, 2)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorSun).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorGray)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorDimGray)
)

// Key renders one footer hint such as "Enter Send".
func Key(key, desc string) string {
	return FooterKeyStyle.Render(key) + FooterDescStyle.Render(" "+desc)
}
