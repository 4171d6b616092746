package tui

import "github.com/charmbracelet/lipgloss"

// Palette.
const (
	ColorHeader   = lipgloss.Color("63")
	ColorBorder   = lipgloss.Color("240")
	ColorSelected = lipgloss.Color("212")
	ColorMuted    = lipgloss.Color("245")
	ColorLabel    = lipgloss.Color("110")
	ColorValue    = lipgloss.Color("252")
	ColorOK       = lipgloss.Color("42")
	ColorWarning  = lipgloss.Color("214")
	ColorCritical = lipgloss.Color("196")
)

// Icons.
const (
	IconArrowUp   = "↑"
	IconArrowDown = "↓"
	IconDir       = "▸"
	IconEllipsis  = "…"
)

// Shared styles.
//
//nolint:gochecknoglobals // Styles are immutable values shared across renderers.
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	SelectedCardStyle = CardStyle.BorderForeground(ColorSelected)

	CardTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	CardSubtitleStyle = SubtleStyle
	StatusBarStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
)

// cardChromeWidth is the horizontal space taken by a card's border and padding.
const cardChromeWidth = 4

// cardBorder is the space taken by a card's border along either axis.
const cardBorder = 2
