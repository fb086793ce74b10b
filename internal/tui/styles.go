package tui

import "github.com/charmbracelet/lipgloss"

// Palette: blood red on ink, with faded-paper text for light terminals.
var (
	colorBlood    = lipgloss.AdaptiveColor{Light: "#9F1239", Dark: "#FB7185"}
	colorInk      = lipgloss.AdaptiveColor{Light: "#27272A", Dark: "#E7E5E4"}
	colorAsh      = lipgloss.AdaptiveColor{Light: "#A8A29E", Dark: "#78716C"}
	colorWarn     = lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FDBA74"}
	colorFrame    = lipgloss.AdaptiveColor{Light: "#D6D3D1", Dark: "#44403C"}
	colorSigil    = lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"}
	colorChipBg   = lipgloss.AdaptiveColor{Light: "#F5F5F4", Dark: "#1C1917"}
	colorFooterBg = lipgloss.AdaptiveColor{Light: "#E7E5E4", Dark: "#0C0A09"}
	colorCandle   = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FCD34D"}
	colorOnSigil  = lipgloss.Color("#FAFAF9")
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorBlood).PaddingLeft(1)
	headerSubStyle = lipgloss.NewStyle().Foreground(colorAsh)

	itemTitleStyle    = lipgloss.NewStyle().Foreground(colorInk).Bold(true)
	itemSelectedStyle = lipgloss.NewStyle().Foreground(colorBlood).Bold(true)
	itemMetaStyle     = lipgloss.NewStyle().Foreground(colorAsh)
	savedMarkStyle    = lipgloss.NewStyle().Foreground(colorCandle).Bold(true)

	previewTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorBlood)
	previewLeadStyle  = lipgloss.NewStyle().Foreground(colorInk).Italic(true)
	previewBodyStyle  = lipgloss.NewStyle().Foreground(colorInk)
	previewLabelStyle = lipgloss.NewStyle().Foreground(colorAsh)

	badgeStyle   = chip().Foreground(colorInk)
	starOnStyle  = lipgloss.NewStyle().Foreground(colorCandle)
	starOffStyle = lipgloss.NewStyle().Foreground(colorFrame)

	voteActiveStyle   = activeChip()
	voteInactiveStyle = chip().Foreground(colorInk)

	tabActiveStyle    = activeChip()
	tabInactiveStyle  = chip().Foreground(colorInk)
	tabSeparatorStyle = lipgloss.NewStyle().Foreground(colorAsh)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorFooterBg).
			Foreground(colorAsh).
			Padding(0, 1)

	errorStyle        = lipgloss.NewStyle().Foreground(colorWarn)
	searchPromptStyle = lipgloss.NewStyle().Foreground(colorSigil).Bold(true)

	helpCardStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorSigil).
			Padding(1, 3)
	helpDimStyle = lipgloss.NewStyle().Foreground(colorAsh)
)

func chip() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorChipBg).Padding(0, 1)
}

func activeChip() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(colorOnSigil).
		Background(colorSigil).
		Padding(0, 1).
		Bold(true)
}

// paneStyle frames the list and preview panes; the focused one is highlighted.
func paneStyle(focused bool) lipgloss.Style {
	border := colorFrame
	if focused {
		border = colorBlood
	}
	return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border)
}
