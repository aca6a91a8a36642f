package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// CapacityBadge returns a colored indicator for the day's capacity.
func CapacityBadge(c domain.Capacity) string {
	switch c {
	case domain.CapacityLow:
		return StyleYellow.Render("◔ LOW CAPACITY")
	case domain.CapacityMedium:
		return StyleBlue.Render("◑ MEDIUM CAPACITY")
	case domain.CapacityHigh:
		return StyleGreen.Render("● HIGH CAPACITY")
	default:
		return StyleDim.Render("○ UNKNOWN")
	}
}

// EntryStatusPill returns a colored status indicator for a schedule entry.
func EntryStatusPill(s domain.EntryStatus) string {
	switch s {
	case domain.EntryPending:
		return StyleBlue.Render("○")
	case domain.EntryInProgress:
		return StyleYellow.Render("◐")
	case domain.EntryCompleted:
		return StyleGreen.Render("✔")
	case domain.EntrySkipped:
		return StyleDim.Render("⊘")
	default:
		return StyleDim.Render("?")
	}
}

// PoolStatusPill returns a colored status indicator for a pool item.
func PoolStatusPill(s domain.PoolItemStatus) string {
	switch s {
	case domain.PoolActive:
		return StyleGreen.Render("● Active")
	case domain.PoolPaused:
		return StyleYellow.Render("○ Paused")
	case domain.PoolCompleted:
		return StyleDim.Render("✔ Completed")
	default:
		return StyleDim.Render(string(s))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
