package teagrid

import "github.com/charmbracelet/lipgloss"

// Styles of the grid.
type Styles struct {
	Header   lipgloss.Style
	Cell     lipgloss.Style
	Selected lipgloss.Style
	Primary  lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
}

// DefaultStyles returns the default Styles.
func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}),
		Cell:     lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "#E4E4F0", Dark: "#303048"}),
		Primary:  lipgloss.NewStyle().Reverse(true),
		Status:   lipgloss.NewStyle().Faint(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")),
	}
}
