package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles bundles the lipgloss styles for one theme.
type Styles struct {
	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	Error      lipgloss.Style
	Subtle     lipgloss.Style
	Bold       lipgloss.Style
	Box        lipgloss.Style
	TableHead  lipgloss.Style
	Payable    lipgloss.Style
	Receivable lipgloss.Style
	Paid       lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Subtle).
			MarginBottom(1),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Subtle: lipgloss.NewStyle().
			Foreground(theme.Subtle),

		Bold: lipgloss.NewStyle().
			Bold(true),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Secondary).
			Padding(1, 2),

		TableHead: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Accent),

		Payable: lipgloss.NewStyle().
			Foreground(theme.Error),

		Receivable: lipgloss.NewStyle().
			Foreground(theme.Success),

		Paid: lipgloss.NewStyle().
			Foreground(theme.Subtle).
			Strikethrough(true),
	}
}
