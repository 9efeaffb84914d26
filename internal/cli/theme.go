// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is one of the selectable color palettes. Themes are explicit values
// passed to whoever renders, never ambient globals, so two profiles can be
// rendered side by side with different palettes.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Subtle    lipgloss.Color
}

// DefaultThemeName is used when a profile has no theme configured.
const DefaultThemeName = "classic"

var themes = map[string]Theme{
	"classic": {
		Name:      "classic",
		Primary:   lipgloss.Color("#2563EB"),
		Secondary: lipgloss.Color("#1E40AF"),
		Accent:    lipgloss.Color("#60A5FA"),
		Success:   lipgloss.Color("#10B981"),
		Warning:   lipgloss.Color("#F59E0B"),
		Error:     lipgloss.Color("#F43F5E"),
		Subtle:    lipgloss.Color("#64748B"),
	},
	"emerald": {
		Name:      "emerald",
		Primary:   lipgloss.Color("#059669"),
		Secondary: lipgloss.Color("#047857"),
		Accent:    lipgloss.Color("#34D399"),
		Success:   lipgloss.Color("#10B981"),
		Warning:   lipgloss.Color("#F59E0B"),
		Error:     lipgloss.Color("#F43F5E"),
		Subtle:    lipgloss.Color("#64748B"),
	},
	"sunset": {
		Name:      "sunset",
		Primary:   lipgloss.Color("#EA580C"),
		Secondary: lipgloss.Color("#C2410C"),
		Accent:    lipgloss.Color("#FB923C"),
		Success:   lipgloss.Color("#10B981"),
		Warning:   lipgloss.Color("#FACC15"),
		Error:     lipgloss.Color("#E11D48"),
		Subtle:    lipgloss.Color("#78716C"),
	},
	"purple": {
		Name:      "purple",
		Primary:   lipgloss.Color("#7C3AED"),
		Secondary: lipgloss.Color("#6D28D9"),
		Accent:    lipgloss.Color("#A78BFA"),
		Success:   lipgloss.Color("#10B981"),
		Warning:   lipgloss.Color("#F59E0B"),
		Error:     lipgloss.Color("#F43F5E"),
		Subtle:    lipgloss.Color("#64748B"),
	},
	"midnight": {
		Name:      "midnight",
		Primary:   lipgloss.Color("#0EA5E9"),
		Secondary: lipgloss.Color("#0369A1"),
		Accent:    lipgloss.Color("#38BDF8"),
		Success:   lipgloss.Color("#22C55E"),
		Warning:   lipgloss.Color("#EAB308"),
		Error:     lipgloss.Color("#EF4444"),
		Subtle:    lipgloss.Color("#475569"),
	},
}

// ThemeNames lists the selectable themes in a stable order.
func ThemeNames() []string {
	return []string{"classic", "emerald", "sunset", "purple", "midnight"}
}

// LookupTheme returns the named theme, reporting whether it exists.
func LookupTheme(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// ThemeOrDefault resolves a possibly-empty or unknown name to a usable theme.
func ThemeOrDefault(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[DefaultThemeName]
}
