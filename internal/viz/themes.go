package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the dashboard color scheme.
type Theme struct {
	Name      string
	Galaxy    lipgloss.Color // star field dots
	Spiral    lipgloss.Color // spiral curve
	Ratio     lipgloss.Color // convergence plot
	Accent    lipgloss.Color // highlighted values (phi, current ratio)
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Recording lipgloss.Color
}

var (
	ThemeCosmos = Theme{
		Name:      "cosmos",
		Galaxy:    lipgloss.Color("#cfa8ff"),
		Spiral:    lipgloss.Color("#00ffff"),
		Ratio:     lipgloss.Color("#9ad0ff"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e8e8f0"),
		Muted:     lipgloss.Color("#666688"),
		Border:    lipgloss.Color("#444466"),
		Recording: lipgloss.Color("#ff4444"),
	}

	ThemeGold = Theme{
		Name:      "gold",
		Galaxy:    lipgloss.Color("#ffcf6b"),
		Spiral:    lipgloss.Color("#ffd700"),
		Ratio:     lipgloss.Color("#e0b050"),
		Accent:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#f5ecd8"),
		Muted:     lipgloss.Color("#8a7a55"),
		Border:    lipgloss.Color("#665522"),
		Recording: lipgloss.Color("#ff4444"),
	}

	ThemeMono = Theme{
		Name:      "mono",
		Galaxy:    lipgloss.Color("#cccccc"),
		Spiral:    lipgloss.Color("#ffffff"),
		Ratio:     lipgloss.Color("#aaaaaa"),
		Accent:    lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#dddddd"),
		Muted:     lipgloss.Color("#777777"),
		Border:    lipgloss.Color("#444444"),
		Recording: lipgloss.Color("#ff4444"),
	}

	ThemeNebula = Theme{
		Name:      "nebula",
		Galaxy:    lipgloss.Color("#ff8fd0"),
		Spiral:    lipgloss.Color("#80ffea"),
		Ratio:     lipgloss.Color("#b8a0ff"),
		Accent:    lipgloss.Color("#fff176"),
		Text:      lipgloss.Color("#f0e8ff"),
		Muted:     lipgloss.Color("#7a6a99"),
		Border:    lipgloss.Color("#553377"),
		Recording: lipgloss.Color("#ff4444"),
	}

	Themes = []Theme{ThemeCosmos, ThemeGold, ThemeMono, ThemeNebula}
)

// GetTheme returns the named theme, falling back to cosmos.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCosmos
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeCosmos
}

// ThemeNames lists the available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
