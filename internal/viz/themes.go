package viz

import "github.com/charmbracelet/lipgloss"

// Theme colours the terminal host.
type Theme struct {
	Name   string
	Court  lipgloss.Color // paddles, ball and net
	Border lipgloss.Color
	Score  lipgloss.Color
	Label  lipgloss.Color
	Muted  lipgloss.Color
	Graph  lipgloss.Color
}

var (
	ThemeMinimal = Theme{
		Name:   "minimal",
		Court:  lipgloss.Color("#ffffff"),
		Border: lipgloss.Color("#444444"),
		Score:  lipgloss.Color("#0088ff"),
		Label:  lipgloss.Color("#888888"),
		Muted:  lipgloss.Color("#555555"),
		Graph:  lipgloss.Color("#cccccc"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Court:  lipgloss.Color("#00ff00"), // Green phosphor
		Border: lipgloss.Color("#005500"),
		Score:  lipgloss.Color("#88ff88"),
		Label:  lipgloss.Color("#00cc00"),
		Muted:  lipgloss.Color("#005500"),
		Graph:  lipgloss.Color("#00cc00"),
	}

	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Court:  lipgloss.Color("#00ffff"),
		Border: lipgloss.Color("#ff00ff"),
		Score:  lipgloss.Color("#ffff00"),
		Label:  lipgloss.Color("#ff00ff"),
		Muted:  lipgloss.Color("#666666"),
		Graph:  lipgloss.Color("#00ff88"),
	}

	ThemeOcean = Theme{
		Name:   "ocean",
		Court:  lipgloss.Color("#e0f0ff"),
		Border: lipgloss.Color("#0077be"),
		Score:  lipgloss.Color("#ffd700"),
		Label:  lipgloss.Color("#4488aa"),
		Muted:  lipgloss.Color("#335566"),
		Graph:  lipgloss.Color("#00a8cc"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Court:  lipgloss.Color("#fff5f5"),
		Border: lipgloss.Color("#ff6b6b"), // Coral
		Score:  lipgloss.Color("#feca57"),
		Label:  lipgloss.Color("#ff9ff3"),
		Muted:  lipgloss.Color("#8b6b8c"),
		Graph:  lipgloss.Color("#ffc048"),
	}

	CurrentTheme = ThemeMinimal

	Themes = []Theme{
		ThemeMinimal,
		ThemeRetroGreen,
		ThemeCyberpunk,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to minimal.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMinimal
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme cycles CurrentTheme to the following entry in Themes.
func NextTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == CurrentTheme.Name {
			SetTheme(names[(i+1)%len(names)])
			return
		}
	}
	CurrentTheme = Themes[0]
}
