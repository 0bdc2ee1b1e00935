// Package ui provides the visual styling for gearsum reports.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	LightPrimary = lipgloss.Color("#101F38") // Dark Blue
	LightAccent  = lipgloss.Color("#8BC34A") // Lime Green
	LightMuted   = lipgloss.Color("#6b7280")
	LightBorder  = lipgloss.Color("#dce0e5")

	DarkPrimary = lipgloss.Color("#8BC34A") // Lime Green (flipped)
	DarkAccent  = lipgloss.Color("#FFC107") // Yellow
	DarkMuted   = lipgloss.Color("#9ca3af")
	DarkBorder  = lipgloss.Color("#2a3850")
)

// Theme holds the current color scheme
type Theme struct {
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	IsDark  bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Primary: LightPrimary,
		Accent:  LightAccent,
		Muted:   LightMuted,
		Border:  LightBorder,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Primary: DarkPrimary,
		Accent:  DarkAccent,
		Muted:   DarkMuted,
		Border:  DarkBorder,
		IsDark:  true,
	}
}

// DetectTheme guesses the terminal background from COLORFGBG and falls back
// to light mode.
func DetectTheme() Theme {
	// Format is usually "foreground;background"
	parts := strings.Split(os.Getenv("COLORFGBG"), ";")
	if len(parts) == 2 {
		if bgIdx, err := strconv.Atoi(parts[1]); err == nil {
			// 0-6 and 8 (dark grey) are dark backgrounds
			if (bgIdx >= 0 && bgIdx <= 6) || bgIdx == 8 {
				return DarkTheme()
			}
		}
	}
	if os.Getenv("GEARSUM_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// ThemeFor maps a configured theme name (light, dark, auto) to a Theme.
func ThemeFor(name string) Theme {
	switch name {
	case "light":
		return LightTheme()
	case "dark":
		return DarkTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Title  lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Ratio  lipgloss.Style
	Muted  lipgloss.Style
	Total  lipgloss.Style
	Border lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Cell: lipgloss.NewStyle().
			Padding(0, 1),

		Ratio: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Padding(0, 1),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Total: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			MarginTop(1),

		Border: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}
