package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds.
// We use lipgloss.AdaptiveColor where possible and only apply "faint" styling
// on dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

// Common semantic colors used across the TUI. The accent is the one
// user-configurable color (persisted as a preference).
var (
	colorMuted  lipgloss.TerminalColor = ac("240", "243")
	colorBorder lipgloss.TerminalColor = ac("250", "238")

	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")

	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	defaultColorAccent lipgloss.TerminalColor = ac("#111827", "62")
	colorAccent                               = defaultColorAccent
	colorAccentFg      lipgloss.TerminalColor = ac("255", "235")

	colorChipBg lipgloss.TerminalColor = ac("254", "236")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleChip() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorChipBg).Foreground(colorSurfaceFg).Padding(0, 1)
}

func styleChipOn() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorAccent).Foreground(colorAccentFg).Padding(0, 1)
}

// setAccent applies the persisted accent preference (a hex color string).
// Selection highlights and chips pick it up on the next render.
func setAccent(hex string) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		colorAccent = defaultColorAccent
		return
	}
	colorAccent = lipgloss.Color(hex)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive TUI. For the TUI we only honor NO_COLOR and otherwise follow
// the terminal's capabilities (CLICOLOR et al are for non-interactive
// output).
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection from the
// persisted theme preference ("light" or "dark").
//
// Priority:
// 1) ATLAS_TUI_THEME=light|dark|auto (env override)
// 2) the persisted preference
// 3) COLORFGBG heuristic (format like "15;0" = fg;bg)
func applyThemePreference(pref string) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ATLAS_TUI_THEME")))
	if v == "" {
		v = strings.ToLower(strings.TrimSpace(pref))
	}
	switch v {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	// Heuristic: COLORFGBG is often "fg;bg" (sometimes more segments); use
	// the last segment as bg.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
		}
	}
}
