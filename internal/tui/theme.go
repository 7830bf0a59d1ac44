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
// Screens must stay readable on both light and dark terminal backgrounds,
// so colors are lipgloss.AdaptiveColor pairs and "faint" styling is only
// applied on dark backgrounds (faint text on light terminals often becomes
// illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted lipgloss.TerminalColor = ac("240", "243")

	colorSelectedBg lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorSelectedFg lipgloss.TerminalColor = ac("235", "255")

	colorSurfaceBg lipgloss.TerminalColor = ac("255", "235")
	colorSurfaceFg lipgloss.TerminalColor = ac("235", "252")

	// Slightly elevated surface for controls/inputs so they remain visible
	// on light terminals.
	colorControlBg lipgloss.TerminalColor = ac("252", "235")
	colorInputBg   lipgloss.TerminalColor = ac("254", "234")

	colorAccent lipgloss.TerminalColor = ac("27", "62") // blue
	// Foreground on top of colorAccent backgrounds (e.g. the input cursor).
	colorAccentFg lipgloss.TerminalColor = ac("255", "235")

	// Status/action colors.
	colorOK     lipgloss.TerminalColor = ac("28", "40")   // green
	colorWarn   lipgloss.TerminalColor = ac("130", "220") // yellow/orange
	colorDanger lipgloss.TerminalColor = ac("124", "196") // red
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive screens.
//
// termenv.EnvColorProfile respects CLICOLOR/CLICOLOR_FORCE, which suits
// non-interactive CLI output but can accidentally disable colors in a TUI.
// Here only NO_COLOR is honored; otherwise the terminal's capabilities win.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// If TERM/COLORTERM indicate stronger support than the detector reports,
	// trust the env. Some terminals under-report when probed.
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

// applyThemePreference configures Lip Gloss's background detection.
//
// Some terminals don't reliably report their background, which makes
// AdaptiveColor pick the wrong variant. Priority:
//  1. QTASK_THEME=light|dark|auto
//  2. COLORFGBG heuristic (format like "15;0" = fg;bg)
func applyThemePreference() {
	if v := strings.TrimSpace(os.Getenv("QTASK_THEME")); v != "" {
		switch strings.ToLower(v) {
		case "light":
			lipgloss.SetHasDarkBackground(false)
			return
		case "dark":
			lipgloss.SetHasDarkBackground(true)
			return
		}
		// "auto" and unknown values fall through to the heuristic.
	}

	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bgStr := strings.TrimSpace(parts[len(parts)-1])
		if bg, err := strconv.Atoi(bgStr); err == nil {
			lipgloss.SetHasDarkBackground(bg < 7)
			return
		}
	}
}
