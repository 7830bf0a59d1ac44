package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestDimBackgroundStripsInnerStyles(t *testing.T) {
	oldProfile := lipgloss.ColorProfile()
	oldBG := lipgloss.HasDarkBackground()
	lipgloss.SetColorProfile(termenv.ANSI256)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(oldProfile)
		lipgloss.SetHasDarkBackground(oldBG)
	})
	lipgloss.SetHasDarkBackground(true)

	// Strong inner color. If dimBackground does not strip ANSI codes first,
	// the inner style can override the scrim.
	in := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("HELLO")
	out := dimBackground(in)

	if !strings.Contains(out, "38;5;241") {
		t.Fatalf("expected dimmed foreground (38;5;241) in output; got %q", out)
	}
	if strings.Contains(out, "38;5;196") {
		t.Fatalf("expected inner foreground (38;5;196) to be stripped; got %q", out)
	}
}

func TestRenderInputLineFlattensNewlines(t *testing.T) {
	out := renderInputLine(20, "a\nb\rc")
	if strings.ContainsAny(out, "\n\r") {
		t.Errorf("output contains line breaks: %q", out)
	}
}

func TestPlaceCenteredKeepsPaneSize(t *testing.T) {
	bg := strings.Repeat(strings.Repeat("x", 10)+"\n", 4) + strings.Repeat("x", 10)
	out := placeCentered(bg, 10, 5, "OVERLAY")
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines", len(lines))
	}
	if !strings.Contains(out, "OVERLAY") {
		t.Error("overlay text missing")
	}
}
