package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// Modal rendering: a bordered box with a header, placed centered over a
// dimmed background.

const modalHPadding = 2

func modalBodyWidth(width int) int {
	// Border (2) plus horizontal padding on both sides.
	w := width - 2 - 2*modalHPadding
	if w < 10 {
		w = 10
	}
	return w
}

func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSurfaceFg).
		Background(colorControlBg).
		Width(bodyW).
		Render(" " + title)

	body := lipgloss.NewStyle().
		Width(bodyW).
		Foreground(colorSurfaceFg).
		Render(content)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Background(colorSurfaceBg).
		Padding(0, modalHPadding)

	return box.Render(header + "\n\n" + body)
}

// dimBackground renders s as an inert scrim: all inner styling is stripped
// so nothing behind the modal competes with it, then the whole pane is
// repainted in a single muted gray.
func dimBackground(s string) string {
	scrim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		if ln == "" {
			continue
		}
		lines[i] = scrim.Render(xansi.Strip(ln))
	}
	return strings.Join(lines, "\n")
}

// placeCentered overlays block on top of bg, centered within width x height.
// bg is dimmed and normalized first.
func placeCentered(bg string, width, height int, block string) string {
	base := strings.Split(normalizePane(dimBackground(bg), width, height), "\n")
	overlay := strings.Split(block, "\n")

	ow := 0
	for _, ln := range overlay {
		if w := xansi.StringWidth(ln); w > ow {
			ow = w
		}
	}
	if ow > width {
		ow = width
	}
	top := (height - len(overlay)) / 2
	if top < 0 {
		top = 0
	}
	left := (width - ow) / 2
	if left < 0 {
		left = 0
	}

	for i, ln := range overlay {
		row := top + i
		if row >= len(base) {
			break
		}
		ln = fitLine(ln, ow)
		prefix := xansi.Cut(base[row], 0, left)
		suffix := xansi.Cut(base[row], left+ow, width)
		base[row] = prefix + "\x1b[0m" + ln + "\x1b[0m" + suffix
	}
	return strings.Join(base, "\n")
}

// renderInputLine keeps a text input on a single visual line capped at
// bodyW columns. Newlines in the view would otherwise trigger wrapping
// that looks like phantom input.
func renderInputLine(bodyW int, inputView string) string {
	if bodyW < 10 {
		bodyW = 10
	}

	inputView = strings.ReplaceAll(inputView, "\n", " ")
	inputView = strings.ReplaceAll(inputView, "\r", " ")

	line := lipgloss.PlaceHorizontal(
		bodyW,
		lipgloss.Left,
		" "+inputView+" ",
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(colorInputBg),
	)
	if xansi.StringWidth(line) > bodyW {
		// Never exceed the modal body width; terminate styling to stop bleed.
		line = xansi.Cut(line, 0, bodyW) + "\x1b[0m"
	}
	return line
}
