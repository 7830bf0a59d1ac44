package tui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// normalizePane forces s to exactly width columns (ANSI-aware) and height
// lines. Overlong lines are cut with an ellipsis; short ones padded with
// spaces. Overlays rely on every background line having the same width.
func normalizePane(s string, width, height int) string {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	lines := strings.Split(s, "\n")
	if height > 0 {
		if len(lines) > height {
			lines = lines[:height]
		}
		for len(lines) < height {
			lines = append(lines, "")
		}
	}

	for i := range lines {
		lines[i] = fitLine(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

func fitLine(ln string, width int) string {
	w := xansi.StringWidth(ln)
	if w > width {
		switch {
		case width <= 0:
			return ""
		case width == 1:
			return xansi.Cut(ln, 0, 1)
		default:
			ln = xansi.Cut(ln, 0, width-1) + "…"
			w = xansi.StringWidth(ln)
		}
	}
	if w < width {
		ln += strings.Repeat(" ", width-w)
	}
	return ln
}
