package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Truncate shortens s to at most max display columns, appending an ellipsis
// when anything was cut. Widths are terminal cell widths, not byte or rune
// counts, so CJK text truncates correctly.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return runewidth.Truncate(s, max-1, "") + "…"
}

// Pad right-pads s with spaces to exactly width display columns, truncating
// first when the string is too wide.
func Pad(s string, width int) string {
	s = Truncate(s, width)
	if w := runewidth.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// PadLeft left-pads s with spaces to exactly width display columns.
func PadLeft(s string, width int) string {
	s = Truncate(s, width)
	if w := runewidth.StringWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}
