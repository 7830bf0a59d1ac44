package tui

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestFitLineTruncatesWide(t *testing.T) {
	out := fitLine("日本語のテスト", 7)
	if w := xansi.StringWidth(out); w != 7 {
		t.Errorf("width = %d, out = %q", w, out)
	}
	if !strings.Contains(out, "…") {
		t.Errorf("expected ellipsis: %q", out)
	}
}

func TestFitLinePadsShort(t *testing.T) {
	out := fitLine("ab", 5)
	if out != "ab   " {
		t.Errorf("out = %q", out)
	}
}

func TestNormalizePaneDimensions(t *testing.T) {
	out := normalizePane("one\ntwo", 10, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines", len(lines))
	}
	for i, ln := range lines {
		if w := xansi.StringWidth(ln); w != 10 {
			t.Errorf("line %d width = %d", i, w)
		}
	}
}

func TestNormalizePaneTruncatesExtraLines(t *testing.T) {
	out := normalizePane("a\nb\nc\nd", 3, 2)
	if got := len(strings.Split(out, "\n")); got != 2 {
		t.Errorf("got %d lines", got)
	}
}
