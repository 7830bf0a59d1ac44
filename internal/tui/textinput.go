package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// TextInput is a single-line editor. The cursor is a character index into
// the value; byte offsets are derived only at the point of mutation, so
// multi-byte input never desynchronizes cursor and text.
type TextInput struct {
	value  string
	cursor int // character index, 0..len(chars)
}

// NewTextInput returns an empty input.
func NewTextInput() TextInput { return TextInput{} }

// WithInitial seeds the value and places the cursor after the last
// character.
func (t TextInput) WithInitial(s string) TextInput {
	t.value = s
	t.cursor = len([]rune(s))
	return t
}

// Value returns the current text.
func (t *TextInput) Value() string { return t.value }

// Cursor returns the character index of the cursor.
func (t *TextInput) Cursor() int { return t.cursor }

// Clear empties the input.
func (t *TextInput) Clear() {
	t.value = ""
	t.cursor = 0
}

// InsertText inserts s at the cursor, flattening line breaks to spaces.
// Used for paste.
func (t *TextInput) InsertText(s string) {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' {
			return ' '
		}
		return r
	}, s)

	b := t.byteCursor()
	t.value = t.value[:b] + s + t.value[b:]
	t.cursor += len([]rune(s))
}

// HandleKey applies an edit key, reporting whether the key was consumed.
// Control chords other than Ctrl+U/Ctrl+W are declined so enclosing
// screens can own them.
func (t *TextInput) HandleKey(k KeyEvent) bool {
	switch k.Code {
	case KeyRune:
		if k.Alt {
			return false
		}
		b := t.byteCursor()
		t.value = t.value[:b] + string(k.Rune) + t.value[b:]
		t.cursor++
	case KeyBackspace:
		if t.cursor == 0 {
			return true
		}
		runes := []rune(t.value)
		t.value = string(runes[:t.cursor-1]) + string(runes[t.cursor:])
		t.cursor--
	case KeyDelete:
		runes := []rune(t.value)
		if t.cursor >= len(runes) {
			return true
		}
		t.value = string(runes[:t.cursor]) + string(runes[t.cursor+1:])
	case KeyLeft:
		if t.cursor > 0 {
			t.cursor--
		}
	case KeyRight:
		if t.cursor < len([]rune(t.value)) {
			t.cursor++
		}
	case KeyHome:
		t.cursor = 0
	case KeyEnd:
		t.cursor = len([]rune(t.value))
	case KeyCtrlU:
		t.Clear()
	case KeyCtrlW:
		t.deleteWordBackward()
	default:
		return false
	}
	return true
}

// deleteWordBackward removes trailing spaces before the cursor, then the
// run of non-space characters before them.
func (t *TextInput) deleteWordBackward() {
	runes := []rune(t.value)
	i := t.cursor
	for i > 0 && runes[i-1] == ' ' {
		i--
	}
	for i > 0 && runes[i-1] != ' ' {
		i--
	}
	t.value = string(runes[:i]) + string(runes[t.cursor:])
	t.cursor = i
}

func (t *TextInput) byteCursor() int {
	n := 0
	for i := range t.value {
		if n == t.cursor {
			return i
		}
		n++
	}
	return len(t.value)
}

// View renders the input capped at width columns. When focused, the
// character under the cursor is shown as a block cursor.
func (t *TextInput) View(width int, focused bool) string {
	runes := []rune(t.value)

	if !focused {
		return fitLine(string(runes), width)
	}

	cursorStyle := lipgloss.NewStyle().Background(colorAccent).Foreground(colorAccentFg)
	under := " "
	after := ""
	if t.cursor < len(runes) {
		under = string(runes[t.cursor])
		after = string(runes[t.cursor+1:])
	}
	line := string(runes[:t.cursor]) + cursorStyle.Render(under) + after

	// Scroll left when the cursor would fall past the right edge.
	if before := xansi.StringWidth(string(runes[:t.cursor])); before >= width && width > 0 {
		line = xansi.Cut(line, before-width+1, before+1) + "\x1b[0m"
	}
	return fitLine(line, width)
}
