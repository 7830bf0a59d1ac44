package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// MultiLineText is a multi-line editor for item bodies, wrapping the
// bubbles textarea in permanent insert mode. Keys that belong to the
// enclosing screen (Tab, Shift+Tab, Esc, Ctrl+C, Ctrl+S) are declined;
// everything else is forwarded, which keeps the textarea's own motions:
// Alt+Left/Right word jumps, and Left/Right wrapping across line ends.
type MultiLineText struct {
	ta textarea.Model
}

// NewMultiLineText returns an empty editor sized to width x height.
func NewMultiLineText(width, height int) MultiLineText {
	ta := textarea.New()
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Prompt = ""
	ta.SetWidth(width)
	ta.SetHeight(height)
	ta.Focus()
	return MultiLineText{ta: ta}
}

// Value returns the buffer contents.
func (m *MultiLineText) Value() string { return m.ta.Value() }

// SetValue replaces the buffer contents.
func (m *MultiLineText) SetValue(s string) { m.ta.SetValue(s) }

// SetSize resizes the editor viewport.
func (m *MultiLineText) SetSize(width, height int) {
	m.ta.SetWidth(width)
	m.ta.SetHeight(height)
}

// InsertText inserts pasted text at the cursor, newlines intact.
func (m *MultiLineText) InsertText(s string) {
	m.ta.InsertString(s)
}

// HandleKey forwards a key to the textarea, reporting whether it was
// consumed.
func (m *MultiLineText) HandleKey(k KeyEvent) bool {
	switch k.Code {
	case KeyTab, KeyShiftTab, KeyEsc, KeyCtrlC, KeyCtrlS, KeyCtrlOther:
		return false
	}
	msg, ok := toTeaKey(k)
	if !ok {
		return false
	}
	m.ta, _ = m.ta.Update(msg)
	return true
}

// Focus enables the cursor display.
func (m *MultiLineText) Focus() { m.ta.Focus() }

// Blur hides the cursor.
func (m *MultiLineText) Blur() { m.ta.Blur() }

// Focused reports whether the editor shows its cursor.
func (m *MultiLineText) Focused() bool { return m.ta.Focused() }

// View renders the editor. Focus is state, set by the enclosing screen's
// focus transitions, never flipped here.
func (m *MultiLineText) View() string {
	return m.ta.View()
}

func toTeaKey(k KeyEvent) (tea.KeyMsg, bool) {
	switch k.Code {
	case KeyRune:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{k.Rune}, Alt: k.Alt}, true
	case KeyEnter:
		return tea.KeyMsg{Type: tea.KeyEnter}, true
	case KeyBackspace:
		return tea.KeyMsg{Type: tea.KeyBackspace, Alt: k.Alt}, true
	case KeyDelete:
		return tea.KeyMsg{Type: tea.KeyDelete}, true
	case KeyUp:
		return tea.KeyMsg{Type: tea.KeyUp, Alt: k.Alt}, true
	case KeyDown:
		return tea.KeyMsg{Type: tea.KeyDown, Alt: k.Alt}, true
	case KeyLeft:
		return tea.KeyMsg{Type: tea.KeyLeft, Alt: k.Alt}, true
	case KeyRight:
		return tea.KeyMsg{Type: tea.KeyRight, Alt: k.Alt}, true
	case KeyHome:
		return tea.KeyMsg{Type: tea.KeyHome}, true
	case KeyEnd:
		return tea.KeyMsg{Type: tea.KeyEnd}, true
	case KeyCtrlU:
		return tea.KeyMsg{Type: tea.KeyCtrlU}, true
	case KeyCtrlW:
		return tea.KeyMsg{Type: tea.KeyCtrlW}, true
	default:
		return tea.KeyMsg{}, false
	}
}
