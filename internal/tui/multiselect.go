package tui

import "github.com/charmbracelet/lipgloss"

// MultiEvent is the outcome of a MultiSelect key press.
type MultiEvent int

const (
	MultiNone MultiEvent = iota
	MultiConfirm
	MultiCancel
)

type multiEntry struct {
	label    string
	selected bool
}

// MultiSelect is a checkbox list with an optional action row pinned last
// (e.g. "+ Add new..."). The action row navigates like any other row but
// cannot be toggled and never appears in Selected.
type MultiSelect struct {
	entries []multiEntry
	cursor  int
	action  int // index of the action row, -1 when absent
}

// NewMultiSelect builds a list of unchecked entries.
func NewMultiSelect(labels []string) MultiSelect {
	m := MultiSelect{action: -1}
	for _, l := range labels {
		m.entries = append(m.entries, multiEntry{label: l})
	}
	return m
}

// WithActionItemLast appends a non-toggleable action row.
func (m MultiSelect) WithActionItemLast(label string) MultiSelect {
	m.entries = append(m.entries, multiEntry{label: label})
	m.action = len(m.entries) - 1
	return m
}

// Len returns the number of rows including the action row.
func (m *MultiSelect) Len() int { return len(m.entries) }

// Cursor returns the current row index.
func (m *MultiSelect) Cursor() int { return m.cursor }

// OnActionItem reports whether the cursor is on the action row.
func (m *MultiSelect) OnActionItem() bool {
	return m.action >= 0 && m.cursor == m.action
}

// Toggle flips the checkbox under the cursor; a no-op on the action row.
func (m *MultiSelect) Toggle() {
	if len(m.entries) == 0 || m.OnActionItem() {
		return
	}
	m.entries[m.cursor].selected = !m.entries[m.cursor].selected
}

// SetSelected checks every entry whose label is in labels.
func (m *MultiSelect) SetSelected(labels []string) {
	on := make(map[string]bool, len(labels))
	for _, l := range labels {
		on[l] = true
	}
	for i := range m.entries {
		if i != m.action {
			m.entries[i].selected = on[m.entries[i].label]
		}
	}
}

// Add inserts a new pre-selected entry before the action row and moves the
// cursor to it. An existing label is selected instead of duplicated.
func (m *MultiSelect) Add(label string) {
	for i := range m.entries {
		if i != m.action && m.entries[i].label == label {
			m.entries[i].selected = true
			m.cursor = i
			return
		}
	}

	entry := multiEntry{label: label, selected: true}
	if m.action >= 0 {
		m.entries = append(m.entries[:m.action], append([]multiEntry{entry}, m.entries[m.action:]...)...)
		m.cursor = m.action
		m.action++
	} else {
		m.entries = append(m.entries, entry)
		m.cursor = len(m.entries) - 1
	}
}

// Selected returns the checked labels, excluding the action row.
func (m *MultiSelect) Selected() []string {
	var out []string
	for i, e := range m.entries {
		if i != m.action && e.selected {
			out = append(out, e.label)
		}
	}
	return out
}

// HandleKey applies navigation, toggling, and confirmation. Navigation
// wraps over every row including the action row.
func (m *MultiSelect) HandleKey(k KeyEvent) MultiEvent {
	switch {
	case k.Code == KeyUp || (k.Code == KeyRune && k.Rune == 'k'):
		if n := len(m.entries); n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}
	case k.Code == KeyDown || (k.Code == KeyRune && k.Rune == 'j'):
		if n := len(m.entries); n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case k.Code == KeyRune && k.Rune == ' ':
		m.Toggle()
	case k.Code == KeyEnter:
		return MultiConfirm
	case k.Code == KeyEsc:
		return MultiCancel
	}
	return MultiNone
}

// View renders checkbox rows; the action row is indented without a box.
func (m *MultiSelect) View(width int) string {
	selected := lipgloss.NewStyle().
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	rows := make([]string, len(m.entries))
	for i, e := range m.entries {
		var text string
		if i == m.action {
			text = "    " + e.label
		} else if e.selected {
			text = "[x] " + e.label
		} else {
			text = "[ ] " + e.label
		}
		if i == m.cursor {
			rows[i] = selected.Render(fitLine("> "+text, width))
		} else {
			rows[i] = fitLine("  "+text, width)
		}
	}
	return joinLines(rows)
}
