package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// SelectEvent is the outcome of a SelectList key press.
type SelectEvent int

const (
	SelectNone SelectEvent = iota
	SelectConfirm
	SelectCancel
)

// SelectList is a single-choice list with an optional set of disabled
// entries. Navigation is circular and skips disabled entries; Enter only
// confirms an enabled entry.
type SelectList struct {
	items     []string
	cursor    int
	hasCursor bool
	disabled  map[int]bool
}

// NewSelectList builds a list with the cursor on the first item.
func NewSelectList(items []string) SelectList {
	return SelectList{items: items, hasCursor: len(items) > 0}
}

// WithDisabled marks indices as unselectable and moves the cursor to the
// first enabled entry, clearing it when every entry is disabled.
func (l SelectList) WithDisabled(indices []int) SelectList {
	l.disabled = make(map[int]bool, len(indices))
	for _, i := range indices {
		l.disabled[i] = true
	}
	l.hasCursor = false
	for i := range l.items {
		if !l.disabled[i] {
			l.cursor = i
			l.hasCursor = true
			break
		}
	}
	return l
}

// Len returns the number of entries.
func (l *SelectList) Len() int { return len(l.items) }

// Selected returns the cursor index, false when no entry is selectable.
func (l *SelectList) Selected() (int, bool) {
	if !l.hasCursor {
		return 0, false
	}
	return l.cursor, true
}

// SetItems replaces the entries, clamping the cursor.
func (l *SelectList) SetItems(items []string) {
	l.items = items
	l.disabled = nil
	if len(items) == 0 {
		l.hasCursor = false
		return
	}
	l.hasCursor = true
	if l.cursor >= len(items) {
		l.cursor = len(items) - 1
	}
}

// Next moves the cursor down, wrapping and skipping disabled entries.
func (l *SelectList) Next() { l.step(1) }

// Prev moves the cursor up, wrapping and skipping disabled entries.
func (l *SelectList) Prev() { l.step(-1) }

func (l *SelectList) step(delta int) {
	if !l.hasCursor || len(l.items) == 0 {
		return
	}
	// At most one full loop; all-disabled lists never set hasCursor.
	i := l.cursor
	for range l.items {
		i = (i + delta + len(l.items)) % len(l.items)
		if !l.disabled[i] {
			l.cursor = i
			return
		}
	}
}

// HandleKey applies navigation and confirmation keys.
func (l *SelectList) HandleKey(k KeyEvent) SelectEvent {
	switch {
	case k.Code == KeyUp || (k.Code == KeyRune && k.Rune == 'k'):
		l.Prev()
	case k.Code == KeyDown || (k.Code == KeyRune && k.Rune == 'j'):
		l.Next()
	case k.Code == KeyEnter:
		if l.hasCursor && !l.disabled[l.cursor] {
			return SelectConfirm
		}
	case k.Code == KeyEsc:
		return SelectCancel
	}
	return SelectNone
}

// View renders the entries with a "> " marker on the cursor row.
func (l *SelectList) View(width int) string {
	selected := lipgloss.NewStyle().
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	rows := make([]string, len(l.items))
	for i, item := range l.items {
		switch {
		case l.hasCursor && i == l.cursor:
			rows[i] = selected.Render(fitLine("> "+item, width))
		case l.disabled[i]:
			rows[i] = styleMuted().Render(fitLine("  "+item, width))
		default:
			rows[i] = fitLine("  "+item, width)
		}
	}
	return joinLines(rows)
}

func joinLines(lines []string) string {
	out := ""
	for i, ln := range lines {
		if i > 0 {
			out += "\n"
		}
		out += ln
	}
	return out
}
