package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// MenuOutcome is the outcome of an ActionMenu key press.
type MenuOutcome int

const (
	MenuNone MenuOutcome = iota
	MenuSelected
	MenuCancelled
)

// MenuItem is one row of an ActionMenu: an action with a declared action
// index, or a separator. Declared indices decouple what a selection means
// from where the row happens to sit, so reordering rows cannot silently
// change behavior.
type MenuItem struct {
	Label       string
	Description string
	Color       lipgloss.TerminalColor
	Action      int
	separator   bool
}

// MenuAction builds an actionable row.
func MenuAction(label, description string, color lipgloss.TerminalColor, action int) MenuItem {
	return MenuItem{Label: label, Description: description, Color: color, Action: action}
}

// MenuSeparator builds a separator row.
func MenuSeparator() MenuItem {
	return MenuItem{separator: true}
}

// ActionMenu is a centered popup menu. Navigation wraps over actionable
// rows only; Enter yields the highlighted row's declared action index.
type ActionMenu struct {
	title  string
	items  []MenuItem
	cursor int // index into items; always on an actionable row
}

// NewActionMenu builds a menu with the cursor on the first actionable row.
func NewActionMenu(title string, items []MenuItem) ActionMenu {
	m := ActionMenu{title: title, items: items}
	for i, it := range items {
		if !it.separator {
			m.cursor = i
			break
		}
	}
	return m
}

// CursorAction returns the declared action index under the cursor.
func (m *ActionMenu) CursorAction() int {
	if m.cursor < len(m.items) {
		return m.items[m.cursor].Action
	}
	return 0
}

func (m *ActionMenu) step(delta int) {
	n := len(m.items)
	if n == 0 {
		return
	}
	i := m.cursor
	for range m.items {
		i = (i + delta + n) % n
		if !m.items[i].separator {
			m.cursor = i
			return
		}
	}
}

// HandleKey applies navigation and selection. Enter returns MenuSelected
// with the declared action index; Esc returns MenuCancelled.
func (m *ActionMenu) HandleKey(k KeyEvent) (MenuOutcome, int) {
	switch {
	case k.Code == KeyUp || (k.Code == KeyRune && k.Rune == 'k'):
		m.step(-1)
	case k.Code == KeyDown || (k.Code == KeyRune && k.Rune == 'j'):
		m.step(1)
	case k.Code == KeyEnter:
		return MenuSelected, m.CursorAction()
	case k.Code == KeyEsc:
		return MenuCancelled, 0
	}
	return MenuNone, 0
}

func (m *ActionMenu) popupSize() (int, int) {
	maxItem := 0
	for _, it := range m.items {
		w := xansi.StringWidth(it.Label)
		if it.Description != "" {
			w += 2 + xansi.StringWidth(it.Description)
		}
		if w > maxItem {
			maxItem = w
		}
	}
	width := maxItem + 4
	if tw := xansi.StringWidth(m.title) + 4; tw > width {
		width = tw
	}
	width += 2
	if width < 24 {
		width = 24
	}
	height := len(m.items) + 2
	if height < 4 {
		height = 4
	}
	return width, height
}

// Overlay renders the menu centered over bg, which is dimmed.
func (m *ActionMenu) Overlay(bg string, width, height int) string {
	popupW, _ := m.popupSize()
	if popupW > width-2 {
		popupW = width - 2
	}
	innerW := popupW - 4 // border and padding

	selected := lipgloss.NewStyle().
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	var rows []string
	for i, it := range m.items {
		if it.separator {
			rows = append(rows, styleMuted().Render(strings.Repeat("─", innerW)))
			continue
		}

		label := it.Label
		if it.Color != nil {
			label = lipgloss.NewStyle().Foreground(it.Color).Render(label)
		}
		row := label
		if it.Description != "" {
			desc := styleMuted().Render(it.Description)
			gap := innerW - xansi.StringWidth(label) - xansi.StringWidth(it.Description)
			if gap < 1 {
				gap = 1
			}
			row = label + strings.Repeat(" ", gap) + desc
		}
		row = fitLine(row, innerW)
		if i == m.cursor {
			row = selected.Render(xansi.Strip(row))
		}
		rows = append(rows, row)
	}

	title := lipgloss.NewStyle().Bold(true).Render(m.title)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Render(title + "\n" + joinLines(rows))

	return placeCentered(bg, width, height, box)
}
