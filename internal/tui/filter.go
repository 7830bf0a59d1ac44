package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// FilterState is an applied filter: a free-text search, a set of labels
// (any-match), and at most one category (empty means all).
type FilterState struct {
	Search   string
	Labels   []string
	Category string
}

// IsEmpty reports whether the filter matches everything.
func (s FilterState) IsEmpty() bool {
	return s.Search == "" && len(s.Labels) == 0 && s.Category == ""
}

// FilterOutcome is the outcome of a FilterOverlay key press.
type FilterOutcome int

const (
	FilterNone FilterOutcome = iota
	FilterApplied
	FilterCancelled
)

type filterFocus int

const (
	focusSearch filterFocus = iota
	focusLabels
	focusCategory
)

// FilterOverlay edits a FilterState: a search input, label checkboxes, and
// a category radio column. Tab cycles focus; Enter applies and Esc cancels
// from any focus. The category column reacts only to vertical navigation,
// so Enter and Esc always reach the overlay itself.
type FilterOverlay struct {
	search     TextInput
	labels     MultiSelect
	hasLabels  bool
	categories []string // without the leading "(all)"
	catCursor  int      // 0 == "(all)"
	focus      filterFocus
}

// NewFilterOverlay builds an overlay seeded from current.
func NewFilterOverlay(labels, categories []string, current FilterState) FilterOverlay {
	o := FilterOverlay{
		search:     NewTextInput().WithInitial(current.Search),
		labels:     NewMultiSelect(labels),
		hasLabels:  len(labels) > 0,
		categories: categories,
	}
	o.labels.SetSelected(current.Labels)
	for i, c := range categories {
		if c == current.Category && current.Category != "" {
			o.catCursor = i + 1
		}
	}
	return o
}

// State returns the filter as currently edited.
func (o *FilterOverlay) State() FilterState {
	s := FilterState{Search: o.search.Value(), Labels: o.labels.Selected()}
	if o.catCursor > 0 && o.catCursor <= len(o.categories) {
		s.Category = o.categories[o.catCursor-1]
	}
	return s
}

// HandleKey processes one key press.
func (o *FilterOverlay) HandleKey(k KeyEvent) FilterOutcome {
	switch k.Code {
	case KeyEnter:
		return FilterApplied
	case KeyEsc:
		return FilterCancelled
	case KeyTab:
		o.focus = (o.focus + 1) % 3
		return FilterNone
	case KeyShiftTab:
		o.focus = (o.focus + 2) % 3
		return FilterNone
	}

	switch o.focus {
	case focusSearch:
		o.search.HandleKey(k)
	case focusLabels:
		if o.hasLabels {
			o.labels.HandleKey(k)
		}
	case focusCategory:
		switch {
		case k.Code == KeyUp || (k.Code == KeyRune && k.Rune == 'k'):
			if o.catCursor > 0 {
				o.catCursor--
			}
		case k.Code == KeyDown || (k.Code == KeyRune && k.Rune == 'j'):
			if o.catCursor < len(o.categories) {
				o.catCursor++
			}
		}
	}
	return FilterNone
}

// HandlePaste inserts pasted text into the search field when focused.
func (o *FilterOverlay) HandlePaste(text string) {
	if o.focus == focusSearch {
		o.search.InsertText(text)
	}
}

// Overlay renders the filter form centered over bg.
func (o *FilterOverlay) Overlay(bg string, width, height int) string {
	boxW := width * 3 / 4
	if boxW > 70 {
		boxW = 70
	}
	if boxW < 30 {
		boxW = 30
	}
	innerW := boxW - 4

	section := func(title string, focused bool) string {
		st := lipgloss.NewStyle().Bold(true)
		if focused {
			st = st.Foreground(colorAccent)
		}
		return st.Render(title)
	}

	searchLine := renderInputLine(innerW, o.search.View(innerW-2, o.focus == focusSearch))

	var labelsView string
	if o.hasLabels {
		labelsView = o.labels.View(innerW / 2)
	} else {
		labelsView = styleMuted().Render("(no labels)")
	}

	catRows := make([]string, 0, len(o.categories)+1)
	for i, name := range append([]string{"(all)"}, o.categories...) {
		marker := "( ) "
		if i == o.catCursor {
			marker = "(•) "
		}
		row := marker + name
		if i == o.catCursor && o.focus == focusCategory {
			row = lipgloss.NewStyle().Foreground(colorAccent).Render(row)
		}
		catRows = append(catRows, fitLine(row, innerW/2-1))
	}

	columns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		section("Labels", o.focus == focusLabels)+"\n"+labelsView,
		" ",
		section("Category", o.focus == focusCategory)+"\n"+joinLines(catRows),
	)

	help := styleMuted().Render("tab: section   space: toggle   enter: apply   esc: cancel")

	content := section("Search", o.focus == focusSearch) + "\n" +
		searchLine + "\n\n" +
		columns + "\n\n" +
		help

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Width(boxW - 2).
		Render(lipgloss.NewStyle().Bold(true).Render("Filter") + "\n\n" + content)

	return placeCentered(bg, width, height, box)
}
