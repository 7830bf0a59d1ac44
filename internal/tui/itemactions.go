package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"qtask/internal/format"
	"qtask/internal/model"
)

// ItemActionKind enumerates what can be done to an item from the actions
// screen.
type ItemActionKind int

const (
	ActionView ItemActionKind = iota
	ActionEdit
	ActionClose
	ActionReopen
	ActionDelete
	ActionCopyPath
)

// ItemAction is the screen's result: an action applied to the item file at
// Path.
type ItemAction struct {
	Kind ItemActionKind
	Path string
}

// iaState is the screen's exclusive mode. Exactly one of these is active;
// a tagged union instead of parallel booleans so the modes cannot
// desynchronize.
type iaState int

const (
	iaBrowsing iaState = iota
	iaPopup
	iaFilter
)

// ItemActionScreen lists items and lets the user pick an action for one of
// them, with an optional filter overlay.
type ItemActionScreen struct {
	items    []model.Item
	archived bool

	visible []int // indices into items, after filtering
	list    SelectList

	state   iaState
	menu    ActionMenu
	actions []ItemAction
	overlay FilterOverlay
	filter  FilterState
}

// NewItemActionScreen builds the screen over pre-loaded items.
func NewItemActionScreen(items []model.Item, archived bool) *ItemActionScreen {
	s := &ItemActionScreen{items: items, archived: archived}
	s.rebuild()
	return s
}

func (s *ItemActionScreen) rebuild() {
	s.visible = s.visible[:0]
	for i := range s.items {
		if s.matches(&s.items[i]) {
			s.visible = append(s.visible, i)
		}
	}
	rows := make([]string, len(s.visible))
	for i, idx := range s.visible {
		rows[i] = itemRow(&s.items[idx])
	}
	s.list = NewSelectList(rows)
}

func (s *ItemActionScreen) matches(it *model.Item) bool {
	if q := strings.ToLower(s.filter.Search); q != "" {
		if !strings.Contains(strings.ToLower(it.Title), q) &&
			!strings.Contains(strings.ToLower(it.ID), q) &&
			!strings.Contains(strings.ToLower(it.Body), q) {
			return false
		}
	}
	if len(s.filter.Labels) > 0 {
		found := false
		for _, want := range s.filter.Labels {
			for _, have := range it.Labels {
				if have == want {
					found = true
				}
			}
		}
		if !found {
			return false
		}
	}
	if s.filter.Category != "" && it.Category != s.filter.Category {
		return false
	}
	return true
}

func itemRow(it *model.Item) string {
	shortID := it.ID
	if i := strings.IndexByte(shortID, '-'); i > 0 {
		shortID = shortID[:i]
	}
	category := it.Category
	if category == "" {
		category = "-"
	}
	return format.Pad(shortID, 15) +
		format.PadLeft(string(it.Status), 6) + "  " +
		format.Pad(it.Title, 40) + " " +
		format.Pad(strings.Join(it.Labels, ", "), 20) + " " +
		category
}

// HandleEvent implements Screen[ItemAction].
func (s *ItemActionScreen) HandleEvent(ev Event) (Result[ItemAction], bool) {
	switch s.state {
	case iaBrowsing:
		return s.handleBrowsing(ev)
	case iaPopup:
		return s.handlePopup(ev)
	default:
		return s.handleFilter(ev)
	}
}

func (s *ItemActionScreen) handleBrowsing(ev Event) (Result[ItemAction], bool) {
	k, isKey := ev.(KeyEvent)
	if !isKey {
		return Result[ItemAction]{}, false
	}

	switch {
	case k.Code == KeyCtrlC:
		return Cancelled[ItemAction](), true
	case k.Code == KeyRune && k.Rune == 'f':
		s.openFilter()
		return Result[ItemAction]{}, false
	case k.Code == KeyRune && k.Rune == 'c':
		if !s.filter.IsEmpty() {
			s.filter = FilterState{}
			s.rebuild()
		}
		return Result[ItemAction]{}, false
	}

	switch s.list.HandleKey(k) {
	case SelectConfirm:
		s.openPopup()
	case SelectCancel:
		return Cancelled[ItemAction](), true
	}
	return Result[ItemAction]{}, false
}

func (s *ItemActionScreen) handlePopup(ev Event) (Result[ItemAction], bool) {
	k, isKey := ev.(KeyEvent)
	if !isKey {
		return Result[ItemAction]{}, false
	}
	if k.Code == KeyCtrlC {
		return Cancelled[ItemAction](), true
	}

	outcome, action := s.menu.HandleKey(k)
	switch outcome {
	case MenuSelected:
		if action < 0 || action >= len(s.actions) {
			s.state = iaBrowsing
			return Result[ItemAction]{}, false
		}
		return Done(s.actions[action]), true
	case MenuCancelled:
		s.state = iaBrowsing
	}
	return Result[ItemAction]{}, false
}

func (s *ItemActionScreen) handleFilter(ev Event) (Result[ItemAction], bool) {
	switch ev := ev.(type) {
	case PasteEvent:
		s.overlay.HandlePaste(ev.Text)
	case KeyEvent:
		if ev.Code == KeyCtrlC {
			return Cancelled[ItemAction](), true
		}
		switch s.overlay.HandleKey(ev) {
		case FilterApplied:
			s.filter = s.overlay.State()
			s.rebuild()
			s.state = iaBrowsing
		case FilterCancelled:
			s.state = iaBrowsing
		}
	}
	return Result[ItemAction]{}, false
}

func (s *ItemActionScreen) openFilter() {
	labelSet := map[string]bool{}
	categorySet := map[string]bool{}
	for i := range s.items {
		for _, l := range s.items[i].Labels {
			labelSet[l] = true
		}
		if c := s.items[i].Category; c != "" {
			categorySet[c] = true
		}
	}
	s.overlay = NewFilterOverlay(sortedKeys(labelSet), sortedKeys(categorySet), s.filter)
	s.state = iaFilter
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// openPopup builds the action menu for the highlighted item. Menu rows
// carry indices into s.actions, so row order and meaning stay independent.
func (s *ItemActionScreen) openPopup() {
	row, ok := s.list.Selected()
	if !ok || row >= len(s.visible) {
		return
	}
	it := &s.items[s.visible[row]]

	s.actions = s.actions[:0]
	add := func(kind ItemActionKind) int {
		s.actions = append(s.actions, ItemAction{Kind: kind, Path: it.Path})
		return len(s.actions) - 1
	}

	var rows []MenuItem
	rows = append(rows, MenuAction("View", "open in editor", nil, add(ActionView)))
	if it.Status == model.StatusOpen {
		rows = append(rows, MenuAction("Edit", "modify via wizard", nil, add(ActionEdit)))
	}
	rows = append(rows, MenuSeparator())
	if it.Status == model.StatusOpen {
		rows = append(rows, MenuAction("Close", "move to archive", colorWarn, add(ActionClose)))
	} else {
		rows = append(rows, MenuAction("Reopen", "restore from archive", colorOK, add(ActionReopen)))
	}
	rows = append(rows, MenuAction("Delete", "move to trash", colorDanger, add(ActionDelete)))
	rows = append(rows, MenuAction("Copy path", "file path to clipboard", nil, add(ActionCopyPath)))
	rows = append(rows, MenuSeparator())
	rows = append(rows, MenuAction("Cancel", "ESC", nil, -1))

	s.menu = NewActionMenu(format.Truncate(it.Title, 32), rows)
	s.state = iaPopup
}

// View implements Screen[ItemAction].
func (s *ItemActionScreen) View(width, height int) string {
	title := "Actions"
	if s.archived {
		title = "Actions (Archived)"
	}

	header := lipgloss.NewStyle().Bold(true).Render(title)
	if !s.filter.IsEmpty() {
		header += styleMuted().Render("  (filtered, c to clear)")
	}

	var body string
	if len(s.visible) == 0 {
		body = styleMuted().Render("No items.")
	} else {
		body = s.list.View(width - 1)
	}

	help := styleMuted().Render("enter: actions   f: filter   esc: quit")
	base := normalizePane(header+"\n\n"+body+"\n\n"+help, width, height)

	switch s.state {
	case iaPopup:
		return s.menu.Overlay(base, width, height)
	case iaFilter:
		return s.overlay.Overlay(base, width, height)
	default:
		return base
	}
}
