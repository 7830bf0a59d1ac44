package tui

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
)

// SelectScreen shows a prompt above a SelectList and yields the chosen
// index. An optional header block renders above the prompt.
type SelectScreen struct {
	prompt string
	header string
	list   SelectList
}

// NewSelectScreen builds the screen; the caller guarantees items is
// non-empty (the helpers below enforce it).
func NewSelectScreen(prompt, header string, list SelectList) *SelectScreen {
	return &SelectScreen{prompt: prompt, header: header, list: list}
}

// HandleEvent implements Screen[int].
func (s *SelectScreen) HandleEvent(ev Event) (Result[int], bool) {
	k, isKey := ev.(KeyEvent)
	if !isKey {
		return Result[int]{}, false
	}
	if k.Code == KeyCtrlC {
		return Cancelled[int](), true
	}

	switch s.list.HandleKey(k) {
	case SelectConfirm:
		idx, _ := s.list.Selected()
		return Done(idx), true
	case SelectCancel:
		return Cancelled[int](), true
	}
	return Result[int]{}, false
}

// View implements Screen[int].
func (s *SelectScreen) View(width, height int) string {
	out := ""
	if s.header != "" {
		out += s.header + "\n\n"
	}
	out += lipgloss.NewStyle().Bold(true).Render(s.prompt) + "\n\n"
	out += s.list.View(width - 1) + "\n\n"
	out += styleMuted().Render("↑/k ↓/j: move   enter: select   esc: cancel")
	return normalizePane(out, width, height)
}

// ErrNoChoices is returned when a selection is requested over no items.
var ErrNoChoices = errors.New("nothing to select from")

// SelectFromList runs a selection over items and returns the chosen index.
// ok is false when the user cancelled.
func SelectFromList(prompt string, items []string) (int, bool, error) {
	return SelectFromListWithHeader(prompt, "", items)
}

// SelectFromListWithHeader is SelectFromList with a header block above the
// prompt.
func SelectFromListWithHeader(prompt, header string, items []string) (int, bool, error) {
	if len(items) == 0 {
		return 0, false, ErrNoChoices
	}
	return Run[int](NewSelectScreen(prompt, header, NewSelectList(items)))
}

// SelectFromListFiltered runs a selection where only the listed indices are
// selectable; the rest render muted and are skipped.
func SelectFromListFiltered(prompt string, items []string, selectable []int) (int, bool, error) {
	if len(items) == 0 {
		return 0, false, ErrNoChoices
	}
	ok := make(map[int]bool, len(selectable))
	for _, i := range selectable {
		ok[i] = true
	}
	var disabled []int
	for i := range items {
		if !ok[i] {
			disabled = append(disabled, i)
		}
	}
	list := NewSelectList(items).WithDisabled(disabled)
	return Run[int](NewSelectScreen(prompt, "", list))
}
