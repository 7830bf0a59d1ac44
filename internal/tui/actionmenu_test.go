package tui

import "testing"

func sampleMenu() ActionMenu {
	return NewActionMenu("Actions", []MenuItem{
		MenuAction("View", "open", nil, 0),
		MenuAction("Edit", "modify", nil, 1),
		MenuSeparator(),
		MenuAction("Delete", "remove", colorDanger, 2),
	})
}

func TestActionMenuStartsOnFirstAction(t *testing.T) {
	m := NewActionMenu("x", []MenuItem{
		MenuSeparator(),
		MenuAction("First", "", nil, 7),
	})
	if m.CursorAction() != 7 {
		t.Errorf("cursor action = %d", m.CursorAction())
	}
}

func TestActionMenuNavigationSkipsSeparators(t *testing.T) {
	m := sampleMenu()
	m.HandleKey(Key(KeyDown))
	m.HandleKey(Key(KeyDown)) // skips the separator
	if m.CursorAction() != 2 {
		t.Errorf("cursor action = %d", m.CursorAction())
	}
	m.HandleKey(Key(KeyDown)) // wraps to the top
	if m.CursorAction() != 0 {
		t.Errorf("cursor action = %d", m.CursorAction())
	}
	m.HandleKey(Key(KeyUp)) // wraps back down, skipping the separator
	if m.CursorAction() != 2 {
		t.Errorf("cursor action = %d", m.CursorAction())
	}
}

func TestActionMenuConfirmReturnsDeclaredIndex(t *testing.T) {
	m := sampleMenu()
	m.HandleKey(Key(KeyDown))
	outcome, action := m.HandleKey(Key(KeyEnter))
	if outcome != MenuSelected || action != 1 {
		t.Errorf("outcome=%v action=%d", outcome, action)
	}
}

func TestActionMenuCancel(t *testing.T) {
	m := sampleMenu()
	outcome, _ := m.HandleKey(Key(KeyEsc))
	if outcome != MenuCancelled {
		t.Errorf("outcome = %v", outcome)
	}
}

func TestActionMenuPopupSizeMinimums(t *testing.T) {
	m := NewActionMenu("x", []MenuItem{MenuAction("a", "", nil, 0)})
	w, h := m.popupSize()
	if w < 24 {
		t.Errorf("width = %d", w)
	}
	if h < 4 {
		t.Errorf("height = %d", h)
	}
}
