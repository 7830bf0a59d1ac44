package tui

import (
	"testing"

	"qtask/internal/model"
)

func actionItems() []model.Item {
	open := model.Item{Body: "login fails on submit"}
	open.ID = "260101-AAAA001"
	open.Title = "Fix login"
	open.Status = model.StatusOpen
	open.Labels = []string{"bug", "auth"}
	open.Category = "backend"
	open.Path = "/stack/backend/260101-AAAA001-fix-login.md"

	closed := model.Item{}
	closed.ID = "260102-BBBB002"
	closed.Title = "Ship docs"
	closed.Status = model.StatusClosed
	closed.Labels = []string{"docs"}
	closed.Path = "/stack/archive/260102-BBBB002-ship-docs.md"

	return []model.Item{open, closed}
}

func TestItemActionsViewThenConfirm(t *testing.T) {
	s := NewItemActionScreen(actionItems(), false)
	s.HandleEvent(Key(KeyEnter)) // popup for the first item
	res, done := s.HandleEvent(Key(KeyEnter))
	if !done || res.Cancelled {
		t.Fatalf("res=%+v done=%v", res, done)
	}
	if res.Value.Kind != ActionView || res.Value.Path != "/stack/backend/260101-AAAA001-fix-login.md" {
		t.Errorf("action = %+v", res.Value)
	}
}

func TestItemActionsDeleteOnClosedItem(t *testing.T) {
	s := NewItemActionScreen(actionItems(), false)
	s.HandleEvent(Key(KeyDown))  // highlight the closed item
	s.HandleEvent(Key(KeyEnter)) // popup: View, Reopen, Delete, Copy path, Cancel
	s.HandleEvent(Key(KeyDown))
	s.HandleEvent(Key(KeyDown))
	res, done := s.HandleEvent(Key(KeyEnter))
	if !done || res.Cancelled {
		t.Fatalf("res=%+v done=%v", res, done)
	}
	if res.Value.Kind != ActionDelete || res.Value.Path != "/stack/archive/260102-BBBB002-ship-docs.md" {
		t.Errorf("action = %+v", res.Value)
	}
}

func TestItemActionsOpenItemMenuHasCloseAndEdit(t *testing.T) {
	s := NewItemActionScreen(actionItems(), false)
	s.HandleEvent(Key(KeyEnter))
	s.HandleEvent(Key(KeyDown)) // Edit
	res, done := s.HandleEvent(Key(KeyEnter))
	if !done || res.Value.Kind != ActionEdit {
		t.Fatalf("res=%+v done=%v", res, done)
	}

	s = NewItemActionScreen(actionItems(), false)
	s.HandleEvent(Key(KeyEnter))
	s.HandleEvent(Key(KeyDown))
	s.HandleEvent(Key(KeyDown)) // Close
	res, done = s.HandleEvent(Key(KeyEnter))
	if !done || res.Value.Kind != ActionClose {
		t.Fatalf("res=%+v done=%v", res, done)
	}
}

func TestItemActionsPopupCancelRowReturnsToBrowsing(t *testing.T) {
	s := NewItemActionScreen(actionItems(), false)
	s.HandleEvent(Key(KeyEnter))
	s.HandleEvent(Key(KeyUp)) // wraps to the Cancel row
	if _, done := s.HandleEvent(Key(KeyEnter)); done {
		t.Fatal("cancel row must not finish the screen")
	}
	// Back in browsing: Esc quits.
	res, done := s.HandleEvent(Key(KeyEsc))
	if !done || !res.Cancelled {
		t.Errorf("res=%+v done=%v", res, done)
	}
}

func TestItemActionsPopupEscReturnsToBrowsing(t *testing.T) {
	s := NewItemActionScreen(actionItems(), false)
	s.HandleEvent(Key(KeyEnter))
	if _, done := s.HandleEvent(Key(KeyEsc)); done {
		t.Fatal("esc in popup must not finish the screen")
	}
	res, done := s.HandleEvent(Key(KeyEsc))
	if !done || !res.Cancelled {
		t.Errorf("res=%+v done=%v", res, done)
	}
}

func TestItemActionsFilterBySearch(t *testing.T) {
	s := NewItemActionScreen(actionItems(), false)
	s.HandleEvent(Rune('f'))
	for _, r := range "docs" {
		s.HandleEvent(Rune(r))
	}
	s.HandleEvent(Key(KeyEnter))
	if len(s.visible) != 1 || s.items[s.visible[0]].Title != "Ship docs" {
		t.Fatalf("visible = %v", s.visible)
	}

	// 'c' clears the filter.
	s.HandleEvent(Rune('c'))
	if len(s.visible) != 2 {
		t.Errorf("visible after clear = %v", s.visible)
	}
}

func TestItemActionsSearchMatchesBody(t *testing.T) {
	s := NewItemActionScreen(actionItems(), false)
	s.HandleEvent(Rune('f'))
	for _, r := range "SUBMIT" {
		s.HandleEvent(Rune(r))
	}
	s.HandleEvent(Key(KeyEnter))
	if len(s.visible) != 1 || s.items[s.visible[0]].Title != "Fix login" {
		t.Fatalf("visible = %v", s.visible)
	}
}

func TestItemActionsFilterEscDiscards(t *testing.T) {
	s := NewItemActionScreen(actionItems(), false)
	s.HandleEvent(Rune('f'))
	for _, r := range "docs" {
		s.HandleEvent(Rune(r))
	}
	s.HandleEvent(Key(KeyEsc))
	if !s.filter.IsEmpty() {
		t.Errorf("filter = %+v", s.filter)
	}
	if len(s.visible) != 2 {
		t.Errorf("visible = %v", s.visible)
	}
}

func TestItemActionsCtrlCFromAnyState(t *testing.T) {
	s := NewItemActionScreen(actionItems(), false)
	s.HandleEvent(Key(KeyEnter)) // popup
	res, done := s.HandleEvent(Key(KeyCtrlC))
	if !done || !res.Cancelled {
		t.Fatalf("popup: res=%+v done=%v", res, done)
	}

	s = NewItemActionScreen(actionItems(), false)
	s.HandleEvent(Rune('f'))
	res, done = s.HandleEvent(Key(KeyCtrlC))
	if !done || !res.Cancelled {
		t.Fatalf("filter: res=%+v done=%v", res, done)
	}
}

func TestItemActionsEnterOnEmptyListDoesNothing(t *testing.T) {
	s := NewItemActionScreen(nil, false)
	if _, done := s.HandleEvent(Key(KeyEnter)); done {
		t.Fatal("enter on an empty list must not finish")
	}
	if s.state != iaBrowsing {
		t.Errorf("state = %v", s.state)
	}
}
