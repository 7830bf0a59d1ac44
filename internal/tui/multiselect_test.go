package tui

import (
	"reflect"
	"testing"
)

func TestMultiSelectToggleAndSelected(t *testing.T) {
	m := NewMultiSelect([]string{"bug", "auth", "ui"})
	m.Toggle()
	m.HandleKey(Key(KeyDown))
	m.HandleKey(Rune(' '))
	got := m.Selected()
	if !reflect.DeepEqual(got, []string{"bug", "auth"}) {
		t.Errorf("selected = %v", got)
	}
}

func TestMultiSelectActionItemNotToggleable(t *testing.T) {
	m := NewMultiSelect([]string{"bug"}).WithActionItemLast("+ Add new...")
	m.HandleKey(Key(KeyDown))
	if !m.OnActionItem() {
		t.Fatal("cursor should be on the action item")
	}
	m.Toggle()
	if len(m.Selected()) != 0 {
		t.Error("action item must not toggle")
	}
}

func TestMultiSelectActionItemExcludedFromSelected(t *testing.T) {
	m := NewMultiSelect([]string{"a", "b"}).WithActionItemLast("+ Add new...")
	m.Toggle()
	got := m.Selected()
	if !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("selected = %v", got)
	}
}

func TestMultiSelectNavigationWrapsOverActionItem(t *testing.T) {
	m := NewMultiSelect([]string{"a", "b"}).WithActionItemLast("+ Add new...")
	m.HandleKey(Key(KeyUp)) // wraps to the action item
	if !m.OnActionItem() {
		t.Errorf("cursor = %d", m.Cursor())
	}
	m.HandleKey(Key(KeyDown)) // wraps back to the top
	if m.Cursor() != 0 {
		t.Errorf("cursor = %d", m.Cursor())
	}
}

func TestMultiSelectAddInsertsBeforeActionItem(t *testing.T) {
	m := NewMultiSelect([]string{"a"}).WithActionItemLast("+ Add new...")
	m.Add("fresh")
	if got := m.Selected(); !reflect.DeepEqual(got, []string{"fresh"}) {
		t.Errorf("selected = %v", got)
	}
	if m.Cursor() != 1 || m.OnActionItem() {
		t.Errorf("cursor = %d", m.Cursor())
	}
	if m.Len() != 3 {
		t.Errorf("len = %d", m.Len())
	}
	// The action row must still be last and still act like one.
	m.HandleKey(Key(KeyDown))
	if !m.OnActionItem() {
		t.Error("action item lost its position")
	}
}

func TestMultiSelectAddDedupes(t *testing.T) {
	m := NewMultiSelect([]string{"a", "b"}).WithActionItemLast("+ Add new...")
	m.Add("b")
	if m.Len() != 3 {
		t.Errorf("len = %d", m.Len())
	}
	if got := m.Selected(); !reflect.DeepEqual(got, []string{"b"}) {
		t.Errorf("selected = %v", got)
	}
	if m.Cursor() != 1 {
		t.Errorf("cursor = %d", m.Cursor())
	}
}

func TestMultiSelectConfirmCancel(t *testing.T) {
	m := NewMultiSelect([]string{"a"})
	if ev := m.HandleKey(Key(KeyEnter)); ev != MultiConfirm {
		t.Errorf("enter gave %v", ev)
	}
	if ev := m.HandleKey(Key(KeyEsc)); ev != MultiCancel {
		t.Errorf("esc gave %v", ev)
	}
}
