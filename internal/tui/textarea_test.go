package tui

import "testing"

func TestMultiLineTextViewKeepsFocusState(t *testing.T) {
	m := NewMultiLineText(20, 3)
	m.Blur()
	_ = m.View()
	if m.Focused() {
		t.Error("rendering focused a blurred editor")
	}
	m.Focus()
	_ = m.View()
	if !m.Focused() {
		t.Error("rendering blurred a focused editor")
	}
}

func TestMultiLineTextDeclinesScreenKeys(t *testing.T) {
	m := NewMultiLineText(20, 3)
	for _, code := range []KeyCode{KeyTab, KeyShiftTab, KeyEsc, KeyCtrlC, KeyCtrlS, KeyCtrlOther} {
		if m.HandleKey(Key(code)) {
			t.Errorf("key %d should be declined", code)
		}
	}
	if !m.HandleKey(Rune('a')) {
		t.Error("printable input should be consumed")
	}
	if m.Value() != "a" {
		t.Errorf("value = %q", m.Value())
	}
}
