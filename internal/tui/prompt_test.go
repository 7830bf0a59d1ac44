package tui

import "testing"

func TestPromptEnterRequiresText(t *testing.T) {
	p := NewPromptScreen("Name:", "")
	if _, done := p.HandleEvent(Key(KeyEnter)); done {
		t.Fatal("empty input should not finish")
	}
	p.HandleEvent(Rune(' '))
	if _, done := p.HandleEvent(Key(KeyEnter)); done {
		t.Fatal("blank input should not finish")
	}
	p.HandleEvent(Rune('a'))
	res, done := p.HandleEvent(Key(KeyEnter))
	if !done || res.Cancelled || res.Value != " a" {
		t.Errorf("res=%+v done=%v", res, done)
	}
}

func TestPromptPaste(t *testing.T) {
	p := NewPromptScreen("Name:", "")
	p.HandleEvent(PasteEvent{Text: "pasted\ntext"})
	res, done := p.HandleEvent(Key(KeyEnter))
	if !done || res.Value != "pasted text" {
		t.Errorf("res=%+v done=%v", res, done)
	}
}

func TestPromptCancel(t *testing.T) {
	for _, code := range []KeyCode{KeyEsc, KeyCtrlC} {
		res, done := NewPromptScreen("?", "seed").HandleEvent(Key(code))
		if !done || !res.Cancelled {
			t.Errorf("key %d: res=%+v done=%v", code, res, done)
		}
	}
}
