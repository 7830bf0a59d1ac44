package tui

import "testing"

func TestTextInputInitialCursorIsCharCount(t *testing.T) {
	in := NewTextInput().WithInitial("日本語")
	if in.Cursor() != 3 {
		t.Fatalf("cursor = %d, want 3", in.Cursor())
	}
	in.HandleKey(Rune('!'))
	if in.Value() != "日本語!" {
		t.Errorf("value = %q", in.Value())
	}
}

func TestTextInputEditMultiByte(t *testing.T) {
	in := NewTextInput().WithInitial("a日b")
	in.HandleKey(Key(KeyLeft)) // cursor between 日 and b
	in.HandleKey(Rune('X'))
	if in.Value() != "a日Xb" {
		t.Fatalf("value = %q", in.Value())
	}
	in.HandleKey(Key(KeyBackspace))
	in.HandleKey(Key(KeyBackspace))
	if in.Value() != "ab" {
		t.Errorf("value = %q", in.Value())
	}
}

func TestTextInputHomeEndDelete(t *testing.T) {
	in := NewTextInput().WithInitial("über")
	in.HandleKey(Key(KeyHome))
	if in.Cursor() != 0 {
		t.Fatalf("cursor = %d", in.Cursor())
	}
	in.HandleKey(Key(KeyDelete))
	if in.Value() != "ber" {
		t.Errorf("value = %q", in.Value())
	}
	in.HandleKey(Key(KeyEnd))
	if in.Cursor() != 3 {
		t.Errorf("cursor = %d", in.Cursor())
	}
}

func TestTextInputInsertTextFlattensNewlines(t *testing.T) {
	in := NewTextInput()
	in.InsertText("one\ntwo\r\nthree")
	if in.Value() != "one two three" {
		t.Errorf("value = %q", in.Value())
	}
	if in.Cursor() != len([]rune("one two three")) {
		t.Errorf("cursor = %d", in.Cursor())
	}
}

func TestTextInputCtrlU(t *testing.T) {
	in := NewTextInput().WithInitial("anything at all")
	if !in.HandleKey(Key(KeyCtrlU)) {
		t.Fatal("ctrl+u should be consumed")
	}
	if in.Value() != "" || in.Cursor() != 0 {
		t.Errorf("value=%q cursor=%d", in.Value(), in.Cursor())
	}
}

func TestTextInputCtrlWDeletesWord(t *testing.T) {
	in := NewTextInput().WithInitial("one two   ")
	in.HandleKey(Key(KeyCtrlW))
	if in.Value() != "one " {
		t.Fatalf("value = %q", in.Value())
	}
	in.HandleKey(Key(KeyCtrlW))
	if in.Value() != "" {
		t.Errorf("value = %q", in.Value())
	}
}

func TestTextInputDeclinesOtherControlKeys(t *testing.T) {
	in := NewTextInput().WithInitial("keep")
	for _, code := range []KeyCode{KeyCtrlC, KeyCtrlS, KeyCtrlOther, KeyEnter, KeyEsc, KeyTab} {
		if in.HandleKey(Key(code)) {
			t.Errorf("key %d should not be consumed", code)
		}
	}
	if in.Value() != "keep" {
		t.Errorf("value = %q", in.Value())
	}
}

func TestTextInputCursorBounds(t *testing.T) {
	in := NewTextInput().WithInitial("ab")
	in.HandleKey(Key(KeyRight)) // already at end
	if in.Cursor() != 2 {
		t.Errorf("cursor = %d", in.Cursor())
	}
	in.HandleKey(Key(KeyHome))
	in.HandleKey(Key(KeyLeft))
	if in.Cursor() != 0 {
		t.Errorf("cursor = %d", in.Cursor())
	}
	in.HandleKey(Key(KeyBackspace)) // no-op at start
	if in.Value() != "ab" {
		t.Errorf("value = %q", in.Value())
	}
}
