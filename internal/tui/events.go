package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Event is the input union delivered to screens: a key press, a bracketed
// paste, or a terminal resize.
type Event interface{ isEvent() }

// KeyCode identifies a key press. Printable characters arrive as KeyRune;
// control chords the framework does not name arrive as KeyCtrlOther so
// widgets can decline them without guessing.
type KeyCode int

const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEsc
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyTab
	KeyShiftTab
	KeyCtrlC
	KeyCtrlS
	KeyCtrlU
	KeyCtrlW
	KeyCtrlOther
)

// KeyEvent is a single key press. Rune is valid only when Code == KeyRune.
type KeyEvent struct {
	Code KeyCode
	Rune rune
	Alt  bool
}

// PasteEvent carries bracketed-paste text.
type PasteEvent struct{ Text string }

// ResizeEvent reports the new terminal size.
type ResizeEvent struct{ Width, Height int }

func (KeyEvent) isEvent()    {}
func (PasteEvent) isEvent()  {}
func (ResizeEvent) isEvent() {}

// Rune builds a printable-key event, a convenience for tests.
func Rune(r rune) KeyEvent { return KeyEvent{Code: KeyRune, Rune: r} }

// Key builds a special-key event, a convenience for tests.
func Key(code KeyCode) KeyEvent { return KeyEvent{Code: code} }

// eventsFromKeyMsg translates a bubbletea key message into framework events.
// A KeyRunes message may batch several typed characters; each becomes its
// own event so widget cursor arithmetic stays per-character.
func eventsFromKeyMsg(msg tea.KeyMsg) []Event {
	if msg.Paste {
		return []Event{PasteEvent{Text: string(msg.Runes)}}
	}

	switch msg.Type {
	case tea.KeyRunes:
		evs := make([]Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			evs = append(evs, KeyEvent{Code: KeyRune, Rune: r, Alt: msg.Alt})
		}
		return evs
	case tea.KeySpace:
		return []Event{KeyEvent{Code: KeyRune, Rune: ' ', Alt: msg.Alt}}
	case tea.KeyEnter:
		return []Event{KeyEvent{Code: KeyEnter}}
	case tea.KeyEsc:
		return []Event{KeyEvent{Code: KeyEsc}}
	case tea.KeyBackspace:
		return []Event{KeyEvent{Code: KeyBackspace, Alt: msg.Alt}}
	case tea.KeyDelete:
		return []Event{KeyEvent{Code: KeyDelete}}
	case tea.KeyUp:
		return []Event{KeyEvent{Code: KeyUp, Alt: msg.Alt}}
	case tea.KeyDown:
		return []Event{KeyEvent{Code: KeyDown, Alt: msg.Alt}}
	case tea.KeyLeft:
		return []Event{KeyEvent{Code: KeyLeft, Alt: msg.Alt}}
	case tea.KeyRight:
		return []Event{KeyEvent{Code: KeyRight, Alt: msg.Alt}}
	case tea.KeyHome:
		return []Event{KeyEvent{Code: KeyHome}}
	case tea.KeyEnd:
		return []Event{KeyEvent{Code: KeyEnd}}
	case tea.KeyTab:
		return []Event{KeyEvent{Code: KeyTab}}
	case tea.KeyShiftTab:
		return []Event{KeyEvent{Code: KeyShiftTab}}
	case tea.KeyCtrlC:
		return []Event{KeyEvent{Code: KeyCtrlC}}
	case tea.KeyCtrlS:
		return []Event{KeyEvent{Code: KeyCtrlS}}
	case tea.KeyCtrlU:
		return []Event{KeyEvent{Code: KeyCtrlU}}
	case tea.KeyCtrlW:
		return []Event{KeyEvent{Code: KeyCtrlW}}
	default:
		return []Event{KeyEvent{Code: KeyCtrlOther}}
	}
}
