// Package tui implements the interactive screens: a small screen contract
// run on top of bubbletea, pure widgets, and the composed screens built
// from them. Widgets and screens never touch the terminal directly, so the
// whole package is testable by feeding events and reading rendered strings.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Result is the outcome of a finished screen: a value, or cancellation.
type Result[T any] struct {
	Value     T
	Cancelled bool
}

// Done wraps a successful result.
func Done[T any](v T) Result[T] { return Result[T]{Value: v} }

// Cancelled is the result of a user abort (Esc or Ctrl+C).
func Cancelled[T any]() Result[T] { return Result[T]{Cancelled: true} }

// Screen is a pure interactive state machine. HandleEvent returns the final
// result and true once the screen is finished; View renders the screen for
// the given terminal size. Implementations must resolve Ctrl+C as a
// cancelled result from every internal state.
type Screen[T any] interface {
	HandleEvent(Event) (Result[T], bool)
	View(width, height int) string
}

type screenModel[T any] struct {
	screen   Screen[T]
	width    int
	height   int
	result   Result[T]
	finished bool
}

func (m *screenModel[T]) Init() tea.Cmd { return nil }

func (m *screenModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.dispatch(ResizeEvent{Width: msg.Width, Height: msg.Height})
	case tea.KeyMsg:
		for _, ev := range eventsFromKeyMsg(msg) {
			if m.dispatch(ev) {
				break
			}
		}
	}
	if m.finished {
		return m, tea.Quit
	}
	return m, nil
}

func (m *screenModel[T]) dispatch(ev Event) bool {
	if m.finished {
		return true
	}
	res, done := m.screen.HandleEvent(ev)
	if done {
		m.result = res
		m.finished = true
	}
	return done
}

func (m *screenModel[T]) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	return m.screen.View(m.width, m.height)
}

// Run drives a screen on the terminal until it finishes. bubbletea owns the
// raw-mode guard: the alt screen and terminal state are restored on normal
// exit, error, and panic alike. ok is false when the user cancelled.
func Run[T any](screen Screen[T]) (value T, ok bool, err error) {
	applyColorProfilePreference()
	applyThemePreference()

	m := &screenModel[T]{screen: screen}
	out, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return value, false, err
	}
	final := out.(*screenModel[T])
	if !final.finished || final.result.Cancelled {
		return value, false, nil
	}
	return final.result.Value, true, nil
}
