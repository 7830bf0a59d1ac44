package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PromptScreen asks for one line of text. Enter only finishes with a
// non-blank value; Esc and Ctrl+C cancel.
type PromptScreen struct {
	prompt string
	input  TextInput
}

// NewPromptScreen builds the screen, optionally seeded with initial text.
func NewPromptScreen(prompt, initial string) *PromptScreen {
	return &PromptScreen{prompt: prompt, input: NewTextInput().WithInitial(initial)}
}

// HandleEvent implements Screen[string].
func (p *PromptScreen) HandleEvent(ev Event) (Result[string], bool) {
	switch ev := ev.(type) {
	case PasteEvent:
		p.input.InsertText(ev.Text)
	case KeyEvent:
		switch ev.Code {
		case KeyCtrlC, KeyEsc:
			return Cancelled[string](), true
		case KeyEnter:
			if strings.TrimSpace(p.input.Value()) != "" {
				return Done(p.input.Value()), true
			}
		default:
			p.input.HandleKey(ev)
		}
	}
	return Result[string]{}, false
}

// View implements Screen[string].
func (p *PromptScreen) View(width, height int) string {
	out := lipgloss.NewStyle().Bold(true).Render(p.prompt) + "\n\n"
	out += renderInputLine(width-2, p.input.View(width-4, true)) + "\n\n"
	out += styleMuted().Render("enter: confirm   esc: cancel")
	return normalizePane(out, width, height)
}

// PromptForInput runs a prompt screen; ok is false on cancel.
func PromptForInput(prompt, initial string) (string, bool, error) {
	return Run[string](NewPromptScreen(prompt, initial))
}
