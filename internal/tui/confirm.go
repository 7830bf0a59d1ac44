package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// ConfirmDialog asks a yes/no question. No is the default so a reflexive
// Enter never confirms a destructive action.
type ConfirmDialog struct {
	message string
	yes     bool
}

// NewConfirmDialog builds a dialog with No selected.
func NewConfirmDialog(message string) *ConfirmDialog {
	return &ConfirmDialog{message: message}
}

// YesSelected reports which button is highlighted.
func (d *ConfirmDialog) YesSelected() bool { return d.yes }

// HandleEvent implements Screen[bool].
func (d *ConfirmDialog) HandleEvent(ev Event) (Result[bool], bool) {
	k, isKey := ev.(KeyEvent)
	if !isKey {
		return Result[bool]{}, false
	}

	switch {
	case k.Code == KeyRune && (k.Rune == 'y' || k.Rune == 'Y'):
		return Done(true), true
	case k.Code == KeyRune && (k.Rune == 'n' || k.Rune == 'N'):
		return Done(false), true
	case k.Code == KeyLeft || (k.Code == KeyRune && k.Rune == 'h'):
		d.yes = true
	case k.Code == KeyRight || (k.Code == KeyRune && k.Rune == 'l'):
		d.yes = false
	case k.Code == KeyTab:
		d.yes = !d.yes
	case k.Code == KeyEnter:
		return Done(d.yes), true
	case k.Code == KeyEsc || k.Code == KeyCtrlC:
		return Cancelled[bool](), true
	}
	return Result[bool]{}, false
}

// View implements Screen[bool].
func (d *ConfirmDialog) View(width, height int) string {
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	yesBtn := btnBase.Render("Yes")
	noBtn := btnActive.Render("No")
	if d.yes {
		yesBtn = btnActive.Render("Yes")
		noBtn = btnBase.Render("No")
	}

	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, yesBtn, sep, noBtn)
	help := styleMuted().Render("y/n   tab: focus   enter: select   esc: cancel")

	boxW := xansi.StringWidth(d.message) + 8
	if boxW < 28 {
		boxW = 28
	}
	if boxW > width-2 {
		boxW = width - 2
	}

	content := strings.Join([]string{d.message, "", controls, "", help}, "\n")
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 2).
		Width(boxW).
		Render(content)

	blank := ""
	if height > 1 {
		blank = strings.Repeat("\n", height-1)
	}
	return placeCentered(blank, width, height, box)
}
