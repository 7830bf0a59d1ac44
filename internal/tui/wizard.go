package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WizardResult is the completed new-item form.
type WizardResult struct {
	Title       string
	Description string
	Labels      []string
	Category    string // empty means none
	Attachments []string
}

type wizardFocus int

const (
	panelTitle wizardFocus = iota
	panelDescription
	panelLabels
	panelCategory
	panelAttachments
	panelCount
)

type subModeKind int

const (
	subNewLabel subModeKind = iota
	subNewCategory
)

type wizardSubMode struct {
	kind  subModeKind
	input TextInput
}

const (
	categoryNone   = "(none)"
	categoryCreate = "+ Create new..."
	labelCreate    = "+ Add new..."
)

// NewItemWizard is a single composite form: title, description, labels,
// category, and attachments panels, cycled with Tab. Ctrl+S saves once the
// title is non-blank; Esc cancels. The "new label" and "new category" rows
// open a modal sub-mode whose input commits on Enter (when non-blank) and
// discards on Esc; Ctrl+C cancels the whole wizard from any state.
type NewItemWizard struct {
	title       TextInput
	description MultiLineText
	labels      MultiSelect
	categories  []string // full rows: (none), + Create new..., then names
	catCursor   int
	catChosen   int
	attachInput TextInput
	attachments []string

	focus wizardFocus
	sub   *wizardSubMode
}

// NewNewItemWizard builds the form. availableLabels and availableCategories
// come from the existing items; seed prefills the form (used by edit).
func NewNewItemWizard(availableLabels, availableCategories []string, seed WizardResult) *NewItemWizard {
	w := &NewItemWizard{
		title:       NewTextInput().WithInitial(seed.Title),
		description: NewMultiLineText(60, 6),
		labels:      NewMultiSelect(availableLabels).WithActionItemLast(labelCreate),
		categories:  append([]string{categoryNone, categoryCreate}, availableCategories...),
		attachInput: NewTextInput(),
		attachments: append([]string(nil), seed.Attachments...),
	}
	w.description.SetValue(seed.Description)
	w.description.Blur() // focus starts on the title panel
	w.labels.SetSelected(seed.Labels)
	if seed.Category != "" {
		for i, c := range w.categories {
			if i >= 2 && c == seed.Category {
				w.catChosen = i
				w.catCursor = i
			}
		}
	}
	return w
}

// CanSave reports whether the form is complete enough to save: the title
// must be non-blank.
func (w *NewItemWizard) CanSave() bool {
	return strings.TrimSpace(w.title.Value()) != ""
}

func (w *NewItemWizard) result() WizardResult {
	res := WizardResult{
		Title:       strings.TrimSpace(w.title.Value()),
		Description: w.description.Value(),
		Labels:      w.labels.Selected(),
		Attachments: append([]string(nil), w.attachments...),
	}
	if w.catChosen >= 2 {
		res.Category = w.categories[w.catChosen]
	}
	return res
}

// HandleEvent implements Screen[WizardResult].
func (w *NewItemWizard) HandleEvent(ev Event) (Result[WizardResult], bool) {
	switch ev := ev.(type) {
	case PasteEvent:
		w.handlePaste(ev.Text)
		return Result[WizardResult]{}, false
	case KeyEvent:
		return w.handleKey(ev)
	}
	return Result[WizardResult]{}, false
}

func (w *NewItemWizard) handlePaste(text string) {
	if w.sub != nil {
		w.sub.input.InsertText(text)
		return
	}
	switch w.focus {
	case panelTitle:
		w.title.InsertText(text)
	case panelDescription:
		w.description.InsertText(text)
	case panelAttachments:
		w.attachInput.InsertText(text)
	}
}

func (w *NewItemWizard) handleKey(k KeyEvent) (Result[WizardResult], bool) {
	if k.Code == KeyCtrlC {
		return Cancelled[WizardResult](), true
	}

	if w.sub != nil {
		w.handleSubModeKey(k)
		return Result[WizardResult]{}, false
	}

	switch k.Code {
	case KeyCtrlS:
		if w.CanSave() {
			return Done(w.result()), true
		}
		return Result[WizardResult]{}, false
	case KeyEsc:
		return Cancelled[WizardResult](), true
	case KeyTab:
		w.setFocus((w.focus + 1) % panelCount)
		return Result[WizardResult]{}, false
	case KeyShiftTab:
		w.setFocus((w.focus + panelCount - 1) % panelCount)
		return Result[WizardResult]{}, false
	}

	switch w.focus {
	case panelTitle:
		w.title.HandleKey(k)
	case panelDescription:
		w.description.HandleKey(k)
	case panelLabels:
		w.handleLabelsKey(k)
	case panelCategory:
		w.handleCategoryKey(k)
	case panelAttachments:
		w.handleAttachmentsKey(k)
	}
	return Result[WizardResult]{}, false
}

func (w *NewItemWizard) handleSubModeKey(k KeyEvent) {
	switch k.Code {
	case KeyEsc:
		w.sub = nil
	case KeyEnter:
		value := strings.TrimSpace(w.sub.input.Value())
		if value == "" {
			return
		}
		if w.sub.kind == subNewLabel {
			w.labels.Add(value)
		} else {
			w.setCategory(value)
		}
		w.sub = nil
	default:
		w.sub.input.HandleKey(k)
	}
}

// setFocus moves the panel focus and keeps the description editor's focus
// state in step, so rendering stays read-only.
func (w *NewItemWizard) setFocus(f wizardFocus) {
	w.focus = f
	if f == panelDescription {
		w.description.Focus()
	} else {
		w.description.Blur()
	}
}

// setCategory selects name in the category panel, appending it when new.
func (w *NewItemWizard) setCategory(name string) {
	for i := 2; i < len(w.categories); i++ {
		if w.categories[i] == name {
			w.catChosen = i
			w.catCursor = i
			return
		}
	}
	w.categories = append(w.categories, name)
	w.catChosen = len(w.categories) - 1
	w.catCursor = w.catChosen
}

// handleLabelsKey: Enter on the action row opens label entry; on any other
// row it toggles the checkbox, same as Space.
func (w *NewItemWizard) handleLabelsKey(k KeyEvent) {
	if k.Code == KeyEnter {
		if w.labels.OnActionItem() {
			w.sub = &wizardSubMode{kind: subNewLabel, input: NewTextInput()}
		} else {
			w.labels.Toggle()
		}
		return
	}
	w.labels.HandleKey(k)
}

func (w *NewItemWizard) handleCategoryKey(k KeyEvent) {
	switch {
	case k.Code == KeyUp || (k.Code == KeyRune && k.Rune == 'k'):
		if w.catCursor > 0 {
			w.catCursor--
		}
	case k.Code == KeyDown || (k.Code == KeyRune && k.Rune == 'j'):
		if w.catCursor < len(w.categories)-1 {
			w.catCursor++
		}
	case k.Code == KeyEnter:
		switch w.catCursor {
		case 0:
			w.catChosen = 0
		case 1:
			w.sub = &wizardSubMode{kind: subNewCategory, input: NewTextInput()}
		default:
			w.catChosen = w.catCursor
		}
	}
}

func (w *NewItemWizard) handleAttachmentsKey(k KeyEvent) {
	switch k.Code {
	case KeyEnter:
		for _, p := range ParsePaths(w.attachInput.Value()) {
			w.attachments = append(w.attachments, p)
		}
		w.attachInput.Clear()
	case KeyBackspace:
		if w.attachInput.Value() == "" {
			if n := len(w.attachments); n > 0 {
				w.attachments = w.attachments[:n-1]
			}
			return
		}
		w.attachInput.HandleKey(k)
	default:
		w.attachInput.HandleKey(k)
	}
}

// View implements Screen[WizardResult].
func (w *NewItemWizard) View(width, height int) string {
	innerW := width - 6
	if innerW < 20 {
		innerW = 20
	}
	w.description.SetSize(innerW, 5)

	panels := []string{
		w.panel("Title", w.focus == panelTitle, renderInputLine(innerW, w.title.View(innerW-2, w.sub == nil && w.focus == panelTitle)), innerW),
		w.panel("Description", w.focus == panelDescription, w.description.View(), innerW),
		w.panel("Labels", w.focus == panelLabels, w.labels.View(innerW), innerW),
		w.panel("Category", w.focus == panelCategory, w.categoryView(innerW), innerW),
		w.panel("Attachments", w.focus == panelAttachments, w.attachmentsView(innerW), innerW),
	}

	save := "ctrl+s: save"
	if !w.CanSave() {
		save = "ctrl+s: save (needs a title)"
	}
	help := styleMuted().Render("tab: next panel   " + save + "   esc: cancel")

	base := normalizePane(strings.Join(panels, "\n")+"\n"+help, width, height)
	if w.sub != nil {
		return placeCentered(base, width, height, w.subModeBox())
	}
	return base
}

func (w *NewItemWizard) panel(title string, focused bool, content string, innerW int) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Padding(0, 1).
		Width(innerW + 2)
	header := lipgloss.NewStyle().Bold(true)
	if focused {
		border = border.BorderForeground(colorAccent)
		header = header.Foreground(colorAccent)
	}
	return border.Render(header.Render(title) + "\n" + content)
}

func (w *NewItemWizard) categoryView(width int) string {
	rows := make([]string, len(w.categories))
	for i, name := range w.categories {
		marker := "( ) "
		switch {
		case i == 1:
			marker = "    "
		case i == w.catChosen:
			marker = "(•) "
		}
		row := marker + name
		if i == w.catCursor {
			row = lipgloss.NewStyle().
				Foreground(colorSelectedFg).
				Background(colorSelectedBg).
				Bold(true).
				Render(fitLine("> "+row, width))
		} else {
			row = fitLine("  "+row, width)
		}
		rows[i] = row
	}
	return joinLines(rows)
}

func (w *NewItemWizard) attachmentsView(width int) string {
	var rows []string
	for _, a := range w.attachments {
		rows = append(rows, fitLine("• "+a, width))
	}
	rows = append(rows, renderInputLine(width, w.attachInput.View(width-2, w.sub == nil && w.focus == panelAttachments)))
	rows = append(rows, styleMuted().Render("enter: add paths   backspace on empty: remove last"))
	return joinLines(rows)
}

func (w *NewItemWizard) subModeBox() string {
	title := "New label"
	if w.sub.kind == subNewCategory {
		title = "New category"
	}
	content := renderInputLine(30, w.sub.input.View(28, true)) + "\n\n" +
		styleMuted().Render("enter: add   esc: discard")
	return renderModalBox(40, title, content)
}
