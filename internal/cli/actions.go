package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"qtask/internal/editor"
	"qtask/internal/model"
	"qtask/internal/store"
	"qtask/internal/tui"
)

func newActionsCmd(app *App) *cobra.Command {
	var closed bool

	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Browse items and act on them interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.Load()
			if err != nil {
				return err
			}
			if !app.interactive(cfg) {
				return fmt.Errorf("actions needs an interactive terminal")
			}
			return runActions(app, cfg, closed)
		},
	}

	cmd.Flags().BoolVar(&closed, "closed", false, "Browse archived items instead of open ones")
	return cmd
}

// runActions loops the actions screen until the user quits: each executed
// action returns to a freshly loaded list, so moves and deletes are
// reflected immediately.
func runActions(app *App, cfg *store.Config, archived bool) error {
	for {
		paths, err := cfg.WalkItems()
		if archived {
			paths, err = cfg.WalkArchived()
		}
		if err != nil {
			return err
		}
		items := store.LoadItems(paths)

		action, ok, err := tui.Run[tui.ItemAction](tui.NewItemActionScreen(items, archived))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := executeAction(cfg, action); err != nil {
			return err
		}
	}
}

func executeAction(cfg *store.Config, action tui.ItemAction) error {
	switch action.Kind {
	case tui.ActionView:
		ed, ok := cfg.Editor()
		if !ok {
			return fmt.Errorf("no editor configured; set editor in %s or $EDITOR",
				store.ProjectConfigFile)
		}
		return editor.Open(ed, action.Path)

	case tui.ActionEdit:
		return editItem(cfg, action.Path)

	case tui.ActionClose:
		newPath, warnings, err := closeItem(cfg, action.Path)
		if err != nil {
			return err
		}
		printWarnings(warnings)
		printSuccess("Closed %s", cfg.RelativePath(newPath))
		return nil

	case tui.ActionReopen:
		newPath, warnings, err := reopenItem(cfg, action.Path)
		if err != nil {
			return err
		}
		printWarnings(warnings)
		printSuccess("Reopened %s", cfg.RelativePath(newPath))
		return nil

	case tui.ActionDelete:
		return deleteItem(cfg, action.Path)

	case tui.ActionCopyPath:
		if err := tui.CopyToClipboard(action.Path); err != nil {
			return err
		}
		printSuccess("Copied %s", cfg.RelativePath(action.Path))
		return nil
	}
	return nil
}

// editItem reopens the wizard prefilled with the item and applies the edits:
// save, rename on title change, move on category change, then any new
// attachments.
func editItem(cfg *store.Config, path string) error {
	it, err := model.Load(path)
	if err != nil {
		return err
	}

	knownLabels, knownCategories, err := knownValues(cfg)
	if err != nil {
		return err
	}
	seed := tui.WizardResult{
		Title:       it.Title,
		Description: it.Body,
		Labels:      it.Labels,
		Category:    it.Category,
	}
	res, ok, err := tui.Run[tui.WizardResult](
		tui.NewNewItemWizard(knownLabels, knownCategories, seed))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	titleChanged := res.Title != it.Title
	categoryChanged := res.Category != it.Category

	it.Title = res.Title
	it.Body = res.Description
	it.Labels = res.Labels
	it.Category = res.Category

	var warnings []string
	for _, input := range res.Attachments {
		name, err := store.ProcessAttachment(it, input)
		if err != nil {
			warnings = append(warnings, err.Error())
			continue
		}
		it.AddAttachment(name)
	}
	printWarnings(warnings)

	if err := it.Save(path); err != nil {
		return err
	}
	if titleChanged {
		path, err = store.RenameItem(path, it.Filename())
		if err != nil {
			return err
		}
	}
	if categoryChanged && it.Status == model.StatusOpen {
		newPath, moveWarnings, err := cfg.MoveToCategory(path, it.Category)
		if err != nil {
			return err
		}
		printWarnings(moveWarnings)
		path = newPath
	}

	printSuccess("Updated %s", cfg.RelativePath(path))
	return nil
}

func deleteItem(cfg *store.Config, path string) error {
	it, err := model.Load(path)
	if err != nil {
		return err
	}

	yes, ok, err := tui.Run[bool](tui.NewConfirmDialog(
		fmt.Sprintf("Delete %q? It moves to the trash.", it.Title)))
	if err != nil {
		return err
	}
	if !ok || !yes {
		return nil
	}

	_, warnings, err := cfg.TrashItem(path)
	if err != nil {
		return err
	}
	printWarnings(warnings)
	printSuccess("Deleted %s", it.ID)
	return nil
}
