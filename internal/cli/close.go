package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"qtask/internal/model"
	"qtask/internal/store"
	"qtask/internal/tui"
)

func newCloseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "close [item-id]",
		Short: "Close an item and move it to the archive",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.Load()
			if err != nil {
				return err
			}
			path, err := resolveItemArg(app, cfg, args, false, "Close which item?")
			if err != nil || path == "" {
				return err
			}
			newPath, warnings, err := closeItem(cfg, path)
			if err != nil {
				return err
			}
			printWarnings(warnings)
			printSuccess("Closed %s", cfg.RelativePath(newPath))
			return nil
		},
	}
}

func newReopenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reopen [item-id]",
		Short: "Reopen a closed item and restore it from the archive",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.Load()
			if err != nil {
				return err
			}
			path, err := resolveItemArg(app, cfg, args, true, "Reopen which item?")
			if err != nil || path == "" {
				return err
			}
			newPath, warnings, err := reopenItem(cfg, path)
			if err != nil {
				return err
			}
			printWarnings(warnings)
			printSuccess("Reopened %s", cfg.RelativePath(newPath))
			return nil
		},
	}
}

// resolveItemArg turns an optional id argument into an item path. Without an
// argument it offers an interactive pick over open or archived items; the
// empty path with a nil error means the user cancelled.
func resolveItemArg(app *App, cfg *store.Config, args []string, archived bool, prompt string) (string, error) {
	if len(args) > 0 {
		return cfg.FindByID(args[0])
	}
	if !app.interactive(cfg) {
		return "", fmt.Errorf("an item id is required without an interactive terminal")
	}

	paths, err := cfg.WalkItems()
	if archived {
		paths, err = cfg.WalkArchived()
	}
	if err != nil {
		return "", err
	}
	items := store.LoadItems(paths)
	if len(items) == 0 {
		return "", tui.ErrNoChoices
	}

	rows := make([]string, len(items))
	for i := range items {
		rows[i] = listRow(&items[i])
	}
	idx, ok, err := tui.SelectFromList(prompt, rows)
	if err != nil || !ok {
		return "", err
	}
	return items[idx].Path, nil
}

func closeItem(cfg *store.Config, path string) (string, []string, error) {
	it, err := model.Load(path)
	if err != nil {
		return "", nil, err
	}
	if it.Status == model.StatusClosed {
		return "", nil, fmt.Errorf("item %s is already closed", it.ID)
	}
	it.Status = model.StatusClosed
	if err := it.Save(path); err != nil {
		return "", nil, err
	}
	return cfg.ArchiveItem(path)
}

func reopenItem(cfg *store.Config, path string) (string, []string, error) {
	it, err := model.Load(path)
	if err != nil {
		return "", nil, err
	}
	if it.Status == model.StatusOpen {
		return "", nil, fmt.Errorf("item %s is already open", it.ID)
	}
	it.Status = model.StatusOpen
	if err := it.Save(path); err != nil {
		return "", nil, err
	}
	return cfg.UnarchiveItem(path, it.Category)
}
