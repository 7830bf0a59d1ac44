package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"qtask/internal/model"
	"qtask/internal/store"
	"qtask/internal/tui"
)

func newUpdateCmd(app *App) *cobra.Command {
	var title string
	var labels []string
	var category string
	var clearCategory bool

	cmd := &cobra.Command{
		Use:   "update <item-id>",
		Short: "Update an item's title, labels, or category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.Load()
			if err != nil {
				return err
			}
			if clearCategory && cmd.Flags().Changed("category") {
				return fmt.Errorf("--category and --clear-category are mutually exclusive")
			}

			path, err := cfg.FindByID(args[0])
			if err != nil {
				return err
			}
			it, err := model.Load(path)
			if err != nil {
				return err
			}

			changed := false
			titleChanged := false
			categoryChanged := false

			noFlags := !cmd.Flags().Changed("title") && len(labels) == 0 &&
				!cmd.Flags().Changed("category") && !clearCategory
			if noFlags && app.interactive(cfg) {
				value, ok, err := tui.PromptForInput("New title", it.Title)
				if err != nil {
					return err
				}
				if !ok {
					return nil
				}
				if value = strings.TrimSpace(value); value != it.Title {
					it.Title = value
					changed = true
					titleChanged = true
				}
			}

			if cmd.Flags().Changed("title") {
				title = strings.TrimSpace(title)
				if title == "" {
					return fmt.Errorf("the title cannot be blank")
				}
				if title != it.Title {
					it.Title = title
					changed = true
					titleChanged = true
				}
			}
			for _, l := range labels {
				if !hasLabel(it, l) {
					it.AddLabel(l)
					changed = true
				}
			}
			if cmd.Flags().Changed("category") && category != it.Category {
				it.Category = category
				changed = true
				categoryChanged = true
			}
			if clearCategory && it.Category != "" {
				it.Category = ""
				changed = true
				categoryChanged = true
			}

			if !changed {
				fmt.Println("No changes to apply.")
				return nil
			}

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
				newPath, warnings, err := cfg.MoveToCategory(path, it.Category)
				if err != nil {
					return err
				}
				printWarnings(warnings)
				path = newPath
			}

			printSuccess("Updated %s", cfg.RelativePath(path))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title (renames the item file)")
	cmd.Flags().StringArrayVarP(&labels, "label", "l", nil, "Label to add (repeatable)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category (moves the item file)")
	cmd.Flags().BoolVar(&clearCategory, "clear-category", false, "Move the item back to the stack root")
	return cmd
}
