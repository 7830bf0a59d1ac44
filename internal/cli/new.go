package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"qtask/internal/editor"
	"qtask/internal/model"
	"qtask/internal/store"
	"qtask/internal/tui"
)

func newNewCmd(app *App) *cobra.Command {
	var labels []string
	var category string

	cmd := &cobra.Command{
		Use:   "new [title]",
		Short: "Create a new item",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.Load()
			if err != nil {
				return err
			}

			seed := tui.WizardResult{Labels: labels, Category: category}
			if len(args) > 0 {
				seed.Title = args[0]
			}

			var form tui.WizardResult
			if app.interactive(cfg) {
				knownLabels, knownCategories, err := knownValues(cfg)
				if err != nil {
					return err
				}
				res, ok, err := tui.Run[tui.WizardResult](
					tui.NewNewItemWizard(knownLabels, knownCategories, seed))
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(os.Stderr, "Cancelled.")
					return nil
				}
				form = res
			} else {
				if strings.TrimSpace(seed.Title) == "" {
					return fmt.Errorf("a title is required without the interactive wizard")
				}
				form = seed
			}

			author, ok := cfg.UserName()
			if !ok {
				return fmt.Errorf("no user name configured; set user_name in %s or the global config",
					store.ProjectConfigFile)
			}

			it := model.NewItem(model.FrontMatter{
				ID:        store.GenerateID(cfg.IDPattern()),
				Title:     form.Title,
				Author:    author,
				CreatedAt: time.Now().UTC(),
				Labels:    form.Labels,
				Category:  form.Category,
			})
			it.Body = form.Description

			path, err := cfg.CreateItem(it)
			if err != nil {
				return err
			}

			if len(form.Attachments) > 0 {
				var warnings []string
				for _, input := range form.Attachments {
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
			}

			printSuccess("Created %s", cfg.RelativePath(path))

			if app.interactive(cfg) {
				if ed, ok := cfg.Editor(); ok {
					return editor.Open(ed, path)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&labels, "label", "l", nil, "Label for the item (repeatable)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Category subdirectory")
	return cmd
}

// knownValues collects the distinct labels and categories of all open items,
// sorted, for wizard pickers.
func knownValues(cfg *store.Config) (labels, categories []string, err error) {
	paths, err := cfg.WalkItems()
	if err != nil {
		return nil, nil, err
	}
	labelSet := map[string]bool{}
	categorySet := map[string]bool{}
	for _, it := range store.LoadItems(paths) {
		for _, l := range it.Labels {
			labelSet[l] = true
		}
		if it.Category != "" {
			categorySet[it.Category] = true
		}
	}
	return sortedSet(labelSet), sortedSet(categorySet), nil
}

func sortedSet(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
