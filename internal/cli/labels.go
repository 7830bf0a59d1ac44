package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"qtask/internal/format"
	"qtask/internal/model"
	"qtask/internal/store"
)

func newLabelsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "labels",
		Short: "List distinct labels with item counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCounts(func(it *model.Item, count func(string)) {
				for _, l := range it.Labels {
					count(l)
				}
			})
		},
	}
}

func newCategoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List distinct categories with item counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printCounts(func(it *model.Item, count func(string)) {
				if it.Category != "" {
					count(it.Category)
				}
			})
		},
	}
}

// printCounts tallies values over all items, open and archived.
func printCounts(visit func(*model.Item, func(string))) error {
	cfg, err := store.Load()
	if err != nil {
		return err
	}
	items, err := allItems(cfg)
	if err != nil {
		return err
	}

	counts := map[string]int{}
	for i := range items {
		visit(&items[i], func(v string) { counts[v]++ })
	}
	if len(counts) == 0 {
		fmt.Println("None.")
		return nil
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s %d\n", format.Pad(name, 24), counts[name])
	}
	return nil
}

func allItems(cfg *store.Config) ([]model.Item, error) {
	open, err := cfg.WalkItems()
	if err != nil {
		return nil, err
	}
	archived, err := cfg.WalkArchived()
	if err != nil {
		return nil, err
	}
	return store.LoadItems(append(open, archived...)), nil
}
