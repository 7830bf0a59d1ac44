package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"qtask/internal/store"
)

func newSearchCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Fuzzy-search item titles",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.Load()
			if err != nil {
				return err
			}
			items, err := allItems(cfg)
			if err != nil {
				return err
			}

			titles := make([]string, len(items))
			for i := range items {
				titles[i] = items[i].Title
			}

			query := strings.Join(args, " ")
			ranks := fuzzy.RankFindNormalizedFold(query, titles)
			if len(ranks) == 0 {
				fmt.Println("No matches.")
				return nil
			}
			sort.Sort(ranks)

			for _, r := range ranks {
				fmt.Println(listRow(&items[r.OriginalIndex]))
			}
			return nil
		},
	}
}
