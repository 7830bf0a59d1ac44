package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"qtask/internal/format"
	"qtask/internal/model"
	"qtask/internal/store"
)

func newListCmd(app *App) *cobra.Command {
	var closed bool
	var label string
	var author string
	var sortBy string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.Load()
			if err != nil {
				return err
			}

			paths, err := cfg.WalkItems()
			if closed {
				paths, err = cfg.WalkArchived()
			}
			if err != nil {
				return err
			}

			items := store.LoadItems(paths)
			items = filterItems(items, label, author)

			switch sortBy {
			case "", "id":
				// Walk order is already id order.
			case "date":
				sort.SliceStable(items, func(i, j int) bool {
					return items[i].CreatedAt.After(items[j].CreatedAt)
				})
			case "title":
				sort.SliceStable(items, func(i, j int) bool {
					return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
				})
			default:
				return fmt.Errorf("unknown sort key %q (want id, date, or title)", sortBy)
			}

			if len(items) == 0 {
				fmt.Println("No items.")
				return nil
			}
			for i := range items {
				fmt.Println(listRow(&items[i]))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&closed, "closed", false, "List archived items instead of open ones")
	cmd.Flags().StringVarP(&label, "label", "l", "", "Only items carrying this label")
	cmd.Flags().StringVarP(&author, "author", "a", "", "Only items by this author")
	cmd.Flags().StringVar(&sortBy, "sort", "id", "Sort order: id, date, or title")
	return cmd
}

func filterItems(items []model.Item, label, author string) []model.Item {
	if label == "" && author == "" {
		return items
	}
	kept := items[:0]
	for _, it := range items {
		if author != "" && !strings.EqualFold(it.Author, author) {
			continue
		}
		if label != "" && !hasLabel(&it, label) {
			continue
		}
		kept = append(kept, it)
	}
	return kept
}

func hasLabel(it *model.Item, label string) bool {
	for _, l := range it.Labels {
		if l == label {
			return true
		}
	}
	return false
}

var (
	styleOpen   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})
	styleClosed = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "244", Dark: "243"})
)

func listRow(it *model.Item) string {
	shortID := it.ID
	if i := strings.IndexByte(shortID, '-'); i > 0 {
		shortID = shortID[:i]
	}

	status := format.PadLeft(string(it.Status), 6)
	if it.Status == model.StatusClosed {
		status = styleClosed.Render(status)
	} else {
		status = styleOpen.Render(status)
	}

	category := it.Category
	if category == "" {
		category = "-"
	}

	return format.Pad(shortID, 15) +
		status + "  " +
		format.Pad(it.Title, 40) + " " +
		format.Pad(strings.Join(it.Labels, ", "), 20) + " " +
		category
}
