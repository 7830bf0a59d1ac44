package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"qtask/internal/model"
	"qtask/internal/store"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <item-id>",
		Short: "Show one item, id prefixes accepted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.Load()
			if err != nil {
				return err
			}
			path, err := cfg.FindByID(args[0])
			if err != nil {
				return err
			}
			it, err := model.Load(path)
			if err != nil {
				return err
			}

			field := func(name, value string) {
				fmt.Printf("%-12s %s\n", name+":", value)
			}
			field("id", it.ID)
			field("title", it.Title)
			field("status", string(it.Status))
			field("author", it.Author)
			field("created", it.CreatedAt.Local().Format("2006-01-02 15:04"))
			if len(it.Labels) > 0 {
				field("labels", strings.Join(it.Labels, ", "))
			}
			if it.Category != "" {
				field("category", it.Category)
			}
			for _, a := range it.Attachments {
				field("attachment", a)
			}
			field("file", cfg.RelativePath(path))

			if strings.TrimSpace(it.Body) == "" {
				return nil
			}
			fmt.Println()
			fmt.Print(renderBody(it.Body))
			return nil
		},
	}
}

// renderBody renders Markdown for terminals and falls back to the raw body
// when rendering fails or output is piped.
func renderBody(body string) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return ensureTrailingNewline(body)
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return ensureTrailingNewline(body)
	}
	out, err := r.Render(body)
	if err != nil {
		return ensureTrailingNewline(body)
	}
	return out
}

func ensureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
