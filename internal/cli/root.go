// Package cli wires the qtask commands. Each subcommand is a newXxxCmd
// constructor over a shared App, in the cobra style.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"qtask/internal/store"
)

// App carries state shared by all commands.
type App struct {
	NoInteractive bool
}

// NewRootCmd builds the qtask command tree.
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "qtask",
		Short:        "File-based task tracker: Markdown items with YAML front matter",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Initialize a project, then create an item
  qtask init
  qtask new "Fix login flow" -l bug -c backend

  # Browse interactively
  qtask

  # Direct item lookup (shortcut for: qtask show <item-id>)
  qtask 260109`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			cfg, err := store.Load()
			if err != nil {
				if errors.Is(err, store.ErrNoProject) {
					return cmd.Help()
				}
				return err
			}
			if !app.interactive(cfg) {
				return cmd.Help()
			}
			return runActions(app, cfg, false)
		},
	}

	cmd.PersistentFlags().BoolVar(&app.NoInteractive, "no-interactive",
		envOr("QTASK_NO_INTERACTIVE", "") != "", "Disable interactive screens")

	cmd.AddCommand(newInitCmd(app))
	cmd.AddCommand(newNewCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newShowCmd(app))
	cmd.AddCommand(newCloseCmd(app))
	cmd.AddCommand(newReopenCmd(app))
	cmd.AddCommand(newUpdateCmd(app))
	cmd.AddCommand(newAttachCmd(app))
	cmd.AddCommand(newLabelsCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newSearchCmd(app))
	cmd.AddCommand(newActionsCmd(app))

	return cmd
}

// interactive reports whether interactive screens may run: not disabled by
// flag or config, and stdout is a terminal.
func (a *App) interactive(cfg *store.Config) bool {
	if a.NoInteractive || !cfg.Interactive() {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

var (
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "130", Dark: "214"})
)

func printSuccess(format string, args ...any) {
	fmt.Println(styleSuccess.Render("✓") + " " + fmt.Sprintf(format, args...))
}

func printWarnings(warnings []string) {
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, styleWarn.Render("warning:")+" "+w)
	}
}
