package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"qtask/internal/store"
)

func newInitCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a qtask project in the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			cfg, err := store.ForInit(wd)
			if err != nil {
				return err
			}
			if err := cfg.InitProject(); err != nil {
				return err
			}
			printSuccess("Initialized qtask project (items go in %s/)", cfg.StackDir())
			return nil
		},
	}
}
