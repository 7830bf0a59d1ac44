package cli

import (
	"github.com/spf13/cobra"

	"qtask/internal/model"
	"qtask/internal/store"
)

func newAttachCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "attach <item-id> <path-or-url>...",
		Short: "Attach files or URLs to an item",
		Args:  cobra.MinimumNArgs(2),
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

			var warnings []string
			attached := 0
			for _, input := range args[1:] {
				name, err := store.ProcessAttachment(it, input)
				if err != nil {
					warnings = append(warnings, err.Error())
					continue
				}
				it.AddAttachment(name)
				attached++
				printSuccess("Attached %s", name)
			}
			printWarnings(warnings)

			if attached == 0 {
				return nil
			}
			return it.Save(path)
		},
	}
}
