package cmd

import (
	"fmt"

	"github.com/josephgoksu/todowing/internal/tasklist"
	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:     "ui",
	Aliases: []string{"tui", "i"},
	Short:   "Open the interactive to-do view",
	Long: `Open a full-screen view to add, complete, delete and filter tasks.

Typing:  enter add • tab next field • ctrl+p priority • esc go to the list
List:    j/k move • space toggle • d delete • f or 1-3 filter
         t dark/light • c palette • a add • q quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.IsInteractive() {
			return newUserError("Error: the interactive view needs a terminal. Use 'todowing list' instead.", nil)
		}

		st, slots, err := openTaskStore()
		if err != nil {
			return err
		}
		defer func() { _ = slots.Close() }()

		dark, err := tasklist.LoadDarkMode(slots)
		if err != nil {
			return newUserError("Error: could not read the theme setting.", err)
		}
		theme := ui.NewTheme(dark, GetConfig().UI.Palette)
		if err := ui.RunTaskUI(st, slots, theme); err != nil {
			return newUserError("Error: the interactive view failed.", err)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), map[string]string{"version": version})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "todowing %s\n", version)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(versionCmd)
}
