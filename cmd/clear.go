package cmd

import (
	"fmt"

	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/spf13/cobra"
)

// clearCmd removes finished tasks.
var clearCmd = &cobra.Command{
	Use:     "clear-completed",
	Aliases: []string{"clear"},
	Short:   "Remove all completed tasks",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, slots, err := openTaskStore()
		if err != nil {
			return err
		}
		defer func() { _ = slots.Close() }()

		removed, err := st.ClearCompleted()
		if err != nil {
			return newUserError("Error: failed to clear completed tasks.", err)
		}

		out := cmd.OutOrStdout()
		if isJSON() {
			return printJSON(out, map[string]int{"removed": removed})
		}
		if isQuiet() {
			return nil
		}
		if removed == 0 {
			fmt.Fprintln(out, "No completed tasks to clear.")
			return nil
		}
		fmt.Fprintf(out, "%s Cleared %d completed task(s).\n", ui.Icon("✓", ui.StyleSuccess), removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
