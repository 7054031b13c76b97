package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/josephgoksu/todowing/models"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete [task_id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Delete a task by its ID. If no ID is provided, an interactive list is shown.
A confirmation prompt is displayed before deletion unless --yes is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolP("yes", "y", false, "skip the confirmation prompt")
}

func runDelete(cmd *cobra.Command, args []string) error {
	st, slots, err := openTaskStore()
	if err != nil {
		return err
	}
	defer func() { _ = slots.Close() }()

	out := cmd.OutOrStdout()
	task, err := resolveTaskArg(st, args, models.FilterAll, "Select task to delete")
	switch {
	case isCancelled(err):
		fmt.Fprintln(out, "Deletion cancelled.")
		return nil
	case errors.Is(err, errNoTasksFound):
		fmt.Fprintln(out, "No tasks available to delete.")
		return nil
	case err != nil:
		return err
	}

	skipConfirm, _ := cmd.Flags().GetBool("yes")
	if !skipConfirm && !isJSON() {
		if !confirm(fmt.Sprintf("Delete task '%s' (ID: %d)", ui.Truncate(task.Text, 40), task.ID)) {
			fmt.Fprintln(out, "Deletion cancelled. Use --yes to delete without a prompt.")
			return nil
		}
	}

	if _, err := st.Delete(task.ID); err != nil {
		return newUserError(fmt.Sprintf("Error: failed to delete task '%s'.", task.Text), err)
	}

	if isJSON() {
		return printJSON(out, map[string]any{"deleted": task.ID})
	}
	if !isQuiet() {
		fmt.Fprintf(out, "%s Deleted: %s\n", ui.Icon("✓", ui.StyleSuccess), task.Text)
	}
	return nil
}
