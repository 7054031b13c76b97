package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/josephgoksu/todowing/models"
	"github.com/spf13/cobra"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:     "done [task_id]",
	Aliases: []string{"toggle", "complete"},
	Short:   "Toggle a task between done and not done",
	Long: `Toggle the completed state of a task. If task_id is provided, that task is
toggled directly. Otherwise an interactive list of active tasks is shown.`,
	Example: `  # Interactive mode
  todowing done

  # Toggle a specific task
  todowing done 1705392000000`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	st, slots, err := openTaskStore()
	if err != nil {
		return err
	}
	defer func() { _ = slots.Close() }()

	out := cmd.OutOrStdout()
	task, err := resolveTaskArg(st, args, models.FilterActive, "Select task to mark as done")
	switch {
	case isCancelled(err):
		fmt.Fprintln(out, "Operation cancelled.")
		return nil
	case errors.Is(err, errNoTasksFound):
		fmt.Fprintln(out, "No active tasks available to mark as done.")
		return nil
	case err != nil:
		return err
	}

	if _, err := st.ToggleComplete(task.ID); err != nil {
		return newUserError(fmt.Sprintf("Error: failed to update task '%s'.", task.Text), err)
	}
	task, _ = st.Get(task.ID)

	if isJSON() {
		return printJSON(out, task)
	}
	if isQuiet() {
		return nil
	}
	if task.Completed {
		fmt.Fprintf(out, "%s Completed: %s\n", ui.Icon("✓", ui.StyleSuccess), task.Text)
	} else {
		fmt.Fprintf(out, "%s Reopened: %s\n", ui.Icon("○", ui.StyleWarning), task.Text)
	}
	return nil
}
