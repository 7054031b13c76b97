/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/josephgoksu/todowing/internal/logger"
	"github.com/josephgoksu/todowing/internal/tasklist"
	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/josephgoksu/todowing/models"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add <text>",
	Short: "Add a new task",
	Long: `Add a new task to the top of the list.

The priority defaults to medium. A due date (YYYY-MM-DD) and an optional
due time (HH:MM) are shown next to the task.`,
	Example: `  todowing add "Buy milk"
  todowing add "Call the bank" --priority high --date 2024-01-16 --time 09:30`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringP("priority", "p", string(models.PriorityMedium), "priority: low, medium, high")
	addCmd.Flags().StringP("date", "d", "", "due date (YYYY-MM-DD)")
	addCmd.Flags().StringP("time", "t", "", "due time (HH:MM)")
}

func runAdd(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	logger.SetLastInput(text)

	priorityFlag, _ := cmd.Flags().GetString("priority")
	priority, err := models.ParsePriority(priorityFlag)
	if err != nil {
		return newUserError(fmt.Sprintf("Error: invalid priority '%s'. Use low, medium or high.", priorityFlag), err)
	}
	dueDate, _ := cmd.Flags().GetString("date")
	dueTime, _ := cmd.Flags().GetString("time")

	st, slots, err := openTaskStore()
	if err != nil {
		return err
	}
	defer func() { _ = slots.Close() }()

	task, err := st.Add(text, priority, dueDate, dueTime)
	switch {
	case errors.Is(err, tasklist.ErrEmptyText):
		return newUserError("Error: task text cannot be empty.", err)
	case errors.Is(err, models.ErrInvalidDueDate):
		return newUserError(fmt.Sprintf("Error: invalid date '%s'. Use YYYY-MM-DD.", dueDate), err)
	case errors.Is(err, models.ErrInvalidDueTime):
		return newUserError(fmt.Sprintf("Error: invalid time '%s'. Use HH:MM.", dueTime), err)
	case err != nil:
		return newUserError("Error: could not save the new task.", err)
	}

	out := cmd.OutOrStdout()
	if isJSON() {
		return printJSON(out, task)
	}
	if isQuiet() {
		fmt.Fprintln(out, task.ID)
		return nil
	}

	fmt.Fprintf(out, "%s Added task %d: %s\n", ui.Icon("✓", ui.StyleSuccess), task.ID, task.Text)
	if task.FormattedDate != "" {
		fmt.Fprintf(out, "  Due: %s\n", task.FormattedDate)
	}
	return nil
}
