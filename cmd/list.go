/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/josephgoksu/todowing/internal/tasklist"
	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/josephgoksu/todowing/models"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List tasks, newest first.

Filters:
  all        every task (default)
  active     tasks not yet completed
  completed  finished tasks`,
	Example: `  todowing list
  todowing list --filter active
  todowing ls -f completed --table`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringP("filter", "f", string(models.FilterAll), "filter: all, active, completed")
	listCmd.Flags().Bool("table", false, "render as a table")
}

// listOutput is the JSON shape of `list --json`.
type listOutput struct {
	Filter models.Filter  `json:"filter"`
	Tasks  []models.Task  `json:"tasks"`
	Stats  tasklist.Stats `json:"stats"`
}

func runList(cmd *cobra.Command, args []string) error {
	filterFlag, _ := cmd.Flags().GetString("filter")
	filter, err := models.ParseFilter(filterFlag)
	if err != nil {
		return newUserError(fmt.Sprintf("Error: invalid filter '%s'. Use all, active or completed.", filterFlag), err)
	}
	asTable, _ := cmd.Flags().GetBool("table")

	st, slots, err := openTaskStore()
	if err != nil {
		return err
	}
	defer func() { _ = slots.Close() }()

	tasks := st.List(filter)
	out := cmd.OutOrStdout()
	if isJSON() {
		return printJSON(out, listOutput{Filter: filter, Tasks: tasks, Stats: st.Stats()})
	}

	if asTable && len(tasks) > 0 {
		if !isQuiet() {
			fmt.Fprintln(out, ui.StyleHeader.Render(ui.FilterLabel(filter)+" tasks"))
		}
		fmt.Fprint(out, ui.TaskTable(tasks, 48).Render())
	} else {
		renderPlainList(out, tasks, filter)
	}
	if !isQuiet() {
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.StyleSubtle.Render(ui.StatsLine(st.Stats())))
	}
	return nil
}

// renderPlainList prints one task per line with its id, for piping and scripts.
func renderPlainList(out io.Writer, tasks []models.Task, filter models.Filter) {
	if len(tasks) == 0 {
		heading, hint := ui.EmptyMessage(filter)
		fmt.Fprintln(out, ui.StyleTitle.Render(heading))
		fmt.Fprintln(out, ui.StyleSubtle.Render(hint))
		return
	}
	for _, t := range tasks {
		mark := "[ ]"
		if t.Completed {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %d  %-6s  %s", mark, t.ID, t.Priority, t.Text)
		if t.FormattedDate != "" {
			line += "  " + ui.StyleSubtle.Render("("+t.FormattedDate+")")
		}
		fmt.Fprintln(out, line)
	}
}
