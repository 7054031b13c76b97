package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/josephgoksu/todowing/internal/tasklist"
	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/josephgoksu/todowing/models"
	"github.com/josephgoksu/todowing/store"
	"github.com/manifoldco/promptui"
	"github.com/spf13/viper"
)

// errNoTasksFound is returned when an interactive selection has nothing to offer.
var errNoTasksFound = errors.New("no tasks found matching your criteria")

func isJSON() bool {
	return viper.GetBool("json")
}

func isQuiet() bool {
	return viper.GetBool("quiet")
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// openSlots opens the configured storage backend.
func openSlots() (store.Slots, error) {
	cfg := GetConfig()
	slots, err := store.Open(cfg.Storage)
	if err != nil {
		return nil, newUserError(fmt.Sprintf("Error: could not open %s storage at %s.", cfg.Storage.Backend, cfg.Storage.Dir), err)
	}
	return slots, nil
}

// openTaskStore opens the slots and loads the task list from them. The
// caller closes the returned slots.
func openTaskStore() (*tasklist.Store, store.Slots, error) {
	slots, err := openSlots()
	if err != nil {
		return nil, nil, err
	}
	st, err := tasklist.Open(slots, tasklist.WithLogger(slog.Default()))
	if err != nil {
		_ = slots.Close()
		return nil, nil, newUserError("Error: could not load tasks.", err)
	}
	return st, slots, nil
}

// parseTaskID parses a numeric task id argument.
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, newUserError(fmt.Sprintf("Error: '%s' is not a valid task ID.", arg), err)
	}
	return id, nil
}

// resolveTaskArg returns the task named by args[0], or lets the user pick one
// interactively from tasks matching filter when no id was given.
func resolveTaskArg(st *tasklist.Store, args []string, filter models.Filter, label string) (models.Task, error) {
	if len(args) > 0 {
		id, err := parseTaskID(args[0])
		if err != nil {
			return models.Task{}, err
		}
		task, ok := st.Get(id)
		if !ok {
			return models.Task{}, newUserError(fmt.Sprintf("Error: no task with ID %d.", id), nil)
		}
		return task, nil
	}
	if isJSON() || !ui.IsInteractive() {
		return models.Task{}, newUserError("Error: a task ID is required when not running in a terminal.", nil)
	}
	return selectTaskInteractive(st.List(filter), label)
}

// selectTaskInteractive presents a prompt to the user to select a task from a list.
func selectTaskInteractive(tasks []models.Task, label string) (models.Task, error) {
	if len(tasks) == 0 {
		return models.Task{}, errNoTasksFound
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   `> {{ .Text | cyan }} ({{ .Priority }}{{ if .FormattedDate }}, {{ .FormattedDate }}{{ end }})`,
		Inactive: `  {{ .Text | faint }} ({{ .Priority }}{{ if .FormattedDate }}, {{ .FormattedDate }}{{ end }})`,
		Selected: `{{ "✔" | green }} {{ .Text | faint }} (ID: {{ .ID }})`,
		Details: `
--------- Task Details ----------
{{ "ID:\t" | faint }} {{ .ID }}
{{ "Text:\t" | faint }} {{ .Text }}
{{ "Priority:\t" | faint }} {{ .Priority }}
{{ "Completed:\t" | faint }} {{ .Completed }}`,
	}

	searcher := func(input string, index int) bool {
		task := tasks[index]
		input = strings.ToLower(input)
		return strings.Contains(strings.ToLower(task.Text), input) ||
			strings.Contains(strconv.FormatInt(task.ID, 10), input)
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     tasks,
		Templates: templates,
		Searcher:  searcher,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return models.Task{}, err // includes promptui.ErrInterrupt
	}
	return tasks[i], nil
}

// confirm asks a yes/no question. Non-interactive runs never confirm.
func confirm(label string) bool {
	if !ui.IsInteractive() {
		return false
	}
	prompt := promptui.Prompt{Label: label, IsConfirm: true}
	_, err := prompt.Run()
	return err == nil
}

// isCancelled reports whether err means the user backed out of a prompt.
func isCancelled(err error) bool {
	return errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort)
}
