package ui

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/todowing/internal/tasklist"
	"github.com/josephgoksu/todowing/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	priorityBar  = "▌"
	checkDone    = "✓"
	checkPending = "○"
)

var titleCaser = cases.Title(language.English)

// FilterLabel returns the tab label for f, e.g. "Active".
func FilterLabel(f models.Filter) string {
	return titleCaser.String(string(f))
}

// PriorityLabel returns the display name for p, e.g. "High".
func PriorityLabel(p models.Priority) string {
	return titleCaser.String(string(p))
}

// EmptyMessage returns the placeholder heading and hint shown when a filter
// matches nothing.
func EmptyMessage(f models.Filter) (string, string) {
	if f == models.FilterCompleted {
		return "No tasks found", "Complete tasks to see them here."
	}
	return "No tasks found", "Add your first task!"
}

// StatsLine renders the footer counters, e.g. "3 tasks • 1 completed".
func StatsLine(st tasklist.Stats) string {
	return fmt.Sprintf("%d tasks • %d completed", st.Total, st.Completed)
}

// RenderFilterTabs renders the filter selector with active highlighted.
func RenderFilterTabs(active models.Filter, s Styles) string {
	tabs := make([]string, 0, len(models.Filters))
	for _, f := range models.Filters {
		style := s.TabInactive
		if f == active {
			style = s.TabActive
		}
		tabs = append(tabs, style.Render(FilterLabel(f)))
	}
	return strings.Join(tabs, " ")
}

// RenderTask renders a single row. selected marks the cursor row.
func RenderTask(t models.Task, s Styles, selected bool, width int) string {
	var sb strings.Builder

	if selected {
		sb.WriteString(s.Cursor.Render("› "))
	} else {
		sb.WriteString("  ")
	}
	sb.WriteString(s.Priority(t.Priority).Render(priorityBar))
	sb.WriteString(" ")

	text := t.Text
	if width > 0 {
		text = Truncate(text, max(width-8, 10))
	}
	if t.Completed {
		sb.WriteString(s.Accent.Render(checkDone) + " " + s.Done.Render(text))
	} else {
		sb.WriteString(s.Muted.Render(checkPending) + " " + s.Text.Render(text))
	}

	if t.FormattedDate != "" {
		sb.WriteString("\n      ")
		sb.WriteString(s.Meta.Render(t.FormattedDate))
	}
	return sb.String()
}

// RenderTaskList renders tasks under filter. cursor is the selected index,
// or -1 for none.
func RenderTaskList(tasks []models.Task, filter models.Filter, s Styles, cursor, width int) string {
	if len(tasks) == 0 {
		heading, hint := EmptyMessage(filter)
		return "  " + s.Text.Render(heading) + "\n  " + s.Muted.Render(hint) + "\n"
	}
	var sb strings.Builder
	for i, t := range tasks {
		sb.WriteString(RenderTask(t, s, i == cursor, width))
		sb.WriteString("\n")
	}
	return sb.String()
}
