package ui

import (
	"strings"
	"testing"

	"github.com/josephgoksu/todowing/models"
	"github.com/stretchr/testify/assert"
)

func TestTable_ColumnWidths(t *testing.T) {
	table := &Table{
		Headers: []string{"ID", "Task", "Priority"},
		Rows: [][]string{
			{"1705392000000", "Buy milk", "high"},
			{"1705391000000", "Call the bank about the card", "medium"},
		},
	}

	widths := table.ColumnWidths()

	assert.Equal(t, 13, widths[0]) // millisecond ids
	assert.Equal(t, 28, widths[1]) // "Call the bank about the card"
	assert.Equal(t, 8, widths[2])  // header "Priority" is wider than any cell
}

func TestTable_ColumnWidths_MaxWidth(t *testing.T) {
	table := &Table{
		Headers:  []string{"ID", "Task"},
		Rows:     [][]string{{"1", "Renew the passport before the summer trip to Lisbon"}},
		MaxWidth: 20,
	}

	widths := table.ColumnWidths()

	assert.Equal(t, 2, widths[0])  // "ID" is longest
	assert.Equal(t, 20, widths[1]) // capped at MaxWidth
}

func TestTable_Render(t *testing.T) {
	table := &Table{
		Headers: []string{"ID", "Name"},
		Rows: [][]string{
			{"1", "Buy milk"},
			{"2", "Walk dog"},
		},
	}

	output := table.Render()

	// Should contain headers and rows (with ANSI codes)
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "Name")
	assert.Contains(t, output, "Buy milk")
	assert.Contains(t, output, "Walk dog")
	// Should contain separator line
	assert.Contains(t, output, "─")
}

func TestTable_Render_Empty(t *testing.T) {
	table := &Table{
		Headers: []string{},
		Rows:    [][]string{},
	}

	output := table.Render()
	assert.Empty(t, output)
}

func TestTable_Render_Truncation(t *testing.T) {
	table := &Table{
		Headers:  []string{"Text"},
		Rows:     [][]string{{"This is way too long"}},
		MaxWidth: 10,
	}

	output := table.Render()

	// Should contain truncation indicator
	assert.Contains(t, output, "…")
}

func TestTruncateCells(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"Buy milk and eggs", 8, "Buy mil…"},
		{"short", 10, "short"},
		{"abc", 1, "…"},
		{"", 3, ""},
		{"日本語のタスク", 5, "日本…"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, truncateCells(tc.input, tc.width))
	}
}

func TestTaskTable(t *testing.T) {
	tasks := []models.Task{
		{ID: 1705392000000, Text: "Buy milk", Completed: true, Priority: models.PriorityHigh, FormattedDate: "Tue, Jan 16 at 09:30"},
		{ID: 1705391000000, Text: "Walk dog", Priority: models.PriorityLow},
	}

	table := TaskTable(tasks, 40)
	assert.Equal(t, []string{"ID", "Done", "Priority", "Task", "Due"}, table.Headers)
	assert.Equal(t, []string{"1705392000000", "✓", "high", "Buy milk", "Tue, Jan 16 at 09:30"}, table.Rows[0])
	assert.Equal(t, []string{"1705391000000", " ", "low", "Walk dog", "-"}, table.Rows[1])

	output := table.Render()
	assert.Contains(t, output, "Buy milk")
	assert.Contains(t, output, "Walk dog")
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"abc", 5, "abc  "},
		{"hello", 5, "hello"},
		{"longer", 3, "longer"},
		{"", 3, "   "},
	}

	for _, tc := range tests {
		result := padRight(tc.input, tc.width)
		assert.Equal(t, tc.expected, result)
	}
}

func TestTable_Render_RowsHaveFewerColumns(t *testing.T) {
	table := &Table{
		Headers: []string{"ID", "Name", "Status"},
		Rows: [][]string{
			{"1", "Alice"}, // Missing Status column
		},
	}

	output := table.Render()

	// Should not panic and should render what's available
	assert.Contains(t, output, "ID")
	assert.Contains(t, output, "Alice")
	// Count lines - should have header, separator, and 1 data row
	lines := strings.Split(strings.TrimSpace(output), "\n")
	assert.Equal(t, 3, len(lines))
}
