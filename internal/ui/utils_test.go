package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{"empty", "", 10, ""},
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"needs truncation", "hello world", 8, "hello w…"},
		{"zero max", "hello", 0, "hello"},
		{"multibyte", "héllo wörld", 6, "héllo…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, result, tt.expected)
			}
		})
	}
}

func TestPanel(t *testing.T) {
	t.Run("basic panel", func(t *testing.T) {
		result := NewPanel("Stats", "3 tasks").Render()

		if !strings.Contains(result, "Stats") {
			t.Error("Panel should contain title")
		}
		if !strings.Contains(result, "3 tasks") {
			t.Error("Panel should contain content")
		}
	})

	t.Run("panel without title", func(t *testing.T) {
		result := NewPanel("", "Content only").Render()

		if !strings.Contains(result, "Content only") {
			t.Error("Panel should contain content")
		}
	})

	t.Run("panel with width", func(t *testing.T) {
		result := NewPanel("Title", "Body").WithWidth(30).Render()

		for _, line := range strings.Split(result, "\n") {
			if w := lipgloss.Width(line); w > 32 {
				t.Errorf("line wider than panel: %d", w)
			}
		}
	})

	t.Run("convenience renderers", func(t *testing.T) {
		for _, out := range []string{
			RenderPanel("A", "body"),
			RenderErrorPanel("C", "body"),
		} {
			if !strings.Contains(out, "body") {
				t.Errorf("panel lost content: %q", out)
			}
		}
	})
}

func TestTerminalWidth_Fallback(t *testing.T) {
	// go test does not attach stdout to a terminal.
	if IsInteractive() {
		t.Skip("stdout is a terminal")
	}
	if w := TerminalWidth(80); w != 80 {
		t.Errorf("TerminalWidth fallback = %d, want 80", w)
	}
}
