package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/todowing/models"
)

// Palette is a named accent color scheme.
type Palette struct {
	Name        string
	Primary     string
	PrimaryDark string
	Secondary   string
}

// Palettes lists the selectable palettes; the first is the default.
var Palettes = []Palette{
	{Name: "purple-blue", Primary: "#8a2be2", PrimaryDark: "#5f1d9e", Secondary: "#00c6fb"},
	{Name: "red-yellow", Primary: "#ff4d4d", PrimaryDark: "#d63031", Secondary: "#fdcb6e"},
	{Name: "purple-pink", Primary: "#6c5ce7", PrimaryDark: "#5649d2", Secondary: "#e84393"},
	{Name: "orange-yellow", Primary: "#e17055", PrimaryDark: "#d63031", Secondary: "#fdcb6e"},
}

// LookupPalette returns the palette with name, or the default palette.
func LookupPalette(name string) Palette {
	for _, p := range Palettes {
		if p.Name == name {
			return p
		}
	}
	return Palettes[0]
}

// Next returns the palette after p, wrapping around.
func (p Palette) Next() Palette {
	for i, candidate := range Palettes {
		if candidate.Name == p.Name {
			return Palettes[(i+1)%len(Palettes)]
		}
	}
	return Palettes[0]
}

// HexToRGB parses "#rrggbb".
func HexToRGB(hex string) (r, g, b uint8, err error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

// RGBString renders a hex color as "r, g, b".
func RGBString(hex string) string {
	r, g, b, err := HexToRGB(hex)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d, %d, %d", r, g, b)
}

// Theme combines the light/dark mode with an accent palette.
type Theme struct {
	Dark    bool
	Palette Palette
}

// NewTheme builds a theme from a mode flag and a palette name.
func NewTheme(dark bool, palette string) Theme {
	return Theme{Dark: dark, Palette: LookupPalette(palette)}
}

// ModeName returns "dark" or "light".
func (t Theme) ModeName() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}

// Styles is the set of lipgloss styles derived from a Theme.
type Styles struct {
	Title     lipgloss.Style
	Text      lipgloss.Style
	Muted     lipgloss.Style
	Accent    lipgloss.Style
	Highlight lipgloss.Style
	Done      lipgloss.Style
	Danger    lipgloss.Style
	Meta      lipgloss.Style
	Cursor    lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	Input      lipgloss.Style
	InputError lipgloss.Style

	priority map[models.Priority]lipgloss.Style
}

const (
	colorDanger = "#ff4d4d"
	colorLow    = "#00b894"
	colorMedium = "#fdcb6e"
)

// Styles derives the style set for t.
func (t Theme) Styles() Styles {
	text, muted, border := lipgloss.Color("#2d3436"), lipgloss.Color("#636e72"), lipgloss.Color("#dfe6e9")
	if t.Dark {
		text, muted, border = lipgloss.Color("#f5f6fa"), lipgloss.Color("#a4a9c3"), lipgloss.Color("#3d3d5c")
	}
	primary := lipgloss.Color(t.Palette.Primary)
	if !t.Dark && t.Palette.PrimaryDark != "" {
		// The lighter accent washes out on a light background.
		primary = lipgloss.Color(t.Palette.PrimaryDark)
	}
	secondary := lipgloss.Color(t.Palette.Secondary)

	inputBox := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	return Styles{
		Title:     lipgloss.NewStyle().Foreground(primary).Bold(true),
		Text:      lipgloss.NewStyle().Foreground(text),
		Muted:     lipgloss.NewStyle().Foreground(muted),
		Accent:    lipgloss.NewStyle().Foreground(primary),
		Highlight: lipgloss.NewStyle().Foreground(secondary).Bold(true),
		Done:      lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
		Danger:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorDanger)),
		Meta:      lipgloss.NewStyle().Foreground(secondary),
		Cursor:    lipgloss.NewStyle().Foreground(primary).Bold(true),

		TabActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(primary).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().Foreground(muted).Padding(0, 1),

		Input:      inputBox,
		InputError: inputBox.BorderForeground(lipgloss.Color(colorDanger)),

		priority: map[models.Priority]lipgloss.Style{
			models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color(colorLow)),
			models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color(colorMedium)),
			models.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color(colorDanger)),
		},
	}
}

// Priority returns the indicator style for p.
func (s Styles) Priority(p models.Priority) lipgloss.Style {
	if st, ok := s.priority[p]; ok {
		return st
	}
	return s.Muted
}
