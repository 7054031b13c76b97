package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/todowing/models"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupPalette(t *testing.T) {
	assert.Equal(t, "#ff4d4d", LookupPalette("red-yellow").Primary)
	assert.Equal(t, "#5649d2", LookupPalette("purple-pink").PrimaryDark)
	assert.Equal(t, "purple-blue", LookupPalette("unknown").Name, "unknown names fall back to the default")
	assert.Equal(t, "purple-blue", LookupPalette("").Name)
}

func TestPalette_NextWraps(t *testing.T) {
	p := Palettes[len(Palettes)-1]
	assert.Equal(t, Palettes[0], p.Next())
	assert.Equal(t, Palettes[1], Palettes[0].Next())
	assert.Equal(t, Palettes[0], Palette{Name: "custom"}.Next())
}

func TestHexToRGB(t *testing.T) {
	r, g, b, err := HexToRGB("#8a2be2")
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{138, 43, 226}, [3]uint8{r, g, b})

	_, _, _, err = HexToRGB("#fff")
	assert.Error(t, err)
	_, _, _, err = HexToRGB("#zzzzzz")
	assert.Error(t, err)
}

func TestRGBString(t *testing.T) {
	assert.Equal(t, "0, 198, 251", RGBString("#00c6fb"))
	assert.Equal(t, "", RGBString("nope"))
}

func TestTheme_ModeName(t *testing.T) {
	assert.Equal(t, "dark", NewTheme(true, "").ModeName())
	assert.Equal(t, "light", NewTheme(false, "").ModeName())
}

func TestTheme_StylesDifferByMode(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)

	dark := NewTheme(true, "purple-blue").Styles()
	light := NewTheme(false, "purple-blue").Styles()
	assert.NotEqual(t, dark.Text.Render("x"), light.Text.Render("x"))

	red := NewTheme(true, "red-yellow").Styles()
	assert.NotEqual(t, dark.Accent.Render("x"), red.Accent.Render("x"))

	// Light mode accents use the darker primary.
	darkAccent := lipgloss.NewStyle().Foreground(lipgloss.Color("#5f1d9e")).Render("x")
	assert.Equal(t, darkAccent, light.Accent.Render("x"))
	assert.NotEqual(t, darkAccent, dark.Accent.Render("x"))
}

func TestStyles_Priority(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	s := NewTheme(true, "").Styles()

	low := s.Priority(models.PriorityLow).Render("▌")
	high := s.Priority(models.PriorityHigh).Render("▌")
	assert.NotEqual(t, low, high)
	assert.Equal(t, s.Muted.Render("▌"), s.Priority("urgent").Render("▌"))
}
