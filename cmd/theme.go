package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/todowing/internal/config"
	"github.com/josephgoksu/todowing/internal/tasklist"
	"github.com/josephgoksu/todowing/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var themeCmd = &cobra.Command{
	Use:   "theme [dark|light|toggle]",
	Short: "Show or change the color theme",
	Long: `Without arguments, print the current theme.

dark, light and toggle change the mode, which is stored with your tasks.
--palette changes the accent colors and is saved to the config file.

Palettes: purple-blue, red-yellow, purple-pink, orange-yellow`,
	Example: `  todowing theme
  todowing theme toggle
  todowing theme --palette purple-pink`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE:      runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.Flags().String("palette", "", "accent palette to save in the config file")
}

// themeOutput is the JSON shape of `theme --json`.
type themeOutput struct {
	Mode         string `json:"mode"`
	DarkMode     bool   `json:"darkMode"`
	Palette      string `json:"palette"`
	Primary      string `json:"primary"`
	PrimaryDark  string `json:"primaryDark"`
	Secondary    string `json:"secondary"`
	PrimaryRGB   string `json:"primaryRgb"`
	SecondaryRGB string `json:"secondaryRgb"`
}

func runTheme(cmd *cobra.Command, args []string) error {
	slots, err := openSlots()
	if err != nil {
		return err
	}
	defer func() { _ = slots.Close() }()

	dark, err := tasklist.LoadDarkMode(slots)
	if err != nil {
		return newUserError("Error: could not read the theme setting.", err)
	}

	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "dark":
			dark = true
			err = tasklist.SaveDarkMode(slots, dark)
		case "light":
			dark = false
			err = tasklist.SaveDarkMode(slots, dark)
		case "toggle":
			dark, err = tasklist.ToggleDarkMode(slots)
		default:
			return newUserError(fmt.Sprintf("Error: unknown theme mode '%s'. Use dark, light or toggle.", args[0]), nil)
		}
		if err != nil {
			return newUserError("Error: could not save the theme setting.", err)
		}
	}

	paletteName := GetConfig().UI.Palette
	if name, _ := cmd.Flags().GetString("palette"); name != "" {
		palette := ui.LookupPalette(name)
		if palette.Name != name {
			return newUserError(fmt.Sprintf("Error: unknown palette '%s'.", name), nil)
		}
		path, err := config.GetConfigFilePath()
		if err != nil {
			return newUserError("Error: could not locate the config file.", err)
		}
		if err := config.SaveValue(path, "ui.palette", name); err != nil {
			return newUserError(fmt.Sprintf("Error: could not write %s.", path), err)
		}
		viper.Set("ui.palette", name)
		GetConfig().UI.Palette = name
		paletteName = name
	}

	theme := ui.NewTheme(dark, paletteName)
	out := cmd.OutOrStdout()
	if isJSON() {
		return printJSON(out, themeOutput{
			Mode:      theme.ModeName(),
			DarkMode:  theme.Dark,
			Palette:   theme.Palette.Name,
			Primary:      theme.Palette.Primary,
			PrimaryDark:  theme.Palette.PrimaryDark,
			Secondary:    theme.Palette.Secondary,
			PrimaryRGB:   ui.RGBString(theme.Palette.Primary),
			SecondaryRGB: ui.RGBString(theme.Palette.Secondary),
		})
	}
	if isQuiet() {
		return nil
	}

	s := theme.Styles()
	fmt.Fprintf(out, "Mode:    %s\n", theme.ModeName())
	fmt.Fprintf(out, "Palette: %s  %s %s\n",
		theme.Palette.Name,
		s.Accent.Render("■ "+theme.Palette.Primary),
		s.Highlight.Render("■ "+theme.Palette.Secondary),
	)
	fmt.Fprintf(out, "RGB:     %s / %s\n", ui.RGBString(theme.Palette.Primary), ui.RGBString(theme.Palette.Secondary))
	return nil
}
