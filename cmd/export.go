package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/josephgoksu/todowing/internal/tasklist"
	"github.com/josephgoksu/todowing/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export tasks as JSON, YAML or TOML",
	Example: `  todowing export > tasks.json
  todowing export --format yaml --filter active
  todowing export --format toml --output tasks.toml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("format", "json", "output format: json, yaml, toml")
	exportCmd.Flags().StringP("filter", "f", string(models.FilterAll), "filter: all, active, completed")
	exportCmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")
}

// exportDocument is the exported file. Field names match the stored slot format.
type exportDocument struct {
	ExportedAt time.Time      `json:"exportedAt" yaml:"exportedAt" toml:"exportedAt"`
	Filter     models.Filter  `json:"filter" yaml:"filter" toml:"filter"`
	DarkMode   bool           `json:"darkMode" yaml:"darkMode" toml:"darkMode"`
	Stats      tasklist.Stats `json:"stats" yaml:"stats" toml:"stats"`
	Tasks      []models.Task  `json:"tasks" yaml:"tasks" toml:"tasks"`
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	format = strings.ToLower(format)
	filterFlag, _ := cmd.Flags().GetString("filter")
	filter, err := models.ParseFilter(filterFlag)
	if err != nil {
		return newUserError(fmt.Sprintf("Error: invalid filter '%s'. Use all, active or completed.", filterFlag), err)
	}

	st, slots, err := openTaskStore()
	if err != nil {
		return err
	}
	defer func() { _ = slots.Close() }()

	dark, err := tasklist.LoadDarkMode(slots)
	if err != nil {
		return newUserError("Error: could not read the theme setting.", err)
	}

	doc := exportDocument{
		ExportedAt: time.Now().UTC().Truncate(time.Second),
		Filter:     filter,
		DarkMode:   dark,
		Stats:      st.Stats(),
		Tasks:      st.List(filter),
	}

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		return exportToFile(path, format, doc)
	}
	return encodeExport(cmd.OutOrStdout(), format, doc)
}

// createExportFile opens the --output destination.
var createExportFile = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// exportToFile encodes doc into path. A failed close means a short file, so
// it is reported like a failed write.
func exportToFile(path, format string, doc exportDocument) error {
	f, err := createExportFile(path)
	if err != nil {
		return newUserError(fmt.Sprintf("Error: could not create %s.", path), err)
	}
	if err := encodeExport(f, format, doc); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return newUserError(fmt.Sprintf("Error: could not write %s.", path), err)
	}
	return nil
}

func encodeExport(w io.Writer, format string, doc exportDocument) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(doc)
	default:
		return newUserError(fmt.Sprintf("Error: unsupported format '%s'. Use json, yaml or toml.", format), nil)
	}
}
