package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func readYAML(t *testing.T, path string) map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var out map[string]any
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatal(err)
	}
	return out
}

func TestSaveValue_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ".todowing.yaml")

	if err := SaveValue(path, "ui.palette", "red-yellow"); err != nil {
		t.Fatalf("SaveValue: %v", err)
	}

	cfg := readYAML(t, path)
	ui, ok := cfg["ui"].(map[string]any)
	if !ok {
		t.Fatalf("ui section missing: %v", cfg)
	}
	if ui["palette"] != "red-yellow" {
		t.Errorf("palette = %v", ui["palette"])
	}
}

func TestSaveValue_PreservesOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".todowing.yaml")
	initial := `# my settings
storage:
  backend: sqlite
  dir: /data
ui:
  palette: purple-blue
`
	if err := os.WriteFile(path, []byte(initial), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := SaveValue(path, "ui.palette", "purple-pink"); err != nil {
		t.Fatalf("SaveValue: %v", err)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "# my settings") {
		t.Error("comment was dropped")
	}
	cfg := readYAML(t, path)
	storage := cfg["storage"].(map[string]any)
	if storage["backend"] != "sqlite" || storage["dir"] != "/data" {
		t.Errorf("storage section changed: %v", storage)
	}
	if cfg["ui"].(map[string]any)["palette"] != "purple-pink" {
		t.Errorf("palette not updated: %v", cfg["ui"])
	}
}

func TestSaveValue_TopLevelKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".todowing.yaml")

	if err := SaveValue(path, "verbose", true); err != nil {
		t.Fatal(err)
	}
	if cfg := readYAML(t, path); cfg["verbose"] != true {
		t.Errorf("verbose = %v", cfg["verbose"])
	}
}

func TestSaveValue_Errors(t *testing.T) {
	dir := t.TempDir()

	if err := SaveValue(filepath.Join(dir, "a.yaml"), "", "x"); err == nil {
		t.Error("expected error for empty key")
	}

	scalar := filepath.Join(dir, "scalar.yaml")
	if err := os.WriteFile(scalar, []byte("ui: flat\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := SaveValue(scalar, "ui.palette", "red-yellow"); err == nil {
		t.Error("expected error when parent is not a mapping")
	}

	list := filepath.Join(dir, "list.yaml")
	if err := os.WriteFile(list, []byte("- a\n- b\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := SaveValue(list, "ui.palette", "red-yellow"); err == nil {
		t.Error("expected error when top level is not a mapping")
	}
}

func TestSaveValue_KeepsCommentOnlyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".todowing.yaml")
	if err := os.WriteFile(path, []byte("# my settings\n# palette goes below\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := SaveValue(path, "ui.palette", "red-yellow"); err != nil {
		t.Fatalf("SaveValue: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"# my settings", "# palette goes below", "palette: red-yellow"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("config lost %q:\n%s", want, data)
		}
	}
	if ui, _ := readYAML(t, path)["ui"].(map[string]any); ui["palette"] != "red-yellow" {
		t.Errorf("palette not readable back: %s", data)
	}
}
