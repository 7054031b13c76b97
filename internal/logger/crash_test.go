package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestCrashHandler_SetContext(t *testing.T) {
	globalContext = &CrashContext{}

	SetBasePath("/tmp/test-todowing")
	SetVersion("1.0.0-test")
	SetCommand("add")
	SetStorage("sqlite", "/tmp/data")
	SetLastInput("  Buy milk  ")

	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	if globalContext.basePath != "/tmp/test-todowing" {
		t.Errorf("Expected basePath '/tmp/test-todowing', got '%s'", globalContext.basePath)
	}
	if globalContext.version != "1.0.0-test" {
		t.Errorf("Expected version '1.0.0-test', got '%s'", globalContext.version)
	}
	if globalContext.command != "add" {
		t.Errorf("Expected command 'add', got '%s'", globalContext.command)
	}
	if globalContext.storage != "sqlite /tmp/data" {
		t.Errorf("Expected storage 'sqlite /tmp/data', got '%s'", globalContext.storage)
	}
	if globalContext.lastInput != "Buy milk" {
		t.Errorf("Expected lastInput 'Buy milk', got '%s'", globalContext.lastInput)
	}
}

func TestCrashHandler_SetLastInput_Truncation(t *testing.T) {
	globalContext = &CrashContext{}

	SetLastInput(strings.Repeat("a", 3000))

	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	if len(globalContext.lastInput) > 600 {
		t.Errorf("Expected input to be truncated, got length %d", len(globalContext.lastInput))
	}
	if !strings.Contains(globalContext.lastInput, "[truncated]") {
		t.Error("Expected truncated input to contain '[truncated]'")
	}
}

func TestCrashHandler_CreateCrashLog(t *testing.T) {
	globalContext = &CrashContext{
		version:   "1.0.0",
		command:   "done",
		lastInput: "user input",
	}

	log := createCrashLog("test panic")

	if log.PanicValue != "test panic" {
		t.Errorf("Expected PanicValue 'test panic', got '%s'", log.PanicValue)
	}
	if log.Version != "1.0.0" || log.Command != "done" || log.LastInput != "user input" {
		t.Errorf("context not copied into crash log: %+v", log)
	}
	if log.StackTrace == "" {
		t.Error("Expected non-empty StackTrace")
	}
	if log.GoVersion == "" {
		t.Error("Expected non-empty GoVersion")
	}
}

func TestCrashHandler_FormatCrashLog(t *testing.T) {
	log := CrashLog{
		Timestamp:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
		Version:    "1.0.0",
		Command:    "list",
		Storage:    "file /home/user/.todowing",
		PanicValue: "test panic",
		StackTrace: "goroutine 1 [running]:\nmain.main()",
		LastInput:  "user input",
		GoVersion:  "go1.24.3",
		OS:         "darwin",
		Arch:       "arm64",
	}

	formatted := formatCrashLog(log)

	expectedStrings := []string{
		"TODOWING CRASH LOG",
		"Timestamp: 2025-01-01T12:00:00Z",
		"Version:   1.0.0",
		"Command:   list",
		"Storage:   file /home/user/.todowing",
		"Go:        go1.24.3",
		"OS/Arch:   darwin/arm64",
		"PANIC VALUE",
		"test panic",
		"STACK TRACE",
		"goroutine 1 [running]",
		"LAST USER INPUT",
		"user input",
		"END OF CRASH LOG",
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(formatted, expected) {
			t.Errorf("Expected formatted log to contain '%s'", expected)
		}
	}
}

func TestCrashHandler_FormatCrashLog_OmitsEmptyInput(t *testing.T) {
	formatted := formatCrashLog(CrashLog{PanicValue: "boom"})
	if strings.Contains(formatted, "LAST USER INPUT") {
		t.Error("Expected no input section when input is empty")
	}
	if strings.Contains(formatted, "Storage:") {
		t.Error("Expected no storage line when storage is empty")
	}
}

func TestCrashHandler_WriteCrashLog(t *testing.T) {
	basePath := filepath.Join(t.TempDir(), ".todowing")
	globalContext = &CrashContext{basePath: basePath}

	log := CrashLog{
		Timestamp:  time.Now(),
		PanicValue: "test panic",
		StackTrace: "test stack",
	}
	if err := writeCrashLog(log); err != nil {
		t.Fatalf("writeCrashLog failed: %v", err)
	}

	logs, err := ListCrashLogs()
	if err != nil {
		t.Fatalf("ListCrashLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("Expected 1 crash log, got %d", len(logs))
	}

	content, err := os.ReadFile(logs[0])
	if err != nil {
		t.Fatalf("read crash log failed: %v", err)
	}
	if !strings.Contains(string(content), "test panic") {
		t.Error("Expected crash log to contain panic value")
	}
}

func TestCrashHandler_CleanOldLogs(t *testing.T) {
	basePath := filepath.Join(t.TempDir(), ".todowing")
	crashDir := filepath.Join(basePath, CrashLogDir)
	if err := os.MkdirAll(crashDir, 0o755); err != nil {
		t.Fatalf("Failed to create crash dir: %v", err)
	}
	globalContext = &CrashContext{basePath: basePath}

	for i := range MaxCrashLogs + 5 {
		filename := filepath.Join(crashDir, fmt.Sprintf("crash_20250101_1200%02d.log", i))
		if err := os.WriteFile(filename, []byte("test"), 0o644); err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}

	if err := cleanOldCrashLogs(crashDir); err != nil {
		t.Fatalf("cleanOldCrashLogs failed: %v", err)
	}

	logs, err := ListCrashLogs()
	if err != nil {
		t.Fatalf("ListCrashLogs failed: %v", err)
	}
	if len(logs) != MaxCrashLogs-1 {
		t.Fatalf("Expected %d crash logs after cleanup, got %d", MaxCrashLogs-1, len(logs))
	}
	// The newest ones survive.
	if !strings.HasSuffix(logs[len(logs)-1], "crash_20250101_120014.log") {
		t.Errorf("newest log was removed: %v", logs)
	}
}

func TestCrashHandler_GetCrashLogPath(t *testing.T) {
	globalContext = &CrashContext{basePath: "/tmp/test"}

	path := getCrashLogPath(time.Date(2025, 1, 15, 14, 30, 45, 0, time.UTC))

	expectedPath := "/tmp/test/crash_logs/crash_20250115_143045.log"
	if path != expectedPath {
		t.Errorf("Expected path '%s', got '%s'", expectedPath, path)
	}
}

func TestCrashHandler_DefaultBasePath(t *testing.T) {
	globalContext = &CrashContext{}

	if dir := getCrashLogDir(); dir != ".todowing/crash_logs" {
		t.Errorf("Expected default dir '.todowing/crash_logs', got '%s'", dir)
	}
}
