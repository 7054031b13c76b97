package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/josephgoksu/todowing/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// cliEnv runs commands against an isolated home, working directory and data dir.
type cliEnv struct {
	t       *testing.T
	out     *bytes.Buffer
	home    string
	dataDir string
}

func newCLIEnv(t *testing.T, backend string) *cliEnv {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	resetViper()
	t.Cleanup(resetViper)

	dataDir := filepath.Join(t.TempDir(), "data")
	viper.Set("storage.backend", backend)
	viper.Set("storage.dir", dataDir)

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	return &cliEnv{t: t, out: out, home: home, dataDir: dataDir}
}

func resetViper() {
	viper.Reset()
	resetFlags(rootCmd)
	bindPersistentFlags()
}

// resetFlags restores every flag to its default; cobra keeps flag values
// between Execute calls in one process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI with args and returns everything it printed.
func (e *cliEnv) run(args ...string) (string, error) {
	e.t.Helper()
	e.out.Reset()
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return e.out.String(), err
}

// mustRun is run that fails the test on error.
func (e *cliEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, "todowing %v\n%s", args, out)
	return out
}

// addTask adds a task through the CLI and returns it as reported by --json.
func (e *cliEnv) addTask(args ...string) models.Task {
	e.t.Helper()
	out := e.mustRun(append([]string{"add", "--json"}, args...)...)
	var task models.Task
	require.NoError(e.t, json.Unmarshal([]byte(out), &task), out)
	return task
}
