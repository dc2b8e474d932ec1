package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	home, err := os.MkdirTemp("", "protokit-cli")
	if err != nil {
		panic(err)
	}
	os.Setenv("PROTOKIT_HOME", home)
	code := m.Run()
	os.RemoveAll(home)
	os.Exit(code)
}

// run executes the command tree with args and returns stdout, stderr and the
// command error. Flag values left over from earlier runs are reset first.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func testDefsDir() string {
	return filepath.Join("testdata", "defs")
}

func TestDefinitionSourcesMissingDir(t *testing.T) {
	_, _, err := run(t, "list", "--dir", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestUnknownLogLevel(t *testing.T) {
	_, _, err := run(t, "list", "--log-level", "loud")
	assert.Error(t, err)
}

func TestConfiguredDefinitionsDir(t *testing.T) {
	dir, err := filepath.Abs(testDefsDir())
	require.NoError(t, err)
	t.Setenv("PROTOKIT_DEFINITIONS_DIR", dir)

	out, _, err := run(t, "list", "--builtin=false")
	require.NoError(t, err)
	assert.Contains(t, out, "LANDING_PAGE")
}
