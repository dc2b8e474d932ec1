package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDir_HomeOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PROTOKIT_HOME", dir)

	assert.Equal(t, dir, Dir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), FilePath())
}

func TestSetAndGet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "home")
	t.Setenv("PROTOKIT_HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()
	require.NoError(t, Set(KeyDefinitionsDir, "/tmp/defs"))
	require.FileExists(t, FilePath())

	viper.Reset()
	Load()
	assert.Equal(t, "/tmp/defs", DefinitionsDir())
}

func TestLoad_DefaultLogLevel(t *testing.T) {
	t.Setenv("PROTOKIT_HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()
	assert.Equal(t, "warn", Get(KeyLogLevel))
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PROTOKIT_HOME", t.TempDir())
	t.Setenv("PROTOKIT_LOG_LEVEL", "debug")
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()
	assert.Equal(t, "debug", Get(KeyLogLevel))
}
